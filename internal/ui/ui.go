// Package ui assembles the landing page sections into a scrollable program.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/formationpro/landing/internal/config"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/formationpro/landing/internal/ui/dashboard"
	"github.com/formationpro/landing/internal/ui/features"
	"github.com/formationpro/landing/internal/ui/flash"
	"github.com/formationpro/landing/internal/ui/helppage"
	"github.com/formationpro/landing/internal/ui/hero"
	"github.com/formationpro/landing/internal/ui/jump"
	"github.com/formationpro/landing/internal/ui/pricing"
	"github.com/formationpro/landing/internal/ui/status"
	"github.com/formationpro/landing/internal/ui/testimonials"
	"go.uber.org/zap"
)

const (
	SectionHero         = "hero"
	SectionDashboard    = "dashboard"
	SectionFeatures     = "features"
	SectionTestimonials = "testimonials"
	SectionPricing      = "pricing"
	SectionFooter       = "footer"
)

var _ tea.Model = (*Model)(nil)

type sizer interface {
	SetWidth(width int)
}

type section struct {
	name  string
	title string
	model common.Model
}

type Model struct {
	keyMap     common.KeyMap
	logger     *zap.Logger
	sections   []section
	focusables []int
	focus      int
	offset     int
	width      int
	height     int
	jump       *jump.Model
	flash      *flash.Model
	help       *helppage.Model
	status     *status.Model
	stopped    bool
}

// New builds every section from cfg. Widgets start ticking on Init.
func New(cfg *config.Config, keyMap common.KeyMap, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	heroModel, err := hero.New(keyMap, cfg.TypingSpeed(), cfg.CursorBlink())
	if err != nil {
		return nil, err
	}
	dashboardModel, err := dashboard.New(keyMap, dashboard.Intervals{
		Progress:     cfg.ProgressInterval(),
		Notification: cfg.NotificationInterval(),
		Chart:        cfg.ChartInterval(),
	})
	if err != nil {
		return nil, err
	}
	featuresModel, err := features.New(keyMap)
	if err != nil {
		return nil, err
	}
	testimonialsModel, err := testimonials.New(keyMap, content.Testimonials, cfg.CarouselInterval())
	if err != nil {
		return nil, err
	}
	pricingModel, err := pricing.New(keyMap, content.Plans)
	if err != nil {
		return nil, err
	}

	m := &Model{
		keyMap: keyMap,
		logger: logger,
		sections: []section{
			{name: SectionHero, title: "Accueil", model: heroModel},
			{name: SectionDashboard, title: "Tableau de bord", model: dashboardModel},
			{name: SectionFeatures, title: navTitle(SectionFeatures), model: featuresModel},
			{name: SectionTestimonials, title: navTitle(SectionTestimonials), model: testimonialsModel},
			{name: SectionPricing, title: navTitle(SectionPricing), model: pricingModel},
			{name: SectionFooter, title: "Contact", model: newFooter()},
		},
		flash:  flash.New(cfg.FlashTimeout()),
		help:   helppage.New(keyMap),
		status: status.New(),
	}

	entries := make([]jump.Entry, 0, len(m.sections))
	for i, s := range m.sections {
		entries = append(entries, jump.Entry{Title: s.title, Section: s.name})
		if _, ok := s.model.(common.Focusable); ok {
			m.focusables = append(m.focusables, i)
		}
	}
	m.jump = jump.New(entries)
	m.status.SetHelp(keyMap.ShortHelp())
	m.setFocus(0)
	return m, nil
}

func navTitle(name string) string {
	for _, link := range content.NavLinks {
		if link.Section == name {
			return link.Label
		}
	}
	return name
}

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.sections))
	for _, s := range m.sections {
		cmds = append(cmds, s.model.Init())
	}
	m.logger.Info("page started", zap.Int("sections", len(m.sections)))
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if m.stopped {
		return nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, s := range m.sections {
			if sized, ok := s.model.(sizer); ok {
				sized.SetWidth(msg.Width)
			}
		}
		m.clampOffset()
		return nil
	case tea.KeyPressMsg:
		if m.jump.IsOpen() {
			return m.jump.Update(msg)
		}
		if m.help.IsOpen() {
			return m.help.Update(msg)
		}
		cmd := m.handleKey(msg)
		m.clampOffset()
		return cmd
	case jump.SelectedMsg:
		return m.jumpTo(msg.Section)
	case jump.CancelledMsg:
		m.logger.Debug("jump cancelled")
		return nil
	}

	// Everything else is a tick or a notice. Widgets ignore messages that
	// are not addressed to them.
	cmds := []tea.Cmd{m.flash.Update(msg), m.jump.Update(msg)}
	for _, s := range m.sections {
		cmds = append(cmds, s.model.Update(msg))
	}
	// A section may have become shorter, e.g. a testimonial advancing to a
	// shorter quote.
	m.clampOffset()
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.logger.Info("quit requested")
		m.Stop()
		return tea.Quit
	case key.Matches(msg, m.keyMap.Jump):
		m.logger.Debug("jump opened")
		return m.jump.Open()
	case key.Matches(msg, m.keyMap.Help):
		m.help.Open()
		return nil
	case key.Matches(msg, m.keyMap.Dismiss):
		m.flash.DeleteOldest()
		return nil
	case key.Matches(msg, m.keyMap.FocusNext):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, m.keyMap.FocusPrev):
		m.moveFocus(-1)
		return nil
	case key.Matches(msg, m.keyMap.ScrollUp):
		m.scrollBy(-1)
		return nil
	case key.Matches(msg, m.keyMap.ScrollDown):
		m.scrollBy(1)
		return nil
	case key.Matches(msg, m.keyMap.PageUp):
		m.scrollBy(-m.viewportHeight())
		return nil
	case key.Matches(msg, m.keyMap.PageDown):
		m.scrollBy(m.viewportHeight())
		return nil
	}
	return m.sections[m.focusables[m.focus]].model.Update(msg)
}

func (m *Model) jumpTo(name string) tea.Cmd {
	idx := m.sectionIndex(name)
	if idx < 0 {
		return m.flash.Add("", fmt.Errorf("section %q: %w", name, common.ErrInvalidArgument))
	}
	m.logger.Debug("jump", zap.String("section", name))
	if f := m.focusableIndex(idx); f >= 0 {
		m.setFocus(f)
	} else {
		m.scrollTo(name)
	}
	return m.flash.Add("Section : "+m.sections[idx].title, nil)
}

func (m *Model) sectionIndex(name string) int {
	for i, s := range m.sections {
		if s.name == name {
			return i
		}
	}
	return -1
}

func (m *Model) focusableIndex(sectionIdx int) int {
	for i, idx := range m.focusables {
		if idx == sectionIdx {
			return i
		}
	}
	return -1
}

func (m *Model) moveFocus(delta int) {
	n := len(m.focusables)
	m.setFocus((m.focus + delta + n) % n)
}

func (m *Model) setFocus(i int) {
	if current, ok := m.sections[m.focusables[m.focus]].model.(common.Focusable); ok {
		current.SetFocused(false)
	}
	m.focus = i
	s := m.sections[m.focusables[i]]
	s.model.(common.Focusable).SetFocused(true)
	m.status.SetMode(s.title)
	m.scrollTo(s.name)
	m.logger.Debug("focus", zap.String("section", s.name))
}

// Focused returns the name of the section receiving key presses.
func (m *Model) Focused() string {
	return m.sections[m.focusables[m.focus]].name
}

// Offset is the first page line shown in the viewport.
func (m *Model) Offset() int {
	return m.offset
}

func (m *Model) scrollTo(name string) {
	m.offset = m.layoutPage().offsets[name]
	m.clampOffset()
}

func (m *Model) scrollBy(delta int) {
	m.offset += delta
	m.clampOffset()
}

func (m *Model) clampOffset() {
	maxOffset := max(0, len(m.layoutPage().lines)-m.viewportHeight())
	m.offset = min(max(m.offset, 0), maxOffset)
}

// viewportHeight is the number of page lines between the navigation bar and
// the status line. Before the first WindowSizeMsg the whole page is shown.
func (m *Model) viewportHeight() int {
	if m.height <= 0 {
		return len(m.layoutPage().lines)
	}
	return max(m.height-navHeight-1, 1)
}

// Stop cancels every widget timer. It is safe to call more than once.
func (m *Model) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	for _, s := range m.sections {
		if stoppable, ok := s.model.(common.Stoppable); ok {
			stoppable.Stop()
		}
	}
	m.flash.Stop()
	m.logger.Info("page stopped")
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	v.WindowTitle = content.Brand
	return v
}

type pageLayout struct {
	lines   []string
	offsets map[string]int
}

func (m *Model) layoutPage() pageLayout {
	layout := pageLayout{offsets: make(map[string]int, len(m.sections))}
	for _, s := range m.sections {
		layout.offsets[s.name] = len(layout.lines)
		layout.lines = append(layout.lines, strings.Split(s.model.View(), "\n")...)
		layout.lines = append(layout.lines, "")
	}
	return layout
}

// Render draws the navigation bar, the visible slice of the page, any open
// overlay and the status line.
func (m *Model) Render() string {
	page := m.layoutPage()
	height := m.viewportHeight()

	offset := min(max(m.offset, 0), max(0, len(page.lines)-height))
	end := min(offset+height, len(page.lines))
	visible := make([]string, 0, height)
	visible = append(visible, page.lines[offset:end]...)
	for len(visible) < height {
		visible = append(visible, "")
	}

	if notices := m.flash.View(m.width); notices != "" {
		overlay(visible, notices, height-lineCount(notices))
	}
	if m.jump.IsOpen() {
		overlay(visible, m.jump.View(), 1)
	}
	if m.help.IsOpen() {
		overlay(visible, m.help.View(), 1)
	}

	return strings.Join([]string{
		m.viewNav(page),
		strings.Join(visible, "\n"),
		m.status.View(m.width),
	}, "\n")
}

// overlay replaces whole lines of dst starting at row with the lines of block.
func overlay(dst []string, block string, row int) {
	row = max(row, 0)
	for i, line := range strings.Split(block, "\n") {
		if row+i >= len(dst) {
			return
		}
		dst[row+i] = line
	}
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
