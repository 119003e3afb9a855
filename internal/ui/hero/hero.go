package hero

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/formationpro/landing/internal/ui/typewriter"
)

var _ common.Focusable = (*Model)(nil)

type blinkMsg struct {
	id  int
	tag int
}

// Model renders the brand, the typed headline and the call to action. The
// blinking cursor after the headline is driven by its own timer.
type Model struct {
	id       int
	tag      int
	headline *typewriter.Model
	cursorOn bool
	blink    time.Duration
	timer    *common.Timer
	keyMap   common.KeyMap
	focused  bool
	width    int
	styles   styles
}

type styles struct {
	brand     lipgloss.Style
	accent    lipgloss.Style
	text      lipgloss.Style
	cursor    lipgloss.Style
	button    lipgloss.Style
	secondary lipgloss.Style
}

func New(keyMap common.KeyMap, typingSpeed, blink time.Duration) (*Model, error) {
	headline, err := typewriter.New(content.Headline, typingSpeed)
	if err != nil {
		return nil, fmt.Errorf("hero headline: %w", err)
	}
	if blink <= 0 {
		return nil, fmt.Errorf("hero cursor blink %s: %w", blink, common.ErrInvalidArgument)
	}
	return &Model{
		id:       common.NextID(),
		headline: headline,
		cursorOn: true,
		blink:    blink,
		timer:    common.NewTimer(),
		keyMap:   keyMap,
		styles: styles{
			brand:     common.DefaultPalette.Get("brand"),
			accent:    common.DefaultPalette.Get("accent"),
			text:      common.DefaultPalette.Get("text"),
			cursor:    common.DefaultPalette.Get("accent"),
			button:    common.DefaultPalette.Get("button"),
			secondary: common.DefaultPalette.Get("button secondary"),
		},
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.headline.Init(), m.scheduleBlink())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case blinkMsg:
		if msg.id != m.id || msg.tag != m.tag || m.timer.Stopped() {
			return nil
		}
		m.cursorOn = !m.cursorOn
		return m.scheduleBlink()
	case tea.KeyPressMsg:
		if m.focused && key.Matches(msg, m.keyMap.Skip) {
			m.headline.Skip()
		}
		return nil
	}
	return m.headline.Update(msg)
}

func (m *Model) scheduleBlink() tea.Cmd {
	m.tag++
	id, tag := m.id, m.tag
	return m.timer.After(m.blink, func() tea.Msg {
		return blinkMsg{id: id, tag: tag}
	})
}

func (m *Model) Stop() {
	m.headline.Stop()
	m.timer.Stop()
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) IsFocused() bool {
	return m.focused
}

func (m *Model) View() string {
	title := m.styles.accent.Render("Formation") + m.styles.brand.Render("Pro")

	cursor := " "
	if m.cursorOn {
		cursor = m.styles.cursor.Render("|")
	}
	typed := m.styles.text.Render(m.headline.View()) + cursor
	if m.width > 0 {
		typed = lipgloss.NewStyle().Width(max(m.width-4, 10)).Align(lipgloss.Center).Render(typed)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.button.Padding(0, 2).Render(content.GetStarted+" →"),
		"  ",
		m.styles.secondary.Padding(0, 2).Render("▶ "+content.WatchDemo),
	)

	block := lipgloss.JoinVertical(lipgloss.Center, title, "", typed, "", buttons)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}
