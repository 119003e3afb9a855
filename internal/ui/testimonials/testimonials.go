package testimonials

import (
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/carousel"
	"github.com/formationpro/landing/internal/ui/common"
)

var _ common.Focusable = (*Model)(nil)

type Model struct {
	carousel *carousel.Model[content.Testimonial]
	keyMap   common.KeyMap
	focused  bool
	width    int
}

// New builds the testimonial carousel. A zero interval disables auto-advance.
func New(keyMap common.KeyMap, testimonials []content.Testimonial, interval time.Duration) (*Model, error) {
	c, err := carousel.New(testimonials, interval)
	if err != nil {
		return nil, err
	}
	return &Model{carousel: c, keyMap: keyMap}, nil
}

func (m *Model) Init() tea.Cmd {
	return m.carousel.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m.carousel.Update(msg)
	}
	if !m.focused {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keyMap.Left):
		m.carousel.Previous()
	case key.Matches(keyMsg, m.keyMap.Right):
		m.carousel.Next()
	default:
		// Digits past the last testimonial are not shortcuts.
		if i, err := strconv.Atoi(keyMsg.String()); err == nil {
			if err := m.carousel.SelectAt(i - 1); err != nil {
				return nil
			}
		}
	}
	return nil
}

func (m *Model) Current() (int, content.Testimonial) {
	return m.carousel.Current()
}

func (m *Model) Stop() {
	m.carousel.Stop()
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
	index, testimonial := m.carousel.Current()

	quoteWidth := 60
	if m.width > 0 {
		quoteWidth = min(max(m.width-12, 20), 70)
	}
	stars := common.DefaultPalette.Get("testimonial star").Render(strings.Repeat("★", testimonial.Rating))
	quote := common.DefaultPalette.Get("testimonial quote").Width(quoteWidth).Align(lipgloss.Center).Render("« " + testimonial.Content + " »")
	author := common.DefaultPalette.Get("title").Render(testimonial.Name) + "\n" + common.DefaultPalette.Get("dimmed").Render(testimonial.Role)

	border := common.DefaultPalette.BorderVariant("section border", "focused", m.focused, lipgloss.RoundedBorder())
	card := border.Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Center, stars, "", quote, "", author))

	var dots []string
	for i := range m.carousel.Len() {
		dots = append(dots, common.DefaultPalette.Variant("testimonial dot", "active", i == index).Render("●"))
	}
	nav := "‹  " + strings.Join(dots, " ") + "  ›"

	block := lipgloss.JoinVertical(lipgloss.Center,
		common.DefaultPalette.Get("title").Render(content.TestimonialsTitle),
		common.DefaultPalette.Get("dimmed").Render(content.TestimonialsSubtitle),
		"",
		card,
		nav,
	)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}
