package features

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/carousel"
	"github.com/formationpro/landing/internal/ui/common"
)

var _ common.Focusable = (*Model)(nil)

// Model shows the feature cards. While focused, one card is highlighted and
// left/right move the highlight with wrap-around.
type Model struct {
	cards   *carousel.Model[content.Feature]
	keyMap  common.KeyMap
	focused bool
	width   int
}

func New(keyMap common.KeyMap) (*Model, error) {
	cards, err := carousel.New(content.Features, 0)
	if err != nil {
		return nil, err
	}
	return &Model{cards: cards, keyMap: keyMap}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keyMap.Left):
		m.cards.Previous()
	case key.Matches(keyMsg, m.keyMap.Right):
		m.cards.Next()
	}
	return nil
}

// Highlighted returns the highlighted card index, or -1 when unfocused.
func (m *Model) Highlighted() int {
	if !m.focused {
		return -1
	}
	return m.cards.Index()
}

func (m *Model) Stop() {
	m.cards.Stop()
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
	title := common.DefaultPalette.Get("title").Render(content.FeaturesTitle)
	subtitle := common.DefaultPalette.Get("dimmed").Render(content.FeaturesSubtitle)

	cardWidth := 28
	if m.width > 0 {
		cardWidth = min(max((m.width-8)/3-2, 20), 36)
	}

	highlighted := m.Highlighted()
	var cards []string
	for i, feature := range m.cards.Items() {
		accent := common.DefaultPalette.Variant("feature "+feature.Color, "highlighted", i == highlighted)
		border := common.DefaultPalette.GetBorder("section border", lipgloss.RoundedBorder())
		if i == highlighted {
			border = common.DefaultPalette.GetBorder("feature "+feature.Color, lipgloss.ThickBorder())
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			accent.Render(feature.Title),
			"",
			common.DefaultPalette.Get("text").Width(cardWidth).Render(feature.Description),
			"",
			accent.Render(feature.Stats),
		)
		cards = append(cards, border.Padding(0, 1).Width(cardWidth+2).Render(body))
	}

	var grid string
	if m.width > 0 && m.width < 3*(cardWidth+4) {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	block := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", grid)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}
