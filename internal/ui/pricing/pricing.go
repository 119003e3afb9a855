package pricing

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/carousel"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/formationpro/landing/internal/ui/flash"
)

var _ common.Focusable = (*Model)(nil)

// Model shows the plans with a monthly/annual toggle. Neither the toggle nor
// the selection leads anywhere: there is no checkout.
type Model struct {
	plans   *carousel.Model[content.Plan]
	annual  bool
	keyMap  common.KeyMap
	focused bool
	width   int
}

func New(keyMap common.KeyMap, plans []content.Plan) (*Model, error) {
	c, err := carousel.New(plans, 0)
	if err != nil {
		return nil, err
	}
	for i, plan := range plans {
		if plan.Popular {
			if err := c.SelectAt(i); err != nil {
				return nil, err
			}
			break
		}
	}
	return &Model{plans: c, keyMap: keyMap}, nil
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
	case key.Matches(keyMsg, m.keyMap.Toggle):
		m.annual = !m.annual
	case key.Matches(keyMsg, m.keyMap.Left):
		m.plans.Previous()
	case key.Matches(keyMsg, m.keyMap.Right):
		m.plans.Next()
	case key.Matches(keyMsg, m.keyMap.Select):
		plan := m.Selected()
		summary := fmt.Sprintf("%s : %d€/%s", plan.Name, m.Price(plan), plan.Period)
		return func() tea.Msg { return flash.AddMsg{Text: summary} }
	}
	return nil
}

func (m *Model) Annual() bool {
	return m.annual
}

func (m *Model) Selected() content.Plan {
	_, plan := m.plans.Current()
	return plan
}

// Price returns the monthly price of plan under the current billing period.
func (m *Model) Price(plan content.Plan) int {
	if m.annual {
		return plan.AnnualPrice
	}
	return plan.MonthlyPrice
}

func (m *Model) Stop() {
	m.plans.Stop()
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
	palette := common.DefaultPalette
	text := palette.Get("text")
	dimmed := palette.Get("dimmed")

	active, inactive := palette.Get("pricing toggle active").Padding(0, 1), dimmed.Padding(0, 1)
	monthly, annual := active.Render(content.Monthly), inactive.Render(content.Annual)
	if m.annual {
		monthly, annual = inactive.Render(content.Monthly), active.Render(content.Annual)
	}
	toggle := monthly + " ⇄ " + annual + "  " + palette.Get("pricing savings").Render(content.AnnualSavings)

	cardWidth := 26
	if m.width > 0 {
		cardWidth = min(max((m.width-8)/3-4, 20), 32)
	}

	selected := m.plans.Index()
	var cards []string
	for i, plan := range m.plans.Items() {
		var lines []string
		if plan.Popular {
			lines = append(lines, palette.Get("pricing popular").Padding(0, 1).Render("Populaire"))
		}
		lines = append(lines,
			palette.Get("feature "+plan.Color).Inherit(palette.Get("title")).Render(plan.Name),
			dimmed.Width(cardWidth).Render(plan.Description),
			"",
			palette.Get("title").Render(fmt.Sprintf("%d€", m.Price(plan)))+dimmed.Render("/"+plan.Period),
		)
		if m.annual && plan.AnnualSavings != "" {
			lines = append(lines, palette.Get("pricing savings").Render(plan.AnnualSavings))
		}
		lines = append(lines, "")
		for _, feature := range plan.Features {
			lines = append(lines, text.Width(cardWidth).Render("✓ "+feature))
		}
		lines = append(lines, "", palette.Get("button").Padding(0, 1).Render(content.GetStarted))

		border := palette.BorderVariant("pricing border", "selected", i == selected, lipgloss.RoundedBorder())
		if i == selected {
			border = border.Border(lipgloss.ThickBorder())
		}
		cards = append(cards, border.Padding(0, 1).Width(cardWidth+2).Render(strings.Join(lines, "\n")))
	}

	var grid string
	if m.width > 0 && m.width < 3*(cardWidth+6) {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		palette.Get("title").Render(content.PricingTitle),
		dimmed.Render(content.PricingSubtitle),
		"",
		toggle,
		"",
		grid,
	)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}
