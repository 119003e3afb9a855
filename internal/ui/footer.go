package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/common"
)

var _ common.Model = (*footer)(nil)

// footer is static: brand blurb, link columns and copyright.
type footer struct {
	width int
}

func newFooter() *footer {
	return &footer{}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(tea.Msg) tea.Cmd {
	return nil
}

func (f *footer) SetWidth(width int) {
	f.width = width
}

func (f *footer) View() string {
	style := common.DefaultPalette.Get("footer")
	title := common.DefaultPalette.Get("title")

	columns := []string{
		lipgloss.JoinVertical(lipgloss.Left,
			common.DefaultPalette.Get("brand").Render(content.Brand),
			style.Width(28).Render(content.Tagline),
		),
	}
	for _, column := range content.FooterColumns {
		lines := []string{title.Render(column.Title)}
		for _, link := range column.Links {
			lines = append(lines, style.Render(link))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	var grid string
	if f.width > 0 && f.width < 100 {
		grid = lipgloss.JoinVertical(lipgloss.Left, interleave(columns, "")...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, interleave(columns, "    ")...)
	}
	ruleWidth := max(lipgloss.Width(grid), f.width)
	block := lipgloss.JoinVertical(lipgloss.Left,
		grid,
		"",
		common.DefaultPalette.Get("section border").Render(strings.Repeat("─", ruleWidth)),
		style.Render(content.Copyright),
	)
	if f.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(f.width, lipgloss.Center, block)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
