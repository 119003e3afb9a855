package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/common"
)

// navHeight is the brand line plus its rule.
const navHeight = 2

// currentSection is the last section starting at or above the viewport top.
func (m *Model) currentSection(page pageLayout) string {
	current := m.sections[0].name
	for _, s := range m.sections {
		if page.offsets[s.name] <= m.offset {
			current = s.name
		}
	}
	return current
}

func (m *Model) viewNav(page pageLayout) string {
	active := m.currentSection(page)

	brand := common.DefaultPalette.Get("accent").Render("▣ Formation") + common.DefaultPalette.Get("brand").Render("Pro")
	links := make([]string, 0, len(content.NavLinks))
	for _, link := range content.NavLinks {
		style := common.DefaultPalette.Variant("nav link", "active", link.Section == active)
		links = append(links, style.Render(link.Label))
	}
	cta := common.DefaultPalette.Get("button").Padding(0, 1).Render(content.GetStarted)

	line := lipgloss.JoinHorizontal(lipgloss.Top, brand, "   ", strings.Join(links, "  "), "   ", cta)
	rule := strings.Repeat("─", max(lipgloss.Width(line), m.width))
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
		rule = strings.Repeat("─", m.width)
	}
	return line + "\n" + common.DefaultPalette.Get("section border").Render(rule)
}
