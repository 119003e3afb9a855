// Package status renders the one-line help bar at the bottom of the page.
package status

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/ui/common"
)

type Model struct {
	entries   []key.Binding
	mode      string
	truncated bool
	styles    styles
}

type styles struct {
	shortcut lipgloss.Style
	dimmed   lipgloss.Style
	mode     lipgloss.Style
}

func New() *Model {
	return &Model{
		styles: styles{
			shortcut: common.DefaultPalette.Get("status shortcut"),
			dimmed:   common.DefaultPalette.Get("status dimmed"),
			mode:     common.DefaultPalette.Get("status mode"),
		},
	}
}

func (m *Model) SetHelp(entries []key.Binding) {
	m.entries = entries
}

func (m *Model) Help() []key.Binding {
	return m.entries
}

// SetMode sets the label shown on the left, usually the focused section.
func (m *Model) SetMode(mode string) {
	m.mode = mode
}

func (m *Model) Mode() string {
	return m.mode
}

// Truncated reports whether the last View had to drop help entries.
func (m *Model) Truncated() bool {
	return m.truncated
}

func (m *Model) View(width int) string {
	mode := ""
	if m.mode != "" {
		mode = m.styles.mode.Padding(0, 1).Render(m.mode) + " "
	}
	modeWidth := lipgloss.Width(mode)

	availableWidth := 0
	if width > 0 {
		availableWidth = max(0, width-modeWidth-1)
	}
	help, truncated := m.helpView(availableWidth)
	m.truncated = truncated
	line := mode + help
	if width <= 0 {
		return line
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, line)
}

func (m *Model) helpView(maxWidth int) (string, bool) {
	separator := m.styles.dimmed.Render(" • ")
	moreHint := m.styles.dimmed.Render(" …")

	rendered, truncated := m.collectHelpEntriesWithLimit(maxWidth, lipgloss.Width(separator), lipgloss.Width(moreHint))

	result := strings.Join(rendered, separator)
	if truncated {
		result += moreHint
	}
	return result, truncated
}

func (m *Model) collectHelpEntriesWithLimit(maxWidth, separatorWidth, moreHintWidth int) ([]string, bool) {
	var rendered []string
	currentWidth := 0

	for i, binding := range m.entries {
		help := binding.Help()
		if !binding.Enabled() || help.Key == "" || help.Desc == "" {
			continue
		}

		e := m.styles.shortcut.Render(help.Key) + m.styles.dimmed.PaddingLeft(1).Render(help.Desc)
		entryWidth := lipgloss.Width(e)

		addedWidth := entryWidth
		if len(rendered) > 0 {
			addedWidth += separatorWidth
		}

		reservedWidth := 0
		if i < len(m.entries)-1 {
			reservedWidth = moreHintWidth
		}

		if maxWidth > 0 && currentWidth+addedWidth+reservedWidth > maxWidth {
			return rendered, true
		}

		rendered = append(rendered, e)
		currentWidth += addedWidth
	}

	return rendered, false
}
