// Package helppage shows every key binding in an overlay that can be
// filtered by typing.
package helppage

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/ui/common"
)

type Model struct {
	keyMap common.KeyMap
	open   bool
	query  string
	styles styles
}

type styles struct {
	border   lipgloss.Style
	title    lipgloss.Style
	shortcut lipgloss.Style
	dimmed   lipgloss.Style
}

type helpEntry struct {
	view   string
	search string
}

func newHelpEntry(view string, parts ...string) helpEntry {
	var normalized []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return helpEntry{
		view:   view,
		search: strings.ToLower(strings.Join(normalized, " ")),
	}
}

func (e helpEntry) matches(query string) bool {
	return query != "" && e.search != "" && strings.Contains(e.search, query)
}

func New(keyMap common.KeyMap) *Model {
	return &Model{
		keyMap: keyMap,
		styles: styles{
			border:   common.DefaultPalette.GetBorder("help border", lipgloss.RoundedBorder()).Padding(0, 1),
			title:    common.DefaultPalette.Get("help title").PaddingLeft(1),
			shortcut: common.DefaultPalette.Get("help shortcut"),
			dimmed:   common.DefaultPalette.Get("help dimmed").PaddingLeft(1),
		},
	}
}

func (h *Model) Open() {
	h.open = true
	h.query = ""
}

func (h *Model) Close() {
	h.open = false
	h.query = ""
}

func (h *Model) IsOpen() bool {
	return h.open
}

func (h *Model) Query() string {
	return h.query
}

func (h *Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses while open: the help and escape keys close the
// page, backspace edits the filter and any other printable key extends it.
func (h *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !h.open || !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, h.keyMap.Help), key.Matches(keyMsg, h.keyMap.Dismiss):
		h.Close()
	case keyMsg.Code == tea.KeyBackspace:
		if len(h.query) > 0 {
			_, size := utf8.DecodeLastRuneInString(h.query)
			h.query = h.query[:len(h.query)-size]
		}
	case keyMsg.Text != "":
		h.query += keyMsg.Text
	}
	return nil
}

func (h *Model) keyBindingEntry(k key.Binding) helpEntry {
	help := k.Help()
	return newHelpEntry(h.printKey(help.Key, help.Desc), help.Key, help.Desc)
}

func (h *Model) titleEntry(header string) helpEntry {
	return newHelpEntry(h.styles.title.Render(fmt.Sprintf("%9s", "")+header), header)
}

func (h *Model) printKey(key string, desc string) string {
	keyAligned := fmt.Sprintf("%9s", key)
	return lipgloss.JoinHorizontal(lipgloss.Top, h.styles.shortcut.Render(keyAligned), h.styles.dimmed.Render(desc))
}

func (h *Model) columns() ([]helpEntry, []helpEntry) {
	left := []helpEntry{
		h.titleEntry("Page"),
		h.keyBindingEntry(h.keyMap.FocusNext),
		h.keyBindingEntry(h.keyMap.FocusPrev),
		h.keyBindingEntry(h.keyMap.ScrollUp),
		h.keyBindingEntry(h.keyMap.ScrollDown),
		h.keyBindingEntry(h.keyMap.PageUp),
		h.keyBindingEntry(h.keyMap.PageDown),
		h.keyBindingEntry(h.keyMap.Jump),
		h.keyBindingEntry(h.keyMap.Dismiss),
		h.keyBindingEntry(h.keyMap.Help),
		h.keyBindingEntry(h.keyMap.Quit),
	}
	right := []helpEntry{
		h.titleEntry("Sections"),
		h.keyBindingEntry(h.keyMap.Left),
		h.keyBindingEntry(h.keyMap.Right),
		h.keyBindingEntry(h.keyMap.Select),
		h.keyBindingEntry(h.keyMap.Skip),
		h.titleEntry("Tableau de bord"),
		h.keyBindingEntry(h.keyMap.Like),
		h.keyBindingEntry(h.keyMap.Bookmark),
		h.titleEntry("Tarifs"),
		h.keyBindingEntry(h.keyMap.Toggle),
	}
	return left, right
}

func (h *Model) View() string {
	if !h.open {
		return ""
	}
	left, right := h.columns()
	height := max(len(left), len(right))

	var content string
	if h.query != "" {
		content = strings.Join(h.searchColumn(height+2, append(left, right...)), "\n")
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			strings.Join(entriesToStrings(left), "\n"),
			"   ",
			strings.Join(entriesToStrings(right), "\n"),
		)
	}
	return h.styles.border.Render(content)
}

func entriesToStrings(entries []helpEntry) []string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.view
	}
	return lines
}

func (h *Model) searchColumn(height int, entries []helpEntry) []string {
	lines := make([]string, 0, height)
	lines = append(lines, h.styles.title.Render("Recherche : "+h.query))
	lines = append(lines, h.styles.dimmed.Render("Échap pour fermer"))

	query := strings.ToLower(h.query)
	start := len(lines)
	for _, entry := range entries {
		if len(lines) == height {
			break
		}
		if entry.matches(query) {
			lines = append(lines, entry.view)
		}
	}
	if len(lines) == start {
		lines = append(lines, h.styles.dimmed.Render("Aucun raccourci ne correspond."))
	}
	return lines
}
