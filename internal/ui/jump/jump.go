// Package jump implements the "go to section" prompt.
package jump

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/sahilm/fuzzy"
)

// Entry is a section the prompt can jump to.
type Entry struct {
	Title   string
	Section string
}

// SelectedMsg asks the page to scroll to Section.
type SelectedMsg struct {
	Section string
}

type CancelledMsg struct{}

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	keyDown   = key.NewBinding(key.WithKeys("down", "ctrl+n"))
	keyApply  = key.NewBinding(key.WithKeys("enter"))
	keyCancel = key.NewBinding(key.WithKeys("esc", "ctrl+c"))
)

type entries []Entry

func (e entries) String(i int) string { return e[i].Title }

func (e entries) Len() int { return len(e) }

type Model struct {
	entries entries
	input   textinput.Model
	matches fuzzy.Matches
	cursor  int
	open    bool
	styles  styles
}

type styles struct {
	border   lipgloss.Style
	text     lipgloss.Style
	matched  lipgloss.Style
	selected lipgloss.Style
}

func New(sections []Entry) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "section..."
	ti.CharLimit = 40
	ti.SetWidth(30)

	m := &Model{
		entries: entries(sections),
		input:   ti,
		styles: styles{
			border:   common.DefaultPalette.GetBorder("jump border", lipgloss.RoundedBorder()),
			text:     common.DefaultPalette.Get("text"),
			matched:  common.DefaultPalette.Get("jump matched"),
			selected: common.DefaultPalette.Get("jump selected"),
		},
	}
	m.search("")
	return m
}

func (m *Model) Open() tea.Cmd {
	m.open = true
	m.input.Reset()
	m.search("")
	return m.input.Focus()
}

func (m *Model) Close() {
	m.open = false
	m.input.Blur()
}

func (m *Model) IsOpen() bool {
	return m.open
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(keyMsg, keyCancel):
		m.Close()
		return newCmd(CancelledMsg{})
	case key.Matches(keyMsg, keyApply):
		m.Close()
		if len(m.matches) == 0 {
			return newCmd(CancelledMsg{})
		}
		return newCmd(SelectedMsg{Section: m.entries[m.matches[m.cursor].Index].Section})
	case key.Matches(keyMsg, keyUp):
		m.moveCursor(-1)
		return nil
	case key.Matches(keyMsg, keyDown):
		m.moveCursor(1)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search(m.input.Value())
	return cmd
}

func (m *Model) moveCursor(delta int) {
	n := len(m.matches)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// search ranks entries by fuzzy score; an empty query lists them all.
func (m *Model) search(query string) {
	query = strings.TrimSpace(query)
	m.cursor = 0
	if query == "" {
		m.matches = make(fuzzy.Matches, 0, m.entries.Len())
		for i := range m.entries {
			m.matches = append(m.matches, fuzzy.Match{Str: m.entries[i].Title, Index: i})
		}
		return
	}
	m.matches = fuzzy.FindFrom(query, m.entries)
}

func (m *Model) Matches() []Entry {
	out := make([]Entry, 0, len(m.matches))
	for _, match := range m.matches {
		out = append(out, m.entries[match.Index])
	}
	return out
}

func (m *Model) View() string {
	if !m.open {
		return ""
	}
	lines := []string{m.input.View(), ""}
	for i, match := range m.matches {
		line := m.highlight(match)
		if i == m.cursor {
			line = m.styles.selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(m.matches) == 0 {
		lines = append(lines, m.styles.text.Render("  aucune section"))
	}
	return m.styles.border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m *Model) highlight(match fuzzy.Match) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(m.styles.matched.Render(string(r)))
		} else {
			b.WriteString(m.styles.text.Render(string(r)))
		}
	}
	return b.String()
}

func newCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
