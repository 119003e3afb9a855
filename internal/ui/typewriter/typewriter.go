// Package typewriter reveals a text one character at a time.
package typewriter

import (
	"fmt"
	"iter"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/rivo/uniseg"
)

// RevealedMsg is emitted every time one more character becomes visible.
type RevealedMsg struct {
	ID     int
	Prefix string
	Done   bool
}

type tickMsg struct {
	id  int
	tag int
}

// Model owns the reveal state and the timer that paces it. A character is a
// grapheme cluster, so combining sequences are revealed as a unit.
type Model struct {
	id       int
	tag      int
	clusters []string
	revealed int
	delay    time.Duration
	timer    *common.Timer
}

func New(text string, delay time.Duration) (*Model, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("typewriter delay %s: %w", delay, common.ErrInvalidArgument)
	}
	return &Model{
		id:       common.NextID(),
		clusters: split(text),
		delay:    delay,
		timer:    common.NewTimer(),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	if m.Done() {
		return nil
	}
	return m.schedule()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok || tick.id != m.id || tick.tag != m.tag {
		return nil
	}
	if m.timer.Stopped() || m.Done() {
		return nil
	}

	m.revealed++
	revealed := RevealedMsg{ID: m.id, Prefix: m.Prefix(), Done: m.Done()}
	emit := func() tea.Msg { return revealed }
	if revealed.Done {
		return emit
	}
	return tea.Batch(emit, m.schedule())
}

func (m *Model) schedule() tea.Cmd {
	m.tag++
	id, tag := m.id, m.tag
	return m.timer.After(m.delay, func() tea.Msg {
		return tickMsg{id: id, tag: tag}
	})
}

// Stop cancels the pending tick. Nothing is emitted afterwards.
func (m *Model) Stop() {
	m.timer.Stop()
}

// Skip reveals the whole text at once and stops the timer.
func (m *Model) Skip() {
	m.revealed = len(m.clusters)
	m.timer.Stop()
}

func (m *Model) ID() int {
	return m.id
}

func (m *Model) Len() int {
	return len(m.clusters)
}

func (m *Model) Revealed() int {
	return m.revealed
}

func (m *Model) Done() bool {
	return m.revealed >= len(m.clusters)
}

func (m *Model) Prefix() string {
	return strings.Join(m.clusters[:m.revealed], "")
}

func (m *Model) View() string {
	return m.Prefix()
}

// Prefixes yields the growing prefixes of text in reveal order, without any
// pacing. The empty string yields nothing.
func Prefixes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var b strings.Builder
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			b.WriteString(g.Str())
			if !yield(b.String()) {
				return
			}
		}
	}
}

func split(text string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
