// Package carousel keeps a wrap-around selection over a fixed list of items,
// optionally advancing on a recurring timer.
package carousel

import (
	"fmt"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/formationpro/landing/internal/ui/common"
)

type tickMsg struct {
	id  int
	tag int
}

// Model is a cyclic selector over items. Manual navigation does not reset
// the auto-advance timer: a manual Next right before a tick advances twice.
type Model[T any] struct {
	id       int
	tag      int
	items    []T
	index    int
	interval time.Duration
	timer    *common.Timer
}

// New builds a selector positioned on the first item. An interval of zero
// disables auto-advance.
func New[T any](items []T, interval time.Duration) (*Model[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("carousel needs at least one item: %w", common.ErrInvalidArgument)
	}
	if interval < 0 {
		return nil, fmt.Errorf("carousel interval %s: %w", interval, common.ErrInvalidArgument)
	}
	return &Model[T]{
		id:       common.NextID(),
		items:    slices.Clone(items),
		interval: interval,
		timer:    common.NewTimer(),
	}, nil
}

func (m *Model[T]) Init() tea.Cmd {
	if m.interval == 0 {
		return nil
	}
	return m.schedule()
}

func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok || tick.id != m.id || tick.tag != m.tag || m.timer.Stopped() {
		return nil
	}
	m.Next()
	return m.schedule()
}

func (m *Model[T]) schedule() tea.Cmd {
	m.tag++
	id, tag := m.id, m.tag
	return m.timer.After(m.interval, func() tea.Msg {
		return tickMsg{id: id, tag: tag}
	})
}

func (m *Model[T]) Next() {
	m.index = (m.index + 1) % len(m.items)
}

func (m *Model[T]) Previous() {
	m.index = (m.index - 1 + len(m.items)) % len(m.items)
}

// SelectAt moves directly to index i. An out of range index leaves the
// selection untouched.
func (m *Model[T]) SelectAt(i int) error {
	if i < 0 || i >= len(m.items) {
		return fmt.Errorf("select %d of %d items: %w", i, len(m.items), common.ErrOutOfRange)
	}
	m.index = i
	return nil
}

func (m *Model[T]) Current() (int, T) {
	return m.index, m.items[m.index]
}

func (m *Model[T]) Index() int {
	return m.index
}

func (m *Model[T]) Len() int {
	return len(m.items)
}

// Items returns a copy of the rotated items.
func (m *Model[T]) Items() []T {
	return slices.Clone(m.items)
}

// Stop cancels the auto-advance timer.
func (m *Model[T]) Stop() {
	m.timer.Stop()
}
