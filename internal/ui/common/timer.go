package common

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastID atomic.Int64

// NextID returns a process-wide unique widget id. Tick messages carry it so
// that widgets sharing one program only react to their own timers.
func NextID() int {
	return int(lastID.Add(1))
}

// Timer schedules the delayed messages of a single widget. Stopping it
// cancels every pending command; a stopped timer never schedules again.
type Timer struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewTimer() *Timer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Timer{ctx: ctx, cancel: cancel}
}

// After returns a command that waits d and then yields fn(). The command
// yields nil as soon as the timer is stopped, even mid-wait.
func (t *Timer) After(d time.Duration, fn func() tea.Msg) tea.Cmd {
	if fn == nil || t.Stopped() {
		return nil
	}
	ctx := t.ctx
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
		return fn()
	}
}

// Stop cancels pending commands. It is safe to call more than once.
func (t *Timer) Stop() {
	t.once.Do(t.cancel)
}

func (t *Timer) Stopped() bool {
	return t.ctx.Err() != nil
}
