package common

import tea "charm.land/bubbletea/v2"

// Model is implemented by every page section.
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Focusable sections receive key presses while focused.
type Focusable interface {
	Model
	SetFocused(focused bool)
	IsFocused() bool
}

// Stoppable widgets own timers that must be cancelled when the page closes.
type Stoppable interface {
	Stop()
}
