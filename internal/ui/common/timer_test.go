package common

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct{}

func TestTimer_AfterFires(t *testing.T) {
	timer := NewTimer()
	cmd := timer.After(time.Millisecond, func() tea.Msg { return pingMsg{} })
	require.NotNil(t, cmd)
	assert.Equal(t, pingMsg{}, cmd())
}

func TestTimer_StopCancelsPendingCommand(t *testing.T) {
	timer := NewTimer()
	cmd := timer.After(time.Hour, func() tea.Msg { return pingMsg{} })
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	timer.Stop()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("stopped timer kept waiting")
	}
}

func TestTimer_StoppedTimerSchedulesNothing(t *testing.T) {
	timer := NewTimer()
	timer.Stop()
	timer.Stop()

	assert.True(t, timer.Stopped())
	assert.Nil(t, timer.After(time.Millisecond, func() tea.Msg { return pingMsg{} }))
}

func TestNextID_Unique(t *testing.T) {
	a, b := NextID(), NextID()
	assert.NotEqual(t, a, b)
}
