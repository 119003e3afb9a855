package dashboard

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/formationpro/landing/internal/config"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/formationpro/landing/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	keyMap, err := common.NewKeyMap(config.Default().Keys)
	require.NoError(t, err)
	m, err := New(keyMap, Intervals{Progress: time.Hour, Notification: time.Hour, Chart: time.Hour})
	require.NoError(t, err)
	t.Cleanup(m.Stop)
	return m
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func TestNew_RejectsNonPositiveIntervals(t *testing.T) {
	keyMap, err := common.NewKeyMap(config.Default().Keys)
	require.NoError(t, err)

	_, err = New(keyMap, Intervals{Progress: time.Second, Notification: 0, Chart: time.Second})
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestModel_ProgressWrapsAfterHundred(t *testing.T) {
	m := newModel(t)
	m.Init()

	for range 100 {
		require.NotNil(t, m.Update(progressMsg{id: m.id}))
	}
	assert.Equal(t, 100, m.progress)

	m.Update(progressMsg{id: m.id})
	assert.Equal(t, 0, m.progress)
}

func TestModel_NotificationsWrapAfterFive(t *testing.T) {
	m := newModel(t)

	for range 5 {
		m.Update(notificationMsg{id: m.id})
	}
	assert.Equal(t, 5, m.notifications)

	m.Update(notificationMsg{id: m.id})
	assert.Equal(t, 0, m.notifications)
}

func TestModel_ChartIsRerolled(t *testing.T) {
	m := newModel(t)
	m.intn = func(n int) int { return n - 1 }

	m.Update(chartMsg{id: m.id})
	assert.Equal(t, []int{99, 99, 99, 99, 99, 99, 99}, m.chart)
}

func TestModel_IgnoresTicksOfOtherDashboards(t *testing.T) {
	m := newModel(t)

	assert.Nil(t, m.Update(progressMsg{id: m.id + 1}))
	assert.Equal(t, 0, m.progress)
}

func TestModel_StopIgnoresTicks(t *testing.T) {
	m := newModel(t)
	m.Stop()

	assert.Nil(t, m.Update(progressMsg{id: m.id}))
	assert.Nil(t, m.Update(chartMsg{id: m.id}))
	assert.Equal(t, 0, m.progress)
}

func TestModel_LikeAndBookmarkToggle(t *testing.T) {
	m := newModel(t)
	m.SetFocused(true)

	m.Update(press('L'))
	assert.True(t, m.liked)
	assert.Equal(t, 43, m.likes)
	m.Update(press('L'))
	assert.False(t, m.liked)
	assert.Equal(t, 42, m.likes)

	m.Update(press('b'))
	assert.True(t, m.bookmarked)
	assert.Equal(t, 13, m.bookmarks)
}

func TestModel_TabSwitching(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, TabDashboard, m.ActiveTab())

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, TabDashboard, m.ActiveTab(), "unfocused dashboard ignores keys")

	m.SetFocused(true)
	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, TabCourses, m.ActiveTab())

	m.Update(press('3'))
	assert.Equal(t, TabProgress, m.ActiveTab())

	assert.Nil(t, m.Update(press('9')))
	assert.Equal(t, TabProgress, m.ActiveTab())
	assert.Nil(t, m.Update(press('0')))
	assert.Equal(t, TabProgress, m.ActiveTab())

	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, TabProgress, m.ActiveTab())
}

func TestModel_ViewPerTab(t *testing.T) {
	m := newModel(t)
	m.SetWidth(100)
	m.SetFocused(true)

	output := test.Plain(m.View())
	assert.Contains(t, output, "Cours Terminés")
	assert.Contains(t, output, "Lun")

	m.Update(press('2'))
	m.Update(notificationMsg{id: m.id})
	output = test.Plain(m.View())
	assert.Contains(t, output, "React Avancé")
	assert.Contains(t, output, "♡ 42")
	assert.Contains(t, output, "🔔")

	m.Update(press('3'))
	output = test.Plain(m.View())
	assert.Contains(t, output, "Projet portfolio")
	assert.Contains(t, output, "Nouveau badge obtenu")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", bar(50, 100, 10))
	assert.Equal(t, "░░░░░░░░░░", bar(-3, 100, 10))
	assert.Equal(t, "██████████", bar(150, 100, 10))
}
