package status

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/x/ansi"
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
	m := New()
	m.SetHelp(keyMap.ShortHelp())
	return m
}

func TestView_ShowsModeAndHelp(t *testing.T) {
	m := newModel(t)
	m.SetMode("Tarifs")

	view := test.Plain(m.View(0))

	assert.Contains(t, view, "Tarifs")
	assert.Contains(t, view, "tab section suivante")
	assert.Contains(t, view, "q quitter")
	assert.False(t, m.Truncated())
}

func TestView_TruncatesToWidth(t *testing.T) {
	m := newModel(t)

	view := m.View(30)

	assert.True(t, m.Truncated())
	assert.Equal(t, 30, ansi.StringWidth(view))
	assert.Contains(t, test.Plain(view), "…")
}

func TestView_SkipsDisabledBindings(t *testing.T) {
	m := New()
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "caché"))
	hidden.SetEnabled(false)
	m.SetHelp([]key.Binding{hidden, key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quitter"))})

	view := test.Plain(m.View(0))

	assert.NotContains(t, view, "caché")
	assert.Contains(t, view, "quitter")
}
