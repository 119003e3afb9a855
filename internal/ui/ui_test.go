package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/formationpro/landing/internal/config"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/formationpro/landing/internal/ui/jump"
	"github.com/formationpro/landing/internal/ui/pricing"
	"github.com/formationpro/landing/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	keyMap, err := common.NewKeyMap(cfg.Keys)
	require.NoError(t, err)
	m, err := New(cfg, keyMap, nil)
	require.NoError(t, err)
	t.Cleanup(m.Stop)
	return m
}

func press(m *Model, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
	return cmd
}

func pressCode(m *Model, code rune, mod tea.KeyMod) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code, Mod: mod})
	return cmd
}

func TestNew_FocusesHero(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, SectionHero, m.Focused())
	assert.Equal(t, "Accueil", m.status.Mode())
	assert.Equal(t, 0, m.Offset())
}

func TestModel_FocusCyclesOverInteractiveSections(t *testing.T) {
	m := newModel(t)

	var visited []string
	for range 5 {
		pressCode(m, tea.KeyTab, 0)
		visited = append(visited, m.Focused())
	}
	assert.Equal(t, []string{SectionDashboard, SectionFeatures, SectionTestimonials, SectionPricing, SectionHero}, visited)

	pressCode(m, tea.KeyTab, tea.ModShift)
	assert.Equal(t, SectionPricing, m.Focused())
}

func TestModel_KeysGoToFocusedSection(t *testing.T) {
	m := newModel(t)
	plans := m.sections[m.sectionIndex(SectionPricing)].model.(*pricing.Model)

	press(m, "a")
	assert.False(t, plans.Annual())

	pressCode(m, tea.KeyTab, tea.ModShift)
	require.Equal(t, SectionPricing, m.Focused())
	press(m, "a")
	assert.True(t, plans.Annual())
}

func TestModel_JumpFocusesSection(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	press(m, "/")
	require.True(t, m.jump.IsOpen())
	press(m, "trf")

	msgs := test.Collect(pressCode(m, tea.KeyEnter, 0))
	require.Len(t, msgs, 1)
	require.Equal(t, jump.SelectedMsg{Section: SectionPricing}, msgs[0])

	m.Update(msgs[0])
	assert.Equal(t, SectionPricing, m.Focused())
	assert.Equal(t, 1, m.flash.LiveMessagesCount())
	assert.Greater(t, m.Offset(), 0)
}

func TestModel_JumpToStaticSectionScrollsOnly(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

	m.Update(jump.SelectedMsg{Section: SectionFooter})

	assert.Equal(t, SectionHero, m.Focused())
	assert.Greater(t, m.Offset(), 0)
}

func TestModel_JumpToUnknownSectionShowsError(t *testing.T) {
	m := newModel(t)

	m.Update(jump.SelectedMsg{Section: "blog"})

	assert.Equal(t, 1, m.flash.LiveMessagesCount())
	assert.Equal(t, SectionHero, m.Focused())
}

func TestModel_KeysGoToJumpPromptWhileOpen(t *testing.T) {
	m := newModel(t)
	press(m, "/")

	press(m, "q")

	assert.True(t, m.jump.IsOpen())
	assert.False(t, m.stopped)
}

func TestModel_ScrollIsClamped(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

	pressCode(m, tea.KeyUp, 0)
	assert.Equal(t, 0, m.Offset())

	press(m, "j")
	assert.Equal(t, 1, m.Offset())

	for range 100 {
		pressCode(m, tea.KeyPgDown, 0)
	}
	last := len(m.layoutPage().lines) - m.viewportHeight()
	assert.Equal(t, last, m.Offset())

	pressCode(m, tea.KeyPgUp, 0)
	assert.Equal(t, last-m.viewportHeight(), m.Offset())
}

func TestModel_RenderFillsWindow(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})

	view := test.Plain(m.Render())

	assert.Len(t, strings.Split(view, "\n"), 24)
	assert.Contains(t, view, "FormationPro")
	assert.Contains(t, view, "Commencer maintenant")
	assert.Contains(t, view, "Accueil")
}

func TestModel_RenderShowsJumpPrompt(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})

	press(m, "/")
	view := test.Plain(m.Render())

	assert.Len(t, strings.Split(view, "\n"), 24)
	assert.Contains(t, view, "Tableau de bord")
}

func TestModel_QuitStopsWidgets(t *testing.T) {
	m := newModel(t)
	m.Init()

	cmd := press(m, "q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.stopped)
	_, next := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Nil(t, next)
	assert.Equal(t, SectionHero, m.Focused())
}

func TestModel_ViewUsesAltScreen(t *testing.T) {
	m := newModel(t)

	v := m.View()

	assert.True(t, v.AltScreen)
}

func TestModel_HelpPageTakesKeysWhileOpen(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	press(m, "?")
	require.True(t, m.help.IsOpen())
	assert.Contains(t, test.Plain(m.Render()), "mensuel/annuel")

	press(m, "q")
	assert.False(t, m.stopped)
	assert.Equal(t, "q", m.help.Query())

	pressCode(m, tea.KeyEsc, 0)
	assert.False(t, m.help.IsOpen())
}

func TestModel_ShrinkingSectionKeepsOffsetInRange(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	pressCode(m, tea.KeyTab, 0)
	require.Equal(t, SectionDashboard, m.Focused())
	for range 200 {
		pressCode(m, tea.KeyPgDown, 0)
	}

	for range 3 {
		press(m, "l")
		assert.LessOrEqual(t, m.Offset(), max(0, len(m.layoutPage().lines)-m.viewportHeight()))
		assert.NotPanics(t, func() { m.Render() })
	}
}

func TestModel_RenderClampsStaleOffset(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	m.offset = len(m.layoutPage().lines) + 50

	var view string
	require.NotPanics(t, func() { view = m.Render() })
	assert.Len(t, strings.Split(view, "\n"), 5)
}

func TestModel_BroadcastReclampsOffset(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	m.offset = len(m.layoutPage().lines) + 50

	m.Update(struct{}{})

	assert.Equal(t, len(m.layoutPage().lines)-m.viewportHeight(), m.Offset())
}
