package common

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/config"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestPalette_GetInheritsFromLessSpecificSelectors(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{
		"dashboard":            {Fg: "blue"},
		"dashboard tab active": {Bold: boolPtr(true)},
	})

	style := p.Get("dashboard tab active")
	assert.True(t, style.GetBold())
	assert.Equal(t, lipgloss.Color("4"), style.GetForeground())
}

func TestPalette_UnknownSelectorIsEmptyStyle(t *testing.T) {
	p := NewPalette()
	style := p.Get("nothing here")
	assert.False(t, style.GetBold())
	assert.Equal(t, "x", style.Render("x"))
}

func TestPalette_UpdateInvalidatesCache(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{"brand": {Fg: "red"}})
	assert.Equal(t, lipgloss.Color("1"), p.Get("brand").GetForeground())

	p.Update(map[string]config.Color{"brand": {Fg: "green"}})
	assert.Equal(t, lipgloss.Color("2"), p.Get("brand").GetForeground())
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#60a5fa"), parseColor("#60a5fa"))
	assert.Equal(t, lipgloss.Color("42"), parseColor("42"))
	assert.Equal(t, lipgloss.Color("12"), parseColor("bright blue"))
	assert.Equal(t, lipgloss.Color("3"), parseColor("yellow"))
	assert.Equal(t, lipgloss.Color("200"), parseColor("ansi-color-200"))
	assert.Equal(t, lipgloss.NoColor{}, parseColor("not-a-colour"))
}

func TestPalette_VariantFallsBackToBaseSelector(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{
		"nav link":        {Fg: "white", Underline: boolPtr(false)},
		"nav link active": {Fg: "blue"},
	})

	assert.Equal(t, lipgloss.Color("7"), p.Variant("nav link", "active", false).GetForeground())

	active := p.Variant("nav link", "active", true)
	assert.Equal(t, lipgloss.Color("4"), active.GetForeground())
	assert.False(t, active.GetUnderline())
}

func TestPalette_BorderVariantColoursFocusedFrame(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{
		"section border":         {Fg: "bright black"},
		"section border focused": {Fg: "#60a5fa"},
	})

	idle := p.BorderVariant("section border", "focused", false, lipgloss.RoundedBorder())
	focused := p.BorderVariant("section border", "focused", true, lipgloss.RoundedBorder())

	assert.Equal(t, lipgloss.Color("8"), idle.GetBorderTopForeground())
	assert.Equal(t, lipgloss.Color("#60a5fa"), focused.GetBorderTopForeground())
	assert.Equal(t, lipgloss.RoundedBorder(), focused.GetBorderStyle())
}

func TestPalette_SelectorWhitespaceIsIgnored(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{"pricing  border": {Fg: "red"}})

	assert.Equal(t, lipgloss.Color("1"), p.Get("pricing border").GetForeground())
}
