package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestLoadTheme(t *testing.T) {
	themeData := []byte(`
title = { fg = "blue", bold = true }
selected = { fg = "white", bg = "blue" }
error = "red"
`)

	theme, err := loadTheme(themeData, nil)
	require.NoError(t, err)

	expected := map[string]Color{
		"title":    {Fg: "blue", Bold: boolPtr(true)},
		"selected": {Fg: "white", Bg: "blue"},
		"error":    {Fg: "red"},
	}

	assert.Equal(t, expected, theme)
}

func TestLoadThemeWithBase(t *testing.T) {
	baseTheme := map[string]Color{
		"title":    {Fg: "green", Bold: boolPtr(true)},
		"selected": {Fg: "cyan", Bg: "black"},
		"error":    {Fg: "red"},
	}

	theme, err := loadTheme([]byte(`title = { fg = "magenta" }`), baseTheme)
	require.NoError(t, err)

	assert.Equal(t, "magenta", theme["title"].Fg)
	assert.Equal(t, "cyan", theme["selected"].Fg)
	assert.Equal(t, "red", theme["error"].Fg)
	assert.Equal(t, "green", baseTheme["title"].Fg, "base theme must not be modified")
}

func TestLoadEmbeddedTheme(t *testing.T) {
	for _, name := range []string{"dark", "light"} {
		theme, err := LoadEmbeddedTheme(name)
		require.NoError(t, err, name)
		assert.Contains(t, theme, "brand")
		assert.Contains(t, theme, "dashboard tab active")
	}
}

func TestLoadFile_MissingDefaultIsIgnored(t *testing.T) {
	t.Setenv("LANDING_CONFIG_DIR", t.TempDir())

	config := Default()
	require.NoError(t, config.LoadFile(""))
	assert.Equal(t, 30*time.Millisecond, config.TypingSpeed())
}

func TestLoadFile_MissingExplicitFileFails(t *testing.T) {
	config := Default()
	assert.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestLoadFile_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LANDING_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ntyping_speed_ms = 12\n"), 0o644))

	config := Default()
	require.NoError(t, config.LoadFile(""))
	assert.Equal(t, 12*time.Millisecond, config.TypingSpeed())
	assert.Equal(t, dir, GetConfigDir())
}

func TestResolveColors_UserThemeAndOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LANDING_CONFIG_DIR", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "ocean.toml"), []byte(`brand = { fg = "cyan" }`), 0o644))

	config := Default()
	require.NoError(t, config.Load(`
[ui]
theme = "ocean"

[ui.colors]
accent = "magenta"
`))

	colors, err := config.ResolveColors(true)
	require.NoError(t, err)
	assert.Equal(t, "cyan", colors["brand"].Fg)
	assert.Equal(t, "magenta", colors["accent"].Fg)
	assert.Contains(t, colors, "footer")
}

func TestResolveColors_MissingThemeFails(t *testing.T) {
	t.Setenv("LANDING_CONFIG_DIR", t.TempDir())

	config := Default()
	require.NoError(t, config.Load(`[ui]
theme = "missing"
`))
	_, err := config.ResolveColors(false)
	assert.Error(t, err)
}
