package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/BurntSushi/toml"
)

const appDir = "formationpro"

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("LANDING_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		xdgConfigDir := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, appDir, "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], appDir, "config.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

func loadDefaultConfig() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: no embedded default config found: %v\n", err)
		os.Exit(1)
	}

	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load embedded default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// Default returns a fresh copy of the embedded configuration.
func Default() *Config {
	return loadDefaultConfig()
}

// Load decodes data on top of the current values and validates the result.
// Colour and key tables are merged entry by entry.
func (c *Config) Load(data string) error {
	baseColors := c.UI.Colors
	baseKeys := c.Keys
	c.UI.Colors = nil
	c.Keys = nil

	if _, err := toml.Decode(data, c); err != nil {
		return err
	}

	c.UI.Colors = mergeMaps(baseColors, c.UI.Colors)
	c.Keys = mergeMaps(baseKeys, c.Keys)
	return c.Validate()
}

func mergeMaps[V any](base, overlay map[string]V) map[string]V {
	if base == nil && overlay == nil {
		return nil
	}
	merged := make(map[string]V, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// LoadFile loads the user config file at p, or the default location when p
// is empty. A missing file at the default location is not an error.
func (c *Config) LoadFile(p string) error {
	explicit := p != ""
	if !explicit {
		p = getConfigFilePath()
	}
	if p == "" {
		return nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %q: %w", p, err)
	}
	if err := c.Load(string(data)); err != nil {
		return fmt.Errorf("loading config %q: %w", p, err)
	}
	return nil
}

// UnknownKeys lists keys in content that do not map to any config field.
func UnknownKeys(content string) []string {
	var decoded Config
	md, err := toml.Decode(content, &decoded)
	if err != nil {
		return nil
	}
	var keys []string
	for _, key := range md.Undecoded() {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return keys
}

func loadTheme(data []byte, base map[string]Color) (map[string]Color, error) {
	colors := make(map[string]Color)
	for key, color := range base {
		colors[key] = color
	}
	err := toml.Unmarshal(data, &colors)
	if err != nil {
		return nil, err
	}
	return colors, nil
}

func LoadEmbeddedTheme(name string) (map[string]Color, error) {
	embeddedPath := "default/" + name + ".toml"
	data, err := configFS.ReadFile(embeddedPath)
	if err != nil {
		return nil, err
	}
	return loadTheme(data, nil)
}

func LoadTheme(name string, base map[string]Color) (map[string]Color, error) {
	configFilePath := getConfigFilePath()
	themeFile := filepath.Join(filepath.Dir(configFilePath), "themes", name+".toml")

	data, err := os.ReadFile(themeFile)
	if err != nil {
		return nil, err
	}
	return loadTheme(data, base)
}

// ResolveColors builds the palette entries for the active background: the
// embedded base theme, then the configured theme, then [ui.colors].
func (c *Config) ResolveColors(dark bool) (map[string]Color, error) {
	baseName, name := "light", c.UI.Theme.Light
	if dark {
		baseName, name = "dark", c.UI.Theme.Dark
	}

	colors, err := LoadEmbeddedTheme(baseName)
	if err != nil {
		return nil, fmt.Errorf("loading embedded theme %q: %w", baseName, err)
	}
	if name != "" && name != baseName {
		if embedded, err := LoadEmbeddedTheme(name); err == nil {
			colors = mergeMaps(colors, embedded)
		} else if colors, err = LoadTheme(name, colors); err != nil {
			return nil, fmt.Errorf("loading theme %q: %w", name, err)
		}
	}
	return mergeMaps(colors, c.UI.Colors), nil
}
