package config

import (
	"embed"
	"errors"
	"fmt"
	"time"
)

//go:embed default/*.toml
var configFS embed.FS

type Config struct {
	UI        UIConfig              `toml:"ui"`
	Dashboard DashboardConfig       `toml:"dashboard"`
	Keys      map[string]StringList `toml:"keys"`
}

type UIConfig struct {
	Theme              ThemeConfig      `toml:"theme"`
	Colors             map[string]Color `toml:"colors"`
	TypingSpeedMs      int              `toml:"typing_speed_ms"`
	CarouselIntervalMs int              `toml:"carousel_interval_ms"`
	CursorBlinkMs      int              `toml:"cursor_blink_ms"`
	FlashTimeoutMs     int              `toml:"flash_timeout_ms"`
}

type DashboardConfig struct {
	ProgressIntervalMs     int `toml:"progress_interval_ms"`
	NotificationIntervalMs int `toml:"notification_interval_ms"`
	ChartIntervalMs        int `toml:"chart_interval_ms"`
}

// ThemeConfig accepts either a single theme name or a {dark, light} table.
type ThemeConfig struct {
	Dark  string `toml:"dark"`
	Light string `toml:"light"`
}

func (t *ThemeConfig) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		t.Dark = v
		t.Light = v
		return nil
	case map[string]any:
		if dark, ok := v["dark"].(string); ok {
			t.Dark = dark
		}
		if light, ok := v["light"].(string); ok {
			t.Light = light
		}
		return nil
	default:
		return fmt.Errorf("theme: expected string or table, got %T", value)
	}
}

// Color accepts either a foreground colour name or a table of attributes.
type Color struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          *bool  `toml:"bold"`
	Italic        *bool  `toml:"italic"`
	Underline     *bool  `toml:"underline"`
	Strikethrough *bool  `toml:"strikethrough"`
	Reverse       *bool  `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		*c = Color{}
		c.Fg, _ = v["fg"].(string)
		c.Bg, _ = v["bg"].(string)
		c.Bold = boolAttr(v, "bold")
		c.Italic = boolAttr(v, "italic")
		c.Underline = boolAttr(v, "underline")
		c.Strikethrough = boolAttr(v, "strikethrough")
		c.Reverse = boolAttr(v, "reverse")
		return nil
	default:
		return fmt.Errorf("color: expected string or table, got %T", value)
	}
}

func boolAttr(table map[string]any, key string) *bool {
	b, ok := table[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// StringList allows TOML values to be specified as a string or array of strings.
type StringList []string

func (l *StringList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = StringList{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			out = append(out, s)
		}
		*l = StringList(out)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

var errInvalidInterval = errors.New("must be a positive number of milliseconds")

// Validate rejects intervals the widgets cannot be built with. The carousel
// interval may be zero, which disables auto-advance. A zero flash timeout
// keeps messages until dismissed.
func (c *Config) Validate() error {
	positive := []struct {
		key   string
		value int
	}{
		{"ui.typing_speed_ms", c.UI.TypingSpeedMs},
		{"ui.cursor_blink_ms", c.UI.CursorBlinkMs},
		{"dashboard.progress_interval_ms", c.Dashboard.ProgressIntervalMs},
		{"dashboard.notification_interval_ms", c.Dashboard.NotificationIntervalMs},
		{"dashboard.chart_interval_ms", c.Dashboard.ChartIntervalMs},
	}
	var errs []error
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s = %d: %w", p.key, p.value, errInvalidInterval))
		}
	}
	if c.UI.CarouselIntervalMs < 0 {
		errs = append(errs, fmt.Errorf("ui.carousel_interval_ms = %d: must not be negative", c.UI.CarouselIntervalMs))
	}
	if c.UI.FlashTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("ui.flash_timeout_ms = %d: must not be negative", c.UI.FlashTimeoutMs))
	}
	return errors.Join(errs...)
}

func (c *Config) TypingSpeed() time.Duration {
	return millis(c.UI.TypingSpeedMs)
}

func (c *Config) CarouselInterval() time.Duration {
	return millis(c.UI.CarouselIntervalMs)
}

func (c *Config) CursorBlink() time.Duration {
	return millis(c.UI.CursorBlinkMs)
}

func (c *Config) FlashTimeout() time.Duration {
	return millis(c.UI.FlashTimeoutMs)
}

func (c *Config) ProgressInterval() time.Duration {
	return millis(c.Dashboard.ProgressIntervalMs)
}

func (c *Config) NotificationInterval() time.Duration {
	return millis(c.Dashboard.NotificationIntervalMs)
}

func (c *Config) ChartInterval() time.Duration {
	return millis(c.Dashboard.ChartIntervalMs)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
