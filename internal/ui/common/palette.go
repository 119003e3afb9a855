package common

import (
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/formationpro/landing/internal/config"

	"charm.land/lipgloss/v2"
)

// DefaultPalette is filled from the resolved theme at start-up.
var DefaultPalette = NewPalette()

// Palette resolves space separated selectors such as "dashboard tab active"
// to styles. A selector inherits from every shorter run of its words, longer
// and earlier runs taking precedence, so "dashboard tab active" only needs to
// state what differs from "dashboard tab".
type Palette struct {
	styles map[string]lipgloss.Style
	cache  map[string]lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		styles: make(map[string]lipgloss.Style),
		cache:  make(map[string]lipgloss.Style),
	}
}

// Update replaces the styles of every selector in styleMap and drops cached
// lookups so later Get calls see the new theme.
func (p *Palette) Update(styleMap map[string]config.Color) {
	for selector, c := range styleMap {
		p.styles[strings.Join(strings.Fields(selector), " ")] = styleFrom(c)
	}
	clear(p.cache)
}

func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	words := strings.Fields(selector)
	style := lipgloss.NewStyle()
	for start := range words {
		for end := len(words); end > start; end-- {
			if s, ok := p.styles[strings.Join(words[start:end], " ")]; ok {
				style = style.Inherit(s)
			}
		}
	}
	p.cache[selector] = style
	return style
}

// Variant resolves selector with variant appended when on is set. Sections use
// it for their focused, active and selected states: "nav link" with "active"
// resolves "nav link active", which falls back to "nav link" for anything the
// theme leaves out.
func (p *Palette) Variant(selector, variant string, on bool) lipgloss.Style {
	if on {
		selector += " " + variant
	}
	return p.Get(selector)
}

// GetBorder paints border in the colours of selector.
func (p *Palette) GetBorder(selector string, border lipgloss.Border) lipgloss.Style {
	return bordered(p.Get(selector), border)
}

// BorderVariant is GetBorder for Variant.
func (p *Palette) BorderVariant(selector, variant string, on bool, border lipgloss.Border) lipgloss.Style {
	return bordered(p.Variant(selector, variant, on), border)
}

func bordered(style lipgloss.Style, border lipgloss.Border) lipgloss.Style {
	fg, bg := style.GetForeground(), style.GetBackground()
	return lipgloss.NewStyle().
		Border(border).
		Foreground(fg).
		Background(bg).
		BorderForeground(fg).
		BorderBackground(bg)
}

type attribute struct {
	value *bool
	apply func(lipgloss.Style, bool) lipgloss.Style
}

func styleFrom(c config.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(parseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(parseColor(c.Bg))
	}
	for _, attr := range []attribute{
		{c.Bold, lipgloss.Style.Bold},
		{c.Italic, lipgloss.Style.Italic},
		{c.Underline, lipgloss.Style.Underline},
		{c.Strikethrough, lipgloss.Style.Strikethrough},
		{c.Reverse, lipgloss.Style.Reverse},
	} {
		if attr.value != nil {
			style = attr.apply(style, *attr.value)
		}
	}
	return style
}

// ansiNames are the first eight terminal colours in code order. A "bright "
// prefix selects the upper eight.
var ansiNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// parseColor accepts "#rrggbb", an ANSI 256 code with or without the
// "ansi-color-" prefix, or one of the sixteen named colours.
func parseColor(c string) color.Color {
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	code := strings.TrimPrefix(c, "ansi-color-")
	name, bright := strings.CutPrefix(c, "bright ")
	if i := slices.Index(ansiNames, name); i >= 0 {
		if bright {
			i += len(ansiNames)
		}
		return lipgloss.Color(strconv.Itoa(i))
	}
	if v, err := strconv.Atoi(code); err == nil && v >= 0 && v <= 255 {
		return lipgloss.Color(code)
	}
	return lipgloss.NoColor{}
}
