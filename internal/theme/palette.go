// Package theme holds the colour palettes of both applications and the Fyne
// themes built from them.
package theme

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// Hex is a colour written as #RRGGBB or #RRGGBBAA in YAML.
type Hex color.NRGBA

// ParseHex parses #RRGGBB or #RRGGBBAA. The leading # is optional.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (h *Hex) UnmarshalYAML(node *yaml.Node) error {
	c, err := ParseHex(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*h = Hex(c)
	return nil
}

// NRGBA returns the colour.
func (h Hex) NRGBA() color.NRGBA { return color.NRGBA(h) }

// WithAlpha returns the colour with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Scale darkens c by f, truncating like a byte cast.
func Scale(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

// Palette is the Morandi colour set of the image studio.
type Palette struct {
	RoseGray       Hex `yaml:"rose_gray"`
	DustyPink      Hex `yaml:"dusty_pink"`
	SageGreen      Hex `yaml:"sage_green"`
	SageGreenHover Hex `yaml:"sage_green_hover"`
	DustyBlue      Hex `yaml:"dusty_blue"`
	DustyBlueHover Hex `yaml:"dusty_blue_hover"`
	WarmGray       Hex `yaml:"warm_gray"`
	Lavender       Hex `yaml:"lavender"`
	Cream          Hex `yaml:"cream"`
	Taupe          Hex `yaml:"taupe"`
	BgLight        Hex `yaml:"bg_light"`
	BgCard         Hex `yaml:"bg_card"`
	TextPrimary    Hex `yaml:"text_primary"`
	TextSecondary  Hex `yaml:"text_secondary"`
	TextMuted      Hex `yaml:"text_muted"`
	Accent         Hex `yaml:"accent"`
	AccentHover    Hex `yaml:"accent_hover"`
}

// GlassTheme is one of the pastel themes of the liquid glass shell.
type GlassTheme struct {
	Name            string `yaml:"name"`
	English         string `yaml:"english"`
	Icon            string `yaml:"icon"`
	PrimaryLight    Hex    `yaml:"primary_light"`
	PrimaryMedium   Hex    `yaml:"primary_medium"`
	PrimaryAccent   Hex    `yaml:"primary_accent"`
	BackgroundStart Hex    `yaml:"background_start"`
	BackgroundEnd   Hex    `yaml:"background_end"`
	SidebarStart    Hex    `yaml:"sidebar_start"`
	SidebarEnd      Hex    `yaml:"sidebar_end"`
	BorderAccent    Hex    `yaml:"border_accent"`
	AccentStart     Hex    `yaml:"accent_start"`
	AccentMiddle    Hex    `yaml:"accent_middle"`
	AccentEnd       Hex    `yaml:"accent_end"`
	CardBackground  Hex    `yaml:"card_background"`
	CardBorder      Hex    `yaml:"card_border"`
	IconBg          []Hex  `yaml:"icon_bg"`
	Shadow          Hex    `yaml:"shadow"`
}

// GlassText holds the colours of the glass shell that stay fixed across themes.
type GlassText struct {
	Title        Hex `yaml:"title"`
	Muted        Hex `yaml:"muted"`
	Faint        Hex `yaml:"faint"`
	OK           Hex `yaml:"ok"`
	OnAccent     Hex `yaml:"on_accent"`
	Neutral      Hex `yaml:"neutral"`
	NeutralHover Hex `yaml:"neutral_hover"`
	NeutralText  Hex `yaml:"neutral_text"`
}

// Label is the badge text. The English name is used because Fyne's bundled
// fonts carry no CJK glyphs.
func (g GlassTheme) Label() string {
	return g.Icon + " " + g.English
}

// Catalog is the decoded themes.yaml.
type Catalog struct {
	Morandi   Palette      `yaml:"morandi"`
	Glass     []GlassTheme `yaml:"glass"`
	GlassText GlassText    `yaml:"glass_text"`
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}
	if len(c.Glass) == 0 {
		return nil, fmt.Errorf("parse themes: no glass themes defined")
	}
	for i, g := range c.Glass {
		if g.Name == "" {
			return nil, fmt.Errorf("parse themes: glass theme %d has no name", i)
		}
	}
	return &c, nil
}

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which the package tests rule out.
func Default() *Catalog {
	c, err := Parse(themesYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Cycle steps through the glass themes in order, wrapping around.
type Cycle struct {
	themes []GlassTheme
	index  int
}

// NewCycle starts at the first theme.
func NewCycle(themes []GlassTheme) *Cycle {
	return &Cycle{themes: themes}
}

// Current returns the active theme.
func (c *Cycle) Current() GlassTheme {
	return c.themes[c.index]
}

// Next advances and returns the new active theme.
func (c *Cycle) Next() GlassTheme {
	c.index = (c.index + 1) % len(c.themes)
	return c.themes[c.index]
}

// Index returns the position of the active theme.
func (c *Cycle) Index() int { return c.index }
