package theme

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// MorandiTheme maps the Morandi palette onto Fyne's light theme.
type MorandiTheme struct {
	base    fyne.Theme
	palette Palette
}

func NewMorandiTheme(p Palette) *MorandiTheme {
	return &MorandiTheme{base: fynetheme.DefaultTheme(), palette: p}
}

func (t *MorandiTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.palette
	switch name {
	case fynetheme.ColorNameBackground:
		return p.BgLight.NRGBA()
	case fynetheme.ColorNameForeground:
		return p.TextPrimary.NRGBA()
	case fynetheme.ColorNamePlaceHolder, fynetheme.ColorNameDisabled:
		return p.TextMuted.NRGBA()
	case fynetheme.ColorNameButton, fynetheme.ColorNameInputBackground:
		return p.BgCard.NRGBA()
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return p.Taupe.NRGBA()
	case fynetheme.ColorNameHover:
		return WithAlpha(p.AccentHover.NRGBA(), 0x40)
	case fynetheme.ColorNamePressed:
		return WithAlpha(p.Taupe.NRGBA(), 0x60)
	case fynetheme.ColorNameSelection:
		return WithAlpha(p.RoseGray.NRGBA(), 0x80)
	case fynetheme.ColorNameSeparator, fynetheme.ColorNameInputBorder:
		return p.Cream.NRGBA()
	case fynetheme.ColorNameOverlayBackground, fynetheme.ColorNameMenuBackground:
		return p.BgCard.NRGBA()
	case fynetheme.ColorNameShadow:
		return WithAlpha(p.TextPrimary.NRGBA(), 0x22)
	default:
		return t.base.Color(name, fynetheme.VariantLight)
	}
}

func (t *MorandiTheme) Font(style fyne.TextStyle) fyne.Resource    { return t.base.Font(style) }
func (t *MorandiTheme) Icon(name fyne.ThemeIconName) fyne.Resource { return t.base.Icon(name) }
func (t *MorandiTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case fynetheme.SizeNameText:
		return 13
	case fynetheme.SizeNameInputRadius, fynetheme.SizeNameSelectionRadius:
		return 10
	default:
		return t.base.Size(name)
	}
}

// GlassFyneTheme follows the active glass theme. Set swaps the colours; the
// caller refreshes the window afterwards.
type GlassFyneTheme struct {
	mu      sync.RWMutex
	base    fyne.Theme
	current GlassTheme
}

func NewGlassFyneTheme(g GlassTheme) *GlassFyneTheme {
	return &GlassFyneTheme{base: fynetheme.DefaultTheme(), current: g}
}

// Set replaces the active glass theme.
func (t *GlassFyneTheme) Set(g GlassTheme) {
	t.mu.Lock()
	t.current = g
	t.mu.Unlock()
}

// Current returns the active glass theme.
func (t *GlassFyneTheme) Current() GlassTheme {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

var glassText = color.NRGBA{R: 0x4A, G: 0x45, B: 0x50, A: 0xFF}

func (t *GlassFyneTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	g := t.Current()
	switch name {
	case fynetheme.ColorNameBackground:
		return g.BackgroundStart.NRGBA()
	case fynetheme.ColorNameForeground:
		return glassText
	case fynetheme.ColorNameButton, fynetheme.ColorNameInputBackground:
		return g.CardBackground.NRGBA()
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return g.AccentMiddle.NRGBA()
	case fynetheme.ColorNameHover:
		return WithAlpha(g.AccentMiddle.NRGBA(), 24)
	case fynetheme.ColorNamePressed:
		return WithAlpha(g.AccentMiddle.NRGBA(), 48)
	case fynetheme.ColorNameSelection:
		return WithAlpha(g.AccentStart.NRGBA(), 0x80)
	case fynetheme.ColorNameSeparator, fynetheme.ColorNameInputBorder:
		return WithAlpha(g.AccentMiddle.NRGBA(), 32)
	case fynetheme.ColorNameShadow:
		return WithAlpha(g.Shadow.NRGBA(), 0x30)
	case fynetheme.ColorNameOverlayBackground, fynetheme.ColorNameMenuBackground:
		return g.PrimaryLight.NRGBA()
	default:
		return t.base.Color(name, fynetheme.VariantLight)
	}
}

func (t *GlassFyneTheme) Font(style fyne.TextStyle) fyne.Resource    { return t.base.Font(style) }
func (t *GlassFyneTheme) Icon(name fyne.ThemeIconName) fyne.Resource { return t.base.Icon(name) }
func (t *GlassFyneTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case fynetheme.SizeNameInputRadius, fynetheme.SizeNameSelectionRadius:
		return 12
	default:
		return t.base.Size(name)
	}
}
