package theme

import (
	"image/color"
	"testing"

	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#C4B7A6", want: color.NRGBA{R: 0xC4, G: 0xB7, B: 0xA6, A: 0xFF}},
		{in: "fdfcfb", want: color.NRGBA{R: 0xFD, G: 0xFC, B: 0xFB, A: 0xFF}},
		{in: "#B4A0A514", want: color.NRGBA{R: 180, G: 160, B: 165, A: 20}},
		{in: "#FFF", wantErr: true},
		{in: "#GGHHII", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, color.NRGBA{R: 0xF5, G: 0xF3, B: 0xF0, A: 0xFF}, c.Morandi.BgLight.NRGBA())
	assert.Equal(t, color.NRGBA{R: 0x5D, G: 0x54, B: 0x49, A: 0xFF}, c.Morandi.TextPrimary.NRGBA())

	require.Len(t, c.Glass, 5)
	names := make([]string, 0, len(c.Glass))
	for _, g := range c.Glass {
		names = append(names, g.English)
		assert.Len(t, g.IconBg, 4, g.English)
		assert.NotEmpty(t, g.Icon, g.English)
		assert.Equal(t, uint8(20), g.BorderAccent.A, g.English)
		assert.Equal(t, uint8(15), g.CardBorder.A, g.English)
	}
	assert.Equal(t, []string{"Smoke Pink", "Mist Green", "Fog Gray", "Dusk Violet", "Haze Blue"}, names)

	pink := c.Glass[0]
	assert.Equal(t, "烟粉", pink.Name)
	assert.Equal(t, "🌸 Smoke Pink", pink.Label())
	assert.Equal(t, Hex{R: 185, G: 158, B: 165, A: 255}, pink.AccentMiddle)

	assert.Equal(t, color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}, c.GlassText.Title.NRGBA())
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c.GlassText.OnAccent.NRGBA())
	assert.Equal(t, color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xFF}, c.GlassText.NeutralText.NRGBA())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("glass: []\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("glass:\n  - name: x\n    shadow: \"#12\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("glass:\n  - english: nameless\n"))
	assert.Error(t, err)
}

func TestCycle_Wraps(t *testing.T) {
	themes := Default().Glass
	c := NewCycle(themes)

	assert.Equal(t, themes[0].Name, c.Current().Name)
	for i := 1; i < len(themes); i++ {
		assert.Equal(t, themes[i].Name, c.Next().Name)
	}
	assert.Equal(t, themes[0].Name, c.Next().Name)
	assert.Equal(t, 0, c.Index())
}

func TestScale(t *testing.T) {
	got := Scale(color.NRGBA{R: 125, G: 148, B: 172, A: 255}, 0.85)
	assert.Equal(t, color.NRGBA{R: 106, G: 125, B: 146, A: 255}, got)
}

func TestGlassFyneTheme_FollowsActiveTheme(t *testing.T) {
	themes := Default().Glass
	ft := NewGlassFyneTheme(themes[0])

	assert.Equal(t, themes[0].AccentMiddle.NRGBA(), ft.Color(fynetheme.ColorNamePrimary, fynetheme.VariantLight))

	ft.Set(themes[3])
	assert.Equal(t, themes[3].AccentMiddle.NRGBA(), ft.Color(fynetheme.ColorNamePrimary, fynetheme.VariantDark))
	assert.Equal(t, themes[3].BackgroundStart.NRGBA(), ft.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))
}

func TestMorandiTheme_Colors(t *testing.T) {
	p := Default().Morandi
	mt := NewMorandiTheme(p)

	assert.Equal(t, p.BgLight.NRGBA(), mt.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
	assert.Equal(t, p.TextPrimary.NRGBA(), mt.Color(fynetheme.ColorNameForeground, fynetheme.VariantLight))
	assert.Equal(t, float32(13), mt.Size(fynetheme.SizeNameText))
}
