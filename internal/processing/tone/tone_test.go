package tone

import (
	"testing"

	"morandi-studio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, r, g, b uint8) *models.Image {
	img := models.NewImage(w, h)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
	}
	return img
}

// gradient covers a spread of channel values including 0 and 255.
func gradient(w, h int) *models.Image {
	img := models.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8((x * 255) / max(w-1, 1))
			img.Pix[i+1] = uint8((y * 255) / max(h-1, 1))
			img.Pix[i+2] = uint8(((x + y) * 37) % 256)
		}
	}
	return img
}

func TestApplyTone_IdentityParams(t *testing.T) {
	src := gradient(17, 9)
	before := src.Clone()

	out := ApplyTone(src, ToneParams{Saturation: 1})

	assert.True(t, out.Equal(src))
	assert.True(t, src.Equal(before), "source must not be modified")
	assert.NotSame(t, src, out)
}

func TestApplyTone_ZeroSaturationIsGray(t *testing.T) {
	out := ApplyTone(gradient(8, 8), ToneParams{Saturation: 0})
	for i := 0; i < len(out.Pix); i += 3 {
		assert.Equal(t, out.Pix[i], out.Pix[i+1])
		assert.Equal(t, out.Pix[i+1], out.Pix[i+2])
	}
}

func TestApplyTone_ShiftSaturates(t *testing.T) {
	tests := []struct {
		name  string
		value uint8
		shift int
		want  uint8
	}{
		{name: "zero plus max", value: 0, shift: 255, want: 255},
		{name: "zero minus max", value: 0, shift: -255, want: 0},
		{name: "full plus max", value: 255, shift: 255, want: 255},
		{name: "full minus max", value: 255, shift: -255, want: 0},
		{name: "overflow", value: 250, shift: 10, want: 255},
		{name: "underflow", value: 5, shift: -10, want: 0},
		{name: "in range", value: 100, shift: -20, want: 80},
		{name: "out of range shift is clamped", value: 0, shift: 900, want: 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := solid(1, 1, tt.value, tt.value, tt.value)
			out := ApplyTone(src, ToneParams{DR: tt.shift, DG: tt.shift, DB: tt.shift, Saturation: 1})
			assert.Equal(t, []uint8{tt.want, tt.want, tt.want}, out.Pix)
		})
	}
}

func TestApplyPreset_SageOnRed(t *testing.T) {
	src := solid(100, 200, 255, 0, 0)

	out, err := ApplyPreset(src, Sage)
	require.NoError(t, err)
	require.Equal(t, 100, out.Width)
	require.Equal(t, 200, out.Height)

	// gray = 0.299*255 = 76.245
	// r = 76.245 + 0.6*(255-76.245) = 183.498 -> 183, then -10
	// g = b = 76.245 * 0.4 = 30.498 -> 30, then +10 and -5
	for i := 0; i < len(out.Pix); i += 3 {
		require.Equal(t, []uint8{173, 40, 25}, out.Pix[i:i+3])
	}
	r, g, b := src.RGBAt(0, 0)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestApplyPreset_AllPresetsStayInRange(t *testing.T) {
	src := gradient(32, 32)
	for _, p := range Presets() {
		out, err := ApplyPreset(src, p)
		require.NoError(t, err, p)
		assert.Len(t, out.Pix, len(src.Pix))
	}
}

func TestApplyPreset_Unknown(t *testing.T) {
	_, err := ApplyPreset(solid(1, 1, 1, 2, 3), Preset("sepia"))
	assert.Error(t, err)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Dusty_Blue ")
	require.NoError(t, err)
	assert.Equal(t, DustyBlue, p)

	_, err = ParsePreset("teal")
	assert.Error(t, err)
}

func TestPresetTable(t *testing.T) {
	want := map[Preset]ToneParams{
		Rose:      {Name: "rose", DR: 15, DG: -5, DB: -10, Saturation: 0.65},
		Sage:      {Name: "sage", DR: -10, DG: 10, DB: -5, Saturation: 0.6},
		Lavender:  {Name: "lavender", DR: 5, DG: -5, DB: 15, Saturation: 0.6},
		DustyBlue: {Name: "dusty-blue", DR: -10, DG: 0, DB: 15, Saturation: 0.55},
	}
	for p, params := range want {
		got, ok := p.Params()
		require.True(t, ok)
		assert.Equal(t, params, got)
	}
}

func TestApplyTone_EmptyImage(t *testing.T) {
	out := ApplyTone(models.NewImage(0, 0), ToneParams{Saturation: 0.5, DR: 10})
	assert.True(t, out.Empty())
}
