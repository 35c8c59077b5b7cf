package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustments_IdentityAtOne(t *testing.T) {
	src := gradient(23, 11)

	assert.True(t, AdjustBrightness(src, 1).Equal(src))
	assert.True(t, AdjustContrast(src, 1).Equal(src))
	assert.True(t, AdjustSaturation(src, 1).Equal(src))
	assert.True(t, Adjust(src, DefaultAdjustParams()).Equal(src))
}

func TestAdjustBrightness(t *testing.T) {
	src := gradient(16, 16)

	black := AdjustBrightness(src, 0)
	assert.Equal(t, src.Width, black.Width)
	assert.Equal(t, src.Height, black.Height)
	for _, c := range black.Pix {
		require.Zero(t, c)
	}

	out := AdjustBrightness(solid(1, 1, 100, 200, 250), 1.5)
	assert.Equal(t, []uint8{150, 255, 255}, out.Pix)

	out = AdjustBrightness(solid(1, 1, 100, 201, 3), 0.5)
	assert.Equal(t, []uint8{50, 101, 2}, out.Pix)
}

func TestAdjustContrast_AroundMeanLuminance(t *testing.T) {
	// black and light gray pixels: mean luminance = 100
	src := solid(2, 1, 0, 0, 0)
	src.Pix[3], src.Pix[4], src.Pix[5] = 200, 200, 200
	require.Equal(t, uint8(100), MeanLuminance(src))

	out := AdjustContrast(src, 0.5)
	assert.Equal(t, []uint8{50, 50, 50, 150, 150, 150}, out.Pix)

	flat := AdjustContrast(src, 0)
	for _, c := range flat.Pix {
		assert.Equal(t, uint8(100), c)
	}

	high := AdjustContrast(src, 1.5)
	assert.Equal(t, []uint8{0, 0, 0, 250, 250, 250}, high.Pix)
}

func TestAdjustSaturation(t *testing.T) {
	gray := AdjustSaturation(solid(1, 1, 255, 0, 0), 0)
	assert.Equal(t, []uint8{76, 76, 76}, gray.Pix)

	// 76.245 + 2*(255-76.245) = 433.755 -> 255; 76.245 - 2*76.245 < 0 -> 0
	vivid := AdjustSaturation(solid(1, 1, 255, 0, 0), 2)
	assert.Equal(t, []uint8{255, 0, 0}, vivid.Pix)

	// 0.299*100 + 0.587*150 + 0.114*200 = 140.75
	// r = 140.75 + 1.5*(100-140.75) = 79.625 -> 80
	// g = 140.75 + 1.5*(150-140.75) = 154.625 -> 155
	// b = 140.75 + 1.5*(200-140.75) = 229.625 -> 230
	out := AdjustSaturation(solid(1, 1, 100, 150, 200), 1.5)
	assert.Equal(t, []uint8{80, 155, 230}, out.Pix)
}

func TestAdjust_DoesNotMutateSource(t *testing.T) {
	src := gradient(10, 10)
	before := src.Clone()

	out := Adjust(src, AdjustParams{Brightness: 1.2, Contrast: 0.8, Saturation: 1.7})

	assert.True(t, src.Equal(before))
	assert.False(t, out.Equal(src))
}

func TestAdjust_OrderIsBrightnessContrastSaturation(t *testing.T) {
	src := gradient(12, 7)
	params := AdjustParams{Brightness: 1.3, Contrast: 0.7, Saturation: 0.4}

	want := AdjustSaturation(AdjustContrast(AdjustBrightness(src, 1.3), 0.7), 0.4)
	assert.True(t, Adjust(src, params).Equal(want))
}

func TestAdjustParams_Normalize(t *testing.T) {
	got := AdjustParams{Brightness: 3, Contrast: 0.1, Saturation: -1}.Normalize()
	assert.Equal(t, AdjustParams{Brightness: MaxBrightness, Contrast: MinContrast, Saturation: MinSaturation}, got)
	assert.True(t, DefaultAdjustParams().IsIdentity())
}
