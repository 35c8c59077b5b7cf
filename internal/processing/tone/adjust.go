package tone

import (
	"math"

	"morandi-studio/internal/models"
)

// Slider ranges for the continuous adjustments.
const (
	MinBrightness = 0.5
	MaxBrightness = 1.5
	MinContrast   = 0.5
	MaxContrast   = 1.5
	MinSaturation = 0.0
	MaxSaturation = 2.0
)

// AdjustParams holds the three slider factors. 1.0 is the identity for each.
type AdjustParams struct {
	Brightness float64
	Contrast   float64
	Saturation float64
}

// DefaultAdjustParams returns the identity adjustment set.
func DefaultAdjustParams() AdjustParams {
	return AdjustParams{Brightness: 1, Contrast: 1, Saturation: 1}
}

// Normalize clamps every factor into its slider range.
func (p AdjustParams) Normalize() AdjustParams {
	return AdjustParams{
		Brightness: clampFloat(p.Brightness, MinBrightness, MaxBrightness),
		Contrast:   clampFloat(p.Contrast, MinContrast, MaxContrast),
		Saturation: clampFloat(p.Saturation, MinSaturation, MaxSaturation),
	}
}

// IsIdentity reports whether applying p would leave an image unchanged.
func (p AdjustParams) IsIdentity() bool {
	return p.Brightness == 1 && p.Contrast == 1 && p.Saturation == 1
}

// Adjust applies brightness, contrast and saturation in that order. Stages whose
// factor is 1 are skipped.
func Adjust(img *models.Image, params AdjustParams) *models.Image {
	params = params.Normalize()
	out := img.Clone()
	if out == nil {
		return models.NewImage(0, 0)
	}
	if params.Brightness != 1 {
		out = AdjustBrightness(out, params.Brightness)
	}
	if params.Contrast != 1 {
		out = AdjustContrast(out, params.Contrast)
	}
	if params.Saturation != 1 {
		out = AdjustSaturation(out, params.Saturation)
	}
	return out
}

// AdjustBrightness multiplies every channel by factor. 0 yields black.
func AdjustBrightness(img *models.Image, factor float64) *models.Image {
	if img.Empty() {
		return models.NewImage(0, 0)
	}
	factor = math.Max(factor, 0)
	out := models.NewImage(img.Width, img.Height)
	for i, c := range img.Pix {
		out.Pix[i] = roundByte(float64(c) * factor)
	}
	return out
}

// AdjustContrast scales each channel's distance from the image's mean luminance.
// The mean is rounded to an integer gray level and taken from img itself, so a
// factor of 0 produces a flat gray image of that level.
func AdjustContrast(img *models.Image, factor float64) *models.Image {
	if img.Empty() {
		return models.NewImage(0, 0)
	}
	factor = math.Max(factor, 0)
	mean := float64(MeanLuminance(img))
	out := models.NewImage(img.Width, img.Height)
	for i, c := range img.Pix {
		out.Pix[i] = roundByte(mean + factor*(float64(c)-mean))
	}
	return out
}

// AdjustSaturation blends each pixel toward its luminance gray. Factors above 1
// push colours away from gray.
func AdjustSaturation(img *models.Image, factor float64) *models.Image {
	return blendToGray(img, clampFloat(factor, MinSaturation, MaxSaturation))
}

// MeanLuminance returns the rounded average luminance of the image.
func MeanLuminance(img *models.Image) uint8 {
	if img.Empty() {
		return 0
	}
	var sum float64
	n := 0
	for i := 0; i+2 < len(img.Pix); i += 3 {
		sum += luminance(float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2]))
		n++
	}
	return roundByte(sum / float64(n))
}
