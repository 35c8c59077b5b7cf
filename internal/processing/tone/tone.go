// Package tone implements the colour transforms behind the Morandi filters and
// the adjustment sliders. Every function is pure: it reads the source image and
// returns a freshly allocated result, leaving the source untouched.
package tone

import (
	"fmt"
	"math"
	"strings"

	"morandi-studio/internal/models"
)

// Luminance weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// ToneParams describes a channel shift applied after partial desaturation.
type ToneParams struct {
	Name       string
	DR, DG, DB int
	Saturation float64
}

// Preset names one of the fixed Morandi tones.
type Preset string

const (
	Rose      Preset = "rose"
	Sage      Preset = "sage"
	Lavender  Preset = "lavender"
	DustyBlue Preset = "dusty-blue"
)

var presets = map[Preset]ToneParams{
	Rose:      {Name: string(Rose), DR: 15, DG: -5, DB: -10, Saturation: 0.65},
	Sage:      {Name: string(Sage), DR: -10, DG: 10, DB: -5, Saturation: 0.6},
	Lavender:  {Name: string(Lavender), DR: 5, DG: -5, DB: 15, Saturation: 0.6},
	DustyBlue: {Name: string(DustyBlue), DR: -10, DG: 0, DB: 15, Saturation: 0.55},
}

// Presets lists the presets in display order.
func Presets() []Preset {
	return []Preset{Rose, Sage, Lavender, DustyBlue}
}

// Params returns the tone parameters of a preset.
func (p Preset) Params() (ToneParams, bool) {
	params, ok := presets[p]
	return params, ok
}

// ParsePreset resolves a preset by name, ignoring case and underscores.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// ApplyPreset applies one of the fixed presets.
func ApplyPreset(img *models.Image, p Preset) (*models.Image, error) {
	params, ok := p.Params()
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", p)
	}
	return ApplyTone(img, params), nil
}

// ApplyTone blends every pixel toward its luminance gray by params.Saturation and
// then adds the per-channel shifts, saturating at 0 and 255.
func ApplyTone(img *models.Image, params ToneParams) *models.Image {
	s := clampFloat(params.Saturation, 0, 1)
	dr := clampInt(params.DR, -255, 255)
	dg := clampInt(params.DG, -255, 255)
	db := clampInt(params.DB, -255, 255)

	out := blendToGray(img, s)
	for i := 0; i+2 < len(out.Pix); i += 3 {
		out.Pix[i] = clampByte(int(out.Pix[i]) + dr)
		out.Pix[i+1] = clampByte(int(out.Pix[i+1]) + dg)
		out.Pix[i+2] = clampByte(int(out.Pix[i+2]) + db)
	}
	return out
}

// blendToGray computes gray + s*(c-gray) per channel with per-pixel luminance.
// s=1 is the identity, s=0 full grayscale, s>1 over-saturates.
func blendToGray(img *models.Image, s float64) *models.Image {
	if img.Empty() {
		return models.NewImage(0, 0)
	}
	out := models.NewImage(img.Width, img.Height)
	for i := 0; i+2 < len(img.Pix); i += 3 {
		r, g, b := float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2])
		gray := luminance(r, g, b)
		out.Pix[i] = roundByte(gray + s*(r-gray))
		out.Pix[i+1] = roundByte(gray + s*(g-gray))
		out.Pix[i+2] = roundByte(gray + s*(b-gray))
	}
	return out
}

func luminance(r, g, b float64) float64 {
	return lumaR*r + lumaG*g + lumaB*b
}

func roundByte(v float64) uint8 {
	return clampByte(int(math.Round(v)))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
