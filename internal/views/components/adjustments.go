package components

import (
	"fmt"
	"image/color"

	"morandi-studio/internal/processing/tone"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AdjustmentPanel holds the brightness, contrast and saturation sliders. The
// handler fires when a drag ends so the image is recomputed once per gesture.
type AdjustmentPanel struct {
	container  *fyne.Container
	brightness *widget.Slider
	contrast   *widget.Slider
	saturation *widget.Slider
	values     map[*widget.Slider]*canvas.Text
	onChange   func(tone.AdjustParams)
	silent     bool
}

// NewAdjustmentPanel creates the slider block.
func NewAdjustmentPanel(labelColor color.Color) *AdjustmentPanel {
	ap := &AdjustmentPanel{values: make(map[*widget.Slider]*canvas.Text)}
	ap.setupPanel(labelColor)
	return ap
}

func (ap *AdjustmentPanel) setupPanel(labelColor color.Color) {
	ap.brightness = ap.newSlider(tone.MinBrightness, tone.MaxBrightness)
	ap.contrast = ap.newSlider(tone.MinContrast, tone.MaxContrast)
	ap.saturation = ap.newSlider(tone.MinSaturation, tone.MaxSaturation)

	ap.container = container.NewVBox(
		ap.row("Brightness", ap.brightness, labelColor),
		ap.row("Contrast", ap.contrast, labelColor),
		ap.row("Saturation", ap.saturation, labelColor),
	)
	ap.SetValues(tone.DefaultAdjustParams())
}

func (ap *AdjustmentPanel) newSlider(lo, hi float64) *widget.Slider {
	s := widget.NewSlider(lo, hi)
	s.Step = 0.01
	s.OnChanged = func(v float64) {
		if label, ok := ap.values[s]; ok {
			label.Text = fmt.Sprintf("%.2f", v)
			label.Refresh()
		}
	}
	s.OnChangeEnded = func(float64) {
		if !ap.silent && ap.onChange != nil {
			ap.onChange(ap.Values())
		}
	}
	return s
}

func (ap *AdjustmentPanel) row(name string, s *widget.Slider, labelColor color.Color) fyne.CanvasObject {
	title := canvas.NewText(name, labelColor)
	title.TextSize = 12
	value := canvas.NewText("", labelColor)
	value.TextSize = 12
	value.Alignment = fyne.TextAlignTrailing
	ap.values[s] = value

	return container.NewVBox(container.NewBorder(nil, nil, title, value), s)
}

// GetContainer returns the panel container
func (ap *AdjustmentPanel) GetContainer() *fyne.Container {
	return ap.container
}

// SetChangeHandler registers the callback for finished slider moves.
func (ap *AdjustmentPanel) SetChangeHandler(handler func(tone.AdjustParams)) {
	ap.onChange = handler
}

// Values returns the slider positions.
func (ap *AdjustmentPanel) Values() tone.AdjustParams {
	return tone.AdjustParams{
		Brightness: ap.brightness.Value,
		Contrast:   ap.contrast.Value,
		Saturation: ap.saturation.Value,
	}
}

// SetValues moves the sliders without notifying the handler. Slider.SetValue
// reports a finished change, so the handler is muted meanwhile.
func (ap *AdjustmentPanel) SetValues(p tone.AdjustParams) {
	ap.silent = true
	defer func() { ap.silent = false }()

	ap.brightness.SetValue(p.Brightness)
	ap.contrast.SetValue(p.Contrast)
	ap.saturation.SetValue(p.Saturation)
}
