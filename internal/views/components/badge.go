package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Badge is a small rounded label that can be shown and hidden, used for the
// theme name after a switch.
type Badge struct {
	container *fyne.Container
	bg        *canvas.Rectangle
	text      *canvas.Text
}

func NewBadge(fill, text color.Color) *Badge {
	b := &Badge{}
	b.bg = canvas.NewRectangle(fill)
	b.bg.CornerRadius = 14
	b.text = canvas.NewText("", text)
	b.text.TextSize = 13
	b.text.TextStyle = fyne.TextStyle{Bold: true}
	b.container = container.NewStack(b.bg, container.NewPadded(b.text))
	b.container.Hide()
	return b
}

// Show displays label on fill.
func (b *Badge) Show(label string, fill color.Color) {
	b.text.Text = label
	b.bg.FillColor = fill
	b.text.Refresh()
	b.bg.Refresh()
	b.container.Show()
}

func (b *Badge) Hide() {
	b.container.Hide()
}

func (b *Badge) Visible() bool {
	return b.container.Visible()
}

func (b *Badge) Text() string {
	return b.text.Text
}

// GetContainer returns the badge container
func (b *Badge) GetContainer() *fyne.Container {
	return b.container
}
