package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// InfoBar shows the file name on the left and the pixel size on the right.
type InfoBar struct {
	container *fyne.Container
	nameLabel *canvas.Text
	sizeLabel *canvas.Text
}

// NewInfoBar creates a new info bar component
func NewInfoBar(textColor color.Color) *InfoBar {
	ib := &InfoBar{}
	ib.createComponents(textColor)
	ib.buildLayout()
	return ib
}

func (ib *InfoBar) createComponents(textColor color.Color) {
	ib.nameLabel = canvas.NewText("", textColor)
	ib.nameLabel.TextSize = 12
	ib.sizeLabel = canvas.NewText("", textColor)
	ib.sizeLabel.TextSize = 12
	ib.sizeLabel.Alignment = fyne.TextAlignTrailing
}

func (ib *InfoBar) buildLayout() {
	ib.container = container.NewPadded(container.NewBorder(nil, nil, ib.nameLabel, ib.sizeLabel))
}

// SetInfo updates both labels.
func (ib *InfoBar) SetInfo(name, size string) {
	ib.nameLabel.Text = name
	ib.sizeLabel.Text = size
	ib.nameLabel.Refresh()
	ib.sizeLabel.Refresh()
}

// Info returns the displayed text.
func (ib *InfoBar) Info() (name, size string) {
	return ib.nameLabel.Text, ib.sizeLabel.Text
}

// GetContainer returns the info bar container
func (ib *InfoBar) GetContainer() *fyne.Container {
	return ib.container
}
