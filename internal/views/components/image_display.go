package components

import (
	"image"
	"image/color"

	"morandi-studio/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ImageDisplay shows the working image fitted to the available area on a
// rounded panel, or a placeholder text while nothing is loaded.
type ImageDisplay struct {
	container   *fyne.Container
	panel       *canvas.Rectangle
	image       *canvas.Image
	placeholder *fyne.Container
	fit         *layout.FitLayout
}

// NewImageDisplay creates the display. onFit receives the fitted size whenever
// it changes.
func NewImageDisplay(panel, text color.Color, onFit func(w, h int)) *ImageDisplay {
	id := &ImageDisplay{}
	id.createComponents(panel, text, onFit)
	id.setupLayout()
	return id
}

func (id *ImageDisplay) createComponents(panel, text color.Color, onFit func(w, h int)) {
	id.panel = canvas.NewRectangle(panel)
	id.panel.CornerRadius = 16

	id.image = canvas.NewImageFromImage(nil)
	id.image.FillMode = canvas.ImageFillStretch
	id.image.ScaleMode = canvas.ImageScaleSmooth

	icon := canvas.NewText("🖼️", text)
	icon.TextSize = 40
	icon.Alignment = fyne.TextAlignCenter
	hint := canvas.NewText("Click \"Open image\" to get started", text)
	hint.TextSize = 16
	hint.Alignment = fyne.TextAlignCenter
	id.placeholder = container.NewCenter(container.NewVBox(icon, hint))

	id.fit = layout.NewFitLayout(onFit)
}

func (id *ImageDisplay) setupLayout() {
	// the image must stay first: FitLayout sizes objects[0] and stretches the rest
	id.container = container.NewStack(
		id.panel,
		container.New(id.fit, id.image, id.placeholder),
	)
}

// GetContainer returns the display's canvas object
func (id *ImageDisplay) GetContainer() fyne.CanvasObject {
	return id.container
}

// SetSourceSize records the native size of the image about to be shown and
// triggers a relayout, which reports the new fitted size.
func (id *ImageDisplay) SetSourceSize(width, height int) {
	id.fit.SetImageSize(width, height)
	id.placeholder.Hide()
	id.container.Refresh()
}

// SetImage swaps the displayed bitmap.
func (id *ImageDisplay) SetImage(img image.Image) {
	id.image.Image = img
	id.image.Refresh()
}

// ShowPlaceholder clears the image and shows the hint.
func (id *ImageDisplay) ShowPlaceholder() {
	id.fit.SetImageSize(0, 0)
	id.image.Image = nil
	id.image.Refresh()
	id.placeholder.Show()
}
