package components

import (
	"image/color"

	"morandi-studio/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// HeaderStyle sets the colours of a Header.
type HeaderStyle struct {
	Background    color.Color
	Title         color.Color
	Subtitle      color.Color
	Glyph         string
	AnimationSize float32
}

// Header is the title bar of a borderless window: an animation slot, a title
// block and trailing controls.
type Header struct {
	container *fyne.Container
	bg        *canvas.Rectangle
	frame     *canvas.Image
	glyph     *canvas.Text
	title     *canvas.Text
	subtitle  *canvas.Text
}

// NewHeader builds a header. trailing objects are placed on the right.
func NewHeader(title, subtitle string, style HeaderStyle, trailing ...fyne.CanvasObject) *Header {
	h := &Header{}
	h.createComponents(title, subtitle, style)
	h.buildLayout(trailing)
	return h
}

func (h *Header) createComponents(title, subtitle string, style HeaderStyle) {
	h.bg = canvas.NewRectangle(style.Background)
	h.bg.CornerRadius = 20

	size := style.AnimationSize
	if size <= 0 {
		size = 50
	}
	h.frame = canvas.NewImageFromImage(nil)
	h.frame.FillMode = canvas.ImageFillContain
	h.frame.ScaleMode = canvas.ImageScaleSmooth
	h.frame.SetMinSize(fyne.NewSize(size, size))
	h.frame.Hide()

	h.glyph = canvas.NewText(style.Glyph, style.Title)
	h.glyph.TextSize = size * 0.7
	h.glyph.Alignment = fyne.TextAlignCenter

	h.title = canvas.NewText(title, style.Title)
	h.title.TextSize = 22
	h.title.TextStyle = fyne.TextStyle{Bold: true}

	h.subtitle = canvas.NewText(subtitle, style.Subtitle)
	h.subtitle.TextSize = 12
}

func (h *Header) buildLayout(trailing []fyne.CanvasObject) {
	size := h.frame.MinSize()
	slot := container.New(layout.NewGridWrapLayout(size), container.NewStack(h.glyph, h.frame))

	titleBlock := container.NewVBox(h.title, h.subtitle)
	right := container.NewHBox(trailing...)

	row := container.NewBorder(nil, nil,
		container.NewHBox(slot, container.NewCenter(titleBlock)),
		container.NewCenter(right),
	)
	h.container = container.NewStack(h.bg, container.NewPadded(row))
}

// GetContainer returns the header's canvas object
func (h *Header) GetContainer() fyne.CanvasObject {
	return h.container
}

// RenderFrame shows an animation frame. It matches animation.Renderer.
func (h *Header) RenderFrame(_ int, frame models.Frame) {
	h.frame.Image = frame.Image
	h.frame.Show()
	h.glyph.Hide()
	h.frame.Refresh()
}

// ShowGlyph replaces the animation with the static glyph.
func (h *Header) ShowGlyph() {
	h.frame.Image = nil
	h.frame.Hide()
	h.glyph.Show()
	h.glyph.Refresh()
}

// SetColors restyles the header, used by theme switching.
func (h *Header) SetColors(background, title, subtitle color.Color) {
	h.bg.FillColor = background
	h.title.Color = title
	h.glyph.Color = title
	h.subtitle.Color = subtitle
	h.bg.Refresh()
	h.title.Refresh()
	h.glyph.Refresh()
	h.subtitle.Refresh()
}
