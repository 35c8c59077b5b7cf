package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ButtonStyle describes a flat rounded button.
type ButtonStyle struct {
	Fill     color.Color
	Hover    color.Color
	Text     color.Color
	Radius   float32
	TextSize float32
	Bold     bool
	Height   float32
}

// PillButton is a rounded, flat button whose colours come from a ButtonStyle
// instead of the theme.
type PillButton struct {
	widget.BaseWidget
	Text     string
	OnTapped func()

	style   ButtonStyle
	hovered bool
}

// NewPillButton creates a button with the given style.
func NewPillButton(text string, style ButtonStyle, tapped func()) *PillButton {
	if style.Radius == 0 {
		style.Radius = 12
	}
	if style.TextSize == 0 {
		style.TextSize = 13
	}
	if style.Height == 0 {
		style.Height = 40
	}
	if style.Hover == nil {
		style.Hover = style.Fill
	}
	b := &PillButton{Text: text, OnTapped: tapped, style: style}
	b.ExtendBaseWidget(b)
	return b
}

// SetStyle swaps the colours, used when the theme changes.
func (b *PillButton) SetStyle(style ButtonStyle) {
	if style.Radius == 0 {
		style.Radius = b.style.Radius
	}
	if style.TextSize == 0 {
		style.TextSize = b.style.TextSize
	}
	if style.Height == 0 {
		style.Height = b.style.Height
	}
	if style.Hover == nil {
		style.Hover = style.Fill
	}
	b.style = style
	b.Refresh()
}

// SetText changes the label.
func (b *PillButton) SetText(text string) {
	b.Text = text
	b.Refresh()
}

func (b *PillButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *PillButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *PillButton) MouseMoved(*desktop.MouseEvent) {}

func (b *PillButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

func (b *PillButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the renderer for PillButton
func (b *PillButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.style.Fill)
	bg.CornerRadius = b.style.Radius

	label := canvas.NewText(b.Text, b.style.Text)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = b.style.TextSize
	label.TextStyle = fyne.TextStyle{Bold: b.style.Bold}

	return &pillButtonRenderer{
		button:  b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type pillButtonRenderer struct {
	button  *PillButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *pillButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	textSize := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.label.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

func (r *pillButtonRenderer) MinSize() fyne.Size {
	textSize := r.label.MinSize()
	return fyne.NewSize(textSize.Width+2*r.button.style.Radius, fyne.Max(textSize.Height, r.button.style.Height))
}

func (r *pillButtonRenderer) Refresh() {
	style := r.button.style
	r.bg.FillColor = style.Fill
	if r.button.hovered {
		r.bg.FillColor = style.Hover
	}
	r.bg.CornerRadius = style.Radius

	r.label.Text = r.button.Text
	r.label.Color = style.Text
	r.label.TextSize = style.TextSize
	r.label.TextStyle = fyne.TextStyle{Bold: style.Bold}

	r.Layout(r.button.Size())
	r.bg.Refresh()
	r.label.Refresh()
}

func (r *pillButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *pillButtonRenderer) Destroy() {}
