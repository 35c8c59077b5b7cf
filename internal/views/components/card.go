package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CardStyle colours a GlassCard.
type CardStyle struct {
	Fill        color.Color
	Hover       color.Color
	Border      color.Color
	IconBg      color.Color
	Title       color.Color
	Description color.Color
}

// GlassCard is a feature tile: an icon on a tinted square, a title and a
// short description. The tile lightens while hovered.
type GlassCard struct {
	widget.BaseWidget

	icon, title, description string
	style                    CardStyle
	hovered                  bool
}

func NewGlassCard(icon, title, description string, style CardStyle) *GlassCard {
	c := &GlassCard{icon: icon, title: title, description: description, style: style}
	c.ExtendBaseWidget(c)
	return c
}

// SetStyle recolours the card.
func (c *GlassCard) SetStyle(style CardStyle) {
	c.style = style
	c.Refresh()
}

func (c *GlassCard) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

func (c *GlassCard) MouseMoved(*desktop.MouseEvent) {}

func (c *GlassCard) MouseOut() {
	c.hovered = false
	c.Refresh()
}

// CreateRenderer creates the renderer for GlassCard
func (c *GlassCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(c.style.Fill)
	bg.CornerRadius = 20
	bg.StrokeWidth = 1

	iconBg := canvas.NewRectangle(c.style.IconBg)
	iconBg.CornerRadius = 15
	iconBg.SetMinSize(fyne.NewSize(55, 55))

	icon := canvas.NewText(c.icon, c.style.Title)
	icon.TextSize = 26
	icon.Alignment = fyne.TextAlignCenter

	title := canvas.NewText(c.title, c.style.Title)
	title.TextSize = 15
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	desc := canvas.NewText(c.description, c.style.Description)
	desc.TextSize = 12
	desc.Alignment = fyne.TextAlignCenter

	body := container.NewPadded(container.NewVBox(
		container.NewCenter(container.NewStack(iconBg, container.NewCenter(icon))),
		title,
		desc,
	))

	r := &glassCardRenderer{card: c, bg: bg, iconBg: iconBg, title: title, desc: desc, body: body}
	r.Refresh()
	return r
}

type glassCardRenderer struct {
	card   *GlassCard
	bg     *canvas.Rectangle
	iconBg *canvas.Rectangle
	title  *canvas.Text
	desc   *canvas.Text
	body   *fyne.Container
}

func (r *glassCardRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.body.Resize(size)
}

func (r *glassCardRenderer) MinSize() fyne.Size {
	return r.body.MinSize()
}

func (r *glassCardRenderer) Refresh() {
	s := r.card.style
	r.bg.FillColor = s.Fill
	if r.card.hovered && s.Hover != nil {
		r.bg.FillColor = s.Hover
	}
	r.bg.StrokeColor = s.Border
	r.iconBg.FillColor = s.IconBg
	r.title.Color = s.Title
	r.desc.Color = s.Description

	r.bg.Refresh()
	r.iconBg.Refresh()
	r.title.Refresh()
	r.desc.Refresh()
}

func (r *glassCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.body}
}

func (r *glassCardRenderer) Destroy() {}
