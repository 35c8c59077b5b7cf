package views

import (
	"image"
	"image/color"
	"io"
	"os"

	"morandi-studio/internal/processing/tone"
	"morandi-studio/internal/theme"
	"morandi-studio/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const sidebarWidth = 280

// presetButtons are the filter buttons in sidebar order.
var presetButtons = []struct {
	label  string
	preset tone.Preset
}{
	{"🌸 Rose Gray", tone.Rose},
	{"🌿 Sage Green", tone.Sage},
	{"💜 Lavender", tone.Lavender},
	{"☁️ Dusty Blue", tone.DustyBlue},
}

// MorandiView is the image studio window content.
type MorandiView struct {
	window  fyne.Window
	palette theme.Palette
	content *fyne.Container

	header  *components.Header
	display *components.ImageDisplay
	infoBar *components.InfoBar
	adjust  *components.AdjustmentPanel

	// Event handlers - connected to controller
	openHandler   func()
	saveHandler   func()
	resetHandler  func()
	presetHandler func(tone.Preset)
	adjustHandler func(tone.AdjustParams)
	fitHandler    func(width, height int)
	closeHandler  func()
}

// NewMorandiView builds the view and sets it as the window content.
func NewMorandiView(window fyne.Window, palette theme.Palette, animationSize float32) *MorandiView {
	mv := &MorandiView{window: window, palette: palette}

	mv.initializeComponents(animationSize)
	mv.buildLayout()
	mv.setupEventHandlers()

	return mv
}

func (mv *MorandiView) initializeComponents(animationSize float32) {
	p := mv.palette

	closeBtn := components.NewPillButton("×", components.ButtonStyle{
		Fill:     p.Cream.NRGBA(),
		Hover:    p.DustyPink.NRGBA(),
		Text:     p.TextSecondary.NRGBA(),
		Radius:   18,
		TextSize: 18,
		Height:   36,
	}, func() { mv.close() })

	mv.header = components.NewHeader("Morandi Image Studio", "Morandi palette · gentle image editing", components.HeaderStyle{
		Background:    p.BgCard.NRGBA(),
		Title:         p.TextPrimary.NRGBA(),
		Subtitle:      p.TextMuted.NRGBA(),
		Glyph:         "🎨",
		AnimationSize: animationSize,
	}, closeBtn)

	mv.display = components.NewImageDisplay(p.Cream.NRGBA(), p.TextMuted.NRGBA(), func(w, h int) {
		if mv.fitHandler != nil {
			mv.fitHandler(w, h)
		}
	})
	mv.infoBar = components.NewInfoBar(p.TextMuted.NRGBA())
	mv.adjust = components.NewAdjustmentPanel(p.TextSecondary.NRGBA())
}

func (mv *MorandiView) buildLayout() {
	sidebar := mv.buildSidebar()

	mainArea := container.NewStack(
		roundedPanel(mv.palette.BgLight.NRGBA(), 20),
		container.NewPadded(container.NewBorder(nil, mv.infoBar.GetContainer(), nil, nil, mv.display.GetContainer())),
	)

	body := container.NewBorder(nil, nil, sidebar, nil, mainArea)

	mv.content = container.NewStack(
		roundedPanel(mv.palette.BgCard.NRGBA(), 28),
		container.NewPadded(container.NewBorder(mv.header.GetContainer(), nil, nil, nil, body)),
	)
	mv.window.SetContent(mv.content)
}

func (mv *MorandiView) buildSidebar() fyne.CanvasObject {
	p := mv.palette
	white := p.BgCard.NRGBA()

	openBtn := components.NewPillButton("📂 Open image", components.ButtonStyle{
		Fill: p.SageGreen.NRGBA(), Hover: p.SageGreenHover.NRGBA(), Text: white, Bold: true, Height: 45,
	}, func() { call(mv.openHandler) })
	saveBtn := components.NewPillButton("💾 Save image", components.ButtonStyle{
		Fill: p.DustyBlue.NRGBA(), Hover: p.DustyBlueHover.NRGBA(), Text: white, Bold: true, Height: 45,
	}, func() { call(mv.saveHandler) })

	filterColors := map[tone.Preset]theme.Hex{
		tone.Rose:      p.DustyPink,
		tone.Sage:      p.SageGreen,
		tone.Lavender:  p.Lavender,
		tone.DustyBlue: p.DustyBlue,
	}
	filters := container.NewVBox()
	for _, pb := range presetButtons {
		preset := pb.preset
		filters.Add(components.NewPillButton(pb.label, components.ButtonStyle{
			Fill: filterColors[preset].NRGBA(), Hover: p.Taupe.NRGBA(), Text: white, Radius: 19, TextSize: 12, Height: 38,
		}, func() {
			if mv.presetHandler != nil {
				mv.presetHandler(preset)
			}
		}))
	}

	resetBtn := components.NewPillButton("🔄 Reset", components.ButtonStyle{
		Fill: p.WarmGray.NRGBA(), Hover: p.Taupe.NRGBA(), Text: white, Bold: true, Height: 42,
	}, func() { call(mv.resetHandler) })

	column := container.NewVBox(
		sectionTitle("🛠️ Image tools", p.TextPrimary.NRGBA(), 16),
		openBtn,
		saveBtn,
		widget.NewSeparator(),
		sectionTitle("✨ Morandi filters", p.TextPrimary.NRGBA(), 14),
		filters,
		widget.NewSeparator(),
		sectionTitle("🎚️ Adjustments", p.TextPrimary.NRGBA(), 14),
		mv.adjust.GetContainer(),
		resetBtn,
	)

	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(sidebarWidth, 0))
	return container.NewStack(
		width,
		roundedPanel(p.BgLight.NRGBA(), 20),
		container.NewPadded(container.NewVScroll(column)),
	)
}

// setupEventHandlers connects window level events
func (mv *MorandiView) setupEventHandlers() {
	mv.adjust.SetChangeHandler(func(params tone.AdjustParams) {
		if mv.adjustHandler != nil {
			mv.adjustHandler(params)
		}
	})
	mv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mv.close()
		}
	})
}

func (mv *MorandiView) close() {
	if mv.closeHandler != nil {
		mv.closeHandler()
		return
	}
	mv.window.Close()
}

// Event handler setters - called by controller

func (mv *MorandiView) SetOpenHandler(handler func())                    { mv.openHandler = handler }
func (mv *MorandiView) SetSaveHandler(handler func())                    { mv.saveHandler = handler }
func (mv *MorandiView) SetResetHandler(handler func())                   { mv.resetHandler = handler }
func (mv *MorandiView) SetPresetHandler(handler func(tone.Preset))       { mv.presetHandler = handler }
func (mv *MorandiView) SetAdjustHandler(handler func(tone.AdjustParams)) { mv.adjustHandler = handler }
func (mv *MorandiView) SetFitHandler(handler func(width, height int))    { mv.fitHandler = handler }

// SetCloseHandler replaces the default close behaviour of the × button and
// the Escape key.
func (mv *MorandiView) SetCloseHandler(handler func()) { mv.closeHandler = handler }

// UI update methods - called by controller

// ShowOpenDialog asks for an image to open. onPath receives "" on cancel.
func (mv *MorandiView) ShowOpenDialog(extensions []string, onPath func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("Open image", err)
			return
		}
		if reader == nil {
			onPath("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPath(path)
	}, mv.window)
	d.SetFilter(storage.NewExtensionFileFilter(extensions))
	d.Resize(mv.dialogSize())
	d.Show()
}

// ShowSaveDialog asks for a destination and hands its writer to onSave. The
// dialog creates the file before onSave runs, so it is removed again when
// onSave fails.
func (mv *MorandiView) ShowSaveDialog(defaultName string, extensions []string, onSave func(w io.Writer, path string) error) {
	d := dialog.NewFileSave(mv.saveCallback(onSave), mv.window)
	d.SetFilter(storage.NewExtensionFileFilter(extensions))
	d.SetFileName(defaultName)
	d.Resize(mv.dialogSize())
	d.Show()
}

func (mv *MorandiView) saveCallback(onSave func(w io.Writer, path string) error) func(fyne.URIWriteCloser, error) {
	return func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError("Save image", err)
			return
		}
		if writer == nil {
			return
		}

		uri := writer.URI()
		saveErr := onSave(writer, uri.Path())
		closeErr := writer.Close()
		if saveErr == nil && closeErr != nil {
			mv.ShowError("Save image", closeErr)
		}
		if saveErr != nil || closeErr != nil {
			discard(uri)
		}
	}
}

// discard removes a destination that received no complete image.
func discard(uri fyne.URI) {
	if uri.Scheme() == "file" {
		os.Remove(uri.Path())
		return
	}
	storage.Delete(uri)
}

func (mv *MorandiView) dialogSize() fyne.Size {
	size := mv.window.Canvas().Size()
	return fyne.NewSize(size.Width*0.8, size.Height*0.8)
}

func (mv *MorandiView) SetSourceSize(width, height int) { mv.display.SetSourceSize(width, height) }
func (mv *MorandiView) SetDisplayImage(img image.Image) { mv.display.SetImage(img) }
func (mv *MorandiView) ShowPlaceholder()                { mv.display.ShowPlaceholder() }
func (mv *MorandiView) SetInfo(name, size string)       { mv.infoBar.SetInfo(name, size) }

// SetAdjustments moves the sliders without firing the adjust handler.
func (mv *MorandiView) SetAdjustments(params tone.AdjustParams) {
	mv.adjust.SetValues(params)
}

// ShowError displays an error dialog
func (mv *MorandiView) ShowError(title string, err error) {
	dialog.ShowError(err, mv.window)
}

// Header exposes the header so the GIF player can render into it.
func (mv *MorandiView) Header() *components.Header {
	return mv.header
}

// GetContainer returns the main container
func (mv *MorandiView) GetContainer() *fyne.Container {
	return mv.content
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
