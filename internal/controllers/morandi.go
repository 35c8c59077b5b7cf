package controllers

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"morandi-studio/internal/gui/layout"
	"morandi-studio/internal/logger"
	"morandi-studio/internal/models"
	"morandi-studio/internal/processing/tone"
	"morandi-studio/internal/services"
)

// DefaultSaveName is proposed by the save dialog.
const DefaultSaveName = "untitled.png"

// MorandiView is what the controller drives. All methods are called on the UI
// goroutine.
type MorandiView interface {
	ShowOpenDialog(extensions []string, onPath func(path string))
	ShowSaveDialog(defaultName string, extensions []string, onSave func(w io.Writer, path string) error)
	SetSourceSize(width, height int)
	SetDisplayImage(img image.Image)
	ShowPlaceholder()
	SetInfo(name, size string)
	SetAdjustments(params tone.AdjustParams)
	ShowError(title string, err error)

	SetOpenHandler(handler func())
	SetSaveHandler(handler func())
	SetResetHandler(handler func())
	SetPresetHandler(handler func(tone.Preset))
	SetAdjustHandler(handler func(tone.AdjustParams))
	SetFitHandler(handler func(width, height int))
}

// Scaler resamples an image to the display size.
type Scaler interface {
	Scale(img *models.Image, width, height int) (*models.Image, error)
}

// MorandiController connects the image studio view to the image store.
type MorandiController struct {
	store  *services.ImageStore
	scaler Scaler
	logger logger.Logger
	view   MorandiView

	mu       sync.Mutex
	fitW     int
	fitH     int
	lastShow *models.Image
}

// NewMorandiController creates a controller. Call SetView before use.
func NewMorandiController(store *services.ImageStore, scaler Scaler, log logger.Logger) *MorandiController {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &MorandiController{
		store:  store,
		scaler: scaler,
		logger: log,
	}
}

// SetView associates the view and connects its handlers.
func (mc *MorandiController) SetView(view MorandiView) {
	mc.view = view

	view.SetOpenHandler(mc.LoadImage)
	view.SetSaveHandler(mc.SaveImage)
	view.SetResetHandler(mc.Reset)
	view.SetPresetHandler(mc.ApplyPreset)
	view.SetAdjustHandler(mc.SetAdjustments)
	view.SetFitHandler(mc.OnFit)

	view.ShowPlaceholder()
	view.SetInfo(placeholderInfo, "")
}

const placeholderInfo = "📷 No image"

// LoadImage asks the user for a file and loads it.
func (mc *MorandiController) LoadImage() {
	mc.view.ShowOpenDialog(services.OpenExtensions(), mc.OpenFile)
}

// OpenFile loads path into the store and shows it. An empty path means the
// dialog was cancelled.
func (mc *MorandiController) OpenFile(path string) {
	if path == "" {
		return
	}

	img, err := mc.store.Load(path)
	if err != nil {
		mc.handleError("Image load failed", err)
		return
	}

	mc.view.SetAdjustments(mc.store.Adjustments())
	mc.view.SetSourceSize(img.Width, img.Height)
	mc.refresh()
}

// SaveImage asks for a destination and saves the current image there.
func (mc *MorandiController) SaveImage() {
	if !mc.store.Loaded() {
		mc.handleError("Save failed", services.ErrEmptyStore)
		return
	}
	mc.view.ShowSaveDialog(DefaultSaveName, services.SaveExtensions(), mc.SaveTo)
}

// SaveTo encodes the current image into w. path names the destination and
// selects the format; a path without an extension is written as PNG.
func (mc *MorandiController) SaveTo(w io.Writer, path string) error {
	if err := mc.store.Export(w, path); err != nil {
		mc.handleError("Image save failed", err)
		return err
	}
	return nil
}

// ApplyPreset switches the tone preset.
func (mc *MorandiController) ApplyPreset(p tone.Preset) {
	if _, err := mc.store.ApplyPreset(p); err != nil {
		mc.handleError("Filter failed", err)
		return
	}
	mc.refresh()
}

// SetAdjustments applies the slider values.
func (mc *MorandiController) SetAdjustments(params tone.AdjustParams) {
	if _, err := mc.store.SetAdjustments(params); err != nil {
		mc.handleError("Adjustment failed", err)
		return
	}
	mc.refresh()
}

// Reset restores the original image and the slider defaults.
func (mc *MorandiController) Reset() {
	if _, err := mc.store.Reset(); err != nil {
		mc.handleError("Reset failed", err)
		return
	}
	mc.view.SetAdjustments(mc.store.Adjustments())
	mc.refresh()
}

// OnFit is called by the fit layout whenever the on-screen size changes.
func (mc *MorandiController) OnFit(width, height int) {
	mc.mu.Lock()
	changed := width != mc.fitW || height != mc.fitH
	mc.fitW, mc.fitH = width, height
	mc.mu.Unlock()

	if changed {
		mc.refresh()
	}
}

// DisplayedImage returns the bitmap last handed to the view.
func (mc *MorandiController) DisplayedImage() *models.Image {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.lastShow
}

func (mc *MorandiController) refresh() {
	current := mc.store.Current()
	if current == nil {
		return
	}

	mc.mu.Lock()
	w, h := mc.fitW, mc.fitH
	mc.mu.Unlock()
	if w <= 0 || h <= 0 {
		w, h = layout.FitToViewport(current.Width, current.Height, 0, 0)
	}

	shown, err := mc.scaler.Scale(current, w, h)
	if err != nil {
		mc.logger.Warning("MorandiController", "display scaling failed, showing full size", map[string]interface{}{
			"error": err.Error(),
		})
		shown = current
	}

	mc.mu.Lock()
	mc.lastShow = shown
	mc.mu.Unlock()

	mc.view.SetDisplayImage(shown)
	mc.updateInfo()
}

func (mc *MorandiController) updateInfo() {
	info, ok := mc.store.Info()
	if !ok {
		mc.view.SetInfo(placeholderInfo, "")
		return
	}
	name := info.Name
	if name == "" || name == "." {
		name = "untitled"
	}
	mc.view.SetInfo("📷 "+name, FormatSize(info.Width, info.Height))
}

// FormatSize renders image dimensions for the info bar.
func FormatSize(width, height int) string {
	return fmt.Sprintf("%d × %d px", width, height)
}

// handleError logs err and reports it to the user. Actions on an empty store
// are silently ignored.
func (mc *MorandiController) handleError(title string, err error) {
	if errors.Is(err, services.ErrEmptyStore) {
		mc.logger.Debug("MorandiController", "ignored action without image", map[string]interface{}{
			"action": title,
		})
		return
	}

	mc.logger.Error("MorandiController", err, map[string]interface{}{"action": title})
	if mc.view != nil {
		mc.view.ShowError(title, err)
	}
}
