package layout

import (
	"math"

	"fyne.io/fyne/v2"
)

const (
	// MinViewport is the smallest usable viewport edge. Anything smaller falls
	// back to the default viewport.
	MinViewport           = 100
	DefaultViewportWidth  = 600
	DefaultViewportHeight = 500
	// ViewportMargin is subtracted from the container size before fitting.
	ViewportMargin = 40
)

// FitToViewport scales (imgW, imgH) to the largest size that fits inside
// (viewW, viewH) while keeping the aspect ratio. A viewport edge below
// MinViewport is replaced by the default for that edge.
func FitToViewport(imgW, imgH, viewW, viewH int) (outW, outH int) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0
	}
	if viewW < MinViewport {
		viewW = DefaultViewportWidth
	}
	if viewH < MinViewport {
		viewH = DefaultViewportHeight
	}

	imgRatio := float64(imgW) / float64(imgH)
	viewRatio := float64(viewW) / float64(viewH)

	if imgRatio > viewRatio {
		outW = viewW
		outH = int(math.Round(float64(viewW) / imgRatio))
	} else {
		outH = viewH
		outW = int(math.Round(float64(viewH) * imgRatio))
	}
	return max(min(outW, viewW), 1), max(min(outH, viewH), 1)
}

// FitLayout centres a single image object at the size FitToViewport computes
// for the container minus ViewportMargin. Any other objects fill the container.
type FitLayout struct {
	imageW, imageH int
	onFit          func(w, h int)
	lastW, lastH   int
}

// NewFitLayout creates a layout. onFit, if set, is called whenever the fitted
// size changes so the caller can resample its bitmap.
func NewFitLayout(onFit func(w, h int)) *FitLayout {
	return &FitLayout{onFit: onFit}
}

// SetImageSize records the native size of the image being shown.
func (fl *FitLayout) SetImageSize(w, h int) {
	fl.imageW, fl.imageH = w, h
	fl.lastW, fl.lastH = 0, 0
}

// FittedSize returns the size computed in the last Layout call.
func (fl *FitLayout) FittedSize() (int, int) {
	return fl.lastW, fl.lastH
}

// Layout places objects[0] (the image) and stretches the rest as overlays.
func (fl *FitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	for _, obj := range objects[1:] {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(0, 0))
	}

	img := objects[0]
	if fl.imageW <= 0 || fl.imageH <= 0 {
		img.Resize(fyne.NewSize(0, 0))
		return
	}

	viewW := int(containerSize.Width) - ViewportMargin
	viewH := int(containerSize.Height) - ViewportMargin
	w, h := FitToViewport(fl.imageW, fl.imageH, viewW, viewH)

	size := fyne.NewSize(float32(w), float32(h))
	img.Resize(size)
	img.Move(fyne.NewPos((containerSize.Width-size.Width)/2, (containerSize.Height-size.Height)/2))

	if w != fl.lastW || h != fl.lastH {
		fl.lastW, fl.lastH = w, h
		if fl.onFit != nil {
			fl.onFit(w, h)
		}
	}
}

func (fl *FitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(MinViewport, MinViewport)
}
