package conversion

import (
	"fmt"
	"image"
	"time"

	"morandi-studio/internal/logger"
	"morandi-studio/internal/models"
	"morandi-studio/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Scaler resamples the working image to the on-screen size.
type Scaler struct {
	logger logger.Logger
}

func NewScaler(log logger.Logger) *Scaler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Scaler{logger: log}
}

// Scale returns img resized to width x height with Lanczos interpolation. The
// input is returned unchanged when it already has that size.
func (s *Scaler) Scale(img *models.Image, width, height int) (*models.Image, error) {
	if err := safe.ValidateDimensions(width, height, "display scale"); err != nil {
		return nil, err
	}
	if img.Empty() {
		return nil, fmt.Errorf("display scale: input image is empty")
	}
	if img.Width == width && img.Height == height {
		return img, nil
	}

	start := time.Now()

	src, err := ImageToMat(img)
	if err != nil {
		return nil, fmt.Errorf("display scale: %w", err)
	}
	defer src.Close()

	dst, err := safe.NewMat(height, width, gocv.MatTypeCV8UC3, "display")
	if err != nil {
		return nil, fmt.Errorf("display scale: %w", err)
	}
	defer dst.Close()

	interpolation := gocv.InterpolationLanczos4
	if width > img.Width && height > img.Height {
		interpolation = gocv.InterpolationCubic
	}

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	gocv.Resize(srcMat, &dstMat, image.Pt(width, height), 0, 0, interpolation)

	out, err := MatToImage(dst)
	if err != nil {
		return nil, fmt.Errorf("display scale: %w", err)
	}

	s.logger.Debug("Scaler", "image scaled", map[string]interface{}{
		"from":     fmt.Sprintf("%dx%d", img.Width, img.Height),
		"to":       fmt.Sprintf("%dx%d", width, height),
		"duration": time.Since(start).String(),
	})
	return out, nil
}
