package services

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"morandi-studio/internal/logger"
	"morandi-studio/internal/models"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 95

// ImageService decodes and encodes image files.
type ImageService struct {
	logger logger.Logger
}

// NewImageService creates a new image service
func NewImageService(log logger.Logger) *ImageService {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &ImageService{logger: log}
}

// Decode reads an image file and normalises it to 3-channel RGB.
func (is *ImageService) Decode(path string) (*models.Image, error) {
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	rgb := models.FromImage(img)
	if rgb.Empty() {
		return nil, &DecodeError{Path: path, Err: errNoPixels}
	}

	is.logger.Debug("ImageService", "image decoded", map[string]interface{}{
		"path":     path,
		"format":   format,
		"width":    rgb.Width,
		"height":   rgb.Height,
		"duration": time.Since(start).String(),
	})

	return rgb, nil
}

// Encode writes img to path, choosing the codec from the extension.
func (is *ImageService) Encode(img image.Image, path string) error {
	format, err := EncodeFormat(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if err := is.EncodeTo(&buf, img, format); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	// Encode fully before touching the file so a codec failure leaves no partial output.
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	is.logger.Info("ImageService", "image saved", map[string]interface{}{
		"path":   path,
		"format": format,
		"bytes":  buf.Len(),
	})
	return nil
}

// EncodeTo writes img to w in the named format ("png", "jpeg" or "bmp").
func (is *ImageService) EncodeTo(w io.Writer, img image.Image, format string) error {
	if img == nil {
		return fmt.Errorf("no image data to save")
	}
	if rgb, ok := img.(*models.Image); ok {
		img = rgb.ToRGBA()
	}

	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DecodeFrames decodes every frame of an animated GIF, composited onto the full
// logical screen. When size is non-zero each frame is resampled to size x size.
// Still images yield a single frame.
func (is *ImageService) DecodeFrames(path string, size int) ([]models.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	var frames []models.Frame
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		g, err := gif.DecodeAll(bufio.NewReader(file))
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		frames = compositeGIF(g)
	} else {
		img, _, err := image.Decode(bufio.NewReader(file))
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		frames = []models.Frame{{Image: img, Duration: models.DefaultFrameDuration}}
	}

	if size > 0 {
		for i := range frames {
			frames[i].Image = resize.Resize(uint(size), uint(size), frames[i].Image, resize.Lanczos3)
		}
	}

	is.logger.Debug("ImageService", "animation decoded", map[string]interface{}{
		"path":   path,
		"frames": len(frames),
	})
	return frames, nil
}

func compositeGIF(g *gif.GIF) []models.Frame {
	if len(g.Image) == 0 {
		return nil
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(screen)
	frames := make([]models.Frame, 0, len(g.Image))

	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		duration := models.DefaultFrameDuration
		if i < len(g.Delay) && g.Delay[i] > 0 {
			duration = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		frames = append(frames, models.Frame{Image: cloneRGBA(canvas), Duration: duration})

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// DecodeFormat returns the format name for a readable extension.
func DecodeFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".gif":
		return "gif", nil
	case ".webp":
		return "webp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// EncodeFormat returns the format name for a writable extension.
func EncodeFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// OpenExtensions lists the extensions offered in the open dialog.
func OpenExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp"}
}

// SaveExtensions lists the extensions offered in the save dialog.
func SaveExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp"}
}
