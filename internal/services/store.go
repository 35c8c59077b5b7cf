package services

import (
	"bytes"
	"image"
	"io"
	"path/filepath"
	"sync"
	"time"

	"morandi-studio/internal/logger"
	"morandi-studio/internal/models"
	"morandi-studio/internal/processing/tone"
)

// Decoder loads an image file as RGB.
type Decoder interface {
	Decode(path string) (*models.Image, error)
}

// Encoder writes an image file, inferring the format from the path, or
// streams it in a named format.
type Encoder interface {
	Encode(img image.Image, path string) error
	EncodeTo(w io.Writer, img image.Image, format string) error
}

// Codec is the pair the store needs.
type Codec interface {
	Decoder
	Encoder
}

// ImageStore holds the loaded original and the current working copy. current is
// always recomputed from original using the selected preset (if any) followed by
// the full adjustment set, so repeated slider moves never compound.
type ImageStore struct {
	mu       sync.RWMutex
	codec    Codec
	logger   logger.Logger
	original *models.Image
	current  *models.Image
	path     string
	loadedAt time.Time
	preset   tone.Preset
	params   tone.AdjustParams
}

// StoreInfo describes the loaded image for the info bar.
type StoreInfo struct {
	Name     string
	Path     string
	Format   string
	Width    int
	Height   int
	Preset   tone.Preset
	Params   tone.AdjustParams
	LoadedAt time.Time
}

// NewImageStore creates an empty store.
func NewImageStore(codec Codec, log logger.Logger) *ImageStore {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &ImageStore{
		codec:  codec,
		logger: log,
		params: tone.DefaultAdjustParams(),
	}
}

// Load decodes path and replaces original and current. On failure the previous
// images are kept and a *DecodeError is returned.
func (s *ImageStore) Load(path string) (*models.Image, error) {
	img, err := s.codec.Decode(path)
	if err != nil {
		return nil, err
	}
	if img.Empty() {
		return nil, &DecodeError{Path: path, Err: errNoPixels}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = img
	s.current = img.Clone()
	s.path = path
	s.loadedAt = time.Now()
	s.preset = ""
	s.params = tone.DefaultAdjustParams()

	s.logger.Info("ImageStore", "image loaded", map[string]interface{}{
		"path":   path,
		"width":  img.Width,
		"height": img.Height,
	})

	return s.current, nil
}

// Reset discards the preset and adjustments and returns a fresh copy of original.
func (s *ImageStore) Reset() (*models.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.original == nil {
		return nil, ErrEmptyStore
	}
	s.preset = ""
	s.params = tone.DefaultAdjustParams()
	s.current = s.original.Clone()
	return s.current, nil
}

// ApplyPreset selects a Morandi preset and recomputes current.
func (s *ImageStore) ApplyPreset(p tone.Preset) (*models.Image, error) {
	p, err := tone.ParsePreset(string(p))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.original == nil {
		return nil, ErrEmptyStore
	}
	s.preset = p
	s.recompute()
	return s.current, nil
}

// SetAdjustments replaces the whole adjustment set and recomputes current.
func (s *ImageStore) SetAdjustments(params tone.AdjustParams) (*models.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.original == nil {
		return nil, ErrEmptyStore
	}
	s.params = params.Normalize()
	s.recompute()
	return s.current, nil
}

// SetBrightness changes only the brightness factor.
func (s *ImageStore) SetBrightness(v float64) (*models.Image, error) {
	params := s.Adjustments()
	params.Brightness = v
	return s.SetAdjustments(params)
}

// SetContrast changes only the contrast factor.
func (s *ImageStore) SetContrast(v float64) (*models.Image, error) {
	params := s.Adjustments()
	params.Contrast = v
	return s.SetAdjustments(params)
}

// SetSaturation changes only the saturation factor.
func (s *ImageStore) SetSaturation(v float64) (*models.Image, error) {
	params := s.Adjustments()
	params.Saturation = v
	return s.SetAdjustments(params)
}

func (s *ImageStore) recompute() {
	start := time.Now()

	base := s.original
	if s.preset != "" {
		// preset validity was checked in ApplyPreset
		base, _ = tone.ApplyPreset(s.original, s.preset)
	}
	if s.params.IsIdentity() {
		if base == s.original {
			base = s.original.Clone()
		}
		s.current = base
	} else {
		s.current = tone.Adjust(base, s.params)
	}

	s.logger.Debug("ImageStore", "current image recomputed", map[string]interface{}{
		"preset":     string(s.preset),
		"brightness": s.params.Brightness,
		"contrast":   s.params.Contrast,
		"saturation": s.params.Saturation,
		"duration":   time.Since(start).String(),
	})
}

// Save encodes the current image to path.
func (s *ImageStore) Save(path string) error {
	current := s.Current()
	if current == nil {
		return ErrEmptyStore
	}
	return s.SaveImage(current, path)
}

// SaveImage encodes an explicit image to path.
func (s *ImageStore) SaveImage(img *models.Image, path string) error {
	if img.Empty() {
		return ErrEmptyStore
	}
	return s.codec.Encode(img, path)
}

// Export encodes the current image into w. The format comes from the extension
// of path, PNG when there is none. Nothing is written to w if encoding fails.
func (s *ImageStore) Export(w io.Writer, path string) error {
	current := s.Current()
	if current == nil {
		return ErrEmptyStore
	}

	format := "png"
	if filepath.Ext(path) != "" {
		f, err := EncodeFormat(path)
		if err != nil {
			return &EncodeError{Path: path, Err: err}
		}
		format = f
	}

	var buf bytes.Buffer
	if err := s.codec.EncodeTo(&buf, current, format); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	s.logger.Info("ImageStore", "image exported", map[string]interface{}{
		"path":   path,
		"format": format,
		"bytes":  n,
	})
	return nil
}

// Loaded reports whether an image is present.
func (s *ImageStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original != nil
}

// Original returns the loaded image, or nil.
func (s *ImageStore) Original() *models.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original
}

// Current returns the working image, or nil.
func (s *ImageStore) Current() *models.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Path returns the file the original was loaded from.
func (s *ImageStore) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Preset returns the selected preset, or "" when none is active.
func (s *ImageStore) Preset() tone.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preset
}

// Adjustments returns the active adjustment set.
func (s *ImageStore) Adjustments() tone.AdjustParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Info summarises the store for display. ok is false while empty.
func (s *ImageStore) Info() (info StoreInfo, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return StoreInfo{}, false
	}
	format, _ := DecodeFormat(s.path)
	return StoreInfo{
		Name:     filepath.Base(s.path),
		Path:     s.path,
		Format:   format,
		Width:    s.current.Width,
		Height:   s.current.Height,
		Preset:   s.preset,
		Params:   s.params,
		LoadedAt: s.loadedAt,
	}, true
}
