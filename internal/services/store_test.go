package services

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"morandi-studio/internal/logger"
	"morandi-studio/internal/models"
	"morandi-studio/internal/processing/tone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h int) *models.Image {
	img := models.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(x * 255 / max(w-1, 1))
			img.Pix[i+1] = uint8(y * 255 / max(h-1, 1))
			img.Pix[i+2] = 90
		}
	}
	return img
}

func loadedStore(t *testing.T) (*ImageStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, path, gradientImage(8, 6).ToRGBA())

	store := NewImageStore(NewImageService(nil), nil)
	_, err := store.Load(path)
	require.NoError(t, err)
	return store, path
}

func TestImageStore_EmptyGuards(t *testing.T) {
	store := NewImageStore(NewImageService(nil), nil)

	_, err := store.Reset()
	assert.ErrorIs(t, err, ErrEmptyStore)
	_, err = store.ApplyPreset(tone.Sage)
	assert.ErrorIs(t, err, ErrEmptyStore)
	_, err = store.SetAdjustments(tone.DefaultAdjustParams())
	assert.ErrorIs(t, err, ErrEmptyStore)
	_, err = store.SetBrightness(1.2)
	assert.ErrorIs(t, err, ErrEmptyStore)
	assert.ErrorIs(t, store.Save(filepath.Join(t.TempDir(), "x.png")), ErrEmptyStore)

	assert.False(t, store.Loaded())
	assert.Nil(t, store.Current())
	_, ok := store.Info()
	assert.False(t, ok)
}

func TestImageStore_LoadDropsAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpha.png")
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	writePNG(t, path, src)

	store := NewImageStore(NewImageService(nil), nil)
	img, err := store.Load(path)
	require.NoError(t, err)

	assert.Len(t, img.Pix, 2*2*3)
	r, g, b := img.RGBAt(1, 1)
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
	assert.True(t, store.Original().Equal(store.Current()))
	assert.NotSame(t, store.Original(), store.Current())
}

func TestImageStore_DecodeFailureKeepsPrevious(t *testing.T) {
	store, path := loadedStore(t)
	before := store.Current()

	_, err := store.Load(filepath.Join(t.TempDir(), "missing.png"))

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Same(t, before, store.Current())
	assert.Equal(t, path, store.Path())
}

func TestImageStore_LoadFailureIsLeftToTheCaller(t *testing.T) {
	var buf bytes.Buffer
	store := NewImageStore(NewImageService(nil), logger.NewZerolog(&buf, logger.ErrorLevel))

	_, err := store.Load(filepath.Join(t.TempDir(), "missing.png"))

	require.Error(t, err)
	assert.Zero(t, buf.Len(), "the store returns decode errors without logging them")
}

func TestImageStore_AdjustmentsDoNotCompound(t *testing.T) {
	store, _ := loadedStore(t)

	once, err := store.SetBrightness(1.2)
	require.NoError(t, err)
	twice, err := store.SetBrightness(1.2)
	require.NoError(t, err)

	assert.True(t, once.Equal(twice), "re-applying the same value must not drift")
	assert.True(t, twice.Equal(tone.AdjustBrightness(store.Original(), 1.2)))
}

func TestImageStore_PresetThenAdjust(t *testing.T) {
	store, _ := loadedStore(t)
	original := store.Original().Clone()

	_, err := store.ApplyPreset(tone.Lavender)
	require.NoError(t, err)
	got, err := store.SetSaturation(1.5)
	require.NoError(t, err)

	preset, err := tone.ApplyPreset(original, tone.Lavender)
	require.NoError(t, err)
	want := tone.Adjust(preset, tone.AdjustParams{Brightness: 1, Contrast: 1, Saturation: 1.5})

	assert.True(t, want.Equal(got))
	assert.Equal(t, tone.Lavender, store.Preset())
	assert.True(t, original.Equal(store.Original()), "original must never change")
}

func TestImageStore_EarlierResultsStayValid(t *testing.T) {
	store, _ := loadedStore(t)

	first, err := store.ApplyPreset(tone.Rose)
	require.NoError(t, err)
	snapshot := first.Clone()

	_, err = store.SetContrast(1.4)
	require.NoError(t, err)
	_, err = store.Reset()
	require.NoError(t, err)

	assert.True(t, snapshot.Equal(first))
}

func TestImageStore_Reset(t *testing.T) {
	store, _ := loadedStore(t)
	_, err := store.ApplyPreset(tone.DustyBlue)
	require.NoError(t, err)
	_, err = store.SetAdjustments(tone.AdjustParams{Brightness: 0.7, Contrast: 1.3, Saturation: 0.2})
	require.NoError(t, err)

	img, err := store.Reset()
	require.NoError(t, err)

	assert.True(t, img.Equal(store.Original()))
	assert.NotSame(t, store.Original(), img)
	assert.Equal(t, tone.Preset(""), store.Preset())
	assert.Equal(t, tone.DefaultAdjustParams(), store.Adjustments())
}

func TestImageStore_SetAdjustmentsClamps(t *testing.T) {
	store, _ := loadedStore(t)

	_, err := store.SetAdjustments(tone.AdjustParams{Brightness: 9, Contrast: -1, Saturation: 5})
	require.NoError(t, err)

	assert.Equal(t, tone.AdjustParams{
		Brightness: tone.MaxBrightness,
		Contrast:   tone.MinContrast,
		Saturation: tone.MaxSaturation,
	}, store.Adjustments())
}

func TestImageStore_UnknownPreset(t *testing.T) {
	store, _ := loadedStore(t)
	before := store.Current()

	_, err := store.ApplyPreset("sepia")

	assert.Error(t, err)
	assert.Same(t, before, store.Current())
}

func TestImageStore_SaveRoundTrip(t *testing.T) {
	store, _ := loadedStore(t)
	current, err := store.ApplyPreset(tone.Sage)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, store.Save(out))

	back, err := NewImageService(nil).Decode(out)
	require.NoError(t, err)
	assert.True(t, current.Equal(back))
}

func TestImageStore_SaveUnsupportedExtension(t *testing.T) {
	store, _ := loadedStore(t)

	err := store.Save(filepath.Join(t.TempDir(), "out.gif"))

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.NotNil(t, store.Current())
}

func TestImageStore_Info(t *testing.T) {
	store, path := loadedStore(t)

	info, ok := store.Info()

	require.True(t, ok)
	assert.Equal(t, "photo.png", info.Name)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 8, info.Width)
	assert.Equal(t, 6, info.Height)
}

func TestImageStore_Export(t *testing.T) {
	store, _ := loadedStore(t)
	current, err := store.ApplyPreset(tone.Rose)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.Export(&buf, "/any/where/out.png"))

	back, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, current.Equal(models.FromImage(back)))
}

func TestImageStore_ExportFormats(t *testing.T) {
	store, _ := loadedStore(t)

	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "out.jpg"},
		{path: "out.BMP"},
		{path: "out"},
		{path: "out.tiff", wantErr: true},
		{path: "out.gif", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			err := store.Export(&buf, tt.path)
			if tt.wantErr {
				var encErr *EncodeError
				require.ErrorAs(t, err, &encErr)
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				assert.Zero(t, buf.Len(), "nothing may reach the destination on failure")
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, buf.Len())
		})
	}
}

func TestImageStore_ExportEmpty(t *testing.T) {
	store := NewImageStore(NewImageService(nil), nil)

	var buf bytes.Buffer
	assert.ErrorIs(t, store.Export(&buf, "out.png"), ErrEmptyStore)
	assert.Zero(t, buf.Len())
}

type emptyDecoder struct{ Codec }

func (emptyDecoder) Decode(string) (*models.Image, error) { return models.NewImage(0, 0), nil }

func TestImageStore_LoadEmptyImage(t *testing.T) {
	store := NewImageStore(emptyDecoder{Codec: NewImageService(nil)}, nil)

	_, err := store.Load("blank.png")

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.False(t, errors.Is(err, ErrEmptyStore))
	assert.False(t, store.Loaded())
}
