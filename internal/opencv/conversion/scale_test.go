//go:build cgo

package conversion

import (
	"testing"

	"morandi-studio/internal/models"
	"morandi-studio/internal/opencv/safe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, r, g, b uint8) *models.Image {
	img := models.NewImage(w, h)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
	}
	return img
}

func TestImageMatRoundTrip(t *testing.T) {
	img := solidImage(5, 3, 10, 20, 30)
	img.Pix[0] = 200

	mat, err := ImageToMat(img)
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 3, mat.Rows())
	assert.Equal(t, 5, mat.Cols())
	assert.Equal(t, 3, mat.Channels())

	back, err := MatToImage(mat)
	require.NoError(t, err)
	assert.True(t, img.Equal(back))
}

func TestImageToMat_CopiesPixels(t *testing.T) {
	img := solidImage(2, 2, 1, 2, 3)
	mat, err := ImageToMat(img)
	require.NoError(t, err)
	defer mat.Close()

	img.Pix[0] = 99

	data, err := mat.Bytes()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), data[0])
}

func TestScaler_SameSizeReturnsInput(t *testing.T) {
	img := solidImage(8, 4, 50, 60, 70)

	out, err := NewScaler(nil).Scale(img, 8, 4)

	require.NoError(t, err)
	assert.Same(t, img, out)
}

func TestScaler_Downscale(t *testing.T) {
	img := solidImage(40, 20, 120, 80, 200)

	out, err := NewScaler(nil).Scale(img, 20, 10)

	require.NoError(t, err)
	assert.Equal(t, 20, out.Width)
	assert.Equal(t, 10, out.Height)
	assert.Len(t, out.Pix, 20*10*3)
	r, g, b := out.RGBAt(10, 5)
	assert.InDelta(t, 120, int(r), 1)
	assert.InDelta(t, 80, int(g), 1)
	assert.InDelta(t, 200, int(b), 1)
	assert.True(t, img.Equal(solidImage(40, 20, 120, 80, 200)), "source must be untouched")
}

func TestScaler_Upscale(t *testing.T) {
	out, err := NewScaler(nil).Scale(solidImage(4, 4, 9, 9, 9), 12, 12)

	require.NoError(t, err)
	assert.Equal(t, 12, out.Width)
	assert.Equal(t, 12, out.Height)
}

func TestScaler_RejectsBadInput(t *testing.T) {
	s := NewScaler(nil)

	_, err := s.Scale(solidImage(4, 4, 0, 0, 0), 0, 10)
	assert.Error(t, err)
	_, err = s.Scale(solidImage(4, 4, 0, 0, 0), safe.MaxDimension+1, 10)
	assert.Error(t, err)
	_, err = s.Scale(models.NewImage(0, 0), 10, 10)
	assert.Error(t, err)
}
