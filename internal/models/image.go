package models

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Image is an opaque 8-bit RGB pixel buffer. Pix holds Width*Height*3 bytes in
// row-major order with no stride padding. An Image is never modified once it has
// been handed out; every transform allocates a new one.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a black image of the given size.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// NewImageFromPix wraps pix without copying. The caller gives up ownership of pix.
func NewImageFromPix(width, height int, pix []uint8) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%d RGB", len(pix), width, height)
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// FromImage converts any decoded image to RGB. Translucent pixels are composited
// over black, which drops the alpha channel the same way a plain RGB conversion does.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	dst := NewImage(bounds.Dx(), bounds.Dy())

	rgba, ok := src.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	}

	// RGBA is alpha-premultiplied, so copying the colour bytes is compositing over black.
	rb := rgba.Bounds()
	i := 0
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			o := rgba.PixOffset(rb.Min.X+x, rb.Min.Y+y)
			dst.Pix[i] = rgba.Pix[o]
			dst.Pix[i+1] = rgba.Pix[o+1]
			dst.Pix[i+2] = rgba.Pix[o+2]
			i += 3
		}
	}
	return dst
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) == 0
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Pix: pix}
}

// Equal reports whether two images have identical dimensions and pixels.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.Width != other.Width || img.Height != other.Height || len(img.Pix) != len(other.Pix) {
		return false
	}
	for i := range img.Pix {
		if img.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// PixOffset returns the index of the red byte of pixel (x, y).
func (img *Image) PixOffset(x, y int) int {
	return (y*img.Width + x) * 3
}

// RGBAt returns the channel values at (x, y).
func (img *Image) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0, 0, 0
	}
	i := img.PixOffset(x, y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	r, g, b := img.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ToRGBA expands the buffer into an *image.RGBA for renderers and encoders that
// are faster on the standard layout.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i, j := 0, 0; i+2 < len(img.Pix); i, j = i+3, j+4 {
		out.Pix[j] = img.Pix[i]
		out.Pix[j+1] = img.Pix[i+1]
		out.Pix[j+2] = img.Pix[i+2]
		out.Pix[j+3] = 255
	}
	return out
}
