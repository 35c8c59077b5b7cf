package conversion

import (
	"fmt"

	"morandi-studio/internal/models"
	"morandi-studio/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// ImageToMat copies an RGB image into a 3-channel Mat. Channel order stays RGB;
// the Mats produced here only go through geometric operations.
func ImageToMat(img *models.Image) (*safe.Mat, error) {
	if img.Empty() {
		return nil, fmt.Errorf("input image is empty")
	}
	return safe.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, img.Pix, "image")
}

// MatToImage copies a 3-channel Mat back into an RGB image.
func MatToImage(src *safe.Mat) (*models.Image, error) {
	if err := safe.ValidateMatForOperation(src, "Mat to image conversion"); err != nil {
		return nil, err
	}
	if src.Channels() != 3 {
		return nil, fmt.Errorf("unsupported channel count: %d", src.Channels())
	}

	pix, err := src.Bytes()
	if err != nil {
		return nil, err
	}
	return models.NewImageFromPix(src.Cols(), src.Rows(), pix)
}
