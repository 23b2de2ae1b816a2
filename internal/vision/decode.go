// Package vision decodes image files into standard Go images. Common raster
// formats go through the standard library decoders; anything else, notably
// the PPM stream produced by the external RAW decoder, is handled by OpenCV.
package vision

import (
	"bytes"
	"fmt"
	"image"

	// Raster formats decoded by the standard image registry.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gocv.io/x/gocv"
)

// Decode turns raw image bytes into an image. It returns the detected format
// name, or "opencv" when only the OpenCV fallback could read the data.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("image data is empty")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, format, nil
	}

	fallback, fbErr := decodeWithOpenCV(data)
	if fbErr != nil {
		return nil, "", fmt.Errorf("cannot decode image: %w", err)
	}
	return fallback, "opencv", nil
}

// decodeWithOpenCV reads formats the standard registry has no decoder for,
// such as PNM/PPM.
func decodeWithOpenCV(data []byte) (image.Image, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("opencv decode failed: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("opencv decode produced no pixels")
	}

	return MatToRGBA(mat)
}

// MatToRGBA converts a BGR or BGRA Mat into an RGBA image.
func MatToRGBA(mat gocv.Mat) (*image.RGBA, error) {
	channels := mat.Channels()
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count: %d", channels)
	}

	rows := mat.Rows()
	cols := mat.Cols()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b := mat.GetUCharAt3(y, x, 0)
			g := mat.GetUCharAt3(y, x, 1)
			r := mat.GetUCharAt3(y, x, 2)
			a := uint8(255)
			if channels == 4 {
				a = mat.GetUCharAt3(y, x, 3)
			}

			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}

	return img, nil
}
