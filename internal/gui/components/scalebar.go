package components

import (
	"image"
	"image/color"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"o3meter/internal/scale"
)

const (
	scaleBarHeight   = 36
	scaleBarMinWidth = 220
	pointerHeight    = 10
	pointerHalfWidth = 6
)

// ScaleBar renders the yellow-to-blue ozone gradient with a pointer at the
// current reading.
type ScaleBar struct {
	raster *canvas.Raster
	value  atomic.Int64
}

// NewScaleBar creates a bar pointing at zero.
func NewScaleBar() *ScaleBar {
	b := &ScaleBar{}
	b.raster = canvas.NewRaster(b.draw)
	b.raster.SetMinSize(fyne.NewSize(scaleBarMinWidth, scaleBarHeight))
	return b
}

// GetObject returns the drawable bar.
func (b *ScaleBar) GetObject() fyne.CanvasObject {
	return b.raster
}

// SetValue moves the pointer to the given scale value and redraws.
func (b *ScaleBar) SetValue(value int) {
	if value < 0 {
		value = 0
	}
	if value > scale.Max {
		value = scale.Max
	}
	b.value.Store(int64(value))
	b.raster.Refresh()
}

// draw paints the gradient with the pointer triangle above it. Each column
// carries the color of the scale value it represents, which reproduces the
// yellow, red, magenta, blue progression of the strip hues.
func (b *ScaleBar) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 1 || h <= 1 {
		return img
	}

	for x := 0; x < w; x++ {
		col := scale.GradientColor(float64(x) / float64(w-1))
		for y := pointerHeight; y < h; y++ {
			img.SetRGBA(x, y, col)
		}
	}

	pointerX := int(b.value.Load()) * (w - 1) / scale.Max
	dark := color.RGBA{A: 255}
	for y := 0; y < pointerHeight && y < h; y++ {
		// Triangle narrows toward the gradient.
		half := pointerHalfWidth * (pointerHeight - y) / pointerHeight
		for x := pointerX - half; x <= pointerX+half; x++ {
			if x >= 0 && x < w {
				img.SetRGBA(x, y, dark)
			}
		}
	}

	return img
}
