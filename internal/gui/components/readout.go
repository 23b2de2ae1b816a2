package components

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"o3meter/internal/scale"
)

// Readout shows the numeric ozone reading with a swatch filled at the
// corresponding strip color.
type Readout struct {
	container *fyne.Container
	value     *canvas.Text
	swatch    *canvas.Rectangle
}

// NewReadout creates a readout displaying zero.
func NewReadout() *Readout {
	caption := widget.NewLabel("Scale from 0 to 180")
	caption.Alignment = fyne.TextAlignCenter

	value := canvas.NewText("0", color.Black)
	value.TextSize = 48
	value.TextStyle = fyne.TextStyle{Monospace: true}
	value.Alignment = fyne.TextAlignCenter

	swatch := canvas.NewRectangle(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	swatch.StrokeColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	swatch.StrokeWidth = 1
	swatch.SetMinSize(fyne.NewSize(0, 60))

	r := &Readout{
		value:  value,
		swatch: swatch,
	}
	r.container = container.NewVBox(caption, value, swatch)
	return r
}

// GetContainer returns the readout layout.
func (r *Readout) GetContainer() *fyne.Container {
	return r.container
}

// SetValue updates the number and recolors the swatch at the hue the value
// maps back to.
func (r *Readout) SetValue(value int) {
	r.value.Text = strconv.Itoa(value)
	r.value.Refresh()

	r.swatch.FillColor = scale.ValueColor(value)
	r.swatch.Refresh()
}

// Reset blanks the readout for a newly opened file.
func (r *Readout) Reset() {
	r.value.Text = "0"
	r.value.Refresh()

	r.swatch.FillColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	r.swatch.Refresh()
}
