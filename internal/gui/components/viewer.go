package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	// ZoomInFactor and ZoomOutFactor are the per-step zoom multipliers.
	ZoomInFactor  = 1.25
	ZoomOutFactor = 0.8

	minZoom = 0.05
	maxZoom = 8.0
)

// SelectionHandler receives a finished drag rectangle in display
// coordinates together with the displayed size of the image.
type SelectionHandler func(ox, oy, dx, dy float64, displayW, displayH float64)

// StripViewer shows the loaded photograph at an adjustable zoom and lets
// the user drag a rectangle over it to select the strip region.
type StripViewer struct {
	widget.BaseWidget

	img       *canvas.Image
	selection *canvas.Rectangle

	naturalSize fyne.Size
	zoom        float32

	dragging  bool
	dragStart fyne.Position
	dragEnd   fyne.Position

	selectionHandler SelectionHandler
}

// NewStripViewer creates an empty viewer.
func NewStripViewer() *StripViewer {
	v := &StripViewer{zoom: 1.0}

	v.img = canvas.NewImageFromImage(nil)
	v.img.FillMode = canvas.ImageFillStretch
	v.img.ScaleMode = canvas.ImageScaleSmooth

	v.selection = canvas.NewRectangle(color.Transparent)
	v.selection.StrokeColor = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	v.selection.StrokeWidth = 1.5
	v.selection.Hide()

	v.ExtendBaseWidget(v)
	return v
}

// SetSelectionHandler registers the drag-selection callback.
func (v *StripViewer) SetSelectionHandler(handler SelectionHandler) {
	v.selectionHandler = handler
}

// SetImage loads a new photograph and resets zoom and selection.
func (v *StripViewer) SetImage(img image.Image) {
	v.img.Image = img
	if img != nil {
		bounds := img.Bounds()
		v.naturalSize = fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
	} else {
		v.naturalSize = fyne.Size{}
	}
	v.zoom = 1.0
	v.selection.Hide()
	v.Refresh()
}

// HasImage reports whether a photograph is loaded.
func (v *StripViewer) HasImage() bool {
	return v.img.Image != nil
}

// Zoom multiplies the current zoom by factor and returns the new zoom.
func (v *StripViewer) Zoom(factor float32) float32 {
	z := v.zoom * factor
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	v.zoom = z
	v.selection.Hide()
	v.Refresh()
	return v.zoom
}

// FitTo chooses the zoom that fits the whole photograph inside the given
// viewport and returns it.
func (v *StripViewer) FitTo(viewport fyne.Size) float32 {
	if v.naturalSize.Width <= 0 || v.naturalSize.Height <= 0 {
		return v.zoom
	}

	wf := viewport.Width / v.naturalSize.Width
	hf := viewport.Height / v.naturalSize.Height
	v.zoom = 1.0
	if wf < hf {
		return v.Zoom(wf)
	}
	return v.Zoom(hf)
}

// MinSize is the photograph's natural size scaled by the current zoom, so a
// surrounding scroll container shows scrollbars when zoomed in.
func (v *StripViewer) MinSize() fyne.Size {
	if v.naturalSize.Width <= 0 {
		return fyne.NewSize(320, 240)
	}
	return fyne.NewSize(v.naturalSize.Width*v.zoom, v.naturalSize.Height*v.zoom)
}

// Dragged tracks the selection rectangle while the mouse moves with a
// button held.
func (v *StripViewer) Dragged(e *fyne.DragEvent) {
	if !v.HasImage() {
		return
	}

	if !v.dragging {
		v.dragging = true
		v.dragStart = fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
	}
	v.dragEnd = e.Position

	v.updateSelectionRect()
	v.selection.Show()
	v.Refresh()
}

// DragEnd finishes the selection and hands the rectangle to the handler.
func (v *StripViewer) DragEnd() {
	if !v.dragging {
		return
	}
	v.dragging = false

	if v.selectionHandler != nil {
		size := v.Size()
		v.selectionHandler(
			float64(v.dragStart.X), float64(v.dragStart.Y),
			float64(v.dragEnd.X), float64(v.dragEnd.Y),
			float64(size.Width), float64(size.Height),
		)
	}
}

func (v *StripViewer) updateSelectionRect() {
	x0, x1 := v.dragStart.X, v.dragEnd.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := v.dragStart.Y, v.dragEnd.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	v.selection.Move(fyne.NewPos(x0, y0))
	v.selection.Resize(fyne.NewSize(x1-x0, y1-y0))
}

// CreateRenderer implements fyne.Widget.
func (v *StripViewer) CreateRenderer() fyne.WidgetRenderer {
	return &stripViewerRenderer{viewer: v}
}

type stripViewerRenderer struct {
	viewer *StripViewer
}

func (r *stripViewerRenderer) Layout(size fyne.Size) {
	r.viewer.img.Resize(size)
}

func (r *stripViewerRenderer) MinSize() fyne.Size {
	return r.viewer.MinSize()
}

func (r *stripViewerRenderer) Refresh() {
	r.viewer.img.Refresh()
	r.viewer.selection.Refresh()
}

func (r *stripViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewer.img, r.viewer.selection}
}

func (r *stripViewerRenderer) Destroy() {}
