package app

import (
	"context"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"o3meter/internal/analysis"
	"o3meter/internal/gui"
	"o3meter/internal/logger"
	"o3meter/internal/pipeline"
)

// openExtensions lists everything the open dialog offers: the raster
// formats the decoders handle plus the RAW extensions routed to dcraw.
var openExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp", ".webp", ".ppm",
	".cr2", ".nef", ".arw", ".dng", ".orf", ".rw2", ".raf",
}

// Handlers connects user actions to the pipeline and pushes results back
// into the GUI.
type Handlers struct {
	ctx         context.Context
	coordinator *pipeline.Coordinator
	guiManager  *gui.Manager
	logger      logger.Logger
}

// NewHandlers creates the action handlers. ctx ends when shutdown begins,
// which aborts any in-flight RAW development.
func NewHandlers(ctx context.Context, coord *pipeline.Coordinator, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		ctx:         ctx,
		coordinator: coord,
		guiManager:  gm,
		logger:      log,
	}
}

// HandleOpen shows the file dialog and loads the chosen photograph. A
// successful load immediately analyzes the whole image.
func (h *Handlers) HandleOpen() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}

		h.guiManager.UpdateStatus("Loading image...")

		go func() {
			imageData, loadErr := h.coordinator.LoadFromReader(h.ctx, reader)
			reader.Close()

			if loadErr != nil {
				h.guiManager.ShowError("Image Load Error", loadErr)
				h.guiManager.UpdateStatus("Ready")
				return
			}

			h.guiManager.SetImage(imageData.Image)
			fyne.Do(func() {
				h.guiManager.GetWindow().SetTitle(fmt.Sprintf("%s - %s", AppName, imageData.Path))
			})
			h.guiManager.UpdateStatus("Opened: " + filepath.Base(imageData.Path))

			h.runAnalysis(nil)
		}()
	}, h.guiManager.GetWindow())

	fileDialog.SetFilter(storage.NewExtensionFileFilter(openExtensions))
	fileDialog.Show()
}

// HandleSelection maps a finished drag rectangle to buffer coordinates and
// analyzes that region.
func (h *Handlers) HandleSelection(ox, oy, dx, dy, displayW, displayH float64) {
	imageData := h.coordinator.Current()
	if imageData == nil {
		return
	}

	region := analysis.RegionFromDisplay(ox, oy, dx, dy, displayW, displayH,
		imageData.Width, imageData.Height)

	h.logger.Debug("Handlers", "region selected", map[string]interface{}{
		"x0": region.X0, "y0": region.Y0,
		"x1": region.X1, "y1": region.Y1,
	})

	go h.runAnalysis(&region)
}

// runAnalysis performs one whole-image or region analysis behind the modal
// busy indicator and publishes the reading.
func (h *Handlers) runAnalysis(region *analysis.Region) {
	h.guiManager.ShowProgress("Computing...")

	var outcome analysis.Outcome
	if region == nil {
		outcome = <-h.coordinator.AnalyzeWholeImage()
	} else {
		outcome = <-h.coordinator.AnalyzeRegion(*region)
	}

	h.guiManager.HideProgress()

	if outcome.Err != nil {
		h.guiManager.ShowError("Analysis Error", outcome.Err)
		h.guiManager.UpdateStatus("Analysis failed")
		return
	}

	h.guiManager.UpdateReading(outcome.Result.Value)
	h.guiManager.UpdateStatus(fmt.Sprintf("Ozone scale: %d", outcome.Result.Value))
}

// HandleZoomIn, HandleZoomOut and HandleFit adjust the viewer; they run on
// the UI thread because toolbar callbacks deliver there.
func (h *Handlers) HandleZoomIn() { h.guiManager.ZoomIn() }

func (h *Handlers) HandleZoomOut() { h.guiManager.ZoomOut() }

func (h *Handlers) HandleFit() { h.guiManager.FitToWindow() }

// HandleAbout opens the about dialog.
func (h *Handlers) HandleAbout() {
	h.guiManager.ShowAbout(AppName, AppVersion)
}
