// Package gui assembles the main window: toolbar, scrollable strip viewer,
// reading panel and status line.
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"o3meter/internal/gui/components"
	"o3meter/internal/logger"
)

const (
	readingPanelWidth   = 260
	scaleBarPanelHeight = 40
)

// Manager owns the widgets and serializes every update onto the UI thread.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	toolbar  *components.Toolbar
	viewer   *components.StripViewer
	scroll   *container.Scroll
	readout  *components.Readout
	scaleBar *components.ScaleBar

	statusLabel *widget.Label
	progress    *dialog.CustomDialog
}

// NewManager builds the window content.
func NewManager(window fyne.Window, log logger.Logger) *Manager {
	m := &Manager{
		window:      window,
		logger:      log,
		toolbar:     components.NewToolbar(),
		viewer:      components.NewStripViewer(),
		readout:     components.NewReadout(),
		scaleBar:    components.NewScaleBar(),
		statusLabel: widget.NewLabel("Ready"),
	}

	m.scroll = container.NewScroll(m.viewer)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"reading_panel_width": readingPanelWidth,
	})
	return m
}

// GetMainContainer lays out the window: toolbar on top, reading panel on
// the left, scrollable viewer in the center, status line at the bottom.
func (m *Manager) GetMainContainer() *fyne.Container {
	readingPanel := container.NewVBox(
		m.readout.GetContainer(),
		widget.NewSeparator(),
		container.NewGridWrap(
			fyne.NewSize(readingPanelWidth, scaleBarPanelHeight),
			m.scaleBar.GetObject(),
		),
	)

	return container.NewBorder(
		m.toolbar.GetContainer(),
		m.statusLabel,
		readingPanel,
		nil,
		m.scroll,
	)
}

// GetWindow returns the window for dialog parenting.
func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// Toolbar exposes the action bar for handler wiring.
func (m *Manager) Toolbar() *components.Toolbar {
	return m.toolbar
}

// SetSelectionHandler registers the drag-selection callback on the viewer.
func (m *Manager) SetSelectionHandler(handler components.SelectionHandler) {
	m.viewer.SetSelectionHandler(handler)
}

// SetImage shows a newly loaded photograph and enables the view actions.
func (m *Manager) SetImage(img image.Image) {
	fyne.Do(func() {
		m.viewer.SetImage(img)
		m.toolbar.SetViewActionsEnabled(img != nil)
		m.readout.Reset()
		m.scaleBar.SetValue(0)
		m.FitToWindow()
	})
}

// FitToWindow scales the photograph to the scroll viewport.
func (m *Manager) FitToWindow() {
	if !m.viewer.HasImage() {
		return
	}
	zoom := m.viewer.FitTo(m.scroll.Size())
	m.scroll.Refresh()
	m.setZoomStatus(zoom)
}

// ZoomIn enlarges the photograph by one step.
func (m *Manager) ZoomIn() {
	m.applyZoom(components.ZoomInFactor)
}

// ZoomOut shrinks the photograph by one step.
func (m *Manager) ZoomOut() {
	m.applyZoom(components.ZoomOutFactor)
}

func (m *Manager) applyZoom(factor float32) {
	if !m.viewer.HasImage() {
		return
	}
	zoom := m.viewer.Zoom(factor)
	m.scroll.Refresh()
	m.setZoomStatus(zoom)
}

func (m *Manager) setZoomStatus(zoom float32) {
	m.statusLabel.SetText(fmt.Sprintf("Scaled to %d%%", int(zoom*100)))
}

// UpdateReading shows a finished analysis on the readout and the scale bar.
func (m *Manager) UpdateReading(value int) {
	fyne.Do(func() {
		m.readout.SetValue(value)
		m.scaleBar.SetValue(value)
	})
}

// UpdateStatus sets the status line.
func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.statusLabel.SetText(status)
		m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
			"status": status,
		})
	})
}

// ShowProgress opens the modal busy indicator. The computation itself is
// not cancellable, so the dialog has no buttons.
func (m *Manager) ShowProgress(label string) {
	fyne.Do(func() {
		if m.progress != nil {
			m.progress.Hide()
		}
		bar := widget.NewProgressBarInfinite()
		m.progress = dialog.NewCustomWithoutButtons(label, bar, m.window)
		m.progress.Show()
	})
}

// HideProgress dismisses the busy indicator.
func (m *Manager) HideProgress() {
	fyne.Do(func() {
		if m.progress != nil {
			m.progress.Hide()
			m.progress = nil
		}
	})
}

// ShowError reports a failed operation.
func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

// ShowAbout opens the about dialog.
func (m *Manager) ShowAbout(appName, version string) {
	fyne.Do(func() {
		dialog.ShowInformation(
			"About "+appName,
			fmt.Sprintf("%s %s\n\nEstimates an ozone scale value (0-180) from the hue\nof a photographed colorimetric test strip.\n\nReadings are appended to the ozone log file.", appName, version),
			m.window,
		)
	})
}

// Shutdown marks the manager stopped.
func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
