package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the file and view actions. Zoom actions stay disabled until
// an image is loaded.
type Toolbar struct {
	container *fyne.Container

	OpenButton    *widget.Button
	FitButton     *widget.Button
	ZoomInButton  *widget.Button
	ZoomOutButton *widget.Button
	AboutButton   *widget.Button

	openHandler    func()
	fitHandler     func()
	zoomInHandler  func()
	zoomOutHandler func()
	aboutHandler   func()
}

// NewToolbar creates the toolbar with view actions disabled.
func NewToolbar() *Toolbar {
	t := &Toolbar{}

	t.OpenButton = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), t.onOpen)
	t.OpenButton.Importance = widget.HighImportance

	t.FitButton = widget.NewButtonWithIcon("Fit", theme.ViewRefreshIcon(), t.onFit)
	t.ZoomInButton = widget.NewButtonWithIcon("Zoom In", theme.ZoomInIcon(), t.onZoomIn)
	t.ZoomOutButton = widget.NewButtonWithIcon("Zoom Out", theme.ZoomOutIcon(), t.onZoomOut)
	t.AboutButton = widget.NewButtonWithIcon("About", theme.InfoIcon(), t.onAbout)

	t.SetViewActionsEnabled(false)

	left := container.NewHBox(
		t.OpenButton,
		widget.NewSeparator(),
		t.FitButton,
		t.ZoomInButton,
		t.ZoomOutButton,
	)
	right := container.NewHBox(t.AboutButton)

	t.container = container.NewBorder(nil, nil, left, right)
	return t
}

// GetContainer returns the toolbar layout.
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// SetViewActionsEnabled toggles the zoom and fit actions.
func (t *Toolbar) SetViewActionsEnabled(enabled bool) {
	if enabled {
		t.FitButton.Enable()
		t.ZoomInButton.Enable()
		t.ZoomOutButton.Enable()
	} else {
		t.FitButton.Disable()
		t.ZoomInButton.Disable()
		t.ZoomOutButton.Disable()
	}
}

func (t *Toolbar) SetOpenHandler(handler func())    { t.openHandler = handler }
func (t *Toolbar) SetFitHandler(handler func())     { t.fitHandler = handler }
func (t *Toolbar) SetZoomInHandler(handler func())  { t.zoomInHandler = handler }
func (t *Toolbar) SetZoomOutHandler(handler func()) { t.zoomOutHandler = handler }
func (t *Toolbar) SetAboutHandler(handler func())   { t.aboutHandler = handler }

func (t *Toolbar) onOpen() {
	if t.openHandler != nil {
		t.openHandler()
	}
}

func (t *Toolbar) onFit() {
	if t.fitHandler != nil {
		t.fitHandler()
	}
}

func (t *Toolbar) onZoomIn() {
	if t.zoomInHandler != nil {
		t.zoomInHandler()
	}
}

func (t *Toolbar) onZoomOut() {
	if t.zoomOutHandler != nil {
		t.zoomOutHandler()
	}
}

func (t *Toolbar) onAbout() {
	if t.aboutHandler != nil {
		t.aboutHandler()
	}
}
