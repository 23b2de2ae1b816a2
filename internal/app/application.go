package app

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"o3meter/internal/analysis"
	"o3meter/internal/gui"
	"o3meter/internal/logbook"
	"o3meter/internal/logger"
	"o3meter/internal/pipeline"
	"o3meter/internal/rawdecode"
	"o3meter/internal/shutdown"
)

const (
	AppName    = "O3 Meter"
	AppID      = "com.colorimetric.o3meter"
	AppVersion = "1.0.0"

	windowWidth  = 1100
	windowHeight = 700
)

// Application owns every long-lived component and wires them together.
type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	logger      logger.Logger
	guiManager  *gui.Manager
	coordinator *pipeline.Coordinator
	handlers    *Handlers
	shutdownMgr *shutdown.Manager
}

// NewApplication builds the application graph: decoders, pipeline, GUI and
// shutdown handling. It does not show the window yet.
func NewApplication(log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	rawDecoder := rawdecode.NewDecoder()
	if !rawDecoder.Available() {
		log.Warning("Application", "raw decoder not found, RAW files will not open", map[string]interface{}{
			"decoder": rawdecode.DecoderName,
		})
	}

	loader := pipeline.NewLoader(rawDecoder, log)
	analyzer := analysis.NewAnalyzer(analysis.DefaultConfig())
	book := logbook.New(logbook.PathFromEnv())
	coordinator := pipeline.NewCoordinator(loader, analyzer, book, log)

	guiManager := gui.NewManager(window, log)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(guiManager)
	shutdownMgr.Listen()

	handlers := NewHandlers(shutdownMgr.Context(), coordinator, guiManager, log)

	toolbar := guiManager.Toolbar()
	toolbar.SetOpenHandler(handlers.HandleOpen)
	toolbar.SetFitHandler(handlers.HandleFit)
	toolbar.SetZoomInHandler(handlers.HandleZoomIn)
	toolbar.SetZoomOutHandler(handlers.HandleZoomOut)
	toolbar.SetAboutHandler(handlers.HandleAbout)
	guiManager.SetSelectionHandler(handlers.HandleSelection)

	return &Application{
		fyneApp:     fyneApp,
		window:      window,
		logger:      log,
		guiManager:  guiManager,
		coordinator: coordinator,
		handlers:    handlers,
		shutdownMgr: shutdownMgr,
	}, nil
}

// OpenPath loads a photograph given on the command line once the window is
// up, then analyzes it like a dialog-opened file.
func (a *Application) OpenPath(path string) {
	go func() {
		imageData, err := a.coordinator.LoadFromPath(a.shutdownMgr.Context(), path)
		if err != nil {
			a.guiManager.ShowError("Image Load Error", err)
			return
		}

		a.guiManager.SetImage(imageData.Image)
		fyne.Do(func() {
			a.window.SetTitle(fmt.Sprintf("%s - %s", AppName, imageData.Path))
		})

		a.handlers.runAnalysis(nil)
	}()
}

// Run shows the main window and blocks until the application exits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "close requested", nil)
		a.shutdownMgr.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "application started", map[string]interface{}{
		"name":    AppName,
		"version": AppVersion,
		"pid":     os.Getpid(),
	})

	a.fyneApp.Run()
	return nil
}
