package main

import (
	"context"
	"log"
	"runtime"

	"morandi-studio/internal/animation"
	"morandi-studio/internal/config"
	"morandi-studio/internal/controllers"
	"morandi-studio/internal/logger"
	"morandi-studio/internal/opencv/conversion"
	"morandi-studio/internal/services"
	"morandi-studio/internal/shutdown"
	"morandi-studio/internal/theme"
	"morandi-studio/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	AppName    = "Morandi Image Studio"
	AppID      = "com.morandi.image-studio"
	AppVersion = "1.0.0"
)

// Application wires the image studio together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MorandiController
	view       *views.MorandiView
	player     *animation.Player
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := config.Load(config.MorandiPrefix, config.MorandiDefaults())
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application := NewApplication(cfg, logger.New(cfg.Level(), cfg.JSONLogs))
	application.Run(ctx)
}

// NewApplication creates the window, the MVC triple and the header animation.
func NewApplication(cfg *config.Config, appLogger logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	catalog := theme.Default()
	fyneApp.Settings().SetTheme(theme.NewMorandiTheme(catalog.Morandi))

	window := newBorderlessWindow(fyneApp, AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": [2]int{cfg.WindowWidth, cfg.WindowHeight},
		"go_version":  runtime.Version(),
		"log_level":   cfg.Level().String(),
	})

	imageService := services.NewImageService(appLogger)
	store := services.NewImageStore(imageService, appLogger)
	controller := controllers.NewMorandiController(store, conversion.NewScaler(appLogger), appLogger)
	view := views.NewMorandiView(window, catalog.Morandi, float32(cfg.GIFSize))
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(appLogger, shutdown.DefaultStepTimeout),
	}
	application.setupAnimation(imageService)
	application.setupWindowEvents()

	return application
}

// newBorderlessWindow returns a splash window on desktop drivers, which has
// no system decorations, and a regular window elsewhere.
func newBorderlessWindow(fyneApp fyne.App, title string) fyne.Window {
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		w := drv.CreateSplashWindow()
		w.SetTitle(title)
		return w
	}
	return fyneApp.NewWindow(title)
}

func (a *Application) setupAnimation(source animation.FrameSource) {
	header := a.view.Header()
	frames, err := source.DecodeFrames(a.config.GIFPath, a.config.GIFSize)
	if err != nil || len(frames) == 0 {
		a.logger.Warning("Application", "header animation unavailable, showing glyph", map[string]interface{}{
			"path":  a.config.GIFPath,
			"error": errString(err),
		})
		header.ShowGlyph()
		return
	}

	a.player = animation.NewPlayer(frames, animation.UIScheduler{}, header.RenderFrame)
	a.shutdown.Register("header animation", a.player)
	a.player.Start()
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.quit)
	a.view.SetCloseHandler(a.quit)
}

// Run shows the window and blocks until the app exits.
func (a *Application) Run(ctx context.Context) {
	a.shutdown.Listen(ctx, func() {
		fyne.Do(a.quit)
	})

	a.window.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

// quit stops the animation before tearing the window down.
func (a *Application) quit() {
	a.shutdown.Shutdown()
	a.window.Close()
	a.fyneApp.Quit()
}

func errString(err error) string {
	if err == nil {
		return "no frames"
	}
	return err.Error()
}
