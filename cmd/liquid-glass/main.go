package main

import (
	"context"
	"log"
	"runtime"

	"morandi-studio/internal/animation"
	"morandi-studio/internal/config"
	"morandi-studio/internal/controllers"
	"morandi-studio/internal/logger"
	"morandi-studio/internal/services"
	"morandi-studio/internal/shutdown"
	"morandi-studio/internal/theme"
	"morandi-studio/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	AppName    = "Liquid Glass Design"
	AppID      = "com.morandi.liquid-glass"
	AppVersion = "1.0.0"
)

// Application wires the liquid glass shell together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.GlassController
	view       *views.GlassView
	player     *animation.Player
	rotator    *animation.Rotator
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := config.Load(config.GlassPrefix, config.GlassDefaults())
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application := NewApplication(cfg, logger.New(cfg.Level(), cfg.JSONLogs))
	application.Run(ctx)
}

func NewApplication(cfg *config.Config, appLogger logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	catalog := theme.Default()
	themes := catalog.Glass
	fyneTheme := theme.NewGlassFyneTheme(themes[0])
	fyneApp.Settings().SetTheme(fyneTheme)

	window := newBorderlessWindow(fyneApp, AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"themes":     len(themes),
		"gif_dir":    cfg.GIFDir,
		"go_version": runtime.Version(),
	})

	view := views.NewGlassView(fyneApp, window, fyneTheme, catalog.GlassText, float32(cfg.GIFSize))
	controller := controllers.NewGlassController(themes, animation.UIScheduler{}, appLogger)
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
	application.setupAnimation(services.NewImageService(appLogger))
	application.setupWindowEvents()

	return application
}

func newBorderlessWindow(fyneApp fyne.App, title string) fyne.Window {
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		w := drv.CreateSplashWindow()
		w.SetTitle(title)
		return w
	}
	return fyneApp.NewWindow(title)
}

// setupAnimation starts the header GIF rotation. The player begins empty; the
// rotator fills it from the GIF directory or the fallback file.
func (a *Application) setupAnimation(source animation.FrameSource) {
	header := a.view.Header()
	a.player = animation.NewPlayer(nil, animation.UIScheduler{}, header.RenderFrame)
	a.rotator = animation.NewRotator(animation.RotatorConfig{
		Dir:       a.config.GIFDir,
		Fallback:  a.config.GIFPath,
		Interval:  a.config.GIFRotate,
		FrameSize: a.config.GIFSize,
	}, source, a.player, animation.UIScheduler{}, a.logger)
	a.rotator.OnEmpty(header.ShowGlyph)

	a.shutdown.Register("theme controller", shutdown.Func(a.controller.Shutdown))
	a.shutdown.Register("header animation", a.player)
	a.shutdown.Register("gif rotator", a.rotator)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.quit)
	a.view.SetCloseHandler(a.quit)
}

func (a *Application) Run(ctx context.Context) {
	a.shutdown.Listen(ctx, func() {
		fyne.Do(a.quit)
	})

	a.window.Show()
	a.controller.StartClock()
	a.rotator.Start()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) quit() {
	a.shutdown.Shutdown()
	a.window.Close()
	a.fyneApp.Quit()
}
