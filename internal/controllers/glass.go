package controllers

import (
	"sync"
	"time"

	"morandi-studio/internal/animation"
	"morandi-studio/internal/logger"
	"morandi-studio/internal/theme"
)

const (
	// BadgeDuration is how long the theme name stays visible after a switch.
	BadgeDuration = 2 * time.Second
	// ClockInterval is the refresh period of the footer clock.
	ClockInterval = 30 * time.Second
	ClockFormat   = "2006-01-02 15:04"
)

// GlassView is what the glass controller drives. All methods are called on
// the UI goroutine.
type GlassView interface {
	ApplyTheme(t theme.GlassTheme)
	ShowBadge(label string, t theme.GlassTheme)
	HideBadge()
	SetClock(text string)
	SetThemeHandler(handler func())
}

// GlassController owns the theme cycle of the liquid glass shell, the name
// badge timer and the footer clock.
type GlassController struct {
	cycle     *theme.Cycle
	scheduler animation.Scheduler
	logger    logger.Logger
	now       func() time.Time
	view      GlassView

	mu         sync.Mutex
	badgeGen   uint64
	badgeTimer animation.Cancelable
	clockGen   uint64
	clockTimer animation.Cancelable
	stopped    bool
}

func NewGlassController(themes []theme.GlassTheme, scheduler animation.Scheduler, log logger.Logger) *GlassController {
	if scheduler == nil {
		scheduler = animation.UIScheduler{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &GlassController{
		cycle:     theme.NewCycle(themes),
		scheduler: scheduler,
		logger:    log,
		now:       time.Now,
	}
}

// SetView applies the first theme and connects the theme button.
func (gc *GlassController) SetView(view GlassView) {
	gc.view = view
	view.SetThemeHandler(func() { gc.NextTheme() })
	view.ApplyTheme(gc.cycle.Current())
}

// CurrentTheme returns the active theme.
func (gc *GlassController) CurrentTheme() theme.GlassTheme {
	return gc.cycle.Current()
}

// NextTheme advances to the next theme, applies it and flashes its name. A
// switch while the badge is up restarts the badge timer.
func (gc *GlassController) NextTheme() theme.GlassTheme {
	t := gc.cycle.Next()
	gc.view.ApplyTheme(t)
	gc.view.ShowBadge(t.Label(), t)

	gc.mu.Lock()
	if gc.badgeTimer != nil {
		gc.badgeTimer.Stop()
	}
	gc.badgeGen++
	gen := gc.badgeGen
	gc.badgeTimer = gc.scheduler.AfterFunc(BadgeDuration, func() { gc.hideBadge(gen) })
	gc.mu.Unlock()

	gc.logger.Debug("GlassController", "theme switched", map[string]interface{}{
		"theme": t.English,
		"index": gc.cycle.Index(),
	})
	return t
}

func (gc *GlassController) hideBadge(gen uint64) {
	gc.mu.Lock()
	stale := gen != gc.badgeGen || gc.stopped
	if !stale {
		gc.badgeTimer = nil
	}
	gc.mu.Unlock()
	if stale {
		return
	}
	gc.view.HideBadge()
}

// StartClock shows the current time and keeps it updated.
func (gc *GlassController) StartClock() {
	gc.mu.Lock()
	gc.clockGen++
	gen := gc.clockGen
	gc.mu.Unlock()
	gc.tickClock(gen)
}

func (gc *GlassController) tickClock(gen uint64) {
	gc.mu.Lock()
	if gen != gc.clockGen || gc.stopped {
		gc.mu.Unlock()
		return
	}
	gc.clockTimer = gc.scheduler.AfterFunc(ClockInterval, func() { gc.tickClock(gen) })
	gc.mu.Unlock()

	gc.view.SetClock(gc.now().Format(ClockFormat))
}

// Shutdown cancels the badge and clock timers.
func (gc *GlassController) Shutdown() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.stopped = true
	gc.badgeGen++
	gc.clockGen++
	if gc.badgeTimer != nil {
		gc.badgeTimer.Stop()
		gc.badgeTimer = nil
	}
	if gc.clockTimer != nil {
		gc.clockTimer.Stop()
		gc.clockTimer = nil
	}
}
