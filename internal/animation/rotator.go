package animation

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"morandi-studio/internal/logger"
	"morandi-studio/internal/models"
)

// FrameSource decodes an animation file into frames.
type FrameSource interface {
	DecodeFrames(path string, size int) ([]models.Frame, error)
}

// RotatorConfig configures a Rotator.
type RotatorConfig struct {
	Dir       string        // directory scanned for *.gif files
	Fallback  string        // used when Dir yields nothing
	Interval  time.Duration // how often a new GIF is picked
	FrameSize int           // thumbnail edge passed to the FrameSource
}

// Rotator periodically loads a random GIF from a directory into a Player.
// When nothing can be loaded it calls onEmpty so the view can show a glyph.
type Rotator struct {
	mu         sync.Mutex
	cfg        RotatorConfig
	source     FrameSource
	player     *Player
	scheduler  Scheduler
	logger     logger.Logger
	onEmpty    func()
	onLoaded   func(path string)
	intn       func(n int) int
	candidates []string
	pending    Cancelable
	generation uint64
	running    bool
}

// NewRotator creates a stopped rotator.
func NewRotator(cfg RotatorConfig, source FrameSource, player *Player, scheduler Scheduler, log logger.Logger) *Rotator {
	if scheduler == nil {
		scheduler = UIScheduler{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Rotator{
		cfg:       cfg,
		source:    source,
		player:    player,
		scheduler: scheduler,
		logger:    log,
		intn:      rand.IntN,
	}
}

// OnEmpty registers the callback used when no animation could be loaded.
func (r *Rotator) OnEmpty(f func()) { r.onEmpty = f }

// OnLoaded registers a callback invoked with the path of each loaded animation.
func (r *Rotator) OnLoaded(f func(path string)) { r.onLoaded = f }

// Scan lists the candidate GIFs. Missing directories yield no candidates.
func (r *Rotator) Scan() []string {
	var found []string
	if r.cfg.Dir != "" {
		entries, err := os.ReadDir(r.cfg.Dir)
		if err != nil {
			r.logger.Debug("Rotator", "animation directory unavailable", map[string]interface{}{
				"dir":   r.cfg.Dir,
				"error": err.Error(),
			})
		}
		for _, e := range entries {
			if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), ".gif") {
				found = append(found, filepath.Join(r.cfg.Dir, e.Name()))
			}
		}
		sort.Strings(found)
	}

	r.mu.Lock()
	r.candidates = found
	r.mu.Unlock()
	return found
}

// Start scans the directory, shows a first animation and, when there is more
// than one candidate, keeps rotating every Interval.
func (r *Rotator) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.generation++
	r.mu.Unlock()

	r.Scan()
	r.Next()
	r.player.Start()

	r.mu.Lock()
	if r.running && len(r.candidates) > 1 && r.cfg.Interval > 0 {
		r.scheduleLocked(r.generation)
	}
	r.mu.Unlock()
}

// Stop halts rotation and the player.
func (r *Rotator) Stop() {
	r.mu.Lock()
	r.running = false
	r.generation++
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
	r.mu.Unlock()

	r.player.Stop()
}

// Shutdown satisfies shutdown.Shutdownable.
func (r *Rotator) Shutdown() {
	r.Stop()
}

// Next loads a random candidate, falling back to cfg.Fallback and finally to
// onEmpty. It reports whether frames were loaded.
func (r *Rotator) Next() bool {
	r.mu.Lock()
	candidates := append([]string(nil), r.candidates...)
	r.mu.Unlock()

	// start at a random candidate, then try the rest in order
	order := make([]string, 0, len(candidates)+1)
	start := 0
	if len(candidates) > 1 {
		start = r.intn(len(candidates))
	}
	for i := range candidates {
		order = append(order, candidates[(start+i)%len(candidates)])
	}
	if r.cfg.Fallback != "" {
		order = append(order, r.cfg.Fallback)
	}

	for _, path := range order {
		frames, err := r.source.DecodeFrames(path, r.cfg.FrameSize)
		if err != nil || len(frames) == 0 {
			r.logger.Warning("Rotator", "animation skipped", map[string]interface{}{
				"path":  path,
				"error": errString(err),
			})
			continue
		}
		r.player.Replace(frames)
		if r.onLoaded != nil {
			r.onLoaded(path)
		}
		return true
	}

	r.player.Replace(nil)
	if r.onEmpty != nil {
		r.onEmpty()
	}
	return false
}

func (r *Rotator) scheduleLocked(generation uint64) {
	r.pending = r.scheduler.AfterFunc(r.cfg.Interval, func() {
		r.rotate(generation)
	})
}

func (r *Rotator) rotate(generation uint64) {
	r.mu.Lock()
	if !r.running || generation != r.generation {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.Next()
	r.player.Start()

	r.mu.Lock()
	if r.running && generation == r.generation {
		r.scheduleLocked(generation)
	}
	r.mu.Unlock()
}

func errString(err error) string {
	if err == nil {
		return "no frames"
	}
	return err.Error()
}
