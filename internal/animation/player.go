// Package animation drives decorative frame animations such as the header GIFs.
package animation

import (
	"sync"
	"time"

	"morandi-studio/internal/models"

	"fyne.io/fyne/v2"
)

// State of a Player.
type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Cancelable is a pending scheduled call. *time.Timer satisfies it.
type Cancelable interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Cancelable
}

// Renderer presents the frame at index.
type Renderer func(index int, frame models.Frame)

// UIScheduler fires callbacks on the Fyne UI goroutine.
type UIScheduler struct{}

func (UIScheduler) AfterFunc(d time.Duration, f func()) Cancelable {
	return time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}

// Player cycles through frames, holding each one for its own duration.
// Every scheduled tick carries the generation it was scheduled under; Stop and
// Replace bump the generation, so a tick that was already queued when the player
// stopped is dropped before it can render.
type Player struct {
	mu         sync.Mutex
	frames     []models.Frame
	index      int
	state      State
	generation uint64
	pending    Cancelable
	scheduler  Scheduler
	render     Renderer
}

// NewPlayer creates a stopped player. A player with no frames stays inert.
func NewPlayer(frames []models.Frame, scheduler Scheduler, render Renderer) *Player {
	if scheduler == nil {
		scheduler = UIScheduler{}
	}
	return &Player{
		frames:    normalizeFrames(frames),
		scheduler: scheduler,
		render:    render,
	}
}

func normalizeFrames(frames []models.Frame) []models.Frame {
	out := make([]models.Frame, len(frames))
	copy(out, frames)
	for i := range out {
		if out[i].Duration <= 0 {
			out[i].Duration = models.DefaultFrameDuration
		}
	}
	return out
}

// Start resumes playback from the current index. It renders the current frame
// immediately. Starting a playing player, or one without frames, does nothing.
func (p *Player) Start() {
	p.mu.Lock()
	if len(p.frames) == 0 || p.state == Playing {
		p.mu.Unlock()
		return
	}
	p.state = Playing
	p.generation++
	index, frame := p.index, p.frames[p.index]
	p.scheduleLocked(p.generation, frame.Duration)
	p.mu.Unlock()

	p.present(index, frame)
}

// Stop cancels the pending tick. No frame is rendered after Stop returns.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}
	p.state = Stopped
	p.generation++
	p.cancelLocked()
}

// Shutdown satisfies shutdown.Shutdownable.
func (p *Player) Shutdown() {
	p.Stop()
}

// Replace swaps in a new frame sequence from index 0, keeping the play state.
func (p *Player) Replace(frames []models.Frame) {
	p.mu.Lock()
	p.frames = normalizeFrames(frames)
	p.index = 0
	p.generation++
	p.cancelLocked()

	if p.state != Playing {
		p.mu.Unlock()
		return
	}
	if len(p.frames) == 0 {
		p.state = Stopped
		p.mu.Unlock()
		return
	}
	frame := p.frames[0]
	p.scheduleLocked(p.generation, frame.Duration)
	p.mu.Unlock()

	p.present(0, frame)
}

func (p *Player) tick(generation uint64) {
	p.mu.Lock()
	if p.state != Playing || generation != p.generation || len(p.frames) == 0 {
		p.mu.Unlock()
		return
	}
	p.index = (p.index + 1) % len(p.frames)
	index, frame := p.index, p.frames[p.index]
	p.scheduleLocked(generation, frame.Duration)
	p.mu.Unlock()

	p.present(index, frame)
}

func (p *Player) scheduleLocked(generation uint64, d time.Duration) {
	p.pending = p.scheduler.AfterFunc(d, func() {
		p.tick(generation)
	})
}

func (p *Player) cancelLocked() {
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}

func (p *Player) present(index int, frame models.Frame) {
	if p.render != nil {
		p.render(index, frame)
	}
}

// Index returns the index of the frame currently shown.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// State returns the playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Len returns the number of frames.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}
