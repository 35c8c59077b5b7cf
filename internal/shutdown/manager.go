// Package shutdown stops registered components in reverse registration order
// when a window closes or the process receives SIGINT/SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"morandi-studio/internal/logger"
)

// DefaultStepTimeout bounds a single component's Shutdown.
const DefaultStepTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type step struct {
	name      string
	component Shutdownable
}

type Manager struct {
	mu      sync.Mutex
	steps   []step
	logger  logger.Logger
	timeout time.Duration
	once    sync.Once
	done    chan struct{}
}

func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	if log == nil {
		log = logger.NopLogger{}
	}
	if timeout <= 0 {
		timeout = DefaultStepTimeout
	}
	return &Manager{
		logger:  log,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// Register adds a component. Components stop in reverse order, so register
// producers (windows, views) before the things they drive (players, timers).
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, component: component})
}

// Listen calls onSignal once when SIGINT or SIGTERM arrives, or when ctx is
// cancelled. onSignal usually quits the Fyne app, which then runs Shutdown
// through the window close path.
func (m *Manager) Listen(ctx context.Context, onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
		case <-ctx.Done():
		case <-m.done:
			return
		}
		if onSignal != nil {
			onSignal()
		}
	}()
}

// Shutdown stops every component once. A component that exceeds the step
// timeout is logged and left behind.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		defer close(m.done)

		m.mu.Lock()
		steps := make([]step, len(m.steps))
		copy(steps, m.steps)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"components": len(steps),
		})

		for i := len(steps) - 1; i >= 0; i-- {
			s := steps[i]

			done := make(chan struct{})
			go func() {
				defer close(done)
				s.component.Shutdown()
			}()

			select {
			case <-done:
				m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
					"component": s.name,
				})
			case <-time.After(m.timeout):
				m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
					"component": s.name,
				})
			}
		}

		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
