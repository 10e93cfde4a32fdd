// Package heartbeat emits a periodic liveness event to the main window.
package heartbeat

import (
	"context"
	"log/slog"
	"time"

	"go.aimuz.me/deskshell/internal/types"
)

const (
	DefaultInterval = 2 * time.Second
	DefaultMessage  = "LRT Message"
)

// Target receives heartbeat events.
type Target interface {
	Emit(name string, data any)
}

// Locator returns the window to notify, or false if it does not exist.
type Locator func() (Target, bool)

// Emitter sends a HeartbeatMessage on every tick while the target exists.
type Emitter struct {
	locate   Locator
	interval time.Duration
	message  string
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) Option {
	return func(e *Emitter) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithMessage sets the message literal.
func WithMessage(msg string) Option {
	return func(e *Emitter) { e.message = msg }
}

// New creates an Emitter.
func New(locate Locator, opts ...Option) *Emitter {
	e := &Emitter{
		locate:   locate,
		interval: DefaultInterval,
		message:  DefaultMessage,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run blocks until ctx is cancelled. A tick without a target is skipped.
func (e *Emitter) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	slog.Debug("heartbeat started", "interval", e.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("heartbeat stopped")
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Emitter) tick() {
	target, ok := e.locate()
	if !ok {
		return
	}
	target.Emit(types.EventHeartbeat, types.HeartbeatMessage{Message: e.message})
}
