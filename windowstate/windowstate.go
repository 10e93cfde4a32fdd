// Package windowstate saves and restores window geometry between runs.
package windowstate

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bep/debounce"

	"go.aimuz.me/deskshell/internal/types"
	"go.aimuz.me/deskshell/store"
)

const keyPrefix = "window/"

// DefaultDelay is how long Track waits after the last move or resize
// before saving.
const DefaultDelay = 500 * time.Millisecond

// KV is the storage the manager persists geometry to.
type KV interface {
	GetJSON(key string, v any) error
	SetJSON(key string, v any) error
}

// Window is the part of a window whose geometry is persisted.
type Window interface {
	Name() string
	Position() (x, y int)
	Size() (width, height int)
	SetPosition(x, y int)
	SetSize(width, height int)
}

// ErrClosed is returned by Save after Close.
var ErrClosed = errors.New("windowstate: manager closed")

// Manager persists geometry keyed by window name.
type Manager struct {
	kv    KV
	delay time.Duration

	mu     sync.Mutex
	closed bool
}

// New creates a Manager.
func New(kv KV) *Manager {
	return &Manager{kv: kv, delay: DefaultDelay}
}

// Restore applies the saved geometry of w. It reports false when nothing
// usable was saved.
func (m *Manager) Restore(w Window) (bool, error) {
	var g types.Geometry
	err := m.kv.GetJSON(keyPrefix+w.Name(), &g)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load geometry: %w", err)
	}
	if !g.Valid() {
		return false, nil
	}

	w.SetSize(g.Width, g.Height)
	w.SetPosition(g.X, g.Y)
	slog.Debug("window geometry restored", "window", w.Name(), "geometry", g)
	return true, nil
}

// Save stores the current geometry of w. Zero-sized geometry is ignored.
func (m *Manager) Save(w Window) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	var g types.Geometry
	g.X, g.Y = w.Position()
	g.Width, g.Height = w.Size()
	if !g.Valid() {
		return nil
	}
	if err := m.kv.SetJSON(keyPrefix+w.Name(), g); err != nil {
		return fmt.Errorf("save geometry: %w", err)
	}
	return nil
}

// Track returns a trigger that saves w once the calls to it settle.
func (m *Manager) Track(w Window) func() {
	debounced := debounce.New(m.delay)
	return func() {
		debounced(func() {
			if err := m.Save(w); err != nil && !errors.Is(err, ErrClosed) {
				slog.Warn("save window geometry", "window", w.Name(), "error", err)
			}
		})
	}
}

// Close drops every later save, including ones Track has scheduled. It
// waits for a save in progress, so the KV can be closed once it returns.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}
