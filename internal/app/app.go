// Package app provides the core application service for Wails bindings.
package app

import (
	"log/slog"
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"

	"go.aimuz.me/deskshell/config"
	"go.aimuz.me/deskshell/internal/types"
	"go.aimuz.me/deskshell/reveal"
	"go.aimuz.me/deskshell/store"
	"go.aimuz.me/deskshell/tray"
	"go.aimuz.me/deskshell/windowstate"
)

// Service provides application functionality bound to Wails.
// Its exported methods are the commands the UI can invoke.
type Service struct {
	revealer reveal.Revealer

	mu  sync.Mutex
	cfg *config.Config

	// UI references - set via Init and AttachTray
	app     *application.App
	tray    *tray.Controller
	store   *store.Store
	windows *windowstate.Manager

	// locate finds the main window. nil until bound.
	locate func() (Window, bool)
	// emit broadcasts an application event. nil until bound.
	emit func(name string, data any)
	// pending holds launches forwarded before the service was bound.
	pending []types.SingleInstancePayload
}

// New creates a new Service. Call Init() after Wails app is created.
func New(cfg *config.Config, revealer reveal.Revealer) *Service {
	return &Service{cfg: cfg, revealer: revealer}
}

// Init wires the service to the running application. st may be nil, in
// which case window geometry is not persisted.
func (s *Service) Init(app *application.App, st *store.Store) {
	s.mu.Lock()
	s.app = app
	if st != nil {
		s.store = st
		s.windows = windowstate.New(st)
	}
	s.mu.Unlock()

	s.bind(func() (Window, bool) {
		w, ok := app.Window.GetByName(types.MainWindowName)
		if !ok || w == nil {
			return Window{}, false
		}
		return NewWindow(w), true
	}, func(name string, data any) {
		app.Event.Emit(name, data)
	})
}

// bind sets the window locator and event sink, then delivers launches
// forwarded before it.
func (s *Service) bind(locate func() (Window, bool), emit func(name string, data any)) {
	s.mu.Lock()
	s.locate = locate
	s.emit = emit
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, p := range pending {
		emit(types.EventNewInstance, p)
	}
}

func (s *Service) window() (Window, bool) {
	s.mu.Lock()
	locate := s.locate
	s.mu.Unlock()
	if locate == nil {
		return Window{}, false
	}
	return locate()
}

func (s *Service) broadcast(name string, data any) {
	s.mu.Lock()
	emit := s.emit
	s.mu.Unlock()
	if emit != nil {
		emit(name, data)
	}
}

func (s *Service) controller() *tray.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tray
}

// syncTray tells the tray the main window was shown or hidden.
func (s *Service) syncTray(visible bool) {
	if c := s.controller(); c != nil {
		c.SyncVisibility(visible)
	}
}

// AttachTray hands the tray controller to the service.
func (s *Service) AttachTray(c *tray.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tray = c
}

// MainWindow returns the main window if it exists.
func (s *Service) MainWindow() (Window, bool) {
	return s.window()
}

// Shutdown saves window geometry, stops pending geometry saves and closes
// the store.
func (s *Service) Shutdown() {
	if s.windows != nil {
		if w, ok := s.window(); ok {
			if err := s.windows.Save(w); err != nil {
				slog.Error("save window geometry", "error", err)
			}
		}
		s.windows.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			slog.Error("close store", "error", err)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Instance forwarding
// ─────────────────────────────────────────────────────────────────────────────

// ForwardInstance raises a newInstance event for a redirected launch.
// Launches forwarded before Init are held and delivered by Init.
func (s *Service) ForwardInstance(p types.SingleInstancePayload) {
	s.mu.Lock()
	emit := s.emit
	if emit == nil {
		s.pending = append(s.pending, p)
		s.mu.Unlock()
		slog.Debug("instance forwarded before init", "args", p.Args)
		return
	}
	s.mu.Unlock()
	emit(types.EventNewInstance, p)
}

// ─────────────────────────────────────────────────────────────────────────────
// Window
// ─────────────────────────────────────────────────────────────────────────────

// RestoreWindow applies the saved geometry of w, if enabled, then shows it.
func (s *Service) RestoreWindow(w Window) {
	s.mu.Lock()
	restore := s.cfg.RestoreWindow
	s.mu.Unlock()

	if s.windows != nil && restore {
		if _, err := s.windows.Restore(w); err != nil {
			slog.Warn("restore window geometry", "error", err)
		}
	}
	w.Show()
	s.syncTray(true)
}

// HideToTray hides w and keeps the tray menu in step.
func (s *Service) HideToTray(w Window) {
	w.Hide()
	s.syncTray(false)
}

// TrackWindow returns a trigger that saves the geometry of w once moves
// and resizes settle. It is a no-op without a store.
func (s *Service) TrackWindow(w Window) func() {
	if s.windows == nil {
		return func() {}
	}
	return s.windows.Track(w)
}

// ShowMainWindow shows and focuses the main window.
func (s *Service) ShowMainWindow() {
	if w, ok := s.window(); ok {
		w.Show()
		w.Focus()
		s.syncTray(true)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────────────────────────────────────

// TrayUpdateLang rebuilds the tray menu for lang and remembers the choice.
// Any tag is accepted. Failing to persist it is logged, not returned.
func (s *Service) TrayUpdateLang(lang string) {
	s.mu.Lock()
	c := s.tray
	cfg := s.cfg
	s.mu.Unlock()

	if c != nil {
		c.SetLanguage(lang)
		s.broadcast(EventLanguageChanged, c.Language())
	}
	if err := cfg.SetLanguage(lang); err != nil {
		slog.Warn("save language", "lang", lang, "error", err)
	}
}

// ShowItemInFolder opens the platform file manager with path selected.
func (s *Service) ShowItemInFolder(path string) error {
	if err := s.revealer.Reveal(path); err != nil {
		slog.Warn("reveal in file manager", "path", path, "error", err)
		s.broadcast(EventRevealFailed, path)
		return err
	}
	return nil
}

// ProcessFile is a placeholder command.
func (s *Service) ProcessFile(path string) string {
	slog.Info("processing file", "path", path)
	return "Hello from Go!"
}

// ApplyConfig picks up a configuration reloaded from disk.
func (s *Service) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	c := s.tray
	s.cfg = cfg
	s.mu.Unlock()

	if c != nil && tray.Resolve(cfg.Language).String() != c.Language() {
		slog.Info("config language changed", "lang", cfg.Language)
		c.SetLanguage(cfg.Language)
		s.broadcast(EventLanguageChanged, c.Language())
	}
}
