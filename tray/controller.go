// Package tray implements the system tray icon: its menu, the playback
// state that selects the icon, and the handlers for tray and menu events.
package tray

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"go.aimuz.me/deskshell/internal/types"
)

// ErrNoTray is returned when a surface has no tray resource bound.
var ErrNoTray = errors.New("tray: no tray resource")

// Surface is the tray resource the controller renders onto.
type Surface interface {
	SetMenu(m Menu) error
	SetLabel(id, label string) error
	SetIcon(icon []byte) error
}

// Window is the part of the main window the controller drives.
type Window interface {
	IsVisible() bool
	Show()
	Hide()
	Focus()
	Emit(name string, data any)
}

// WindowLocator returns the main window, or false if it does not exist.
type WindowLocator func() (Window, bool)

// Icons are the images bound to the tray for each playback state.
type Icons struct {
	Idle   []byte
	Active []byte
}

// Options configures a Controller.
type Options struct {
	Surface  Surface
	Window   WindowLocator
	State    *State
	Icons    Icons
	Language string
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)
}

// Controller handles tray and menu events. Menu callbacks are serialised
// by the host event loop; only the playback state is shared with other
// goroutines and it carries its own lock.
type Controller struct {
	surface Surface
	window  WindowLocator
	state   *State
	icons   Icons
	exit    func(int)

	mu   sync.Mutex
	lang string
}

// NewController creates a Controller. Call Render to bind the initial
// menu and icon.
func NewController(opts Options) *Controller {
	c := &Controller{
		surface: opts.Surface,
		window:  opts.Window,
		state:   opts.State,
		icons:   opts.Icons,
		exit:    opts.Exit,
		lang:    Resolve(opts.Language).String(),
	}
	if c.state == nil {
		c.state = NewState()
	}
	if c.exit == nil {
		c.exit = os.Exit
	}
	if c.window == nil {
		c.window = func() (Window, bool) { return nil, false }
	}
	return c
}

// Render binds the menu for the configured language and the icon for the
// current state.
func (c *Controller) Render() {
	c.SetLanguage(c.Language())

	icon := c.icons.Idle
	if c.state.Current() == Playing {
		icon = c.icons.Active
	}
	if err := c.surface.SetIcon(icon); err != nil {
		slog.Warn("set tray icon", "error", err)
	}
}

// State returns the playback state.
func (c *Controller) State() *State {
	return c.state
}

// Language returns the tag of the menu currently bound to the tray.
func (c *Controller) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// SetLanguage rebuilds the whole menu for tag and swaps it onto the tray.
// Tags without a translation fall back to English. If the swap fails the
// previous menu stays in place.
func (c *Controller) SetLanguage(tag string) {
	menu := BuildMenu(tag, c.windowVisible())
	if err := c.surface.SetMenu(menu); err != nil {
		slog.Warn("set tray menu", "lang", tag, "error", err)
		return
	}

	c.mu.Lock()
	c.lang = menu.Lang
	c.mu.Unlock()
	slog.Debug("tray menu rebuilt", "requested", tag, "lang", menu.Lang)
}

// HandleMenu dispatches a menu item activation.
func (c *Controller) HandleMenu(id string) {
	if w, ok := c.window(); ok {
		w.Emit(types.EventSystemTray, types.TrayPayload{Message: id})
	}

	switch id {
	case ItemQuit:
		slog.Info("quit requested from tray")
		c.exit(0)
	case ItemToggleIcon:
		c.toggleIcon()
	case ItemToggleVisibility:
		c.toggleVisibility()
	}
}

// HandleLeftClick shows and focuses the main window.
func (c *Controller) HandleLeftClick() {
	slog.Info("system tray received a left click")

	w, ok := c.window()
	if !ok {
		return
	}
	w.Emit(types.EventTrayClick, types.TrayPayload{Message: "left-click"})
	w.Show()
	w.Focus()
	c.setVisibilityLabel(true)
}

// HandleRightClick logs the click.
func (c *Controller) HandleRightClick() {
	slog.Info("system tray received a right click")
}

// HandleDoubleClick logs the click.
func (c *Controller) HandleDoubleClick() {
	slog.Info("system tray received a double click")
}

// SyncVisibility updates the toggle-visibility label after the main window
// was shown or hidden by something other than the menu.
func (c *Controller) SyncVisibility(visible bool) {
	c.setVisibilityLabel(visible)
}

func (c *Controller) toggleIcon() {
	prev := c.state.Current()
	next, changed := c.state.Toggle()
	if !changed {
		return
	}

	icon := c.icons.Idle
	if next == Playing {
		icon = c.icons.Active
	}
	if err := c.surface.SetIcon(icon); err != nil {
		slog.Warn("swap tray icon", "state", next, "error", err)
		c.state.compareAndSet(next, prev)
		return
	}
	slog.Debug("tray state changed", "from", prev, "to", next)
}

func (c *Controller) toggleVisibility() {
	w, ok := c.window()
	if !ok {
		return
	}

	if w.IsVisible() {
		w.Hide()
		c.setVisibilityLabel(false)
	} else {
		w.Show()
		c.setVisibilityLabel(true)
	}
}

// setVisibilityLabel sets the toggle-visibility label to the action that
// reverses the given visibility.
func (c *Controller) setVisibilityLabel(visible bool) {
	label := newLabels(c.Language()).visibility(visible)
	if err := c.surface.SetLabel(ItemToggleVisibility, label); err != nil {
		slog.Warn("set menu label", "id", ItemToggleVisibility, "error", err)
	}
}

func (c *Controller) windowVisible() bool {
	w, ok := c.window()
	if !ok {
		return true
	}
	return w.IsVisible()
}
