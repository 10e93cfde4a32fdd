package app

import "github.com/wailsapp/wails/v3/pkg/application"

// Window adapts a Wails window to the small interfaces the tray, heartbeat
// and window-state packages depend on.
type Window struct {
	w application.Window
}

// NewWindow wraps w.
func NewWindow(w application.Window) Window {
	return Window{w: w}
}

func (w Window) Name() string    { return w.w.Name() }
func (w Window) IsVisible() bool { return w.w.IsVisible() }
func (w Window) Show()           { w.w.Show() }
func (w Window) Hide()           { w.w.Hide() }
func (w Window) Focus()          { w.w.Focus() }

func (w Window) Emit(name string, data any) {
	w.w.EmitEvent(name, data)
}

func (w Window) Position() (int, int)      { return w.w.Position() }
func (w Window) Size() (int, int)          { return w.w.Size() }
func (w Window) SetPosition(x, y int)      { w.w.SetPosition(x, y) }
func (w Window) SetSize(width, height int) { w.w.SetSize(width, height) }
