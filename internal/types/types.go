// Package types provides shared type definitions for the application.
package types

// SingleInstancePayload carries the arguments and working directory of a
// launch that was redirected to the running instance.
type SingleInstancePayload struct {
	Args []string `json:"args"`
	Cwd  string   `json:"cwd"`
}

// TrayPayload is emitted to the UI on tray interactions. Message holds the
// activated menu item identifier, or "left-click" for an icon click.
type TrayPayload struct {
	Message string `json:"message"`
}

// HeartbeatMessage is emitted on every heartbeat tick.
type HeartbeatMessage struct {
	Message string `json:"message"`
}

// Geometry is a window position and size in screen coordinates.
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether the geometry has a usable size.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Event names for frontend communication.
const (
	EventNewInstance = "newInstance"
	EventSystemTray  = "systemTray"
	EventTrayClick   = "system-tray"
	EventHeartbeat   = "longRunningThread"
)

// MainWindowName is the well-known name of the main webview window.
const MainWindowName = "main"
