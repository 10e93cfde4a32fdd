// Package app provides the core application service for Wails bindings.
package app

// Event names for frontend communication. Tray, heartbeat and instance
// events are declared in the types package next to their payloads.
const (
	EventLanguageChanged = "tray-language"
	EventRevealFailed    = "reveal-failed"
)
