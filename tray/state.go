package tray

import "sync"

// PlaybackState selects which icon is bound to the tray.
type PlaybackState int

const (
	NotPlaying PlaybackState = iota
	Playing
	// Paused is reserved. No menu action enters or leaves it.
	Paused
)

func (s PlaybackState) String() string {
	switch s {
	case NotPlaying:
		return "not-playing"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// State holds the tray playback state behind a mutex. The zero value is
// ready to use and starts in NotPlaying.
type State struct {
	mu  sync.Mutex
	cur PlaybackState
}

// NewState returns a State in NotPlaying.
func NewState() *State {
	return &State{cur: NotPlaying}
}

// Toggle flips NotPlaying and Playing and returns the new state. In Paused
// it does nothing and reports changed == false.
func (s *State) Toggle() (next PlaybackState, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.cur {
	case NotPlaying:
		s.cur = Playing
	case Playing:
		s.cur = NotPlaying
	default:
		return s.cur, false
	}
	return s.cur, true
}

// Current returns the current state.
func (s *State) Current() PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// compareAndSet moves from old to next only if the state is still old.
func (s *State) compareAndSet(old, next PlaybackState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur != old {
		return false
	}
	s.cur = next
	return true
}
