// Package reveal opens the platform file manager with a path selected.
package reveal

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrEmptyPath is returned when Reveal is called without a path.
var ErrEmptyPath = errors.New("reveal: empty path")

// Revealer opens a file manager with path selected or highlighted.
type Revealer interface {
	Reveal(path string) error
}

// Func adapts a function to Revealer.
type Func func(path string) error

func (f Func) Reveal(path string) error { return f(path) }

// containingDir returns path itself when it is a directory and its parent
// otherwise.
func containingDir(path string) string {
	if isDir(path) {
		return path
	}
	return filepath.Dir(path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
