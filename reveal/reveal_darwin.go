//go:build darwin

package reveal

import (
	"fmt"
	"os/exec"

	"github.com/pkg/browser"
)

type finder struct{}

// New returns the Finder revealer.
func New() Revealer {
	return finder{}
}

func (finder) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if isDir(path) {
		if err := browser.OpenFile(path); err != nil {
			return fmt.Errorf("open directory: %w", err)
		}
		return nil
	}
	if err := exec.Command("open", "-R", path).Start(); err != nil {
		return fmt.Errorf("start open: %w", err)
	}
	return nil
}
