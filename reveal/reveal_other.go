//go:build !windows && !darwin && !linux && !freebsd && !openbsd && !netbsd

package reveal

import (
	"fmt"

	"github.com/pkg/browser"
)

type opener struct{}

// New returns a revealer that opens the containing directory.
func New() Revealer {
	return opener{}
}

func (opener) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := browser.OpenFile(containingDir(path)); err != nil {
		return fmt.Errorf("open directory: %w", err)
	}
	return nil
}
