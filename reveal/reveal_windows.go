//go:build windows

package reveal

import (
	"fmt"
	"os/exec"
)

type explorer struct{}

// New returns the Windows Explorer revealer.
func New() Revealer {
	return explorer{}
}

func (explorer) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	// The comma belongs to the switch.
	if err := exec.Command("explorer", "/select,", path).Start(); err != nil {
		return fmt.Errorf("start explorer: %w", err)
	}
	return nil
}
