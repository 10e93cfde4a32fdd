package reveal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const (
	fileManagerName = "org.freedesktop.FileManager1"
	fileManagerPath = "/org/freedesktop/FileManager1"
	busTimeout      = 5 * time.Second
)

// fileManager reveals paths through the freedesktop FileManager1 interface
// and falls back to opening the containing directory.
type fileManager struct {
	// showItems is nil when no session bus is available.
	showItems func(ctx context.Context, uris []string) error
	open      func(dir string) error
	timeout   time.Duration
}

func (f *fileManager) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	// ShowItems mangles URIs containing a comma (dbus/dbus#76).
	if f.showItems == nil || strings.Contains(path, ",") {
		return f.openDir(path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	err := f.showItems(ctx, []string{fileURI(path)})
	if err == nil {
		return nil
	}
	slog.Debug("show items over dbus", "path", path, "error", err)

	if openErr := f.openDir(path); openErr != nil {
		return errors.Join(fmt.Errorf("show items: %w", err), openErr)
	}
	return nil
}

func (f *fileManager) openDir(path string) error {
	if err := f.open(containingDir(path)); err != nil {
		return fmt.Errorf("open directory: %w", err)
	}
	return nil
}

func fileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
