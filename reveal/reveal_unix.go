//go:build linux || freebsd || openbsd || netbsd

package reveal

import (
	"context"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/browser"
)

// New returns the freedesktop revealer. Without a session bus it only
// opens containing directories.
func New() Revealer {
	fm := &fileManager{open: browser.OpenFile, timeout: busTimeout}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		slog.Warn("connect session bus", "error", err)
		return fm
	}

	obj := conn.Object(fileManagerName, dbus.ObjectPath(fileManagerPath))
	fm.showItems = func(ctx context.Context, uris []string) error {
		return obj.CallWithContext(ctx, fileManagerName+".ShowItems", 0, uris, "").Err
	}
	return fm
}
