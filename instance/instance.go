// Package instance keeps a single process of the application running and
// forwards later launches to it.
//
// The OS-level lock and the IPC channel are provided by Wails. A second
// launch sends its arguments and working directory to the holder and exits
// with status 0; the holder turns them into a SingleInstancePayload.
package instance

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"

	"go.aimuz.me/deskshell/internal/types"
)

// Guard builds the single-instance options and receives forwarded launches.
type Guard struct {
	id      string
	key     [32]byte
	deliver func(types.SingleInstancePayload)
}

// New creates a Guard. id identifies the application to the OS lock; key
// encrypts forwarded payloads; deliver is called once per forwarded launch.
func New(id string, key [32]byte, deliver func(types.SingleInstancePayload)) *Guard {
	return &Guard{id: id, key: key, deliver: deliver}
}

// Options returns the Wails single-instance configuration.
func (g *Guard) Options() *application.SingleInstanceOptions {
	return &application.SingleInstanceOptions{
		UniqueID:               g.id,
		EncryptionKey:          g.key,
		ExitCode:               0,
		OnSecondInstanceLaunch: g.Receive,
	}
}

// Receive converts a forwarded launch into a payload and delivers it.
func (g *Guard) Receive(data application.SecondInstanceData) {
	payload := types.SingleInstancePayload{
		Args: data.Args,
		Cwd:  data.WorkingDir,
	}
	if payload.Args == nil {
		payload.Args = []string{}
	}

	slog.Info("second instance launch", "args", payload.Args, "cwd", payload.Cwd)
	if g.deliver != nil {
		g.deliver(payload)
	}
}

// Key derives the payload encryption key from a stored secret. A secret of
// 64 hex digits is used as is; anything else is hashed.
func Key(secret string) [32]byte {
	var key [32]byte
	if b, err := hex.DecodeString(secret); err == nil && len(b) == len(key) {
		copy(key[:], b)
		return key
	}
	return sha256.Sum256([]byte(secret))
}
