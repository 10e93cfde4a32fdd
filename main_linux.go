//go:build linux

package main

import "os"

// prelude works around blank webviews on some HiDPI setups.
func prelude() {
	if os.Getenv("WEBKIT_DISABLE_DMABUF_RENDERER") == "" {
		_ = os.Setenv("WEBKIT_DISABLE_DMABUF_RENDERER", "1")
	}
}
