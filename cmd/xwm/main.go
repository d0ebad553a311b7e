// Command xwm is the process entry point: it takes no arguments,
// connects to the display named by $DISPLAY, becomes the window
// manager, and runs the event loop until the connection dies.
package main

import (
	"log/slog"
	"os"

	"github.com/go-xwm/xwm/internal/logx"
	"github.com/go-xwm/xwm/internal/wm"
	"github.com/go-xwm/xwm/internal/x11"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on a clean shutdown, 1 if the
// display couldn't be claimed at all (no $DISPLAY, connection refused,
// or another window manager already running).
func run() int {
	logx.SetDefault()

	manager, err := wm.New()
	if err != nil {
		slog.Error("could not connect to the display", "error", err)
		return 1
	}
	defer manager.Close()

	if err := manager.Init(); err != nil {
		if x11.IsBadAccess(err) {
			slog.Error("another window manager is already running", "error", err)
		} else {
			slog.Error("could not initialize window manager", "error", err)
		}
		return 1
	}

	if err := manager.Run(); err != nil {
		slog.Error("event loop exited", "error", err)
		return 1
	}
	return 0
}
