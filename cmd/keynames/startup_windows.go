//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/keynames/internal/util"
)

func init() {
	if util.LaunchedFromExplorer() && len(os.Args) < 2 {
		slog.Info("Detected GUI startup, showing the scancode table")
		os.Args = append(os.Args, "table")
		pauseBeforeExit = true
	}
}
