//go:build !windows

package util

// LaunchedFromExplorer reports whether the process was started by
// double-clicking it in a file manager. Only Windows can tell.
func LaunchedFromExplorer() bool {
	return false
}
