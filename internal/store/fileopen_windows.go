//go:build windows

package store

import "os"

// openTempFile creates path for writing. O_NOFOLLOW is not available on Windows;
// O_EXCL still refuses an existing file.
func openTempFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
}
