//go:build !windows

package store

import (
	"os"
	"syscall"
)

// openTempFile creates path for writing. O_EXCL makes creation fail if anything,
// including a symlink, already exists there; O_NOFOLLOW and O_CLOEXEC keep the
// descriptor off symlinks and out of child processes.
func openTempFile(path string) (*os.File, error) {
	fd, err := syscall.Open(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY|syscall.O_NOFOLLOW|syscall.O_CLOEXEC, 0600)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(fd), path), nil
}
