//go:build darwin || linux
// +build darwin linux

package avail

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func ioctlAvailable(c syscall.Conn, req uint) (int, bool, error) {
	rc, err := c.SyscallConn()
	if err != nil {
		return 0, false, err
	}
	var n int
	var ioctlErr error
	// errors would only happen before the control action, e.g. on a closed fd
	if err := rc.Control(func(fd uintptr) {
		n, ioctlErr = unix.IoctlGetInt(int(fd), req)
	}); err != nil {
		return 0, false, err
	}
	if ioctlErr != nil {
		// ENOTTY and friends, the descriptor just can't tell
		return 0, false, nil
	}
	return n, true, nil
}
