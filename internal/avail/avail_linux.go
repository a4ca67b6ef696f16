package avail

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// TIOCINQ shares its value with FIONREAD on linux
const fionread = unix.TIOCINQ

func fdAvailable(c syscall.Conn) (int, bool, error) {
	return ioctlAvailable(c, fionread)
}
