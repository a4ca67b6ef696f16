package avail

import "syscall"

// FIONREAD from <sys/filio.h>, _IOR('f', 127, int)
const fionread = 0x4004667f

func fdAvailable(c syscall.Conn) (int, bool, error) {
	return ioctlAvailable(c, fionread)
}
