// package avail answers "how many bytes can be read from this stream right
// now without blocking", for the readers that are able to tell.
//
// Go readers carry no such signal in general, so it is recovered from the
// concrete types that expose one: buffered readers, in-memory readers and
// file descriptors that support FIONREAD.
//
// A *bufio.Reader only reports what it has already buffered, it has no way
// to ask the reader underneath. A freshly wrapped source therefore counts
// as having nothing available until its first read.
package avail

import (
	"io"
	"syscall"
)

// Availabler is implemented by readers that report their own availability.
type Availabler interface {
	Available() (int, error)
}

// Available reports the number of bytes r can deliver without blocking.
// ok is false when r offers no way of telling.
func Available(r io.Reader) (n int, ok bool, err error) {
	switch v := r.(type) {
	case Availabler:
		n, err = v.Available()
		return n, true, err
	case *io.LimitedReader:
		if v.N <= 0 {
			return 0, true, nil
		}
		n, ok, err = Available(v.R)
		if int64(n) > v.N {
			n = int(v.N)
		}
		return n, ok, err
	case interface{ Buffered() int }: // *bufio.Reader
		return v.Buffered(), true, nil
	case interface{ Len() int }: // *bytes.Reader, *strings.Reader, *bytes.Buffer
		return v.Len(), true, nil
	case syscall.Conn:
		// *tls.Conn is not a syscall.Conn, bytes pending on its socket are
		// ciphertext and must not be counted.
		return fdAvailable(v)
	}
	return 0, false, nil
}
