// package policy decides how many bytes of a body stream belong to the
// request being printed.
//
// A declared Content-Length is the only reliable bound. Without one the
// printer falls back to one of the other policies here, all of which are
// heuristics: [Available] in particular treats "nothing to read right now"
// as the end of the body, and so truncates a body that arrives slowly.
package policy

import (
	"fmt"
	"io"
	"strconv"

	"github.com/frankli0324/go-rqprint/internal/avail"
)

// A Policy copies the body from src to dst and reports the bytes written.
// Running out of input is never an error, only read and write failures are.
type Policy interface {
	Copy(dst io.Writer, src io.Reader) (int64, error)
}

type contentLength int64

// ContentLength copies at most n bytes, fewer if src ends first.
func ContentLength(n int64) Policy {
	return contentLength(n)
}

func (n contentLength) Copy(dst io.Writer, src io.Reader) (int64, error) {
	written, err := io.CopyN(dst, src, int64(n))
	if err == io.EOF {
		err = nil
	}
	return written, err
}

func (n contentLength) String() string {
	return "content-length(" + strconv.FormatInt(int64(n), 10) + ")"
}

type available struct{}

// Available copies as long as src reports bytes readable without
// blocking, and stops the first time it reports none. Readers with no
// availability signal count as having nothing available.
var Available Policy = available{}

func (available) Copy(dst io.Writer, src io.Reader) (written int64, err error) {
	for {
		n, _, err := avail.Available(src)
		if err != nil {
			return written, err
		}
		if n <= 0 {
			return written, nil
		}
		c, err := io.CopyN(dst, src, int64(n))
		written += c
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

func (available) String() string { return "available" }

type untilEOF struct{}

// UntilEOF copies everything src produces. It blocks for as long as src
// does.
var UntilEOF Policy = untilEOF{}

func (untilEOF) Copy(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(dst, src)
}

func (untilEOF) String() string { return "eof" }

type terminated []byte

// Terminated copies up to and including the first occurrence of delim, or
// until src ends. src is read one byte at a time so nothing past the
// delimiter is consumed.
func Terminated(delim []byte) Policy {
	return terminated(append([]byte(nil), delim...))
}

func (t terminated) Copy(dst io.Writer, src io.Reader) (written int64, err error) {
	if len(t) == 0 {
		return 0, nil
	}
	var b [1]byte
	tail := make([]byte, 0, len(t))
	for {
		n, err := src.Read(b[:])
		if n == 1 {
			if _, err := dst.Write(b[:]); err != nil {
				return written, err
			}
			written++
			if len(tail) == len(t) {
				copy(tail, tail[1:])
				tail = tail[:len(t)-1]
			}
			tail = append(tail, b[0])
			if string(tail) == string(t) {
				return written, nil
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

func (t terminated) String() string { return "terminated(" + strconv.Quote(string(t)) + ")" }

// Parse maps a configuration name to a fallback policy:
// "available", "eof" or "line" (terminated by CRLF).
func Parse(name string) (Policy, error) {
	switch name {
	case "available":
		return Available, nil
	case "eof":
		return UntilEOF, nil
	case "line":
		return Terminated([]byte("\r\n")), nil
	}
	return nil, fmt.Errorf("unknown body policy %q", name)
}
