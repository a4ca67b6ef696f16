package model

import (
	"errors"
	"io"
)

// Request is everything a printer needs from an already parsed request:
// the head lines, first of which is the request line, and the body.
type Request interface {
	Head() ([]string, error)
	Body() (io.Reader, error)
}

// ErrBodyConsumed is returned by [Lines.Body] when a one-shot body stream
// has already been handed out.
var ErrBodyConsumed = errors.New("rqprint: request body already consumed")
