package model

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/atomic"
)

// Lines is a [Request] backed by a slice of head lines.
type Lines struct {
	head    []string
	getBody func() (io.Reader, error)
}

// NewRequest builds a [Lines] request. body may be nil, a string, a []byte or
// any io.Reader. Byte backed bodies may be read any number of times, other
// readers are handed out once.
func NewRequest(head []string, body interface{}) (*Lines, error) {
	r := &Lines{head: head}
	if err := r.setBody(body); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Lines) Head() ([]string, error) {
	return r.head, nil
}

func (r *Lines) Body() (io.Reader, error) {
	return r.getBody()
}

// should only be called once at [NewRequest]
func (r *Lines) setBody(body interface{}) error {
	switch b := body.(type) {
	case nil:
		r.getBody = func() (io.Reader, error) {
			return bytes.NewReader(nil), nil
		}
	case string:
		r.getBody = func() (io.Reader, error) {
			return strings.NewReader(b), nil
		}
	case []byte:
		r.getBody = func() (io.Reader, error) {
			return bytes.NewReader(b), nil
		}
	case *bytes.Buffer:
		buf := b.Bytes()
		r.getBody = func() (io.Reader, error) {
			return bytes.NewReader(buf), nil
		}
	case *bytes.Reader:
		snapshot := *b
		r.getBody = func() (io.Reader, error) {
			r := snapshot
			return &r, nil
		}
	case *strings.Reader:
		snapshot := *b
		r.getBody = func() (io.Reader, error) {
			r := snapshot
			return &r, nil
		}
	case io.Reader:
		once := atomic.NewBool(false)
		r.getBody = func() (io.Reader, error) {
			if once.CompareAndSwap(false, true) {
				return b, nil
			}
			return nil, ErrBodyConsumed
		}
	default:
		return fmt.Errorf("unsupported body type: %T", body)
	}
	return nil
}
