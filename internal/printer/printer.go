package printer

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/frankli0324/go-rqprint/internal/header"
	"github.com/frankli0324/go-rqprint/internal/model"
	"github.com/frankli0324/go-rqprint/internal/policy"
)

var ErrMalformedLength = header.ErrMalformedLength

// Printer decorates a [model.Request] with the ability to print itself in
// wire form. It holds no state of its own besides configuration, but the
// body of the wrapped request is consumed by every body print.
type Printer struct {
	model.Request

	enc      encoding.Encoding
	fallback policy.Policy
}

type Option func(*Printer)

// WithEncoding sets the encoding head lines are written in and string
// results are decoded from. The default is UTF-8, under which nothing is
// transcoded at all.
func WithEncoding(enc encoding.Encoding) Option {
	return func(p *Printer) {
		p.enc = enc
	}
}

// WithFallback sets the policy used for bodies without a Content-Length.
// The default is [policy.Available].
func WithFallback(fallback policy.Policy) Option {
	return func(p *Printer) {
		p.fallback = fallback
	}
}

func New(req model.Request, opts ...Option) *Printer {
	p := &Printer{
		Request:  req,
		enc:      unicode.UTF8,
		fallback: policy.Available,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func (p *Printer) utf8() bool {
	return p.enc == nil || p.enc == unicode.UTF8
}

func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Print writes the head followed by the body, then flushes w.
func (p *Printer) Print(w io.Writer) error {
	if err := p.PrintHead(w); err != nil {
		return err
	}
	if err := p.PrintBody(w); err != nil {
		return err
	}
	return flush(w)
}

// PrintHead writes every head line and the blank line ending the head,
// then flushes w, e.g.:
//
//	GET / HTTP/1.1\r\n
//	Host: www.google.com\r\n
//	X-Xx-Yy: cccccc\r\n
//	\r\n
func (p *Printer) PrintHead(w io.Writer) error {
	head, err := p.Head()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w) // default bufsize is 4096
	// UTF-8 lines are Go strings already, written byte for byte so that
	// obs-text in header values survives
	var ew io.WriteCloser = nopCloser{bw}
	if !p.utf8() {
		ew = transform.NewWriter(bw, encoding.ReplaceUnsupported(p.enc.NewEncoder()))
	}

	for _, line := range head {
		if _, err := io.WriteString(ew, line); err != nil {
			return err
		}
		if _, err := io.WriteString(ew, "\r\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(ew, "\r\n"); err != nil {
		return err
	}
	if err := ew.Close(); err != nil { // doesn't close bw
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return flush(w)
}

// PrintBody copies the body to w as bounded by [Printer.BodyPolicy]. w is
// not flushed.
func (p *Printer) PrintBody(w io.Writer) error {
	pol, err := p.BodyPolicy()
	if err != nil {
		return err
	}
	body, err := p.Body()
	if err != nil {
		return err
	}
	_, err = pol.Copy(w, body)
	return err
}

// BodyPolicy returns the policy PrintBody would use: the declared
// Content-Length if there is one, the fallback otherwise.
func (p *Printer) BodyPolicy() (policy.Policy, error) {
	head, err := p.Head()
	if err != nil {
		return nil, err
	}
	n, ok, err := header.ContentLength(head)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.fallback, nil
	}
	return policy.ContentLength(n), nil
}

func (p *Printer) PrintString() (string, error) {
	return p.render(p.Print)
}

func (p *Printer) PrintHeadString() (string, error) {
	return p.render(p.PrintHead)
}

func (p *Printer) PrintBodyString() (string, error) {
	return p.render(p.PrintBody)
}

func (p *Printer) render(print func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := print(&buf); err != nil {
		return "", err
	}
	if p.utf8() {
		return buf.String(), nil
	}
	b, err := p.enc.NewDecoder().Bytes(buf.Bytes())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
