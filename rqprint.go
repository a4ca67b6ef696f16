// package rqprint prints already parsed HTTP requests in their wire form:
//
//	request-line CRLF *( header-line CRLF ) CRLF body
//
// the body is bounded by its Content-Length header when there is one, and by
// a fallback [Policy] otherwise.
package rqprint

import (
	"github.com/frankli0324/go-rqprint/internal/header"
	"github.com/frankli0324/go-rqprint/internal/model"
	"github.com/frankli0324/go-rqprint/internal/policy"
	"github.com/frankli0324/go-rqprint/internal/printer"
)

type Request = model.Request
type Lines = model.Lines
type Printer = printer.Printer
type Option = printer.Option
type Policy = policy.Policy

var (
	New                = printer.New
	WithEncoding       = printer.WithEncoding
	WithFallback       = printer.WithFallback
	NewRequest         = model.NewRequest
	FromHTTP           = model.FromHTTP
	FromFastHTTP       = model.FromFastHTTP
	ReadRaw            = model.ReadRaw
	HeaderValues       = header.Values
	ContentLength      = policy.ContentLength
	Terminated         = policy.Terminated
	ParsePolicy        = policy.Parse
	Available          = policy.Available
	UntilEOF           = policy.UntilEOF
	ErrBodyConsumed    = model.ErrBodyConsumed
	ErrMalformedLength = header.ErrMalformedLength
)
