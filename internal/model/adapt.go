package model

import (
	"bufio"
	"errors"
	"io"
	"net/http"
	"net/textproto"
	"sort"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/frankli0324/go-rqprint/internal/avail"
)

// FromHTTP lays out a *[net/http.Request] the way it would appear on the
// wire, e.g.:
//
//	POST /upload?x=1 HTTP/1.1
//	Host: www.example.com
//	Content-Length: 5
//	X-Xx-Yy: cccccc
//
// headers other than Host and Content-Length follow in sorted key order.
// r.Body is handed out once.
func FromHTTP(r *http.Request) (*Lines, error) {
	uri := r.RequestURI
	if uri == "" {
		if r.URL == nil {
			return nil, errors.New("rqprint: request has neither RequestURI nor URL")
		}
		uri = r.URL.RequestURI()
	}
	method, proto := r.Method, r.Proto
	if method == "" {
		method = http.MethodGet
	}
	if proto == "" {
		proto = "HTTP/1.1"
	}

	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	var contentLength string
	if r.ContentLength > 0 {
		contentLength = strconv.FormatInt(r.ContentLength, 10)
	}

	keys := make([]string, 0, len(r.Header))
	// user defined headers has higher priority
	for k, v := range r.Header {
		switch {
		case strings.EqualFold(k, "Host"):
			if len(v) != 0 {
				host = v[0]
			}
		case strings.EqualFold(k, "Content-Length"):
			if len(v) != 0 && contentLength == "" {
				contentLength = v[0]
			}
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	head := []string{method + " " + uri + " " + proto}
	if host != "" {
		head = append(head, "Host: "+host)
	}
	if contentLength != "" {
		head = append(head, "Content-Length: "+contentLength)
	}
	for _, k := range keys {
		for _, v := range r.Header[k] {
			head = append(head, k+": "+v)
		}
	}

	var body interface{}
	if r.Body != nil && r.Body != http.NoBody {
		body = io.Reader(r.Body)
	}
	return NewRequest(head, body)
}

// FromFastHTTP splits the serialized header of a *[fasthttp.Request] into
// lines. The body is copied, so the result stays valid after the fasthttp
// request is released.
func FromFastHTTP(r *fasthttp.Request) (*Lines, error) {
	raw := strings.TrimRight(string(r.Header.Header()), "\r\n")
	if raw == "" {
		return nil, errors.New("rqprint: empty fasthttp request header")
	}
	body := append([]byte(nil), r.Body()...)
	return NewRequest(strings.Split(raw, "\r\n"), body)
}

type rawBody struct {
	*bufio.Reader
	src io.Reader
}

// Available counts what bufio has already pulled in plus whatever the
// source can still deliver without blocking.
func (b rawBody) Available() (int, error) {
	n, ok, err := avail.Available(b.src)
	if err != nil || !ok {
		return b.Buffered(), err
	}
	return b.Buffered() + n, nil
}

// ReadRaw reads head lines from r up to the blank line. Whatever follows
// is left unread and becomes the body of the returned request.
func ReadRaw(r io.Reader) (*Lines, error) {
	br := bufio.NewReader(r)
	tp := textproto.NewReader(br)

	var head []string
	for {
		line, err := tp.ReadLine()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if line == "" {
			if len(head) == 0 {
				continue // leading empty lines before the request line
			}
			break
		}
		head = append(head, line)
	}
	return NewRequest(head, rawBody{br, r})
}
