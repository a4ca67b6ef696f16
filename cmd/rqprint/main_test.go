package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankli0324/go-rqprint"
)

const raw = "POST /upload HTTP/1.1\r\nHost: x\r\nContent-Length: 3\r\n\r\nABCDEF"

func defaults() options {
	return options{in: "-", part: "all", encoding: "utf-8", fallback: "available"}
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		part, want string
	}{
		"All":  {"all", "POST /upload HTTP/1.1\r\nHost: x\r\nContent-Length: 3\r\n\r\nABC"},
		"Head": {"head", "POST /upload HTTP/1.1\r\nHost: x\r\nContent-Length: 3\r\n\r\n"},
		"Body": {"body", "ABC"},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			o := defaults()
			o.part = c.part
			var out bytes.Buffer
			require.NoError(t, run(zerolog.Nop(), o, strings.NewReader(raw), &out))
			assert.Equal(t, c.want, out.String())
		})
	}
}

func TestRunFallback(t *testing.T) {
	o := defaults()
	o.fallback = "line"
	var out bytes.Buffer
	in := "POST / HTTP/1.1\r\n\r\nfirst\r\nsecond\r\n"
	require.NoError(t, run(zerolog.New(&bytes.Buffer{}).Level(zerolog.DebugLevel), o, strings.NewReader(in), &out))
	assert.Equal(t, "POST / HTTP/1.1\r\n\r\nfirst\r\n", out.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.txt")
	require.NoError(t, os.WriteFile(path, []byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n"), 0o644))
	o := defaults()
	o.in = path
	var out bytes.Buffer
	require.NoError(t, run(zerolog.Nop(), o, nil, &out))
	assert.Equal(t, "GET / HTTP/1.1\r\nHost: x\r\n\r\n", out.String())
}

func TestRunErrors(t *testing.T) {
	for name, mutate := range map[string]func(*options){
		"Part":     func(o *options) { o.part = "tail" },
		"Encoding": func(o *options) { o.encoding = "no-such-encoding" },
		"Fallback": func(o *options) { o.fallback = "chunked" },
		"Missing":  func(o *options) { o.in = filepath.Join(t.TempDir(), "missing") },
	} {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			o := defaults()
			mutate(&o)
			assert.Error(t, run(zerolog.Nop(), o, strings.NewReader(raw), &bytes.Buffer{}))
		})
	}

	o := defaults()
	err := run(zerolog.Nop(), o, strings.NewReader("POST / HTTP/1.1\r\nContent-Length: x\r\n\r\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, rqprint.ErrMalformedLength)
}
