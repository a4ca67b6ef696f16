package avail

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reporter struct {
	io.Reader
	n   int
	err error
}

func (r reporter) Available() (int, error) { return r.n, r.err }

func TestAvailable(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("buffered"))
	_, err := br.Peek(3)
	require.NoError(t, err)

	errBoom := errors.New("boom")
	cases := map[string]struct {
		r   io.Reader
		n   int
		ok  bool
		err error
	}{
		"Availabler":    {r: reporter{n: 7}, n: 7, ok: true},
		"AvailablerErr": {r: reporter{err: errBoom}, ok: true, err: errBoom},
		"BytesReader":   {r: bytes.NewReader([]byte("abcd")), n: 4, ok: true},
		"StringsReader": {r: strings.NewReader("ab"), n: 2, ok: true},
		"BytesBuffer":   {r: bytes.NewBufferString("abc"), n: 3, ok: true},
		"Bufio":         {r: br, n: len("buffered"), ok: true},
		"Limited":       {r: io.LimitReader(strings.NewReader("abcdef"), 4), n: 4, ok: true},
		"LimitedShort":  {r: io.LimitReader(strings.NewReader("ab"), 4), n: 2, ok: true},
		"LimitedDone":   {r: io.LimitReader(strings.NewReader("ab"), 0), n: 0, ok: true},
		"LimitedOpaque": {r: io.LimitReader(iotest.OneByteReader(strings.NewReader("ab")), 4)},
		"NoSignal":      {r: iotest.OneByteReader(strings.NewReader("abc"))},
		"MultiReader":   {r: io.MultiReader(strings.NewReader("x"))},
		"BufioUnfilled": {r: bufio.NewReader(strings.NewReader("not yet")), n: 0, ok: true},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			n, ok, err := Available(c.r)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.n, n)
			assert.Equal(t, c.err, err)
		})
	}
}
