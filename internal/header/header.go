// package header looks up header values among the raw head lines of a
// request. The lines are never modified or validated, a line that doesn't
// look like a header field is simply not matched.
package header

import (
	"errors"
	"fmt"
	"net/textproto"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var ErrMalformedLength = errors.New("rqprint: malformed Content-Length")

// Values returns the values of every line whose field name matches name,
// case-insensitively, in the order they appear. The first line is the
// request line and is never matched.
func Values(lines []string, name string) []string {
	var values []string
	for i, line := range lines {
		if i == 0 {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok || !httpguts.ValidHeaderFieldName(k) {
			continue
		}
		if strings.EqualFold(k, name) {
			values = append(values, textproto.TrimString(v))
		}
	}
	return values
}

// ContentLength returns the declared body length. ok is false when no
// Content-Length line is present. When there are several, the first one
// wins and the rest are not looked at.
func ContentLength(lines []string) (n int64, ok bool, err error) {
	contentLens := Values(lines, "Content-Length")
	if len(contentLens) == 0 {
		return 0, false, nil
	}
	first := contentLens[0]
	u, err := strconv.ParseUint(first, 10, 63)
	if err != nil {
		return 0, true, fmt.Errorf("%w %q: %w", ErrMalformedLength, first, err)
	}
	return int64(u), true, nil
}
