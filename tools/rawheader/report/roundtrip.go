package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/zostay/go-email-scan/message"
	"github.com/zostay/go-email-scan/message/header"
)

// ErrMismatch is returned by RoundTrip when the message written back out
// differs from the input.
var ErrMismatch = errors.New("round trip output does not match input")

// RoundTrip parses src and writes it back out, returning ErrMismatch wrapped
// with the offset of the first differing byte if the two are not identical.
// A header with junk before the first field is not an error here.
func RoundTrip(src []byte, opts ...message.ParseOption) error {
	m, err := message.Parse(bytes.NewReader(src), opts...)

	var badStart *header.BadStartError
	if err != nil && !errors.As(err, &badStart) {
		return err
	}

	buf := &bytes.Buffer{}
	if _, err := m.WriteTo(buf); err != nil {
		return err
	}

	out := buf.Bytes()
	if bytes.Equal(src, out) {
		return nil
	}

	i := 0
	for i < len(src) && i < len(out) && src[i] == out[i] {
		i++
	}
	return fmt.Errorf("%w: first difference at byte %d", ErrMismatch, i)
}
