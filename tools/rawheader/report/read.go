package report

import (
	"errors"
	"io"
	"os"

	"github.com/zostay/go-email-scan/message"
	"github.com/zostay/go-email-scan/message/header"
)

// ReadHeader parses the header of the named file, or of stdin when the name is
// "-". The file is closed before returning. A *header.BadStartError is
// returned along with the header, which is still usable.
func ReadHeader(fn string, opts ...message.ParseOption) (*header.Header, error) {
	var r io.Reader = os.Stdin
	if fn != "-" {
		f, err := os.Open(fn)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	m, err := message.Parse(r, opts...)

	var badStart *header.BadStartError
	if err != nil && !errors.As(err, &badStart) {
		return nil, err
	}

	return m.Header, err
}
