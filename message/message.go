package message

import (
	"bytes"
	"io"

	"github.com/zostay/go-email-scan/message/header"
)

// Message is a parsed header together with the unread message body.
type Message struct {
	// Header is the parsed message header.
	Header *header.Header

	// Body reads the rest of the message after the header. It is nil when the
	// input held only a header.
	Body io.Reader
}

// GetHeader returns the message header.
func (m *Message) GetHeader() *header.Header {
	return m.Header
}

// GetReader returns the body reader or an empty reader if there is no body.
func (m *Message) GetReader() io.Reader {
	if m.Body == nil {
		return bytes.NewReader(nil)
	}
	return m.Body
}

// WriteTo writes the header exactly as it was read and then copies the rest of
// the body. The body reader is consumed in the process.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := m.Header.WriteTo(w)
	if err != nil {
		return n, err
	}

	bn, err := io.Copy(w, m.GetReader())
	return n + bn, err
}

// Close closes the underlying reader of the body, if it is closable.
func (m *Message) Close() error {
	if c, isCloser := m.Body.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
