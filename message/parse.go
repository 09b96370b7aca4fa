package message

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/zostay/go-email-scan/message/header"
)

// Constants related to Parse() options.
const (
	// DefaultChunkSize the default size of chunks to read from the input while
	// splitting the message into header and body. Defaults to 16K, though this
	// could change at any time.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is the default maximum byte length to scan before
	// giving up on finding the end of the header.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize
)

// ErrLargeHeader is returned by Parse when the header is longer than the
// configured WithMaxHeaderLength option (or the default,
// DefaultMaxHeaderLength).
var ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

type parser struct {
	maxHeaderLen int
	chunkSize    int
	headerOpts   []header.ParseOption
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength is a ParseOption that sets the maximum size the buffer is
// allowed to reach before parsing exits with an ErrLargeHeader error. During
// parsing, the io.Reader will be read from a chunk at a time until the end of
// the header is found. This setting prevents bad input from resulting in an out
// of memory error. Setting this to a value less than or equal to 0 will result
// in no limit.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithChunkSize is a ParseOption that controls how many bytes to read at a time
// while searching for the end of the header.
func WithChunkSize(chunkSize int) ParseOption {
	return func(pr *parser) {
		if chunkSize > 0 {
			pr.chunkSize = chunkSize
		}
	}
}

// WithHeaderOptions is a ParseOption that passes options through to
// header.Parse, such as header.WithSkip or header.WithCharset.
func WithHeaderOptions(opts ...header.ParseOption) ParseOption {
	return func(pr *parser) { pr.headerOpts = append(pr.headerOpts, opts...) }
}

// searchForSplit returns the position just past the blank line that ends the
// header in buf, or -1 if there is none yet. A header line always ends in a
// line feed, so the blank line is either "\n" or "\r\n" right after one.
func searchForSplit(buf []byte) int {
	for off := 0; off < len(buf); {
		ix := bytes.IndexByte(buf[off:], '\n')
		if ix < 0 {
			return -1
		}
		ix += off

		rest := buf[ix+1:]
		switch {
		case len(rest) > 0 && rest[0] == '\n':
			return ix + 2
		case len(rest) > 1 && rest[0] == '\r' && rest[1] == '\n':
			return ix + 3
		}

		off = ix + 1
	}
	return -1
}

// splitHeadFromBody reads r until the end of the header has been seen and
// returns the header bytes along with a reader for the body. If the input ends
// first, all of it is header and the body is nil.
func (pr *parser) splitHeadFromBody(r io.Reader) ([]byte, io.Reader, error) {
	p := make([]byte, pr.chunkSize)
	buf := &bytes.Buffer{}

	searched := 0
	for {
		n, err := r.Read(p)

		isEOF := false
		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return nil, nil, err
		}

		buf.Write(p[:n])

		// a header with no fields at all starts with the blank line
		data := buf.Bytes()
		if pos := leadingBlankLine(data); pos > 0 {
			return data[:pos], &remainder{data[pos:], r}, nil
		}

		if pos := searchForSplit(data[searched:]); pos >= 0 {
			pos += searched

			// body bytes read in the same chunk do not count
			if pr.tooLarge(pos) {
				return nil, nil, ErrLargeHeader
			}
			return data[:pos], &remainder{data[pos:], r}, nil
		}

		// no split yet, so everything read so far is header
		if pr.tooLarge(len(data)) {
			return nil, nil, ErrLargeHeader
		}

		if isEOF {
			break
		}

		// the last 2 bytes might be the start of the split
		searched = buf.Len() - 2
		if searched < 0 {
			searched = 0
		}
	}

	return buf.Bytes(), nil, nil
}

// tooLarge returns true if a header of n bytes exceeds the configured maximum.
func (pr *parser) tooLarge(n int) bool {
	return pr.maxHeaderLen > 0 && n > pr.maxHeaderLen
}

// leadingBlankLine reports the length of a blank line at the very start of
// data, which means the header is empty.
func leadingBlankLine(data []byte) int {
	switch {
	case len(data) > 0 && data[0] == '\n':
		return 1
	case len(data) > 1 && data[0] == '\r' && data[1] == '\n':
		return 2
	}
	return 0
}

// Parse consumes input from the given reader until the end of the message
// header and returns a Message.
//
// The reader is read in chunks, as set by WithChunkSize() (or
// DefaultChunkSize), until a blank line is found. If the header is longer than
// WithMaxHeaderLength() bytes (or DefaultMaxHeaderLength), Parse fails with
// ErrLargeHeader. Body bytes read along with the header are not counted. If
// the input ends first, the whole input is
// treated as header and the message has no body.
//
// The header is then parsed with header.Parse. A *header.BadStartError from
// that step is returned along with the message, which is still usable.
//
// The body is not read beyond what was needed to find the header. Reading
// Body consumes the rest of r.
func Parse(r io.Reader, opts ...ParseOption) (*Message, error) {
	pr := &parser{
		maxHeaderLen: DefaultMaxHeaderLength,
		chunkSize:    DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(pr)
	}

	hdr, body, err := pr.splitHeadFromBody(r)
	if err != nil {
		return nil, err
	}

	head, err := header.Parse(hdr, pr.headerOpts...)

	var badStartErr *header.BadStartError
	if err != nil && !errors.As(err, &badStartErr) {
		return nil, err
	}

	return &Message{Header: head, Body: body}, err
}
