package header

import (
	"strings"

	"github.com/zostay/go-email-scan/message/header/field"
	"github.com/zostay/go-email-scan/message/stream"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header field. This text is preserved in the error object. It
// is recoverable: the header parsed after the junk is returned with it.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// ParseOption modifies how Parse and ParseStream read a header.
type ParseOption func(pr *parser)

type parser struct {
	dec  field.TextDecoder
	skip map[string]struct{}
}

// WithSkip is a ParseOption that names fields whose bodies are not extracted.
// Matching ignores case. The skipped fields are still listed in the header with
// their raw bytes, but their values are always Empty.
func WithSkip(names ...string) ParseOption {
	return func(pr *parser) {
		if pr.skip == nil {
			pr.skip = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			pr.skip[strings.ToLower(n)] = struct{}{}
		}
	}
}

// WithTextDecoder is a ParseOption that sets the decoder used to turn field
// bodies into text. The default is field.DefaultTextDecoder.
func WithTextDecoder(dec field.TextDecoder) ParseOption {
	return func(pr *parser) { pr.dec = dec }
}

// WithCharset is a ParseOption for headers whose raw 8-bit text is in a
// charset other than UTF-8. It is shorthand for
// WithTextDecoder(field.CharsetText(charset)).
func WithCharset(charset string) ParseOption {
	return WithTextDecoder(field.CharsetText(charset))
}

// Parse reads the header at the start of m. See ParseStream.
func Parse(m []byte, opts ...ParseOption) (*Header, error) {
	return ParseStream(stream.New(m), opts...)
}

// ParseStream reads a header starting at the cursor of s and leaves the cursor
// just past the blank line that ends it, which is the first byte of the body.
// If no blank line is found, the whole remaining input is treated as header.
//
// Each field is split at the first colon. The body is read with
// field.ParseRawWith, or passed over with field.SkipRaw when the field is named
// by WithSkip.
//
// This is liberal in what it accepts. Lines at the start of the header that
// begin with a space or that hold no colon are skipped and returned inside a
// *BadStartError along with the header. Colon-less lines after the first field
// are dropped without error.
func ParseStream(s *stream.Stream, opts ...ParseOption) (*Header, error) {
	pr := &parser{dec: field.DefaultTextDecoder}
	for _, opt := range opts {
		opt(pr)
	}

	start := s.Pos()
	h := &Header{}

	var badStart *BadStartError
	for !s.AtEnd() && !endOfHeader(s) {
		lineStart := s.Pos()

		var f *field.Field
		if c, _ := s.Peek(0); c == ' ' || c == '\t' {
			field.SkipRaw(s)
		} else {
			f = pr.parseField(s)
		}

		if f != nil {
			if len(h.fields) == 0 {
				h.lbr = detectBreak(f.Bytes())
			}
			h.fields = append(h.fields, f)
			continue
		}

		if len(h.fields) == 0 {
			junk := s.Data()[lineStart:s.Pos()]
			if badStart == nil {
				badStart = &BadStartError{}
			}
			badStart.BadStart = append(badStart.BadStart, junk...)
		}
	}

	h.raw = s.Data()[start:s.Pos()]

	if badStart != nil {
		return h, badStart
	}
	return h, nil
}

// parseField reads the field at the cursor, extracting or skipping the body
// depending on the name.
func (pr *parser) parseField(s *stream.Stream) *field.Field {
	name, ok := field.PeekName(s)
	if !ok {
		field.SkipRaw(s)
		return nil
	}

	if _, skip := pr.skip[strings.ToLower(name)]; skip {
		return field.SkipField(s)
	}

	return field.ParseField(s, pr.dec)
}

// endOfHeader consumes the blank line ending the header, if the cursor is at
// one.
func endOfHeader(s *stream.Stream) bool {
	c, _ := s.Peek(0)
	switch c {
	case '\n':
		s.Advance(1)
		return true
	case '\r':
		if n, _ := s.Peek(1); n == '\n' {
			s.Advance(2)
			return true
		}
	}
	return false
}
