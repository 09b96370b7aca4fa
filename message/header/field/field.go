package field

import (
	"bytes"

	"github.com/zostay/go-email-scan/message/stream"
)

// Field is a single header field: the raw bytes as read plus the body value
// extracted from them.
type Field struct {
	*Raw

	name  string
	value Value
}

// New builds a field from a name and body by writing out "name: body\n" and
// scanning it back in. The body goes through the same rules as a parsed one,
// so surrounding whitespace is dropped, and a line break not followed by a
// space or tab ends the body early.
func New(name, body string) *Field {
	s := stream.New([]byte(name + ": " + body + "\n"))
	return ParseField(s, DefaultTextDecoder)
}

// ParseField reads one complete header field starting at the cursor of s: the
// name up to the first colon, then the body as read by ParseRawWith.
//
// If the line at the cursor has no colon, it is not a field. ParseField then
// skips that line (and any continuation lines) as SkipRaw would and returns
// nil.
func ParseField(s *stream.Stream, dec TextDecoder) *Field {
	return scanField(s, func(s *stream.Stream) Value {
		return ParseRawWith(s, dec)
	})
}

// SkipField is like ParseField, but the body is passed over with SkipRaw. The
// returned field keeps its raw bytes and name, but its value is Empty.
func SkipField(s *stream.Stream) *Field {
	return scanField(s, func(s *stream.Stream) Value {
		SkipRaw(s)
		return Value{}
	})
}

// PeekName returns the name of the field at the cursor of s without moving
// it. It returns false if the line at the cursor has no colon.
func PeekName(s *stream.Stream) (string, bool) {
	colon := findColon(s)
	if colon < 0 {
		return "", false
	}
	return string(bytes.TrimSpace(s.Remaining()[:colon])), true
}

// findColon returns the offset from the cursor of the first colon on the
// current line, or -1.
func findColon(s *stream.Stream) int {
	for i := 0; ; i++ {
		c, ok := s.Peek(i)
		if !ok || c == '\n' {
			return -1
		}
		if c == ':' {
			return i
		}
	}
}

func scanField(s *stream.Stream, body func(*stream.Stream) Value) *Field {
	lineStart := s.Pos()

	colon := findColon(s)
	if colon < 0 {
		SkipRaw(s)
		return nil
	}

	s.Advance(colon + 1)
	v := body(s)

	raw := s.Data()[lineStart:s.Pos()]
	return &Field{
		Raw:   &Raw{raw, colon},
		name:  string(bytes.TrimSpace(raw[:colon])),
		value: v,
	}
}

// Name returns the field name with surrounding whitespace removed.
func (f *Field) Name() string {
	return f.name
}

// Value returns the extracted body of the field.
func (f *Field) Value() Value {
	return f.value
}

// Body returns the extracted body text, or "" when the body is Empty.
func (f *Field) Body() string {
	return f.value.String()
}
