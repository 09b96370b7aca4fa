package header

import "bytes"

// Break represents the line break used by a header.
type Break string

// The line breaks the header scanner recognizes. Lines always end in a line
// feed, which may be preceded by a carriage return.
const (
	Meh  Break = ""         // no line break has been seen yet
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// detectBreak reports the break ending the first line of p. It returns Meh if
// p holds no line feed.
func detectBreak(p []byte) Break {
	ix := bytes.IndexByte(p, '\n')
	switch {
	case ix < 0:
		return Meh
	case ix > 0 && p[ix-1] == '\r':
		return CRLF
	default:
		return LF
	}
}
