// Package stream provides the byte cursor that the header scanners share. A
// Stream wraps an in-memory message buffer and remembers how far into it the
// parsers have read. Scanners only ever move the cursor forward. Rewinding is
// left to the caller, between independent scans.
//
// A Stream is not safe for concurrent use. Each scan takes the stream for the
// duration of the call.
package stream

// Stream is a read position into an immutable byte buffer.
type Stream struct {
	data []byte
	pos  int
}

// New returns a Stream positioned at the start of data. The buffer is not
// copied and must not be modified while the Stream is in use.
func New(data []byte) *Stream {
	return &Stream{data: data}
}

// Data returns the complete underlying buffer.
func (s *Stream) Data() []byte {
	return s.data
}

// Pos returns the number of bytes consumed so far.
func (s *Stream) Pos() int {
	return s.pos
}

// Len returns the length of the underlying buffer.
func (s *Stream) Len() int {
	return len(s.data)
}

// AtEnd returns true once every byte of the buffer has been consumed.
func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.data)
}

// Remaining returns the unconsumed tail of the buffer.
func (s *Stream) Remaining() []byte {
	if s.AtEnd() {
		return nil
	}
	return s.data[s.pos:]
}

// Next consumes a single byte and returns it. After Next returns, Pos() has
// already moved past the returned byte. It returns false at the end of the
// buffer, in which case the position does not change.
func (s *Stream) Next() (byte, bool) {
	if s.AtEnd() {
		return 0, false
	}
	c := s.data[s.pos]
	s.pos++
	return c, true
}

// Peek returns the byte off bytes past the current position without consuming
// anything. Peek(0) is the byte the next call to Next() would return. It
// returns false when that position lies outside the buffer.
func (s *Stream) Peek(off int) (byte, bool) {
	i := s.pos + off
	if off < 0 || i >= len(s.data) {
		return 0, false
	}
	return s.data[i], true
}

// Advance skips n bytes forward. It stops at the end of the buffer. Negative
// values are ignored: the cursor never moves backward this way.
func (s *Stream) Advance(n int) {
	if n <= 0 {
		return
	}
	s.pos += n
	if s.pos > len(s.data) {
		s.pos = len(s.data)
	}
}

// Seek moves the cursor to an absolute position, clamped to the buffer. This
// is the only way to move backward and is meant for callers restarting a scan,
// never for the scanners themselves.
func (s *Stream) Seek(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(s.data):
		pos = len(s.data)
	}
	s.pos = pos
}
