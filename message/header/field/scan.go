package field

import (
	"github.com/zostay/go-email-scan/message/stream"
)

// ParseRaw reads the body of a single header field from s and returns it as a
// Value, decoding the text with DefaultTextDecoder. The stream must already be
// positioned just after the colon that ends the field name.
//
// See ParseRawWith for the details of how the value is located.
func ParseRaw(s *stream.Stream) Value {
	return ParseRawWith(s, DefaultTextDecoder)
}

// ParseRawWith reads the body of a single header field from s and returns it
// as a Value, decoding the text with dec. The stream must already be
// positioned just after the colon that ends the field name.
//
// Scanning stops at the first line feed not followed by a space or tab. A line
// feed that is followed by one is a folded continuation: the line feed and that
// one whitespace byte are consumed and scanning goes on. Spaces, tabs, and
// carriage returns never start or extend the value, so leading and trailing
// whitespace is left out. Everything between the first and last byte of content
// is returned as it appears in the buffer, line breaks of continuations
// included.
//
// The terminating line feed is consumed but never part of the value. If no
// content was seen before it, the result is Empty.
//
// A field body that runs to the end of the buffer without a terminating line
// feed is also Empty, even when it holds content. The cursor is left at the end
// of the buffer in that case.
//
// This never fails. Bytes that do not decode are replaced by the decoder.
func ParseRawWith(s *stream.Stream, dec TextDecoder) Value {
	start, end := -1, -1
	for {
		c, ok := s.Next()
		if !ok {
			return Value{}
		}

		switch c {
		case '\n':
			if skipFold(s) {
				continue
			}

			if start < 0 {
				return Value{}
			}
			return newText(s.Data(), start, end, dec)
		case ' ', '\t', '\r':
			continue
		}

		if start < 0 {
			start = s.Pos() - 1
		}
		end = s.Pos()
	}
}

// SkipRaw advances s past the body of a single header field without
// extracting anything. It follows the same folding rule as ParseRaw and leaves
// the stream at the same position ParseRaw would: just past the first line feed
// not followed by a space or tab, or at the end of the buffer.
func SkipRaw(s *stream.Stream) {
	for {
		c, ok := s.Next()
		if !ok {
			return
		}

		if c == '\n' && !skipFold(s) {
			return
		}
	}
}

// skipFold is called just after a line feed has been consumed. If the next byte
// starts a continuation line, it consumes that byte and returns true.
func skipFold(s *stream.Stream) bool {
	c, ok := s.Peek(0)
	if ok && isSpace(c) {
		s.Advance(1)
		return true
	}
	return false
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }
