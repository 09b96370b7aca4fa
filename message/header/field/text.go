package field

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// TextDecoder turns the raw bytes of a field body into text. Implementations
// must not fail: any input they cannot decode is replaced, never rejected.
type TextDecoder interface {
	DecodeText(b []byte) string
}

// TextDecoderFunc adapts an ordinary function into a TextDecoder.
type TextDecoderFunc func(b []byte) string

// DecodeText calls f(b).
func (f TextDecoderFunc) DecodeText(b []byte) string {
	return f(b)
}

var (
	// LossyUTF8 treats the bytes as UTF-8. Every invalid sequence is replaced
	// with unicode.ReplacementChar (U+FFFD).
	LossyUTF8 TextDecoder = TextDecoderFunc(lossyUTF8)

	// DefaultTextDecoder is the decoder used by ParseRaw. You may replace it,
	// but the replacement must follow the TextDecoder contract.
	DefaultTextDecoder = LossyUTF8
)

func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// CharsetText returns a TextDecoder for field bodies written in the given
// character set. It decodes through CharsetDecoder, so importing the encoding
// package widens the set of charsets it understands. Whenever the charset is
// not supported or decoding fails, it falls back to LossyUTF8.
func CharsetText(charset string) TextDecoder {
	return TextDecoderFunc(func(b []byte) string {
		s, err := CharsetDecoder(charset, b)
		if err != nil {
			return LossyUTF8.DecodeText(b)
		}
		return s
	})
}
