package field

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Encoder transforms native unicode text into bytes in the given charset.
//
// The encoder should only output text that is valid in the target encoding. If
// no charset is named, us-ascii is assumed. If the target charset is not
// supported, it returns nil and an error.
type Encoder func(charset, s string) ([]byte, error)

// Decoder transforms bytes in the given charset into native unicode text.
//
// Any byte that is invalid for the source charset should be replaced with
// unicode.ReplacementChar. If the source charset is not supported, it returns
// an empty string and an error.
type Decoder func(charset string, b []byte) (string, error)

var (
	// CharsetEncoder is the Encoder used by Encode. To make use of an encoder
	// that handles a much wider variety of charsets, import the encoding
	// package:
	//  import _ "github.com/zostay/go-email-scan/message/header/encoding"
	CharsetEncoder Encoder = DefaultCharsetEncoder

	// CharsetDecoder is the Decoder used by Decode and CharsetText. To make use
	// of a decoder that handles a much wider variety of charsets, import the
	// encoding package:
	//  import _ "github.com/zostay/go-email-scan/message/header/encoding"
	CharsetDecoder Decoder = DefaultCharsetDecoder
)

// DefaultCharsetEncoder handles us-ascii, iso-8859-1 (a.k.a. latin1), and
// utf-8 only. Anything else is an error.
//
// When outputting us-ascii or iso-8859-1, any character that does not fit is
// replaced with "\x1a", the ASCII SUB character.
func DefaultCharsetEncoder(charset, s string) ([]byte, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "":
		var buf bytes.Buffer
		for _, c := range s {
			if c > unicode.MaxASCII {
				buf.WriteByte('\x1a')
			} else {
				buf.WriteRune(c)
			}
		}
		return buf.Bytes(), nil
	case "iso-8859-1", "latin1":
		var buf bytes.Buffer
		for _, c := range s {
			if c > unicode.MaxLatin1 {
				buf.WriteByte('\x1a')
			} else {
				buf.WriteByte(byte(c))
			}
		}
		return buf.Bytes(), nil
	case "utf-8":
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// DefaultCharsetDecoder handles us-ascii, iso-8859-1 (a.k.a. latin1), and
// utf-8 only. Anything else is an error.
//
// With us-ascii, any 8-bit byte becomes unicode.ReplacementChar. With utf-8,
// each byte that is not part of a valid sequence becomes
// unicode.ReplacementChar.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "":
		var s strings.Builder
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case "iso-8859-1", "latin1":
		var s strings.Builder
		for _, c := range b {
			s.WriteRune(rune(c))
		}
		return s.String(), nil
	case "utf-8":
		var s strings.Builder
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// CharsetDecoderToCharsetReader adapts a Decoder to the CharsetReader hook of
// mime.WordDecoder.
func CharsetDecoderToCharsetReader(decode Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(charset string, r io.Reader) (io.Reader, error) {
		bs, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		s, err := decode(charset, bs)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(s), nil
	}
}
