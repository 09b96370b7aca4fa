package field

import (
	"mime"
	"strings"
)

// Encode turns body into MIME encoded-words. It always outputs b-type (Base-64)
// encoding using UTF-8 as the charset.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// Decode looks for MIME encoded-words in an extracted field body and decodes
// them into native unicode. Charsets are decoded with CharsetDecoder.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	dec := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(CharsetDecoder),
	}
	return dec.DecodeHeader(body)
}
