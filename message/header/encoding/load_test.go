package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-scan/message/header/encoding"
)

func TestCharsetDecoder(t *testing.T) {
	t.Parallel()

	s, err := encoding.CharsetDecoder("iso-8859-7", []byte{0xc5, 0xed})
	assert.NoError(t, err)
	assert.Equal(t, "Εν", s)

	_, err = encoding.CharsetDecoder("x-no-such-charset", []byte("abc"))
	assert.Error(t, err)
}

func TestCharsetEncoder(t *testing.T) {
	t.Parallel()

	b, err := encoding.CharsetEncoder("iso-8859-7", "Εν")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xc5, 0xed}, b)

	_, err = encoding.CharsetEncoder("x-no-such-charset", "abc")
	assert.Error(t, err)
}
