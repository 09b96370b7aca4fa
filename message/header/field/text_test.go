package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-scan/message/header/field"
	"github.com/zostay/go-email-scan/message/stream"
)

func TestLossyUTF8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", field.LossyUTF8.DecodeText(nil))
	assert.Equal(t, "plain", field.LossyUTF8.DecodeText([]byte("plain")))
	assert.Equal(t, string(unicodeText), field.LossyUTF8.DecodeText(unicodeText))
	assert.Equal(t, "a�b", field.LossyUTF8.DecodeText([]byte("a\xffb")))
	assert.Equal(t, "�", field.LossyUTF8.DecodeText([]byte{0xc0}))
}

func TestCharsetText(t *testing.T) {
	t.Parallel()

	// greek is supplied by the encoding package
	dec := field.CharsetText("greek")
	assert.Equal(t, string(unicodeText), dec.DecodeText(greekText))

	// unknown charsets fall back to lossy utf-8
	dec = field.CharsetText("x-no-such-charset")
	assert.Equal(t, "Caf�", dec.DecodeText([]byte("Caf\xe9")))

	dec = field.CharsetText("iso-8859-1")
	assert.Equal(t, "Café", dec.DecodeText([]byte("Caf\xe9")))
}

func TestParseRawWith_Charset(t *testing.T) {
	t.Parallel()

	buf := append([]byte{' '}, greekText...)
	buf = append(buf, '\n')

	s := stream.New(buf)
	v := field.ParseRawWith(s, field.CharsetText("iso-8859-7"))
	assert.Equal(t, string(unicodeText), v.String())
	assert.Equal(t, greekText, v.Bytes())
}
