package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreak_Bytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{}, Meh.Bytes())
	assert.Equal(t, []byte{0x0d, 0x0a}, CRLF.Bytes())
	assert.Equal(t, []byte{0x0a}, LF.Bytes())
}

func TestBreak_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Meh.String())
	assert.Equal(t, "\r\n", CRLF.String())
	assert.Equal(t, "\n", LF.String())
}

func TestDetectBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Meh, detectBreak([]byte("Subject: x")))
	assert.Equal(t, LF, detectBreak([]byte("Subject: x\n")))
	assert.Equal(t, LF, detectBreak([]byte("\n")))
	assert.Equal(t, CRLF, detectBreak([]byte("Subject: x\r\n y\n")))
}
