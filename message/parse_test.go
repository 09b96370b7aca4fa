package message_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-scan/message"
	"github.com/zostay/go-email-scan/message/header"
)

func TestParse_WithBadlyFolded(t *testing.T) {
	t.Parallel()

	srcBytes, err := os.ReadFile("testdata/badly-folded.eml")
	require.NoError(t, err)

	m, err := message.Parse(bytes.NewReader(srcBytes))
	require.NoError(t, err)

	assert.Equal(t, 6, m.Header.Len())

	subject, err := m.Header.Get(header.Subject)
	assert.NoError(t, err)
	assert.Equal(t, "this subject is folded\n  badly, with a blank continuation\n \n\tand a tab", subject)

	from, err := m.Header.Get(header.From)
	assert.NoError(t, err)
	assert.Equal(t, `"Sterling" <sterling@example.com>`, from)

	empty, err := m.Header.GetValue("X-Empty")
	assert.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	buf := &bytes.Buffer{}
	n, err := m.WriteTo(buf)
	assert.Equal(t, int64(len(srcBytes)), n)
	assert.NoError(t, err)

	assert.Equal(t, srcBytes, buf.Bytes())
}

func TestParse_SmallChunks(t *testing.T) {
	t.Parallel()

	const msg = "Subject: hello\r\nTo: jane@example.com\r\n\r\nbody text\r\n"

	for _, chunk := range []int{1, 2, 3, 7, 100} {
		r := iotest.OneByteReader(strings.NewReader(msg))
		m, err := message.Parse(r, message.WithChunkSize(chunk))
		require.NoError(t, err, "chunk %d", chunk)

		assert.Equal(t, 2, m.Header.Len(), "chunk %d", chunk)
		assert.Equal(t, header.CRLF, m.Header.Break(), "chunk %d", chunk)

		body, err := io.ReadAll(m.GetReader())
		assert.NoError(t, err)
		assert.Equal(t, "body text\r\n", string(body), "chunk %d", chunk)
	}
}

func TestParse_EmptyHeader(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(strings.NewReader("\nbody only\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Header.Len())

	body, err := io.ReadAll(m.GetReader())
	assert.NoError(t, err)
	assert.Equal(t, "body only\n", string(body))
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(strings.NewReader("Subject: hi\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Header.Len())
	assert.Nil(t, m.Body)

	body, err := io.ReadAll(m.GetReader())
	assert.NoError(t, err)
	assert.Empty(t, body)
}

func TestParse_LargeHeader(t *testing.T) {
	t.Parallel()

	msg := "Subject: " + strings.Repeat("x", 200) + "\n\nbody"
	_, err := message.Parse(strings.NewReader(msg),
		message.WithChunkSize(16),
		message.WithMaxHeaderLength(100),
	)
	assert.ErrorIs(t, err, message.ErrLargeHeader)

	m, err := message.Parse(strings.NewReader(msg),
		message.WithChunkSize(16),
		message.WithMaxHeaderLength(0),
	)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.Header.Len())
}

func TestParse_LargeChunkSmallHeader(t *testing.T) {
	t.Parallel()

	msg := "Subject: hi\n\n" + strings.Repeat("body ", 100)
	m, err := message.Parse(strings.NewReader(msg),
		message.WithChunkSize(1024),
		message.WithMaxHeaderLength(20),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Header.Len())

	body, err := io.ReadAll(m.GetReader())
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("body ", 100), string(body))

	_, err = message.Parse(strings.NewReader(msg),
		message.WithChunkSize(1024),
		message.WithMaxHeaderLength(12),
	)
	assert.ErrorIs(t, err, message.ErrLargeHeader)
}

func TestParse_ReadError(t *testing.T) {
	t.Parallel()

	_, err := message.Parse(iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestParse_BadStart(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(strings.NewReader("junk\nSubject: hi\n\nbody"))

	var badStart *header.BadStartError
	assert.ErrorAs(t, err, &badStart)
	require.NotNil(t, m)

	subject, err := m.Header.Get(header.Subject)
	assert.NoError(t, err)
	assert.Equal(t, "hi", subject)
}

func TestParse_WithHeaderOptions(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(
		strings.NewReader("Received: from x\n by y\nSubject: Caf\xe9\n\nbody"),
		message.WithHeaderOptions(
			header.WithSkip("received"),
			header.WithCharset("latin1"),
		),
	)
	require.NoError(t, err)

	rcvd, err := m.Header.GetValue("Received")
	assert.NoError(t, err)
	assert.True(t, rcvd.IsEmpty())

	subject, err := m.Header.Get(header.Subject)
	assert.NoError(t, err)
	assert.Equal(t, "Café", subject)
}
