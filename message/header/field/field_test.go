package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-scan/message/header/field"
	"github.com/zostay/go-email-scan/message/stream"
)

func TestNew(t *testing.T) {
	t.Parallel()

	f := field.New("Subject", "testing")
	require.NotNil(t, f)

	assert.Equal(t, "Subject: testing\n", f.String())
	assert.Equal(t, []byte("Subject: testing\n"), f.Bytes())
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "testing", f.Body())
	assert.Equal(t, "Subject", f.Raw.Name())
	assert.Equal(t, " testing\n", f.Raw.Body())

	f = field.New("Keywords", "  ")
	require.NotNil(t, f)
	assert.Equal(t, "Keywords", f.Name())
	assert.True(t, f.Value().IsEmpty())
	assert.Equal(t, "", f.Body())

	// an unfolded line break ends the body
	f = field.New("Subject", "one\ntwo")
	require.NotNil(t, f)
	assert.Equal(t, "one", f.Body())
	assert.Equal(t, "Subject: one\n", f.String())
}

func TestParseField(t *testing.T) {
	t.Parallel()

	s := stream.New([]byte("Received: from x.y.test\n   by example.net\nSubject : hi\r\nbody"))

	f := field.ParseField(s, field.LossyUTF8)
	require.NotNil(t, f)
	assert.Equal(t, "Received", f.Name())
	assert.Equal(t, "from x.y.test\n   by example.net", f.Body())
	assert.Equal(t, " from x.y.test\n   by example.net\n", f.Raw.Body())
	assert.Equal(t, "Received: from x.y.test\n   by example.net\n", f.String())

	f = field.ParseField(s, field.LossyUTF8)
	require.NotNil(t, f)
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "Subject ", f.Raw.Name())
	assert.Equal(t, "hi", f.Body())
	assert.Equal(t, " hi\r\n", f.Raw.Body())

	assert.Equal(t, []byte("body"), s.Remaining())
}

func TestParseField_NoColon(t *testing.T) {
	t.Parallel()

	s := stream.New([]byte("junk line\n continued\nA: b\n"))

	f := field.ParseField(s, field.LossyUTF8)
	assert.Nil(t, f)
	assert.Equal(t, []byte("A: b\n"), s.Remaining())

	f = field.ParseField(s, field.LossyUTF8)
	require.NotNil(t, f)
	assert.Equal(t, "A", f.Name())
	assert.Equal(t, "b", f.Body())
	assert.True(t, s.AtEnd())
}

func TestSkipField(t *testing.T) {
	t.Parallel()

	input := "DKIM-Signature: v=1;\n b=asdf\nSubject: x\n"

	ps := stream.New([]byte(input))
	pf := field.ParseField(ps, field.LossyUTF8)
	require.NotNil(t, pf)

	ss := stream.New([]byte(input))
	sf := field.SkipField(ss)
	require.NotNil(t, sf)

	assert.Equal(t, "DKIM-Signature", sf.Name())
	assert.True(t, sf.Value().IsEmpty())
	assert.Equal(t, pf.String(), sf.String())
	assert.Equal(t, ps.Pos(), ss.Pos())
}

func TestRaw(t *testing.T) {
	t.Parallel()

	s := stream.New([]byte("Subject"))
	f := field.ParseField(s, field.LossyUTF8)
	assert.Nil(t, f)
	assert.True(t, s.AtEnd())

	f = field.New("Subject", "test")
	require.NotNil(t, f)
	require.NotNil(t, f.Raw)
	assert.Equal(t, "Subject", f.Raw.Name())
	assert.Equal(t, " test\n", f.Raw.Body())
	assert.Equal(t, []byte("Subject: test\n"), f.Raw.Bytes())
	assert.Equal(t, "Subject: test\n", f.Raw.String())
}
