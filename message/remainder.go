package message

import "io"

// remainder replays the bytes already read past the end of the header and
// then passes reads on to the unread part of the original io.Reader.
type remainder struct {
	prefix []byte
	r      io.Reader
}

// Read returns buffered bytes first. Once those are gone, it reads from the
// underlying io.Reader.
func (r *remainder) Read(p []byte) (n int, err error) {
	if len(r.prefix) > 0 {
		n = copy(p, r.prefix)
		r.prefix = r.prefix[n:]
		if n == len(p) {
			return n, nil
		}
	}

	var rn int
	rn, err = r.r.Read(p[n:])
	n += rn

	// the buffered bytes count even when the reader is done
	if n > 0 && err == io.EOF {
		err = nil
	}

	return n, err
}

// Close passes the call through to the underlying io.Reader if it is an
// io.Closer. Otherwise, it does nothing.
func (r *remainder) Close() error {
	if c, isCloser := r.r.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
