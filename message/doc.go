// Package message reads an email message from an io.Reader far enough to
// parse its header. The header bytes are handed to the header package, which
// scans each field with the field package. The body is left unread behind an
// io.Reader so that large messages are not pulled into memory just to look at
// a few header fields.
//
//	m, err := message.Parse(in, message.WithHeaderOptions(
//		header.WithSkip("DKIM-Signature", "Received"),
//	))
//	if err != nil {
//		panic(err)
//	}
//
//	subject, _ := m.Header.GetSubject()
package message
