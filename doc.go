// Package email is the root of a small library for reading email message
// headers exactly as they appear on the wire.
//
// The work is split according to part of message. The message/stream package
// holds the byte cursor everything else reads from. The message/header/field
// package does the low-level scanning: ParseRaw pulls the value out of a single
// header field body, following folded continuation lines, and SkipRaw passes
// over one without building anything. The message/header package assembles
// fields into a header.Header with the usual getters for dates, addresses, and
// subjects, and the message package splits a whole message read from an
// io.Reader into that header and an unread body.
//
// Nothing is rewritten on the way in. A parsed header remembers the bytes it
// came from, so writing a message back out reproduces the input byte for byte,
// junk and badly folded lines included. As I use this as the basis for some
// mail filtering software, it is important that messages get written out the
// same as they started.
//
// Raw header bytes are decoded as UTF-8 by default, with any invalid sequences
// replaced. Import message/header/encoding to make every character set in the
// IANA index available to header.WithCharset and to MIME encoded-word
// decoding.
package email
