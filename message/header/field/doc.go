// Package field is the lowest layer of header parsing. It finds the raw body of
// a header field in a message buffer, taking folded continuation lines into
// account, and hands back the text without interpreting it. Address lists,
// dates, and other structured values are parsed from that text by the header
// package.
//
// The two scanners are ParseRaw, which extracts the body as a Value, and
// SkipRaw, which only moves the stream past it. Both read from a
// stream.Stream positioned just after the colon of the field name and both
// stop at the same place.
//
// The package also holds the charset hooks used to turn field bytes into text
// and to decode MIME encoded-words.
package field
