package field

// Raw holds the bytes of a header field exactly as they were read: the name,
// the colon, the body with any folding, and the line break that ended it.
// Objects of this type are immutable.
type Raw struct {
	field []byte // complete raw field
	colon int    // the index of the colon
}

// String returns the Raw as a string.
func (f *Raw) String() string {
	return string(f.field)
}

// Bytes returns the Raw. The slice is shared with the parsed buffer.
func (f *Raw) Bytes() []byte {
	return f.field
}

// Name returns the name part of the Raw, untrimmed.
func (f *Raw) Name() string {
	return string(f.field[:f.colon])
}

// Body returns everything after the colon, including folds and the terminating
// line break.
func (f *Raw) Body() string {
	return string(f.field[f.colon+1:])
}
