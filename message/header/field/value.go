package field

// Kind identifies which variant a Value holds.
type Kind int

const (
	Empty Kind = iota // no content was found before the end of the field
	Text              // the value holds extracted text
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Value is the outcome of scanning a single header field body. The zero value
// is the Empty value.
//
// A Text value keeps two views of the same content. Bytes() is the undecoded
// slice of the scanned buffer, shared with it and not copied. String() is that
// slice after decoding into text, with any invalid input replaced rather than
// rejected.
type Value struct {
	kind  Kind
	raw   []byte
	text  string
	start int
	end   int
}

// newText builds a Text value over buf[start:end] decoded with dec.
func newText(buf []byte, start, end int, dec TextDecoder) Value {
	raw := buf[start:end]
	return Value{
		kind:  Text,
		raw:   raw,
		text:  dec.DecodeText(raw),
		start: start,
		end:   end,
	}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty returns true if the value is Empty.
func (v Value) IsEmpty() bool {
	return v.kind == Empty
}

// Text returns the decoded text and true for a Text value. It returns "" and
// false for Empty.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == Text
}

// String returns the decoded text or "" when the value is Empty.
func (v Value) String() string {
	return v.text
}

// Bytes returns the undecoded bytes of the value. These belong to the buffer
// that was scanned and must not be modified. It returns nil for Empty.
func (v Value) Bytes() []byte {
	return v.raw
}

// Span returns the offsets of the value within the scanned buffer, with end
// being exclusive. Empty values report -1, -1.
func (v Value) Span() (start, end int) {
	if v.kind == Empty {
		return -1, -1
	}
	return v.start, v.end
}
