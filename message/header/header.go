package header

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-email-scan/message/header/field"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")
)

// These are standard headers defined in RFC 5322.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	Comments                = "Comments"
	ContentDisposition      = "Content-disposition"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	InReplyTo               = "In-reply-to"
	Keywords                = "Keywords"
	MessageID               = "Message-id"
	References              = "References"
	ReplyTo                 = "Reply-to"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// Even more custom date formats, built from those seen in the wild that the
// usual parsers have trouble with.
const (
	// UnixDateWithEarlyYear is a weird one, eh?
	UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"
)

// Header is a parsed message header. It keeps the fields in the order they
// were read along with the exact bytes they came from, so that writing it back
// out reproduces the input.
//
// The getter methods return ErrNoSuchField if no field with the name exists
// and ErrManyFields when a single field is required but the name repeats.
// Names always match without regard to case.
type Header struct {
	lbr    Break
	fields []*field.Field
	raw    []byte
}

// Break returns the line break used by the first field of the header. It
// returns LF if the header has no fields or the first field is unterminated.
func (h *Header) Break() Break {
	if h.lbr == Meh {
		return LF
	}
	return h.lbr
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Bytes returns the header exactly as read, including the blank line that
// ended it and any junk that preceded the first field.
func (h *Header) Bytes() []byte {
	return h.raw
}

// WriteTo writes the header out exactly as it was read.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.raw)
	return int64(n), err
}

// ListFields returns all the fields in the order they appear.
func (h *Header) ListFields() []*field.Field {
	return h.fields
}

// GetField returns the nth field or nil if n is out of range.
func (h *Header) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetIndexesNamed returns the indexes of every field with the given name.
func (h *Header) GetIndexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// GetFieldNamed returns the nth field with the given name (0 is the first),
// or nil if there are not that many.
func (h *Header) GetFieldNamed(name string, n int) *field.Field {
	ixs := h.GetIndexesNamed(name)
	if n < 0 || n >= len(ixs) {
		return nil
	}
	return h.fields[ixs[n]]
}

// GetAllFieldsNamed returns every field with the given name.
func (h *Header) GetAllFieldsNamed(name string) []*field.Field {
	ixs := h.GetIndexesNamed(name)
	fs := make([]*field.Field, len(ixs))
	for i, ix := range ixs {
		fs[i] = h.fields[ix]
	}
	return fs
}

// getOne returns the only field with the given name.
func (h *Header) getOne(name string) (*field.Field, error) {
	ixs := h.GetIndexesNamed(name)
	switch len(ixs) {
	case 0:
		return nil, ErrNoSuchField
	case 1:
		return h.fields[ixs[0]], nil
	default:
		return nil, ErrManyFields
	}
}

// GetValue returns the extracted value of the named field.
func (h *Header) GetValue(name string) (field.Value, error) {
	f, err := h.getOne(name)
	if err != nil {
		return field.Value{}, err
	}
	return f.Value(), nil
}

// Get returns the extracted text of the named field. A field whose value is
// Empty yields "" with no error.
func (h *Header) Get(name string) (string, error) {
	f, err := h.getOne(name)
	if err != nil {
		return "", err
	}
	return f.Body(), nil
}

// GetAll returns the text of every field with the given name. It returns
// ErrNoSuchField if there are none.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bodies := make([]string, len(fs))
	for i, f := range fs {
		bodies[i] = f.Body()
	}
	return bodies, nil
}

// unfold removes the line breaks of folded continuation lines, leaving the
// indentation that followed them. This gives the logical value of the field.
func unfold(body string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, body)
}

// GetDecoded returns the unfolded text of the named field with MIME
// encoded-words decoded. If decoding fails, it returns the unfolded text with
// the error.
func (h *Header) GetDecoded(name string) (string, error) {
	body, err := h.Get(name)
	if err != nil {
		return "", err
	}

	body = unfold(body)
	dec, err := field.Decode(body)
	if err != nil {
		return body, err
	}
	return dec, nil
}

// ParseTime provides the time parsing used by GetTime() and GetDate(). This
// will attempt to parse the date using the format specified by RFC 5322 first
// and fallback to parsing it in many other formats.
//
// The body is unfolded first. It either returns a parsed time or the parse
// error.
func ParseTime(body string) (time.Time, error) {
	body = unfold(body)

	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime gets the named date field as a time.Time. It will attempt to parse
// the date in many formats, not just the format specified by RFC 5322 (though,
// it will try that first).
func (h *Header) GetTime(name string) (time.Time, error) {
	body, err := h.Get(name)
	if err != nil {
		return time.Time{}, err
	}

	return ParseTime(body)
}

// GetDate returns the Date field as a time.Time.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// GetSubject returns the Subject field unfolded and with encoded-words
// decoded.
func (h *Header) GetSubject() (string, error) {
	return h.GetDecoded(Subject)
}

// ParseAddressList provides the address parsing used by GetAddressList() and
// GetAllAddressLists(). It will attempt a strict parse of the email address
// list. However, if that fails, an extremely lenient parsing will be
// attempted, which might result in results that can only be described as
// "weird" in the effort to provide some kind of result. It will return some
// kind of value for any input. The body is unfolded first.
func ParseAddressList(body string) addr.AddressList {
	body = unfold(body)

	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		al = parseEmailAddressList(body)
	}

	return al
}

// GetAddressList returns the named field parsed as an address list. This method
// works hard to avoid parse errors and tries to accept anything. See
// ParseAddressList.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}

	return ParseAddressList(body), nil
}

// GetAllAddressLists returns every field with the given name parsed as an
// address list.
func (h *Header) GetAllAddressLists(name string) ([]addr.AddressList, error) {
	bodies, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	als := make([]addr.AddressList, len(bodies))
	for i, body := range bodies {
		als[i] = ParseAddressList(body)
	}
	return als, nil
}

// GetFrom returns the From field as an addr.AddressList.
func (h *Header) GetFrom() (addr.AddressList, error) {
	return h.GetAddressList(From)
}

// GetTo returns the To field as an addr.AddressList.
func (h *Header) GetTo() (addr.AddressList, error) {
	return h.GetAddressList(To)
}

// GetCc returns the Cc field as an addr.AddressList.
func (h *Header) GetCc() (addr.AddressList, error) {
	return h.GetAddressList(Cc)
}

// GetBcc returns the Bcc field as an addr.AddressList.
func (h *Header) GetBcc() (addr.AddressList, error) {
	return h.GetAddressList(Bcc)
}

// GetReplyTo returns the Reply-To field as an addr.AddressList.
func (h *Header) GetReplyTo() (addr.AddressList, error) {
	return h.GetAddressList(ReplyTo)
}

// GetKeywordsList returns the comma separated keywords of every Keywords field
// combined into a single list. Empty keywords are dropped.
func (h *Header) GetKeywordsList() ([]string, error) {
	bodies, err := h.GetAll(Keywords)
	if err != nil {
		return nil, err
	}

	var kws []string
	for _, body := range bodies {
		for _, kw := range strings.Split(body, ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				kws = append(kws, kw)
			}
		}
	}
	return kws, nil
}

// parseEmailAddressList is the lenient fallback of ParseAddressList. It splits
// on commas, pulls out parenthesized comments, and treats the last word of
// each piece as the address.
func parseEmailAddressList(v string) addr.AddressList {
	extractComments := func(s string) (string, string) {
		var clean, comment strings.Builder
		nestLevel := 0
		for _, c := range s {
			switch {
			case c == '(':
				nestLevel++
				if nestLevel > 1 {
					comment.WriteRune(c)
				}
			case c == ')':
				nestLevel--
				switch {
				case nestLevel == 0:
				case nestLevel < 0:
					nestLevel = 0
					clean.WriteRune(c)
				default:
					comment.WriteRune(c)
				}
			case nestLevel > 0:
				comment.WriteRune(c)
			default:
				clean.WriteRune(c)
			}
		}

		return clean.String(), comment.String()
	}

	mbs := strings.Split(v, ",")
	as := make(addr.AddressList, 0, len(mbs))
	for _, orig := range mbs {
		mb, com := extractComments(orig)

		mb = strings.TrimSpace(mb)
		com = strings.TrimSpace(com)

		parts := strings.Fields(mb)

		var dn, email string
		switch {
		case len(parts) == 0:
			email = ""
		case len(parts) > 1:
			dn = strings.Join(parts[:len(parts)-1], " ")
			email = parts[len(parts)-1]
		default:
			email = parts[0]
		}

		if email == "" {
			continue
		}

		var addrSpec *addr.AddrSpec
		if i := strings.Index(email, "@"); i > -1 {
			addrSpec = addr.NewAddrSpecParsed(email[:i], email[i+1:], email)
		} else {
			addrSpec = addr.NewAddrSpecParsed(email, "", email)
		}

		mailbox, err := addr.NewMailboxParsed(dn, addrSpec, com, orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, addrSpec, "", orig)
		}

		as = append(as, mailbox)
	}

	return as
}
