// Package report formats parsed header fields for the rawheader tool.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zostay/go-email-scan/message/header/field"
)

// EmptyMarker is written in place of a value when a field body is Empty.
const EmptyMarker = "(empty)"

// Text returns the text of the field value, with encoded-words decoded when
// decode is set. Empty values become EmptyMarker.
func Text(f *field.Field, decode bool) (string, error) {
	if f.Value().IsEmpty() {
		return EmptyMarker, nil
	}

	body := f.Body()
	if !decode {
		return body, nil
	}

	dec, err := field.Decode(body)
	if err != nil {
		return body, fmt.Errorf("unable to decode %s field: %w", f.Name(), err)
	}
	return dec, nil
}

// Fields writes one "Name: value" line per field. Line breaks kept inside a
// folded value are escaped so each field stays on a single line.
func Fields(w io.Writer, fs []*field.Field, decode bool) error {
	for _, f := range fs {
		text, err := Text(f, decode)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s: %s\n", f.Name(), escapeBreaks(text))
		if err != nil {
			return err
		}
	}
	return nil
}

// Values writes the value of each field on its own line, as is.
func Values(w io.Writer, fs []*field.Field, decode bool) error {
	for _, f := range fs {
		text, err := Text(f, decode)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, text)
		if err != nil {
			return err
		}
	}
	return nil
}

// Diff compares the raw body of the field, everything after the colon, with
// the value extracted from it.
func Diff(f *field.Field) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	return dmp.DiffMain(f.Raw.Body(), f.Body(), false)
}

// Unfold writes the name of each field followed by a diff of its raw body
// against the extracted value. Removed text is shown in red and inserted text
// in green when color is set. Otherwise, deletions are bracketed with [- -]
// and insertions with {+ +}.
func Unfold(w io.Writer, fs []*field.Field, color bool) error {
	dmp := diffmatchpatch.New()
	for _, f := range fs {
		diffs := Diff(f)

		var out string
		if color {
			out = dmp.DiffPrettyText(diffs)
		} else {
			out = plainDiff(diffs)
		}

		_, err := fmt.Fprintf(w, "%s:\n%s\n", f.Name(), escapeBreaks(out))
		if err != nil {
			return err
		}
	}
	return nil
}

func plainDiff(diffs []diffmatchpatch.Diff) string {
	var out strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			out.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffEqual:
			out.WriteString(d.Text)
		}
	}
	return out.String()
}

var breakEscaper = strings.NewReplacer("\r", "\\r", "\n", "\\n")

func escapeBreaks(s string) string {
	return breakEscaper.Replace(s)
}
