package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/zostay/go-email-scan/message"
	"github.com/zostay/go-email-scan/message/header"
	_ "github.com/zostay/go-email-scan/message/header/encoding"
	"github.com/zostay/go-email-scan/tools/rawheader/report"
)

// readHeader parses the header of the named file, or of stdin when the name is
// "-". Problems are reported on stderr and end the program.
func readHeader(fn string) *header.Header {
	h, err := report.ReadHeader(fn, message.WithHeaderOptions(headerOptions()...))

	var badStart *header.BadStartError
	switch {
	case errors.As(err, &badStart):
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	case err != nil:
		_, _ = fmt.Fprintf(os.Stderr, "unable to read %s: %v\n", fn, err)
		os.Exit(1)
	}

	return h
}

// headerOptions returns the header parse options selected by the global flags.
func headerOptions() []header.ParseOption {
	opts := []header.ParseOption{header.WithSkip(skip...)}
	if charset != "" {
		opts = append(opts, header.WithCharset(charset))
	}
	return opts
}
