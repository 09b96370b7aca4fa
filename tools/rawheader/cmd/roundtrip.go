package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-scan/message"
	"github.com/zostay/go-email-scan/tools/rawheader/report"
)

var (
	roundTripCmd = &cobra.Command{
		Use:   "roundtrip <file>...",
		Short: "check that each message is written back out byte for byte",
		Args:  cobra.MinimumNArgs(1),
		Run:   RoundTrip,
	}
)

func RoundTrip(_ *cobra.Command, args []string) {
	failed := false
	for _, fn := range args {
		src, err := os.ReadFile(fn)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "unable to read %s: %v\n", fn, err)
			failed = true
			continue
		}

		err = report.RoundTrip(src, message.WithHeaderOptions(headerOptions()...))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", fn, err)
			failed = true
			continue
		}

		fmt.Printf("%s: ok\n", fn)
	}

	if failed {
		os.Exit(1)
	}
}
