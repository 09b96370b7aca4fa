package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-scan/tools/rawheader/report"
)

var (
	fieldsCmd = &cobra.Command{
		Use:   "fields <file>",
		Short: "list every header field with its extracted value",
		Args:  cobra.ExactArgs(1),
		Run:   Fields,
	}
)

func Fields(_ *cobra.Command, args []string) {
	h := readHeader(args[0])

	err := report.Fields(os.Stdout, h.ListFields(), decode)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
