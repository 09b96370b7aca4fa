package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-scan/tools/rawheader/report"
)

var (
	unfoldCmd = &cobra.Command{
		Use:   "unfold <file>",
		Short: "show what was trimmed from each raw field body to get its value",
		Args:  cobra.ExactArgs(1),
		Run:   Unfold,
	}

	color bool
)

func init() {
	unfoldCmd.Flags().BoolVar(&color, "color", false, "show the difference with terminal colors")
}

func Unfold(_ *cobra.Command, args []string) {
	h := readHeader(args[0])

	err := report.Unfold(os.Stdout, h.ListFields(), color)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
