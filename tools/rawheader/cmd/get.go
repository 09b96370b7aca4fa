package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-scan/tools/rawheader/report"
)

var (
	getCmd = &cobra.Command{
		Use:   "get <name> <file>",
		Short: "print the value of every field with the given name",
		Args:  cobra.ExactArgs(2),
		Run:   Get,
	}
)

func Get(_ *cobra.Command, args []string) {
	name := args[0]
	h := readHeader(args[1])

	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		_, _ = fmt.Fprintf(os.Stderr, "no %s field found\n", name)
		os.Exit(1)
	}

	err := report.Values(os.Stdout, fs, decode)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
