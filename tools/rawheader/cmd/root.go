package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "rawheader",
		Short: "Inspect the raw header fields of an email message",
	}

	skip    []string
	charset string
	decode  bool
)

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&skip, "skip", "s", nil, "field names to pass over without extracting a value")
	rootCmd.PersistentFlags().StringVarP(&charset, "charset", "c", "", "character set of raw header bytes (default lossy UTF-8)")
	rootCmd.PersistentFlags().BoolVarP(&decode, "decode", "d", false, "decode MIME encoded-words in field values")

	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(roundTripCmd)
	rootCmd.AddCommand(unfoldCmd)
}

func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
