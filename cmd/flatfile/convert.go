package main

import (
	"github.com/oleg578/flatfile"
	"github.com/spf13/cobra"
)

var convertCRLF bool

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Re-render every record through the layout formatters",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&convertCRLF, "crlf", false, "terminate output lines with CRLF")
}

func runConvert(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer closeIn()

	w := flatfile.NewWriter(cmd.OutOrStdout())
	w.UseCRLF = convertCRLF
	err = def.EachRecord(in, func(rec *flatfile.Record, _ string) error {
		return w.Write(rec)
	})
	if err != nil {
		return err
	}
	return w.Flush()
}
