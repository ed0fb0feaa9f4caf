package main

import (
	"fmt"

	"github.com/oleg578/flatfile"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print every record one field per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer closeIn()

	out := cmd.OutOrStdout()
	return def.EachRecord(in, func(rec *flatfile.Record, _ string) error {
		fmt.Fprintf(out, "# line %d\n%s\n", rec.LineNumber(), rec.DebugString())
		return nil
	})
}
