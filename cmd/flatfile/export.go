package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oleg578/flatfile"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write every record to an Excel workbook",
	Long: `Parse FILE and write one spreadsheet row per record.

The first row holds the non-padding field names in layout order. Cells hold the
filtered values, so numeric filters produce numeric cells.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "output .xlsx path (- for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer closeIn()

	f := excelize.NewFile()
	defer f.Close()

	fields := def.NonPadFields()
	if err := writeHeader(f, fields); err != nil {
		return err
	}

	row := 2
	err = def.EachRecord(in, func(rec *flatfile.Record, _ string) error {
		for col, field := range fields {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			v, err := rec.Get(field.Name())
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return fmt.Errorf("line %d: %w", rec.LineNumber(), err)
			}
		}
		row++
		return nil
	})
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd.OutOrStdout(), exportOut)
	if err != nil {
		return err
	}
	defer closeOut()
	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// writeHeader writes the bold field-name row and sizes each column to its field width.
func writeHeader(f *excelize.File, fields []*flatfile.Field) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, field := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, field.Name()); err != nil {
			return err
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, style); err != nil {
			return err
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(max(field.Width(), len(field.Name())) + 2)
		if err := f.SetColWidth(exportSheet, colName, colName, width); err != nil {
			return err
		}
	}
	return nil
}

// openOutput creates path, or returns stdout when path is "-".
func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
