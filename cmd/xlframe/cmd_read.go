package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlframe-go/pkg/xlframe"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/output"
)

func newReadCmd() *cobra.Command {
	var (
		sheetName    string
		sheetID      int
		inferLength  int
		columns      []string
		noHeader     bool
		format       string
		pretty       bool
		outputPath   string
		dropEmptyRow bool
	)

	cmd := &cobra.Command{
		Use:   "read [input.xlsx]",
		Short: "Read a worksheet and print it as JSON or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := profile.ReadOptions()
			flags := cmd.Flags()
			if flags.Changed("sheet") {
				opts.SheetName, opts.SheetID = sheetName, 0
			}
			if flags.Changed("sheet-id") {
				opts.SheetID, opts.SheetName = sheetID, ""
			}
			if flags.Changed("infer-schema-length") {
				opts.InferSchemaLength = xlframe.Int(inferLength)
			}
			if flags.Changed("columns") {
				opts.Columns = columns
			}
			if noHeader {
				opts.HasHeader = xlframe.Bool(false)
			}
			if dropEmptyRow {
				opts.DropEmptyRows = true
			}
			opts.Logger = logger

			df, err := xlframe.ReadExcel(args[0], opts)
			if err != nil {
				return fmt.Errorf("read failed: %w", err)
			}

			var data []byte
			switch format {
			case "json":
				data, err = output.RecordsToJSON(df, pretty)
			case "csv":
				var buf bytes.Buffer
				err = output.WriteCSV(&buf, df)
				data = bytes.TrimRight(buf.Bytes(), "\n")
			default:
				return fmt.Errorf("invalid format: %s (must be json or csv)", format)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, outputPath, data)
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().IntVar(&sheetID, "sheet-id", 0, "Worksheet position, 1-based")
	cmd.Flags().IntVar(&inferLength, "infer-schema-length", xlframe.DefaultInferSchemaLength, "Rows sampled for type inference (0 = all)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to keep, in order")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Treat row 1 as data")
	cmd.Flags().BoolVar(&dropEmptyRow, "drop-empty-rows", false, "Skip rows whose cells are all blank")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, csv")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
