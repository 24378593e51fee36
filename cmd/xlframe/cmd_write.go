package main

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlframe-go/pkg/xlframe"
)

// writeFlags are the write options shared by the write and merge commands.
type writeFlags struct {
	sheetNames []string
	noHeader   bool
	noAutofit  bool
	noTable    bool
	tableStyle string
	header     string
	footer     string
	printArea  bool
}

func (w *writeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&w.sheetNames, "sheet-name", nil, "Target sheet name(s), in input order")
	cmd.Flags().BoolVar(&w.noHeader, "no-header", false, "Do not write the header row")
	cmd.Flags().BoolVar(&w.noAutofit, "no-autofit", false, "Keep default column widths")
	cmd.Flags().BoolVar(&w.noTable, "no-table", false, "Do not register a styled table")
	cmd.Flags().StringVar(&w.tableStyle, "table-style", "", "Table style, e.g. TableStyleMedium4")
	cmd.Flags().StringVar(&w.header, "header", "", "Page header text")
	cmd.Flags().StringVar(&w.footer, "footer", "", "Page footer text")
	cmd.Flags().BoolVar(&w.printArea, "print-area", false, "Set each sheet's print area to the written region")
}

// options layers the command-line flags over the profile's write section.
func (w *writeFlags) options(cmd *cobra.Command) xlframe.WriteOptions {
	opts := profile.WriteOptions()
	flags := cmd.Flags()
	if flags.Changed("sheet-name") {
		opts.SheetNames = w.sheetNames
	}
	if w.noHeader {
		opts.IncludeHeader = xlframe.Bool(false)
	}
	if w.noAutofit {
		opts.AutofitColumns = xlframe.Bool(false)
	}
	if w.noTable {
		opts.Table = xlframe.Bool(false)
	}
	if flags.Changed("table-style") {
		opts.TableStyle = w.tableStyle
	}
	if flags.Changed("header") {
		opts.Header = w.header
	}
	if flags.Changed("footer") {
		opts.Footer = w.footer
	}
	if w.printArea {
		opts.PrintArea = true
	}
	opts.Logger = logger
	return opts
}

func newWriteCmd() *cobra.Command {
	var (
		wf         writeFlags
		outputPath string
		delimiter  string
	)

	cmd := &cobra.Command{
		Use:   "write [input.csv]",
		Short: "Write a CSV file to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(delimiter) != 1 {
				return fmt.Errorf("invalid delimiter: %q", delimiter)
			}

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("file not found: %s", args[0])
			}
			defer in.Close()

			df := xlframe.ReadCSV(in, dataframe.WithDelimiter(rune(delimiter[0])))
			if err := df.Error(); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			if err := df.WriteExcel(outputPath, wf.options(cmd)); err != nil {
				return fmt.Errorf("write failed: %w", err)
			}
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
