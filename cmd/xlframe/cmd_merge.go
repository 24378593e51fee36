package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlframe-go/pkg/xlframe"
	"golang.org/x/sync/errgroup"
)

func newMergeCmd() *cobra.Command {
	var (
		wf         writeFlags
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "merge [input.xlsx...]",
		Short: "Combine the first sheet of several workbooks into one workbook",
		Long: `merge reads the first worksheet of each input and writes them as separate
sheets of a single workbook. Sheets are named after the input files unless
--sheet-name is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readOpts := profile.ReadOptions()
			readOpts.Logger = logger

			frames := make([]xlframe.Frame, len(args))
			var g errgroup.Group
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					df, err := xlframe.ReadExcel(path, readOpts)
					if err != nil {
						return fmt.Errorf("read %s: %w", path, err)
					}
					frames[i] = df
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			opts := wf.options(cmd)
			if opts.SheetNames == nil {
				opts.SheetNames = sheetNamesFromPaths(args)
			}
			if err := xlframe.WriteExcel(outputPath, opts, frames...); err != nil {
				return fmt.Errorf("write failed: %w", err)
			}
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// sheetNamesFromPaths names each sheet after its input file, without extension.
// Excel limits sheet names to 31 characters.
func sheetNamesFromPaths(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		base := filepath.Base(p)
		name := []rune(strings.TrimSuffix(base, filepath.Ext(base)))
		if len(name) > 31 {
			name = name[:31]
		}
		names[i] = string(name)
	}
	return names
}
