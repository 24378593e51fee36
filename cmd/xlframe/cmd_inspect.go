package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlframe-go/pkg/xlframe"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/output"
)

func newInspectCmd() *cobra.Command {
	var (
		pretty     bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Describe the sheets, tables and print areas of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := xlframe.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			data, err := output.ToJSON(info, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, outputPath, data)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
