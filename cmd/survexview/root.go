package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/speleogo/survex3d/survex"
)

var (
	outputFile string
	output     io.Writer
)

var rootCmd = &cobra.Command{
	Use:   "survexview",
	Short: "Survex 3D image viewer and analyzer",
	Long: `survexview is a command-line tool for inspecting Survex 3D
image files (cave-survey centerline data).

It can display the file header, survey stations, legs, and the
bounding box of the survey.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(legsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(exportCmd)
}

// parseFile loads a 3D image into memory and parses it. Soft
// anomalies go to stderr so they never mix with command output.
func parseFile(path string) (*survex.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	p := survex.NewParser(data)
	res, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if diags := p.Diagnostics(); diags != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, diags)
	}

	return res, nil
}
