package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <3d-file>",
	Short: "Export the parsed survey as JSON",
	Long: `Export the full parse result (header, stations, legs, bounds)
as JSON, suitable for feeding a rendering pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	res, err := parseFile(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
