package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/speleogo/survex3d/survex"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump <3d-file>",
	Short: "Dump all survey information",
	Long: `Dump everything decoded from a Survex 3D image file.

Supported formats:
  - text: Human-readable text (default)
  - json: JSON format`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format (text, json)")
}

func runDump(cmd *cobra.Command, args []string) error {
	res, err := parseFile(args[0])
	if err != nil {
		return err
	}

	switch dumpFormat {
	case "json":
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text":
		return dumpText(res, args[0])
	default:
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}
}

func dumpText(res *survex.ParseResult, path string) error {
	fmt.Fprintf(output, "=== %s ===\n\n", path)
	fmt.Fprintf(output, "Title: %s\n", res.Header.Title)
	fmt.Fprintf(output, "Version: %s\n", res.Header.Version)
	fmt.Fprintf(output, "Timestamp: %s\n", res.Header.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(output, "Flags: 0x%02x\n\n", res.Header.Flags)

	fmt.Fprintf(output, "--- Stations (%d) ---\n", len(res.Stations))
	for _, s := range res.Stations {
		fmt.Fprintf(output, "%-40s (%10.2f, %10.2f, %10.2f)  flags=0x%02x\n",
			s.Name, s.Position.X, s.Position.Y, s.Position.Z, s.Flags)
	}

	fmt.Fprintf(output, "\n--- Legs (%d, %d splays) ---\n", len(res.Legs), res.SplayCount())
	for _, l := range res.Legs {
		fmt.Fprintf(output, "%-30s -> %-30s flags=0x%02x\n",
			endpointName(l.FromStation), endpointName(l.ToStation), l.Flags)
	}

	fmt.Fprintf(output, "\n--- Bounds ---\n")
	fmt.Fprintf(output, "Min: (%.2f, %.2f, %.2f)\n", res.Bounds.Min.X, res.Bounds.Min.Y, res.Bounds.Min.Z)
	fmt.Fprintf(output, "Max: (%.2f, %.2f, %.2f)\n", res.Bounds.Max.X, res.Bounds.Max.Y, res.Bounds.Max.Z)

	return nil
}
