package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <3d-file>",
	Short: "Display survey file information",
	Long:  `Display general information about a Survex 3D image file including title, version, timestamp, and survey statistics.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	res, err := parseFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "File: %s\n", args[0])
	fmt.Fprintf(output, "Title: %s\n", res.Header.Title)
	fmt.Fprintf(output, "Version: %s\n", res.Header.Version)
	fmt.Fprintf(output, "Timestamp: %s\n", res.Header.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(output, "Flags: 0x%02x\n", res.Header.Flags)
	fmt.Fprintf(output, "Stations: %d\n", len(res.Stations))
	fmt.Fprintf(output, "Legs: %d (%d splays)\n", len(res.Legs), res.SplayCount())
	fmt.Fprintf(output, "Bounds: (%.2f, %.2f, %.2f) to (%.2f, %.2f, %.2f)\n",
		res.Bounds.Min.X, res.Bounds.Min.Y, res.Bounds.Min.Z,
		res.Bounds.Max.X, res.Bounds.Max.Y, res.Bounds.Max.Z)

	return nil
}
