package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	legsSplaysOnly bool
	legsNamedOnly  bool
)

var legsCmd = &cobra.Command{
	Use:   "legs <3d-file>",
	Short: "List survey legs",
	Long: `List the legs (centerline segments) in a Survex 3D image file.

A leg whose endpoint was never labeled is a splay; use --splays or
--named to show only one kind.`,
	Args: cobra.ExactArgs(1),
	RunE: runLegs,
}

func init() {
	legsCmd.Flags().BoolVarP(&legsSplaysOnly, "splays", "s", false, "only show splay legs")
	legsCmd.Flags().BoolVarP(&legsNamedOnly, "named", "N", false, "only show fully labeled legs")
}

func runLegs(cmd *cobra.Command, args []string) error {
	res, err := parseFile(args[0])
	if err != nil {
		return err
	}

	shown := 0
	for _, l := range res.Legs {
		if legsSplaysOnly && !l.IsSplay() {
			continue
		}
		if legsNamedOnly && l.IsSplay() {
			continue
		}
		fmt.Fprintf(output, "%-30s -> %-30s (%8.2f, %8.2f, %8.2f) -> (%8.2f, %8.2f, %8.2f)  flags=0x%02x\n",
			endpointName(l.FromStation), endpointName(l.ToStation),
			l.From.X, l.From.Y, l.From.Z,
			l.To.X, l.To.Y, l.To.Z,
			l.Flags)
		shown++
	}

	fmt.Fprintf(output, "\n%d legs\n", shown)
	return nil
}

func endpointName(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
