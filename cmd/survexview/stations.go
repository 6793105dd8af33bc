package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	stationsPrefix string
	stationsLimit  int
)

var stationsCmd = &cobra.Command{
	Use:   "stations <3d-file>",
	Short: "List survey stations",
	Long: `List the named stations in a Survex 3D image file with their
positions in meters.`,
	Args: cobra.ExactArgs(1),
	RunE: runStations,
}

func init() {
	stationsCmd.Flags().StringVarP(&stationsPrefix, "prefix", "p", "", "only show stations whose name starts with prefix")
	stationsCmd.Flags().IntVarP(&stationsLimit, "limit", "n", 0, "limit number of stations shown (0 = unlimited)")
}

func runStations(cmd *cobra.Command, args []string) error {
	res, err := parseFile(args[0])
	if err != nil {
		return err
	}

	shown := 0
	for _, s := range res.Stations {
		if stationsPrefix != "" && !strings.HasPrefix(s.Name, stationsPrefix) {
			continue
		}
		if stationsLimit > 0 && shown >= stationsLimit {
			break
		}
		fmt.Fprintf(output, "%-40s (%10.2f, %10.2f, %10.2f)  flags=0x%02x\n",
			s.Name, s.Position.X, s.Position.Y, s.Position.Z, s.Flags)
		shown++
	}

	fmt.Fprintf(output, "\n%d stations\n", shown)
	return nil
}
