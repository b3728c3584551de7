package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var directCmd = &cobra.Command{
	Use:   "direct SX SY SZ DX DY DZ",
	Short: "Find the shortest path between two points",
	Args:  cobra.ExactArgs(6),
	Run: func(cmd *cobra.Command, args []string) {
		waypoints, err := parseTriples(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitBadArgs)
		}

		runRoute(waypoints, false)
	},
}
