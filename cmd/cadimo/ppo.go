package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ppoCmd = &cobra.Command{
	Use:   "ppo SX SY SZ PX PY PZ DX DY DZ",
	Short: "Find the shortest path through one mandatory waypoint",
	Args:  cobra.ExactArgs(9),
	Run: func(cmd *cobra.Command, args []string) {
		waypoints, err := parseTriples(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitBadArgs)
		}

		runRoute(waypoints, false)
	},
}

var multiPPOCmd = &cobra.Command{
	Use:   "multi_ppo SX SY SZ [PX PY PZ ...] DX DY DZ",
	Short: "Find the shortest path through an ordered list of mandatory waypoints",
	Args:  cobra.MinimumNArgs(6),
	Run: func(cmd *cobra.Command, args []string) {
		waypoints, err := parseTriples(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitBadArgs)
		}

		runRoute(waypoints, false)
	},
}
