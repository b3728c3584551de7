package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// forwardPathCmd implements the documented §4.7 semantics only; it is
// never aliased to plain ppo (see DESIGN.md Open Question 2).
var forwardPathCmd = &cobra.Command{
	Use:   "forward_path SX SY SZ PX PY PZ DX DY DZ",
	Short: "Find the shortest path through one waypoint, forbidding backtracking over it",
	Args:  cobra.ExactArgs(9),
	Run: func(cmd *cobra.Command, args []string) {
		waypoints, err := parseTriples(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitBadArgs)
		}

		runRoute(waypoints, true)
	},
}
