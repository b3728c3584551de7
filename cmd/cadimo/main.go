// Command cadimo is the CLI surface of the constrained cable-routing core
// (§6.3): direct, ppo, multi_ppo, forward_path, and diagnose subcommands
// over a cobra root command, grounded on jinterlante1206-AleutianLocal's
// cmd/aleutian command layout (one *cobra.Command per subcommand,
// persistent root flags, distinct process exit codes per failure class).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes distinguish the three failure classes §6.3 requires be
// distinguishable: bad arguments, pathfinding failure, and graph/mapping
// malformation. 0 is success.
const (
	exitOK             = 0
	exitBadArgs        = 1
	exitPathfindFail   = 2
	exitGraphMalformed = 3
)

var (
	jsonOutput bool
	graphPath  string
	tramoPath  string
	cableFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "cadimo",
	Short: "Constrained shortest-path router over a tagged 3D cable graph",
	Long: `cadimo computes constrained shortest paths over a static, undirected,
embedded 3D graph modelling a dual-system cable-routing infrastructure.`,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&graphPath, "graph", "", "path to the §6.1 graph file")
	rootCmd.PersistentFlags().StringVar(&tramoPath, "tramo", "", "path to the §6.2 tramo-id map file")

	for _, c := range []*cobra.Command{directCmd, ppoCmd, multiPPOCmd, forwardPathCmd} {
		c.Flags().StringVar(&cableFlag, "cable", "", "cable class selector: A, B, or C")
	}

	rootCmd.AddCommand(directCmd, ppoCmd, multiPPOCmd, forwardPathCmd, diagnoseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitBadArgs)
	}
}
