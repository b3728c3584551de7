package main

import (
	"fmt"
	"os"

	"github.com/jpareu/cadimo/diagnose"
	"github.com/jpareu/cadimo/report"
	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose SX SY SZ DX DY DZ [graph ...]",
	Short: "Report, for each candidate graph file, whether the two endpoints exist and which cable classes connect them",
	Args:  cobra.MinimumNArgs(6),
	Run: func(cmd *cobra.Command, args []string) {
		points, err := parseTriples(args[:6])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitBadArgs)
		}

		candidates := args[6:]
		if len(candidates) == 0 && graphPath != "" {
			candidates = []string{graphPath}
		}
		if len(candidates) == 0 {
			fmt.Fprintln(os.Stderr, "diagnose: no candidate graph files given (pass them positionally or via --graph)")
			os.Exit(exitBadArgs)
		}

		findings := diagnose.Diagnose(points[0], points[1], candidates)

		if jsonOutput {
			_ = report.WriteJSON(os.Stdout, findings)
		} else {
			report.WriteDiagnosisText(os.Stdout, &findings)
		}

		os.Exit(exitOK)
	},
}
