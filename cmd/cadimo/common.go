package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jpareu/cadimo"
	"github.com/jpareu/cadimo/cable"
	"github.com/jpareu/cadimo/geokey"
	"github.com/jpareu/cadimo/report"
)

// parseTriples parses args as a sequence of (x y z) decimal triples,
// mirroring §6.3's "endpoint coordinates as nine decimal numbers split
// across triples" contract generalized to any multiple of three.
func parseTriples(args []string) ([]geokey.Point, error) {
	if len(args)%3 != 0 || len(args) == 0 {
		return nil, fmt.Errorf("expected a multiple of 3 coordinate numbers, got %d", len(args))
	}

	out := make([]geokey.Point, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", args[i], err)
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", args[i+1], err)
		}
		z, err := strconv.ParseFloat(args[i+2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", args[i+2], err)
		}

		pt, err := geokey.Canonicalise(x, y, z)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}

	return out, nil
}

// parseCableClass validates --cable against the three known classes.
func parseCableClass(raw string) (cable.Class, error) {
	switch cable.Class(raw) {
	case cable.ClassA, cable.ClassB, cable.ClassC:
		return cable.Class(raw), nil
	default:
		return "", fmt.Errorf("--cable must be one of A, B, C, got %q", raw)
	}
}

// runRoute builds a cadimo.Request from the shared root flags, invokes
// cadimo.Route, and renders the outcome to stdout, exiting the process
// with the exit code matching the §6.3 failure-class contract.
func runRoute(waypoints []geokey.Point, forwardPath bool) {
	cls, err := parseCableClass(cableFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitBadArgs)
	}

	res, err := cadimo.Route(cadimo.Request{
		GraphPath:   graphPath,
		TramoPath:   tramoPath,
		Cable:       cls,
		Waypoints:   waypoints,
		ForwardPath: forwardPath,
	})
	if err != nil {
		fr := buildFailureReport(err)
		renderFailure(fr)
		os.Exit(exitCodeFor(fr.Kind))
	}

	sr := report.NewSuccess(res)
	renderSuccess(sr)
	os.Exit(exitOK)
}

func buildFailureReport(err error) report.FailureReport {
	var rf *cadimo.RouteFailure
	if errors.As(err, &rf) {
		return report.NewFailure(rf.Err, rf.Diagnosis)
	}

	return report.NewFailure(err, nil)
}

func renderSuccess(sr report.SuccessReport) {
	if jsonOutput {
		_ = report.WriteJSON(os.Stdout, sr)
		return
	}
	report.WriteSuccessText(os.Stdout, sr)
}

func renderFailure(fr report.FailureReport) {
	if jsonOutput {
		_ = report.WriteJSON(os.Stdout, fr)
		return
	}
	report.WriteFailureText(os.Stdout, fr)
}

// exitCodeFor maps a §7 error kind to the §6.3 exit-code classes.
func exitCodeFor(kind string) int {
	switch kind {
	case "NoPath":
		return exitPathfindFail
	case "GraphMalformed", "MappingMalformed":
		return exitGraphMalformed
	case "EndpointNotInGraph", "EndpointInForbiddenSystem", "BadCoordinate":
		return exitBadArgs
	default:
		return exitPathfindFail
	}
}
