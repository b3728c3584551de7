package cadimo

import (
	"errors"

	"github.com/jpareu/cadimo/adjacency"
	"github.com/jpareu/cadimo/cable"
	"github.com/jpareu/cadimo/diagnose"
	"github.com/jpareu/cadimo/geokey"
	"github.com/jpareu/cadimo/graphstore"
	"github.com/jpareu/cadimo/planner"
	"github.com/jpareu/cadimo/routeerr"
	"github.com/jpareu/cadimo/tramo"
)

// Request is the input to Route: a graph file, an optional tramo-id map,
// a cable class, and the ordered waypoint sequence (source first,
// destination last; §4.6 requires at least two entries).
type Request struct {
	GraphPath   string
	TramoPath   string // empty means no tramo ids are registered; forward-path becomes a no-op
	Cable       cable.Class
	Waypoints   []geokey.Point
	Forbidden   map[int]struct{} // owned by the caller; nil is treated as empty
	ForwardPath bool

	// DiagnoseCandidates lists the graph files the automatic diagnoser
	// checks on failure. A nil slice defaults to []string{GraphPath}.
	DiagnoseCandidates []string
}

// RouteFailure wraps a routing error together with the automatic
// diagnoser's findings (§4.8's auto-invocation clause). Callers that only
// care about the error kind can keep using errors.As/errors.Is against the
// wrapped error directly, since Unwrap exposes it.
type RouteFailure struct {
	Err       error
	Diagnosis *diagnose.Findings
}

func (f *RouteFailure) Error() string { return f.Err.Error() }
func (f *RouteFailure) Unwrap() error { return f.Err }

// Route resolves the cable access policy (C3), loads the graph store and
// tramo table (C2), builds the filtered adjacency (C4), and drives the
// segment planner (C6/C7) across req.Waypoints. On EndpointNotInGraph,
// EndpointInForbiddenSystem, or NoPath it automatically runs the endpoint
// diagnoser (C8) and returns a *RouteFailure carrying its findings.
func Route(req Request) (planner.Result, error) {
	if len(req.Waypoints) < 2 {
		return planner.Result{}, planner.ErrTooFewWaypoints
	}

	store, err := graphstore.LoadFile(req.GraphPath)
	if err != nil {
		return planner.Result{}, err
	}

	ids := tramo.New()
	if req.TramoPath != "" {
		ids, err = tramo.LoadFile(req.TramoPath)
		if err != nil {
			return planner.Result{}, err
		}
	}

	permitted := cable.Permitted(req.Cable)

	keys := make([]string, len(req.Waypoints))
	for i, wp := range req.Waypoints {
		keys[i] = wp.Key
	}

	if err := validateEndpoints(store, keys, permitted); err != nil {
		return planner.Result{}, req.fail(err)
	}

	adj := adjacency.Build(store, permitted)

	res, err := planner.Run(adj, store, ids, keys, req.Forbidden, req.ForwardPath)
	if err != nil {
		return planner.Result{}, req.fail(err)
	}

	return res, nil
}

// validateEndpoints checks the source and destination (and, per §4.2's
// invariant that every waypoint is itself a valid vertex, every
// intermediate waypoint) against the cable's permitted tag set.
func validateEndpoints(store *graphstore.Store, keys []string, permitted map[graphstore.Tag]struct{}) error {
	for i, key := range keys {
		which := routeerr.WhichWaypoint
		switch i {
		case 0:
			which = routeerr.WhichSource
		case len(keys) - 1:
			which = routeerr.WhichDest
		}
		if err := cable.ValidateEndpoint(store, key, which, permitted); err != nil {
			return err
		}
	}

	return nil
}

// fail wraps err with a *RouteFailure carrying diagnoser findings whenever
// err's kind is one the diagnoser is meant to annotate (§4.8's
// auto-invocation clause); any other error passes through unwrapped.
func (req Request) fail(err error) error {
	var notInGraph *routeerr.EndpointNotInGraph
	var forbiddenSys *routeerr.EndpointInForbiddenSystem
	var noPath *routeerr.NoPath

	if !errors.As(err, &notInGraph) && !errors.As(err, &forbiddenSys) && !errors.As(err, &noPath) {
		return err
	}

	candidates := req.DiagnoseCandidates
	if candidates == nil {
		candidates = []string{req.GraphPath}
	}

	findings := diagnose.Diagnose(req.Waypoints[0], req.Waypoints[len(req.Waypoints)-1], candidates)

	return &RouteFailure{Err: err, Diagnosis: &findings}
}
