package planner

import (
	"errors"
	"fmt"

	"github.com/jpareu/cadimo/adjacency"
	"github.com/jpareu/cadimo/astar"
	"github.com/jpareu/cadimo/graphstore"
	"github.com/jpareu/cadimo/routeerr"
	"github.com/jpareu/cadimo/tramo"
)

// ErrTooFewWaypoints is returned when fewer than two waypoints are given;
// §4.6 requires W = [w0, ..., wm] with m >= 1, i.e. at least one segment.
var ErrTooFewWaypoints = errors.New("planner: need at least two waypoints")

// Run sequences astar.Search across the ordered waypoints, assembling the
// final polyline and per-segment metrics (C6). forbidden is owned by the
// caller and passed by reference; if forwardPath is true, Run invokes the
// Forward-Path Controller (C7) between segments, guaranteeing forbidden's
// net contents are unchanged on both success and failure (§4.7's
// restoration invariant).
//
// A nil forbidden is treated like an empty one; Run never replaces the
// caller's map with a new one, so any forward-path insertion it makes is
// always paired with its own removal before Run returns.
func Run(adj *adjacency.Adjacency, store *graphstore.Store, ids *tramo.Table, waypoints []string, forbidden map[int]struct{}, forwardPath bool) (Result, error) {
	if len(waypoints) < 2 {
		return Result{}, ErrTooFewWaypoints
	}
	if forbidden == nil {
		forbidden = make(map[int]struct{})
	}

	var (
		out      Result
		lastPath []string
	)

	for i := 1; i < len(waypoints); i++ {
		src, dst := waypoints[i-1], waypoints[i]

		var undo func()
		if forwardPath && i >= 2 {
			undo, out.Warnings = applyForwardPath(ids, forbidden, lastPath, out.Warnings)
		}

		res, err := astar.Search(adj, store, src, dst, forbidden, ids)

		if undo != nil {
			undo()
		}

		if err != nil {
			if errors.Is(err, astar.ErrNoPath) {
				return Result{}, &routeerr.NoPath{Segment: i, From: src, To: dst}
			}

			return Result{}, err
		}

		if i == 1 {
			out.Path = append(out.Path, res.Path...)
		} else {
			out.Path = append(out.Path, res.Path[1:]...)
		}
		out.Length += res.Length
		out.NodesExplored += res.NodesExplored
		out.Segments = append(out.Segments, SegmentStat{
			PointsInSegment:      len(res.Path),
			NodesExploredSegment: res.NodesExplored,
		})

		lastPath = res.Path
	}

	return out, nil
}

// applyForwardPath implements C7: it forbids the tramo id of the last edge
// of the previous segment for the duration of the next A* call and returns
// a closure that removes exactly that addition, restoring forbidden to its
// prior contents regardless of how the caller's search turns out.
func applyForwardPath(ids *tramo.Table, forbidden map[int]struct{}, lastPath []string, warnings []string) (func(), []string) {
	if len(lastPath) < 2 {
		// Previous segment had zero length (waypoints canonicalised equal);
		// no edge was traversed, so there is nothing to forbid.
		return nil, warnings
	}

	u, v := lastPath[len(lastPath)-2], lastPath[len(lastPath)-1]
	id, err := ids.IDOf(u, v)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("forward-path: no registered tramo id for edge %s-%s, no-op", u, v))

		return nil, warnings
	}

	if _, already := forbidden[id]; already {
		// Already forbidden by the caller; nothing to add or later remove.
		return nil, warnings
	}

	forbidden[id] = struct{}{}

	return func() { delete(forbidden, id) }, warnings
}
