package astar

import (
	"errors"

	"github.com/jpareu/cadimo/adjacency"
	"github.com/jpareu/cadimo/geokey"
)

// ErrEmptyEndpoint is returned when src or dst is the empty string.
var ErrEmptyEndpoint = errors.New("astar: empty endpoint")

// ErrNoPath is returned when the open set empties without reaching dst.
// The segment planner (C6) wraps this into a *routeerr.NoPath carrying the
// segment index, since astar itself has no notion of segments.
var ErrNoPath = errors.New("astar: no path")

// PointSource resolves a canonical vertex key to its point, for the A*
// heuristic. *graphstore.Store satisfies this directly.
type PointSource interface {
	PointOf(key string) (geokey.Point, error)
}

// EdgeIDLookup resolves an unordered edge to its tramo id. *tramo.Table
// satisfies this directly.
type EdgeIDLookup interface {
	IDOf(u, v string) (int, error)
}

// Result is the outcome of a successful search.
type Result struct {
	Path          []string
	Length        float64
	NodesExplored int
}

// adjacencySource is the filtered-adjacency surface A* needs; satisfied by
// *adjacency.Adjacency.
type adjacencySource interface {
	Neighbors(key string) []adjacency.Entry
}
