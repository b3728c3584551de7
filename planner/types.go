package planner

// SegmentStat is the per-segment metric breakdown required by §4.6.
type SegmentStat struct {
	PointsInSegment      int
	NodesExploredSegment int
}

// Result is the outcome of a successful Run: the concatenated polyline with
// waypoints appearing exactly once at segment boundaries, the total
// Euclidean length, the total nodes explored, and one SegmentStat per
// traversed segment. Warnings carries non-fatal forward-path notices (§4.7:
// "no registered tramo id, treat as no-op, log a warning via C9") for the
// result reporter to surface; it is nil when nothing was noteworthy.
type Result struct {
	Path          []string
	Length        float64
	NodesExplored int
	Segments      []SegmentStat
	Warnings      []string
}
