package report

import "github.com/jpareu/cadimo/diagnose"

// SegmentReport is the per-segment breakdown of a SuccessReport.
type SegmentReport struct {
	PointsInSegment int `json:"points_in_segment"`
	NodesExplored   int `json:"nodes_explored"`
}

// SuccessReport is the §4.9 success shape: total point count, Euclidean
// total length (rendered to three decimals), total nodes explored, and the
// per-segment breakdown.
type SuccessReport struct {
	PointCount         int             `json:"point_count"`
	TotalLength        float64         `json:"total_length"`
	TotalNodesExplored int             `json:"total_nodes_explored"`
	Segments           []SegmentReport `json:"segments"`
	Warnings           []string        `json:"warnings,omitempty"`
}

// FailureReport is the §4.9 failure shape: an error kind (§7), the
// offending segment/endpoints when applicable, and the diagnoser's
// findings when one was run.
type FailureReport struct {
	Kind      string             `json:"kind"`
	Message   string             `json:"message"`
	Which     string             `json:"which,omitempty"`
	Key       string             `json:"key,omitempty"`
	Segment   int                `json:"segment,omitempty"`
	From      string             `json:"from,omitempty"`
	To        string             `json:"to,omitempty"`
	Diagnosis *diagnose.Findings `json:"diagnosis,omitempty"`
}
