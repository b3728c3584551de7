package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jpareu/cadimo/diagnose"
)

// WriteJSON encodes v (a SuccessReport, FailureReport or diagnose.Findings)
// as indented JSON,
// mirroring the teacher pack's outputGraphJSON convention of one encoder
// path shared by every result shape.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// WriteSuccessText renders a SuccessReport as a human-readable summary.
func WriteSuccessText(w io.Writer, r SuccessReport) {
	fmt.Fprintf(w, "route found: %d points, length %.3f, %d nodes explored\n",
		r.PointCount, r.TotalLength, r.TotalNodesExplored)

	for i, seg := range r.Segments {
		fmt.Fprintf(w, "  segment %d: %d points, %d nodes explored\n",
			i+1, seg.PointsInSegment, seg.NodesExplored)
	}

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

// WriteFailureText renders a FailureReport as a human-readable summary,
// including the diagnoser's findings when present.
func WriteFailureText(w io.Writer, r FailureReport) {
	fmt.Fprintf(w, "failed: %s (%s)\n", r.Kind, r.Message)

	switch r.Kind {
	case "NoPath":
		fmt.Fprintf(w, "  segment %d: %s -> %s\n", r.Segment, r.From, r.To)
	case "EndpointNotInGraph", "EndpointInForbiddenSystem":
		fmt.Fprintf(w, "  endpoint %s: %s\n", r.Which, r.Key)
	}

	if r.Diagnosis == nil {
		return
	}

	WriteDiagnosisText(w, r.Diagnosis)
}

// WriteDiagnosisText renders diagnose.Findings as a human-readable summary,
// shared by WriteFailureText and the standalone diagnose subcommand.
func WriteDiagnosisText(w io.Writer, d *diagnose.Findings) {
	fmt.Fprintf(w, "diagnosis: %s\n", d.Outcome)
	for _, g := range d.PerGraph {
		if g.LoadError != "" {
			fmt.Fprintf(w, "  %s: load error: %s\n", g.Path, g.LoadError)
			continue
		}
		fmt.Fprintf(w, "  %s: src_present=%v(%s) dst_present=%v(%s)\n",
			g.Path, g.SrcPresent, g.SrcTag, g.DstPresent, g.DstTag)
	}
	if d.SuggestedCommand != "" {
		fmt.Fprintf(w, "suggested command: %s\n", d.SuggestedCommand)
	}
}
