package report

import (
	"errors"
	"strconv"

	"github.com/jpareu/cadimo/diagnose"
	"github.com/jpareu/cadimo/geokey"
	"github.com/jpareu/cadimo/graphstore"
	"github.com/jpareu/cadimo/planner"
	"github.com/jpareu/cadimo/routeerr"
	"github.com/jpareu/cadimo/tramo"
)

// NewSuccess renders a planner.Result into the §4.9 success shape, rounding
// TotalLength to three decimals (the same precision canonical point keys
// use, per §1's "Euclidean total length to three decimals" contract).
func NewSuccess(res planner.Result) SuccessReport {
	segments := make([]SegmentReport, 0, len(res.Segments))
	for _, s := range res.Segments {
		segments = append(segments, SegmentReport{
			PointsInSegment: s.PointsInSegment,
			NodesExplored:   s.NodesExploredSegment,
		})
	}

	return SuccessReport{
		PointCount:         len(res.Path),
		TotalLength:        roundTo3(res.Length),
		TotalNodesExplored: res.NodesExplored,
		Segments:           segments,
		Warnings:           res.Warnings,
	}
}

// NewFailure classifies err against the §7 taxonomy and attaches findings
// (the output of an automatic diagnose.Diagnose invocation) when one was
// run; findings may be nil when no diagnosis applies or was attempted.
func NewFailure(err error, findings *diagnose.Findings) FailureReport {
	out := FailureReport{Message: err.Error(), Diagnosis: findings}

	var notInGraph *routeerr.EndpointNotInGraph
	var forbiddenSys *routeerr.EndpointInForbiddenSystem
	var noPath *routeerr.NoPath
	var malformed *graphstore.MalformedError

	switch {
	case errors.As(err, &notInGraph):
		out.Kind = "EndpointNotInGraph"
		out.Which = string(notInGraph.Which)
		out.Key = notInGraph.Key
	case errors.As(err, &forbiddenSys):
		out.Kind = "EndpointInForbiddenSystem"
		out.Which = string(forbiddenSys.Which)
		out.Key = forbiddenSys.Key
	case errors.As(err, &noPath):
		out.Kind = "NoPath"
		out.Segment = noPath.Segment
		out.From = noPath.From
		out.To = noPath.To
	case errors.As(err, &malformed):
		out.Kind = "GraphMalformed"
	case errors.Is(err, tramo.ErrMappingMalformed):
		out.Kind = "MappingMalformed"
	case errors.Is(err, geokey.ErrBadCoordinate), errors.Is(err, geokey.ErrMalformedKey):
		out.Kind = "BadCoordinate"
	default:
		out.Kind = "Unknown"
	}

	return out
}

// roundTo3 rounds v to three decimal places using the same correctly-
// rounded fixed-point text conversion geokey's key formatting relies on, so
// the reported length never disagrees with canonical-key rounding.
func roundTo3(v float64) float64 {
	text := strconv.FormatFloat(v, 'f', 3, 64)
	rounded, _ := strconv.ParseFloat(text, 64)

	return rounded
}
