package diagnose

import (
	"fmt"

	"github.com/jpareu/cadimo/cable"
	"github.com/jpareu/cadimo/geokey"
	"github.com/jpareu/cadimo/graphstore"
)

// Diagnose implements C8: for each candidate graph file it records whether
// src and dst are present and their tags, then computes the recommended
// cable classes and graphs. It never attempts pathfinding.
func Diagnose(src, dst geokey.Point, candidates []string) Findings {
	var (
		perGraph        []GraphFinding
		recommendGraphs []string
		cableVotes      = make(map[cable.Class]int)
		anySrc          bool
		anyDst          bool
		anyBoth         bool
	)

	for _, path := range candidates {
		f := GraphFinding{Path: path}

		s, err := graphstore.LoadFile(path)
		if err != nil {
			f.LoadError = err.Error()
			perGraph = append(perGraph, f)

			continue
		}

		if tag, err := s.VertexTag(src.Key); err == nil {
			f.SrcPresent = true
			f.SrcTag = string(tag)
			anySrc = true
		}
		if tag, err := s.VertexTag(dst.Key); err == nil {
			f.DstPresent = true
			f.DstTag = string(tag)
			anyDst = true
		}

		if f.SrcPresent && f.DstPresent {
			anyBoth = true
			recommendGraphs = append(recommendGraphs, path)

			srcCables := cable.CompatibleCables(graphstore.Tag(f.SrcTag))
			dstCables := cable.CompatibleCables(graphstore.Tag(f.DstTag))
			for _, c := range intersectClasses(srcCables, dstCables) {
				cableVotes[c]++
			}
		}

		perGraph = append(perGraph, f)
	}

	out := Findings{PerGraph: perGraph, RecommendedGraphs: recommendGraphs}

	switch {
	case !anySrc && !anyDst:
		out.Outcome = OutcomeNeitherFound

		return out
	case !anyBoth:
		out.Outcome = OutcomeOnlyOneFound

		return out
	}

	out.RecommendedCables = sortedClasses(cableVotes)
	if len(out.RecommendedCables) == 0 {
		out.Outcome = OutcomeNoCompatibleCable

		return out
	}

	out.Outcome = OutcomeRecommendation
	out.SuggestedCommand = fmt.Sprintf("cadimo direct --graph %s --cable %s %.3f %.3f %.3f %.3f %.3f %.3f",
		recommendGraphs[0], out.RecommendedCables[0], src.X, src.Y, src.Z, dst.X, dst.Y, dst.Z)

	return out
}

// intersectClasses returns the classes present in both a and b, preserving
// the canonical A,B,C ordering.
func intersectClasses(a, b []cable.Class) []cable.Class {
	inB := make(map[cable.Class]struct{}, len(b))
	for _, c := range b {
		inB[c] = struct{}{}
	}

	var out []cable.Class
	for _, c := range a {
		if _, ok := inB[c]; ok {
			out = append(out, c)
		}
	}

	return out
}

// sortedClasses renders the vote set in canonical A,B,C order.
func sortedClasses(votes map[cable.Class]int) []cable.Class {
	var out []cable.Class
	for _, c := range []cable.Class{cable.ClassA, cable.ClassB, cable.ClassC} {
		if votes[c] > 0 {
			out = append(out, c)
		}
	}

	return out
}
