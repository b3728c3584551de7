package diagnose

import "github.com/jpareu/cadimo/cable"

// Outcome classifies the overall result of a Diagnose call.
type Outcome string

const (
	// OutcomeRecommendation means at least one candidate graph contains
	// both endpoints and a non-empty compatible-cable set was found.
	OutcomeRecommendation Outcome = "recommendation"
	// OutcomeNeitherFound means no candidate graph contains either endpoint.
	OutcomeNeitherFound Outcome = "neither_found"
	// OutcomeOnlyOneFound means every candidate graph containing one
	// endpoint never contains the other.
	OutcomeOnlyOneFound Outcome = "only_one_found"
	// OutcomeNoCompatibleCable means graphs contain both endpoints but no
	// cable class can traverse both their tags.
	OutcomeNoCompatibleCable Outcome = "no_compatible_cable"
)

// GraphFinding is the per-candidate presence/tag record.
type GraphFinding struct {
	Path       string
	SrcPresent bool
	SrcTag     string
	DstPresent bool
	DstTag     string
	LoadError  string
}

// Findings is the full structured result of a Diagnose call (§4.8 step 3).
type Findings struct {
	PerGraph          []GraphFinding
	RecommendedCables []cable.Class
	RecommendedGraphs []string
	SuggestedCommand  string
	Outcome           Outcome
}
