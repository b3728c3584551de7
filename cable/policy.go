package cable

import (
	"github.com/jpareu/cadimo/graphstore"
	"github.com/jpareu/cadimo/routeerr"
)

// Class is a cable class selector.
type Class string

const (
	ClassA Class = "A"
	ClassB Class = "B"
	ClassC Class = "C"
)

// permittedByClass is the fixed, non-configurable cable access policy:
// A -> {A}, B -> {B}, C -> {A, B}.
var permittedByClass = map[Class]map[graphstore.Tag]struct{}{
	ClassA: {graphstore.TagA: {}},
	ClassB: {graphstore.TagB: {}},
	ClassC: {graphstore.TagA: {}, graphstore.TagB: {}},
}

// Permitted returns the set of subsystem tags a cable of class c may
// traverse. Total over {A,B,C}; unknown classes return an empty set.
func Permitted(c Class) map[graphstore.Tag]struct{} {
	out := make(map[graphstore.Tag]struct{}, 2)
	for tag := range permittedByClass[c] {
		out[tag] = struct{}{}
	}

	return out
}

// sortedTagStrings renders a permitted-tag set as a stable, sorted string
// slice for error messages and diagnostic output.
func sortedTagStrings(permitted map[graphstore.Tag]struct{}) []string {
	out := make([]string, 0, len(permitted))
	for _, t := range []graphstore.Tag{graphstore.TagA, graphstore.TagB} {
		if _, ok := permitted[t]; ok {
			out = append(out, string(t))
		}
	}

	return out
}

// ValidateEndpoint succeeds iff key names a vertex in s whose tag is in
// permitted. On failure it returns *routeerr.EndpointNotInGraph or
// *routeerr.EndpointInForbiddenSystem, identifying which endpoint (which)
// failed.
func ValidateEndpoint(s *graphstore.Store, key string, which routeerr.Which, permitted map[graphstore.Tag]struct{}) error {
	tag, err := s.VertexTag(key)
	if err != nil {
		return &routeerr.EndpointNotInGraph{Which: which, Key: key}
	}
	if _, ok := permitted[tag]; !ok {
		return &routeerr.EndpointInForbiddenSystem{
			Which:     which,
			Key:       key,
			ActualTag: string(tag),
			Permitted: sortedTagStrings(permitted),
		}
	}

	return nil
}

// CompatibleCables returns the set of cable classes whose permitted set
// contains tag: {c : tag in Permitted(c)}.
func CompatibleCables(tag graphstore.Tag) []Class {
	var out []Class
	for _, c := range []Class{ClassA, ClassB, ClassC} {
		if _, ok := permittedByClass[c][tag]; ok {
			out = append(out, c)
		}
	}

	return out
}
