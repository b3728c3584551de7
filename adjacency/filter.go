package adjacency

import (
	"sort"

	"github.com/jpareu/cadimo/graphstore"
)

// Entry is one surviving neighbour: the key on the other end and the edge
// weight to reach it.
type Entry struct {
	Key    string
	Weight float64
}

// Adjacency is the filtered, symmetric adjacency view produced by Build.
// Lookups on a key with no surviving incident edge return an empty slice,
// never an error.
type Adjacency struct {
	byKey map[string][]Entry
}

// Neighbors returns the filtered neighbour list for key. A key that is a
// vertex in the source store but has no surviving edge returns an empty,
// non-nil slice.
func (a *Adjacency) Neighbors(key string) []Entry {
	if entries, ok := a.byKey[key]; ok {
		return entries
	}

	return []Entry{}
}

// Build derives the filtered adjacency from s under the permitted-tag set.
// Rule: drop any edge whose own tag is not permitted, or whose either
// endpoint's tag is not permitted, regardless of the edge's own tag.
// Neighbour lists are sorted by key before return: graphstore's own
// iteration order (map-backed) is not stable across process runs, and A*'s
// FIFO tie-break (astar/queue.go) derives its insertion sequence from this
// order, so an unsorted list would make equal-length-path results
// non-deterministic across rebuilds of the same graph (§8 invariant 8).
func Build(s *graphstore.Store, permitted map[graphstore.Tag]struct{}) *Adjacency {
	out := &Adjacency{byKey: make(map[string][]Entry)}

	seen := make(map[string]struct{})
	for u, uTag := range vertexTags(s) {
		if _, ok := permitted[uTag]; !ok {
			continue
		}
		neighbors, err := s.NeighborsRaw(u)
		if err != nil {
			continue
		}
		for _, n := range neighbors {
			pairID := pairKey(u, n.Key)
			if _, dup := seen[pairID]; dup {
				continue
			}

			if _, ok := permitted[n.Tag]; !ok {
				continue
			}
			vTag, err := s.VertexTag(n.Key)
			if err != nil {
				continue
			}
			if _, ok := permitted[vTag]; !ok {
				continue
			}

			seen[pairID] = struct{}{}
			out.byKey[u] = append(out.byKey[u], Entry{Key: n.Key, Weight: n.Weight})
			out.byKey[n.Key] = append(out.byKey[n.Key], Entry{Key: u, Weight: n.Weight})
		}
	}

	for _, entries := range out.byKey {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	}

	return out
}

func pairKey(u, v string) string {
	if u <= v {
		return u + "\x00" + v
	}

	return v + "\x00" + u
}

// vertexTags snapshots every vertex's tag via Store.AllVertexTags, giving
// Build the full vertex set to start its NeighborsRaw walks from; this
// helper centralises the one place that needs every vertex.
func vertexTags(s *graphstore.Store) map[string]graphstore.Tag {
	return s.AllVertexTags()
}
