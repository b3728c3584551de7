package graphstore

import (
	"fmt"

	"github.com/jpareu/cadimo/geokey"
)

// AddVertex registers a vertex at key with the given tag and numeric point.
// Re-adding an existing key with the same tag is a no-op; re-adding with a
// different tag is rejected, since a vertex carries exactly one tag.
func (s *Store) AddVertex(key string, tag Tag, pt geokey.Point) error {
	if !tag.Valid() {
		return malformed("vertex %q has invalid tag %q", key, tag)
	}

	s.muVert.Lock()
	defer s.muVert.Unlock()

	if existing, ok := s.vertices[key]; ok {
		if existing != tag {
			return malformed("vertex %q redeclared with tag %q, previously %q", key, tag, existing)
		}

		return nil
	}
	s.vertices[key] = tag
	s.points[key] = pt

	return nil
}

// AddEdge registers the undirected edge {u,v} with the given tag and
// weight. Both endpoints must already be vertices; self-loops and
// duplicate unordered edges are rejected.
func (s *Store) AddEdge(u, v string, tag Tag, weight float64) error {
	if !tag.Valid() {
		return malformed("edge %s-%s has invalid tag %q", u, v, tag)
	}
	if u == v {
		return malformed("self-loop at %q", u)
	}

	s.muVert.RLock()
	_, uOK := s.vertices[u]
	_, vOK := s.vertices[v]
	s.muVert.RUnlock()
	if !uOK {
		return malformed("edge references unknown vertex %q (from)", u)
	}
	if !vOK {
		return malformed("edge references unknown vertex %q (to)", v)
	}

	s.muEdge.Lock()
	defer s.muEdge.Unlock()

	if _, dup := s.adjacency[u][v]; dup {
		return malformed("duplicate edge %s-%s", u, v)
	}

	rec := edgeRecord{u: u, v: v, tag: tag, weight: weight}
	if s.adjacency[u] == nil {
		s.adjacency[u] = make(map[string]edgeRecord)
	}
	if s.adjacency[v] == nil {
		s.adjacency[v] = make(map[string]edgeRecord)
	}
	s.adjacency[u][v] = rec
	s.adjacency[v][u] = rec

	return nil
}

// HasVertex reports whether key names a vertex in the store.
func (s *Store) HasVertex(key string) bool {
	s.muVert.RLock()
	defer s.muVert.RUnlock()

	_, ok := s.vertices[key]

	return ok
}

// VertexTag returns the subsystem tag of key, or ErrUnknownVertex.
func (s *Store) VertexTag(key string) (Tag, error) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()

	tag, ok := s.vertices[key]
	if !ok {
		return "", ErrUnknownVertex
	}

	return tag, nil
}

// PointOf returns the canonicalised point backing key, or ErrUnknownVertex.
func (s *Store) PointOf(key string) (geokey.Point, error) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()

	pt, ok := s.points[key]
	if !ok {
		return geokey.Point{}, ErrUnknownVertex
	}

	return pt, nil
}

// NeighborsRaw returns every edge incident to key, unfiltered by any access
// policy. Returns ErrUnknownVertex if key is not a vertex.
func (s *Store) NeighborsRaw(key string) ([]Neighbor, error) {
	if !s.HasVertex(key) {
		return nil, ErrUnknownVertex
	}

	s.muEdge.RLock()
	defer s.muEdge.RUnlock()

	out := make([]Neighbor, 0, len(s.adjacency[key]))
	for nk, rec := range s.adjacency[key] {
		out = append(out, Neighbor{Key: nk, Tag: rec.tag, Weight: rec.weight})
	}

	return out, nil
}

// EdgeTag returns the subsystem tag of the unordered edge {u,v}, or
// ErrUnknownEdge. This error is internal (§7) and must never reach a user
// directly; callers translate it into whichever taxonomy entry applies.
func (s *Store) EdgeTag(u, v string) (Tag, error) {
	s.muEdge.RLock()
	defer s.muEdge.RUnlock()

	rec, ok := s.adjacency[u][v]
	if !ok {
		return "", ErrUnknownEdge
	}

	return rec.tag, nil
}

// AllVertexTags returns a snapshot copy of every vertex's tag, keyed by
// canonical point key. Intended for callers (such as the filtered adjacency
// builder) that must enumerate the full vertex set once; ordinary queries
// should prefer VertexTag/HasVertex.
func (s *Store) AllVertexTags() map[string]Tag {
	s.muVert.RLock()
	defer s.muVert.RUnlock()

	out := make(map[string]Tag, len(s.vertices))
	for k, v := range s.vertices {
		out[k] = v
	}

	return out
}

// VertexCount returns the number of vertices in the store.
func (s *Store) VertexCount() int {
	s.muVert.RLock()
	defer s.muVert.RUnlock()

	return len(s.vertices)
}

// Stats is an O(V+E) read-only summary of the store's contents: total and
// per-tag vertex/edge counts, mirroring the teacher library's
// core.Graph.Stats() accessor.
type Stats struct {
	VertexCount    int
	EdgeCount      int
	VertexCountA   int
	VertexCountB   int
	EdgeCountA     int
	EdgeCountB     int
}

// Stats computes a Stats snapshot. Locks are never held simultaneously,
// matching the teacher's "never hold both locks at once" discipline.
func (s *Store) Stats() Stats {
	var st Stats

	s.muVert.RLock()
	st.VertexCount = len(s.vertices)
	for _, tag := range s.vertices {
		switch tag {
		case TagA:
			st.VertexCountA++
		case TagB:
			st.VertexCountB++
		}
	}
	s.muVert.RUnlock()

	s.muEdge.RLock()
	seen := make(map[string]struct{})
	for u, neighbors := range s.adjacency {
		for v, rec := range neighbors {
			key := fmt.Sprintf("%s\x00%s", min2(u, v), max2(u, v))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			st.EdgeCount++
			switch rec.tag {
			case TagA:
				st.EdgeCountA++
			case TagB:
				st.EdgeCountB++
			}
		}
	}
	s.muEdge.RUnlock()

	return st
}

func min2(a, b string) string {
	if a <= b {
		return a
	}

	return b
}

func max2(a, b string) string {
	if a >= b {
		return a
	}

	return b
}
