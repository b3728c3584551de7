package graphstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jpareu/cadimo/geokey"
)

// Tag is a subsystem tag drawn from the closed set {"A", "B"}.
type Tag string

const (
	TagA Tag = "A"
	TagB Tag = "B"
)

// Valid reports whether t is one of the two permitted subsystem tags.
func (t Tag) Valid() bool { return t == TagA || t == TagB }

// Sentinel errors. UnknownEdge is internal and must never be surfaced to a
// user (§7); UnknownVertex is returned by per-key queries on an absent key.
var (
	ErrUnknownVertex = errors.New("graphstore: unknown vertex")
	ErrUnknownEdge   = errors.New("graphstore: unknown edge")
)

// MalformedError reports a §6.1 document violation, naming the offending
// element.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("graphstore: malformed graph: %s", e.Reason)
}

func malformed(format string, args ...interface{}) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

// edgeRecord is the internal representation of one undirected, tagged edge.
type edgeRecord struct {
	u, v   string
	tag    Tag
	weight float64
}

// Neighbor is one entry of an unfiltered adjacency listing: the key on the
// other end of an incident edge, that edge's tag, and its weight.
type Neighbor struct {
	Key    string
	Tag    Tag
	Weight float64
}

// Store is the tagged graph store (C2). The zero value is not usable;
// construct with New or Load.
type Store struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertices map[string]Tag
	points   map[string]geokey.Point

	// adjacency[k][neighborKey] = edgeRecord, stored from both endpoints'
	// perspective so neighbours_raw is O(1) amortised per neighbour.
	adjacency map[string]map[string]edgeRecord
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		vertices:  make(map[string]Tag),
		points:    make(map[string]geokey.Point),
		adjacency: make(map[string]map[string]edgeRecord),
	}
}
