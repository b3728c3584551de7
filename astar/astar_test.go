package astar_test

import (
	"container/heap"
	"math"
	"strings"
	"testing"

	"github.com/jpareu/cadimo/adjacency"
	"github.com/jpareu/cadimo/astar"
	"github.com/jpareu/cadimo/cable"
	"github.com/jpareu/cadimo/graphstore"
	"github.com/jpareu/cadimo/tramo"
	"github.com/stretchr/testify/require"
)

// --- S1/S3-style fixtures ---------------------------------------------

const s1Doc = `{
  "nodes": {
    "(0.000, 0.000, 0.000)": {"sys": "A"},
    "(1.000, 0.000, 0.000)": {"sys": "A"},
    "(2.000, 0.000, 0.000)": {"sys": "A"}
  },
  "edges": [
    {"from": "(0.000, 0.000, 0.000)", "to": "(1.000, 0.000, 0.000)", "sys": "A"},
    {"from": "(1.000, 0.000, 0.000)", "to": "(2.000, 0.000, 0.000)", "sys": "A"}
  ]
}`

func load(t *testing.T, doc string) *graphstore.Store {
	t.Helper()
	s, err := graphstore.Load(strings.NewReader(doc))
	require.NoError(t, err)

	return s
}

func TestSearch_S1Direct(t *testing.T) {
	s := load(t, s1Doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassA))

	res, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)", nil, tramo.New())
	require.NoError(t, err)
	require.Equal(t, []string{"(0.000, 0.000, 0.000)", "(1.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)"}, res.Path)
	require.InDelta(t, 2.0, res.Length, 1e-9)
	require.Equal(t, 2, res.NodesExplored)
}

func TestSearch_SameSrcDst(t *testing.T) {
	s := load(t, s1Doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassA))

	res, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(0.000, 0.000, 0.000)", nil, tramo.New())
	require.NoError(t, err)
	require.Equal(t, []string{"(0.000, 0.000, 0.000)"}, res.Path)
	require.Equal(t, 0.0, res.Length)
	require.Equal(t, 0, res.NodesExplored)
}

func TestSearch_NoPath_DisconnectedCable(t *testing.T) {
	doc := `{
	  "nodes": {
	    "(0.000, 0.000, 0.000)": {"sys": "A"},
	    "(1.000, 0.000, 0.000)": {"sys": "B"}
	  },
	  "edges": []
	}`
	s := load(t, doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassC))

	_, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(1.000, 0.000, 0.000)", nil, tramo.New())
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSearch_ForbiddenEdgeRerouted(t *testing.T) {
	// Diamond: 0-1-3 and 0-2-3, equal length. Forbidding the 0-1 tramo id
	// must force the search through 0-2-3.
	doc := `{
	  "nodes": {
	    "(0.000, 0.000, 0.000)": {"sys": "A"},
	    "(1.000, 1.000, 0.000)": {"sys": "A"},
	    "(2.000, -1.000, 0.000)": {"sys": "A"},
	    "(3.000, 0.000, 0.000)": {"sys": "A"}
	  },
	  "edges": [
	    {"from": "(0.000, 0.000, 0.000)", "to": "(1.000, 1.000, 0.000)", "sys": "A"},
	    {"from": "(1.000, 1.000, 0.000)", "to": "(3.000, 0.000, 0.000)", "sys": "A"},
	    {"from": "(0.000, 0.000, 0.000)", "to": "(2.000, -1.000, 0.000)", "sys": "A"},
	    {"from": "(2.000, -1.000, 0.000)", "to": "(3.000, 0.000, 0.000)", "sys": "A"}
	  ]
	}`
	s := load(t, doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassA))

	tbl := tramo.New()
	tbl.Add("(0.000, 0.000, 0.000)", "(1.000, 1.000, 0.000)", 1)
	tbl.Add("(1.000, 1.000, 0.000)", "(3.000, 0.000, 0.000)", 2)
	tbl.Add("(0.000, 0.000, 0.000)", "(2.000, -1.000, 0.000)", 3)
	tbl.Add("(2.000, -1.000, 0.000)", "(3.000, 0.000, 0.000)", 4)

	forbidden := map[int]struct{}{1: {}}
	res, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(3.000, 0.000, 0.000)", forbidden, tbl)
	require.NoError(t, err)
	require.Contains(t, res.Path, "(2.000, -1.000, 0.000)")
	require.NotContains(t, res.Path, "(1.000, 1.000, 0.000)")
}

func TestSearch_ForbiddenSetNeverMutated(t *testing.T) {
	s := load(t, s1Doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassA))
	forbidden := map[int]struct{}{99: {}}
	before := len(forbidden)

	_, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)", forbidden, tramo.New())
	require.NoError(t, err)
	require.Len(t, forbidden, before)
}

func TestSearch_Determinism(t *testing.T) {
	s := load(t, s1Doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassA))

	res1, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)", nil, tramo.New())
	require.NoError(t, err)
	res2, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)", nil, tramo.New())
	require.NoError(t, err)
	require.Equal(t, res1, res2)
}

// --- Optimality against a reference Dijkstra (invariant 4) -------------

// referenceDijkstra is a minimal, independently written Dijkstra over the
// same filtered-adjacency shape, used only to cross-check astar.Search's
// optimality; it shares no code with the production engine.
func referenceDijkstra(adj *adjacency.Adjacency, s *graphstore.Store, all map[string]graphstore.Tag, src, dst string, forbidden map[int]struct{}, ids *tramo.Table) (float64, bool) {
	dist := map[string]float64{src: 0}
	visited := map[string]bool{}
	pq := &refPQ{{key: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(refItem)
		if visited[top.key] {
			continue
		}
		visited[top.key] = true
		if top.key == dst {
			return top.dist, true
		}
		for _, n := range adj.Neighbors(top.key) {
			if id, err := ids.IDOf(top.key, n.Key); err == nil {
				if _, blocked := forbidden[id]; blocked {
					continue
				}
			}
			nd := top.dist + n.Weight
			if d, ok := dist[n.Key]; !ok || nd < d {
				dist[n.Key] = nd
				heap.Push(pq, refItem{key: n.Key, dist: nd})
			}
		}
	}

	return 0, false
}

type refItem struct {
	key  string
	dist float64
}

type refPQ []refItem

func (q refPQ) Len() int            { return len(q) }
func (q refPQ) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q refPQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *refPQ) Push(x interface{}) { *q = append(*q, x.(refItem)) }
func (q *refPQ) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

func TestSearch_MatchesReferenceDijkstra(t *testing.T) {
	doc := `{
	  "nodes": {
	    "(0.000, 0.000, 0.000)": {"sys": "A"},
	    "(1.000, 0.000, 0.000)": {"sys": "A"},
	    "(1.000, 1.000, 0.000)": {"sys": "A"},
	    "(2.000, 0.000, 0.000)": {"sys": "A"},
	    "(2.000, 2.000, 0.000)": {"sys": "A"}
	  },
	  "edges": [
	    {"from": "(0.000, 0.000, 0.000)", "to": "(1.000, 0.000, 0.000)", "sys": "A"},
	    {"from": "(1.000, 0.000, 0.000)", "to": "(2.000, 0.000, 0.000)", "sys": "A"},
	    {"from": "(0.000, 0.000, 0.000)", "to": "(1.000, 1.000, 0.000)", "sys": "A"},
	    {"from": "(1.000, 1.000, 0.000)", "to": "(2.000, 2.000, 0.000)", "sys": "A"},
	    {"from": "(2.000, 2.000, 0.000)", "to": "(2.000, 0.000, 0.000)", "sys": "A"}
	  ]
	}`
	s := load(t, doc)
	adj := adjacency.Build(s, cable.Permitted(cable.ClassA))
	all := s.AllVertexTags()

	want, ok := referenceDijkstra(adj, s, all, "(0.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)", nil, tramo.New())
	require.True(t, ok)

	got, err := astar.Search(adj, s, "(0.000, 0.000, 0.000)", "(2.000, 0.000, 0.000)", nil, tramo.New())
	require.NoError(t, err)
	require.InDelta(t, want, got.Length, 1e-9)
	require.True(t, math.Abs(want-got.Length) < 1e-9)
}
