package astar

import (
	"container/heap"

	"github.com/jpareu/cadimo/geokey"
)

// Search runs constrained A* from src to dst over adj, using points to
// compute the Euclidean heuristic and ids to translate traversed edges to
// tramo ids for the forbidden check. forbidden is read-only here; callers
// (the segment planner and its forward-path controller) own all mutation.
//
// src == dst returns a single-element path with zero nodes explored. A nil
// or empty forbidden set behaves like "nothing forbidden".
//
// Complexity: O((V+E) log V), same bound as the teacher's Dijkstra, since
// the heuristic only reorders expansion and never revisits a finalized
// vertex.
func Search(adj adjacencySource, points PointSource, src, dst string, forbidden map[int]struct{}, ids EdgeIDLookup) (Result, error) {
	if src == "" || dst == "" {
		return Result{}, ErrEmptyEndpoint
	}
	if src == dst {
		return Result{Path: []string{src}, Length: 0, NodesExplored: 0}, nil
	}

	dstPoint, err := points.PointOf(dst)
	if err != nil {
		return Result{}, err
	}

	r := &runner{
		adj:       adj,
		points:    points,
		dst:       dst,
		dstPoint:  dstPoint,
		forbidden: forbidden,
		ids:       ids,
		gScore:    make(map[string]float64),
		prev:      make(map[string]string),
		closed:    make(map[string]bool),
	}
	r.init(src)

	return r.run(src, dst)
}

// runner holds the mutable state of one A* execution. It never mutates adj
// or forbidden.
type runner struct {
	adj       adjacencySource
	points    PointSource
	dst       string
	dstPoint  geokey.Point
	forbidden map[int]struct{}
	ids       EdgeIDLookup

	gScore map[string]float64
	prev   map[string]string
	closed map[string]bool

	open openQueue
	seq  int

	nodesExplored int
}

// push enqueues key with the given g score, stamping it with the next
// insertion sequence number for FIFO tie-breaking.
func (r *runner) push(key string, g float64) {
	heap.Push(&r.open, &item{key: key, f: g + r.h(key), g: g, seq: r.seq})
	r.seq++
}

func (r *runner) init(src string) {
	r.gScore[src] = 0
	heap.Init(&r.open)
	r.push(src, 0)
}

// h is the Euclidean-distance heuristic to the fixed destination.
func (r *runner) h(key string) float64 {
	pt, err := r.points.PointOf(key)
	if err != nil {
		return 0
	}

	return geokey.Distance(pt, r.dstPoint)
}

func (r *runner) run(src, dst string) (Result, error) {
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(*item)
		if r.closed[cur.key] {
			continue
		}
		if cur.g > r.gScore[cur.key] {
			// Stale entry from before a better g was recorded.
			continue
		}
		r.closed[cur.key] = true

		if cur.key == dst {
			return r.reconstruct(src, dst), nil
		}

		r.nodesExplored++
		r.relax(cur.key)
	}

	return Result{}, ErrNoPath
}

func (r *runner) relax(u string) {
	for _, n := range r.adj.Neighbors(u) {
		if r.closed[n.Key] {
			continue
		}
		if r.forbidden != nil {
			if id, err := r.ids.IDOf(u, n.Key); err == nil {
				if _, blocked := r.forbidden[id]; blocked {
					continue
				}
			}
		}

		newG := r.gScore[u] + n.Weight
		if existing, ok := r.gScore[n.Key]; ok && newG >= existing {
			continue
		}

		r.gScore[n.Key] = newG
		r.prev[n.Key] = u
		r.push(n.Key, newG)
	}
}

func (r *runner) reconstruct(src, dst string) Result {
	path := []string{dst}
	cur := dst
	for cur != src {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Length: r.gScore[dst], NodesExplored: r.nodesExplored}
}
