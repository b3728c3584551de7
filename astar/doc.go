// Package astar implements the constrained shortest-path engine (C5): A*
// search over a filtered adjacency with a forbidden-edge-id predicate.
//
// The shape is adapted from the teacher library's dijkstra package: a
// mutable runner struct and a container/heap min-heap using the same lazy-decrease-key strategy (push
// duplicates, skip stale pops via a visited set). The heuristic term turns
// Dijkstra's breadth-first cost ordering into a goal-directed one; the
// forbidden-id skip during neighbour expansion is the one addition needed
// to host a transient no-go edge list across calls.
package astar
