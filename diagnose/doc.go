// Package diagnose implements the Endpoint Diagnoser (C8): given a source
// and destination point and a pool of candidate graph files, it answers
// reachability-by-tag questions without ever running a pathfinding search
// itself.
//
// Grounded on the teacher's core.Graph.Stats() method: a read-only,
// O(graph size) summary query over a loaded store, generalized here from
// one graph to a pool of them.
package diagnose
