// Package graphstore holds the tagged, immutable-after-construction vertex
// and edge catalog (component C2): every vertex and edge carries exactly
// one subsystem tag ("A" or "B"), edges are undirected and unique per
// unordered pair, and edge weight is the Euclidean distance between
// endpoints computed from their canonical numeric triples.
//
// Store is built once per process run (via Load) and is safe for
// concurrent readers thereafter, mirroring the teacher library's
// mutex-guarded, read-after-construction core.Graph: a muVert lock guards
// the vertex tag table, a separate muEdge lock guards the edge catalog and
// adjacency index, and the two are never held at once.
package graphstore
