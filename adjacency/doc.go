// Package adjacency builds the filtered adjacency view (C4): given a tagged
// graphstore.Store and a permitted-tag set, it retains exactly the edges
// whose tag is permitted AND both of whose endpoints are permitted, and
// indexes the survivors symmetrically by vertex key.
package adjacency
