// Package tramo holds the bidirectional edge-identifier ("tramo id") table:
// an injective, total mapping between unordered edges (by canonical point
// key pair) and the integer ids an external table assigns them. The table
// is read-only after construction, mirroring the rest of this module's
// load-once-then-read data.
package tramo
