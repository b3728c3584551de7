// Package routeerr defines the cross-component error taxonomy of §7: the
// structured failure kinds that cross a component boundary and therefore
// need a stable, inspectable shape rather than a bare sentinel. Each type
// implements error and is meant to be matched with errors.As, not string
// comparison — the same discipline the teacher library documents for its
// own sentinel errors (see builder/errors.go's "use errors.Is, never
// string-compare" policy), generalized here to carry payload fields.
package routeerr
