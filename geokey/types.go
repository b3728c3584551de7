package geokey

import "errors"

// ErrBadCoordinate indicates a non-finite (NaN or ±Inf) coordinate component.
var ErrBadCoordinate = errors.New("geokey: non-finite coordinate")

// ErrMalformedKey indicates a string that does not match the canonical
// "(x.xxx, y.yyy, z.zzz)" shape.
var ErrMalformedKey = errors.New("geokey: malformed canonical key")

// Point is a canonicalised 3D position: the rounded numeric triple plus the
// exact textual key that round-trips it. Key is vertex identity; X/Y/Z are
// kept alongside it so hot loops (edge-weight computation) never have to
// re-parse the string.
type Point struct {
	Key  string
	X, Y, Z float64
}
