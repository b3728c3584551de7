package geokey

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// keyPattern matches exactly "(x.xxx, y.yyy, z.zzz)" with an optional leading
// '-' on each component and exactly three fractional digits.
var keyPattern = regexp.MustCompile(`^\((-?\d+\.\d{3}), (-?\d+\.\d{3}), (-?\d+\.\d{3})\)$`)

// lenientPattern matches "(x, y, z)" at any decimal precision (including
// none). It exists only for ParseLenient, used at file-ingest boundaries
// that may present four-decimal (or otherwise non-canonical) input; the
// result must still be passed through Canonicalise before use as identity.
var lenientPattern = regexp.MustCompile(`^\((-?\d+(?:\.\d+)?), (-?\d+(?:\.\d+)?), (-?\d+(?:\.\d+)?)\)$`)

// Canonicalise rounds x, y, z half-to-even to three decimals and returns the
// resulting Point, including its canonical textual key. Non-finite inputs
// (NaN, ±Inf) fail with ErrBadCoordinate.
func Canonicalise(x, y, z float64) (Point, error) {
	if !finite(x) || !finite(y) || !finite(z) {
		return Point{}, ErrBadCoordinate
	}

	rx, kx := roundComponent(x)
	ry, ky := roundComponent(y)
	rz, kz := roundComponent(z)

	return Point{
		Key: "(" + kx + ", " + ky + ", " + kz + ")",
		X:   rx,
		Y:   ry,
		Z:   rz,
	}, nil
}

// Parse rejects any string not matching the canonical shape and otherwise
// returns the rounded numeric triple it encodes.
func Parse(key string) (x, y, z float64, err error) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	x, _ = strconv.ParseFloat(m[1], 64)
	y, _ = strconv.ParseFloat(m[2], 64)
	z, _ = strconv.ParseFloat(m[3], 64)

	return x, y, z, nil
}

// ParseLenient parses a "(x, y, z)" string at any decimal precision,
// rejecting only strings that don't match that shape at all. Callers must
// still canonicalise the result (via Canonicalise) to obtain identity; this
// function exists solely so ingest of non-canonical file input (e.g. a
// four-decimal coordinate) can be rounded down to three decimals instead of
// rejected outright.
func ParseLenient(raw string) (x, y, z float64, err error) {
	m := lenientPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}
	x, _ = strconv.ParseFloat(m[1], 64)
	y, _ = strconv.ParseFloat(m[2], 64)
	z, _ = strconv.ParseFloat(m[3], 64)

	return x, y, z, nil
}

// roundComponent rounds v half-to-even to three decimals and returns both
// the rounded value and its exact three-fractional-digit text. Formatting
// and rounding share the same primitive (strconv's correctly-rounded
// fixed-point conversion) so the two can never disagree on a tie.
func roundComponent(v float64) (float64, string) {
	text := strconv.FormatFloat(v, 'f', 3, 64)
	rounded, _ := strconv.ParseFloat(text, 64)

	return rounded, text
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Distance returns the Euclidean distance between two canonicalised points,
// computed from their numeric triples, never by re-parsing a key.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

