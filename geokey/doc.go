// Package geokey canonicalises 3D points into a stable textual key and back.
//
// A Point is externally presented to three decimal places. Internally it is
// rounded half-to-even to three fractional digits per component and stored
// together with the canonical key that exactly reproduces that rounding:
// "(x.xxx, y.yyy, z.zzz)", parentheses included, comma-space separated.
// Canonical key equality is vertex identity for the rest of this module —
// callers must never fall back to near-equality on the raw floats.
package geokey
