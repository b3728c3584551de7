package geokey_test

import (
	"math"
	"testing"

	"github.com/jpareu/cadimo/geokey"
	"github.com/stretchr/testify/require"
)

func TestCanonicalise_Basic(t *testing.T) {
	p, err := geokey.Canonicalise(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, "(1.000, 2.000, 3.000)", p.Key)
	require.Equal(t, 1.0, p.X)
	require.Equal(t, 2.0, p.Y)
	require.Equal(t, 3.0, p.Z)
}

func TestCanonicalise_Negative(t *testing.T) {
	p, err := geokey.Canonicalise(-1.5, 0, -2.25)
	require.NoError(t, err)
	require.Equal(t, "(-1.500, 0.000, -2.250)", p.Key)
}

func TestCanonicalise_RoundsFourDecimals(t *testing.T) {
	p, err := geokey.Canonicalise(1.2345, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "(1.234, 0.000, 0.000)", p.Key)
}

func TestCanonicalise_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := geokey.Canonicalise(v, 0, 0)
		require.ErrorIs(t, err, geokey.ErrBadCoordinate)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	p, err := geokey.Canonicalise(3.14159, -2.71828, 0)
	require.NoError(t, err)

	x, y, z, err := geokey.Parse(p.Key)
	require.NoError(t, err)
	require.Equal(t, p.X, x)
	require.Equal(t, p.Y, y)
	require.Equal(t, p.Z, z)
}

func TestParse_Idempotence(t *testing.T) {
	// Canonical-key idempotence: parse(canonicalise(x).key) == canonicalise(x).rounded.
	inputs := [][3]float64{
		{0, 0, 0},
		{1.0005, -1.0005, 2.5},
		{-0.0001, 123.4567, 9.9995},
	}
	for _, in := range inputs {
		p, err := geokey.Canonicalise(in[0], in[1], in[2])
		require.NoError(t, err)

		x, y, z, err := geokey.Parse(p.Key)
		require.NoError(t, err)
		require.Equal(t, p.X, x)
		require.Equal(t, p.Y, y)
		require.Equal(t, p.Z, z)

		// Canonicalising an already-canonical key returns it unchanged.
		p2, err := geokey.Canonicalise(x, y, z)
		require.NoError(t, err)
		require.Equal(t, p.Key, p2.Key)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"(1, 2, 3)",
		"(1.00, 2.00, 3.00)",
		"1.000, 2.000, 3.000",
		"(1.000,2.000,3.000)",
		"(1.000, 2.000, 3.000",
	}
	for _, c := range cases {
		_, _, _, err := geokey.Parse(c)
		require.ErrorIs(t, err, geokey.ErrMalformedKey, "input %q", c)
	}
}

func TestEuclideanDistance(t *testing.T) {
	a, _ := geokey.Canonicalise(0, 0, 0)
	b, _ := geokey.Canonicalise(3, 4, 0)
	require.InDelta(t, 5.0, geokey.Distance(a, b), 1e-9)
}
