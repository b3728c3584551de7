package cable_test

import (
	"strings"
	"testing"

	"github.com/jpareu/cadimo/cable"
	"github.com/jpareu/cadimo/graphstore"
	"github.com/jpareu/cadimo/routeerr"
	"github.com/stretchr/testify/require"
)

func TestPermitted(t *testing.T) {
	require.Equal(t, map[graphstore.Tag]struct{}{graphstore.TagA: {}}, cable.Permitted(cable.ClassA))
	require.Equal(t, map[graphstore.Tag]struct{}{graphstore.TagB: {}}, cable.Permitted(cable.ClassB))
	require.Equal(t, map[graphstore.Tag]struct{}{graphstore.TagA: {}, graphstore.TagB: {}}, cable.Permitted(cable.ClassC))
}

func TestCompatibleCables(t *testing.T) {
	require.Equal(t, []cable.Class{cable.ClassA, cable.ClassC}, cable.CompatibleCables(graphstore.TagA))
	require.Equal(t, []cable.Class{cable.ClassB, cable.ClassC}, cable.CompatibleCables(graphstore.TagB))
}

func s1Store(t *testing.T) *graphstore.Store {
	t.Helper()
	doc := `{
	  "nodes": {
	    "(0.000, 0.000, 0.000)": {"sys": "A"},
	    "(3.000, 0.000, 0.000)": {"sys": "B"}
	  },
	  "edges": [{"from": "(0.000, 0.000, 0.000)", "to": "(3.000, 0.000, 0.000)", "sys": "B"}]
	}`
	s, err := graphstore.Load(strings.NewReader(doc))
	require.NoError(t, err)

	return s
}

func TestValidateEndpoint_OK(t *testing.T) {
	s := s1Store(t)
	err := cable.ValidateEndpoint(s, "(0.000, 0.000, 0.000)", routeerr.WhichSource, cable.Permitted(cable.ClassA))
	require.NoError(t, err)
}

func TestValidateEndpoint_NotInGraph(t *testing.T) {
	s := s1Store(t)
	err := cable.ValidateEndpoint(s, "(9.000, 9.000, 9.000)", routeerr.WhichDest, cable.Permitted(cable.ClassA))
	var notFound *routeerr.EndpointNotInGraph
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, routeerr.WhichDest, notFound.Which)
}

func TestValidateEndpoint_ForbiddenSystem(t *testing.T) {
	s := s1Store(t)
	err := cable.ValidateEndpoint(s, "(3.000, 0.000, 0.000)", routeerr.WhichDest, cable.Permitted(cable.ClassA))
	var forbidden *routeerr.EndpointInForbiddenSystem
	require.ErrorAs(t, err, &forbidden)
	require.Equal(t, "B", forbidden.ActualTag)
	require.Equal(t, []string{"A"}, forbidden.Permitted)
}
