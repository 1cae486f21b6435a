package osmload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/osmload"
	"github.com/katalvlaran/roadsearch/roadnet"
)

func snapFixture(t *testing.T) *roadnet.Graph {
	t.Helper()
	g := roadnet.NewGraph()
	require.NoError(t, g.AddNode(10, 52.5200, 13.4050)) // Berlin
	require.NoError(t, g.AddNode(20, 48.8566, 2.3522))  // Paris
	require.NoError(t, g.AddNode(30, 51.5074, -0.1278)) // London

	return g
}

func TestSnapper_Nearest(t *testing.T) {
	s, err := osmload.NewSnapper(snapFixture(t))
	require.NoError(t, err)

	cases := []struct {
		lat, lon float64
		want     int64
	}{
		{52.5, 13.4, 10},    // just off Berlin
		{48.9, 2.4, 20},     // just off Paris
		{51.5, -0.1, 30},    // just off London
		{52.5200, 13.4050, 10}, // exact hit
	}
	for _, c := range cases {
		id, err := s.Nearest(c.lat, c.lon)
		require.NoError(t, err)
		assert.Equal(t, c.want, id, "query (%.4f, %.4f)", c.lat, c.lon)
	}
}

func TestSnapper_EmptyGraph(t *testing.T) {
	_, err := osmload.NewSnapper(roadnet.NewGraph())
	assert.ErrorIs(t, err, osmload.ErrEmptyGraph)
}
