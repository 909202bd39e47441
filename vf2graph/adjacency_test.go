package vf2graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vf2/vf2graph"
)

func TestFromAdjacency_Directed(t *testing.T) {
	t.Parallel()

	// 0 -> 1 -> 2
	adj := [][]int{{1}, {2}, {}}
	g, err := vf2graph.FromAdjacency(true, adj)
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.True(t, g.IsDirected())
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))
	require.ElementsMatch(t, []int{1}, g.OutNeighbors(0))
	require.ElementsMatch(t, []int{0}, g.InNeighbors(1))
}

func TestFromAdjacency_Undirected(t *testing.T) {
	t.Parallel()

	// triangle 0-1-2
	adj := [][]int{{1, 2}, {0, 2}, {0, 1}}
	g, err := vf2graph.FromAdjacency(false, adj)
	require.NoError(t, err)
	require.False(t, g.IsDirected())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.ElementsMatch(t, g.OutNeighbors(0), g.InNeighbors(0))
}

func TestFromAdjacency_NilRejected(t *testing.T) {
	t.Parallel()

	_, err := vf2graph.FromAdjacency(false, nil)
	require.ErrorIs(t, err, vf2graph.ErrNilGraph)
}

func TestFromAdjacency_OutOfRange(t *testing.T) {
	t.Parallel()

	_, err := vf2graph.FromAdjacency(false, [][]int{{5}})
	require.ErrorIs(t, err, vf2graph.ErrNodeOutOfRange)
}

func TestFromLabeledAdjacency_Labels(t *testing.T) {
	t.Parallel()

	adj := [][]int{{1}, {}}
	nodeLabels := []interface{}{"A", "B"}
	edgeLabels := map[[2]int]interface{}{{0, 1}: "likes"}
	g, err := vf2graph.FromLabeledAdjacency(true, adj, nodeLabels, edgeLabels)
	require.NoError(t, err)
	require.Equal(t, "A", g.NodeLabel(0))
	require.Equal(t, "B", g.NodeLabel(1))
	require.Equal(t, "likes", g.EdgeLabel(0, 1))
}

func TestFromLabeledAdjacency_NodeCountMismatch(t *testing.T) {
	t.Parallel()

	_, err := vf2graph.FromLabeledAdjacency(false, [][]int{{}, {}}, []interface{}{"only-one"}, nil)
	require.ErrorIs(t, err, vf2graph.ErrNodeCountMismatch)
}
