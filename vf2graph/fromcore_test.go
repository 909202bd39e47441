package vf2graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vf2/core"
	"github.com/katalvlaran/vf2/vf2graph"
)

func TestFromCore_Undirected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 2)
	require.NoError(t, err)

	cg, err := vf2graph.FromCore(g)
	require.NoError(t, err)
	require.Equal(t, 3, cg.NodeCount())
	require.False(t, cg.IsDirected())

	ia, _ := cg.Index("a")
	ib, _ := cg.Index("b")
	ic, _ := cg.Index("c")
	require.True(t, cg.HasEdge(ia, ib))
	require.True(t, cg.HasEdge(ib, ia))
	require.True(t, cg.HasEdge(ib, ic))
	require.False(t, cg.HasEdge(ia, ic))
	require.Equal(t, "a", cg.VertexID(ia))
}

func TestFromCore_Directed(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	_, err := g.AddEdge("x", "y", 5)
	require.NoError(t, err)

	cg, err := vf2graph.FromCore(g)
	require.NoError(t, err)
	require.True(t, cg.IsDirected())

	ix, _ := cg.Index("x")
	iy, _ := cg.Index("y")
	require.True(t, cg.HasEdge(ix, iy))
	require.False(t, cg.HasEdge(iy, ix))
	require.EqualValues(t, int64(5), cg.EdgeLabel(ix, iy))
}

func TestFromCore_NodeLabelFromMetadata(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("n0"))
	vmap := g.VerticesMap()
	vmap["n0"].Metadata = map[string]interface{}{"label": "carbon"}

	cg, err := vf2graph.FromCore(g)
	require.NoError(t, err)
	i, _ := cg.Index("n0")
	require.Equal(t, "carbon", cg.NodeLabel(i))
}

func TestFromCore_NilGraph(t *testing.T) {
	t.Parallel()

	_, err := vf2graph.FromCore(nil)
	require.ErrorIs(t, err, vf2graph.ErrNilGraph)
}
