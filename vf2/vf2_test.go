package vf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vf2/builder"
	"github.com/katalvlaran/vf2/vf2"
	"github.com/katalvlaran/vf2/vf2graph"
)

func adj(t *testing.T, directed bool, rows ...[]int) vf2graph.Graph {
	t.Helper()
	if rows == nil {
		rows = [][]int{}
	}
	g, err := vf2graph.FromAdjacency(directed, rows)
	require.NoError(t, err)
	return g
}

func labeled(t *testing.T, directed bool, labels []interface{}, rows ...[]int) vf2graph.Graph {
	t.Helper()
	g, err := vf2graph.FromLabeledAdjacency(directed, rows, labels, nil)
	require.NoError(t, err)
	return g
}

// S1: path in path.
func TestScenario_S1_PathInPath(t *testing.T) {
	query := adj(t, true, []int{1}, []int{})
	data := adj(t, true, []int{1}, []int{2}, []int{})

	got := vf2.SubgraphIsomorphisms(query, data).All()
	want := vf2.MappingSet{{0, 1}, {1, 2}}
	require.Equal(t, want, got)
}

// S2: induced is stricter.
func TestScenario_S2_InducedIsStricter(t *testing.T) {
	query := adj(t, true, []int{}, []int{})
	data := adj(t, true, []int{1}, []int{})

	sub := vf2.SubgraphIsomorphisms(query, data).All()
	require.ElementsMatch(t, vf2.MappingSet{{0, 1}, {1, 0}}, sub)

	induced := vf2.InducedSubgraphIsomorphisms(query, data).All()
	require.Empty(t, induced)
}

// S3: triangle isomorphism.
func TestScenario_S3_TriangleIso(t *testing.T) {
	query := adj(t, true, []int{1}, []int{2}, []int{0})
	data := adj(t, true, []int{1}, []int{2}, []int{0})

	got := vf2.Isomorphisms(query, data).All()
	want := vf2.MappingSet{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	require.Equal(t, want, got)
}

// S4: self-loop.
func TestScenario_S4_SelfLoop(t *testing.T) {
	query := adj(t, true, []int{0})
	data := adj(t, true, []int{}, []int{1})

	got := vf2.SubgraphIsomorphisms(query, data).All()
	require.Equal(t, vf2.MappingSet{{1}}, got)
}

// S5: labels.
func TestScenario_S5_Labels(t *testing.T) {
	query := labeled(t, true, []interface{}{"A"}, []int{})
	data := labeled(t, true, []interface{}{"A", "B", "A"}, []int{}, []int{}, []int{})

	got := vf2.SubgraphIsomorphisms(query, data).All()
	require.Equal(t, vf2.MappingSet{{0}, {2}}, got)
}

// S6: disconnected query.
func TestScenario_S6_DisconnectedQuery(t *testing.T) {
	query := adj(t, true, []int{}, []int{})
	data := adj(t, true, []int{1}, []int{2}, []int{0}) // directed triangle

	got := vf2.SubgraphIsomorphisms(query, data).All()
	want := vf2.MappingSet{
		{0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1},
	}
	require.Equal(t, want, got)
}

func TestEmptyQuery_EmitsOneEmptyMapping(t *testing.T) {
	query := adj(t, true)
	data := adj(t, true, []int{1}, []int{})

	for _, b := range []*vf2.Builder{
		vf2.SubgraphIsomorphisms(query, data),
		vf2.InducedSubgraphIsomorphisms(query, data),
	} {
		got := b.All()
		require.Equal(t, vf2.MappingSet{{}}, got)
	}
}

func TestIsomorphisms_SizeMismatch_YieldsNoMatches(t *testing.T) {
	query := adj(t, true, []int{}, []int{})
	data := adj(t, true, []int{})

	got := vf2.Isomorphisms(query, data).All()
	require.Empty(t, got)
}

func TestDirectednessMismatch_Panics(t *testing.T) {
	query := adj(t, true, []int{})
	data := adj(t, false, []int{})

	require.Panics(t, func() {
		vf2.SubgraphIsomorphisms(query, data)
	})
}

func TestNilGraph_Panics(t *testing.T) {
	data := adj(t, true, []int{})

	require.Panics(t, func() {
		vf2.SubgraphIsomorphisms(nil, data)
	})
}

func TestSelfConsistency_FirstAllIter(t *testing.T) {
	query := adj(t, true, []int{1}, []int{})
	data := adj(t, true, []int{1}, []int{2}, []int{})

	b := vf2.SubgraphIsomorphisms(query, data)
	first, ok := b.First()
	require.True(t, ok)

	all := b.All()
	require.Equal(t, first, all[0])

	it := b.Iter()
	var drained vf2.MappingSet
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		drained = append(drained, m)
	}
	require.Equal(t, all, drained)
}

func TestNextRef_ViewInvalidatedByNextCall(t *testing.T) {
	query := adj(t, true, []int{1}, []int{})
	data := adj(t, true, []int{1}, []int{2}, []int{})

	it := vf2.SubgraphIsomorphisms(query, data).Iter()
	m1, ok := it.NextRef()
	require.True(t, ok)
	first := append(vf2.Mapping(nil), m1...)

	_, ok = it.NextRef()
	require.True(t, ok)
	require.NotEqual(t, first, m1) // m1 aliases the internal buffer, now mutated
}

func TestLabelMonotonicity_StricterEqShrinksResults(t *testing.T) {
	query := labeled(t, true, []interface{}{"A"}, []int{})
	data := labeled(t, true, []interface{}{"A", "B", "A"}, []int{}, []int{}, []int{})

	loose := vf2.SubgraphIsomorphisms(query, data, vf2.WithNodeEq(func(a, b interface{}) bool { return true })).All()
	strict := vf2.SubgraphIsomorphisms(query, data).All()
	require.GreaterOrEqual(t, len(loose), len(strict))
}

// fromBuilt runs a builder.Constructor through builder.BuildGraph and adapts
// the resulting core.Graph into a vf2graph.Graph via FromCore.
func fromBuilt(t *testing.T, cons ...builder.Constructor) vf2graph.Graph {
	t.Helper()
	cg, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	g, err := vf2graph.FromCore(cg)
	require.NoError(t, err)
	return g
}

func TestBuilderFixture_CycleEmbedsInGrid(t *testing.T) {
	query := fromBuilt(t, builder.Cycle(4))
	data := fromBuilt(t, builder.Grid(3, 3))

	// FromCore labels each node with its vertex ID; ignore node labels so
	// only topology is matched.
	got := vf2.SubgraphIsomorphisms(query, data, vf2.WithNodeEq(func(a, b interface{}) bool { return true })).All()
	require.NotEmpty(t, got, "a 4-cycle should embed in a 3x3 grid's unit squares")

	for _, m := range got {
		require.Equal(t, query.NodeCount(), len(m))
	}
}

func TestBuilderFixture_WheelAutomorphisms(t *testing.T) {
	wheel := fromBuilt(t, builder.Wheel(6)) // hub + 5-cycle rim

	// Node labels are vertex IDs (see FromCore); ignore them so the count
	// is of structural automorphisms.
	all := vf2.Isomorphisms(wheel, wheel, vf2.WithNodeEq(func(a, b interface{}) bool { return true })).All()
	// Every automorphism must fix the hub (it is the only degree-(n-1) vertex),
	// and the rim can be rotated or reflected: 2*(n-1) automorphisms for W_n.
	require.Equal(t, 2*(wheel.NodeCount()-1), all.Len())
}

func TestRelationBetweenKinds_InducedImpliesSubgraph(t *testing.T) {
	query := adj(t, true, []int{1}, []int{})
	data := adj(t, true, []int{1}, []int{2}, []int{0})

	induced := vf2.InducedSubgraphIsomorphisms(query, data).All()
	sub := vf2.SubgraphIsomorphisms(query, data).All()
	for _, m := range induced {
		require.True(t, sub.Contains(m))
	}
}
