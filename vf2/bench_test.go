package vf2_test

import (
	"testing"

	"github.com/katalvlaran/vf2/builder"
	"github.com/katalvlaran/vf2/vf2"
	"github.com/katalvlaran/vf2/vf2graph"
)

// cycleGraph builds an n-vertex cycle C_n via the builder package and
// adapts it through vf2graph.FromCore, the same path an application
// wiring its own core.Graph fixtures into the matcher would take.
func cycleGraph(b *testing.B, n int) vf2graph.Graph {
	b.Helper()
	cg, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	if err != nil {
		b.Fatal(err)
	}
	g, err := vf2graph.FromCore(cg)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkSubgraphIsomorphisms_CycleInCycle(b *testing.B) {
	query := cycleGraph(b, 5)
	data := cycleGraph(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vf2.SubgraphIsomorphisms(query, data).First()
	}
}

func BenchmarkIsomorphisms_CycleAll(b *testing.B) {
	query := cycleGraph(b, 8)
	data := cycleGraph(b, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vf2.Isomorphisms(query, data).All()
	}
}

// BenchmarkIsomorphisms_WheelAutomorphisms enumerates the automorphism
// group of a wheel graph built via builder.Wheel, exercising a second
// builder topology alongside Cycle.
func BenchmarkIsomorphisms_WheelAutomorphisms(b *testing.B) {
	wg, err := builder.BuildGraph(nil, nil, builder.Wheel(9))
	if err != nil {
		b.Fatal(err)
	}
	wheel, err := vf2graph.FromCore(wg)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Node labels are vertex IDs (see FromCore); ignore them.
		_ = vf2.Isomorphisms(wheel, wheel, vf2.WithNodeEq(func(a, b interface{}) bool { return true })).All()
	}
}

func BenchmarkIterator_NextRef(b *testing.B) {
	query, err := vf2graph.FromAdjacency(false, [][]int{{}, {}})
	if err != nil {
		b.Fatal(err)
	}
	data := cycleGraph(b, 50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := vf2.SubgraphIsomorphisms(query, data).Iter()
		for {
			_, ok := it.NextRef()
			if !ok {
				break
			}
		}
	}
}
