package vf2

import "github.com/katalvlaran/vf2/vf2graph"

// compiledGraph is a read-only, allocation-free-to-query snapshot of a
// vf2graph.Graph: neighbor lists are copied once into plain int slices so
// the hot path never calls back into the caller's graph implementation.
type compiledGraph struct {
	directed bool
	n        int
	nodeLbl  []interface{}
	out      [][]int
	in       [][]int
	edgeLbl  map[[2]int]interface{}
}

// compile snapshots g. Complexity: O(V+E).
func compile(g vf2graph.Graph) *compiledGraph {
	n := g.NodeCount()
	cg := &compiledGraph{
		directed: g.IsDirected(),
		n:        n,
		nodeLbl:  make([]interface{}, n),
		out:      make([][]int, n),
		in:       make([][]int, n),
		edgeLbl:  make(map[[2]int]interface{}),
	}
	for i := 0; i < n; i++ {
		cg.nodeLbl[i] = g.NodeLabel(i)

		outI := g.OutNeighbors(i)
		row := make([]int, len(outI))
		copy(row, outI)
		cg.out[i] = row

		for _, j := range row {
			if g.HasEdge(i, j) {
				cg.edgeLbl[[2]int{i, j}] = g.EdgeLabel(i, j)
			}
		}
	}
	if cg.directed {
		for i := 0; i < n; i++ {
			inI := g.InNeighbors(i)
			row := make([]int, len(inI))
			copy(row, inI)
			cg.in[i] = row
		}
	} else {
		// Undirected: OutNeighbors/InNeighbors are contractually identical,
		// so the engine shares one slice per node instead of duplicating it.
		cg.in = cg.out
	}
	return cg
}

func (cg *compiledGraph) hasEdge(i, j int) bool {
	_, ok := cg.edgeLbl[[2]int{i, j}]
	return ok
}

func (cg *compiledGraph) edgeLabel(i, j int) interface{} {
	return cg.edgeLbl[[2]int{i, j}]
}
