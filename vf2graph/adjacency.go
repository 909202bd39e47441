package vf2graph

import "fmt"

// AdjacencyGraph is a Graph backed by plain node-indexed neighbor lists,
// built once at construction time and never mutated afterward.
type AdjacencyGraph struct {
	directed    bool
	nodeLabels  []interface{}
	out         [][]int
	in          [][]int
	edgeLabels  map[[2]int]interface{}
	hasEdgeSets []map[int]struct{}
}

// FromAdjacency builds an unlabeled AdjacencyGraph from out-neighbor lists.
// adj[i] lists the nodes j reachable from i (for undirected graphs, adj[i]
// must already contain i's full, symmetric neighbor set: if j appears in
// adj[i], i must appear in adj[j]).
//
// Complexity: O(V+E) to index; the result is queried in O(1)/O(deg) per call.
func FromAdjacency(directed bool, adj [][]int) (*AdjacencyGraph, error) {
	return FromLabeledAdjacency(directed, adj, nil, nil)
}

// FromLabeledAdjacency is FromAdjacency plus optional per-node and per-edge
// labels. nodeLabels may be nil (no node labels) or must have len(adj)
// entries. edgeLabels may be nil (no edge labels); missing keys default to a
// nil label.
func FromLabeledAdjacency(directed bool, adj [][]int, nodeLabels []interface{}, edgeLabels map[[2]int]interface{}) (*AdjacencyGraph, error) {
	if adj == nil {
		return nil, ErrNilGraph
	}
	n := len(adj)
	if nodeLabels != nil && len(nodeLabels) != n {
		return nil, fmt.Errorf("vf2graph: %w: %d node labels for %d nodes", ErrNodeCountMismatch, len(nodeLabels), n)
	}

	g := &AdjacencyGraph{
		directed:    directed,
		nodeLabels:  make([]interface{}, n),
		out:         make([][]int, n),
		hasEdgeSets: make([]map[int]struct{}, n),
	}
	if edgeLabels != nil {
		g.edgeLabels = make(map[[2]int]interface{}, len(edgeLabels))
		for k, v := range edgeLabels {
			g.edgeLabels[k] = v
		}
	}

	for i := 0; i < n; i++ {
		if nodeLabels != nil {
			g.nodeLabels[i] = nodeLabels[i]
		}
		row := make([]int, len(adj[i]))
		set := make(map[int]struct{}, len(adj[i]))
		for k, j := range adj[i] {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("vf2graph: %w: node %d neighbor %d", ErrNodeOutOfRange, i, j)
			}
			row[k] = j
			set[j] = struct{}{}
		}
		g.out[i] = row
		g.hasEdgeSets[i] = set
	}

	if directed {
		g.in = make([][]int, n)
		for i := 0; i < n; i++ {
			for _, j := range g.out[i] {
				g.in[j] = append(g.in[j], i)
			}
		}
	} else {
		g.in = g.out
	}

	return g, nil
}

func (g *AdjacencyGraph) IsDirected() bool { return g.directed }
func (g *AdjacencyGraph) NodeCount() int   { return len(g.out) }

func (g *AdjacencyGraph) NodeLabel(i int) interface{} { return g.nodeLabels[i] }

func (g *AdjacencyGraph) OutNeighbors(i int) []int { return g.out[i] }
func (g *AdjacencyGraph) InNeighbors(i int) []int  { return g.in[i] }

func (g *AdjacencyGraph) HasEdge(i, j int) bool {
	_, ok := g.hasEdgeSets[i][j]
	return ok
}

func (g *AdjacencyGraph) EdgeLabel(i, j int) interface{} {
	if g.edgeLabels == nil {
		return nil
	}
	return g.edgeLabels[[2]int{i, j}]
}
