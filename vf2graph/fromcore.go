package vf2graph

import (
	"github.com/katalvlaran/vf2/core"
)

// CoreGraph adapts a *core.Graph to the Graph contract. Node indices are
// assigned densely over core.Graph.Vertices(), which is already sorted
// lexicographically by vertex ID, so the mapping is deterministic and
// reproducible across calls for the same underlying graph contents.
//
// Node label policy: if a vertex's Metadata carries a "label" key, that
// value is the node label; otherwise the vertex ID itself is the label.
//
// Edge label policy: the adapter reads Edge.Weight as the edge label. When
// core.Graph permits multi-edges, HasEdge/EdgeLabel are existence-only (see
// Graph's doc comment); among parallel edges for the same ordered pair, the
// one with the lowest textual Edge.ID wins, since core.Graph.Edges() already
// returns edges sorted that way.
//
// Directedness policy: IsDirected() reports the source graph's configured
// default (core.Graph.Directed()); individual per-edge WithEdgeDirected
// overrides in a mixed-mode graph are still honored when building the
// neighbor lists (an edge's own Directed flag decides whether it
// contributes one direction or both), so a mixed graph's topology is
// preserved even though the view exposes a single IsDirected() value.
type CoreGraph struct {
	directed   bool
	id         []string
	index      map[string]int
	nodeLabel  []interface{}
	out        [][]int
	in         [][]int
	edgeLabel  map[[2]int]interface{}
	hasEdgeSet []map[int]struct{}
}

// FromCore builds a CoreGraph snapshotting g's current vertices and edges.
// Later mutation of g is not reflected; build a new CoreGraph instead.
//
// Complexity: O(V + E log E) (Vertices()/Edges() already sort internally).
func FromCore(g *core.Graph) (*CoreGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices() // sorted ascending
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	vmap := g.VerticesMap()
	cg := &CoreGraph{
		directed:   g.Directed(),
		id:         ids,
		index:      index,
		nodeLabel:  make([]interface{}, n),
		out:        make([][]int, n),
		in:         make([][]int, n),
		edgeLabel:  make(map[[2]int]interface{}),
		hasEdgeSet: make([]map[int]struct{}, n),
	}
	for i, id := range ids {
		cg.nodeLabel[i] = id
		if v := vmap[id]; v != nil {
			if lbl, ok := v.Metadata["label"]; ok {
				cg.nodeLabel[i] = lbl
			}
		}
		cg.hasEdgeSet[i] = make(map[int]struct{})
	}

	// Edges() is sorted by Edge.ID ascending, so the first edge seen for a
	// given ordered pair is deterministically the lowest-ID one.
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		addDirected(cg, u, v, e.Weight)
		if !e.Directed && u != v {
			addDirected(cg, v, u, e.Weight)
		}
	}

	return cg, nil
}

func addDirected(cg *CoreGraph, u, v int, weight int64) {
	if _, seen := cg.hasEdgeSet[u][v]; !seen {
		cg.out[u] = append(cg.out[u], v)
		cg.in[v] = append(cg.in[v], u)
		cg.hasEdgeSet[u][v] = struct{}{}
	}
	if _, already := cg.edgeLabel[[2]int{u, v}]; !already {
		cg.edgeLabel[[2]int{u, v}] = weight
	}
}

func (cg *CoreGraph) IsDirected() bool { return cg.directed }
func (cg *CoreGraph) NodeCount() int   { return len(cg.id) }

func (cg *CoreGraph) NodeLabel(i int) interface{} { return cg.nodeLabel[i] }

func (cg *CoreGraph) OutNeighbors(i int) []int { return cg.out[i] }
func (cg *CoreGraph) InNeighbors(i int) []int  { return cg.in[i] }

func (cg *CoreGraph) HasEdge(i, j int) bool {
	_, ok := cg.hasEdgeSet[i][j]
	return ok
}

func (cg *CoreGraph) EdgeLabel(i, j int) interface{} {
	return cg.edgeLabel[[2]int{i, j}]
}

// VertexID returns the original core.Graph vertex ID for dense index i, the
// inverse of the index assignment performed by FromCore.
func (cg *CoreGraph) VertexID(i int) string { return cg.id[i] }

// Index returns the dense index assigned to the given original vertex ID,
// or false if the ID was not present in the source graph at construction
// time. It is the inverse of VertexID.
func (cg *CoreGraph) Index(id string) (int, bool) {
	i, ok := cg.index[id]
	return i, ok
}
