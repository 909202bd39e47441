package vf2graph

import "errors"

// Sentinel errors returned by the adapters in this package.
var (
	// ErrNilGraph indicates a nil source value was handed to an adapter constructor.
	ErrNilGraph = errors.New("vf2graph: nil source")

	// ErrNodeCountMismatch indicates the node labels or adjacency rows supplied
	// to an adapter constructor do not agree on the number of nodes.
	ErrNodeCountMismatch = errors.New("vf2graph: node count mismatch")

	// ErrNodeOutOfRange indicates an adjacency row lists a neighbor index
	// outside [0, NodeCount()). Edge-label map keys are not range-checked.
	ErrNodeOutOfRange = errors.New("vf2graph: node index out of range")
)

// Graph is the capability contract the vf2 engine requires. Implementations
// expose a fixed, dense node-index space [0, NodeCount()); all other methods
// are queries over that space and must be side-effect free.
//
// Undirected graphs: OutNeighbors(i) and InNeighbors(i) must both return the
// same symmetric neighbor set as would be returned by a plain Neighbors(i)
// call; for undirected graphs the engine reads only OutNeighbors and uses it
// for both directions, relying on this equality for correctness.
//
// Self-loops: if i is its own neighbor, OutNeighbors(i)/InNeighbors(i) must
// include i, and HasEdge(i, i) must report true.
//
// Multi-edges: HasEdge/EdgeLabel are existence-only; a graph with parallel
// edges between the same pair of nodes is treated as having a single
// logical edge with one label. Callers adapting a multigraph choose which
// label wins (see FromCore's policy: lowest edge ID).
type Graph interface {
	// IsDirected reports whether edges in this view are one-way. It is a
	// property of the whole view: the engine requires query and data views
	// to agree on it.
	IsDirected() bool

	// NodeCount returns n, the size of the dense index space [0, n).
	NodeCount() int

	// NodeLabel returns the label attached to node i, or nil if the graph
	// carries no node labels.
	NodeLabel(i int) interface{}

	// OutNeighbors returns the (not necessarily sorted) set of nodes j such
	// that an edge i -> j exists. For undirected graphs this is the full
	// neighbor set of i.
	OutNeighbors(i int) []int

	// InNeighbors returns the set of nodes j such that an edge j -> i
	// exists. For undirected graphs this must equal OutNeighbors(i).
	InNeighbors(i int) []int

	// HasEdge reports whether an edge i -> j (or, if undirected, between i
	// and j) exists.
	HasEdge(i, j int) bool

	// EdgeLabel returns the label of the edge i -> j. Only called when
	// HasEdge(i, j) holds.
	EdgeLabel(i, j int) interface{}
}
