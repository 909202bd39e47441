// Package vf2 defines the matching engine's core types, configuration
// options, and sentinel errors: Mapping/MappingSet results, the functional
// options configuring label equality, and the two preflight errors raised
// at Builder construction.
package vf2

import "errors"

// Sentinel errors raised (via panic) when a query/data pair cannot be
// configured for matching at all. These are never returned by Next/NextRef
// or by All/First; once a Builder is constructed successfully, enumeration
// cannot fail.
var (
	// ErrNilGraph indicates a nil vf2graph.Graph was passed as query or data.
	ErrNilGraph = errors.New("vf2: nil graph")

	// ErrDirectednessMismatch indicates the query and data graphs disagree
	// on IsDirected().
	ErrDirectednessMismatch = errors.New("vf2: query and data graphs disagree on directedness")
)

// Mapping is a dense injection from query node ids to data node ids:
// mapping[i] is the data node assigned to query node i.
type Mapping []int

// EqFunc compares two node or edge labels for equality. It must be a total,
// side-effect-free function; if it panics, the panic propagates out of the
// enumeration call that triggered it, leaving no observable engine state.
type EqFunc func(a, b interface{}) bool

// Option configures a Builder's label-equality predicates.
type Option func(*matchConfig)

// WithNodeEq overrides the node-label equality predicate. Default: deep
// equality via cmp.Equal.
func WithNodeEq(eq EqFunc) Option {
	return func(c *matchConfig) {
		c.nodeEq = eq
	}
}

// WithEdgeEq overrides the edge-label equality predicate. Default: deep
// equality via cmp.Equal.
func WithEdgeEq(eq EqFunc) Option {
	return func(c *matchConfig) {
		c.edgeEq = eq
	}
}

// matchConfig holds a Builder's resolved configuration. It is built once at
// Builder construction and never mutated while a search is running.
type matchConfig struct {
	nodeEq EqFunc
	edgeEq EqFunc

	// requireReverse: for a candidate pair (i,j), also verify that every
	// already-mapped data neighbor of j has a corresponding query neighbor
	// of i (rules R_in/R_out's reverse direction). On for graph isomorphism
	// and induced subgraph isomorphism; off for plain subgraph isomorphism.
	requireReverse bool

	// requireEqualCardinality: terminal-set and new-node look-ahead counts
	// must be equal rather than merely query-side <= data-side. On only
	// for graph isomorphism.
	requireEqualCardinality bool

	// requireEqualSize: preflight n == m check. On only for graph
	// isomorphism.
	requireEqualSize bool
}

// defaultEq is the identity/deep-equality default for node and edge labels.
func defaultEq(a, b interface{}) bool {
	return cmpEqual(a, b)
}
