package vf2

import "github.com/katalvlaran/vf2/vf2graph"

// Isomorphisms configures graph isomorphism matching: query and data must
// have equal node counts (otherwise the Builder yields zero matches, not
// an error), every edge relation is checked in both directions, and
// terminal-set/new-node look-ahead counts must be exactly equal rather
// than merely sufficient.
//
// Panics with ErrNilGraph if query or data is nil, or with
// ErrDirectednessMismatch if they disagree on IsDirected() — both are
// preflight configuration errors, not data-dependent outcomes.
func Isomorphisms(query, data vf2graph.Graph, opts ...Option) *Builder {
	cfg := matchConfig{
		nodeEq:                  defaultEq,
		edgeEq:                  defaultEq,
		requireReverse:          true,
		requireEqualCardinality: true,
		requireEqualSize:        true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newBuilder(query, data, cfg)
}

// SubgraphIsomorphisms configures subgraph isomorphism (monomorphism)
// matching: every query edge must have a corresponding data edge, but
// extra data edges between matched nodes are allowed (no reverse-edge
// check, cardinality look-aheads use <= rather than equality).
func SubgraphIsomorphisms(query, data vf2graph.Graph, opts ...Option) *Builder {
	cfg := matchConfig{
		nodeEq: defaultEq,
		edgeEq: defaultEq,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newBuilder(query, data, cfg)
}

// InducedSubgraphIsomorphisms configures induced subgraph isomorphism
// matching: a query edge exists iff the corresponding data edge exists,
// restricted to matched nodes (reverse-edge check on, cardinality
// look-aheads use <=).
func InducedSubgraphIsomorphisms(query, data vf2graph.Graph, opts ...Option) *Builder {
	cfg := matchConfig{
		nodeEq:         defaultEq,
		edgeEq:         defaultEq,
		requireReverse: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newBuilder(query, data, cfg)
}
