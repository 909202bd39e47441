package vf2

import (
	"fmt"

	"github.com/katalvlaran/vf2/vf2graph"
)

// Builder carries one enumeration's resolved configuration and compiled
// graphs. It is returned by the three entry points (Isomorphisms,
// SubgraphIsomorphisms, InducedSubgraphIsomorphisms) and consumed via
// First, All or Iter; each consumption method starts a fresh Iterator, so a
// Builder may be consumed more than once.
type Builder struct {
	qg, dg       *compiledGraph
	cfg          matchConfig
	trivialEmpty bool
}

func newBuilder(query, data vf2graph.Graph, cfg matchConfig) *Builder {
	if query == nil || data == nil {
		panic(ErrNilGraph)
	}
	if query.IsDirected() != data.IsDirected() {
		panic(ErrDirectednessMismatch)
	}

	b := &Builder{
		qg:  compile(query),
		dg:  compile(data),
		cfg: cfg,
	}
	if cfg.requireEqualSize && b.qg.n != b.dg.n {
		// Preflight mismatch (spec: "n != m -> zero matches, not an
		// error"): short-circuit instead of letting the search run and
		// naturally find nothing, which it would, just more slowly.
		b.trivialEmpty = true
	}
	return b
}

// First returns the first match in enumeration order, or (nil, false) if
// none exists.
func (b *Builder) First() (Mapping, bool) {
	if b.trivialEmpty {
		return nil, false
	}
	return b.Iter().Next()
}

// All collects every match into a MappingSet, in enumeration order.
func (b *Builder) All() MappingSet {
	if b.trivialEmpty {
		return nil
	}
	it := b.Iter()
	var out MappingSet
	for {
		m, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// Iter returns a lazy, resumable Iterator over this Builder's matches.
func (b *Builder) Iter() *Iterator {
	if b.trivialEmpty {
		return &Iterator{done: true}
	}
	return newIterator(b.qg, b.dg, &b.cfg)
}

// MappingSet is the materialized result of Builder.All: every match found,
// in enumeration order.
type MappingSet []Mapping

// Len returns the number of mappings in the set.
func (ms MappingSet) Len() int { return len(ms) }

// Contains reports whether m appears in the set, compared element-wise.
func (ms MappingSet) Contains(m Mapping) bool {
	for _, candidate := range ms {
		if mappingEqual(candidate, m) {
			return true
		}
	}
	return false
}

func mappingEqual(a, b Mapping) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the set as a bracketed list of mappings, for debugging
// and test failure messages.
func (ms MappingSet) String() string {
	return fmt.Sprintf("%v", []Mapping(ms))
}
