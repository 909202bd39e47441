// Package vf2 implements the VF2 algorithm: a deterministic, single-
// threaded state-space search that enumerates injective node mappings
// between a query graph and a data graph, satisfying one of three
// structural relations.
//
// # What & Why
//
//   - Graph isomorphism (Isomorphisms): query and data have equal size and
//     the mapping preserves edges in both directions.
//   - Subgraph isomorphism / monomorphism (SubgraphIsomorphisms): every
//     query edge has a corresponding data edge; extra data edges between
//     matched nodes are allowed.
//   - Induced subgraph isomorphism (InducedSubgraphIsomorphisms): a query
//     edge exists iff the corresponding data edge exists, restricted to
//     matched nodes.
//
// All three share one search engine, parameterized by three booleans:
// whether edge consistency is checked in the reverse direction too,
// whether terminal-set/new-node cardinality look-aheads require equality
// rather than "query side is no larger", and whether node counts must
// match exactly before the search even starts.
//
// # Algorithm & Complexity
//
//	State-space DFS (Cordella et al.'s VF2)
//	  Pivot: at each depth, the candidate generator picks a deterministic
//	  query pivot from the out-terminal set, else the in-terminal set, else
//	  any unmapped node — enumerating only the correspondingly-terminal (or
//	  fully unmapped) data nodes as candidates.
//	  Feasibility: node-label equality, edge consistency with the current
//	  partial map (forward, plus reverse for induced/iso), terminal-set
//	  cardinality look-ahead (depth 1), new-node cardinality look-ahead
//	  (depth 2).
//	  Time: worst case exponential in n = query.NodeCount() (subgraph
//	  isomorphism is NP-complete in general); the look-ahead rules prune
//	  aggressively for sparse, labeled graphs.
//	  Space: O(n + m) for the matching state, O(|E_q| + |E_d|) for the
//	  compiled neighbor lists, where m = data.NodeCount().
//
// # Consumption modes
//
//	Builder.First() — first match, or (nil, false).
//	Builder.All()   — every match, materialized into a MappingSet.
//	Builder.Iter()  — a lazy, resumable Iterator: Next() returns an owned
//	                  copy, NextRef() returns a view valid only until the
//	                  next call. Each call performs O(work to the next
//	                  match), not O(total work); dropping the Iterator is
//	                  the only cancellation mechanism.
//
// # Errors (sentinel)
//
//	ErrNilGraph, ErrDirectednessMismatch — both panics at Builder
//	construction (see entrypoints.go); a well-formed Builder's enumeration
//	never fails, it only ever yields zero or more matches.
//
// # Quick start
//
//	q, _ := vf2graph.FromAdjacency(true, [][]int{{1}, {}})       // 0 -> 1
//	d, _ := vf2graph.FromAdjacency(true, [][]int{{1}, {2}, {}})  // 0 -> 1 -> 2
//	for it := vf2.SubgraphIsomorphisms(q, d).Iter(); ; {
//		m, ok := it.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(m) // [0 1], then [1 2]
//	}
package vf2
