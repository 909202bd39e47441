package vf2

// feasible runs the full VF2 feasibility test for candidate pair (i, j)
// against the current state, hypothetically extended with i <-> j (the
// pair is not actually pushed; this is a pure predicate).
//
// Order follows the spec: cheapest checks first so a rejection short-
// circuits before the O(deg) syntactic rules run.
func feasible(s *state, cfg *matchConfig, i, j int) bool {
	qg, dg := s.qg, s.dg

	if !cfg.nodeEq(qg.nodeLbl[i], dg.nodeLbl[j]) {
		return false
	}
	if !selfLoopConsistent(qg, dg, cfg, i, j) {
		return false
	}

	// Rule 1, forward direction (always checked): every already-mapped
	// query neighbor of i must have a correspondingly-directed, label-
	// matching data neighbor of j. For undirected graphs, in and out
	// neighbor lists are the same slice, so the in-pass is skipped: it
	// would repeat the out-pass exactly ("Undirected case: same rules
	// collapsed to a single neighbor set").
	if !outConsistent(qg, dg, s.mapQD, cfg, i, j) {
		return false
	}
	if qg.directed && !inConsistent(qg, dg, s.mapQD, cfg, i, j) {
		return false
	}

	// Rule 1, reverse direction: only for induced subgraph and graph
	// isomorphism (plain subgraph matching allows extra data edges).
	if cfg.requireReverse {
		if !outConsistent(dg, qg, s.mapDQ, cfg, j, i) {
			return false
		}
		if qg.directed && !inConsistent(dg, qg, s.mapDQ, cfg, j, i) {
			return false
		}
	}

	if !cardinalityOK(cfg, qg.out[i], dg.out[j], s.tOutQ, s.tOutD) {
		return false
	}
	if qg.directed && !cardinalityOK(cfg, qg.in[i], dg.in[j], s.tInQ, s.tInD) {
		return false
	}

	if !newNodeCardinalityOK(cfg, qg.out[i], dg.out[j], s) {
		return false
	}
	if qg.directed && !newNodeCardinalityOK(cfg, qg.in[i], dg.in[j], s) {
		return false
	}

	return true
}

// selfLoopConsistent checks rule (1)'s self-loop fold: a query self-loop at
// i demands a data self-loop at j; for induced/iso configurations, a data
// self-loop at j likewise demands one at i.
func selfLoopConsistent(qg, dg *compiledGraph, cfg *matchConfig, i, j int) bool {
	qLoop, dLoop := qg.hasEdge(i, i), dg.hasEdge(j, j)
	if qLoop && !dLoop {
		return false
	}
	if cfg.requireReverse && dLoop && !qLoop {
		return false
	}
	if qLoop && dLoop {
		return cfg.edgeEq(qg.edgeLabel(i, i), dg.edgeLabel(j, j))
	}
	return true
}

// outConsistent checks, for every already-mapped out-neighbor aPrime of a
// (in ag), that b (in bg) has a matching out-edge to map[aPrime] with an
// equal edge label.
func outConsistent(ag, bg *compiledGraph, mapA []int, cfg *matchConfig, a, b int) bool {
	for _, aPrime := range ag.out[a] {
		bPrime := mapA[aPrime]
		if bPrime == unassigned {
			continue
		}
		if !bg.hasEdge(b, bPrime) {
			return false
		}
		if !cfg.edgeEq(ag.edgeLabel(a, aPrime), bg.edgeLabel(b, bPrime)) {
			return false
		}
	}
	return true
}

// inConsistent is outConsistent's mirror for in-neighbors: for every
// already-mapped in-neighbor aPrime of a, b must have a matching in-edge
// from map[aPrime].
func inConsistent(ag, bg *compiledGraph, mapA []int, cfg *matchConfig, a, b int) bool {
	for _, aPrime := range ag.in[a] {
		bPrime := mapA[aPrime]
		if bPrime == unassigned {
			continue
		}
		if !bg.hasEdge(bPrime, b) {
			return false
		}
		if !cfg.edgeEq(ag.edgeLabel(aPrime, a), bg.edgeLabel(bPrime, b)) {
			return false
		}
	}
	return true
}

// cardinalityOK implements rule (2): the terminal-set look-ahead at depth 1.
func cardinalityOK(cfg *matchConfig, qNeighbors, dNeighbors []int, tQ, tD []int) bool {
	return compareCardinality(cfg, countTerminal(qNeighbors, tQ), countTerminal(dNeighbors, tD))
}

func countTerminal(neighbors, terminal []int) int {
	n := 0
	for _, k := range neighbors {
		if terminal[k] != unassigned {
			n++
		}
	}
	return n
}

// newNodeCardinalityOK implements rule (3): the new-node look-ahead at
// depth 2, counting neighbors that are neither mapped nor terminal on
// either side.
func newNodeCardinalityOK(cfg *matchConfig, qNeighbors, dNeighbors []int, s *state) bool {
	qCount := countNew(qNeighbors, s.mapQD, s.tOutQ, s.tInQ)
	dCount := countNew(dNeighbors, s.mapDQ, s.tOutD, s.tInD)
	return compareCardinality(cfg, qCount, dCount)
}

func countNew(neighbors []int, mapped, tOut, tIn []int) int {
	n := 0
	for _, k := range neighbors {
		if mapped[k] == unassigned && tOut[k] == unassigned && tIn[k] == unassigned {
			n++
		}
	}
	return n
}

func compareCardinality(cfg *matchConfig, qCount, dCount int) bool {
	if cfg.requireEqualCardinality {
		return qCount == dCount
	}
	return qCount <= dCount
}
