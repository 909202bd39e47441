package vf2

// candidatePairs returns the pivot query node and its ordered candidate
// data nodes for the current state, per the VF2 pivot rule:
//
//  1. If some unmapped query node is out-terminal and some unmapped data
//     node is out-terminal, pivot on the smallest such query node and
//     enumerate the out-terminal unmapped data nodes.
//  2. Else if the same holds for in-terminal sets, use those.
//  3. Else pivot on the smallest unmapped query node and enumerate every
//     unmapped data node.
//
// For undirected graphs, tInQ/tInD alias tOutQ/tOutD, so tier 1 already
// covers the undirected case and tier 2 is unreachable dead weight in that
// configuration (the alias makes it equivalent, never additive).
//
// "min"/ascending order refers to the dense internal node id order, which
// is stable for a given compiled graph. Returns (-1, nil) if depth == n
// (no pivot; the driver must check completion before calling this).
func candidatePairs(s *state) (pivot int, candidates []int) {
	if pivot, candidates, ok := pivotTier(s.mapQD, s.tOutQ, s.mapDQ, s.tOutD); ok {
		return pivot, candidates
	}
	if pivot, candidates, ok := pivotTier(s.mapQD, s.tInQ, s.mapDQ, s.tInD); ok {
		return pivot, candidates
	}

	pivot = minUnmapped(s.mapQD)
	if pivot == unassigned {
		return unassigned, nil
	}
	return pivot, allUnmapped(s.mapDQ)
}

// pivotTier implements one tier of the pivot rule: it succeeds only if
// both sides have a nonempty terminal set among their unmapped nodes.
func pivotTier(mapQ, termQ, mapD, termD []int) (pivot int, candidates []int, ok bool) {
	pivot = minUnmappedTerminal(mapQ, termQ)
	if pivot == unassigned {
		return 0, nil, false
	}
	candidates = unmappedTerminal(mapD, termD)
	if len(candidates) == 0 {
		return 0, nil, false
	}
	return pivot, candidates, true
}

func minUnmapped(mapped []int) int {
	for i, v := range mapped {
		if v == unassigned {
			return i
		}
	}
	return unassigned
}

func minUnmappedTerminal(mapped, terminal []int) int {
	for i, v := range mapped {
		if v == unassigned && terminal[i] != unassigned {
			return i
		}
	}
	return unassigned
}

func allUnmapped(mapped []int) []int {
	out := make([]int, 0, len(mapped))
	for i, v := range mapped {
		if v == unassigned {
			out = append(out, i)
		}
	}
	return out
}

func unmappedTerminal(mapped, terminal []int) []int {
	out := make([]int, 0, len(mapped))
	for i, v := range mapped {
		if v == unassigned && terminal[i] != unassigned {
			out = append(out, i)
		}
	}
	return out
}
