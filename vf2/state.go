package vf2

const unassigned = -1

// state is the mutable matching state shared by one DFS search: the
// partial bijection between query and data nodes, its inverse, and the
// terminal-set membership depth-stamps used by the candidate generator and
// feasibility test. Exactly one state exists per search; it is mutated
// along the DFS spine with strict push/pop pairing and never shared across
// goroutines.
type state struct {
	qg, dg *compiledGraph

	depth int

	mapQD []int // len n, data node per query node, or unassigned
	mapDQ []int // len m, query node per data node, or unassigned

	// Terminal-set membership: tOutQ[i] holds the depth at which query node
	// i first became an out-neighbor of the mapped region, or unassigned.
	// For undirected graphs tInQ aliases tOutQ (and tInD aliases tOutD),
	// since out/in neighbor sets coincide.
	tOutQ, tInQ []int
	tOutD, tInD []int
}

// newState allocates a state for a search between qg and dg. Both must
// agree on directedness; the caller (Builder) is responsible for that
// check.
func newState(qg, dg *compiledGraph) *state {
	n, m := qg.n, dg.n

	s := &state{
		qg:    qg,
		dg:    dg,
		mapQD: fillInt(n),
		mapDQ: fillInt(m),
		tOutQ: fillInt(n),
		tOutD: fillInt(m),
	}
	if qg.directed {
		s.tInQ = fillInt(n)
		s.tInD = fillInt(m)
	} else {
		s.tInQ = s.tOutQ
		s.tInD = s.tOutD
	}
	return s
}

func fillInt(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = unassigned
	}
	return a
}

// push extends the partial map with query node i <-> data node j. It
// updates both maps, increments depth, and stamps the terminal arrays of
// every unmapped neighbor of i (resp. j) that is not already terminal.
//
// Complexity: O(deg(i) + deg(j)), no heap allocation.
func (s *state) push(i, j int) {
	s.mapQD[i] = j
	s.mapDQ[j] = i
	s.depth++

	stampTerminal(s.qg.out[i], s.mapQD, s.tOutQ, s.depth)
	stampTerminal(s.dg.out[j], s.mapDQ, s.tOutD, s.depth)
	if s.qg.directed {
		stampTerminal(s.qg.in[i], s.mapQD, s.tInQ, s.depth)
		stampTerminal(s.dg.in[j], s.mapDQ, s.tInD, s.depth)
	}
}

// pop is the exact inverse of push: it clears terminal stamps made at the
// current depth, then retracts the map entries for i and j.
//
// Complexity: O(deg(i) + deg(j)).
func (s *state) pop(i, j int) {
	unstampTerminal(s.qg.out[i], s.tOutQ, s.depth)
	unstampTerminal(s.dg.out[j], s.tOutD, s.depth)
	if s.qg.directed {
		unstampTerminal(s.qg.in[i], s.tInQ, s.depth)
		unstampTerminal(s.dg.in[j], s.tInD, s.depth)
	}

	s.depth--
	s.mapQD[i] = unassigned
	s.mapDQ[j] = unassigned
}

func stampTerminal(neighbors []int, mapped, terminal []int, depth int) {
	for _, k := range neighbors {
		if mapped[k] == unassigned && terminal[k] == unassigned {
			terminal[k] = depth
		}
	}
}

func unstampTerminal(neighbors []int, terminal []int, depth int) {
	for _, k := range neighbors {
		if terminal[k] == depth {
			terminal[k] = unassigned
		}
	}
}
