package vf2

// frame is one open recursion level of the explicit DFS stack: the pivot
// and its candidate data nodes computed once when the level was entered,
// plus the index of the next candidate to try.
type frame struct {
	pivot      int
	candidates []int
	idx        int
}

// Iterator is the lazy, resumable enumeration surface: each Next/NextRef
// call performs zero or more feasibility tests until either a match is
// emitted or the search tree is exhausted, in O(work to next match).
// Dropping an Iterator (letting it be garbage collected) is the only
// cancellation mechanism; there is nothing to close or release.
//
// An Iterator is not safe for concurrent use: exactly one state is walked
// along one DFS spine.
type Iterator struct {
	s   *state
	cfg *matchConfig

	frames      []*frame
	justEmitted bool
	done        bool

	emptyQuery   bool
	emittedEmpty bool
}

func newIterator(qg, dg *compiledGraph, cfg *matchConfig) *Iterator {
	return &Iterator{
		s:          newState(qg, dg),
		cfg:        cfg,
		emptyQuery: qg.n == 0,
	}
}

// Next returns the next match as a freshly allocated, caller-owned Mapping,
// or (nil, false) once the search tree is exhausted.
func (it *Iterator) Next() (Mapping, bool) {
	m, ok := it.step()
	if !ok {
		return nil, false
	}
	owned := make(Mapping, len(m))
	copy(owned, m)
	return owned, true
}

// NextRef returns the next match as a view into the Iterator's internal
// mapping buffer. The returned slice is valid only until the following
// Next/NextRef call; callers that need to retain it must copy it
// themselves. This is the allocation-free path for callers that inspect
// and discard a match before asking for the next one.
func (it *Iterator) NextRef() (Mapping, bool) {
	return it.step()
}

// step advances the state machine to the next match, or to exhaustion.
// The returned slice aliases it.s.mapQD and is only valid until step (or
// pop within it) runs again.
func (it *Iterator) step() (Mapping, bool) {
	if it.done {
		return nil, false
	}

	if it.emptyQuery {
		if it.emittedEmpty {
			it.done = true
			return nil, false
		}
		it.emittedEmpty = true
		return Mapping{}, true
	}

	if it.justEmitted {
		top := it.frames[len(it.frames)-1]
		j := top.candidates[top.idx-1]
		it.s.pop(top.pivot, j)
		it.justEmitted = false
	}

	if len(it.frames) == 0 {
		// Only reachable on the very first call: depth 0, search not yet
		// started. Exhaustion always sets it.done before frames empties
		// out below, so that path returns above instead of reaching here.
		it.pushFrame()
	}

	for {
		top := it.frames[len(it.frames)-1]
		if top.idx >= len(top.candidates) {
			it.frames = it.frames[:len(it.frames)-1]
			if len(it.frames) == 0 {
				it.done = true
				return nil, false
			}
			parent := it.frames[len(it.frames)-1]
			j := parent.candidates[parent.idx-1]
			it.s.pop(parent.pivot, j)
			continue
		}

		j := top.candidates[top.idx]
		top.idx++
		if !feasible(it.s, it.cfg, top.pivot, j) {
			continue
		}

		it.s.push(top.pivot, j)
		if it.s.depth == it.s.qg.n {
			it.justEmitted = true
			return it.s.mapQD, true
		}
		it.pushFrame()
	}
}

func (it *Iterator) pushFrame() {
	pivot, candidates := candidatePairs(it.s)
	it.frames = append(it.frames, &frame{pivot: pivot, candidates: candidates})
}
