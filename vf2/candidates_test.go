package vf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidatePairs_FirstLevel_AllUnmapped(t *testing.T) {
	qg := mustCompile(t, true, [][]int{{1}, {2}, {}})
	dg := mustCompile(t, true, [][]int{{1}, {2}, {}})
	s := newState(qg, dg)

	pivot, candidates := candidatePairs(s)
	require.Equal(t, 0, pivot)
	require.Equal(t, []int{0, 1, 2}, candidates)
}

func TestCandidatePairs_PrefersOutTerminalSet(t *testing.T) {
	qg := mustCompile(t, true, [][]int{{1}, {2}, {}})
	dg := mustCompile(t, true, [][]int{{1}, {2}, {}})
	s := newState(qg, dg)

	s.push(0, 0)
	pivot, candidates := candidatePairs(s)
	require.Equal(t, 1, pivot)
	require.Equal(t, []int{1}, candidates)
}

func TestCandidatePairs_EmptyQuery(t *testing.T) {
	qg := mustCompile(t, true, [][]int{})
	dg := mustCompile(t, true, [][]int{{}})
	s := newState(qg, dg)

	pivot, candidates := candidatePairs(s)
	require.Equal(t, unassigned, pivot)
	require.Nil(t, candidates)
}
