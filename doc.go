// Package vf2 is the repository root; the actual API lives in its
// subpackages.
//
// Under the hood, everything is organized under two subpackages:
//
//	vf2graph/ — the Graph Adapter contract: wrap your own graph type (or a
//	            plain adjacency list) so vf2 can query it; each search
//	            Builder copies its neighbor lists once before searching.
//	vf2/      — state-space search over that contract: graph isomorphism,
//	            subgraph isomorphism (monomorphism) and induced subgraph
//	            isomorphism, both materializing (All) and lazy (Iterator).
//
//	go get github.com/katalvlaran/vf2/vf2graph
//	go get github.com/katalvlaran/vf2/vf2
package vf2
