// Package vf2graph defines the capability contract the vf2 matching engine
// uses to read a graph's nodes, edges, neighbors and labels, plus two
// concrete adapters for callers who do not already have a type satisfying
// the contract: FromAdjacency for node-indexed neighbor lists, and FromCore
// for github.com/katalvlaran/vf2/core.Graph values.
//
// Node identifiers exposed by Graph are dense, zero-based integers in
// [0, NodeCount()); adapters are responsible for establishing that mapping
// once, at construction time.
package vf2graph
