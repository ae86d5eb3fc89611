// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

import "fmt"

// makenode returns the address of the decision node (level, low, high),
// creating it when needed. This is the single creation path for decision
// nodes: it applies the reduction rule, then consults the unicity table so
// that structurally identical nodes are always represented by the same
// address.
func (b *BDD) makenode(level int32, low, high Node) Node {
	b.uniqueAccess++
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	// otherwise try to find an existing node using the unique table
	k := triplet{level: level, low: low, high: high}
	if res, ok := b.unique[k]; ok {
		b.uniqueHit++
		return res
	}
	b.uniqueMiss++
	return b.allocate(k)
}

// allocate appends a new decision node to the node table and registers it in
// the unicity table. Callers must have already checked that no equivalent
// node exists; makenode is the only expected caller.
func (b *BDD) allocate(k triplet) Node {
	// A child testing a level lower or equal to its parent means the
	// expansion recursed out of order. Continuing would silently produce a
	// diagram that is not an ROBDD.
	if b.nodes[k.low].level <= k.level || b.nodes[k.high].level <= k.level {
		panic(fmt.Sprintf("robdd: broken variable ordering at level %d (low %d, high %d)", k.level, k.low, k.high))
	}
	res := Node(len(b.nodes))
	b.nodes = append(b.nodes, node{level: k.level, low: k.low, high: k.high})
	b.unique[k] = res
	b.produced++
	return res
}
