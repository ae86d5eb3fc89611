// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

// Node is the address of a vertex in a BDD. It is the atomic unit of
// interactions with a diagram: Build returns the Node of the root vertex and
// accessors such as Low and High navigate from one Node to another. Addresses
// 0 and 1 are reserved for the constant functions False and True.
type Node = int

// False is the address of the constant function false.
const False Node = 0

// True is the address of the constant function true.
const True Node = 1

// node is a vertex of the diagram. Decision nodes test the variable at the
// given level and branch to low when it is false and to high when it is true.
// The two constant nodes are kept at index 0 and 1 of the node table with
// both branches looping on themselves, and their level set to the number of
// variables so that every decision node compares strictly lower.
type node struct {
	level int32 // Order of the variable in the BDD
	low   Node  // Reference to the false branch
	high  Node  // Reference to the true branch
}

// triplet is the key of the unicity table. Two structurally identical
// decision nodes always hash to the same triplet.
type triplet struct {
	level int32
	low   Node
	high  Node
}
