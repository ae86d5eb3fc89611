// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

import (
	"fmt"
	"log"
)

// BDD holds every node created while building diagrams over one fixed
// variable ordering. The zero value is not usable; call New.
type BDD struct {
	order  []string         // fixed variable ordering; position in the slice is the level
	index  map[string]int32 // variable name to level
	nodes  []node           // list of all the BDD nodes; constants are always kept at index 0 and 1
	unique map[triplet]Node // unicity table, associates each triplet to a single node
	varset [][2]Node        // for each variable, the nodes for its positive and negative form
	bddStats
	configs
}

// bddStats stores status information about a BDD.
type bddStats struct {
	produced     int // total number of decision nodes ever produced
	uniqueAccess int // accesses to the unique node table
	uniqueHit    int // entries actually found in the unique node table
	uniqueMiss   int // entries not found in the unique node table
	memoHit      int // entries found in the expansion cache during builds
	memoMiss     int // entries not found in the expansion cache during builds
}

// New initializes a BDD over the given variable ordering. The names must be
// pairwise distinct. An empty ordering is allowed; such a BDD can only build
// constant expressions.
//
// You can specify optional configuration parameters, such as Nodesize, to
// preallocate space in the node table. The initial size is not critical since
// the table grows on demand, but it has some impact on the efficiency of
// large builds.
func New(order []string, options ...func(*configs)) (*BDD, error) {
	c := makeconfigs(len(order))
	for _, f := range options {
		f(c)
	}
	varnum := int32(len(order))
	b := &BDD{
		order:   append([]string{}, order...),
		index:   make(map[string]int32, len(order)),
		nodes:   make([]node, 2, c.nodesize),
		unique:  make(map[triplet]Node, c.nodesize),
		varset:  make([][2]Node, len(order)),
		configs: *c,
	}
	for k, name := range order {
		if name == "" {
			return nil, fmt.Errorf("robdd: empty variable name at position %d", k)
		}
		if _, ok := b.index[name]; ok {
			return nil, fmt.Errorf("robdd: duplicate variable %q in ordering", name)
		}
		b.index[name] = int32(k)
	}
	// Constants always have the highest level.
	b.nodes[False] = node{level: varnum, low: False, high: False}
	b.nodes[True] = node{level: varnum, low: True, high: True}
	for k := range order {
		v0 := b.makenode(int32(k), False, True)
		v1 := b.makenode(int32(k), True, False)
		b.varset[k] = [2]Node{v0, v1}
	}
	if _LOGLEVEL > 0 {
		log.Printf("new BDD with %d variables\n", varnum)
	}
	return b, nil
}

// Varnum returns the number of variables in the ordering.
func (b *BDD) Varnum() int {
	return len(b.order)
}

// Order returns a copy of the variable ordering of the BDD.
func (b *BDD) Order() []string {
	return append([]string{}, b.order...)
}

// True returns the Node for the constant true.
func (b *BDD) True() Node {
	return True
}

// False returns the Node for the constant false.
func (b *BDD) False() Node {
	return False
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return True
	}
	return False
}

// Ithvar returns the node testing only the i'th variable of the ordering, in
// its positive form. The requested variable must be in the range
// [0..Varnum); Ithvar panics otherwise since this is a contract violation
// and not a recoverable condition.
func (b *BDD) Ithvar(i int) Node {
	if i < 0 || i >= len(b.varset) {
		panic(fmt.Sprintf("robdd: unknown variable index (%d) in call to Ithvar", i))
	}
	return b.varset[i][0]
}

// NIthvar returns the node for the negation of the i'th variable. See Ithvar
// for further info.
func (b *BDD) NIthvar(i int) Node {
	if i < 0 || i >= len(b.varset) {
		panic(fmt.Sprintf("robdd: unknown variable index (%d) in call to NIthvar", i))
	}
	return b.varset[i][1]
}

// Label returns the level of the variable tested at node n, meaning its
// position in the ordering. The result is -1 if n is a constant or not a
// valid address.
func (b *BDD) Label(n Node) int {
	if n < 2 || n >= len(b.nodes) {
		return -1
	}
	return int(b.nodes[n].level)
}

// Var returns the name of the variable tested at node n, or the empty string
// if n is a constant or not a valid address.
func (b *BDD) Var(n Node) string {
	if n < 2 || n >= len(b.nodes) {
		return ""
	}
	return b.order[b.nodes[n].level]
}

// Low returns the false branch of node n, or -1 if n is a constant or not a
// valid address.
func (b *BDD) Low(n Node) Node {
	if n < 2 || n >= len(b.nodes) {
		return -1
	}
	return b.nodes[n].low
}

// High returns the true branch of node n, or -1 if n is a constant or not a
// valid address.
func (b *BDD) High(n Node) Node {
	if n < 2 || n >= len(b.nodes) {
		return -1
	}
	return b.nodes[n].high
}

// IsTerminal reports whether n is one of the two constant nodes; when it is,
// value is the Boolean constant it stands for.
func (b *BDD) IsTerminal(n Node) (value bool, ok bool) {
	if n == False || n == True {
		return n == True, true
	}
	return false, false
}

// inorder reports whether n is a valid address in the node table.
func (b *BDD) inorder(n Node) bool {
	return n >= 0 && n < len(b.nodes)
}
