// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

import (
	"fmt"
	"math/big"
)

// Eval follows the low and high edges from node n under a variable
// assignment and returns the Boolean constant reached. The assignment must
// bind every variable tested along the path; unrelated variables may be
// absent.
func (b *BDD) Eval(n Node, assignment map[string]bool) (bool, error) {
	if !b.inorder(n) {
		return false, fmt.Errorf("robdd: %d is not a valid node in call to Eval", n)
	}
	for n > 1 {
		name := b.order[b.nodes[n].level]
		v, ok := assignment[name]
		if !ok {
			return false, fmt.Errorf("robdd: no assignment for variable %q in call to Eval", name)
		}
		if v {
			n = b.nodes[n].high
		} else {
			n = b.nodes[n].low
		}
	}
	return n == True, nil
}

// Satcount computes the number of satisfying variable assignments for the
// function rooted at n. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows, and nil if n is not a valid node.
func (b *BDD) Satcount(n Node) *big.Int {
	if !b.inorder(n) {
		return nil
	}
	memo := make(map[Node]*big.Int)
	res := new(big.Int).Set(b.satcount(n, memo))
	// assignments of the variables tested above the root
	return res.Lsh(res, uint(b.nodes[n].level))
}

func (b *BDD) satcount(n Node, memo map[Node]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	if res, ok := memo[n]; ok {
		return res
	}
	nd := b.nodes[n]
	low := new(big.Int).Lsh(b.satcount(nd.low, memo), uint(b.nodes[nd.low].level-nd.level-1))
	high := new(big.Int).Lsh(b.satcount(nd.high, memo), uint(b.nodes[nd.high].level-nd.level-1))
	res := low.Add(low, high)
	memo[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length Varnum to f
// where each entry is either 0 if the variable is false, 1 if it is true,
// and -1 if it is a don't care. The slice is reused between calls and must
// not be retained. We stop and return an error if f returns an error at some
// point.
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if !b.inorder(n) {
		return fmt.Errorf("robdd: %d is not a valid node in call to Allsat", n)
	}
	prof := make([]int, len(b.order))
	for i := range prof {
		prof[i] = -1
	}
	return b.allsat(n, prof, f)
}

func (b *BDD) allsat(n Node, prof []int, f func([]int) error) error {
	if n == False {
		return nil
	}
	if n == True {
		return f(prof)
	}
	nd := b.nodes[n]
	prof[nd.level] = 0
	if err := b.allsat(nd.low, prof, f); err != nil {
		return err
	}
	prof[nd.level] = 1
	if err := b.allsat(nd.high, prof, f); err != nil {
		return err
	}
	prof[nd.level] = -1
	return nil
}

// Allnodes iterates over all the nodes reachable from one of the parameters
// in n (or over the whole node table if n is absent) and calls f on each of
// them. Function f takes the id, level, and ids of the low and high
// successors of each node. The two constant nodes (True and False) have
// always the id 1 and 0 respectively and are reported first. One node is
// reported exactly once even when several roots share it.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	if err := f(False, len(b.order), False, False); err != nil {
		return err
	}
	if err := f(True, len(b.order), True, True); err != nil {
		return err
	}
	if len(n) == 0 {
		for k := 2; k < len(b.nodes); k++ {
			nd := b.nodes[k]
			if err := f(k, int(nd.level), nd.low, nd.high); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[Node]bool)
	for _, root := range n {
		if !b.inorder(root) {
			return fmt.Errorf("robdd: %d is not a valid node in call to Allnodes", root)
		}
		if err := b.walk(root, seen, f); err != nil {
			return err
		}
	}
	return nil
}

func (b *BDD) walk(n Node, seen map[Node]bool, f func(id, level, low, high int) error) error {
	if n < 2 || seen[n] {
		return nil
	}
	seen[n] = true
	nd := b.nodes[n]
	if err := f(n, int(nd.level), nd.low, nd.high); err != nil {
		return err
	}
	if err := b.walk(nd.low, seen, f); err != nil {
		return err
	}
	return b.walk(nd.high, seen, f)
}
