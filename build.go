// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

import (
	"fmt"
	"log"

	"github.com/yahav20/ROBDD-Bulider/expr"
)

// memoKey identifies one cofactor of the expression being built: the
// canonical form of the residual expression after restriction, paired with
// the level of the next variable to branch on. We key on the canonical
// string rather than on pointers since two restrictions may independently
// rebuild equivalent subtrees.
type memoKey struct {
	shape string
	pos   int
}

// Build returns the root of the ROBDD for expression e under the ordering of
// the BDD. The ordering must cover every variable appearing in e; otherwise
// Build returns an UnknownVariableError and allocates nothing. The result is
// deterministic: building the same expression twice against the same BDD
// returns the same address.
func (b *BDD) Build(e expr.Expr) (Node, error) {
	if len(b.order) == 0 {
		c, ok := e.(expr.Const)
		if !ok {
			return -1, ErrEmptyOrdering
		}
		return b.From(bool(c)), nil
	}
	for name := range expr.Vars(e) {
		if _, ok := b.index[name]; !ok {
			return -1, &UnknownVariableError{Name: name}
		}
	}
	// The expansion cache is scoped to this invocation; sharing across
	// builds happens in the unicity table, not here.
	memo := make(map[memoKey]Node)
	res := b.build(e, 0, memo)
	if _LOGLEVEL > 0 {
		log.Printf("built %d with %d cofactors cached\n", res, len(memo))
	}
	return res, nil
}

// build is the Shannon expansion at one level of the ordering: restrict the
// expression on the false and true branches of the current variable, recurse
// on both cofactors, and merge through makenode.
func (b *BDD) build(e expr.Expr, pos int, memo map[memoKey]Node) Node {
	if c, ok := e.(expr.Const); ok {
		return b.From(bool(c))
	}
	if pos == len(b.order) {
		// Every variable was substituted along this branch, so a residual
		// that is not constant means Restrict failed to fold it.
		panic(fmt.Sprintf("robdd: residual expression %q after exhausting the ordering", e))
	}
	name := b.order[pos]
	low := b.cofactor(expr.Restrict(e, name, false), pos+1, memo)
	high := b.cofactor(expr.Restrict(e, name, true), pos+1, memo)
	return b.makenode(int32(pos), low, high)
}

// cofactor builds the diagram of one residual expression, consulting the
// expansion cache first so that a subexpression shared between branches is
// only ever expanded once per level.
func (b *BDD) cofactor(e expr.Expr, pos int, memo map[memoKey]Node) Node {
	k := memoKey{shape: e.String(), pos: pos}
	if res, ok := memo[k]; ok {
		b.memoHit++
		return res
	}
	b.memoMiss++
	res := b.build(e, pos, memo)
	memo[k] = res
	return res
}
