// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package expr

import "fmt"

// Expr is a node in an immutable Boolean expression tree. The String method
// returns a fully parenthesized canonical form: two expressions are
// structurally identical exactly when their strings are equal.
type Expr interface {
	fmt.Stringer
	// Helper method to construct the set of free variables efficiently for
	// each variant.
	vars(map[string]struct{})
}

// Const is one of the Boolean constants.
type Const bool

func (c Const) String() string {
	if c {
		return "true"
	}
	return "false"
}

func (c Const) vars(map[string]struct{}) {}

// Var is a variable leaf, named by its string identifier.
type Var string

func (v Var) String() string {
	return string(v)
}

func (v Var) vars(acc map[string]struct{}) {
	acc[string(v)] = struct{}{}
}

// Not is the negation of an expression.
type Not struct {
	X Expr
}

func (n Not) String() string {
	return fmt.Sprintf("!%s", n.X)
}

func (n Not) vars(acc map[string]struct{}) {
	n.X.vars(acc)
}

// Bin applies one of the binary connectives to two subexpressions.
type Bin struct {
	Op Operator
	L  Expr
	R  Expr
}

func (e Bin) String() string {
	return fmt.Sprintf("(%s %s %s)", e.L, e.Op, e.R)
}

func (e Bin) vars(acc map[string]struct{}) {
	e.L.vars(acc)
	e.R.vars(acc)
}

// Vars returns the set of free variables of an expression.
func Vars(e Expr) map[string]struct{} {
	acc := make(map[string]struct{})
	e.vars(acc)
	return acc
}

// Convenience constructors for the binary connectives.

// And returns the conjunction of two expressions.
func And(l, r Expr) Expr { return Bin{Op: OPand, L: l, R: r} }

// Or returns the disjunction of two expressions.
func Or(l, r Expr) Expr { return Bin{Op: OPor, L: l, R: r} }

// Xor returns the exclusive or of two expressions.
func Xor(l, r Expr) Expr { return Bin{Op: OPxor, L: l, R: r} }

// Implies returns the implication of two expressions.
func Implies(l, r Expr) Expr { return Bin{Op: OPimp, L: l, R: r} }

// Iff returns the bi-implication of two expressions.
func Iff(l, r Expr) Expr { return Bin{Op: OPbiimp, L: l, R: r} }
