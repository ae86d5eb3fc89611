// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package expr

import "fmt"

// Restrict substitutes value for every occurrence of the named variable in e
// and constant-folds the result. Folding is trivial on purpose: connectives
// over known constants are evaluated, and the unit and absorbing cases
// (such as false & x or true | x) collapse, but no further simplification is
// attempted. An expression whose variables have all been substituted always
// folds to a Const.
func Restrict(e Expr, name string, value bool) Expr {
	switch e := e.(type) {
	case Const:
		return e
	case Var:
		if string(e) == name {
			return Const(value)
		}
		return e
	case Not:
		return negate(Restrict(e.X, name, value))
	case Bin:
		return combine(e.Op, Restrict(e.L, name, value), Restrict(e.R, name, value))
	}
	panic(fmt.Sprintf("expr: unknown expression type %T", e))
}

func negate(x Expr) Expr {
	if c, ok := x.(Const); ok {
		return !c
	}
	return Not{X: x}
}

// combine rebuilds a binary node over already-restricted operands, folding
// the cases where one or both of them are constants.
func combine(op Operator, l, r Expr) Expr {
	lc, lok := l.(Const)
	rc, rok := r.(Const)
	switch {
	case lok && rok:
		return Const(op.Truth(bool(lc), bool(rc)))
	case lok:
		return foldLeft(op, bool(lc), r)
	case rok:
		return foldRight(op, l, bool(rc))
	}
	return Bin{Op: op, L: l, R: r}
}

// foldLeft reduces op(l, r) when only the left operand is a constant.
func foldLeft(op Operator, l bool, r Expr) Expr {
	switch op {
	case OPand:
		if l {
			return r
		}
		return Const(false)
	case OPor:
		if l {
			return Const(true)
		}
		return r
	case OPxor:
		if l {
			return negate(r)
		}
		return r
	case OPimp:
		if l {
			return r
		}
		return Const(true)
	case OPbiimp:
		if l {
			return r
		}
		return negate(r)
	}
	panic(fmt.Sprintf("expr: unknown operator %d", op))
}

// foldRight reduces op(l, r) when only the right operand is a constant.
func foldRight(op Operator, l Expr, r bool) Expr {
	switch op {
	case OPand:
		if r {
			return l
		}
		return Const(false)
	case OPor:
		if r {
			return Const(true)
		}
		return l
	case OPxor:
		if r {
			return negate(l)
		}
		return l
	case OPimp:
		if r {
			return Const(true)
		}
		return negate(l)
	case OPbiimp:
		if r {
			return l
		}
		return negate(l)
	}
	panic(fmt.Sprintf("expr: unknown operator %d", op))
}
