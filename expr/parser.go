// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package expr

import (
	"fmt"
	"strings"
)

// precedence of the infix connectives, low to high. Negation binds tighter
// than all of them.
var precedence = map[string]int{
	"<->": 1,
	"->":  2,
	"|":   3,
	"^":   4,
	"&":   5,
}

// Parse turns a textual formula such as "(a & !c) | (b ^ d)" into an
// expression tree. Variables are identifiers made of letters, digits and
// underscores, starting with a letter or an underscore.
func Parse(formula string) (Expr, error) {
	toks, err := tokenize(formula)
	if err != nil {
		return nil, err
	}
	e, i, err := parseExpr(toks, 0, 0)
	if err != nil {
		return nil, err
	}
	if i != len(toks) {
		return nil, fmt.Errorf("expr: trailing tokens %q", strings.Join(toks[i:], " "))
	}
	return e, nil
}

func tokenize(s string) ([]string, error) {
	tokens := []string{}
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isIdentStart(ch):
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		case strings.IndexByte("()!&|^", ch) >= 0:
			tokens = append(tokens, string(ch))
			i++
		case strings.HasPrefix(s[i:], "<->"):
			tokens = append(tokens, "<->")
			i += 3
		case strings.HasPrefix(s[i:], "->"):
			tokens = append(tokens, "->")
			i += 2
		default:
			return nil, fmt.Errorf("expr: unexpected character at %d: %q", i, truncate(s[i:], 10))
		}
	}
	return tokens, nil
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9')
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// parseExpr is a Pratt parser over the token list: parse one prefix operand
// starting at i, then fold infix connectives of precedence at least minPrec.
func parseExpr(toks []string, i, minPrec int) (Expr, int, error) {
	if i >= len(toks) {
		return nil, i, fmt.Errorf("expr: unexpected end of input")
	}
	var lhs Expr
	switch tok := toks[i]; {
	case tok == "!":
		rhs, j, err := parseExpr(toks, i+1, precedence["&"]+1)
		if err != nil {
			return nil, j, err
		}
		lhs = Not{X: rhs}
		i = j
	case tok == "(":
		inner, j, err := parseExpr(toks, i+1, 0)
		if err != nil {
			return nil, j, err
		}
		if j >= len(toks) || toks[j] != ")" {
			return nil, j, fmt.Errorf("expr: missing ')'")
		}
		lhs = inner
		i = j + 1
	case isIdentStart(tok[0]):
		lhs = Var(tok)
		i++
	default:
		return nil, i, fmt.Errorf("expr: unexpected token %q", tok)
	}
	for i < len(toks) {
		op := toks[i]
		prec, ok := precedence[op]
		if !ok || prec < minPrec {
			break
		}
		// -> and <-> associate to the right, the other connectives to the
		// left
		nextMin := prec + 1
		if op == "->" || op == "<->" {
			nextMin = prec
		}
		rhs, j, err := parseExpr(toks, i+1, nextMin)
		if err != nil {
			return nil, j, err
		}
		switch op {
		case "&":
			lhs = And(lhs, rhs)
		case "|":
			lhs = Or(lhs, rhs)
		case "^":
			lhs = Xor(lhs, rhs)
		case "->":
			lhs = Implies(lhs, rhs)
		case "<->":
			lhs = Iff(lhs, rhs)
		}
		i = j
	}
	return lhs, i, nil
}
