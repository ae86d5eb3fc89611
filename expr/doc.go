// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

/*
Package expr defines immutable Boolean expression trees over named variables,
together with a parser for a small textual formula language.

An expression is one of Const, Var, Not, or Bin, where Bin carries one of the
five binary connectives (& | ^ -> <->). The set of variants is closed:
consumers are expected to switch exhaustively over the four types.

The formula language accepted by Parse uses ! for negation, parentheses for
grouping, and the connectives above with the usual precedences (& binds
tightest, then ^, |, ->, and <-> last); -> and <-> are right-associative.
*/
package expr
