// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package expr

// Operator identifies one of the binary connectives of an expression tree.
type Operator int

const (
	OPand   Operator = iota // Boolean conjunction
	OPor                    // Disjunction
	OPxor                   // Exclusive or
	OPimp                   // Implication
	OPbiimp                 // Equivalence
	opcount
)

var opnames = [opcount]string{
	OPand:   "&",
	OPor:    "|",
	OPxor:   "^",
	OPimp:   "->",
	OPbiimp: "<->",
}

func (op Operator) String() string {
	return opnames[op]
}

// opres gives the truth table of each operator, indexed by the left and
// right operand.
var opres = [opcount][2][2]bool{
	//                   l0r0   l0r1            l1r0  l1r1
	OPand:   {0: [2]bool{false, false}, 1: [2]bool{false, true}}, // 0001
	OPor:    {0: [2]bool{false, true}, 1: [2]bool{true, true}},   // 0111
	OPxor:   {0: [2]bool{false, true}, 1: [2]bool{true, false}},  // 0110
	OPimp:   {0: [2]bool{true, true}, 1: [2]bool{false, true}},   // 1101
	OPbiimp: {0: [2]bool{true, false}, 1: [2]bool{false, true}},  // 1001
}

// Truth returns the value of the operator applied to two constants.
func (op Operator) Truth(left, right bool) bool {
	return opres[op][b2i(left)][b2i(right)]
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
