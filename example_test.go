// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd_test

import (
	"fmt"
	"os"

	robdd "github.com/yahav20/ROBDD-Bulider"
	"github.com/yahav20/ROBDD-Bulider/expr"
)

// This example shows the basic usage of the package: parse a formula, build
// its ROBDD under an explicit variable ordering, and query the result.
func Example_basic() {
	e, _ := expr.Parse("(a & !c) | (b ^ d)")
	bdd, _ := robdd.New([]string{"a", "b", "c", "d"})
	root, _ := bdd.Build(e)
	fmt.Printf("ROBDD Root ID: %d\n", root)
	fmt.Printf("Number of satisfying assignments: %s\n", bdd.Satcount(root))
	// Output:
	// ROBDD Root ID: 14
	// Number of satisfying assignments: 10
}

// Diagrams can be exported in the DOT format of Graphviz, here on the
// standard output.
func Example_dot() {
	e, _ := expr.Parse("a & !b")
	bdd, _ := robdd.New([]string{"a", "b"})
	root, _ := bdd.Build(e)
	bdd.Dot(os.Stdout, root)
	// Output:
	// digraph ROBDD {
	// rankdir=TB;
	// 0 [shape=box, label="0", style=filled, fillcolor="#ffcccc", height=0.3, width=0.3];
	// 1 [shape=box, label="1", style=filled, fillcolor="#ccffcc", height=0.3, width=0.3];
	// 5 [shape=circle, label="b"];
	// 5 -> 1 [label="0", style=dashed, color=red];
	// 5 -> 0 [label="1", style=solid, color=blue];
	// 6 [shape=circle, label="a"];
	// 6 -> 0 [label="0", style=dashed, color=red];
	// 6 -> 5 [label="1", style=solid, color=blue];
	// }
}
