// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/exp/slices"
)

// Stats returns information about the BDD: number of variables, number of
// allocated nodes, and hit/miss counters for the unicity table and the
// expansion cache.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", len(b.order))
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
	res += fmt.Sprintf("Memo Hit:       %d\n", b.memoHit)
	res += fmt.Sprintf("Memo Miss:      %d", b.memoMiss)
	return res
}

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	if n == False {
		return "False"
	}
	if n == True {
		return "True"
	}
	if !b.inorder(n) {
		return fmt.Sprintf("Error (%d not a valid index)", n)
	}
	return fmt.Sprintf("(%d[%s] ? %d : %d)", n, b.Var(n), b.nodes[n].high, b.nodes[n].low)
}

// PrintSet outputs a textual representation of the diagram with root n on the
// standard output.
func (b *BDD) PrintSet(n Node) error {
	return b.print(os.Stdout, n)
}

func (b *BDD) print(w io.Writer, n Node) error {
	if n == False {
		fmt.Fprintln(w, "False")
		return nil
	}
	if n == True {
		fmt.Fprintln(w, "True")
		return nil
	}
	nodes, err := b.reachable(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "node: %d\n", n)
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, v := range nodes {
		if v > 1 {
			fmt.Fprintf(tw, "%d\t[%s\t] ? \t%d\t : %d\n", v, b.Var(v), b.nodes[v].high, b.nodes[v].low)
		}
	}
	return tw.Flush()
}

// reachable returns the sorted ids of the nodes reachable from n, constants
// included.
func (b *BDD) reachable(n Node) ([]int, error) {
	nodes := []int{}
	err := b.Allnodes(func(id, level, low, high int) error {
		nodes = append(nodes, id)
		return nil
	}, n)
	if err != nil {
		return nil, err
	}
	slices.Sort(nodes)
	return nodes, nil
}

// ******************************************************************************************************

// Dot writes a graph-like description of the diagram with root n using the
// DOT format of Graphviz. Decision nodes are drawn as circles labeled with
// the variable name; the low branch is a dashed red arc and the high branch
// a solid blue one.
func (b *BDD) Dot(w io.Writer, n Node) error {
	if !b.inorder(n) {
		return fmt.Errorf("robdd: %d is not a valid node in call to Dot", n)
	}
	nodes, err := b.reachable(n)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph ROBDD {")
	fmt.Fprintln(bw, "rankdir=TB;")
	fmt.Fprintln(bw, `0 [shape=box, label="0", style=filled, fillcolor="#ffcccc", height=0.3, width=0.3];`)
	fmt.Fprintln(bw, `1 [shape=box, label="1", style=filled, fillcolor="#ccffcc", height=0.3, width=0.3];`)
	for _, v := range nodes {
		if v > 1 {
			fmt.Fprintf(bw, "%d [shape=circle, label=\"%s\"];\n", v, b.Var(v))
			fmt.Fprintf(bw, "%d -> %d [label=\"0\", style=dashed, color=red];\n", v, b.nodes[v].low)
			fmt.Fprintf(bw, "%d -> %d [label=\"1\", style=solid, color=blue];\n", v, b.nodes[v].high)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// FPrintDot writes the DOT description of the diagram with root n to the
// given file, with "-" meaning the standard output.
func (b *BDD) FPrintDot(filename string, n Node) error {
	if filename == "-" {
		return b.Dot(os.Stdout, n)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return b.Dot(out, n)
}
