// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

// Command robdd builds the Reduced Ordered Binary Decision Diagram of a
// Boolean formula and renders it in the DOT format of Graphviz.
//
//	robdd "(a & !c) | (b ^ d)" -o diagram.dot
//	robdd --ordering d,c,b,a --view "(a & !c) | (b ^ d)"
//
// Without an explicit ordering the variables of the formula are taken in
// alphabetical order. With --view the DOT source is opened in the browser on
// GraphvizOnline instead of being written to a file.
package main

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	robdd "github.com/yahav20/ROBDD-Bulider"
	"github.com/yahav20/ROBDD-Bulider/expr"
)

const graphvizOnline = "https://dreampuf.github.io/GraphvizOnline/#"

var (
	output   string
	ordering string
	view     bool
	stats    bool
)

var rootCmd = &cobra.Command{
	Use:   "robdd \"formula\"",
	Short: "Build and visualize a Reduced Ordered Binary Decision Diagram (ROBDD)",
	Long: `Build the canonical ROBDD of a Boolean formula and export it in the
DOT format of Graphviz. Formulas use ! & | ^ -> <-> and parentheses, for
example "(a & !c) | (b ^ d)".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := expr.Parse(args[0])
		if err != nil {
			return err
		}
		var order []string
		if ordering != "" {
			for _, name := range strings.Split(ordering, ",") {
				order = append(order, strings.TrimSpace(name))
			}
		} else {
			order = maps.Keys(expr.Vars(e))
			slices.Sort(order)
		}
		b, err := robdd.New(order)
		if err != nil {
			return err
		}
		root, err := b.Build(e)
		if err != nil {
			return err
		}
		cmd.Printf("Formula:           %s\n", e)
		cmd.Printf("Variable Ordering: %s\n", strings.Join(order, ", "))
		cmd.Printf("ROBDD Root ID:     %d\n", root)
		if stats {
			fmt.Fprintln(os.Stderr, b.Stats())
		}
		if view {
			var buf bytes.Buffer
			if err := b.Dot(&buf, root); err != nil {
				return err
			}
			return browser.OpenURL(graphvizOnline + url.PathEscape(buf.String()))
		}
		if err := b.FPrintDot(output, root); err != nil {
			return err
		}
		if output != "-" {
			cmd.Printf("DOT file saved to: %s\n", output)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "robdd_output.dot", `output filename, "-" for stdout`)
	rootCmd.Flags().StringVar(&ordering, "ordering", "", "comma-separated variable ordering (default: alphabetical)")
	rootCmd.Flags().BoolVar(&view, "view", false, "open the diagram on GraphvizOnline instead of writing a file")
	rootCmd.Flags().BoolVar(&stats, "stats", false, "print node table and cache statistics on stderr")
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
