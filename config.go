// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

// configs is used to store the values of different parameters of the BDD.
type configs struct {
	varnum   int // number of BDD variables
	nodesize int // initial capacity of the node table
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	// we build enough nodes to include the two constants and all the
	// variables in varset
	c.nodesize = 2*varnum + 2
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial capacity for the node table. The table grows
// during computation, so the value is only a hint. By default we create a
// table large enough to include the two constants and the "variables" used
// in the calls to Ithvar and NIthvar.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}
