// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

/*
Package robdd builds Reduced Ordered Binary Decision Diagrams (ROBDD), a
canonical DAG representation of Boolean functions over a fixed, ordered set of
variables.

Basics

A BDD is created with New from a variable ordering: a list of distinct
variable names whose position in the list is the variable's level. The
ordering is fixed for the lifetime of the BDD. Expressions (see the expr
subpackage) are turned into diagrams with Build, which runs a recursive
Shannon expansion along the ordering and returns the address of the root
vertex.

We use plain integers to address the vertices of a diagram, with the
convention that 1 (respectively 0) is the address of the constant function
True (respectively False). All the nodes created during a build are owned by
the BDD and stay valid until the BDD itself is dropped; there is no node-level
reclamation.

Canonicity

The diagrams are reduced and shared: no vertex has two equal branches, and no
two distinct vertices test the same variable with the same pair of branches.
As a consequence two expressions denote the same Boolean function exactly when
Build returns the same root address for both, provided both builds go through
the same BDD. Building against separate BDD values keeps them fully isolated;
passing the same BDD to several builds is the way to opt into cross-build
sharing.

Use of build tags

To unlock logging of some operations you can compile your executable with the
build tag `debug`.
*/
package robdd
