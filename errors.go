// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

package robdd

import (
	"errors"
	"fmt"
)

// ErrEmptyOrdering is returned by Build when the BDD was created with an
// empty ordering but the expression is not a constant.
var ErrEmptyOrdering = errors.New("robdd: empty ordering for a non-constant expression")

// UnknownVariableError is returned by Build when the expression references a
// variable that is absent from the ordering of the BDD. The input is
// malformed, not transient: the build is aborted and nothing is allocated.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("robdd: variable %q is not in the ordering", e.Name)
}
