// Package errs collects the error kinds shared across substitution,
// inference, and pattern elimination (spec.md §7): every failure path in
// this core returns one of these, never an ad-hoc string error, so a
// caller can discriminate kinds with errors.As.
package errs

import (
	"strconv"

	"github.com/corelang/mlhm/types"
)

// OccursCheck is returned when binding a type-variable to a type would
// create an infinite type (the variable occurs free in the type).
type OccursCheck struct {
	Var  int
	Type types.Type
}

func (e *OccursCheck) Error() string {
	return "occurs check failed: '_" + strconv.Itoa(e.Var) + " occurs in " + types.TypeString(e.Type)
}

// NoVariable is returned when an expression or pattern references an
// identifier with no binding in the current type environment.
type NoVariable struct {
	Name string
}

func (e *NoVariable) Error() string { return "unbound variable " + e.Name }

// UnificationFailed is returned when two types cannot be unified,
// including the tuple length-mismatch case.
type UnificationFailed struct {
	Left, Right types.Type
}

func (e *UnificationFailed) Error() string {
	return "cannot unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}

// PatternMatching is reserved for a dynamic pattern-match failure at
// compile-time analysis. Neither infer nor elim currently produces it
// (spec.md §7 carries it only for completeness), but it is exported so a
// downstream static-exhaustiveness pass (out of this core's scope) can
// reuse the same error vocabulary.
type PatternMatching struct {
	Detail string
}

func (e *PatternMatching) Error() string { return "pattern matching error: " + e.Detail }

// NotImplemented is returned for constructs the core deliberately does
// not support, e.g. a recursive binding whose pattern is not a plain
// variable.
type NotImplemented struct {
	Where string
}

func (e *NotImplemented) Error() string { return "not implemented: " + e.Where }

// EmptyLet is returned for a `let` with zero bindings.
type EmptyLet struct{}

func (e *EmptyLet) Error() string { return "let with no bindings" }
