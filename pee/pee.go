// Package pee describes the post-elimination expression (PEE) form
// produced by elim (spec.md §3): the lowered shape in which every binder
// is a plain name (or the literal "()" for a unit parameter slot), every
// destructuring has been rewritten as an explicit projection expression,
// and every match has been compiled to a chain of conditionals. Patterns
// never appear in a PEE.
package pee

import "github.com/corelang/mlhm/ast"

// Expr is the base interface for all post-elimination expressions.
type Expr interface {
	ExprName() string
}

var (
	_ Expr = (*Const)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Cons)(nil)
	_ Expr = (*Fun)(nil)
	_ Expr = (*Let)(nil)
)

// Const carries a literal value, reusing the surface constant
// representation directly since elimination never changes it.
type Const struct {
	Value ast.Const
}

func (e *Const) ExprName() string { return "Const" }

type Var struct {
	Name string
}

func (e *Var) ExprName() string { return "Var" }

type Apply struct {
	Fun Expr
	Arg Expr
}

func (e *Apply) ExprName() string { return "Apply" }

type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) ExprName() string { return "If" }

type Tuple struct {
	Elems []Expr
}

func (e *Tuple) ExprName() string { return "Tuple" }

type Cons struct {
	Head Expr
	Tail Expr
}

func (e *Cons) ExprName() string { return "Cons" }

// Fun is a function literal with a flat list of parameter names. A
// parameter name may be the literal "()" to denote a unit-valued
// parameter slot (spec.md §3).
type Fun struct {
	Params []string
	Body   Expr
}

func (e *Fun) ExprName() string { return "Fun" }

// Let is a single (possibly recursive) binding followed by a body.
type Let struct {
	Binding Binding
	Body    Expr
}

func (e *Let) ExprName() string { return "Let" }

// Binding is the base interface for post-elimination bindings.
type Binding interface {
	BindingName() string
}

var (
	_ Binding = (*Nonrec)(nil)
	_ Binding = (*Rec)(nil)
)

// Nonrec is a single non-recursive binding. Name may be empty to
// represent a destructure whose side binding is carried separately
// (spec.md §3, §4.6).
type Nonrec struct {
	Name string
	Expr Expr
}

func (b *Nonrec) BindingName() string { return "Nonrec" }

// NamedExpr pairs a binder name with its expression, used inside Rec.
type NamedExpr struct {
	Name string
	Expr Expr
}

// Rec is a group of mutually-recursive bindings.
type Rec struct {
	Bindings []NamedExpr
}

func (b *Rec) BindingName() string { return "Rec" }
