// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

// Expr is the base interface for all surface expressions.
type Expr interface {
	ExprName() string
}

var (
	_ Expr = (*EConst)(nil)
	_ Expr = (*EVar)(nil)
	_ Expr = (*EApply)(nil)
	_ Expr = (*EIf)(nil)
	_ Expr = (*EFun)(nil)
	_ Expr = (*ELet)(nil)
	_ Expr = (*EMatch)(nil)
	_ Expr = (*ETuple)(nil)
	_ Expr = (*ECons)(nil)
	_ Expr = (*EConstraint)(nil)
)

// EConst is a literal constant.
type EConst struct {
	Value Const
}

func (e *EConst) ExprName() string { return "EConst" }

// EVar is a variable reference.
type EVar struct {
	Name string
}

func (e *EVar) ExprName() string { return "EVar" }

// EApply is function application: `f x`.
type EApply struct {
	Fun Expr
	Arg Expr
}

func (e *EApply) ExprName() string { return "EApply" }

// EIf is a conditional: `if cond then t else f`.
type EIf struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *EIf) ExprName() string { return "EIf" }

// EFun is a function literal with a single (possibly destructuring)
// parameter pattern: `fun p -> body`. Curried multi-argument functions are
// represented as nested EFun nodes, as in the surface syntax.
type EFun struct {
	Param Pattern
	Body  Expr
}

func (e *EFun) ExprName() string { return "EFun" }

// ELet is a (possibly recursive) let-binding of a single pattern to a
// single expression, followed by a body: `let [rec] p = e1 in e2`.
type ELet struct {
	Rec   bool
	Pat   Pattern
	Value Expr
	Body  Expr
}

func (e *ELet) ExprName() string { return "ELet" }

// MatchCase is one `pat -> body` arm of a match expression.
type MatchCase struct {
	Pat  Pattern
	Body Expr
}

// EMatch is a pattern match over an ordered list of cases.
type EMatch struct {
	Scrutinee Expr
	Cases     []MatchCase
}

func (e *EMatch) ExprName() string { return "EMatch" }

// ETuple is a tuple literal of two or more elements.
type ETuple struct {
	Elems []Expr
}

func (e *ETuple) ExprName() string { return "ETuple" }

// ECons is list construction: `head :: tail`.
type ECons struct {
	Head Expr
	Tail Expr
}

func (e *ECons) ExprName() string { return "ECons" }

// EConstraint attaches a surface type annotation to an expression:
// `(e : ty)`.
type EConstraint struct {
	Expr  Expr
	Annot TypeAnnot
}

func (e *EConstraint) ExprName() string { return "EConstraint" }
