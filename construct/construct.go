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

// Package construct provides terse smart constructors for building surface
// ASTs in tests, mirroring the teacher's construct package in spirit (short
// helpers returning concrete pointer types) but rebuilt for this module's
// expression and pattern shapes.
package construct

import "github.com/corelang/mlhm/ast"

// Patterns

func PAny() *ast.PAny                { return &ast.PAny{} }
func PVar(name string) *ast.PVar     { return &ast.PVar{Name: name} }
func PConst(c ast.Const) *ast.PConst { return &ast.PConst{Value: c} }
func PCons(head, tail ast.Pattern) *ast.PCons { return &ast.PCons{Head: head, Tail: tail} }
func PTuple(elems ...ast.Pattern) *ast.PTuple { return &ast.PTuple{Elems: elems} }
func PConstraint(p ast.Pattern, ty ast.TypeAnnot) *ast.PConstraint {
	return &ast.PConstraint{Pat: p, Annot: ty}
}

// Expressions

func Const(c ast.Const) *ast.EConst   { return &ast.EConst{Value: c} }
func Var(name string) *ast.EVar       { return &ast.EVar{Name: name} }
func Apply(f, x ast.Expr) *ast.EApply { return &ast.EApply{Fun: f, Arg: x} }

// ApplyN curries a multi-argument application: `f x y z` becomes
// `((f x) y) z`, matching how the surface syntax's curried calls desugar.
func ApplyN(f ast.Expr, args ...ast.Expr) ast.Expr {
	e := f
	for _, a := range args {
		e = &ast.EApply{Fun: e, Arg: a}
	}
	return e
}

func If(cond, then, els ast.Expr) *ast.EIf   { return &ast.EIf{Cond: cond, Then: then, Else: els} }
func Fun(param ast.Pattern, body ast.Expr) *ast.EFun { return &ast.EFun{Param: param, Body: body} }

// FunN curries a multi-parameter function literal: `fun x y -> body`
// becomes `fun x -> fun y -> body`.
func FunN(body ast.Expr, params ...ast.Pattern) ast.Expr {
	e := body
	for i := len(params) - 1; i >= 0; i-- {
		e = &ast.EFun{Param: params[i], Body: e}
	}
	return e
}

func Let(pat ast.Pattern, value, body ast.Expr) *ast.ELet {
	return &ast.ELet{Pat: pat, Value: value, Body: body}
}

func LetRec(pat ast.Pattern, value, body ast.Expr) *ast.ELet {
	return &ast.ELet{Rec: true, Pat: pat, Value: value, Body: body}
}

func Match(scrutinee ast.Expr, cases ...ast.MatchCase) *ast.EMatch {
	return &ast.EMatch{Scrutinee: scrutinee, Cases: cases}
}

func Case(pat ast.Pattern, body ast.Expr) ast.MatchCase {
	return ast.MatchCase{Pat: pat, Body: body}
}

func Tuple(elems ...ast.Expr) *ast.ETuple { return &ast.ETuple{Elems: elems} }
func Cons(head, tail ast.Expr) *ast.ECons { return &ast.ECons{Head: head, Tail: tail} }

func Constraint(e ast.Expr, ty ast.TypeAnnot) *ast.EConstraint {
	return &ast.EConstraint{Expr: e, Annot: ty}
}

// Structure items

func Value(rec bool, pat ast.Pattern, e ast.Expr) *ast.SValue {
	return &ast.SValue{Rec: rec, Bindings: []ast.Binding{{Pat: pat, Expr: e}}}
}

func Eval(e ast.Expr) *ast.SEval { return &ast.SEval{Expr: e} }
