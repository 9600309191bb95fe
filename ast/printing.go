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

// ExprString and PatString below are debug stringers used by tests and
// error messages; they are not the final lowered-text printer described in
// spec.md §1, which remains an external collaborator.
package ast

import "strings"

// ExprString renders expr as a single-line, parseable-looking surface
// form, for use in test fixtures and diagnostics.
func ExprString(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

// PatString renders pat the same way.
func PatString(p Pattern) string {
	var sb strings.Builder
	writePat(&sb, p)
	return sb.String()
}

func writePat(sb *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *PAny:
		sb.WriteString("_")
	case *PConst:
		sb.WriteString(p.Value.String())
	case *PVar:
		sb.WriteString(p.Name)
	case *PCons:
		writePat(sb, p.Head)
		sb.WriteString(" :: ")
		writePat(sb, p.Tail)
	case *PTuple:
		sb.WriteByte('(')
		for i, e := range p.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writePat(sb, e)
		}
		sb.WriteByte(')')
	case *PConstraint:
		sb.WriteByte('(')
		writePat(sb, p.Pat)
		sb.WriteString(" : ")
		writeAnnot(sb, p.Annot)
		sb.WriteByte(')')
	default:
		sb.WriteString("<?pat>")
	}
}

func writeAnnot(sb *strings.Builder, a TypeAnnot) {
	switch a := a.(type) {
	case *AInt:
		sb.WriteString("int")
	case *ABool:
		sb.WriteString("bool")
	case *AString:
		sb.WriteString("string")
	case *AUnit:
		sb.WriteString("unit")
	case *AList:
		writeAnnot(sb, a.Elem)
		sb.WriteString(" list")
	case *ATuple:
		for i, e := range a.Elems {
			if i > 0 {
				sb.WriteString(" * ")
			}
			writeAnnot(sb, e)
		}
	case *AArrow:
		writeAnnot(sb, a.Arg)
		sb.WriteString(" -> ")
		writeAnnot(sb, a.Ret)
	case *AVar:
		sb.WriteString("'")
		sb.WriteString(a.Name)
	default:
		sb.WriteString("<?ty>")
	}
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *EConst:
		sb.WriteString(e.Value.String())
	case *EVar:
		sb.WriteString(e.Name)
	case *EApply:
		writeExpr(sb, e.Fun)
		sb.WriteByte(' ')
		writeExpr(sb, e.Arg)
	case *EIf:
		sb.WriteString("if ")
		writeExpr(sb, e.Cond)
		sb.WriteString(" then ")
		writeExpr(sb, e.Then)
		sb.WriteString(" else ")
		writeExpr(sb, e.Else)
	case *EFun:
		sb.WriteString("fun ")
		writePat(sb, e.Param)
		sb.WriteString(" -> ")
		writeExpr(sb, e.Body)
	case *ELet:
		sb.WriteString("let ")
		if e.Rec {
			sb.WriteString("rec ")
		}
		writePat(sb, e.Pat)
		sb.WriteString(" = ")
		writeExpr(sb, e.Value)
		sb.WriteString(" in ")
		writeExpr(sb, e.Body)
	case *EMatch:
		sb.WriteString("match ")
		writeExpr(sb, e.Scrutinee)
		sb.WriteString(" with")
		for _, c := range e.Cases {
			sb.WriteString(" | ")
			writePat(sb, c.Pat)
			sb.WriteString(" -> ")
			writeExpr(sb, c.Body)
		}
	case *ETuple:
		sb.WriteByte('(')
		for i, el := range e.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, el)
		}
		sb.WriteByte(')')
	case *ECons:
		writeExpr(sb, e.Head)
		sb.WriteString(" :: ")
		writeExpr(sb, e.Tail)
	case *EConstraint:
		sb.WriteByte('(')
		writeExpr(sb, e.Expr)
		sb.WriteString(" : ")
		writeAnnot(sb, e.Annot)
		sb.WriteByte(')')
	default:
		sb.WriteString("<?expr>")
	}
}
