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

// Package ast describes the surface syntax this core consumes: constants,
// patterns, expressions, and top-level structure items. The lexer/parser
// that produces values of these types is an external collaborator; this
// package only carries the tree shapes and the handful of constructors and
// stringers that the inference and pattern-elimination passes (and their
// tests) exercise directly.
package ast

import "strconv"

// ConstKind distinguishes the five kinds of surface constant.
type ConstKind int

const (
	CInt ConstKind = iota
	CBool
	CString
	CUnit
	CNil // the empty-list marker `[]`
)

// Const is a literal constant: an integer, boolean, string, unit, or the
// empty-list marker.
type Const struct {
	Kind ConstKind
	Int  int
	Bool bool
	Str  string
}

func Int(v int) Const      { return Const{Kind: CInt, Int: v} }
func Bool(v bool) Const    { return Const{Kind: CBool, Bool: v} }
func String(v string) Const { return Const{Kind: CString, Str: v} }
func Unit() Const          { return Const{Kind: CUnit} }
func Nil() Const           { return Const{Kind: CNil} }

func (c Const) String() string {
	switch c.Kind {
	case CInt:
		return strconv.Itoa(c.Int)
	case CBool:
		if c.Bool {
			return "true"
		}
		return "false"
	case CString:
		return "\"" + c.Str + "\""
	case CUnit:
		return "()"
	case CNil:
		return "[]"
	}
	return "<?const>"
}
