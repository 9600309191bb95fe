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

// Package types describes the monomorphic types and type schemes produced
// by Hindley-Milner inference: type variables, function (arrow) types,
// lists, tuples, and the four primitive type constants.
package types

import "strconv"

// Type is the base interface for all monomorphic types.
type Type interface {
	TypeName() string
	// Equal reports whether t and other are structurally identical types.
	// Type variables compare by id; Equal never consults a substitution.
	Equal(other Type) bool
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *List) TypeName() string  { return "List" }
func (t *Tuple) TypeName() string { return "Tuple" }
func (t *Prim) TypeName() string  { return "Prim" }

// Var is a type variable, identified by an integer id assigned by a
// fresh-name counter during inference.
type Var struct {
	Id int
}

// NewVar creates a type variable with the given id.
func NewVar(id int) *Var { return &Var{Id: id} }

func (t *Var) Equal(other Type) bool {
	o, ok := other.(*Var)
	return ok && o.Id == t.Id
}

// Arrow is a function type: `a -> b`.
type Arrow struct {
	Arg Type
	Ret Type
}

func (t *Arrow) Equal(other Type) bool {
	o, ok := other.(*Arrow)
	return ok && t.Arg.Equal(o.Arg) && t.Ret.Equal(o.Ret)
}

// List is a homogeneous list type: `t list`.
type List struct {
	Elem Type
}

func (t *List) Equal(other Type) bool {
	o, ok := other.(*List)
	return ok && t.Elem.Equal(o.Elem)
}

// Tuple is an ordered product of two or more types: `a * b * c`.
type Tuple struct {
	Elems []Type
}

func (t *Tuple) Equal(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(o.Elems) != len(t.Elems) {
		return false
	}
	for i, e := range t.Elems {
		if !e.Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Prim is one of the four built-in type constants: int, bool, string, unit.
type Prim struct {
	Name string
}

const (
	Int    = "int"
	Bool   = "bool"
	String = "string"
	Unit   = "unit"
)

var (
	TInt    = &Prim{Name: Int}
	TBool   = &Prim{Name: Bool}
	TString = &Prim{Name: String}
	TUnit   = &Prim{Name: Unit}
)

func (t *Prim) Equal(other Type) bool {
	o, ok := other.(*Prim)
	return ok && o.Name == t.Name
}

// String renders the raw id of a type variable as '_<id>, the unlettered
// form used by diagnostics that mention a raw variable (errs.OccursCheck
// prints its variable this way); TypeString letters variables instead.
func (t *Var) String() string { return "'_" + strconv.Itoa(t.Id) }
