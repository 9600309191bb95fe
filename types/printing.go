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

package types

import (
	"strconv"
	"strings"
)

// TypeString renders t the way `val <name> : <type>` diagnostics render a
// type: arrows are right-associative and unparenthesized on the return
// side, tuple elements are joined by " * ", list types are suffixed with
// " list", and free type variables are lettered deterministically
// ('a, 'b, ..., 'z, 'a1, 'b1, ...) in the order they are first encountered.
func TypeString(t Type) string {
	p := &typePrinter{names: make(map[int]string)}
	p.write(t, false)
	return p.sb.String()
}

// SchemeString renders a scheme's underlying type using the same lettering
// rules as TypeString; the universal quantifier itself is never printed
// (matching spec.md's "val <name> : <type>" rendering contract).
func SchemeString(s Scheme) string { return TypeString(s.Type) }

type typePrinter struct {
	sb    strings.Builder
	names map[int]string
}

func (p *typePrinter) nameFor(id int) string {
	if name, ok := p.names[id]; ok {
		return name
	}
	n := len(p.names)
	letter := string(rune('a' + n%26))
	suffix := n / 26
	name := "'" + letter
	if suffix > 0 {
		name += strconv.Itoa(suffix)
	}
	p.names[id] = name
	return name
}

// write renders t; simple controls parenthesization of an arrow that
// appears as the argument of another arrow (left-nested arrows need
// parens; the outermost and return-position arrows never do).
func (p *typePrinter) write(t Type, simple bool) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(p.nameFor(t.Id))

	case *Prim:
		p.sb.WriteString(t.Name)

	case *List:
		p.write(t.Elem, true)
		p.sb.WriteString(" list")

	case *Tuple:
		if simple {
			p.sb.WriteByte('(')
		}
		for i, e := range t.Elems {
			if i > 0 {
				p.sb.WriteString(" * ")
			}
			p.write(e, true)
		}
		if simple {
			p.sb.WriteByte(')')
		}

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		p.write(t.Arg, true)
		p.sb.WriteString(" -> ")
		p.write(t.Ret, false)
		if simple {
			p.sb.WriteByte(')')
		}

	default:
		p.sb.WriteString("<?>")
	}
}
