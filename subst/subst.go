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

// Package subst implements finite substitutions from type-variable ids to
// types (spec.md §4.1): apply, unify, compose, compose_all, with an
// occurs-check on every binding. A Subst is backed by a persistent
// (benbjohnson/immutable) sorted map, the same data structure the teacher
// used for its extensible-row label maps, so that one substitution may be
// extended many times along different unification branches without two
// branches observing each other's bindings.
package subst

import (
	"github.com/benbjohnson/immutable"

	"github.com/corelang/mlhm/errs"
	"github.com/corelang/mlhm/types"
)

type intComparer struct{}

func (intComparer) Compare(a, b interface{}) int {
	x, y := a.(int), b.(int)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

var emptyMap = immutable.NewSortedMap(intComparer{})

// Subst is a finite map from type-variable id to Type.
type Subst struct {
	m *immutable.SortedMap
}

// Empty is the substitution with no mappings.
func Empty() Subst { return Subst{emptyMap} }

func (s Subst) backing() *immutable.SortedMap {
	if s.m == nil {
		return emptyMap
	}
	return s.m
}

// Len returns the number of mappings in s.
func (s Subst) Len() int { return s.backing().Len() }

// Find looks up the type bound to a type-variable id.
func (s Subst) Find(id int) (types.Type, bool) {
	v, ok := s.backing().Get(id)
	if !ok {
		return nil, false
	}
	return v.(types.Type), true
}

// Remove removes a mapping, if present.
func (s Subst) Remove(id int) Subst { return Subst{s.backing().Delete(id)} }

// Singleton creates a substitution with exactly one mapping, {id -> t}.
// Fails the occurs-check if id occurs free in t (unless t is exactly
// *types.Var{Id: id}, which is a no-op binding rather than a cycle).
func Singleton(id int, t types.Type) (Subst, error) {
	if v, ok := t.(*types.Var); ok && v.Id == id {
		return Empty(), nil
	}
	if types.FreeVarsOf(t).Has(id) {
		return Subst{}, &errs.OccursCheck{Var: id, Type: t}
	}
	return Subst{emptyMap.Set(id, t)}, nil
}

// Apply substitutes s through t, structurally. Leaves type-variables not
// bound in s unchanged.
func (s Subst) Apply(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if v, ok := s.Find(t.Id); ok {
			return v
		}
		return t
	case *types.Arrow:
		return &types.Arrow{Arg: s.Apply(t.Arg), Ret: s.Apply(t.Ret)}
	case *types.List:
		return &types.List{Elem: s.Apply(t.Elem)}
	case *types.Tuple:
		elems := make([]types.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = s.Apply(e)
		}
		return &types.Tuple{Elems: elems}
	case *types.Prim:
		return t
	default:
		return t
	}
}

// ApplyScheme substitutes s through a scheme's underlying type, first
// removing the scheme's quantifiers from s so that bound variables are
// never substituted through (capture-avoiding substitution, spec.md §4.3).
func (s Subst) ApplyScheme(sc types.Scheme) types.Scheme {
	restricted := s
	sc.Vars.Range(func(id int) { restricted = restricted.Remove(id) })
	return types.Scheme{Vars: sc.Vars, Type: restricted.Apply(sc.Type)}
}

// Unify computes the most general substitution that makes l and r equal
// types, per spec.md §4.1: matching primitives unify with no new bindings,
// a type-variable on either side binds (occurs-checked) to the other side,
// and structurally-matching Arrow/List/Tuple shapes recurse and compose
// their sub-results. Anything else, including mismatched tuple lengths,
// fails with UnificationFailed.
func Unify(l, r types.Type) (Subst, error) {
	if lv, ok := l.(*types.Var); ok {
		if rv, ok := r.(*types.Var); ok && rv.Id == lv.Id {
			return Empty(), nil
		}
		return Singleton(lv.Id, r)
	}
	if rv, ok := r.(*types.Var); ok {
		return Singleton(rv.Id, l)
	}

	switch lt := l.(type) {
	case *types.Prim:
		if rt, ok := r.(*types.Prim); ok && lt.Name == rt.Name {
			return Empty(), nil
		}
	case *types.Arrow:
		if rt, ok := r.(*types.Arrow); ok {
			sArg, err := Unify(lt.Arg, rt.Arg)
			if err != nil {
				return Subst{}, err
			}
			sRet, err := Unify(sArg.Apply(lt.Ret), sArg.Apply(rt.Ret))
			if err != nil {
				return Subst{}, err
			}
			return sArg.Compose(sRet)
		}
	case *types.List:
		if rt, ok := r.(*types.List); ok {
			return Unify(lt.Elem, rt.Elem)
		}
	case *types.Tuple:
		if rt, ok := r.(*types.Tuple); ok {
			if len(lt.Elems) != len(rt.Elems) {
				return Subst{}, &errs.UnificationFailed{Left: l, Right: r}
			}
			acc := Empty()
			for i := range lt.Elems {
				s, err := Unify(acc.Apply(lt.Elems[i]), acc.Apply(rt.Elems[i]))
				if err != nil {
					return Subst{}, err
				}
				acc, err = acc.Compose(s)
				if err != nil {
					return Subst{}, err
				}
			}
			return acc, nil
		}
	}
	return Subst{}, &errs.UnificationFailed{Left: l, Right: r}
}

// Compose composes s (as s1) with other (as s2): for every (k, v) in
// other, extend is folded into s. The result is confluent and idempotent
// over repeated application (spec.md §4.1).
func (s Subst) Compose(other Subst) (Subst, error) {
	acc := s
	it := other.backing().Iterator()
	for !it.Done() {
		k, v := it.Next()
		var err error
		acc, err = extend(k.(int), v.(types.Type), acc)
		if err != nil {
			return Subst{}, err
		}
	}
	return acc, nil
}

// ComposeAll left-folds Compose over Empty.
func ComposeAll(ss []Subst) (Subst, error) {
	acc := Empty()
	for _, s := range ss {
		var err error
		acc, err = acc.Compose(s)
		if err != nil {
			return Subst{}, err
		}
	}
	return acc, nil
}

// extend inserts (k, v) into acc: if k is unbound, the new value is
// re-applied through acc's existing codomain (so no previously-inserted
// entry is left referencing k once k is itself bound), then inserted. If
// k is already bound to v', v and v' are unified and the result is
// composed back into acc.
func extend(k int, v types.Type, acc Subst) (Subst, error) {
	if existing, ok := acc.Find(k); ok {
		u, err := Unify(v, existing)
		if err != nil {
			return Subst{}, err
		}
		return acc.Compose(u)
	}
	v2 := acc.Apply(v)
	single := Subst{emptyMap.Set(k, v2)}
	normalized := acc.backing()
	it := acc.backing().Iterator()
	for !it.Done() {
		kk, vv := it.Next()
		normalized = normalized.Set(kk, single.Apply(vv.(types.Type)))
	}
	return Subst{normalized.Set(k, v2)}, nil
}
