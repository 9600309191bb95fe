// Package tyenv implements the type environment (spec.md §4.2): a finite
// map from variable name to type scheme, plus the pattern-driven extension
// used to bind every name introduced by a pattern at once.
package tyenv

import (
	"github.com/benbjohnson/immutable"

	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/subst"
	"github.com/corelang/mlhm/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// Env is a finite map from variable name to type scheme.
type Env struct {
	m *immutable.SortedMap
}

// Empty is the environment with no bindings.
func Empty() Env { return Env{emptyMap} }

func (e Env) backing() *immutable.SortedMap {
	if e.m == nil {
		return emptyMap
	}
	return e.m
}

// Lookup returns the scheme bound to name, if any.
func (e Env) Lookup(name string) (types.Scheme, bool) {
	v, ok := e.backing().Get(name)
	if !ok {
		return types.Scheme{}, false
	}
	return v.(types.Scheme), true
}

// Extend returns a new environment with name bound to sc, shadowing any
// previous binding of name.
func (e Env) Extend(name string, sc types.Scheme) Env {
	return Env{e.backing().Set(name, sc)}
}

// Apply substitutes s through every scheme in e.
func (e Env) Apply(s subst.Subst) Env {
	out := e.backing()
	it := e.backing().Iterator()
	for !it.Done() {
		k, v := it.Next()
		out = out.Set(k, s.ApplyScheme(v.(types.Scheme)))
	}
	return Env{out}
}

// FreeVars is the union of the free type-variables of every scheme bound
// in e — the variables a let-generalization must not quantify over.
func (e Env) FreeVars() types.VarSet {
	out := types.NewVarSet()
	it := e.backing().Iterator()
	for !it.Done() {
		_, v := it.Next()
		for id := range v.(types.Scheme).FreeVars() {
			out.Add(id)
		}
	}
	return out
}

// ExtByPat extends e by binding every variable introduced by pat to a
// scheme sharing sc's quantifiers (sc.Vars) over the corresponding
// sub-type of sc.Type, recursing through PCons against List and PTuple
// against Tuple the way the pattern is shaped (spec.md §4.2: "extends the
// environment for every name bound by pat, assigning each name a scheme
// whose quantifiers are xs and whose type is the corresponding sub-type of
// t"). A pattern part that does not match the shape of its type part
// (e.g. a PTuple matched against a non-Tuple type, or a length mismatch)
// leaves that part of the environment unchanged. The inference callers run
// ExtByPat before unifying the bound value's type with the pattern's type,
// so a mismatch also arises whenever the value's type is not yet known to
// have the pattern's shape (e.g. a bare type variable); the names in that
// part then keep the bindings InferPat already gave them in e.
func ExtByPat(e Env, pat ast.Pattern, sc types.Scheme) Env {
	switch pat := pat.(type) {
	case *ast.PAny:
		return e
	case *ast.PConst:
		return e
	case *ast.PVar:
		return e.Extend(pat.Name, sc)
	case *ast.PCons:
		lt, ok := sc.Type.(*types.List)
		if !ok {
			return e
		}
		e = ExtByPat(e, pat.Head, types.Scheme{Vars: sc.Vars, Type: lt.Elem})
		e = ExtByPat(e, pat.Tail, types.Scheme{Vars: sc.Vars, Type: sc.Type})
		return e
	case *ast.PTuple:
		tt, ok := sc.Type.(*types.Tuple)
		if !ok || len(tt.Elems) != len(pat.Elems) {
			return e
		}
		for i, p := range pat.Elems {
			e = ExtByPat(e, p, types.Scheme{Vars: sc.Vars, Type: tt.Elems[i]})
		}
		return e
	case *ast.PConstraint:
		return ExtByPat(e, pat.Pat, sc)
	default:
		return e
	}
}
