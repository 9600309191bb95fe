package infer

import (
	"github.com/corelang/mlhm/internal/fresh"
	"github.com/corelang/mlhm/tyenv"
	"github.com/corelang/mlhm/types"
)

// generalize turns t into a scheme quantified over every type-variable
// free in t but not free in env — the let-polymorphism rule of spec.md
// §4.5: "quantify over free(t) \ free(env_after_s1)".
func generalize(t types.Type, env tyenv.Env) types.Scheme {
	free := types.FreeVarsOf(t)
	envFree := env.FreeVars()
	vars := types.NewVarSet()
	free.Range(func(id int) {
		if !envFree.Has(id) {
			vars.Add(id)
		}
	})
	return types.Scheme{Vars: vars, Type: t}
}

// instantiate replaces every quantified variable of sc with a fresh type
// variable minted from c, enabling a distinct instantiation of a
// polymorphic binding at each use site.
func instantiate(sc types.Scheme, c *fresh.Counter) types.Type {
	if sc.Vars.Len() == 0 {
		return sc.Type
	}
	mapping := make(map[int]types.Type, sc.Vars.Len())
	sc.Vars.Range(func(id int) {
		mapping[id] = types.NewVar(c.Next())
	})
	return substituteVars(sc.Type, mapping)
}

func substituteVars(t types.Type, mapping map[int]types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if nt, ok := mapping[t.Id]; ok {
			return nt
		}
		return t
	case *types.Arrow:
		return &types.Arrow{Arg: substituteVars(t.Arg, mapping), Ret: substituteVars(t.Ret, mapping)}
	case *types.List:
		return &types.List{Elem: substituteVars(t.Elem, mapping)}
	case *types.Tuple:
		elems := make([]types.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = substituteVars(e, mapping)
		}
		return &types.Tuple{Elems: elems}
	default:
		return t
	}
}
