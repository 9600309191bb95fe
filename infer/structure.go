package infer

import (
	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/errs"
	"github.com/corelang/mlhm/internal/fresh"
	"github.com/corelang/mlhm/subst"
	"github.com/corelang/mlhm/tyenv"
	"github.com/corelang/mlhm/types"
)

// InferStrItem infers one top-level structure item, returning the
// environment extended with any new bindings (spec.md §4.5 applies the
// ELet rules to each binding in a value group; SEval is inferred only for
// its side effect of catching type errors).
func InferStrItem(env tyenv.Env, item ast.StrItem, counter *fresh.Counter) (tyenv.Env, error) {
	switch item := item.(type) {
	case *ast.SValue:
		if len(item.Bindings) == 0 {
			return env, &errs.EmptyLet{}
		}
		curEnv := env
		for _, b := range item.Bindings {
			var err error
			if item.Rec {
				curEnv, err = inferRecBinding(curEnv, b, counter)
			} else {
				curEnv, err = inferNonrecBinding(curEnv, b, counter)
			}
			if err != nil {
				return env, err
			}
		}
		return curEnv, nil

	case *ast.SEval:
		_, _, err := InferExpr(env, item.Expr, counter)
		if err != nil {
			return env, err
		}
		return env, nil

	default:
		return env, &errs.NotImplemented{Where: "structure item kind"}
	}
}

func inferNonrecBinding(env tyenv.Env, b ast.Binding, counter *fresh.Counter) (tyenv.Env, error) {
	s1, t1, err := InferExpr(env, b.Expr, counter)
	if err != nil {
		return env, err
	}
	env1 := env.Apply(s1)
	sigma := generalize(t1, env1)

	envP, t2, err := InferPat(env, b.Pat, counter)
	if err != nil {
		return env, err
	}
	env2 := tyenv.ExtByPat(envP, b.Pat, sigma)

	sUnify, err := subst.Unify(t1, t2)
	if err != nil {
		return env, err
	}
	sAll, err := subst.ComposeAll([]subst.Subst{s1, sUnify})
	if err != nil {
		return env, err
	}
	return env2.Apply(sAll), nil
}

func inferRecBinding(env tyenv.Env, b ast.Binding, counter *fresh.Counter) (tyenv.Env, error) {
	pv, ok := b.Pat.(*ast.PVar)
	if !ok {
		return env, &errs.NotImplemented{Where: "recursive let with a non-variable pattern"}
	}

	alpha := types.NewVar(counter.Next())
	envProv := env.Extend(pv.Name, types.Mono(alpha))

	s, t, err := InferExpr(envProv, b.Expr, counter)
	if err != nil {
		return env, err
	}
	su, err := subst.Unify(s.Apply(alpha), t)
	if err != nil {
		return env, err
	}
	s2, err := subst.ComposeAll([]subst.Subst{s, su})
	if err != nil {
		return env, err
	}

	env1 := env.Apply(s2)
	sigma := generalize(s2.Apply(t), env1)
	return env1.Extend(pv.Name, sigma), nil
}

// InferStructure is the top-level driver: it folds InferStrItem over
// InitialEnv with a single fresh-variable counter shared across every
// item, per spec.md §2's "top-level driver folds structure items
// threading an environment."
func InferStructure(structure ast.Structure) (tyenv.Env, error) {
	env := InitialEnv()
	counter := fresh.NewCounter()
	for _, item := range structure {
		var err error
		env, err = InferStrItem(env, item, counter)
		if err != nil {
			return env, err
		}
	}
	return env, nil
}
