// Package infer implements the Hindley-Milner inference engine (spec.md
// §4.4-§4.5): InferPat and InferExpr thread substitutions and a type
// environment through the surface AST, and InferStructure drives the
// top-level pass over a whole structure, producing a final environment or
// one of the errs kinds.
package infer

import (
	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/errs"
	"github.com/corelang/mlhm/internal/fresh"
	"github.com/corelang/mlhm/subst"
	"github.com/corelang/mlhm/tyenv"
	"github.com/corelang/mlhm/types"
)

func constType(c ast.Const, counter *fresh.Counter) types.Type {
	switch c.Kind {
	case ast.CInt:
		return types.TInt
	case ast.CBool:
		return types.TBool
	case ast.CString:
		return types.TString
	case ast.CUnit:
		return types.TUnit
	case ast.CNil:
		return &types.List{Elem: types.NewVar(counter.Next())}
	default:
		return types.TUnit
	}
}

// InferPat infers a pattern's type against env, returning the extended
// environment and the pattern's type (spec.md §4.4).
func InferPat(env tyenv.Env, pat ast.Pattern, counter *fresh.Counter) (tyenv.Env, types.Type, error) {
	switch pat := pat.(type) {
	case *ast.PAny:
		return env, types.NewVar(counter.Next()), nil

	case *ast.PConst:
		return env, constType(pat.Value, counter), nil

	case *ast.PVar:
		v := types.NewVar(counter.Next())
		return env.Extend(pat.Name, types.Mono(v)), v, nil

	case *ast.PCons:
		env1, th, err := InferPat(env, pat.Head, counter)
		if err != nil {
			return env, nil, err
		}
		env2, tt, err := InferPat(env1, pat.Tail, counter)
		if err != nil {
			return env, nil, err
		}
		s, err := subst.Unify(&types.List{Elem: th}, tt)
		if err != nil {
			return env, nil, err
		}
		return env2.Apply(s), s.Apply(tt), nil

	case *ast.PTuple:
		curEnv := env
		elems := make([]types.Type, len(pat.Elems))
		for i, p := range pat.Elems {
			var t types.Type
			var err error
			curEnv, t, err = InferPat(curEnv, p, counter)
			if err != nil {
				return env, nil, err
			}
			elems[i] = t
		}
		return curEnv, &types.Tuple{Elems: elems}, nil

	case *ast.PConstraint:
		env1, t, err := InferPat(env, pat.Pat, counter)
		if err != nil {
			return env, nil, err
		}
		s, err := subst.Unify(t, AnnotToType(pat.Annot))
		if err != nil {
			return env, nil, err
		}
		return env1.Apply(s), s.Apply(t), nil

	default:
		return env, nil, &errs.NotImplemented{Where: "pattern kind"}
	}
}

// InferExpr infers an expression's type in env, returning the
// substitution discovered while doing so and the expression's type
// (spec.md §4.5).
func InferExpr(env tyenv.Env, expr ast.Expr, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	switch expr := expr.(type) {
	case *ast.EConst:
		return subst.Empty(), constType(expr.Value, counter), nil

	case *ast.EVar:
		sc, ok := env.Lookup(expr.Name)
		if !ok {
			return subst.Subst{}, nil, &errs.NoVariable{Name: expr.Name}
		}
		return subst.Empty(), instantiate(sc, counter), nil

	case *ast.EIf:
		return inferIf(env, expr, counter)

	case *ast.EApply:
		return inferApply(env, expr, counter)

	case *ast.EFun:
		env1, tp, err := InferPat(env, expr.Param, counter)
		if err != nil {
			return subst.Subst{}, nil, err
		}
		s, tb, err := InferExpr(env1, expr.Body, counter)
		if err != nil {
			return subst.Subst{}, nil, err
		}
		return s, s.Apply(&types.Arrow{Arg: tp, Ret: tb}), nil

	case *ast.ETuple:
		return inferTuple(env, expr, counter)

	case *ast.ECons:
		return inferCons(env, expr, counter)

	case *ast.EMatch:
		return inferMatch(env, expr, counter)

	case *ast.ELet:
		return inferLet(env, expr, counter)

	case *ast.EConstraint:
		return InferExpr(env, expr.Expr, counter)

	default:
		return subst.Subst{}, nil, &errs.NotImplemented{Where: "expression kind"}
	}
}

func inferIf(env tyenv.Env, expr *ast.EIf, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	s1, ti, err := InferExpr(env, expr.Cond, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	env1 := env.Apply(s1)

	s2, tt, err := InferExpr(env1, expr.Then, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	env2 := env1.Apply(s2)

	s3, te, err := InferExpr(env2, expr.Else, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}

	sCond, err := subst.Unify(s3.Apply(s2.Apply(ti)), types.TBool)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	sBranch, err := subst.Unify(s3.Apply(tt), te)
	if err != nil {
		return subst.Subst{}, nil, err
	}

	final, err := subst.ComposeAll([]subst.Subst{s1, s2, s3, sCond, sBranch})
	if err != nil {
		return subst.Subst{}, nil, err
	}
	return final, final.Apply(te), nil
}

func inferApply(env tyenv.Env, expr *ast.EApply, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	beta := types.NewVar(counter.Next())

	s1, tf, err := InferExpr(env, expr.Fun, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	env1 := env.Apply(s1)

	s2, tx, err := InferExpr(env1, expr.Arg, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}

	s3, err := subst.Unify(&types.Arrow{Arg: tx, Ret: beta}, s2.Apply(tf))
	if err != nil {
		return subst.Subst{}, nil, err
	}

	final, err := subst.ComposeAll([]subst.Subst{s1, s2, s3})
	if err != nil {
		return subst.Subst{}, nil, err
	}
	return final, final.Apply(beta), nil
}

func inferTuple(env tyenv.Env, expr *ast.ETuple, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	curEnv := env
	elemTypes := make([]types.Type, len(expr.Elems))
	var substs []subst.Subst
	for i, el := range expr.Elems {
		s, t, err := InferExpr(curEnv, el, counter)
		if err != nil {
			return subst.Subst{}, nil, err
		}
		substs = append(substs, s)
		elemTypes[i] = t
		curEnv = curEnv.Apply(s)
	}
	final, err := subst.ComposeAll(substs)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	finalElems := make([]types.Type, len(elemTypes))
	for i, t := range elemTypes {
		finalElems[i] = final.Apply(t)
	}
	return final, &types.Tuple{Elems: finalElems}, nil
}

func inferCons(env tyenv.Env, expr *ast.ECons, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	sh, th, err := InferExpr(env, expr.Head, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	st, tt, err := InferExpr(env, expr.Tail, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	listTy := &types.List{Elem: th}
	su, err := subst.Unify(listTy, tt)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	final, err := subst.ComposeAll([]subst.Subst{sh, st, su})
	if err != nil {
		return subst.Subst{}, nil, err
	}
	return final, final.Apply(listTy), nil
}

func inferMatch(env tyenv.Env, expr *ast.EMatch, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	s0, tscrut, err := InferExpr(env, expr.Scrutinee, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}

	accSubst := s0
	curEnv := env.Apply(s0)
	curScrutType := s0.Apply(tscrut)
	var result types.Type = types.NewVar(counter.Next())

	for _, cs := range expr.Cases {
		envp, tp, err := InferPat(curEnv, cs.Pat, counter)
		if err != nil {
			return subst.Subst{}, nil, err
		}
		sScrut, err := subst.Unify(curScrutType, tp)
		if err != nil {
			return subst.Subst{}, nil, err
		}
		envp = envp.Apply(sScrut)

		sBody, tbody, err := InferExpr(envp, cs.Body, counter)
		if err != nil {
			return subst.Subst{}, nil, err
		}

		sResult, err := subst.Unify(sBody.Apply(tbody), result)
		if err != nil {
			return subst.Subst{}, nil, err
		}

		composed, err := subst.ComposeAll([]subst.Subst{accSubst, sScrut, sBody, sResult})
		if err != nil {
			return subst.Subst{}, nil, err
		}
		accSubst = composed
		curEnv = curEnv.Apply(composed)
		curScrutType = composed.Apply(curScrutType)
		result = composed.Apply(result)
	}

	return accSubst, result, nil
}

func inferLet(env tyenv.Env, expr *ast.ELet, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	if expr.Rec {
		return inferLetRec(env, expr, counter)
	}

	s1, t1, err := InferExpr(env, expr.Value, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	env1 := env.Apply(s1)
	sigma := generalize(t1, env1)

	envP, t2, err := InferPat(env, expr.Pat, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	env2 := tyenv.ExtByPat(envP, expr.Pat, sigma)

	sUnify, err := subst.Unify(t1, t2)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	sAll, err := subst.ComposeAll([]subst.Subst{s1, sUnify})
	if err != nil {
		return subst.Subst{}, nil, err
	}
	env3 := env2.Apply(sAll)

	s2, tBody, err := InferExpr(env3, expr.Body, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	final, err := subst.ComposeAll([]subst.Subst{sAll, s2})
	if err != nil {
		return subst.Subst{}, nil, err
	}
	return final, final.Apply(tBody), nil
}

func inferLetRec(env tyenv.Env, expr *ast.ELet, counter *fresh.Counter) (subst.Subst, types.Type, error) {
	pv, ok := expr.Pat.(*ast.PVar)
	if !ok {
		return subst.Subst{}, nil, &errs.NotImplemented{Where: "recursive let with a non-variable pattern"}
	}

	alpha := types.NewVar(counter.Next())
	envProv := env.Extend(pv.Name, types.Mono(alpha))

	s, t, err := InferExpr(envProv, expr.Value, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	su, err := subst.Unify(s.Apply(alpha), t)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	s2, err := subst.ComposeAll([]subst.Subst{s, su})
	if err != nil {
		return subst.Subst{}, nil, err
	}

	env1 := env.Apply(s2)
	sigma := generalize(s2.Apply(t), env1)
	env2 := env1.Extend(pv.Name, sigma)

	s3, tBody, err := InferExpr(env2, expr.Body, counter)
	if err != nil {
		return subst.Subst{}, nil, err
	}
	final, err := subst.ComposeAll([]subst.Subst{s2, s3})
	if err != nil {
		return subst.Subst{}, nil, err
	}
	return final, final.Apply(tBody), nil
}
