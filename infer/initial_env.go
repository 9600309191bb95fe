package infer

import (
	"github.com/corelang/mlhm/tyenv"
	"github.com/corelang/mlhm/types"
)

// InitialEnv is the type environment inference starts from (spec.md §6):
// arithmetic operators at int -> int -> int, comparisons polymorphic at
// forall a. a -> a -> bool, boolean conjunction at bool -> bool -> bool,
// and the two runtime primitives a typed source program can reference
// directly, print_int and fail_match.
func InitialEnv() tyenv.Env {
	env := tyenv.Empty()

	arith := &types.Arrow{Arg: types.TInt, Ret: &types.Arrow{Arg: types.TInt, Ret: types.TInt}}
	for _, op := range []string{"+", "-", "*", "/"} {
		env = env.Extend(op, types.Mono(arith))
	}

	const cmpVar = -1
	cmp := types.Scheme{
		Vars: types.VarSetOf(cmpVar),
		Type: &types.Arrow{Arg: types.NewVar(cmpVar), Ret: &types.Arrow{Arg: types.NewVar(cmpVar), Ret: types.TBool}},
	}
	for _, op := range []string{"=", "<>", "<", ">", "<=", ">="} {
		env = env.Extend(op, cmp)
	}

	and := &types.Arrow{Arg: types.TBool, Ret: &types.Arrow{Arg: types.TBool, Ret: types.TBool}}
	env = env.Extend("&&", types.Mono(and))

	env = env.Extend("print_int", types.Mono(&types.Arrow{Arg: types.TInt, Ret: types.TUnit}))

	const failVar = -2
	failMatch := types.Scheme{
		Vars: types.VarSetOf(failVar),
		Type: &types.Arrow{Arg: types.TUnit, Ret: types.NewVar(failVar)},
	}
	env = env.Extend("fail_match", failMatch)

	return env
}
