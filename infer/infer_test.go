package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/construct"
	"github.com/corelang/mlhm/errs"
	"github.com/corelang/mlhm/internal/fresh"
	"github.com/corelang/mlhm/types"
)

func inferTop(t *testing.T, name string, e ast.Expr) types.Type {
	t.Helper()
	structure := ast.Structure{construct.Value(false, construct.PVar(name), e)}
	env, err := InferStructure(structure)
	require.NoError(t, err)
	sc, ok := env.Lookup(name)
	require.True(t, ok)
	return sc.Type
}

func TestLetGeneralizationAcrossUses(t *testing.T) {
	// let id = fun x -> x  let temp = (id 1, id true)
	structure := ast.Structure{
		construct.Value(false, construct.PVar("id"),
			construct.Fun(construct.PVar("x"), construct.Var("x"))),
		construct.Value(false, construct.PVar("temp"),
			construct.Tuple(
				construct.Apply(construct.Var("id"), construct.Const(ast.Int(1))),
				construct.Apply(construct.Var("id"), construct.Const(ast.Bool(true))),
			)),
	}
	env, err := InferStructure(structure)
	require.NoError(t, err)

	idSc, ok := env.Lookup("id")
	require.True(t, ok)
	assert.Equal(t, 1, idSc.Vars.Len(), "id must generalize to a polymorphic scheme")

	tempSc, ok := env.Lookup("temp")
	require.True(t, ok)
	want := &types.Tuple{Elems: []types.Type{types.TInt, types.TBool}}
	assert.True(t, want.Equal(tempSc.Type), "got %s", types.TypeString(tempSc.Type))
}

func TestRecursiveFactorial(t *testing.T) {
	// let rec fac = fun n -> if n <= 1 then 1 else n * fac (n - 1)
	body := construct.If(
		construct.Apply(construct.Apply(construct.Var("<="), construct.Var("n")), construct.Const(ast.Int(1))),
		construct.Const(ast.Int(1)),
		construct.Apply(construct.Apply(construct.Var("*"), construct.Var("n")),
			construct.Apply(construct.Var("fac"),
				construct.Apply(construct.Apply(construct.Var("-"), construct.Var("n")), construct.Const(ast.Int(1))))),
	)
	fac := construct.LetRec(construct.PVar("fac"),
		construct.Fun(construct.PVar("n"), body),
		construct.Var("fac"))

	got := inferTop(t, "result", fac)
	want := &types.Arrow{Arg: types.TInt, Ret: types.TInt}
	assert.True(t, want.Equal(got), "got %s", types.TypeString(got))
}

func TestRecursiveFix(t *testing.T) {
	// let rec fix = fun f -> fun x -> f (fix f) x
	body := construct.FunN(
		construct.ApplyN(construct.Var("f"),
			construct.Apply(construct.Var("fix"), construct.Var("f")),
			construct.Var("x")),
		construct.PVar("f"), construct.PVar("x"),
	)
	fix := construct.LetRec(construct.PVar("fix"), body, construct.Var("fix"))

	got := inferTop(t, "result", fix)
	arrow, ok := got.(*types.Arrow)
	require.True(t, ok, "fix must infer to an arrow type, got %s", types.TypeString(got))
	inner, ok := arrow.Arg.(*types.Arrow)
	require.True(t, ok)
	_, ok = inner.Arg.(*types.Arrow)
	assert.True(t, ok, "the first argument of fix's function argument must itself be an arrow")
}

func TestUnboundVariableFails(t *testing.T) {
	structure := ast.Structure{construct.Value(false, construct.PVar("x"), construct.Var("y"))}
	_, err := InferStructure(structure)
	require.Error(t, err)
	var nv *errs.NoVariable
	assert.ErrorAs(t, err, &nv)
	assert.Equal(t, "y", nv.Name)
}

func TestRecNonVarPatternNotImplemented(t *testing.T) {
	pat := construct.PTuple(construct.PVar("a"), construct.PVar("b"))
	structure := ast.Structure{
		&ast.SValue{Rec: true, Bindings: []ast.Binding{{Pat: pat, Expr: construct.Const(ast.Int(1))}}},
	}
	_, err := InferStructure(structure)
	require.Error(t, err)
	var ni *errs.NotImplemented
	assert.ErrorAs(t, err, &ni)
}

func TestEmptyLetFails(t *testing.T) {
	structure := ast.Structure{&ast.SValue{Bindings: nil}}
	_, err := InferStructure(structure)
	require.Error(t, err)
	var el *errs.EmptyLet
	assert.ErrorAs(t, err, &el)
}

func TestConsAndMatch(t *testing.T) {
	// match xs with | [] -> 0 | h :: t -> 1, xs : 'a list
	e := construct.Match(construct.Var("xs"),
		construct.Case(construct.PConst(ast.Nil()), construct.Const(ast.Int(0))),
		construct.Case(construct.PCons(construct.PVar("h"), construct.PVar("t")), construct.Const(ast.Int(1))),
	)
	lam := construct.Fun(construct.PVar("xs"), e)
	got := inferTop(t, "result", lam)
	arrow, ok := got.(*types.Arrow)
	require.True(t, ok)
	_, ok = arrow.Arg.(*types.List)
	assert.True(t, ok, "xs must infer to a list type, got %s", types.TypeString(arrow.Arg))
	assert.True(t, types.TInt.Equal(arrow.Ret))
}

func TestApplyNonFunctionFails(t *testing.T) {
	structure := ast.Structure{
		construct.Value(false, construct.PVar("x"),
			construct.Apply(construct.Const(ast.Int(1)), construct.Const(ast.Int(2)))),
	}
	_, err := InferStructure(structure)
	assert.Error(t, err)
}

func TestPConstraintUnifiesAnnotation(t *testing.T) {
	counter := fresh.NewCounter()
	pat := construct.PConstraint(construct.PVar("x"), &ast.AInt{})
	_, ty, err := InferPat(InitialEnv(), pat, counter)
	require.NoError(t, err)
	assert.True(t, types.TInt.Equal(ty))
}
