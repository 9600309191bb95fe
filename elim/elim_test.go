package elim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/construct"
	"github.com/corelang/mlhm/errs"
	"github.com/corelang/mlhm/internal/fresh"
	"github.com/corelang/mlhm/pee"
)

func TestTupleParamDestructuring(t *testing.T) {
	// fun (a, b) -> a + b
	pat := construct.PTuple(construct.PVar("a"), construct.PVar("b"))
	body := construct.ApplyN(construct.Var("+"), construct.Var("a"), construct.Var("b"))
	fn := construct.Fun(pat, body)

	counter := fresh.NewCounter()
	got, err := peExpr(fn, counter)
	require.NoError(t, err)

	pfn, ok := got.(*pee.Fun)
	require.True(t, ok)
	require.Len(t, pfn.Params, 1)
	assert.Equal(t, "a0", pfn.Params[0])

	letA, ok := pfn.Body.(*pee.Let)
	require.True(t, ok)
	nr, ok := letA.Binding.(*pee.Nonrec)
	require.True(t, ok)
	assert.Equal(t, "a", nr.Name)
	proj, ok := nr.Expr.(*pee.Apply)
	require.True(t, ok)
	projFn, ok := proj.Fun.(*pee.Var)
	require.True(t, ok)
	assert.Equal(t, "Tuple_0", projFn.Name)

	letB, ok := letA.Body.(*pee.Let)
	require.True(t, ok)
	nrB, ok := letB.Binding.(*pee.Nonrec)
	require.True(t, ok)
	assert.Equal(t, "b", nrB.Name)
	projB, ok := nrB.Expr.(*pee.Apply)
	require.True(t, ok)
	projFnB, ok := projB.Fun.(*pee.Var)
	require.True(t, ok)
	assert.Equal(t, "Tuple_1", projFnB.Name)
}

func TestMatchOnListEliminatesToLengthCheck(t *testing.T) {
	// match xs with | [] -> 0 | h :: t -> 1
	//
	// check_pat(PConst c) always emits scrut = c (spec.md §4.6), including
	// for the nil constant, so the nil case (checked first, per "pe_match
	// compiles cases top-to-bottom") guards on equality with []; the cons
	// case nested in its else branch guards on the list_len(xs) > 0
	// length check.
	e := construct.Match(construct.Var("xs"),
		construct.Case(construct.PConst(ast.Nil()), construct.Const(ast.Int(0))),
		construct.Case(construct.PCons(construct.PVar("h"), construct.PVar("t")), construct.Const(ast.Int(1))),
	)

	counter := fresh.NewCounter()
	got, err := peExpr(e, counter)
	require.NoError(t, err)

	outer, ok := got.(*pee.If)
	require.True(t, ok, "expected an If, got %T", got)

	eqCond, ok := outer.Cond.(*pee.Apply)
	require.True(t, ok)
	eqFn, ok := eqCond.Fun.(*pee.Apply)
	require.True(t, ok)
	eqVar, ok := eqFn.Fun.(*pee.Var)
	require.True(t, ok)
	assert.Equal(t, "=", eqVar.Name)

	nilConst, ok := eqCond.Arg.(*pee.Const)
	require.True(t, ok)
	assert.Equal(t, ast.CNil, nilConst.Value.Kind)

	outerThen, ok := outer.Then.(*pee.Const)
	require.True(t, ok)
	assert.Equal(t, 0, outerThen.Value.Int)

	inner, ok := outer.Else.(*pee.If)
	require.True(t, ok, "expected the cons case nested in the nil case's else branch, got %T", outer.Else)

	cond, ok := inner.Cond.(*pee.Apply)
	require.True(t, ok)
	gtFn, ok := cond.Fun.(*pee.Apply)
	require.True(t, ok)
	gtVar, ok := gtFn.Fun.(*pee.Var)
	require.True(t, ok)
	assert.Equal(t, ">", gtVar.Name)

	lenCall, ok := gtFn.Arg.(*pee.Apply)
	require.True(t, ok)
	lenVar, ok := lenCall.Fun.(*pee.Var)
	require.True(t, ok)
	assert.Equal(t, "list_len", lenVar.Name)

	threshold, ok := cond.Arg.(*pee.Const)
	require.True(t, ok)
	assert.Equal(t, 0, threshold.Value.Int)

	// The cons case's body is wrapped in the h and t projection lets.
	letH, ok := inner.Then.(*pee.Let)
	require.True(t, ok, "expected the h binding, got %T", inner.Then)
	nrH, ok := letH.Binding.(*pee.Nonrec)
	require.True(t, ok)
	assert.Equal(t, "h", nrH.Name)
	letT, ok := letH.Body.(*pee.Let)
	require.True(t, ok, "expected the t binding, got %T", letH.Body)
	nrT, ok := letT.Binding.(*pee.Nonrec)
	require.True(t, ok)
	assert.Equal(t, "t", nrT.Name)

	thenConst, ok := letT.Body.(*pee.Const)
	require.True(t, ok)
	assert.Equal(t, 1, thenConst.Value.Int)

	elseCall, ok := inner.Else.(*pee.Apply)
	require.True(t, ok)
	elseFn, ok := elseCall.Fun.(*pee.Var)
	require.True(t, ok)
	assert.Equal(t, "fail_match", elseFn.Name)
}

func TestCheckPatUnitHasNoChecks(t *testing.T) {
	checks := checkPat(&pee.Var{Name: "x"}, construct.PConst(ast.Unit()))
	assert.Empty(t, checks)
}

func TestCheckPatWildcardHasNoChecks(t *testing.T) {
	checks := checkPat(&pee.Var{Name: "x"}, &ast.PAny{})
	assert.Empty(t, checks)
}

func TestPatDeclsSkipsTupleElementWithNoVar(t *testing.T) {
	pat := construct.PTuple(&ast.PAny{}, construct.PVar("b"))
	decls := patDecls(&pee.Var{Name: "x"}, pat)
	require.Len(t, decls, 1)
	assert.Equal(t, "b", decls[0].Name)
}

func TestRecNonVarPatternFailsNotImplemented(t *testing.T) {
	pat := construct.PTuple(construct.PVar("a"), construct.PVar("b"))
	item := &ast.SValue{Rec: true, Bindings: []ast.Binding{{Pat: pat, Expr: construct.Const(ast.Int(1))}}}
	_, err := PeStrItem(item, fresh.NewCounter())
	require.Error(t, err)
	var ni *errs.NotImplemented
	assert.ErrorAs(t, err, &ni)
}

func TestEmptyBindingsFailsEmptyLet(t *testing.T) {
	item := &ast.SValue{Bindings: nil}
	_, err := PeStrItem(item, fresh.NewCounter())
	require.Error(t, err)
	var el *errs.EmptyLet
	assert.ErrorAs(t, err, &el)
}

func TestTopLevelUnitBinding(t *testing.T) {
	item := construct.Value(false, construct.PConst(ast.Unit()), construct.Const(ast.Int(1)))
	out, err := PeStrItem(item, fresh.NewCounter())
	require.NoError(t, err)
	require.Len(t, out, 1)
	nr, ok := out[0].(*pee.Nonrec)
	require.True(t, ok)
	assert.Equal(t, "()", nr.Name)
}

func TestTopLevelTupleBindingProducesGuardAndProjections(t *testing.T) {
	pat := construct.PTuple(construct.PVar("a"), construct.PVar("b"))
	item := construct.Value(false, pat, construct.Tuple(construct.Const(ast.Int(1)), construct.Const(ast.Int(2))))
	out, err := PeStrItem(item, fresh.NewCounter())
	require.NoError(t, err)
	require.Len(t, out, 4) // fresh-name binding, guard, a, b

	names := make([]string, len(out))
	for i, b := range out {
		if nr, ok := b.(*pee.Nonrec); ok {
			names[i] = nr.Name
		}
	}
	assert.Equal(t, "a0", names[0])
	assert.Equal(t, "", names[1])
	assert.Equal(t, "a", names[2])
	assert.Equal(t, "b", names[3])
}

func TestRecursiveLetDelegatesToDecl(t *testing.T) {
	e := construct.LetRec(construct.PVar("f"),
		construct.Fun(construct.PVar("x"), construct.Var("x")),
		construct.Var("f"))
	got, err := peExpr(e, fresh.NewCounter())
	require.NoError(t, err)
	letExpr, ok := got.(*pee.Let)
	require.True(t, ok)
	rec, ok := letExpr.Binding.(*pee.Rec)
	require.True(t, ok)
	require.Len(t, rec.Bindings, 1)
	assert.Equal(t, "f", rec.Bindings[0].Name)
}
