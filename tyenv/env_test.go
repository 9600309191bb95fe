package tyenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/construct"
	"github.com/corelang/mlhm/types"
)

func TestLookupMissing(t *testing.T) {
	_, ok := Empty().Lookup("x")
	assert.False(t, ok)
}

func TestExtendAndLookup(t *testing.T) {
	e := Empty().Extend("x", types.Mono(types.TInt))
	sc, ok := e.Lookup("x")
	require.True(t, ok)
	assert.True(t, types.TInt.Equal(sc.Type))
}

func TestExtByPatVar(t *testing.T) {
	e := ExtByPat(Empty(), construct.PVar("x"), types.Mono(types.TBool))
	sc, ok := e.Lookup("x")
	require.True(t, ok)
	assert.True(t, types.TBool.Equal(sc.Type))
}

func TestExtByPatTuple(t *testing.T) {
	pat := construct.PTuple(construct.PVar("a"), construct.PVar("b"))
	ty := &types.Tuple{Elems: []types.Type{types.TInt, types.TString}}
	e := ExtByPat(Empty(), pat, types.Mono(ty))

	a, ok := e.Lookup("a")
	require.True(t, ok)
	assert.True(t, types.TInt.Equal(a.Type))

	b, ok := e.Lookup("b")
	require.True(t, ok)
	assert.True(t, types.TString.Equal(b.Type))
}

func TestExtByPatCons(t *testing.T) {
	pat := construct.PCons(construct.PVar("h"), construct.PVar("t"))
	ty := &types.List{Elem: types.TInt}
	e := ExtByPat(Empty(), pat, types.Mono(ty))

	h, ok := e.Lookup("h")
	require.True(t, ok)
	assert.True(t, types.TInt.Equal(h.Type))

	tl, ok := e.Lookup("t")
	require.True(t, ok)
	assert.True(t, ty.Equal(tl.Type))
}

func TestExtByPatPreservesQuantifiers(t *testing.T) {
	sc := types.Scheme{Vars: types.VarSetOf(0), Type: &types.Tuple{Elems: []types.Type{types.NewVar(0), types.TInt}}}
	pat := construct.PTuple(construct.PVar("a"), construct.PVar("b"))
	e := ExtByPat(Empty(), pat, sc)

	a, ok := e.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, a.Vars.Len(), "a's scheme should still be quantified over var 0")
}

func TestExtByPatAny(t *testing.T) {
	e := ExtByPat(Empty(), &ast.PAny{}, types.Mono(types.TInt))
	assert.Equal(t, 0, e.backing().Len())
}
