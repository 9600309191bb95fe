package subst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelang/mlhm/types"
)

func TestSingletonOccursCheck(t *testing.T) {
	v := types.NewVar(0)
	_, err := Singleton(0, &types.Arrow{Arg: v, Ret: types.TInt})
	require.Error(t, err)
}

func TestSingletonSelfBindIsNoop(t *testing.T) {
	v := types.NewVar(0)
	s, err := Singleton(0, v)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestApplyLeavesUnboundVarsAlone(t *testing.T) {
	s := Empty()
	v := types.NewVar(7)
	assert.True(t, v.Equal(s.Apply(v)))
}

func TestApplySubstitutesBoundVar(t *testing.T) {
	s, err := Singleton(0, types.TInt)
	require.NoError(t, err)
	assert.True(t, types.TInt.Equal(s.Apply(types.NewVar(0))))
}

func TestApplyRecursesThroughArrow(t *testing.T) {
	s, err := Singleton(0, types.TInt)
	require.NoError(t, err)
	arrow := &types.Arrow{Arg: types.NewVar(0), Ret: types.NewVar(1)}
	got := s.Apply(arrow)
	want := &types.Arrow{Arg: types.TInt, Ret: types.NewVar(1)}
	assert.True(t, want.Equal(got))
}

func TestUnifyPrims(t *testing.T) {
	s, err := Unify(types.TInt, types.TInt)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	_, err = Unify(types.TInt, types.TBool)
	assert.Error(t, err)
}

func TestUnifyVarWithPrim(t *testing.T) {
	s, err := Unify(types.NewVar(0), types.TInt)
	require.NoError(t, err)
	got, ok := s.Find(0)
	require.True(t, ok)
	assert.True(t, types.TInt.Equal(got))
}

func TestUnifyArrow(t *testing.T) {
	l := &types.Arrow{Arg: types.NewVar(0), Ret: types.TInt}
	r := &types.Arrow{Arg: types.TBool, Ret: types.NewVar(1)}
	s, err := Unify(l, r)
	require.NoError(t, err)
	got0, _ := s.Find(0)
	assert.True(t, types.TBool.Equal(got0))
	got1, _ := s.Find(1)
	assert.True(t, types.TInt.Equal(got1))
}

func TestUnifyTupleLengthMismatch(t *testing.T) {
	l := &types.Tuple{Elems: []types.Type{types.TInt}}
	r := &types.Tuple{Elems: []types.Type{types.TInt, types.TBool}}
	_, err := Unify(l, r)
	assert.Error(t, err)
}

func TestUnifyList(t *testing.T) {
	l := &types.List{Elem: types.NewVar(0)}
	r := &types.List{Elem: types.TString}
	s, err := Unify(l, r)
	require.NoError(t, err)
	got, _ := s.Find(0)
	assert.True(t, types.TString.Equal(got))
}

func TestComposePropagatesThroughExistingEntries(t *testing.T) {
	s1, err := Singleton(0, types.NewVar(1))
	require.NoError(t, err)
	s2, err := Singleton(1, types.TInt)
	require.NoError(t, err)

	composed, err := s1.Compose(s2)
	require.NoError(t, err)

	got, ok := composed.Find(0)
	require.True(t, ok)
	assert.True(t, types.TInt.Equal(got), "composing should chain 0->1->int into 0->int")
}

func TestComposeAllIdentityOnEmpty(t *testing.T) {
	s, err := ComposeAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestApplySchemeSkipsQuantifiedVars(t *testing.T) {
	s, err := Singleton(0, types.TInt)
	require.NoError(t, err)
	sc := types.Scheme{Vars: types.VarSetOf(0), Type: types.NewVar(0)}
	got := s.ApplyScheme(sc)
	assert.True(t, types.NewVar(0).Equal(got.Type), "quantified var 0 must not be substituted")
}
