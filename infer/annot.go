package infer

import "github.com/corelang/mlhm/ast"
import "github.com/corelang/mlhm/types"

// AnnotToType maps a surface type annotation to a Type. Annotation
// variables are hashed to a stable integer id (annotVarID) so that two
// occurrences of the same name within an annotation resolve to the same
// types.Var, without threading an extra per-annotation scope map (spec.md
// §4.4: "annotation variables are hashed to a stable integer identifier").
func AnnotToType(a ast.TypeAnnot) types.Type {
	switch a := a.(type) {
	case *ast.AInt:
		return types.TInt
	case *ast.ABool:
		return types.TBool
	case *ast.AString:
		return types.TString
	case *ast.AUnit:
		return types.TUnit
	case *ast.AList:
		return &types.List{Elem: AnnotToType(a.Elem)}
	case *ast.ATuple:
		elems := make([]types.Type, len(a.Elems))
		for i, e := range a.Elems {
			elems[i] = AnnotToType(e)
		}
		return &types.Tuple{Elems: elems}
	case *ast.AArrow:
		return &types.Arrow{Arg: AnnotToType(a.Arg), Ret: AnnotToType(a.Ret)}
	case *ast.AVar:
		return types.NewVar(annotVarID(a.Name))
	default:
		return types.TUnit
	}
}

// annotVarID hashes name (FNV-1a) into a non-negative id, offset well
// clear of the small sequential ids a fresh.Counter produces, so that a
// user-written annotation variable is very unlikely to collide with a
// counter-minted type variable within the same inference run.
func annotVarID(name string) int {
	const offset = 1 << 30
	h := uint32(2166136261)
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return offset + int(h&0x3fffffff)
}
