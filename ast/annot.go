package ast

// TypeAnnot is a surface type annotation, as written by the programmer in
// a `(e : ty)` or `(p : ty)` constraint. Annotation variables (`'a`) are
// resolved to stable types.Var ids during inference (see infer.AnnotToType);
// the annotation AST itself carries only names, never resolved ids.
type TypeAnnot interface {
	AnnotName() string
}

var (
	_ TypeAnnot = (*AInt)(nil)
	_ TypeAnnot = (*ABool)(nil)
	_ TypeAnnot = (*AString)(nil)
	_ TypeAnnot = (*AUnit)(nil)
	_ TypeAnnot = (*AList)(nil)
	_ TypeAnnot = (*ATuple)(nil)
	_ TypeAnnot = (*AArrow)(nil)
	_ TypeAnnot = (*AVar)(nil)
)

type AInt struct{}

func (a *AInt) AnnotName() string { return "AInt" }

type ABool struct{}

func (a *ABool) AnnotName() string { return "ABool" }

type AString struct{}

func (a *AString) AnnotName() string { return "AString" }

type AUnit struct{}

func (a *AUnit) AnnotName() string { return "AUnit" }

// AList is a list type annotation: `ty list`.
type AList struct {
	Elem TypeAnnot
}

func (a *AList) AnnotName() string { return "AList" }

// ATuple is a tuple type annotation: `ty1 * ty2 * ...`.
type ATuple struct {
	Elems []TypeAnnot
}

func (a *ATuple) AnnotName() string { return "ATuple" }

// AArrow is a function type annotation: `ty1 -> ty2`.
type AArrow struct {
	Arg TypeAnnot
	Ret TypeAnnot
}

func (a *AArrow) AnnotName() string { return "AArrow" }

// AVar is a named type variable in an annotation, e.g. `'a`. Two
// occurrences of the same name (within the scope the caller establishes)
// must resolve to the same type.Var id; AnnotToType hashes the name to a
// stable id so this holds without the caller threading an extra scope map.
type AVar struct {
	Name string
}

func (a *AVar) AnnotName() string { return "AVar" }
