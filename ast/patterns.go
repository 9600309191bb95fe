package ast

// Pattern is the base interface for all surface patterns.
type Pattern interface {
	PatName() string
}

var (
	_ Pattern = (*PAny)(nil)
	_ Pattern = (*PConst)(nil)
	_ Pattern = (*PVar)(nil)
	_ Pattern = (*PCons)(nil)
	_ Pattern = (*PTuple)(nil)
	_ Pattern = (*PConstraint)(nil)
)

// PAny is the wildcard pattern `_`.
type PAny struct{}

func (p *PAny) PatName() string { return "PAny" }

// PConst matches a literal constant.
type PConst struct {
	Value Const
}

func (p *PConst) PatName() string { return "PConst" }

// PVar binds the matched value to an identifier.
type PVar struct {
	Name string
}

func (p *PVar) PatName() string { return "PVar" }

// PCons matches a non-empty list: `head :: tail`.
type PCons struct {
	Head Pattern
	Tail Pattern
}

func (p *PCons) PatName() string { return "PCons" }

// PTuple matches an ordered tuple of two or more sub-patterns.
type PTuple struct {
	Elems []Pattern
}

func (p *PTuple) PatName() string { return "PTuple" }

// PConstraint attaches a surface type annotation to a pattern: `(p : ty)`.
type PConstraint struct {
	Pat   Pattern
	Annot TypeAnnot
}

func (p *PConstraint) PatName() string { return "PConstraint" }

// Vars returns every identifier bound by pat, in left-to-right occurrence
// order. Duplicates, which a well-formed pattern should not contain, are
// not removed: a name appears once per occurrence.
func Vars(pat Pattern) []string {
	var names []string
	var walk func(Pattern)
	walk = func(p Pattern) {
		switch p := p.(type) {
		case *PVar:
			names = append(names, p.Name)
		case *PCons:
			walk(p.Head)
			walk(p.Tail)
		case *PTuple:
			for _, e := range p.Elems {
				walk(e)
			}
		case *PConstraint:
			walk(p.Pat)
		}
	}
	walk(pat)
	return names
}
