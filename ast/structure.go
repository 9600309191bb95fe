package ast

// StrItem is one item of a top-level structure: either a value binding
// group or a bare evaluated expression.
type StrItem interface {
	StrItemName() string
}

var (
	_ StrItem = (*SValue)(nil)
	_ StrItem = (*SEval)(nil)
)

// Binding pairs a pattern with the expression it is bound to.
type Binding struct {
	Pat  Pattern
	Expr Expr
}

// SValue is a top-level `let [rec] p = e` item. spec.md describes a single
// (pattern, expression) binding per item; Bindings is kept as a slice of
// length 1 to mirror the shared Binding type used by ELet, rather than
// introducing a separate singular type.
type SValue struct {
	Rec      bool
	Bindings []Binding
}

func (s *SValue) StrItemName() string { return "SValue" }

// SEval is a top-level expression evaluated for effect.
type SEval struct {
	Expr Expr
}

func (s *SEval) StrItemName() string { return "SEval" }

// Structure is an ordered sequence of top-level items.
type Structure []StrItem
