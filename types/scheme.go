package types

// Scheme represents `forall vars. t` — a type generalized over a set of
// quantified (bound) type-variable ids. A Scheme with an empty Vars set is
// a monomorphic type.
type Scheme struct {
	Vars VarSet
	Type Type
}

// Mono wraps a type as a non-generalized (monomorphic) scheme.
func Mono(t Type) Scheme { return Scheme{Type: t} }

// FreeVars returns the free type-variable ids of a scheme: the free
// variables of its underlying type, minus its quantifiers.
func (s Scheme) FreeVars() VarSet {
	free := FreeVarsOf(s.Type)
	if s.Vars.Len() == 0 {
		return free
	}
	result := NewVarSet()
	free.Range(func(id int) {
		if !s.Vars.Has(id) {
			result.Add(id)
		}
	})
	return result
}

// FreeVarsOf returns the set of free (unbound) type-variable ids occurring
// structurally within t. Every Var occurring in a plain Type is free;
// quantification only exists at the Scheme level.
func FreeVarsOf(t Type) VarSet {
	s := NewVarSet()
	collectFreeVars(t, s)
	return s
}

func collectFreeVars(t Type, out VarSet) {
	switch t := t.(type) {
	case *Var:
		out.Add(t.Id)
	case *Arrow:
		collectFreeVars(t.Arg, out)
		collectFreeVars(t.Ret, out)
	case *List:
		collectFreeVars(t.Elem, out)
	case *Tuple:
		for _, e := range t.Elems {
			collectFreeVars(e, out)
		}
	case *Prim:
		// no variables
	}
}
