// Package elim implements pattern elimination / ANF preparation (spec.md
// §4.6): lowering surface expressions with arbitrary nested patterns in
// let, fun, and match into pee's flat binder form, with every
// destructuring rewritten as an explicit projection application and every
// match compiled into a chain of guarded conditionals.
//
// Fresh value names use the prefix "a" (a0, a1, ...) from a counter local
// to one elimination run. These are not guaranteed to avoid colliding
// with user identifiers of the same shape; callers embedding generated
// code alongside user-written code should pick a source syntax that
// cannot itself produce an identifier of that form.
package elim

import (
	"strconv"

	"github.com/corelang/mlhm/ast"
	"github.com/corelang/mlhm/errs"
	"github.com/corelang/mlhm/internal/fresh"
	"github.com/corelang/mlhm/pee"
)

const (
	consHead = "Cons_head"
	consTail = "Cons_tail"
)

func tupleKind(i int) string { return "Tuple_" + strconv.Itoa(i) }

// getElement builds the application of a well-known projection primitive
// to scrut: Cons_head, Cons_tail, or Tuple_<i>.
func getElement(scrut pee.Expr, kind string) pee.Expr {
	return &pee.Apply{Fun: &pee.Var{Name: kind}, Arg: scrut}
}

func failMatchExpr() pee.Expr {
	return &pee.Apply{Fun: &pee.Var{Name: "fail_match"}, Arg: &pee.Const{Value: ast.Unit()}}
}

func eqCheck(scrut pee.Expr, c ast.Const) pee.Expr {
	return &pee.Apply{Fun: &pee.Apply{Fun: &pee.Var{Name: "="}, Arg: scrut}, Arg: &pee.Const{Value: c}}
}

func lenCheck(scrut pee.Expr, min int) pee.Expr {
	lenExpr := &pee.Apply{Fun: &pee.Var{Name: "list_len"}, Arg: scrut}
	return &pee.Apply{Fun: &pee.Apply{Fun: &pee.Var{Name: ">"}, Arg: lenExpr}, Arg: &pee.Const{Value: ast.Int(min)}}
}

func andAll(checks []pee.Expr) pee.Expr {
	cond := checks[0]
	for _, c := range checks[1:] {
		cond = &pee.Apply{Fun: &pee.Apply{Fun: &pee.Var{Name: "&&"}, Arg: cond}, Arg: c}
	}
	return cond
}

// minConsLength counts the nested right-cons spine below pat (not
// including pat itself), the threshold used in the list_len(scrut) >
// min_length guard: a bare PCons(h, PVar t) requires only one element, so
// its spine count is 0 and the guard reads list_len(scrut) > 0.
func minConsLength(pat *ast.PCons) int {
	count := 0
	cur := pat
	for {
		next, ok := cur.Tail.(*ast.PCons)
		if !ok {
			return count
		}
		count++
		cur = next
	}
}

// checkPat produces the list of boolean guard expressions that must all
// hold for pat to match scrut (spec.md §4.6).
func checkPat(scrut pee.Expr, pat ast.Pattern) []pee.Expr {
	return checkPatRec(scrut, pat, true)
}

// addListCheck is false while recursing down the tail spine of an
// ancestor PCons whose combined length guard was already emitted once at
// the top of that spine (spec.md §4.6's "add_list flag").
func checkPatRec(scrut pee.Expr, pat ast.Pattern, addListCheck bool) []pee.Expr {
	switch pat := pat.(type) {
	case *ast.PConstraint:
		return checkPatRec(scrut, pat.Pat, addListCheck)

	case *ast.PConst:
		if pat.Value.Kind == ast.CUnit {
			return nil
		}
		return []pee.Expr{eqCheck(scrut, pat.Value)}

	case *ast.PTuple:
		var out []pee.Expr
		for i, p := range pat.Elems {
			out = append(out, checkPatRec(getElement(scrut, tupleKind(i)), p, true)...)
		}
		return out

	case *ast.PCons:
		var out []pee.Expr
		if addListCheck {
			out = append(out, lenCheck(scrut, minConsLength(pat)))
		}
		out = append(out, checkPatRec(getElement(scrut, consHead), pat.Head, true)...)
		out = append(out, checkPatRec(getElement(scrut, consTail), pat.Tail, false)...)
		return out

	case *ast.PVar, *ast.PAny:
		return nil

	default:
		return nil
	}
}

// patDecls produces one let-binding per variable bound by pat, each
// mapping the variable name to the composed chain of projections reaching
// it from scrut (spec.md §4.6).
func patDecls(scrut pee.Expr, pat ast.Pattern) []pee.NamedExpr {
	var out []pee.NamedExpr
	var walk func(pee.Expr, ast.Pattern)
	walk = func(e pee.Expr, p ast.Pattern) {
		switch p := p.(type) {
		case *ast.PVar:
			out = append(out, pee.NamedExpr{Name: p.Name, Expr: e})
		case *ast.PCons:
			walk(getElement(e, consHead), p.Head)
			walk(getElement(e, consTail), p.Tail)
		case *ast.PTuple:
			for i, sub := range p.Elems {
				walk(getElement(e, tupleKind(i)), sub)
			}
		case *ast.PConstraint:
			walk(e, p.Pat)
		}
	}
	walk(scrut, pat)
	return out
}

// createCase builds the guarded expansion for one match/fun/let
// destructuring site: thenExpr wrapped with every variable-binding let
// from patDecls, guarded by the conjunction of checkPat's checks when
// non-empty (spec.md §4.6).
func createCase(scrut pee.Expr, pat ast.Pattern, thenExpr, elseExpr pee.Expr) pee.Expr {
	wrapped := thenExpr
	decls := patDecls(scrut, pat)
	for i := len(decls) - 1; i >= 0; i-- {
		d := decls[i]
		wrapped = &pee.Let{Binding: &pee.Nonrec{Name: d.Name, Expr: d.Expr}, Body: wrapped}
	}

	checks := checkPat(scrut, pat)
	if len(checks) == 0 {
		return wrapped
	}
	return &pee.If{Cond: andAll(checks), Then: wrapped, Else: elseExpr}
}

// peMatch compiles cases top-to-bottom against a scrutinee already bound
// to a variable or constant (spec.md §4.6).
func peMatch(scrutVar pee.Expr, cases []ast.MatchCase, counter *fresh.Counter) (pee.Expr, error) {
	if len(cases) == 0 {
		return failMatchExpr(), nil
	}
	first := cases[0]
	body, err := peExpr(first.Body, counter)
	if err != nil {
		return nil, err
	}
	checks := checkPat(scrutVar, first.Pat)
	if len(checks) == 0 {
		return createCase(scrutVar, first.Pat, body, nil), nil
	}
	rest, err := peMatch(scrutVar, cases[1:], counter)
	if err != nil {
		return nil, err
	}
	return createCase(scrutVar, first.Pat, body, rest), nil
}

// peDecl reduces a recursive binding's (pat, expr) pair to a single-entry
// PERec, failing Not-implemented for a non-variable pattern — resolving
// the open question in spec.md §9 the same way the inferencer does.
func peDecl(pat ast.Pattern, expr ast.Expr, counter *fresh.Counter) (*pee.Rec, error) {
	pv, ok := pat.(*ast.PVar)
	if !ok {
		return nil, &errs.NotImplemented{Where: "recursive binding with a non-variable pattern"}
	}
	e1, err := peExpr(expr, counter)
	if err != nil {
		return nil, err
	}
	return &pee.Rec{Bindings: []pee.NamedExpr{{Name: pv.Name, Expr: e1}}}, nil
}

// peExpr traverses the surface AST, producing PEE (spec.md §4.6).
func peExpr(expr ast.Expr, counter *fresh.Counter) (pee.Expr, error) {
	switch e := expr.(type) {
	case *ast.EConst:
		return &pee.Const{Value: e.Value}, nil

	case *ast.EVar:
		return &pee.Var{Name: e.Name}, nil

	case *ast.EApply:
		f, err := peExpr(e.Fun, counter)
		if err != nil {
			return nil, err
		}
		a, err := peExpr(e.Arg, counter)
		if err != nil {
			return nil, err
		}
		return &pee.Apply{Fun: f, Arg: a}, nil

	case *ast.EIf:
		cond, err := peExpr(e.Cond, counter)
		if err != nil {
			return nil, err
		}
		then, err := peExpr(e.Then, counter)
		if err != nil {
			return nil, err
		}
		els, err := peExpr(e.Else, counter)
		if err != nil {
			return nil, err
		}
		return &pee.If{Cond: cond, Then: then, Else: els}, nil

	case *ast.ETuple:
		elems := make([]pee.Expr, len(e.Elems))
		for i, el := range e.Elems {
			v, err := peExpr(el, counter)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &pee.Tuple{Elems: elems}, nil

	case *ast.ECons:
		h, err := peExpr(e.Head, counter)
		if err != nil {
			return nil, err
		}
		t, err := peExpr(e.Tail, counter)
		if err != nil {
			return nil, err
		}
		return &pee.Cons{Head: h, Tail: t}, nil

	case *ast.EConstraint:
		return peExpr(e.Expr, counter)

	case *ast.EFun:
		return peFun(e, counter)

	case *ast.EMatch:
		return peMatchExpr(e, counter)

	case *ast.ELet:
		return peLet(e, counter)

	default:
		return nil, &errs.NotImplemented{Where: "expression kind during elimination"}
	}
}

type destructure struct {
	name string
	pat  ast.Pattern
}

// peFun collects the contiguous prefix of curried EFun bindings into a
// single flat parameter list, allocating a fresh name and deferring a
// createCase destructure for every non-trivial parameter pattern (spec.md
// §4.6).
func peFun(outer *ast.EFun, counter *fresh.Counter) (pee.Expr, error) {
	var params []string
	var destructures []destructure

	var cur ast.Expr = outer
	for {
		fn, ok := cur.(*ast.EFun)
		if !ok {
			break
		}
		switch p := fn.Param.(type) {
		case *ast.PVar:
			params = append(params, p.Name)
		case *ast.PConst:
			if p.Value.Kind == ast.CUnit {
				params = append(params, "()")
			} else {
				name := counter.NextName("a")
				params = append(params, name)
				destructures = append(destructures, destructure{name, fn.Param})
			}
		default:
			name := counter.NextName("a")
			params = append(params, name)
			destructures = append(destructures, destructure{name, fn.Param})
		}
		cur = fn.Body
	}

	body, err := peExpr(cur, counter)
	if err != nil {
		return nil, err
	}

	switch len(destructures) {
	case 0:
		return &pee.Fun{Params: params, Body: body}, nil

	case 1:
		d := destructures[0]
		wrapped := createCase(&pee.Var{Name: d.name}, d.pat, body, failMatchExpr())
		return &pee.Fun{Params: params, Body: wrapped}, nil

	default:
		tupleName := counter.NextName("a")
		pats := make([]ast.Pattern, len(destructures))
		elems := make([]pee.Expr, len(destructures))
		for i, d := range destructures {
			pats[i] = d.pat
			elems[i] = &pee.Var{Name: d.name}
		}
		tuplePat := &ast.PTuple{Elems: pats}
		tupleExpr := &pee.Tuple{Elems: elems}
		wrapped := createCase(&pee.Var{Name: tupleName}, tuplePat, body, failMatchExpr())
		return &pee.Fun{Params: params, Body: &pee.Let{
			Binding: &pee.Nonrec{Name: tupleName, Expr: tupleExpr},
			Body:    wrapped,
		}}, nil
	}
}

// peMatchExpr lowers a match expression, binding a non-trivial scrutinee
// to a fresh name first so every case guard evaluates it only once
// (spec.md §4.6).
func peMatchExpr(e *ast.EMatch, counter *fresh.Counter) (pee.Expr, error) {
	scrutExpr, err := peExpr(e.Scrutinee, counter)
	if err != nil {
		return nil, err
	}

	switch scrutExpr.(type) {
	case *pee.Var, *pee.Const:
		return peMatch(scrutExpr, e.Cases, counter)
	default:
		name := counter.NextName("a")
		body, err := peMatch(&pee.Var{Name: name}, e.Cases, counter)
		if err != nil {
			return nil, err
		}
		return &pee.Let{Binding: &pee.Nonrec{Name: name, Expr: scrutExpr}, Body: body}, nil
	}
}

// peLet lowers a let expression (spec.md §4.6).
func peLet(e *ast.ELet, counter *fresh.Counter) (pee.Expr, error) {
	if e.Rec {
		decl, err := peDecl(e.Pat, e.Value, counter)
		if err != nil {
			return nil, err
		}
		body, err := peExpr(e.Body, counter)
		if err != nil {
			return nil, err
		}
		return &pee.Let{Binding: decl, Body: body}, nil
	}

	e1, err := peExpr(e.Value, counter)
	if err != nil {
		return nil, err
	}

	if pv, ok := e.Pat.(*ast.PVar); ok {
		body, err := peExpr(e.Body, counter)
		if err != nil {
			return nil, err
		}
		return &pee.Let{Binding: &pee.Nonrec{Name: pv.Name, Expr: e1}, Body: body}, nil
	}
	if pc, ok := e.Pat.(*ast.PConst); ok && pc.Value.Kind == ast.CUnit {
		body, err := peExpr(e.Body, counter)
		if err != nil {
			return nil, err
		}
		return &pee.Let{Binding: &pee.Nonrec{Name: "()", Expr: e1}, Body: body}, nil
	}

	// Otherwise: inline e1 directly as the scrutinee if it is already a
	// variable, else bind it to a fresh name first.
	var scrutName string
	var outerBindExpr pee.Expr
	if v, ok := e1.(*pee.Var); ok {
		scrutName = v.Name
	} else {
		scrutName = counter.NextName("a")
		outerBindExpr = e1
	}

	body, err := peExpr(e.Body, counter)
	if err != nil {
		return nil, err
	}
	cased := createCase(&pee.Var{Name: scrutName}, e.Pat, body, failMatchExpr())
	if outerBindExpr != nil {
		return &pee.Let{Binding: &pee.Nonrec{Name: scrutName, Expr: outerBindExpr}, Body: cased}, nil
	}
	return cased, nil
}

// guardExpr folds checks into the unit-typed guard used by a top-level
// destructuring binding: if every check holds, (), else fail_match.
func guardExpr(checks []pee.Expr) pee.Expr {
	unitExpr := &pee.Const{Value: ast.Unit()}
	if len(checks) == 0 {
		return unitExpr
	}
	return &pee.If{Cond: andAll(checks), Then: unitExpr, Else: failMatchExpr()}
}

func peNonrecTopBinding(b ast.Binding, counter *fresh.Counter) ([]pee.Binding, error) {
	e1, err := peExpr(b.Expr, counter)
	if err != nil {
		return nil, err
	}
	if pv, ok := b.Pat.(*ast.PVar); ok {
		return []pee.Binding{&pee.Nonrec{Name: pv.Name, Expr: e1}}, nil
	}
	if pc, ok := b.Pat.(*ast.PConst); ok && pc.Value.Kind == ast.CUnit {
		return []pee.Binding{&pee.Nonrec{Name: "()", Expr: e1}}, nil
	}

	name := counter.NextName("a")
	scrutVar := &pee.Var{Name: name}
	out := []pee.Binding{&pee.Nonrec{Name: name, Expr: e1}}

	checks := checkPat(scrutVar, b.Pat)
	out = append(out, &pee.Nonrec{Name: "", Expr: guardExpr(checks)})

	for _, d := range patDecls(scrutVar, b.Pat) {
		out = append(out, &pee.Nonrec{Name: d.Name, Expr: d.Expr})
	}
	return out, nil
}

// PeStrItem handles one top-level structure item (spec.md §4.6).
func PeStrItem(item ast.StrItem, counter *fresh.Counter) ([]pee.Binding, error) {
	switch item := item.(type) {
	case *ast.SValue:
		if len(item.Bindings) == 0 {
			return nil, &errs.EmptyLet{}
		}
		if item.Rec {
			bindings := make([]pee.NamedExpr, 0, len(item.Bindings))
			for _, b := range item.Bindings {
				pv, ok := b.Pat.(*ast.PVar)
				if !ok {
					return nil, &errs.NotImplemented{Where: "recursive binding with a non-variable pattern"}
				}
				e1, err := peExpr(b.Expr, counter)
				if err != nil {
					return nil, err
				}
				bindings = append(bindings, pee.NamedExpr{Name: pv.Name, Expr: e1})
			}
			return []pee.Binding{&pee.Rec{Bindings: bindings}}, nil
		}

		var out []pee.Binding
		for _, b := range item.Bindings {
			bs, err := peNonrecTopBinding(b, counter)
			if err != nil {
				return nil, err
			}
			out = append(out, bs...)
		}
		return out, nil

	case *ast.SEval:
		e1, err := peExpr(item.Expr, counter)
		if err != nil {
			return nil, err
		}
		return []pee.Binding{&pee.Nonrec{Name: "", Expr: e1}}, nil

	default:
		return nil, &errs.NotImplemented{Where: "structure item kind during elimination"}
	}
}

// PeStructure is the top-level driver: it lowers every item of structure
// with a single fresh-name counter shared across the whole pass.
func PeStructure(structure ast.Structure) ([]pee.Binding, error) {
	counter := fresh.NewCounter()
	var out []pee.Binding
	for _, item := range structure {
		bs, err := PeStrItem(item, counter)
		if err != nil {
			return nil, err
		}
		out = append(out, bs...)
	}
	return out, nil
}
