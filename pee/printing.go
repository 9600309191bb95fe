package pee

import "strings"

// String renders e as a single-line, parseable-looking form, mirroring
// ast.ExprString but over the flat post-elimination shape: no patterns,
// only plain binder names (or the literal "()" for a unit parameter or
// an empty name for a discarded guard binding).
func String(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Const:
		sb.WriteString(e.Value.String())
	case *Var:
		sb.WriteString(e.Name)
	case *Apply:
		writeExpr(sb, e.Fun)
		sb.WriteByte(' ')
		writeExpr(sb, e.Arg)
	case *If:
		sb.WriteString("if ")
		writeExpr(sb, e.Cond)
		sb.WriteString(" then ")
		writeExpr(sb, e.Then)
		sb.WriteString(" else ")
		writeExpr(sb, e.Else)
	case *Tuple:
		sb.WriteByte('(')
		for i, el := range e.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, el)
		}
		sb.WriteByte(')')
	case *Cons:
		writeExpr(sb, e.Head)
		sb.WriteString(" :: ")
		writeExpr(sb, e.Tail)
	case *Fun:
		sb.WriteString("fun ")
		for i, p := range e.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if p == "" {
				sb.WriteByte('_')
			} else {
				sb.WriteString(p)
			}
		}
		sb.WriteString(" -> ")
		writeExpr(sb, e.Body)
	case *Let:
		sb.WriteString("let ")
		writeBinding(sb, e.Binding)
		sb.WriteString(" in ")
		writeExpr(sb, e.Body)
	default:
		sb.WriteString("<?expr>")
	}
}

func writeBinding(sb *strings.Builder, b Binding) {
	switch b := b.(type) {
	case *Nonrec:
		if b.Name == "" {
			sb.WriteByte('_')
		} else {
			sb.WriteString(b.Name)
		}
		sb.WriteString(" = ")
		writeExpr(sb, b.Expr)
	case *Rec:
		sb.WriteString("rec ")
		for i, ne := range b.Bindings {
			if i > 0 {
				sb.WriteString(" and ")
			}
			sb.WriteString(ne.Name)
			sb.WriteString(" = ")
			writeExpr(sb, ne.Expr)
		}
	default:
		sb.WriteString("<?binding>")
	}
}
