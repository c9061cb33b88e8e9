package proof

import (
	"fmt"
	"strings"
)

// Render returns the human-readable form of an expression.
// Unknown values are printed with their default format.
func Render(e Expr) string {
	var sb strings.Builder
	render(&sb, e)
	return sb.String()
}

func render(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case Atom:
		sb.WriteString(x.Name)
	case And:
		writeBinary(sb, x.Left, " ∧ ", x.Right)
	case Or:
		writeBinary(sb, x.Left, " ∨ ", x.Right)
	case Implies:
		sb.WriteRune('(')
		render(sb, x.Antecedent)
		sb.WriteString(" → ")
		render(sb, x.Consequent)
		sb.WriteRune(')')
	default:
		fmt.Fprintf(sb, "%v", e)
	}
}

func writeBinary(sb *strings.Builder, left, op, right string) {
	sb.WriteRune('(')
	sb.WriteString(left)
	sb.WriteString(op)
	sb.WriteString(right)
	sb.WriteRune(')')
}
