package proof

import (
	"fmt"

	"github.com/mailstepcz/sexpr"
)

// ParseSymbolicExpression parses an expression written as a symbolic expression.
//
//	P
//	(and P Q)
//	(or P Q)
//	(implies (and P Q) S)
func ParseSymbolicExpression(code string) (Expr, error) {
	l, err := sexpr.Parse("(" + code + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllFormed, err)
	}
	if len(l) != 1 {
		return nil, fmt.Errorf("%w: expected one expression, got %d", ErrIllFormed, len(l))
	}
	return exprFromSymbolic(l[0])
}

// NewProblemFromSymbolicExpression creates a problem from a symbolic expression.
//
//	((name "modus ponens")
//	 (premises P (implies P Q))
//	 (goal Q))
func NewProblemFromSymbolicExpression(code string) (*Problem, error) {
	l, err := sexpr.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllFormed, err)
	}
	var (
		p       Problem
		hasGoal bool
	)
	for _, clause := range l {
		clause, ok := clause.([]interface{})
		if !ok || len(clause) == 0 {
			return nil, ErrIllFormed
		}
		head, ok := clause[0].(sexpr.Identifier)
		if !ok {
			return nil, ErrIllFormed
		}
		switch head {
		case "#":
			continue
		case "name":
			if len(clause) != 2 {
				return nil, fmt.Errorf("%w: 'name' takes one argument", ErrIllFormed)
			}
			switch x := clause[1].(type) {
			case sexpr.QuotedString:
				p.Name = string(x)
			case sexpr.Identifier:
				p.Name = string(x)
			default:
				return nil, fmt.Errorf("%w: bad problem name", ErrIllFormed)
			}
		case "premises":
			for _, x := range clause[1:] {
				e, err := exprFromSymbolic(x)
				if err != nil {
					return nil, err
				}
				p.Premises = append(p.Premises, e)
			}
		case "goal":
			if len(clause) != 2 {
				return nil, fmt.Errorf("%w: 'goal' takes one argument", ErrIllFormed)
			}
			e, err := exprFromSymbolic(clause[1])
			if err != nil {
				return nil, err
			}
			p.Goal = e
			hasGoal = true
		default:
			return nil, fmt.Errorf("%w: unknown clause '%s'", ErrIllFormed, head)
		}
	}
	if !hasGoal {
		return nil, fmt.Errorf("%w: no goal", ErrIllFormed)
	}
	return &p, nil
}

func exprFromSymbolic(x interface{}) (Expr, error) {
	switch x := x.(type) {
	case sexpr.Identifier:
		return Ident(string(x)), nil
	case []interface{}:
		if len(x) != 3 {
			return nil, fmt.Errorf("%w: bad arity of '%v'", ErrIllFormed, x)
		}
		op, ok := x[0].(sexpr.Identifier)
		if !ok {
			return nil, ErrIllFormed
		}
		switch op {
		case "and", "or":
			l, ok1 := x[1].(sexpr.Identifier)
			r, ok2 := x[2].(sexpr.Identifier)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%w: operands of '%s' must be identifiers", ErrIllFormed, op)
			}
			if op == "and" {
				return And{Left: string(l), Right: string(r)}, nil
			}
			return Or{Left: string(l), Right: string(r)}, nil
		case "implies":
			a, err := exprFromSymbolic(x[1])
			if err != nil {
				return nil, err
			}
			c, err := exprFromSymbolic(x[2])
			if err != nil {
				return nil, err
			}
			return Implies{Antecedent: a, Consequent: c}, nil
		}
		return nil, fmt.Errorf("%w: unknown connective '%s'", ErrIllFormed, op)
	}
	return nil, fmt.Errorf("%w: unexpected '%v'", ErrIllFormed, x)
}
