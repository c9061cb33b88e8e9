package proof

import (
	"errors"
	"fmt"

	"github.com/phomola/lrparser"
	"github.com/phomola/textkit"
)

// ErrIllFormed signifies a parse error.
var ErrIllFormed = errors.New("parse error")

// ErrNotSequent signifies that a sequent was expected.
var ErrNotSequent = errors.New("not a sequent")

// ErrNotExpression signifies that a single expression was expected.
var ErrNotExpression = errors.New("not an expression")

type sequent struct {
	premises []Expr
	goal     Expr
}

var (
	grammar = lrparser.NewGrammar(lrparser.MustBuildRules([]*lrparser.SynSem{
		{Syn: `Init -> Input`, Sem: func(args []any) any { return args[0] }},
		{Syn: `Input -> Exprs`, Sem: func(args []any) any {
			if es := args[0].([]Expr); len(es) == 1 {
				return es[0]
			}
			return args[0]
		}},
		{Syn: `Input -> Exprs "|-" Expr`, Sem: func(args []any) any {
			return &sequent{premises: args[0].([]Expr), goal: args[2].(Expr)}
		}},
		{Syn: `Input -> "|-" Expr`, Sem: func(args []any) any {
			return &sequent{goal: args[1].(Expr)}
		}},
		{Syn: `Exprs -> Exprs "," Expr`, Sem: func(args []any) any {
			return append(args[0].([]Expr), args[2].(Expr))
		}},
		{Syn: `Exprs -> Expr`, Sem: func(args []any) any { return []Expr{args[0].(Expr)} }},
		{Syn: `Expr -> Prim "->" Expr`, Sem: func(args []any) any {
			return Implies{Antecedent: args[0].(Expr), Consequent: args[2].(Expr)}
		}},
		{Syn: `Expr -> Prim`, Sem: func(args []any) any { return args[0] }},
		{Syn: `Prim -> ident`, Sem: func(args []any) any { return Ident(args[0].(string)) }},
		{Syn: `Prim -> ident "&" ident`, Sem: func(args []any) any {
			return And{Left: args[0].(string), Right: args[2].(string)}
		}},
		{Syn: `Prim -> ident "|" ident`, Sem: func(args []any) any {
			return Or{Left: args[0].(string), Right: args[2].(string)}
		}},
		{Syn: `Prim -> "(" Expr ")"`, Sem: func(args []any) any { return args[1] }},
	}))
)

func parseCode(code string) (interface{}, error) {
	tok := textkit.Tokeniser{
		CommentPrefix: "#",
		StringRune:    '"',
		IdentChars:    "_'",
	}
	tokens := tok.Tokenise(code, "")
	tokens = lrparser.CoalesceSymbols(tokens, []string{"->", "|-"})
	r, err := grammar.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllFormed, err)
	}
	return r, nil
}

// ParseExpr parses an expression in infix notation, for example "(P & Q) -> S".
// Conjunctions and disjunctions only accept identifiers as operands.
func ParseExpr(code string) (Expr, error) {
	r, err := parseCode(code)
	if err != nil {
		return nil, err
	}
	e, ok := r.(Expr)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrNotExpression, code)
	}
	return e, nil
}

// MustParseExpr is like ParseExpr but panics on error.
func MustParseExpr(code string) Expr {
	e, err := ParseExpr(code)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseSequent parses a sequent such as "P, Q & R, (P & Q) -> S |- S | T" into an unnamed problem.
func ParseSequent(code string) (*Problem, error) {
	r, err := parseCode(code)
	if err != nil {
		return nil, err
	}
	s, ok := r.(*sequent)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrNotSequent, code)
	}
	return &Problem{Premises: s.premises, Goal: s.goal}, nil
}
