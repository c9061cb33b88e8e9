// Package proof provides a small forward-chaining proof engine for propositional logic.
// It saturates a set of premises with a fixed set of inference rules and reports
// whether a goal was derived, together with a trace of every rule application.
//
// # Expressions
//
// Four kinds of expressions are supported:
//   - atoms,
//   - conjunctions of two atom names,
//   - disjunctions of two atom names,
//   - implications between arbitrary expressions.
//
// Conjunctions and disjunctions take identifiers rather than nested expressions,
// so (P ∧ Q) is expressible while ((P ∧ Q) ∧ R) isn't.
// Operand order matters: (P ∧ Q) and (Q ∧ P) are distinct facts.
//
// # Rules
//
// The engine knows four rules:
//
//	P, Q ⊢ (P ∧ Q)          conjunction introduction
//	(P ∧ Q) ⊢ P, (P ∧ Q) ⊢ Q   conjunction elimination
//	(A → B), A ⊢ B          implication elimination (modus ponens)
//	P ⊢ (P ∨ Q), P ⊢ (Q ∨ P)   disjunction introduction
//
// Disjunction introduction is goal-directed: it is only attempted when the goal is a
// disjunction and only towards the goal's own disjuncts.
//
// # Saturation
//
// Rules are applied in passes over a snapshot of the fact set until a pass derives
// nothing new. Since every derivable fact is built from the finite vocabulary of the
// premises and the goal, saturation always terminates.
package proof

// Expr is a propositional expression.
// The set of implementations is closed: Atom, And, Implies and Or.
// All of them are comparable values, so expressions can be compared with ==
// and used as map keys.
type Expr interface {
	String() string

	expr()
}

// Atom is an indivisible proposition.
type Atom struct {
	Name string
}

func (Atom) expr()            {}
func (a Atom) String() string { return Render(a) }

// And is a conjunction of two atoms given by name.
type And struct {
	Left, Right string
}

func (And) expr()            {}
func (a And) String() string { return Render(a) }

// Implies is an implication.
type Implies struct {
	Antecedent, Consequent Expr
}

func (Implies) expr()            {}
func (i Implies) String() string { return Render(i) }

// Or is a disjunction of two atoms given by name.
type Or struct {
	Left, Right string
}

func (Or) expr()            {}
func (o Or) String() string { return Render(o) }

// Ident wraps an identifier as an atom.
func Ident(name string) Expr { return Atom{Name: name} }

// Equal compares two expressions structurally.
func Equal(e1, e2 Expr) bool { return e1 == e2 }

func isAtom(e Expr) bool {
	_, ok := e.(Atom)
	return ok
}
