package proof

// Side selects the side on which disjunction introduction places the known atom.
type Side int

const (
	// SideLeft produces (p ∨ other).
	SideLeft Side = iota
	// SideRight produces (other ∨ p).
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "?"
}

// ConjunctionIntroduction derives (p ∧ q) from two atoms.
func ConjunctionIntroduction(p, q Expr) (Expr, bool) {
	a1, ok := p.(Atom)
	if !ok {
		return nil, false
	}
	a2, ok := q.(Atom)
	if !ok {
		return nil, false
	}
	return And{Left: a1.Name, Right: a2.Name}, true
}

// ConjunctionEliminationLeft derives the left conjunct of a conjunction.
func ConjunctionEliminationLeft(e Expr) (Expr, bool) {
	if x, ok := e.(And); ok {
		return Atom{Name: x.Left}, true
	}
	return nil, false
}

// ConjunctionEliminationRight derives the right conjunct of a conjunction.
func ConjunctionEliminationRight(e Expr) (Expr, bool) {
	if x, ok := e.(And); ok {
		return Atom{Name: x.Right}, true
	}
	return nil, false
}

// ModusPonens derives the consequent of an implication whose antecedent equals the fact.
// No unification takes place, the match must be exact.
func ModusPonens(imp, fact Expr) (Expr, bool) {
	x, ok := imp.(Implies)
	if !ok || x.Antecedent != fact {
		return nil, false
	}
	return x.Consequent, true
}

// DisjunctionIntroduction derives a disjunction of an atom and another identifier.
func DisjunctionIntroduction(p Expr, side Side, other string) (Expr, bool) {
	a, ok := p.(Atom)
	if !ok {
		return nil, false
	}
	switch side {
	case SideLeft:
		return Or{Left: a.Name, Right: other}, true
	case SideRight:
		return Or{Left: other, Right: a.Name}, true
	}
	return nil, false
}
