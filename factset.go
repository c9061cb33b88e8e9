package proof

import "slices"

// FactSet is a set of expressions which remembers insertion order.
// Facts can be added but never removed.
type FactSet struct {
	index map[Expr]struct{}
	order []Expr
}

// NewFactSet creates a fact set containing the given expressions.
func NewFactSet(facts ...Expr) *FactSet {
	fs := &FactSet{index: make(map[Expr]struct{}, len(facts))}
	for _, f := range facts {
		fs.Add(f)
	}
	return fs
}

// Add adds a fact and returns whether it wasn't present before.
func (fs *FactSet) Add(e Expr) bool {
	if fs.index == nil {
		fs.index = make(map[Expr]struct{})
	}
	if _, ok := fs.index[e]; ok {
		return false
	}
	fs.index[e] = struct{}{}
	fs.order = append(fs.order, e)
	return true
}

// Contains returns whether the fact is in the set.
func (fs *FactSet) Contains(e Expr) bool {
	_, ok := fs.index[e]
	return ok
}

// Len returns the number of facts.
func (fs *FactSet) Len() int { return len(fs.order) }

// Facts returns the facts in insertion order.
func (fs *FactSet) Facts() []Expr { return slices.Clone(fs.order) }

// Snapshot returns an independent copy of the set.
func (fs *FactSet) Snapshot() *FactSet {
	return NewFactSet(fs.order...)
}

// Union adds all facts of another set and returns the number of new facts.
func (fs *FactSet) Union(other *FactSet) int {
	n := 0
	for _, e := range other.order {
		if fs.Add(e) {
			n++
		}
	}
	return n
}

func (fs *FactSet) atoms() []Expr {
	return fs.filter(isAtom)
}

func (fs *FactSet) filter(pred func(Expr) bool) []Expr {
	var r []Expr
	for _, e := range fs.order {
		if pred(e) {
			r = append(r, e)
		}
	}
	return r
}
