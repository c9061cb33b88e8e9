package proof

import (
	"fmt"
)

func ExampleProve() {
	r := Prove([]Expr{
		Atom{Name: "P"},
		Implies{Antecedent: Atom{Name: "P"}, Consequent: Atom{Name: "Q"}},
	}, Or{Left: "Q", Right: "R"})
	for _, le := range r.Log {
		fmt.Println(le.Pass, le.String())
	}
	fmt.Println(r.Success)
	// Output:
	// 1 →E: (P → Q), P ⊢ Q [new]
	// 1 ∨I(left): P ⊢ (P ∨ R) [no match]
	// 1 ∨I(right): P ⊢ (Q ∨ P) [no match]
	// 2 ∧I: P, Q ⊢ (P ∧ Q) [new]
	// 2 ∧I: Q, P ⊢ (Q ∧ P) [new]
	// 2 →E: (P → Q), P ⊢ Q [known]
	// 2 ∨I(left): P ⊢ (P ∨ R) [no match]
	// 2 ∨I(right): P ⊢ (Q ∨ P) [no match]
	// 2 ∨I(left): Q ⊢ (Q ∨ R) [goal]
	// 2 ∨I(right): Q ⊢ (Q ∨ Q) [no match]
	// 3 ∧E(left): (P ∧ Q) ⊢ P [known]
	// 3 ∧E(right): (P ∧ Q) ⊢ Q [known]
	// 3 ∧E(left): (Q ∧ P) ⊢ Q [known]
	// 3 ∧E(right): (Q ∧ P) ⊢ P [known]
	// 3 ∧I: P, Q ⊢ (P ∧ Q) [known]
	// 3 ∧I: Q, P ⊢ (Q ∧ P) [known]
	// 3 →E: (P → Q), P ⊢ Q [known]
	// 3 ∨I(left): P ⊢ (P ∨ R) [no match]
	// 3 ∨I(right): P ⊢ (Q ∨ P) [no match]
	// 3 ∨I(left): Q ⊢ (Q ∨ R) [known]
	// 3 ∨I(right): Q ⊢ (Q ∨ Q) [no match]
	// true
}

func ExampleParseSequent() {
	p, err := ParseSequent(`P, Q & R, (P & Q) -> S |- S | T`)
	if err != nil {
		panic(err)
	}
	r := p.Prove()
	fmt.Println(p, r.Success, r.Passes)
	// Output:
	// P, (Q ∧ R), ((P ∧ Q) → S) ⊢ (S ∨ T) true 5
}
