package proof

import (
	"fmt"
	"io"
	"strings"

	"github.com/mailstepcz/slice"
	"gopkg.in/yaml.v3"
)

// Problem is a set of premises with a goal.
type Problem struct {
	Name     string
	Premises []Expr
	Goal     Expr
}

func (p *Problem) String() string {
	return strings.Join(slice.Fmap(Render, p.Premises), ", ") + " ⊢ " + Render(p.Goal)
}

// Prove tries to derive the goal of the problem.
func (p *Problem) Prove() *Result {
	return Prove(p.Premises, p.Goal)
}

// ProveWith tries to derive the goal of the problem with the given prover.
func (p *Problem) ProveWith(prover *Prover) *Result {
	return prover.Prove(p.Premises, p.Goal)
}

// SampleProblem returns a small problem exercising all four rules.
func SampleProblem() *Problem {
	return &Problem{
		Name: "problem 1",
		Premises: []Expr{
			Atom{Name: "P"},
			And{Left: "Q", Right: "R"},
			Implies{Antecedent: And{Left: "P", Right: "Q"}, Consequent: Atom{Name: "S"}},
		},
		Goal: Or{Left: "S", Right: "T"},
	}
}

type source struct {
	Problems []problemSource `yaml:"problems"`
}

type problemSource struct {
	Name     string   `yaml:"name"`
	Premises []string `yaml:"premises"`
	Goal     string   `yaml:"goal"`
}

// LoadYAML loads a list of problems from a YAML reader.
// Expressions are written in infix notation.
//
//	problems:
//	- name: modus ponens
//	  premises:
//	  - P
//	  - P -> Q
//	  goal: Q
func LoadYAML(r io.Reader) ([]*Problem, error) {
	var source source
	if err := yaml.NewDecoder(r).Decode(&source); err != nil {
		return nil, err
	}
	problems := make([]*Problem, len(source.Problems))
	for i, ps := range source.Problems {
		p := &Problem{Name: ps.Name}
		for _, code := range ps.Premises {
			e, err := ParseExpr(code)
			if err != nil {
				return nil, fmt.Errorf("problem '%s': premise '%s': %w", ps.Name, code, err)
			}
			p.Premises = append(p.Premises, e)
		}
		if ps.Goal == "" {
			return nil, fmt.Errorf("problem '%s': %w: no goal", ps.Name, ErrIllFormed)
		}
		goal, err := ParseExpr(ps.Goal)
		if err != nil {
			return nil, fmt.Errorf("problem '%s': goal '%s': %w", ps.Name, ps.Goal, err)
		}
		p.Goal = goal
		problems[i] = p
	}
	return problems, nil
}
