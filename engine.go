package proof

import (
	"github.com/mailstepcz/slice"
	"go.uber.org/zap"
)

// State is the state of a saturation run.
type State int

const (
	// StateRunning means the last pass derived new facts.
	StateRunning State = iota
	// StateSaturated means a fixpoint has been reached.
	StateSaturated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSaturated:
		return "saturated"
	}
	return "?"
}

// Result is the outcome of a proof attempt.
type Result struct {
	// Log is the trace of all rule applications in application order.
	Log []LogEntry
	// Success is true iff the goal is among the facts.
	Success bool
	// Facts are the known facts in the order they became known.
	Facts []Expr
	// Passes is the number of passes made, including the last unproductive one.
	Passes int
	// State is the final state, StateSaturated unless the pass limit was hit.
	State State
	// Truncated is set when the pass limit stopped the run before saturation.
	Truncated bool

	premises int
}

// Derived returns the facts that weren't premises, in derivation order.
func (r *Result) Derived() []Expr {
	return r.Facts[r.premises:]
}

// Prover saturates sets of premises.
// The zero value is usable.
type Prover struct {
	// Logger receives debug information about passes.
	Logger *zap.Logger
	// MaxPasses bounds the number of passes if positive.
	MaxPasses int
}

// Option configures a prover.
type Option func(*Prover)

// WithLogger sets the logger of the prover.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Prover) { p.Logger = logger }
}

// WithMaxPasses limits the number of passes.
func WithMaxPasses(n int) Option {
	return func(p *Prover) { p.MaxPasses = n }
}

// NewProver creates a new prover.
func NewProver(opts ...Option) *Prover {
	p := new(Prover)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prove tries to derive the goal from the premises with a default prover.
func Prove(premises []Expr, goal Expr) *Result {
	var p Prover
	return p.Prove(premises, goal)
}

// Prove tries to derive the goal from the premises.
// An unprovable goal is not an error, it yields a result with Success set to false.
func (p *Prover) Prove(premises []Expr, goal Expr) *Result {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("goal", Render(goal)))

	run := &saturation{
		facts: NewFactSet(premises...),
		goal:  goal,
		state: StateRunning,
	}
	premiseCount := run.facts.Len()
	for run.state == StateRunning {
		if p.MaxPasses > 0 && run.pass == p.MaxPasses {
			logger.Debug("pass limit reached", zap.Int("passes", run.pass))
			break
		}
		n := run.step()
		logger.Debug("pass finished",
			zap.Int("pass", run.pass),
			zap.Int("derived", n),
			zap.Int("facts", run.facts.Len()),
		)
	}

	success := run.facts.Contains(goal)
	logger.Debug("proof finished",
		zap.Stringer("state", run.state),
		zap.Bool("success", success),
		zap.Int("entries", len(run.log)),
	)
	return &Result{
		Log:       run.log,
		Success:   success,
		Facts:     run.facts.Facts(),
		Passes:    run.pass,
		State:     run.state,
		Truncated: run.state != StateSaturated,
		premises:  premiseCount,
	}
}

type saturation struct {
	facts *FactSet
	goal  Expr
	state State
	pass  int
	log   []LogEntry

	snapshot *FactSet
	staged   *FactSet
}

// step performs one pass and returns the number of new facts.
func (s *saturation) step() int {
	s.pass++
	s.snapshot = s.facts.Snapshot()
	s.staged = NewFactSet()

	s.eliminateConjunctions()
	s.introduceConjunctions()
	s.eliminateImplications()
	s.introduceDisjunctions()

	n := s.facts.Union(s.staged)
	if n == 0 {
		s.state = StateSaturated
	}
	return n
}

func (s *saturation) eliminateConjunctions() {
	for _, e := range s.snapshot.filter(func(e Expr) bool { _, ok := e.(And); return ok }) {
		if r, ok := ConjunctionEliminationLeft(e); ok {
			s.derive(AndElimLeft, r, e)
		}
		if r, ok := ConjunctionEliminationRight(e); ok {
			s.derive(AndElimRight, r, e)
		}
	}
}

func (s *saturation) introduceConjunctions() {
	atoms := s.snapshot.atoms()
	for _, p := range atoms {
		for _, q := range atoms {
			if p == q {
				continue
			}
			if r, ok := ConjunctionIntroduction(p, q); ok {
				s.derive(AndIntro, r, p, q)
			}
		}
	}
}

func (s *saturation) eliminateImplications() {
	imps := s.snapshot.filter(func(e Expr) bool { _, ok := e.(Implies); return ok })
	facts := s.snapshot.Facts()
	for _, imp := range imps {
		for _, fact := range facts {
			if r, ok := ModusPonens(imp, fact); ok {
				s.derive(ImpliesElim, r, imp, fact)
			}
		}
	}
}

func (s *saturation) introduceDisjunctions() {
	goal, ok := s.goal.(Or)
	if !ok {
		return
	}
	for _, p := range s.snapshot.atoms() {
		if r, ok := DisjunctionIntroduction(p, SideLeft, goal.Right); ok {
			s.matchGoal(OrIntroLeft, r, p)
		}
		if r, ok := DisjunctionIntroduction(p, SideRight, goal.Left); ok {
			s.matchGoal(OrIntroRight, r, p)
		}
	}
}

// derive records a derived fact and stages it unless it was known before the pass.
func (s *saturation) derive(rule RuleTag, r Expr, inputs ...Expr) {
	status := StatusKnown
	if !s.snapshot.Contains(r) {
		status = StatusDerived
		s.staged.Add(r)
	}
	s.record(rule, r, status, inputs)
}

// matchGoal records a disjunction attempt and stages the goal if it matches.
func (s *saturation) matchGoal(rule RuleTag, r Expr, p Expr) {
	status := StatusNoMatch
	if r == s.goal {
		status = StatusGoal
		if s.snapshot.Contains(s.goal) {
			status = StatusKnown
		} else {
			s.staged.Add(s.goal)
		}
	}
	s.record(rule, r, status, []Expr{p})
}

func (s *saturation) record(rule RuleTag, r Expr, status Status, inputs []Expr) {
	s.log = append(s.log, LogEntry{
		Pass:   s.pass,
		Rule:   rule,
		Inputs: slice.Fmap(Render, inputs),
		Output: Render(r),
		Status: status,
	})
}
