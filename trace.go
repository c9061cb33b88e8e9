package proof

import (
	"fmt"
	"strings"
)

// RuleTag identifies the rule of a log entry.
type RuleTag int

// Rule tags in the order the engine applies them within a pass.
const (
	AndElimLeft RuleTag = iota
	AndElimRight
	AndIntro
	ImpliesElim
	OrIntroLeft
	OrIntroRight
)

var ruleTagNames = [...]string{
	AndElimLeft:  "∧E(left)",
	AndElimRight: "∧E(right)",
	AndIntro:     "∧I",
	ImpliesElim:  "→E",
	OrIntroLeft:  "∨I(left)",
	OrIntroRight: "∨I(right)",
}

func (r RuleTag) String() string {
	if r >= 0 && int(r) < len(ruleTagNames) {
		return ruleTagNames[r]
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// ParseRuleTag is the inverse of RuleTag.String.
func ParseRuleTag(s string) (RuleTag, error) {
	for i, name := range ruleTagNames {
		if name == s {
			return RuleTag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rule tag '%s'", s)
}

// Status is the outcome of a rule application.
type Status int

const (
	// StatusDerived marks a fact not known before the pass.
	StatusDerived Status = iota
	// StatusKnown marks a fact which was already known.
	StatusKnown
	// StatusGoal marks a disjunction equal to the goal.
	StatusGoal
	// StatusNoMatch marks a disjunction which isn't the goal.
	StatusNoMatch
)

var statusNames = [...]string{
	StatusDerived: "new",
	StatusKnown:   "known",
	StatusGoal:    "goal",
	StatusNoMatch: "no match",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status '%s'", s)
}

// LogEntry records a single rule application.
type LogEntry struct {
	// Pass is the 1-based number of the pass the application happened in.
	Pass int
	// Rule is the applied rule.
	Rule RuleTag
	// Inputs are the rendered premises of the application.
	Inputs []string
	// Output is the rendered conclusion.
	Output string
	// Status is the outcome.
	Status Status
}

func (le *LogEntry) String() string {
	var sb strings.Builder
	sb.WriteString(le.Rule.String())
	sb.WriteString(": ")
	sb.WriteString(strings.Join(le.Inputs, ", "))
	sb.WriteString(" ⊢ ")
	sb.WriteString(le.Output)
	sb.WriteString(" [")
	sb.WriteString(le.Status.String())
	sb.WriteRune(']')
	return sb.String()
}
