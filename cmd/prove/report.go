package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mailstepcz/proof"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	ruleStyle    = color.New(color.FgYellow)
	successStyle = color.New(color.FgGreen, color.Bold)
	failureStyle = color.New(color.FgRed, color.Bold)
	mutedStyle   = color.New(color.FgHiBlack)
)

func printReport(w io.Writer, p *proof.Problem, r *proof.Result) {
	printTrace(w, p.Name, proof.Render(p.Goal), r.Log, r.Success)
	if r.Truncated {
		failureStyle.Fprintf(w, "pass limit reached after %d passes\n", r.Passes)
	}
}

func printTrace(w io.Writer, name, goal string, log []proof.LogEntry, success bool) {
	headerStyle.Fprintf(w, "■ %s: %s\n", name, goal)
	for i := range log {
		le := &log[i]
		fmt.Fprint(w, "  ")
		ruleStyle.Fprint(w, le.Rule.String())
		fmt.Fprint(w, ": ")
		for j, in := range le.Inputs {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, in)
		}
		fmt.Fprintf(w, " ⊢ %s ", le.Output)
		statusStyle(le.Status).Fprintln(w, statusMarker(le.Status))
	}
	if success {
		successStyle.Fprintln(w, "✔ proved")
	} else {
		failureStyle.Fprintln(w, "✖ not proved")
	}
}

func statusMarker(s proof.Status) string {
	switch s {
	case proof.StatusDerived, proof.StatusGoal:
		return "✔"
	case proof.StatusKnown:
		return "(known)"
	}
	return "(failed)"
}

func statusStyle(s proof.Status) *color.Color {
	switch s {
	case proof.StatusDerived, proof.StatusGoal:
		return successStyle
	case proof.StatusNoMatch:
		return failureStyle
	}
	return mutedStyle
}
