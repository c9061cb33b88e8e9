package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mailstepcz/proof"
)

var errUnproved = errors.New("some goals were not proved")

var (
	runSample bool
	saveRuns  bool
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Prove the problems in YAML or s-expression files",
	Long: `Loads problems from .yaml/.yml files (infix notation) or .sexp files
(symbolic expressions) and prints the trace of each proof attempt.
Example) prove run problems.yaml --save`,
	RunE: withContext(func(c *cmdContext, cmd *cobra.Command, args []string) error {
		var problems []*proof.Problem
		if runSample {
			problems = append(problems, proof.SampleProblem())
		}
		for _, path := range args {
			ps, err := loadProblems(path)
			if err != nil {
				c.logger.Error("Failed to load problems", zap.String("path", path), zap.Error(err))
				return err
			}
			problems = append(problems, ps...)
		}
		if len(problems) == 0 {
			return errors.New("no problems given, provide files or --sample")
		}
		return proveAll(c, cmd, problems)
	}),
}

var checkCmd = &cobra.Command{
	Use:   "check <sequent>",
	Short: "Prove an inline sequent",
	Long: `Proves a sequent written in infix notation.
Example) prove check "P, Q & R, (P & Q) -> S |- S | T"`,
	Args: cobra.ExactArgs(1),
	RunE: withContext(func(c *cmdContext, cmd *cobra.Command, args []string) error {
		p, err := proof.ParseSequent(args[0])
		if err != nil {
			return err
		}
		p.Name = args[0]
		return proveAll(c, cmd, []*proof.Problem{p})
	}),
}

func init() {
	runCmd.Flags().BoolVar(&runSample, "sample", false, "Also prove the built-in sample problem")
	for _, cmd := range []*cobra.Command{runCmd, checkCmd} {
		cmd.Flags().BoolVar(&saveRuns, "save", false, "Save the traces to the trace store")
	}
}

func loadProblems(path string) ([]*proof.Problem, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return proof.LoadYAML(f)
	case ".sexp":
		code, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		p, err := proof.NewProblemFromSymbolicExpression(string(code))
		if err != nil {
			return nil, err
		}
		if p.Name == "" {
			p.Name = filepath.Base(path)
		}
		return []*proof.Problem{p}, nil
	}
	return nil, fmt.Errorf("unknown problem file type '%s'", path)
}

func proveAll(c *cmdContext, cmd *cobra.Command, problems []*proof.Problem) error {
	if noColor {
		color.NoColor = true
	}

	var store *proof.Store
	if saveRuns {
		s, closeStore, err := openStore(c)
		if err != nil {
			c.logger.Error("Failed to open trace store", zap.String("driver", c.cfg.DBDriver), zap.Error(err))
			return err
		}
		defer closeStore()
		store = s
	}

	prover := proof.NewProver(proof.WithLogger(c.logger), proof.WithMaxPasses(c.cfg.MaxPasses))
	failed := false
	for _, p := range problems {
		r := p.ProveWith(prover)
		printReport(cmd.OutOrStdout(), p, r)
		if !r.Success {
			failed = true
		}
		if store != nil {
			id, err := store.SaveRun(c.ctx, p, r)
			if err != nil {
				c.logger.Error("Failed to save run", zap.String("problem", p.Name), zap.Error(err))
				return err
			}
			c.logger.Info("Saved run", zap.String("problem", p.Name), zap.Stringer("id", id))
		}
	}
	if failed {
		return errUnproved
	}
	return nil
}
