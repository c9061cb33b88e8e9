package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/mailstepcz/proof"
)

func TestPrintReport(t *testing.T) {
	req := require.New(t)
	color.NoColor = true

	p := &proof.Problem{Name: "unprovable", Premises: []proof.Expr{proof.Atom{Name: "P"}}, Goal: proof.Or{Left: "Q", Right: "R"}}
	var buf bytes.Buffer
	printReport(&buf, p, p.Prove())
	req.Equal(`■ unprovable: (Q ∨ R)
  ∨I(left): P ⊢ (P ∨ R) (failed)
  ∨I(right): P ⊢ (Q ∨ P) (failed)
✖ not proved
`, buf.String())

	p = &proof.Problem{Name: "elimination", Premises: []proof.Expr{proof.And{Left: "P", Right: "Q"}}, Goal: proof.Atom{Name: "Q"}}
	buf.Reset()
	printReport(&buf, p, p.Prove())
	req.Equal(`■ elimination: Q
  ∧E(left): (P ∧ Q) ⊢ P ✔
  ∧E(right): (P ∧ Q) ⊢ Q ✔
  ∧E(left): (P ∧ Q) ⊢ P (known)
  ∧E(right): (P ∧ Q) ⊢ Q (known)
  ∧I: P, Q ⊢ (P ∧ Q) (known)
  ∧I: Q, P ⊢ (Q ∧ P) ✔
  ∧E(left): (P ∧ Q) ⊢ P (known)
  ∧E(right): (P ∧ Q) ⊢ Q (known)
  ∧E(left): (Q ∧ P) ⊢ Q (known)
  ∧E(right): (Q ∧ P) ⊢ P (known)
  ∧I: P, Q ⊢ (P ∧ Q) (known)
  ∧I: Q, P ⊢ (Q ∧ P) (known)
✔ proved
`, buf.String())
}

func TestPrintTruncatedReport(t *testing.T) {
	req := require.New(t)
	color.NoColor = true

	p := proof.SampleProblem()
	var buf bytes.Buffer
	printReport(&buf, p, p.ProveWith(proof.NewProver(proof.WithMaxPasses(1))))
	req.Contains(buf.String(), "✖ not proved\npass limit reached after 1 passes\n")
}

func TestLoadProblems(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "problems.yaml")
	req.NoError(os.WriteFile(yamlPath, []byte("problems:\n- name: mp\n  premises:\n  - P\n  - P -> Q\n  goal: Q\n"), 0o600))
	sexpPath := filepath.Join(dir, "mp.sexp")
	req.NoError(os.WriteFile(sexpPath, []byte("((premises P (implies P Q)) (goal Q))"), 0o600))

	ps, err := loadProblems(yamlPath)
	req.NoError(err)
	req.Len(ps, 1)
	req.Equal("mp", ps[0].Name)
	req.True(ps[0].Prove().Success)

	ps, err = loadProblems(sexpPath)
	req.NoError(err)
	req.Len(ps, 1)
	req.Equal("mp.sexp", ps[0].Name)
	req.True(ps[0].Prove().Success)

	_, err = loadProblems(filepath.Join(dir, "problems.txt"))
	req.Error(err)
}

func TestParseConfig(t *testing.T) {
	req := require.New(t)

	t.Setenv("PROVE_DB_DRIVER", "postgres")
	t.Setenv("PROVE_MAX_PASSES", "10")
	cfg, err := parseConfig()
	req.NoError(err)
	req.Equal("info", cfg.LogLevel)
	req.Equal("postgres", cfg.DBDriver)
	req.Equal("proof.db", cfg.DBDSN)
	req.Equal(10, cfg.MaxPasses)

	_, err = newLogger(cfg)
	req.NoError(err)

	t.Setenv("PROVE_MAX_PASSES", "many")
	_, err = parseConfig()
	req.ErrorContains(err, "parse env:")

	_, err = newLogger(&config{LogLevel: "loud"})
	req.Error(err)
}

// resetCommandState restores the flag variables shared by every execution of rootCmd.
func resetCommandState(t *testing.T) {
	t.Helper()
	reset := func() {
		timeout = time.Minute
		dbDriver, dbDSN = "", ""
		noColor, runSample, saveRuns = false, false, false
		color.NoColor = true
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
	reset()
	t.Cleanup(reset)
}

func TestCheckCommand(t *testing.T) {
	req := require.New(t)
	resetCommandState(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"check", "--no-color", "P, P -> Q |- Q"})
	req.NoError(rootCmd.Execute())
	req.Contains(buf.String(), "■ P, P -> Q |- Q: Q\n")
	req.Contains(buf.String(), "  →E: (P → Q), P ⊢ Q ✔\n")
	req.Contains(buf.String(), "✔ proved\n")
}

func TestRunCommandWithStore(t *testing.T) {
	req := require.New(t)
	resetCommandState(t)

	dsn := filepath.Join(t.TempDir(), "runs.db")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"run", "--sample", "--save", "--db-driver", "sqlite", "--db", dsn})
	req.NoError(rootCmd.Execute())
	req.Contains(buf.String(), "■ problem 1: (S ∨ T)\n")

	buf.Reset()
	saveRuns, runSample = false, false
	rootCmd.SetArgs([]string{"list", "--db-driver", "sqlite", "--db", dsn})
	req.NoError(rootCmd.Execute())
	req.Contains(buf.String(), "\tproblem 1\t(S ∨ T)\tproved\n")
}
