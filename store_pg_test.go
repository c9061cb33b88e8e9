//go:build dbtest
// +build dbtest

package proof

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	// import PG
	_ "github.com/lib/pq"
)

func TestPostgresStore(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	db, err := sql.Open("postgres", os.Getenv("DB_DSN"))
	req.NoError(err)
	defer db.Close()

	_, err = db.Exec(`DROP TABLE IF EXISTS proof_steps`)
	req.NoError(err)
	_, err = db.Exec(`DROP TABLE IF EXISTS proof_runs`)
	req.NoError(err)

	s := NewStore(db, Postgres)
	req.NoError(s.Migrate(ctx))
	req.NoError(s.Migrate(ctx))

	p := SampleProblem()
	r := p.Prove()
	id, err := s.SaveRun(ctx, p, r)
	req.NoError(err)

	run, err := s.LoadRun(ctx, id)
	req.NoError(err)
	req.True(run.Success)
	req.Equal(r.Log, run.Log)

	runs, err := s.ListRuns(ctx)
	req.NoError(err)
	req.Len(runs, 1)
	req.Equal(id, runs[0].ID)
}
