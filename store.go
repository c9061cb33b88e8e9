package proof

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/fealsamh/go-utils/dbutils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRunNotFound is returned when a stored run doesn't exist.
var ErrRunNotFound = errors.New("run not found")

// Dialect is the SQL dialect of a store's database.
type Dialect int

const (
	// SQLite uses ? placeholders.
	SQLite Dialect = iota
	// Postgres uses $n placeholders.
	Postgres
)

// DialectForDriver returns the dialect for a database/sql driver name.
func DialectForDriver(driver string) (Dialect, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "pgx":
		return Postgres, nil
	}
	return 0, errors.Errorf("unsupported driver '%s'", driver)
}

func (d Dialect) placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		if d == Postgres {
			ps[i] = "$" + strconv.Itoa(i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ", ")
}

// DB is the database used by a store.
type DB interface {
	dbutils.Querier
	dbutils.Txer
}

// Store persists proof runs and their traces.
type Store struct {
	db      DB
	dialect Dialect
	now     func() time.Time
}

// NewStore creates a new store.
func NewStore(db DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, now: time.Now}
}

// Run is a stored proof run.
type Run struct {
	ID        uuid.UUID
	Name      string
	Goal      string
	Success   bool
	Passes    int
	CreatedAt time.Time
	// Log is only populated by LoadRun.
	Log []LogEntry
}

// timeLayout has a fixed width so that created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS proof_runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		goal TEXT NOT NULL,
		success INTEGER NOT NULL,
		passes INTEGER NOT NULL,
		created_at TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS proof_steps (
		run_id TEXT NOT NULL REFERENCES proof_runs (id),
		seq INTEGER NOT NULL,
		pass INTEGER NOT NULL,
		rule TEXT NOT NULL,
		inputs TEXT NOT NULL,
		output TEXT NOT NULL,
		status TEXT NOT NULL,
		PRIMARY KEY (run_id, seq))`,
}

// Migrate creates the tables of the store if they don't exist.
func (s *Store) Migrate(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin migration")
	}
	defer rollback(tx)
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create table")
		}
	}
	return errors.Wrap(tx.Commit(), "commit migration")
}

// SaveRun stores a proof run and returns its identifier.
func (s *Store) SaveRun(ctx context.Context, p *Problem, r *Result) (uuid.UUID, error) {
	id := uuid.New()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "begin run")
	}
	defer rollback(tx)

	if _, err := tx.ExecContext(ctx, `INSERT INTO proof_runs (id, name, goal, success, passes, created_at) VALUES (`+
		s.dialect.placeholders(6)+`)`,
		id.String(), p.Name, Render(p.Goal), boolToInt(r.Success), r.Passes, s.now().UTC().Format(timeLayout),
	); err != nil {
		return uuid.Nil, errors.Wrapf(err, "insert run '%s'", p.Name)
	}

	insertStep := `INSERT INTO proof_steps (run_id, seq, pass, rule, inputs, output, status) VALUES (` +
		s.dialect.placeholders(7) + `)`
	for i, le := range r.Log {
		if _, err := tx.ExecContext(ctx, insertStep,
			id.String(), i, le.Pass, le.Rule.String(), strings.Join(le.Inputs, "\n"), le.Output, le.Status.String(),
		); err != nil {
			return uuid.Nil, errors.Wrapf(err, "insert step %d of run '%s'", i, p.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, errors.Wrap(err, "commit run")
	}
	return id, nil
}

// LoadRun loads a stored run together with its trace.
func (s *Store) LoadRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	runs, err := s.queryRuns(ctx, ` WHERE id = `+s.dialect.placeholders(1), id.String())
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, errors.Wrapf(ErrRunNotFound, "run %s", id)
	}
	run := runs[0]

	rows, err := s.db.QueryContext(ctx, `SELECT pass, rule, inputs, output, status FROM proof_steps WHERE run_id = `+
		s.dialect.placeholders(1)+` ORDER BY seq`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "query steps")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			le                           LogEntry
			rule, inputs, output, status string
		)
		if err := rows.Scan(&le.Pass, &rule, &inputs, &output, &status); err != nil {
			return nil, errors.Wrap(err, "scan step")
		}
		if le.Rule, err = ParseRuleTag(rule); err != nil {
			return nil, err
		}
		if le.Status, err = ParseStatus(status); err != nil {
			return nil, err
		}
		if inputs != "" {
			le.Inputs = strings.Split(inputs, "\n")
		}
		le.Output = output
		run.Log = append(run.Log, le)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate steps")
	}
	return run, nil
}

// ListRuns returns all stored runs without their traces, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]*Run, error) {
	return s.queryRuns(ctx, "")
}

func (s *Store) queryRuns(ctx context.Context, where string, args ...interface{}) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, goal, success, passes, created_at FROM proof_runs`+
		where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run           Run
			id, createdAt string
			success       int
		)
		if err := rows.Scan(&id, &run.Name, &run.Goal, &success, &run.Passes, &createdAt); err != nil {
			return nil, errors.Wrap(err, "scan run")
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "bad run id '%s'", id)
		}
		if run.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, errors.Wrapf(err, "bad timestamp of run %s", id)
		}
		run.Success = success != 0
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate runs")
	}
	return runs, nil
}

// Summary renders a one-line description of the run.
func (r *Run) Summary() string {
	status := "not proved"
	if r.Success {
		status = "proved"
	}
	return strings.Join([]string{r.ID.String(), r.CreatedAt.Format(time.RFC3339), r.Name, r.Goal, status}, "\t")
}

// rollback is deferred after BeginTx; it's a no-op once the transaction is committed.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
