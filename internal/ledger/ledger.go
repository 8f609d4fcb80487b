// Package ledger archives run reports in SQLite. Only drivers use it; the
// balancing core never touches storage.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	created_at    TEXT NOT NULL,
	passes        INTEGER NOT NULL,
	converged_all INTEGER NOT NULL,
	config_yaml   TEXT NOT NULL,
	report_yaml   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS system_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	pass        INTEGER NOT NULL,
	system      TEXT NOT NULL,
	iters       INTEGER NOT NULL,
	converged   INTEGER NOT NULL,
	theta_yaml  TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store
// Store is a SQLite-backed run archive.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the archive at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region record
// Record inserts run and its system entries atomically. An empty ID is
// replaced by a fresh UUID and a zero CreatedAt by the current UTC time; the
// stored run is returned.
func (s *Store) Record(run Run, systems []SystemEntry) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Run{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, created_at, passes, converged_all, config_yaml, report_yaml)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Format(time.RFC3339Nano), run.Passes, boolInt(run.ConvergedAll),
		run.ConfigYAML, run.ReportYAML,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	for _, e := range systems {
		_, err = tx.Exec(
			`INSERT INTO system_log (run_id, pass, system, iters, converged, theta_yaml)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, e.Pass, e.System, e.Iters, boolInt(e.Converged), nullIfEmpty(e.ThetaYAML),
		)
		if err != nil {
			return Run{}, fmt.Errorf("insert system %s pass %d: %w", e.System, e.Pass, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit: %w", err)
	}
	return run, nil
}

// #endregion record

// #region get
// Get retrieves one run by ID.
func (s *Store) Get(id string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT run_id, created_at, passes, converged_all, config_yaml, report_yaml
		 FROM runs WHERE run_id = ?`, id,
	)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// Systems returns the system entries of a run ordered by pass, then by
// insertion order within the pass.
func (s *Store) Systems(runID string) ([]SystemEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, pass, system, iters, converged, theta_yaml
		 FROM system_log WHERE run_id = ? ORDER BY pass ASC, id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	defer rows.Close()

	var entries []SystemEntry
	for rows.Next() {
		var e SystemEntry
		var conv int
		var theta sql.NullString
		if err := rows.Scan(&e.RunID, &e.Pass, &e.System, &e.Iters, &conv, &theta); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Converged = conv != 0
		if theta.Valid {
			e.ThetaYAML = theta.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion get

// #region list
// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT run_id, created_at, passes, converged_all, config_yaml, report_yaml
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// #endregion list

// #region helpers
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdStr string
	var conv int
	if err := row.Scan(&run.ID, &createdStr, &run.Passes, &conv, &run.ConfigYAML, &run.ReportYAML); err != nil {
		return Run{}, err
	}
	run.ConvergedAll = conv != 0
	run.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return run, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
