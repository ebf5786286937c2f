package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound indicates no run matches the requested id.
var ErrRunNotFound = errors.New("run not found")

// ErrAmbiguousRun indicates a run id prefix matches more than one run.
var ErrAmbiguousRun = errors.New("run id prefix is ambiguous")

// RunOptions describes a batch invocation.
type RunOptions struct {
	Root      string
	Backend   string
	Recursive bool
	Guess     bool
}

// Run is a recorded batch invocation.
type Run struct {
	ID         string
	Root       string
	Backend    string
	Recursive  bool
	Guess      bool
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Failed     int
}

// Finished reports whether FinishRun was called for the run.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// Record is the stored outcome for one file.
type Record struct {
	Path       string
	Code       string
	TopHash    string
	Category   string
	Title      string
	Error      string
	ErrorKind  string
	RecordedAt time.Time
}

// Failed reports whether the file failed.
func (r Record) Failed() bool {
	return r.Error != ""
}

// BeginRun takes the writer lock and inserts a new run.
func (s *Store) BeginRun(ctx context.Context, opts RunOptions) (*Run, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	run := &Run{
		ID:        uuid.NewString(),
		Root:      opts.Root,
		Backend:   opts.Backend,
		Recursive: opts.Recursive,
		Guess:     opts.Guess,
	}
	started := s.timestamp()
	run.StartedAt = parseTimestamp(started)

	err := s.exec(ctx,
		`INSERT INTO runs (id, root, backend, recursive, guess, started_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Root, run.Backend, boolToInt(run.Recursive), boolToInt(run.Guess), started,
	)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// RecordEntry appends a file outcome to the run.
func (s *Store) RecordEntry(ctx context.Context, runID string, rec Record) error {
	err := s.exec(ctx,
		`INSERT INTO entries (run_id, path, code, top_hash, category, title, error, error_kind, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, rec.Path, rec.Code, rec.TopHash, rec.Category, rec.Title, rec.Error, rec.ErrorKind, s.timestamp(),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// FinishRun stores the run totals and releases the writer lock.
func (s *Store) FinishRun(ctx context.Context, runID string, processed, failed int) error {
	defer s.release()
	err := s.exec(ctx,
		`UPDATE runs SET finished_at = ?, processed = ?, failed = ? WHERE id = ?`,
		s.timestamp(), processed, failed, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

const runColumns = `id, root, backend, recursive, guess, started_at, COALESCE(finished_at, ''), processed, failed`

// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns the run whose id equals or uniquely starts with idOrPrefix.
func (s *Store) GetRun(ctx context.Context, idOrPrefix string) (*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? OR id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`,
		idOrPrefix, escapeLike(idOrPrefix)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		if run.ID == idOrPrefix {
			return &run, nil
		}
		found = append(found, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, idOrPrefix)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousRun, idOrPrefix)
	}
}

// Entries returns the records of a run in insertion order.
func (s *Store) Entries(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, code, top_hash, category, title, error, error_kind, recorded_at
		 FROM entries WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec      Record
			recorded string
		)
		if err := rows.Scan(&rec.Path, &rec.Code, &rec.TopHash, &rec.Category, &rec.Title, &rec.Error, &rec.ErrorKind, &recorded); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		rec.RecordedAt = parseTimestamp(recorded)
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run               Run
		recursive, guess  int
		started, finished string
	)
	if err := row.Scan(&run.ID, &run.Root, &run.Backend, &recursive, &guess, &started, &finished, &run.Processed, &run.Failed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrRunNotFound
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Recursive = recursive != 0
	run.Guess = guess != 0
	run.StartedAt = parseTimestamp(started)
	run.FinishedAt = parseTimestamp(finished)
	return run, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func escapeLike(value string) string {
	r := []rune{}
	for _, c := range value {
		if c == '%' || c == '_' {
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	return string(r)
}
