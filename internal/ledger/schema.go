package ledger

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// ledgerVersion is stored in the database header (PRAGMA user_version).
// Bump it whenever schema.sql changes.
const ledgerVersion = 1

// ErrSchemaMismatch indicates the file is not a ledger of the expected version.
var ErrSchemaMismatch = errors.New("ledger schema mismatch")

// prepare creates the tables in an empty database and rejects files written
// by another ledger version or by something else entirely.
func (s *Store) prepare(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read ledger version: %w", err)
	}
	switch {
	case version == ledgerVersion:
		return nil
	case version != 0:
		return fmt.Errorf("%w: %s has version %d, this build writes %d (move it aside to start a new ledger)",
			ErrSchemaMismatch, s.path, version, ledgerVersion)
	}

	var tables int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'",
	).Scan(&tables); err != nil {
		return fmt.Errorf("inspect %s: %w", s.path, err)
	}
	if tables > 0 {
		return fmt.Errorf("%w: %s already holds tables but no ledger version", ErrSchemaMismatch, s.path)
	}

	// user_version is transactional, so a crash never leaves a versioned but
	// empty ledger behind.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger setup: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create ledger tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", ledgerVersion)); err != nil {
		return fmt.Errorf("stamp ledger version: %w", err)
	}
	return tx.Commit()
}
