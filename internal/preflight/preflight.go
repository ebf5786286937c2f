package preflight

import (
	"context"
	"path/filepath"

	"isccgen/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is enabled.
func RunAll(ctx context.Context, cfg *config.Config, tika TikaChecker) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if cfg.Tika.Enabled {
		results = append(results, CheckTika(ctx, tika))
	}

	if cfg.Ledger.Enabled && cfg.Ledger.Path != "" {
		results = append(results, CheckWritableDirectory("Ledger directory", filepath.Dir(cfg.Ledger.Path)))
	}

	return results
}
