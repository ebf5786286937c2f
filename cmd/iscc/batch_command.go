package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"isccgen/internal/batch"
	"isccgen/internal/config"
	"isccgen/internal/identify"
	"isccgen/internal/iscc"
	"isccgen/internal/ledger"
	"isccgen/internal/logging"
	"isccgen/internal/preflight"
	"isccgen/internal/services"
)

type batchOptions struct {
	dir       string
	recursive bool
	guess     bool
	record    bool
	summary   bool
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate ISCC codes for every file in a directory",
		Long: "Generate ISCC codes for every regular file in a directory.\n\n" +
			"Each identified file prints a detail line (code, top hash, filename, category, title).\n" +
			"Files that fail are reported on stderr and never stop the run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime(cmd)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("guess") {
				opts.guess = cfg.Batch.Guess
			}
			opts.record = opts.record || cfg.Ledger.Enabled
			return runBatch(commandCtx(cmd), cmd, cfg, rt, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory to process")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVarP(&opts.guess, "guess", "g", false, "Guess title and extra from file content")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Record the run in the ledger")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a summary table to stderr after the run")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func runBatch(ctx context.Context, cmd *cobra.Command, cfg *config.Config, rt *runtime, opts batchOptions) error {
	logger := logging.NewComponentLogger(rt.logger, "batch")
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	if check := preflight.CheckDirectoryAccess("batch root", opts.dir); !check.Passed {
		logging.WarnWithContext(logger, "batch root not accessible", "batch_root",
			logging.File(opts.dir),
			logging.String(logging.FieldErrorHint, check.Detail),
			logging.String(logging.FieldImpact, "no files will be processed"),
		)
	}

	depth := 1
	if opts.recursive {
		depth = cfg.Batch.MaxDepth
	}

	started := time.Now()
	var rec *recorder
	if opts.record {
		var err error
		rec, err = startRecording(ctx, cfg, ledger.RunOptions{
			Root:      opts.dir,
			Backend:   rt.pipeline.Backend().Name(),
			Recursive: opts.recursive,
			Guess:     opts.guess,
		})
		if err != nil {
			return err
		}
		ctx = services.WithRunID(ctx, rec.run.ID)
		logger.Info("recording batch run", logging.String(logging.FieldRunID, rec.run.ID))
	}

	handler := func(ctx context.Context, path string) (iscc.Code, error) {
		return rt.pipeline.Generate(ctx, identify.Request{Path: path, Guess: opts.guess})
	}
	report := batch.Run(ctx, batch.Walk(opts.dir, depth), handler, func(entry batch.Entry) {
		if entry.OK() {
			fmt.Fprintln(stdout, entry.Code.Detail(entry.Path))
		} else {
			fmt.Fprintf(stderr, "Error %s: %v\n", entry.Path, entry.Err)
			logger.Debug("file failed", logging.File(entry.Path), logging.Error(entry.Err))
		}
		rec.add(ctx, entry)
	})

	logger.Info("batch complete",
		logging.Int("processed", report.Processed()),
		logging.Int("failed", report.Failed()),
		logging.Duration("elapsed", time.Since(started)),
	)

	if opts.summary {
		fmt.Fprintln(stderr, renderBatchSummary(report))
	}
	if err := rec.finish(ctx, report); err != nil {
		return err
	}
	if rec != nil {
		fmt.Fprintf(stderr, "Recorded run %s\n", rec.run.ID)
	}
	return nil
}

// recorder writes batch entries to the ledger. A nil recorder records nothing.
type recorder struct {
	store *ledger.Store
	run   *ledger.Run
	err   error
}

func startRecording(ctx context.Context, cfg *config.Config, opts ledger.RunOptions) (*recorder, error) {
	store, err := ledger.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	run, err := store.BeginRun(ctx, opts)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &recorder{store: store, run: run}, nil
}

func (r *recorder) add(ctx context.Context, entry batch.Entry) {
	if r == nil || r.err != nil {
		return
	}
	r.err = r.store.RecordEntry(ctx, r.run.ID, recordFor(entry))
}

func (r *recorder) finish(ctx context.Context, report batch.Report) error {
	if r == nil {
		return nil
	}
	var result *multierror.Error
	result = multierror.Append(result, r.err)
	result = multierror.Append(result, r.store.FinishRun(ctx, r.run.ID, report.Processed(), report.Failed()))
	result = multierror.Append(result, r.store.Close())
	return result.ErrorOrNil()
}

func recordFor(entry batch.Entry) ledger.Record {
	if !entry.OK() {
		return ledger.Record{
			Path:      entry.Path,
			Error:     entry.Err.Error(),
			ErrorKind: services.Kind(entry.Err),
		}
	}
	return ledger.Record{
		Path:     entry.Path,
		Code:     entry.Code.String(),
		TopHash:  entry.Code.TopHash,
		Category: entry.Code.Category.String(),
		Title:    entry.Code.Title,
	}
}

func renderBatchSummary(report batch.Report) string {
	return renderTable(
		[]string{"Processed", "Succeeded", "Failed"},
		[][]string{{
			strconv.Itoa(report.Processed()),
			strconv.Itoa(report.Succeeded()),
			strconv.Itoa(report.Failed()),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight},
	)
}
