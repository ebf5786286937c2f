package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"isccgen/internal/ledger"
)

const shortRunIDLength = 8

type runView struct {
	ID         string `json:"id"`
	Root       string `json:"root"`
	Backend    string `json:"backend"`
	Recursive  bool   `json:"recursive"`
	Guess      bool   `json:"guess"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	Processed  int    `json:"processed"`
	Failed     int    `json:"failed"`
}

type entryView struct {
	Path      string `json:"path"`
	Code      string `json:"code,omitempty"`
	TopHash   string `json:"top_hash,omitempty"`
	Category  string `json:"category,omitempty"`
	Title     string `json:"title,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded batch runs or the entries of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ledger.Open(cfg)
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer store.Close()

			if len(args) == 0 {
				return listRuns(cmd, store, limit, asJSON)
			}
			return showRun(cmd, store, args[0], asJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func listRuns(cmd *cobra.Command, store *ledger.Store, limit int, asJSON bool) error {
	runs, err := store.ListRuns(commandCtx(cmd), limit)
	if err != nil {
		return err
	}
	if asJSON {
		views := make([]runView, 0, len(runs))
		for _, run := range runs {
			views = append(views, toRunView(run))
		}
		return writeJSON(cmd, views)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded")
		return nil
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			humanize.Time(run.StartedAt),
			run.Root,
			run.Backend,
			strconv.Itoa(run.Processed),
			strconv.Itoa(run.Failed),
			runStatus(run),
		})
	}
	headers := []string{"Run", "Started", "Root", "Backend", "Processed", "Failed", "Status"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
	fmt.Fprintln(out, renderForWriter(out, headers, rows, aligns))
	return nil
}

func showRun(cmd *cobra.Command, store *ledger.Store, id string, asJSON bool) error {
	ctx := commandCtx(cmd)
	run, err := store.GetRun(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRunNotFound):
			return fmt.Errorf("no run matches %q", id)
		case errors.Is(err, ledger.ErrAmbiguousRun):
			return fmt.Errorf("run id %q is ambiguous; use more characters", id)
		}
		return err
	}
	records, err := store.Entries(ctx, run.ID)
	if err != nil {
		return err
	}

	if asJSON {
		entries := make([]entryView, 0, len(records))
		for _, rec := range records {
			entries = append(entries, toEntryView(rec))
		}
		return writeJSON(cmd, struct {
			Run     runView     `json:"run"`
			Entries []entryView `json:"entries"`
		}{toRunView(*run), entries})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:       %s\n", run.ID)
	fmt.Fprintf(out, "Root:      %s\n", run.Root)
	fmt.Fprintf(out, "Backend:   %s\n", run.Backend)
	fmt.Fprintf(out, "Recursive: %s\n", yesNo(run.Recursive))
	fmt.Fprintf(out, "Guess:     %s\n", yesNo(run.Guess))
	fmt.Fprintf(out, "Started:   %s (%s)\n", run.StartedAt.Local().Format(time.DateTime), humanize.Time(run.StartedAt))
	if run.Finished() {
		fmt.Fprintf(out, "Duration:  %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	fmt.Fprintf(out, "Status:    %s (%d processed, %d failed)\n", runStatus(*run), run.Processed, run.Failed)

	if len(records) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		result := rec.Code
		if rec.Failed() {
			result = "error (" + rec.ErrorKind + "): " + rec.Error
		}
		rows = append(rows, []string{rec.Path, rec.Category, rec.Title, result})
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderForWriter(out, []string{"Path", "Category", "Title", "Result"}, rows, nil))
	return nil
}

func toRunView(run ledger.Run) runView {
	view := runView{
		ID:        run.ID,
		Root:      run.Root,
		Backend:   run.Backend,
		Recursive: run.Recursive,
		Guess:     run.Guess,
		StartedAt: run.StartedAt.UTC().Format(time.RFC3339),
		Processed: run.Processed,
		Failed:    run.Failed,
	}
	if run.Finished() {
		view.FinishedAt = run.FinishedAt.UTC().Format(time.RFC3339)
	}
	return view
}

func toEntryView(rec ledger.Record) entryView {
	return entryView{
		Path:      rec.Path,
		Code:      rec.Code,
		TopHash:   rec.TopHash,
		Category:  rec.Category,
		Title:     rec.Title,
		Error:     rec.Error,
		ErrorKind: rec.ErrorKind,
	}
}

func runStatus(run ledger.Run) string {
	switch {
	case !run.Finished():
		return "incomplete"
	case run.Failed > 0:
		return "completed with failures"
	default:
		return "completed"
	}
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > shortRunIDLength {
		return id[:shortRunIDLength]
	}
	return id
}
