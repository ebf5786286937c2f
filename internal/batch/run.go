package batch

import (
	"context"
	"iter"

	"isccgen/internal/iscc"
)

// Handler identifies a single file.
type Handler func(ctx context.Context, path string) (iscc.Code, error)

// Entry is the outcome for one file.
type Entry struct {
	Path string
	Code iscc.Code
	Err  error
}

// OK reports whether the file was identified.
func (e Entry) OK() bool {
	return e.Err == nil
}

// Report collects every entry of a run in processing order.
type Report struct {
	Entries []Entry
}

// Processed returns the number of files handled.
func (r Report) Processed() int {
	return len(r.Entries)
}

// Failed returns the number of files whose handler returned an error.
func (r Report) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if !e.OK() {
			n++
		}
	}
	return n
}

// Succeeded returns the number of identified files.
func (r Report) Succeeded() int {
	return r.Processed() - r.Failed()
}

// Run feeds every path to handler one at a time. observe, when non-nil, is
// called after each entry so callers can stream output.
func Run(ctx context.Context, paths iter.Seq[string], handler Handler, observe func(Entry)) Report {
	var report Report
	for path := range paths {
		code, err := handler(ctx, path)
		entry := Entry{Path: path, Code: code, Err: err}
		report.Entries = append(report.Entries, entry)
		if observe != nil {
			observe(entry)
		}
	}
	return report
}
