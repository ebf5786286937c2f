// Package batch walks a directory tree and runs the single-file pipeline for
// every regular file it finds.
//
// A failing file is recorded in the Report and the run moves on; nothing in
// this package aborts a walk because of one entry.
package batch
