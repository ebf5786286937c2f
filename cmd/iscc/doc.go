// Package main hosts the iscc CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, selects the extraction
// backend (local or a Tika server), and hands files to the identify pipeline.
// gen prints one composite code, batch walks a directory and streams detail
// lines, and the remaining commands inspect files, compare components, read
// the batch ledger, or scaffold configuration.
//
// Keep this package thin: behavior belongs in internal packages and is only
// surfaced here through flags and output formatting.
package main
