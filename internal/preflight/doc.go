// Package preflight provides readiness checks for the text-extraction server
// and filesystem paths the iscc commands depend on.
//
// These checks run in two contexts:
//   - Command startup calls CheckTika when the remote backend is active and
//     treats a failure as fatal before any file is processed.
//   - The batch command checks its root directory and logs a warning when it
//     cannot be read; the run itself still completes.
//
// Each check is gated by its config toggle -- disabled features are skipped.
package preflight
