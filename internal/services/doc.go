// Package services defines shared utilities consumed by the identification
// pipeline and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp file paths, pipeline stages, and batch run
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper so classification,
//     extraction, and identifier failures can be told apart with errors.Is.
//
// Use these helpers when wiring new pipeline stages so error reporting and
// observability stay uniform across single-file and batch runs.
package services
