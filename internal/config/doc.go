// Package config loads, normalizes, and validates iscc CLI configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ISCC_TIKA_HOST. Command-line flags are layered on top by the CLI; the result
// is condensed into a BackendConfig that is built once per invocation and
// threaded explicitly through the pipeline.
package config
