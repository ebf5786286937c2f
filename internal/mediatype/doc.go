// Package mediatype maps files and MIME strings to the coarse media categories
// that drive extraction and content-identifier selection.
//
// Two parsing modes exist. Strict mode serves the local backend: it resolves
// MIME types from a static extension table and only accepts the three OOXML
// office formats under application/*. Tolerant mode serves the remote backend
// and treats every application/* subtype as text.
package mediatype
