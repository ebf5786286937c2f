// Package language detects the language of extracted text and normalizes
// language codes for display.
//
// Two detectors exist. The lingua detector runs in-process over the text the
// local backend extracted; the Tika detector asks the remote server. Both
// report ISO 639-1 codes, or "" when no language can be determined.
package language
