// Package metadata decodes metadata documents returned by the extraction
// service into an ordered tree and searches that tree for title candidates.
//
// Object members keep their document order, so the first candidate found by
// Search is stable for a given response body.
package metadata
