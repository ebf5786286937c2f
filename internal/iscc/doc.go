// Package iscc assembles composite identifiers from the sub-identifiers
// produced by a Codec.
//
// The assembler owns dispatch by media category: text content goes to the
// text content-id function, images to the image one, and audio or video
// fail with services.ErrNotImplemented before any digest is computed.
package iscc
