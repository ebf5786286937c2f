// Package digest is the default iscc.Codec.
//
// Each component is a two-letter header followed by an 11 character base58
// body holding 64 bits. The bodies come from plain digests (SHA-256 and
// xxHash64) over normalized input, so equal inputs always give equal codes
// but similar inputs do not give similar codes.
package digest
