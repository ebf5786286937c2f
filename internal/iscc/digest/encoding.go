package digest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/mr-tron/base58"
)

// BodyLength is the number of base58 characters in a component body.
const BodyLength = 11

// ErrMalformedComponent indicates a component that cannot be decoded.
var ErrMalformedComponent = errors.New("malformed component")

func component(header string, value uint64) string {
	return header + encodeBody(value)
}

func encodeBody(value uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	body := base58.Encode(buf[:])
	if n := BodyLength - len(body); n > 0 {
		body = strings.Repeat("1", n) + body
	}
	return body
}

// Decode splits a single component into its header and 64-bit body.
func Decode(code string) (string, uint64, error) {
	code = strings.TrimPrefix(strings.TrimSpace(code), "ISCC:")
	if len(code) != 2+BodyLength {
		return "", 0, fmt.Errorf("%w: %q has length %d", ErrMalformedComponent, code, len(code))
	}
	raw, err := base58.Decode(code[2:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrMalformedComponent, err)
	}
	if len(raw) > 8 {
		for _, b := range raw[:len(raw)-8] {
			if b != 0 {
				return "", 0, fmt.Errorf("%w: %q overflows 64 bits", ErrMalformedComponent, code)
			}
		}
		raw = raw[len(raw)-8:]
	}
	var buf [8]byte
	copy(buf[8-len(raw):], raw)
	return code[:2], binary.BigEndian.Uint64(buf[:]), nil
}

// Similarity returns the share of equal bits between two components of the
// same header, as a percentage.
func Similarity(a, b string) (float64, error) {
	headerA, bodyA, err := Decode(a)
	if err != nil {
		return 0, err
	}
	headerB, bodyB, err := Decode(b)
	if err != nil {
		return 0, err
	}
	if !strings.EqualFold(headerA, headerB) {
		return 0, fmt.Errorf("component headers differ: %s vs %s", headerA, headerB)
	}
	distance := bits.OnesCount64(bodyA ^ bodyB)
	return float64(64-distance) / 64 * 100, nil
}
