package digest

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Component headers.
const (
	HeaderMeta     = "CC"
	HeaderText     = "CT"
	HeaderImage    = "CY"
	HeaderData     = "CD"
	HeaderInstance = "CR"
)

// MetaTrimLength caps the normalized title and extra, in runes.
const MetaTrimLength = 128

// Codec computes digest-based sub-identifiers.
type Codec struct {
	fold cases.Caser
}

// New returns a Codec.
func New() *Codec {
	return &Codec{fold: cases.Fold()}
}

// MetaID normalizes title and extra and derives the meta component from them.
func (c *Codec) MetaID(title, extra string) (string, string, string) {
	normTitle := trimRunes(collapseSpace(norm.NFKC.String(title)), MetaTrimLength)
	normExtra := trimRunes(collapseSpace(norm.NFKC.String(extra)), MetaTrimLength)

	h := xxhash.New()
	_, _ = h.WriteString(c.fold.String(normTitle))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(c.fold.String(normExtra))
	return component(HeaderMeta, h.Sum64()), normTitle, normExtra
}

// ContentIDText derives the text content component from normalized text.
func (c *Codec) ContentIDText(content string, partial bool) string {
	text := collapseSpace(c.fold.String(norm.NFKC.String(content)))
	return component(contentHeader(HeaderText, partial), xxhash.Sum64String(text))
}

// ContentIDImage decodes the image and derives the image content component
// from its pixels, so metadata-only changes keep the same component.
func (c *Codec) ContentIDImage(path string, partial bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	h := xxhash.New()
	bounds := img.Bounds()
	var px [8]byte
	binary.BigEndian.PutUint32(px[:4], uint32(bounds.Dx()))
	binary.BigEndian.PutUint32(px[4:], uint32(bounds.Dy()))
	_, _ = h.Write(px[:])
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			binary.BigEndian.PutUint16(px[0:], uint16(r))
			binary.BigEndian.PutUint16(px[2:], uint16(g))
			binary.BigEndian.PutUint16(px[4:], uint16(b))
			binary.BigEndian.PutUint16(px[6:], uint16(a))
			_, _ = h.Write(px[:])
		}
	}
	return component(contentHeader(HeaderImage, partial), h.Sum64()), nil
}

// DataID derives the data component from the raw file bytes.
func (c *Codec) DataID(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash data: %w", err)
	}
	return component(HeaderData, h.Sum64()), nil
}

// InstanceID returns the instance component and the full SHA-256 of the file
// as lowercase hex.
func (c *Codec) InstanceID(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", "", fmt.Errorf("hash instance: %w", err)
	}
	sum := h.Sum(nil)
	return component(HeaderInstance, binary.BigEndian.Uint64(sum[:8])), hex.EncodeToString(sum), nil
}

// contentHeader lowercases the second header letter for partial content codes.
func contentHeader(header string, partial bool) string {
	if !partial {
		return header
	}
	return header[:1] + strings.ToLower(header[1:])
}

func collapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func trimRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
