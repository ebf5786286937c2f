package mediatype

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownExtension indicates the file extension has no MIME mapping.
	ErrUnknownExtension = errors.New("unknown file extension")
	// ErrUnsupported indicates the MIME type does not map to a media category.
	ErrUnsupported = errors.New("unsupported media type")
)

// Category is the general media category of a file.
type Category int

const (
	Text Category = iota
	Image
	Audio
	Video
)

func (c Category) String() string {
	switch c {
	case Text:
		return "text"
	case Image:
		return "image"
	case Audio:
		return "audio"
	case Video:
		return "video"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Mode selects how application/* MIME types are treated.
type Mode int

const (
	// Strict accepts only the OOXML office subtypes under application/*.
	Strict Mode = iota
	// Tolerant maps every application/* subtype to Text.
	Tolerant
)

// Office document subtypes recognized by the local backend.
const (
	SubtypeWordprocessing = "vnd.openxmlformats-officedocument.wordprocessingml.document"
	SubtypeSpreadsheet    = "vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SubtypePresentation   = "vnd.openxmlformats-officedocument.presentationml.presentation"
)

// Type is a classified media type: exactly one category plus the MIME subtype.
type Type struct {
	Category Category
	Subtype  string
}

func (t Type) String() string {
	return t.Category.String() + "/" + t.Subtype
}

// Parse converts a "type/subtype" MIME string into a Type. Parameters and
// surrounding whitespace are ignored.
func Parse(value string, mode Mode) (Type, error) {
	trimmed := strings.TrimSpace(value)
	if idx := strings.IndexByte(trimmed, ';'); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	major, subtype, ok := strings.Cut(strings.ToLower(trimmed), "/")
	if !ok || major == "" || subtype == "" {
		return Type{}, fmt.Errorf("%w: malformed mime %q", ErrUnsupported, value)
	}

	switch major {
	case "text":
		return Type{Category: Text, Subtype: subtype}, nil
	case "image":
		return Type{Category: Image, Subtype: subtype}, nil
	case "audio":
		return Type{Category: Audio, Subtype: subtype}, nil
	case "video":
		return Type{Category: Video, Subtype: subtype}, nil
	case "application":
		if mode == Tolerant || isOfficeSubtype(subtype) {
			return Type{Category: Text, Subtype: subtype}, nil
		}
	}
	return Type{}, fmt.Errorf("%w: %s", ErrUnsupported, trimmed)
}

func isOfficeSubtype(subtype string) bool {
	switch subtype {
	case SubtypeWordprocessing, SubtypeSpreadsheet, SubtypePresentation:
		return true
	default:
		return false
	}
}

// FromExtension classifies a file by its extension using the static table.
func FromExtension(path string) (Type, error) {
	mimeType, err := MIMEForPath(path)
	if err != nil {
		return Type{}, err
	}
	return Parse(mimeType, Strict)
}

// MIMEForPath returns the table MIME type for the path's extension.
func MIMEForPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnknownExtension)
	}
	if value, ok := extensionTable[ext]; ok {
		return value, nil
	}
	return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnknownExtension)
}
