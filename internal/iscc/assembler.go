package iscc

import (
	"fmt"
	"path/filepath"
	"strings"

	"isccgen/internal/extraction"
	"isccgen/internal/mediatype"
	"isccgen/internal/services"
)

// Prefix is prepended to every printed code.
const Prefix = "ISCC:"

// Codec computes the individual sub-identifiers.
type Codec interface {
	MetaID(title, extra string) (id, normTitle, normExtra string)
	DataID(path string) (string, error)
	InstanceID(path string) (id, topHash string, err error)
	ContentIDText(content string, partial bool) string
	ContentIDImage(path string, partial bool) (string, error)
}

// Code is a fully assembled composite identifier.
type Code struct {
	MetaID     string
	ContentID  string
	DataID     string
	InstanceID string
	Category   mediatype.Category
	Title      string
	Extra      string
	TopHash    string
}

// Components returns the four sub-identifiers joined by dashes.
func (c Code) Components() string {
	return strings.Join([]string{c.MetaID, c.ContentID, c.DataID, c.InstanceID}, "-")
}

// String returns the printable code.
func (c Code) String() string {
	return Prefix + c.Components()
}

// Detail returns the comma-separated detail line for the file at path.
func (c Code) Detail(path string) string {
	return strings.Join([]string{
		c.String(),
		c.TopHash,
		filepath.Base(path),
		c.Category.String(),
		c.Title,
	}, ",")
}

// Assembler joins codec output into Codes.
type Assembler struct {
	codec Codec
}

// NewAssembler returns an assembler backed by codec.
func NewAssembler(codec Codec) *Assembler {
	return &Assembler{codec: codec}
}

// Assemble computes every sub-identifier for the file and returns the
// combined code.
func (a *Assembler) Assemble(path string, typ mediatype.Type, res extraction.Result, partial bool) (Code, error) {
	var contentID func() (string, error)
	switch typ.Category {
	case mediatype.Text:
		contentID = func() (string, error) { return a.codec.ContentIDText(res.Content, partial), nil }
	case mediatype.Image:
		contentID = func() (string, error) { return a.codec.ContentIDImage(path, partial) }
	case mediatype.Audio, mediatype.Video:
		return Code{}, services.Wrap(services.ErrNotImplemented, "identify", "content-id",
			fmt.Sprintf("media type %s not implemented yet", typ.Category), nil)
	default:
		return Code{}, services.Wrap(services.ErrClassification, "identify", "content-id",
			fmt.Sprintf("unknown category %s", typ.Category), nil)
	}

	metaID, title, extra := a.codec.MetaID(res.Title, res.Extra)
	dataID, err := a.codec.DataID(path)
	if err != nil {
		return Code{}, services.Wrap(services.ErrExtraction, "identify", "data-id", path, err)
	}
	instanceID, topHash, err := a.codec.InstanceID(path)
	if err != nil {
		return Code{}, services.Wrap(services.ErrExtraction, "identify", "instance-id", path, err)
	}
	cid, err := contentID()
	if err != nil {
		return Code{}, services.Wrap(services.ErrExtraction, "identify", "content-id", path, err)
	}

	return Code{
		MetaID:     metaID,
		ContentID:  cid,
		DataID:     dataID,
		InstanceID: instanceID,
		Category:   typ.Category,
		Title:      title,
		Extra:      extra,
		TopHash:    topHash,
	}, nil
}
