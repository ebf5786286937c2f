package extraction

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"isccgen/internal/logging"
	"isccgen/internal/mediatype"
	"isccgen/internal/services"
)

type strategy int

const (
	strategyRaw strategy = iota
	strategyPlain
	strategyHTML
	strategyOOXML
)

func (s strategy) String() string {
	switch s {
	case strategyPlain:
		return "plain"
	case strategyHTML:
		return "html"
	case strategyOOXML:
		return "ooxml"
	default:
		return "raw"
	}
}

// strategies maps text subtypes to their extraction strategy. Subtypes not
// listed fall back to strategyRaw.
var strategies = map[string]strategy{
	"plain":                         strategyPlain,
	"html":                          strategyHTML,
	mediatype.SubtypeWordprocessing: strategyOOXML,
	mediatype.SubtypeSpreadsheet:    strategyOOXML,
	mediatype.SubtypePresentation:   strategyOOXML,
}

func strategyFor(subtype string) strategy {
	if s, ok := strategies[subtype]; ok {
		return s
	}
	return strategyRaw
}

// HTMLWidth is the column width used when reflowing HTML to text.
const HTMLWidth = 72

// Local extracts text in-process and classifies by file extension.
type Local struct {
	logger *slog.Logger
}

// NewLocal constructs the in-process backend.
func NewLocal(logger *slog.Logger) *Local {
	return &Local{logger: logging.NewComponentLogger(logger, "extract-local")}
}

func (l *Local) Name() string { return "local" }

// Classify resolves the media type from the file extension.
func (l *Local) Classify(ctx context.Context, path string) (mediatype.Type, error) {
	typ, err := mediatype.FromExtension(path)
	if err != nil {
		return mediatype.Type{}, services.Wrap(services.ErrClassification, "classify", "extension", path, err)
	}
	logging.WithContext(ctx, l.logger).Debug("classified by extension",
		logging.String("category", typ.Category.String()),
		logging.String("subtype", typ.Subtype),
	)
	return typ, nil
}

// Extract reads the file with the strategy registered for its subtype.
func (l *Local) Extract(ctx context.Context, path string, typ mediatype.Type) (Result, error) {
	if typ.Category != mediatype.Text {
		return Result{}, nil
	}
	s := strategyFor(typ.Subtype)
	logging.WithContext(ctx, l.logger).Debug("extracting text", logging.String("strategy", s.String()))

	var (
		content string
		err     error
	)
	switch s {
	case strategyHTML:
		content, err = readHTML(path, HTMLWidth)
	case strategyOOXML:
		content, err = readOOXML(path, typ.Subtype)
	default:
		content, err = readText(path)
	}
	if err != nil {
		return Result{}, services.Wrap(services.ErrExtraction, "extract", s.String(), path, err)
	}
	return Result{Content: content, Title: FirstLine(content)}, nil
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("content is not valid UTF-8")
	}
	return string(data), nil
}

func readHTML(path string, width int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return RenderHTML(f, width)
}
