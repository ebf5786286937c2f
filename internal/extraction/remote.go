package extraction

import (
	"context"
	"log/slog"

	"isccgen/internal/logging"
	"isccgen/internal/mediatype"
	"isccgen/internal/metadata"
	"isccgen/internal/services"
)

// Service is the subset of the Tika client used by the remote backend.
type Service interface {
	Detect(ctx context.Context, path string) (string, error)
	Text(ctx context.Context, path string) (string, error)
	Meta(ctx context.Context, path string) ([]byte, error)
}

// Remote delegates classification and extraction to a Tika server.
type Remote struct {
	service Service
	logger  *slog.Logger
}

// NewRemote constructs the remote backend.
func NewRemote(service Service, logger *slog.Logger) *Remote {
	return &Remote{service: service, logger: logging.NewComponentLogger(logger, "extract-remote")}
}

func (r *Remote) Name() string { return "tika" }

// Classify asks the server for the MIME type. Every application/* subtype is
// treated as text.
func (r *Remote) Classify(ctx context.Context, path string) (mediatype.Type, error) {
	mimeType, err := r.service.Detect(ctx, path)
	if err != nil {
		return mediatype.Type{}, services.Wrap(services.ErrClassification, "classify", "detect", path, err)
	}
	typ, err := mediatype.Parse(mimeType, mediatype.Tolerant)
	if err != nil {
		return mediatype.Type{}, services.Wrap(services.ErrClassification, "classify", "detect", path, err)
	}
	logging.WithContext(ctx, r.logger).Debug("classified by tika",
		logging.String("mime", mimeType),
		logging.String("category", typ.Category.String()),
	)
	return typ, nil
}

// Extract fetches text and metadata for text media. The title comes from the
// first metadata title candidate, falling back to the first non-blank line.
func (r *Remote) Extract(ctx context.Context, path string, typ mediatype.Type) (Result, error) {
	if typ.Category != mediatype.Text {
		return Result{}, nil
	}
	content, err := r.service.Text(ctx, path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExtraction, "extract", "text", path, err)
	}
	raw, err := r.service.Meta(ctx, path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExtraction, "extract", "meta", path, err)
	}
	tree, err := metadata.Parse(raw)
	if err != nil {
		return Result{}, services.Wrap(services.ErrExtraction, "extract", "meta", path, err)
	}

	title := metadata.Title(tree)
	source := "metadata"
	if title == "" {
		title = FirstLine(content)
		source = "first_line"
	}
	logging.WithContext(ctx, r.logger).Debug("resolved title", logging.String("source", source))
	return Result{Content: content, Title: title}, nil
}
