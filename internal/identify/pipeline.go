// Package identify runs the single-file pipeline: classify, extract, resolve
// the title, and assemble the composite code.
package identify

import (
	"context"
	"log/slog"

	"isccgen/internal/extraction"
	"isccgen/internal/iscc"
	"isccgen/internal/logging"
	"isccgen/internal/services"
)

// Request describes one file to identify.
type Request struct {
	Path  string
	Title string
	Extra string
	// Guess keeps the extracted title and extra. When false, Title and Extra
	// replace whatever extraction produced, even if they are empty.
	Guess bool
}

// Pipeline wires a backend to an assembler.
type Pipeline struct {
	backend   extraction.Backend
	assembler *iscc.Assembler
	logger    *slog.Logger
}

// New constructs a Pipeline. The backend stays fixed for the pipeline's
// lifetime.
func New(backend extraction.Backend, assembler *iscc.Assembler, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		backend:   backend,
		assembler: assembler,
		logger:    logging.NewComponentLogger(logger, "identify"),
	}
}

// Backend returns the extraction backend in use.
func (p *Pipeline) Backend() extraction.Backend {
	return p.backend
}

// Generate computes the composite code for req.Path.
func (p *Pipeline) Generate(ctx context.Context, req Request) (iscc.Code, error) {
	ctx = services.WithFilePath(ctx, req.Path)
	logger := logging.WithContext(ctx, p.logger)

	typ, err := p.backend.Classify(services.WithStage(ctx, "classify"), req.Path)
	if err != nil {
		return iscc.Code{}, err
	}
	res, err := p.backend.Extract(services.WithStage(ctx, "extract"), req.Path, typ)
	if err != nil {
		return iscc.Code{}, err
	}
	if !req.Guess {
		res.Title = req.Title
		res.Extra = req.Extra
	}

	code, err := p.assembler.Assemble(req.Path, typ, res, false)
	if err != nil {
		return iscc.Code{}, err
	}
	logger.Debug("identified file",
		logging.String("backend", p.backend.Name()),
		logging.String("category", typ.Category.String()),
		logging.String("code", code.String()),
	)
	return code, nil
}
