package extraction

import (
	"context"
	"log/slog"
	"strings"

	"isccgen/internal/config"
	"isccgen/internal/mediatype"
	"isccgen/internal/services"
)

// Result holds the text extracted from a file. Content is empty for non-text
// media.
type Result struct {
	Content string
	Title   string
	Extra   string
}

// Backend classifies and extracts files.
type Backend interface {
	Name() string
	Classify(ctx context.Context, path string) (mediatype.Type, error)
	Extract(ctx context.Context, path string, typ mediatype.Type) (Result, error)
}

// New returns the remote backend when the configuration marks it active and
// the local backend otherwise. An active configuration without a service is a
// configuration error; it never degrades to the local backend.
func New(backend config.BackendConfig, service Service, logger *slog.Logger) (Backend, error) {
	if !backend.Active {
		return NewLocal(logger), nil
	}
	if service == nil {
		return nil, services.Wrap(services.ErrConfiguration, "startup", "select backend",
			"remote backend active at "+backend.Address()+" but no service client", nil)
	}
	return NewRemote(service, logger), nil
}

// FirstLine returns the first line of content that is not blank. The line is
// returned as-is apart from a trailing carriage return.
func FirstLine(content string) string {
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}
