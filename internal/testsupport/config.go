package testsupport

import (
	"net/url"
	"path/filepath"
	"strconv"
	"testing"

	"isccgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp ledger path per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Ledger.Path = filepath.Join(base, "ledger.db")
	cfgVal.Logging.File = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTikaURL enables the remote backend and points it at rawURL, typically
// the URL of a FakeTika server.
func WithTikaURL(rawURL string) ConfigOption {
	return func(b *configBuilder) {
		u, err := url.Parse(rawURL)
		if err != nil {
			b.t.Fatalf("parse tika url: %v", err)
		}
		port, err := strconv.Atoi(u.Port())
		if err != nil {
			b.t.Fatalf("parse tika port: %v", err)
		}
		b.cfg.Tika.Enabled = true
		b.cfg.Tika.Host = u.Hostname()
		b.cfg.Tika.Port = port
	}
}

// WithLedger turns on run recording.
func WithLedger() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ledger.Enabled = true
	}
}
