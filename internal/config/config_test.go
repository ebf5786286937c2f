package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"isccgen/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("ISCC_TIKA_HOST", "")
	t.Setenv("ISCC_TIKA_PORT", "")
	t.Setenv("ISCC_LEDGER_PATH", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLedger := filepath.Join(tempHome, ".local", "share", "iscc", "ledger.db")
	if cfg.Ledger.Path != wantLedger {
		t.Fatalf("unexpected ledger path: got %q want %q", cfg.Ledger.Path, wantLedger)
	}
	if cfg.Tika.Enabled {
		t.Fatal("expected tika disabled by default")
	}
	backend := cfg.Backend()
	if backend.Address() != "localhost:9998" {
		t.Fatalf("unexpected backend address: %q", backend.Address())
	}
	if backend.BaseURL() != "http://localhost:9998" {
		t.Fatalf("unexpected base url: %q", backend.BaseURL())
	}
	if cfg.Batch.MaxDepth != 1000 {
		t.Fatalf("unexpected max depth: %d", cfg.Batch.MaxDepth)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("ISCC_TIKA_HOST", "")
	t.Setenv("ISCC_TIKA_PORT", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "iscc.toml")

	type payload struct {
		Tika struct {
			Enabled bool   `toml:"enabled"`
			Host    string `toml:"host"`
			Port    int    `toml:"port"`
		} `toml:"tika"`
		Batch struct {
			MaxDepth int  `toml:"max_depth"`
			Guess    bool `toml:"guess"`
		} `toml:"batch"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Tika.Enabled = true
	custom.Tika.Host = "tika.internal"
	custom.Tika.Port = 9999
	custom.Batch.MaxDepth = 5
	custom.Batch.Guess = true
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	backend := cfg.Backend()
	if !backend.Active || backend.Host != "tika.internal" || backend.Port != 9999 {
		t.Fatalf("unexpected backend config: %+v", backend)
	}
	if cfg.Batch.MaxDepth != 5 || !cfg.Batch.Guess {
		t.Fatalf("unexpected batch config: %+v", cfg.Batch)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging values to be lower-cased, got %+v", cfg.Logging)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "iscc.toml")
	content := "[tika]\nhost = \"file-host\"\nport = 1234\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ISCC_TIKA_HOST", "env-host")
	t.Setenv("ISCC_TIKA_PORT", "4321")
	t.Setenv("ISCC_LEDGER_PATH", filepath.Join(tempDir, "env.db"))

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Tika.Host != "env-host" {
		t.Fatalf("expected env host, got %q", cfg.Tika.Host)
	}
	if cfg.Tika.Port != 4321 {
		t.Fatalf("expected env port, got %d", cfg.Tika.Port)
	}
	if cfg.Ledger.Path != filepath.Join(tempDir, "env.db") {
		t.Fatalf("expected env ledger path, got %q", cfg.Ledger.Path)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("ISCC_TIKA_HOST", "")
	t.Setenv("ISCC_TIKA_PORT", "")
	cases := map[string]string{
		"port":   "[tika]\nport = 70000\n",
		"depth":  "[batch]\nmax_depth = -2\n",
		"format": "[logging]\nformat = \"xml\"\n",
		"level":  "[logging]\nlevel = \"loud\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "iscc.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s", name)
			}
		})
	}
}

func TestLoadRejectsNonNumericEnvPort(t *testing.T) {
	t.Setenv("ISCC_TIKA_PORT", "ninety")
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "ISCC_TIKA_PORT") {
		t.Fatalf("expected ISCC_TIKA_PORT error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("ISCC_TIKA_HOST", "")
	t.Setenv("ISCC_TIKA_PORT", "")
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Tika.Port != 9998 {
		t.Fatalf("unexpected sample port: %d", cfg.Tika.Port)
	}
}
