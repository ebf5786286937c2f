package config

const (
	defaultConfigPath    = "~/.config/iscc/config.toml"
	defaultTikaHost      = "localhost"
	defaultTikaPort      = 9998
	defaultBatchMaxDepth = 1000
	defaultLedgerPath    = "~/.local/share/iscc/ledger.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tika: Tika{
			Host: defaultTikaHost,
			Port: defaultTikaPort,
		},
		Batch: Batch{
			MaxDepth: defaultBatchMaxDepth,
		},
		Ledger: Ledger{
			Path: defaultLedgerPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
