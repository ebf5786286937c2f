package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTika(); err != nil {
		return err
	}
	if err := c.normalizeLedger(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	if c.Batch.MaxDepth == 0 {
		c.Batch.MaxDepth = defaultBatchMaxDepth
	}
	return nil
}

func (c *Config) normalizeTika() error {
	if value, ok := os.LookupEnv("ISCC_TIKA_HOST"); ok && strings.TrimSpace(value) != "" {
		c.Tika.Host = value
	}
	if value, ok := os.LookupEnv("ISCC_TIKA_PORT"); ok && strings.TrimSpace(value) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("ISCC_TIKA_PORT: %w", err)
		}
		c.Tika.Port = port
	}
	c.Tika.Host = strings.TrimSpace(c.Tika.Host)
	if c.Tika.Host == "" {
		c.Tika.Host = defaultTikaHost
	}
	if c.Tika.Port == 0 {
		c.Tika.Port = defaultTikaPort
	}
	return nil
}

func (c *Config) normalizeLedger() error {
	if value, ok := os.LookupEnv("ISCC_LEDGER_PATH"); ok && strings.TrimSpace(value) != "" {
		c.Ledger.Path = value
	}
	if strings.TrimSpace(c.Ledger.Path) == "" {
		c.Ledger.Path = defaultLedgerPath
	}
	var err error
	if c.Ledger.Path, err = expandPath(c.Ledger.Path); err != nil {
		return fmt.Errorf("ledger.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
