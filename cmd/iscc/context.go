package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"isccgen/internal/config"
	"isccgen/internal/extraction"
	"isccgen/internal/identify"
	"isccgen/internal/iscc"
	"isccgen/internal/iscc/digest"
	"isccgen/internal/language"
	"isccgen/internal/logging"
	"isccgen/internal/preflight"
	"isccgen/internal/services"
	"isccgen/internal/services/tika"
)

type globalFlags struct {
	tika      bool
	host      string
	port      int
	verbosity int
	config    string
}

// runtime holds everything a file-processing command needs. It is built at
// most once per invocation.
type runtime struct {
	backend  config.BackendConfig
	logger   *slog.Logger
	tika     *tika.Client
	pipeline *identify.Pipeline
	language language.Detector
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	runtimeOnce sync.Once
	runtime     *runtime
	runtimeErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		// Existing environment variables win over .env entries.
		_ = godotenv.Load()

		var path string
		if c.flags != nil {
			path = strings.TrimSpace(c.flags.config)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// backendConfig layers explicitly set flags over the configured backend.
func (c *commandContext) backendConfig(cmd *cobra.Command, cfg *config.Config) config.BackendConfig {
	backend := cfg.Backend()
	flags := cmd.Flags()
	if flags.Changed("tika") {
		backend.Active = c.flags.tika
	}
	if flags.Changed("host") {
		backend.Host = strings.TrimSpace(c.flags.host)
	}
	if flags.Changed("port") {
		backend.Port = c.flags.port
	}
	return backend
}

// ensureRuntime builds the logger, the backend and the pipeline. With the
// remote backend active the server is probed first; an unreachable server is
// fatal before any file is touched.
func (c *commandContext) ensureRuntime(cmd *cobra.Command) (*runtime, error) {
	c.runtimeOnce.Do(func() {
		c.runtime, c.runtimeErr = c.buildRuntime(cmd)
	})
	return c.runtime, c.runtimeErr
}

func (c *commandContext) buildRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	backend := c.backendConfig(cmd, cfg)
	if backend.Active && (backend.Host == "" || backend.Port < 1 || backend.Port > 65535) {
		return nil, fmt.Errorf("invalid tika address %q", backend.Address())
	}

	verbosity := 0
	if c.flags != nil {
		verbosity = c.flags.verbosity
	}
	logger, err := logging.NewFromConfig(cfg, verbosity)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	rt := &runtime{backend: backend, logger: logger}
	if backend.Active {
		rt.tika = tika.NewClient(backend, http.DefaultClient)
		result := preflight.CheckTika(commandCtx(cmd), rt.tika)
		if !result.Passed {
			return nil, fmt.Errorf("%w: tika server %s", services.ErrUnavailable, result.Detail)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Found tikaserver at %s\n", backend.Address())
		rt.language = language.NewRemote(rt.tika)
	} else {
		rt.language = language.NewLocal()
	}

	var service extraction.Service
	if rt.tika != nil {
		service = rt.tika
	}
	selected, err := extraction.New(backend, service, logger)
	if err != nil {
		return nil, err
	}
	rt.pipeline = identify.New(selected, iscc.NewAssembler(digest.New()), logger)
	logger.Debug("runtime ready",
		logging.String("backend", rt.pipeline.Backend().Name()),
		logging.String("address", backend.Address()),
		logging.Bool("remote", backend.Active),
	)
	return rt, nil
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
