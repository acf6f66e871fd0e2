package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apiclient"
	"github.com/DjordjeVuckovic/green-bench/internal/dashboard"
	"github.com/DjordjeVuckovic/green-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/green-bench/pkg/config/env"
)

const DefaultBackendURL = "http://localhost:8000"

type Config struct {
	BackendURL     string
	BackendPrefix  string
	BackendTimeout time.Duration
	PollInterval   time.Duration
	FallbackSeed   *uint64
	HostSampling   bool
	CatalogPath    string
	Storage        *factory.StorageConfig
}

// LoadConfig reads the .env file at defaultEnvPath (or ENV_PATH) and then the
// environment.
func LoadConfig(defaultEnvPath string) (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), defaultEnvPath); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	timeout, err := env.Duration("BACKEND_TIMEOUT", apiclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	interval, err := env.Duration("POLL_INTERVAL", dashboard.DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	seed, err := env.Uint64("FALLBACK_SEED")
	if err != nil {
		return nil, err
	}
	hostSampling, err := env.Bool("HOST_SAMPLING", true)
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}

	return &Config{
		BackendURL:     env.String("BACKEND_URL", DefaultBackendURL),
		BackendPrefix:  env.String("BACKEND_PREFIX", apiclient.DefaultPathPrefix),
		BackendTimeout: timeout,
		PollInterval:   interval,
		FallbackSeed:   seed,
		HostSampling:   hostSampling,
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		Storage:        storageCfg,
	}, nil
}
