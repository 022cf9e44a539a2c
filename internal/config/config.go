package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingAPIKey means neither FOOTBALL_API_KEY nor the key file provided a key.
	ErrMissingAPIKey = errors.New("missing API key: set FOOTBALL_API_KEY or add it to ~/.football_client/.api_key.json")
	// ErrUnknownProvider means FOOTBALL_PROVIDER named something other than apisports or fixture.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Config holds runtime configuration for one CLI invocation.
type Config struct {
	ConfigDir   string
	DataDir     string
	Serializer  string
	Provider    string
	APIFootball APIFootballConfig
	Logging     LoggingConfig
	Metrics     MetricsConfig
}

// Load reads ~/.football_client/.env (if any), then the environment, then the key file.
func Load() (Config, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return Config{}, err
	}
	if err := loadDotEnv(configDir); err != nil {
		return Config{}, err
	}

	dataDir, err := expandHome(envOrDefault(envDataDir, filepath.Join(configDir, dataDirName)))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ConfigDir:   configDir,
		DataDir:     dataDir,
		Serializer:  strings.ToLower(envOrDefault(envSerializer, defaultSerializer)),
		Provider:    strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		APIFootball: loadAPIFootball(),
		Logging:     loadLogging(),
		Metrics:     loadMetrics(),
	}

	switch cfg.Provider {
	case ProviderFixture:
		return cfg, nil
	case ProviderAPISports:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	if cfg.APIFootball.APIKey == "" {
		key, err := readKeyFile(configDir)
		if err != nil {
			return Config{}, err
		}
		cfg.APIFootball.APIKey = key
	}
	if cfg.APIFootball.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}
