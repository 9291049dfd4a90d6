package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/apiverve/zipdemographics-go/pkg/credentials"
)

// fileConfig mirrors the optional ~/.config/zipdemographics/config.toml:
//
//	api_key = "..."
//	base_url = "https://api.apiverve.com/v1/zipdemographics"
//	timeout_seconds = 30
type fileConfig struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// loadFileConfig parses the config file at path. A missing file is not an
// error; it yields a zero config.
func loadFileConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveAPIKey returns the first API key found, in order: the --api-key
// flag, the environment, the config file, the stored credential.
func resolveAPIKey(ctx context.Context, flagKey string, getenv func(string) string, cfg *fileConfig, store credentials.Store) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}
	if key := getenv(envAPIKey); key != "" {
		return key, nil
	}
	if cfg != nil && cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	if store != nil {
		cred, err := store.Get(ctx)
		if err != nil {
			return "", fmt.Errorf("load stored credential: %w", err)
		}
		if cred != nil {
			return cred.APIKey, nil
		}
	}
	return "", fmt.Errorf("no API key configured: pass --api-key, set %s, add api_key to the config file, or run '%s auth set <key>'", envAPIKey, appName)
}
