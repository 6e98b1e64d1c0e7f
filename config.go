package deepgram

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadClientOptions.
const (
	EnvAPIKey    = "DEEPGRAM_API_KEY"
	EnvHost      = "DEEPGRAM_HOST"
	EnvLogLevel  = "DEEPGRAM_LOG_LEVEL"
	EnvKeepAlive = "DEEPGRAM_KEEP_ALIVE"
)

// LoadClientOptions builds ClientOptions from an optional YAML file followed
// by environment overrides. Pass an empty path to read the environment only.
// Defaults are not applied; clients do that themselves.
func LoadClientOptions(path string) (*ClientOptions, error) {
	opts := &ClientOptions{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, opts); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func applyEnv(opts *ClientOptions) error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		opts.APIKey = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		opts.Host = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		opts.LogLevel = v
	}
	if v := os.Getenv(EnvKeepAlive); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvKeepAlive, err)
		}
		opts.KeepAlive = b
	}
	return nil
}
