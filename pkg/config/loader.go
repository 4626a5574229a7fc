package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, HUBBRIDGE_CONFIG env, ./config.yaml, /etc/hubbridge/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}

	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. HUBBRIDGE_CONFIG environment variable
// 3. ./config.yaml in the current directory
// 4. /etc/hubbridge/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("HUBBRIDGE_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"config.yaml",
		"/etc/hubbridge/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps HUBBRIDGE_* environment variables to config fields.
// A variable that is set but unparsable is a load error, not a silent
// fallback to the default. HUBBRIDGE_METRICS_ADDR both sets the listen
// address and enables the metrics endpoint.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("HUBBRIDGE_URL"); v != "" {
		cfg.AnswerHub.URL = v
	}
	if v := os.Getenv("HUBBRIDGE_USERNAME"); v != "" {
		cfg.AnswerHub.Username = v
	}
	if v := os.Getenv("HUBBRIDGE_PASSWORD"); v != "" {
		cfg.AnswerHub.Password = v
	}
	if v := os.Getenv("HUBBRIDGE_WEBHOOK_URL"); v != "" {
		cfg.Bridge.WebhookURL = v
	}
	if v := os.Getenv("HUBBRIDGE_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HUBBRIDGE_POLL_INTERVAL: invalid duration %q: %w", v, err)
		}
		cfg.Bridge.PollInterval = Duration(d)
	}
	if v := os.Getenv("HUBBRIDGE_KINDS"); v != "" {
		var kinds []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kinds = append(kinds, k)
			}
		}
		cfg.Bridge.Kinds = kinds
	}
	if v := os.Getenv("HUBBRIDGE_METRICS_ADDR"); v != "" {
		cfg.Observability.Metrics.Enabled = true
		cfg.Observability.Metrics.Addr = v
	}
	if v := os.Getenv("HUBBRIDGE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HUBBRIDGE_DEBUG"); v != "" {
		cfg.Logging.Debug = v
	}
	return nil
}

// resolveFileReferences reads _file referenced values into their target
// fields. A set inline value takes precedence over its _file variant.
func resolveFileReferences(cfg *Config) error {
	if cfg.AnswerHub.Password == "" && cfg.AnswerHub.PasswordFile != "" {
		v, err := readFileValue(cfg.AnswerHub.PasswordFile)
		if err != nil {
			return fmt.Errorf("answerhub.password_file: %w", err)
		}
		cfg.AnswerHub.Password = v
	}
	if cfg.Bridge.WebhookURL == "" && cfg.Bridge.WebhookURLFile != "" {
		v, err := readFileValue(cfg.Bridge.WebhookURLFile)
		if err != nil {
			return fmt.Errorf("bridge.webhook_url_file: %w", err)
		}
		cfg.Bridge.WebhookURL = v
	}
	return nil
}

func readFileValue(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
