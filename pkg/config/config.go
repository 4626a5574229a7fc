// Package config provides unified configuration for the hubbridge relay.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (HUBBRIDGE_ prefix)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use Go duration strings
// like "90s" or "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all configuration for the hubbridge relay.
type Config struct {
	AnswerHub     AnswerHubConfig     `yaml:"answerhub"`
	Bridge        BridgeConfig        `yaml:"bridge"`
	Observability ObservabilityConfig `yaml:"observability"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// AnswerHubConfig holds platform connection settings.
type AnswerHubConfig struct {
	URL          string `yaml:"url"`           // required
	Username     string `yaml:"username"`      // required
	Password     string `yaml:"password"`      // required unless password_file set
	PasswordFile string `yaml:"password_file"` // _file variant for password
}

// BridgeConfig holds relay loop settings.
type BridgeConfig struct {
	WebhookURL     string   `yaml:"webhook_url"`      // chat incoming webhook, required
	WebhookURLFile string   `yaml:"webhook_url_file"` // _file variant for webhook_url
	PollInterval   Duration `yaml:"poll_interval"`    // default: 60s
	Kinds          []string `yaml:"kinds"`            // subset of question/answer/comment
}

// ObservabilityConfig holds monitoring settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
//
// Setting the HUBBRIDGE_METRICS_ADDR environment variable overrides Addr
// and also enables the endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: false
	Addr    string `yaml:"addr"`    // default: ":9090"
	Path    string `yaml:"path"`    // default: "/metrics"
}

// LoggingConfig holds log level and debug category settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // ERROR..TRACE, default: INFO
	Debug string `yaml:"debug"` // comma-separated debug categories
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Bridge: BridgeConfig{
			PollInterval: Duration(60 * time.Second),
			Kinds:        []string{"question", "answer", "comment"},
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: false,
				Addr:    ":9090",
				Path:    "/metrics",
			},
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}
