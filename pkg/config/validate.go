package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	if c.AnswerHub.URL == "" {
		errs = append(errs, fmt.Errorf("answerhub.url is required"))
	}
	if c.AnswerHub.Username == "" {
		errs = append(errs, fmt.Errorf("answerhub.username is required"))
	}
	if c.AnswerHub.Password == "" {
		errs = append(errs, fmt.Errorf("answerhub.password or answerhub.password_file is required"))
	}

	if c.Bridge.WebhookURL == "" && c.Bridge.WebhookURLFile == "" {
		errs = append(errs, fmt.Errorf("bridge.webhook_url or bridge.webhook_url_file is required"))
	}
	if c.Bridge.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("bridge.poll_interval must be > 0, got %s", c.Bridge.PollInterval.Std()))
	}
	for _, kind := range c.Bridge.Kinds {
		switch kind {
		case "question", "answer", "comment":
			// valid
		default:
			errs = append(errs, fmt.Errorf("bridge.kinds must contain only \"question\", \"answer\", or \"comment\", got %q", kind))
		}
	}
	if len(c.Bridge.Kinds) == 0 {
		errs = append(errs, fmt.Errorf("bridge.kinds must name at least one kind"))
	}

	if c.Observability.Metrics.Enabled {
		if c.Observability.Metrics.Addr == "" {
			errs = append(errs, fmt.Errorf("observability.metrics.addr is required when metrics are enabled"))
		}
		if c.Observability.Metrics.Path == "" {
			errs = append(errs, fmt.Errorf("observability.metrics.path is required when metrics are enabled"))
		}
	}

	return errors.Join(errs...)
}
