// Command bridge runs the hubbridge relay: it watches an AnswerHub instance
// for new questions, answers, and comments and posts their formatted bodies
// to a chat webhook.
//
// Configuration is layered: config.yaml (or -config / HUBBRIDGE_CONFIG),
// then HUBBRIDGE_* environment overrides. See pkg/config for the full set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hubbridge/hubbridge/pkg/answerhub"
	"github.com/hubbridge/hubbridge/pkg/bridge"
	"github.com/hubbridge/hubbridge/pkg/config"
	"github.com/hubbridge/hubbridge/pkg/debug"
	"github.com/hubbridge/hubbridge/pkg/observability"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bridge failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	debug.Init(cfg.Logging.Debug, cfg.Logging.Level)

	// Optional metrics listener.
	if cfg.Observability.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Observability.Metrics.Path, observability.Handler())
		go func() {
			slog.Info("metrics listening", "addr", cfg.Observability.Metrics.Addr, "path", cfg.Observability.Metrics.Path)
			if err := http.ListenAndServe(cfg.Observability.Metrics.Addr, mux); err != nil {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	// API client with an instrumented transport; the client itself stays
	// metric-free.
	client := answerhub.NewClientWithHTTPClient(
		cfg.AnswerHub.URL,
		cfg.AnswerHub.Username,
		cfg.AnswerHub.Password,
		&http.Client{Transport: &observability.InstrumentedTransport{}},
	)

	notifier := bridge.NewNotifier(cfg.Bridge.WebhookURL)
	b := bridge.New(client, notifier, bridge.Config{
		PollInterval: cfg.Bridge.PollInterval.Std(),
		Kinds:        cfg.Bridge.Kinds,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("bridge started",
		"url", cfg.AnswerHub.URL,
		"kinds", cfg.Bridge.Kinds,
		"poll_interval", cfg.Bridge.PollInterval.Std())

	if err := b.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("bridge stopped")
	return nil
}
