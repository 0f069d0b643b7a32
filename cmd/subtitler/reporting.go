package main

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/metrics"
)

var sentryEnabled bool

// setupReporting enables Sentry when a DSN is configured.
func setupReporting(cfg *config.Config) {
	if cfg.SentryDSN == "" || sentryEnabled {
		return
	}
	logger := config.GetLogger()
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.SentryDSN,
		Release: "subtitler@" + version,
	}); err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize Sentry")
		return
	}
	sentryEnabled = true
}

func captureError(err error) {
	if sentryEnabled {
		sentry.CaptureException(err)
	}
}

// flushReporting drains Sentry and pushes the run's metrics to the Pushgateway when one is configured.
func flushReporting() {
	logger := config.GetLogger()
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}

	cfg := config.GetConfig()
	if cfg == nil || cfg.Metrics.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metrics.Push(ctx, cfg.Metrics.PushgatewayURL, cfg.Metrics.Job, prometheus.DefaultGatherer); err != nil {
		logger.Warn().Err(err).Msg("Failed to push metrics")
		return
	}
	logger.Debug().Str("job", cfg.Metrics.Job).Msg("Metrics pushed")
}
