package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Sentry struct {
	dsn         string
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("TIMELINE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("TIMELINE_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name reported to Sentry",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("TIMELINE_SENTRY_RELEASE"),
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

func (x *Sentry) Configure(ctx context.Context) error {
	if !x.Enabled() {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}

// Flush waits for buffered events to be sent before the process exits
func (x *Sentry) Flush(timeout time.Duration) {
	if x.Enabled() {
		sentry.Flush(timeout)
	}
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("DSN", x.dsn),
		slog.Any("Environment", x.environment),
		slog.Any("Release", x.release),
	)
}
