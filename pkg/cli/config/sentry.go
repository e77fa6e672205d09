package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pushbell/pkg/domain/types"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (disabled when empty)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("PUSHBELL_SENTRY_DSN", "SENTRY_DSN"),
		},
	}
}

// Setup initializes the Sentry client when a DSN is configured.
func (c *Sentry) Setup() error {
	if c.DSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:     c.DSN,
		Release: "pushbell@" + types.Version,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}
	return nil
}

// Capture reports a fatal error and flushes pending events.
func (c *Sentry) Capture(err error) {
	if c.DSN == "" || err == nil {
		return
	}
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
