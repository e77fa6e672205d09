package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
	"github.com/m-mizutani/pushbell/pkg/domain/types"
)

// Slack holds notification destination configuration.
type Slack struct {
	WebhookURL string
	Channel    string
	Username   string
	IconURL    string
	IconEmoji  string
	DryRun     bool
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-url",
			Usage:       "Slack incoming webhook URL",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("PUSHBELL_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Override the webhook's default channel",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("PUSHBELL_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "username",
			Usage:       "Override the webhook's display name",
			Destination: &c.Username,
			Sources:     cli.EnvVars("PUSHBELL_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "icon-url",
			Usage:       "Override the webhook's icon image URL",
			Destination: &c.IconURL,
			Sources:     cli.EnvVars("PUSHBELL_ICON_URL"),
		},
		&cli.StringFlag{
			Name:        "icon-emoji",
			Usage:       "Override the webhook's icon emoji",
			Destination: &c.IconEmoji,
			Sources:     cli.EnvVars("PUSHBELL_ICON_EMOJI"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Print the payload to stdout instead of posting it",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("PUSHBELL_DRY_RUN"),
		},
	}
}

// Fill reads the hooks.slack.* git config keys for every field not already
// set by a flag, environment variable or config file.
func (c *Slack) Fill(lookup func(key string) string) {
	fillString(&c.WebhookURL, lookup("hooks.slack.webhook-url"))
	fillString(&c.Channel, lookup("hooks.slack.channel"))
	fillString(&c.Username, lookup("hooks.slack.username"))
	fillString(&c.IconURL, lookup("hooks.slack.icon-url"))
	fillString(&c.IconEmoji, lookup("hooks.slack.icon-emoji"))
}

// Validate checks that a destination is configured.
func (c *Slack) Validate() error {
	if c.WebhookURL == "" {
		return types.ErrWebhookURLRequired
	}
	return nil
}

// Overrides returns the destination overrides for the payload encoder.
func (c *Slack) Overrides() model.Overrides {
	return model.Overrides{
		Channel:   c.Channel,
		Username:  c.Username,
		IconURL:   c.IconURL,
		IconEmoji: c.IconEmoji,
	}
}

func fillString(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

func fillBool(dst *bool, v string) {
	if *dst {
		return
	}
	switch v {
	case "true", "1", "yes", "on":
		*dst = true
	}
}
