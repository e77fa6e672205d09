package types

import "github.com/m-mizutani/goerr/v2"

// Version is the application version, overridden at build time via ldflags.
var Version = "dev"

// ErrWebhookURLRequired indicates that no Slack webhook URL was found in any
// configuration source. This is fatal to the whole run.
var ErrWebhookURLRequired = goerr.New("slack webhook URL is not configured")
