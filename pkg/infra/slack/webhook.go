package slack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Webhook posts notifications to a Slack incoming webhook URL.
type Webhook struct {
	url       string
	overrides model.Overrides
	client    *http.Client
}

// Option is a functional option for Webhook configuration
type Option func(*Webhook)

// WithOverrides sets destination overrides applied to every payload.
func WithOverrides(o model.Overrides) Option {
	return func(w *Webhook) {
		w.overrides = o
	}
}

// WithHTTPClient replaces the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Webhook) {
		w.client = c
	}
}

// NewWebhook creates a Notifier delivering to url.
func NewWebhook(url string, opts ...Option) *Webhook {
	w := &Webhook{
		url:    url,
		client: defaultHTTPClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Notify encodes and posts one notification. The response body is discarded;
// delivery is fire-and-forget.
func (w *Webhook) Notify(ctx context.Context, n model.Notification) error {
	payload, err := EncodePayload(n, w.overrides)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return goerr.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to post webhook")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return goerr.New("unexpected webhook response", goerr.V("status", resp.StatusCode))
	}
	return nil
}

// DryRun is a Notifier that prints the encoded payload instead of posting
// it, for hook debugging.
type DryRun struct {
	w         io.Writer
	overrides model.Overrides
}

// NewDryRun creates a DryRun writing payloads to w.
func NewDryRun(w io.Writer, o model.Overrides) *DryRun {
	return &DryRun{w: w, overrides: o}
}

// Notify writes the encoded payload followed by a newline.
func (d *DryRun) Notify(_ context.Context, n model.Notification) error {
	payload, err := EncodePayload(n, d.overrides)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(d.w, string(payload)); err != nil {
		return goerr.Wrap(err, "failed to write payload")
	}
	return nil
}
