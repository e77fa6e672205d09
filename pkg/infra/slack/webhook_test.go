package slack_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
	"github.com/m-mizutani/pushbell/pkg/infra/slack"
)

func TestWebhookNotify(t *testing.T) {
	ctx := context.Background()
	n := model.Notification{
		Header: "New branch *main* has been created in myrepo",
		Lines:  []model.AttachmentLine{{Title: "Alice", Value: "initial commit"}},
	}

	t.Run("posts the encoded payload", func(t *testing.T) {
		var gotBody []byte
		var gotContentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		o := model.Overrides{Channel: "#dev"}
		w := slack.NewWebhook(srv.URL, slack.WithOverrides(o), slack.WithHTTPClient(srv.Client()))
		gt.NoError(t, w.Notify(ctx, n))

		gt.V(t, gotContentType).Equal("application/json")

		want, err := slack.EncodePayload(n, o)
		gt.NoError(t, err)
		gt.V(t, bytes.Equal(gotBody, want)).Equal(true)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "no_service", http.StatusGone)
		}))
		defer srv.Close()

		w := slack.NewWebhook(srv.URL, slack.WithHTTPClient(srv.Client()))
		gt.Error(t, w.Notify(ctx, n))
	})

	t.Run("dry run writes the payload instead of posting", func(t *testing.T) {
		var buf bytes.Buffer
		d := slack.NewDryRun(&buf, model.Overrides{Username: "pushbell"})
		gt.NoError(t, d.Notify(ctx, n))

		var decoded map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		gt.V(t, decoded["text"]).Equal(n.Header)
		gt.V(t, decoded["username"]).Equal("pushbell")
	})
}
