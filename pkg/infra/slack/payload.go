package slack

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	slackapi "github.com/slack-go/slack"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// webhookPayload is the exact wire form of the notification. slack-go's
// WebhookMessage emits replace_original/delete_original on every message and
// its Attachment drops an empty fallback key, so the envelope is rendered
// locally; the field entries reuse slack-go's type.
type webhookPayload struct {
	Text        string           `json:"text"`
	Attachments []wireAttachment `json:"attachments,omitempty"`
	Channel     string           `json:"channel,omitempty"`
	Username    string           `json:"username,omitempty"`
	IconURL     string           `json:"icon_url,omitempty"`
	IconEmoji   string           `json:"icon_emoji,omitempty"`
}

type wireAttachment struct {
	Fallback string                     `json:"fallback"`
	Color    string                     `json:"color"`
	Fields   []slackapi.AttachmentField `json:"fields"`
}

// EncodePayload renders the notification as a Slack incoming-webhook message.
// All free-form text is normalized to valid UTF-8 first, so encoding never
// fails on malformed commit messages. Encoding the same input twice yields
// byte-identical output.
func EncodePayload(n model.Notification, o model.Overrides) ([]byte, error) {
	msg := webhookPayload{
		Text:      sanitize(n.Header),
		Channel:   o.Channel,
		Username:  o.Username,
		IconURL:   o.IconURL,
		IconEmoji: o.IconEmoji,
	}

	// The attachments key is omitted entirely when there are no commit lines.
	for _, line := range n.Lines {
		msg.Attachments = append(msg.Attachments, wireAttachment{
			Fallback: "",
			Color:    "good",
			Fields: []slackapi.AttachmentField{{
				Title: sanitize(line.Title),
				Value: sanitize(line.Value),
				Short: false,
			}},
		})
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode webhook payload")
	}
	return payload, nil
}

// sanitize replaces invalid byte sequences with the Unicode replacement
// character.
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
