package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type slackAction struct {
	httpClient *http.Client
}

// NewSlackAction creates an ActionExecutor posting to Slack incoming webhooks.
func NewSlackAction() interfaces.ActionExecutor {
	return &slackAction{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Execute renders the message template and posts it once.
func (s *slackAction) Execute(ctx context.Context, action model.Action, event model.ReplicationEvent) error {
	logger := ctxlog.From(ctx)

	logger.Debug("slackAction.Execute called",
		slog.String("event_type", string(event.Type)),
		slog.String("repository", event.Repository),
	)

	slackAction, err := action.ToSlackAction()
	if err != nil {
		return goerr.Wrap(err, "failed to parse slack action")
	}

	webhookURL := os.ExpandEnv(slackAction.WebhookURL)
	if webhookURL == "" {
		return goerr.New("webhook URL is empty after expansion")
	}

	message, err := s.buildMessage(slackAction.Message, event)
	if err != nil {
		return goerr.Wrap(err, "failed to build message")
	}

	payload := model.SlackPayload{
		Text:      message,
		UserName:  slackAction.UserName,
		IconEmoji: slackAction.IconEmoji,
	}

	if slackAction.Color != "" {
		footer := "issuefork"
		if event.Repository != "" {
			footer = fmt.Sprintf("issuefork - %s", event.Repository)
		}
		payload.Attachments = []model.Attachment{
			{
				Color:     slackAction.Color,
				Text:      message,
				Footer:    footer,
				Timestamp: time.Now().Unix(),
			},
		}
		// Attachment carries the text
		payload.Text = ""
	}

	if err := s.sendToSlack(ctx, webhookURL, payload); err != nil {
		return goerr.Wrap(err, "failed to send slack notification")
	}

	logger.Debug("Slack notification sent")
	return nil
}

func (s *slackAction) buildMessage(messageTemplate string, event model.ReplicationEvent) (string, error) {
	data := struct {
		Repository string
		Fork       string
		Copied     int
		Failed     int
		EventType  string
		Timestamp  time.Time
	}{
		Repository: event.Repository,
		Fork:       event.Fork,
		Copied:     event.Copied,
		Failed:     event.Failed,
		EventType:  string(event.Type),
		Timestamp:  time.Now(),
	}

	tmpl, err := template.New("message").Parse(messageTemplate)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse message template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute message template")
	}

	return buf.String(), nil
}

func (s *slackAction) sendToSlack(ctx context.Context, webhookURL string, payload model.SlackPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal slack payload")
	}

	ctxlog.From(ctx).Debug("Sending to Slack",
		slog.String("webhook_url", maskWebhookURL(webhookURL)),
		slog.Int("payload_size", len(jsonData)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return goerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var respBody bytes.Buffer
		_, _ = respBody.ReadFrom(resp.Body)
		return goerr.New(fmt.Sprintf("slack webhook returned status %d: %s", resp.StatusCode, respBody.String()))
	}

	return nil
}

// maskWebhookURL hides the secret path of a webhook URL for logging.
func maskWebhookURL(url string) string {
	if strings.Contains(url, "hooks.slack.com") {
		parts := strings.Split(url, "/")
		if len(parts) > 3 {
			for i := len(parts) - 3; i < len(parts); i++ {
				if len(parts[i]) > 4 {
					parts[i] = parts[i][:2] + "***"
				}
			}
			return strings.Join(parts, "/")
		}
	}
	if len(url) > 20 {
		return url[:20] + "***"
	}
	return "***"
}
