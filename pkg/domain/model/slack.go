package model

// SlackAction represents a Slack notification action
type SlackAction struct {
	WebhookURL string `yaml:"webhook_url"`
	Message    string `yaml:"message"`
	Color      string `yaml:"color,omitempty"`      // good, warning, danger, or #hex
	IconEmoji  string `yaml:"icon_emoji,omitempty"` // only honoured if the webhook allows customization
	UserName   string `yaml:"username,omitempty"`
}

// SlackPayload represents the JSON payload for Slack webhook
type SlackPayload struct {
	Text        string       `json:"text"`
	UserName    string       `json:"username,omitempty"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment represents a Slack message attachment
type Attachment struct {
	Color     string `json:"color,omitempty"`
	Text      string `json:"text,omitempty"`
	Footer    string `json:"footer,omitempty"`
	Timestamp int64  `json:"ts,omitempty"`
}
