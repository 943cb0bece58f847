package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultHost     = "github.com"
	DefaultDelay    = 1 * time.Second
	DefaultForkWait = 3 * time.Second
)

// ReplicateConfig is the resolved runtime configuration of a replication run.
type ReplicateConfig struct {
	Repositories  []string
	Host          string
	Delay         time.Duration
	ForkWait      time.Duration
	FallbackColor string
	LinkSource    bool
	SnapshotDir   string
}

// NewReplicateConfig returns the built-in defaults.
func NewReplicateConfig() *ReplicateConfig {
	repos := make([]string, len(DefaultRepositories))
	copy(repos, DefaultRepositories)

	return &ReplicateConfig{
		Repositories:  repos,
		Host:          DefaultHost,
		Delay:         DefaultDelay,
		ForkWait:      DefaultForkWait,
		FallbackColor: DefaultLabelColor,
	}
}

// Config represents the configuration file
type Config struct {
	Repositories  []string    `yaml:"repositories,omitempty"`
	Host          string      `yaml:"host,omitempty"`
	Delay         string      `yaml:"delay,omitempty"`
	ForkWait      string      `yaml:"fork_wait,omitempty"`
	FallbackColor string      `yaml:"fallback_color,omitempty"`
	LinkSource    bool        `yaml:"link_source,omitempty"`
	SnapshotDir   string      `yaml:"snapshot_dir,omitempty"`
	Hooks         HooksConfig `yaml:"hooks"`
}

// Apply overlays the values set in the file onto base.
func (c *Config) Apply(base *ReplicateConfig) error {
	if c == nil {
		return nil
	}

	if len(c.Repositories) > 0 {
		base.Repositories = append([]string{}, c.Repositories...)
	}
	if c.Host != "" {
		base.Host = c.Host
	}
	if c.Delay != "" {
		d, err := time.ParseDuration(c.Delay)
		if err != nil {
			return goerr.Wrap(err, "invalid delay in config file")
		}
		base.Delay = d
	}
	if c.ForkWait != "" {
		d, err := time.ParseDuration(c.ForkWait)
		if err != nil {
			return goerr.Wrap(err, "invalid fork_wait in config file")
		}
		base.ForkWait = d
	}
	if c.FallbackColor != "" {
		if !IsValidColor(c.FallbackColor) {
			return goerr.New("fallback_color must be 6 hex digits: " + c.FallbackColor)
		}
		base.FallbackColor = NormalizeColor(c.FallbackColor, DefaultLabelColor)
	}
	if c.LinkSource {
		base.LinkSource = true
	}
	if c.SnapshotDir != "" {
		base.SnapshotDir = c.SnapshotDir
	}

	return nil
}

// HooksConfig defines hooks for replication events
type HooksConfig struct {
	RepositorySuccess []Action `yaml:"repository_success,omitempty"`
	RepositoryFailure []Action `yaml:"repository_failure,omitempty"`
	CompleteSuccess   []Action `yaml:"complete_success,omitempty"`
	CompleteFailure   []Action `yaml:"complete_failure,omitempty"`
}

// Action represents an action to be executed
type Action struct {
	Type string                 `yaml:"type"` // "slack", "command"
	Data map[string]interface{} `yaml:",inline"`
}

// ToSlackAction converts Action to SlackAction for type safety
func (a *Action) ToSlackAction() (*SlackAction, error) {
	if a.Type != "slack" {
		return nil, goerr.New("action is not a slack type")
	}

	webhookURL, ok := a.Data["webhook_url"].(string)
	if !ok || webhookURL == "" {
		return nil, goerr.New("slack action requires 'webhook_url' field")
	}

	message, ok := a.Data["message"].(string)
	if !ok || message == "" {
		return nil, goerr.New("slack action requires 'message' field")
	}

	slackAction := &SlackAction{
		WebhookURL: webhookURL,
		Message:    message,
	}

	if color, ok := a.Data["color"].(string); ok {
		slackAction.Color = color
	}
	if iconEmoji, ok := a.Data["icon_emoji"].(string); ok {
		slackAction.IconEmoji = iconEmoji
	}
	if userName, ok := a.Data["username"].(string); ok {
		slackAction.UserName = userName
	}

	return slackAction, nil
}

// ToCommandAction converts Action to CommandAction for type safety
func (a *Action) ToCommandAction() (*CommandAction, error) {
	if a.Type != "command" {
		return nil, goerr.New("action is not a command type")
	}

	command, ok := a.Data["command"].(string)
	if !ok || command == "" {
		return nil, goerr.New("command action requires 'command' field")
	}

	cmdAction := &CommandAction{
		Command: command,
	}

	if argsValue, ok := a.Data["args"]; ok {
		args, err := toStringSlice(argsValue)
		if err != nil {
			return nil, goerr.Wrap(err, "command action 'args' must be string array")
		}
		cmdAction.Args = args
	}

	if timeoutValue, ok := a.Data["timeout"]; ok {
		switch v := timeoutValue.(type) {
		case string:
			timeout, err := time.ParseDuration(v)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid timeout format")
			}
			cmdAction.Timeout = timeout
		case time.Duration:
			cmdAction.Timeout = v
		default:
			return nil, goerr.New("command action 'timeout' must be a duration string")
		}
	}

	if envValue, ok := a.Data["env"]; ok {
		env, err := toStringSlice(envValue)
		if err != nil {
			return nil, goerr.Wrap(err, "command action 'env' must be string array")
		}
		cmdAction.Env = env
	}

	return cmdAction, nil
}

func toStringSlice(v interface{}) ([]string, error) {
	switch vv := v.(type) {
	case []string:
		return vv, nil
	case []interface{}:
		out := make([]string, len(vv))
		for i, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, goerr.New("array element is not a string")
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, goerr.New("value is not an array")
	}
}
