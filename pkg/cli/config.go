package cli

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Config holds the command line options. Nil fields were not given and leave
// the config file or the defaults in effect.
type Config struct {
	ConfigPath string
	Host       *string
	Delay      *time.Duration
	ForkWait   *time.Duration
	LinkSource *bool
}

func NewConfigFromCommand(cmd *cli.Command) *Config {
	c := &Config{
		ConfigPath: cmd.String("config"),
	}
	if cmd.IsSet("host") {
		host := cmd.String("host")
		c.Host = &host
	}
	if cmd.IsSet("delay") {
		delay := cmd.Duration("delay")
		c.Delay = &delay
	}
	if cmd.IsSet("fork-wait") {
		wait := cmd.Duration("fork-wait")
		c.ForkWait = &wait
	}
	if cmd.IsSet("link-source") {
		link := cmd.Bool("link-source")
		c.LinkSource = &link
	}
	return c
}

// ToReplicateConfig merges flags over file over the built-in defaults.
func (c *Config) ToReplicateConfig(file *model.Config) (*model.ReplicateConfig, error) {
	rc := model.NewReplicateConfig()
	if err := file.Apply(rc); err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	if c.Host != nil && *c.Host != "" {
		rc.Host = *c.Host
	}
	if c.Delay != nil {
		rc.Delay = *c.Delay
	}
	if c.ForkWait != nil {
		rc.ForkWait = *c.ForkWait
	}
	if c.LinkSource != nil {
		rc.LinkSource = *c.LinkSource
	}

	if rc.Delay < 0 || rc.ForkWait < 0 {
		return nil, domain.ErrConfiguration.Wrap(goerr.New("delay and fork wait must not be negative"))
	}
	if len(rc.Repositories) == 0 {
		return nil, domain.ErrConfiguration.Wrap(goerr.New("no repositories to process"))
	}

	return rc, nil
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file (default: .issuefork.yml or ~/.config/issuefork/config.yml)",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "Pause between issue creations",
			Value: model.DefaultDelay,
		},
		&cli.DurationFlag{
			Name:  "fork-wait",
			Usage: "Pause after requesting a new fork",
			Value: model.DefaultForkWait,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "GitHub host",
			Value: model.DefaultHost,
		},
		&cli.BoolFlag{
			Name:  "link-source",
			Usage: "Append a link to the source issue to copied issue bodies",
		},
	}
}
