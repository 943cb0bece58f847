package cli

import (
	"strings"

	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:      "issuefork",
		Usage:     "Fork repositories and copy their open issues",
		UsageText: "issuefork [options]",
		Version:   "0.1.0",
		Description: `issuefork forks each repository below into your GitHub account (reusing an
existing fork), enables issues on the fork and copies every open issue with
its labels. Authentication is taken from the gh CLI.

Repositories:
  ` + strings.Join(model.DefaultRepositories, "\n  ") + `

Set "repositories" in .issuefork.yml or ~/.config/issuefork/config.yml to
process a different list.`,
		Flags:           flags,
		HideHelpCommand: true,
		Action:          RunReplicate,
	}
}
