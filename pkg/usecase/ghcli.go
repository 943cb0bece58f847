package usecase

import (
	"context"
	"strings"

	gh "github.com/cli/go-gh/v2"
	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
)

// GhCLI drives the gh command line tool through go-gh.
type GhCLI struct{}

func NewGhCLI() interfaces.ProviderCLI {
	return &GhCLI{}
}

func (c *GhCLI) Path() (string, error) {
	return gh.Path()
}

// Token reads the token gh would use for host, honouring GH_TOKEN/GITHUB_TOKEN.
func (c *GhCLI) Token(host string) string {
	token, _ := auth.TokenForHost(host)
	return token
}

func (c *GhCLI) Status(ctx context.Context, host string) error {
	_, stderr, err := gh.ExecContext(ctx, "auth", "status", "--hostname", host)
	if err != nil {
		return goerr.Wrap(err, "gh auth status failed: "+strings.TrimSpace(stderr.String()))
	}
	return nil
}

func (c *GhCLI) Login(ctx context.Context, host string) error {
	if err := gh.ExecInteractive(ctx, "auth", "login", "--hostname", host); err != nil {
		return goerr.Wrap(err, "gh auth login failed")
	}
	return nil
}
