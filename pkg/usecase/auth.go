package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"golang.org/x/oauth2"
)

type AuthService struct {
	cli  interfaces.ProviderCLI
	host string
	out  io.Writer
}

type AuthServiceOption func(*AuthService)

// WithAuthOutput sets where login guidance is printed. Defaults to stdout.
func WithAuthOutput(w io.Writer) AuthServiceOption {
	return func(s *AuthService) {
		s.out = w
	}
}

func NewAuthService(cli interfaces.ProviderCLI, host string, opts ...AuthServiceOption) interfaces.AuthService {
	if host == "" {
		host = model.DefaultHost
	}

	s := &AuthService{
		cli:  cli,
		host: host,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetToken makes sure gh is installed and logged in to the host, then returns its token.
func (s *AuthService) GetToken(ctx context.Context) (string, error) {
	logger := ctxlog.From(ctx)

	path, err := s.cli.Path()
	if err != nil {
		return "", domain.ErrProviderCLI.Wrap(err)
	}
	logger.Debug("found gh CLI", slog.String("path", path))

	if err := s.cli.Status(ctx, s.host); err != nil {
		logger.Info("gh is not logged in, starting login",
			slog.String("host", s.host),
			slog.String("error", err.Error()),
		)

		fmt.Fprintf(s.out, "\n🔐 Not logged in to %s, running gh auth login\n", s.host)
		if err := s.cli.Login(ctx, s.host); err != nil {
			return "", domain.ErrAuthentication.Wrap(err)
		}
	}

	token := s.cli.Token(s.host)
	if token == "" {
		return "", domain.ErrAuthentication.Wrap(goerr.New("no token available for " + s.host))
	}

	return token, nil
}

func (s *AuthService) GetAuthenticatedClient(ctx context.Context) (*github.Client, error) {
	token, err := s.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if s.host != model.DefaultHost {
		baseURL := "https://" + s.host + "/"
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, domain.ErrConfiguration.Wrap(err)
		}
	}

	return client, nil
}
