package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/usecase"
)

type fakeProviderCLI struct {
	pathErr   error
	statusErr error
	loginErr  error
	token     string

	loginCalled bool
	lastHost    string
}

func (f *fakeProviderCLI) Path() (string, error) {
	if f.pathErr != nil {
		return "", f.pathErr
	}
	return "/usr/bin/gh", nil
}

func (f *fakeProviderCLI) Token(host string) string {
	f.lastHost = host
	return f.token
}

func (f *fakeProviderCLI) Status(ctx context.Context, host string) error {
	return f.statusErr
}

func (f *fakeProviderCLI) Login(ctx context.Context, host string) error {
	f.loginCalled = true
	if f.loginErr == nil {
		f.statusErr = nil
	}
	return f.loginErr
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("missing gh is a provider CLI error", func(t *testing.T) {
		cli := &fakeProviderCLI{pathErr: errors.New("not found")}
		_, err := usecase.NewAuthService(cli, "").GetToken(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrProviderCLI))
	})

	t.Run("logged in returns token without login", func(t *testing.T) {
		cli := &fakeProviderCLI{token: "gho_abc"}
		token, err := usecase.NewAuthService(cli, "").GetToken(ctx)
		gt.NoError(t, err)
		gt.Equal(t, token, "gho_abc")
		gt.False(t, cli.loginCalled)
		gt.Equal(t, cli.lastHost, "github.com")
	})

	t.Run("not logged in runs login", func(t *testing.T) {
		var out bytes.Buffer
		cli := &fakeProviderCLI{statusErr: errors.New("not logged in"), token: "gho_new"}
		token, err := usecase.NewAuthService(cli, "github.com", usecase.WithAuthOutput(&out)).GetToken(ctx)
		gt.NoError(t, err)
		gt.Equal(t, token, "gho_new")
		gt.True(t, cli.loginCalled)
		gt.True(t, bytes.Contains(out.Bytes(), []byte("gh auth login")))
	})

	t.Run("failed login is an authentication error", func(t *testing.T) {
		var out bytes.Buffer
		cli := &fakeProviderCLI{statusErr: errors.New("not logged in"), loginErr: errors.New("cancelled")}
		_, err := usecase.NewAuthService(cli, "github.com", usecase.WithAuthOutput(&out)).GetToken(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrAuthentication))
	})

	t.Run("empty token is an authentication error", func(t *testing.T) {
		cli := &fakeProviderCLI{}
		_, err := usecase.NewAuthService(cli, "github.com").GetToken(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrAuthentication))
	})

	t.Run("enterprise host uses API v3 base URL", func(t *testing.T) {
		cli := &fakeProviderCLI{token: "ghe_token"}
		client, err := usecase.NewAuthService(cli, "ghe.example.com").GetAuthenticatedClient(ctx)
		gt.NoError(t, err)
		gt.Equal(t, client.BaseURL.String(), "https://ghe.example.com/api/v3/")
		gt.Equal(t, cli.lastHost, "ghe.example.com")
	})

	t.Run("github.com keeps public API base URL", func(t *testing.T) {
		cli := &fakeProviderCLI{token: "gho_abc"}
		client, err := usecase.NewAuthService(cli, "").GetAuthenticatedClient(ctx)
		gt.NoError(t, err)
		gt.Equal(t, client.BaseURL.String(), "https://api.github.com/")
	})
}
