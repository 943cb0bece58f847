package interfaces

import (
	"context"

	"github.com/google/go-github/v74/github"
)

// ProviderCLI is the gh command line tool that owns authentication.
type ProviderCLI interface {
	Path() (string, error)
	Token(host string) string
	Status(ctx context.Context, host string) error
	Login(ctx context.Context, host string) error
}

type AuthService interface {
	GetToken(ctx context.Context) (string, error)
	GetAuthenticatedClient(ctx context.Context) (*github.Client, error)
}
