package interfaces

import (
	"context"

	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type GitHubService interface {
	CurrentUser(ctx context.Context) (string, error)
	RepositoryExists(ctx context.Context, repo model.Repository) (bool, error)
	CreateFork(ctx context.Context, repo model.Repository) error
	EnableIssues(ctx context.Context, repo model.Repository) error
	ListOpenIssues(ctx context.Context, repo model.Repository) ([]*model.Issue, error)
	GetLabel(ctx context.Context, repo model.Repository, name string) (*model.Label, error)
	// CreateLabel returns an error matching domain.ErrLabelExists when the label is already there.
	CreateLabel(ctx context.Context, repo model.Repository, label model.Label) error
	// CreateIssue returns the HTML URL of the created issue.
	CreateIssue(ctx context.Context, repo model.Repository, draft model.IssueDraft) (string, error)
}
