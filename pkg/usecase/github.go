package usecase

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type GitHubService struct {
	client *github.Client
}

func NewGitHubService(client *github.Client) interfaces.GitHubService {
	return &GitHubService{
		client: client,
	}
}

func (s *GitHubService) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := s.client.Users.Get(ctx, "")
	if err != nil {
		return "", domain.ErrAuthentication.Wrap(err)
	}
	if user.GetLogin() == "" {
		return "", domain.ErrAuthentication.Wrap(goerr.New("empty login in user response"))
	}
	return user.GetLogin(), nil
}

func (s *GitHubService) RepositoryExists(ctx context.Context, repo model.Repository) (bool, error) {
	_, resp, err := s.client.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, domain.ErrAPIRequest.Wrap(err)
	}
	return true, nil
}

func (s *GitHubService) CreateFork(ctx context.Context, repo model.Repository) error {
	_, _, err := s.client.Repositories.CreateFork(ctx, repo.Owner, repo.Name, &github.RepositoryCreateForkOptions{})
	if err != nil {
		// Forking is asynchronous; GitHub answers 202 while the copy is scheduled.
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			return nil
		}
		return domain.ErrFork.Wrap(err)
	}
	return nil
}

func (s *GitHubService) EnableIssues(ctx context.Context, repo model.Repository) error {
	patch := &github.Repository{HasIssues: github.Ptr(true)}
	if _, _, err := s.client.Repositories.Edit(ctx, repo.Owner, repo.Name, patch); err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}
	return nil
}

// ListOpenIssues returns open issues of repo ordered by ascending number. Pull
// requests share the issues endpoint and are dropped.
func (s *GitHubService) ListOpenIssues(ctx context.Context, repo model.Repository) ([]*model.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:     "open",
		Sort:      "created",
		Direction: "asc",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var issues []*model.Issue
	for {
		page, resp, err := s.client.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, domain.ErrAPIRequest.Wrap(err)
		}

		for _, issue := range page {
			if issue.IsPullRequest() || issue.GetState() != "open" {
				continue
			}
			issues = append(issues, convertIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	slices.SortStableFunc(issues, func(a, b *model.Issue) int {
		return cmp.Compare(a.Number, b.Number)
	})

	ctxlog.From(ctx).Debug("fetched open issues",
		slog.String("repo", repo.FullName()),
		slog.Int("count", len(issues)),
	)

	return issues, nil
}

func convertIssue(issue *github.Issue) *model.Issue {
	labels := make([]model.Label, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, convertLabel(label))
	}

	return &model.Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Labels: labels,
		URL:    issue.GetHTMLURL(),
	}
}

func convertLabel(label *github.Label) model.Label {
	return model.Label{
		Name:        label.GetName(),
		Color:       label.GetColor(),
		Description: label.GetDescription(),
	}
}

func (s *GitHubService) GetLabel(ctx context.Context, repo model.Repository, name string) (*model.Label, error) {
	label, _, err := s.client.Issues.GetLabel(ctx, repo.Owner, repo.Name, url.PathEscape(name))
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}
	converted := convertLabel(label)
	return &converted, nil
}

func (s *GitHubService) CreateLabel(ctx context.Context, repo model.Repository, label model.Label) error {
	req := &github.Label{
		Name:  github.Ptr(label.Name),
		Color: github.Ptr(label.Color),
	}
	if label.Description != "" {
		req.Description = github.Ptr(label.Description)
	}

	if _, _, err := s.client.Issues.CreateLabel(ctx, repo.Owner, repo.Name, req); err != nil {
		if isAlreadyExists(err) {
			return domain.ErrLabelExists.Wrap(err)
		}
		return domain.ErrAPIRequest.Wrap(err)
	}
	return nil
}

func isAlreadyExists(err error) bool {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return false
	}
	for _, e := range errResp.Errors {
		if e.Code == "already_exists" {
			return true
		}
	}
	return false
}

func (s *GitHubService) CreateIssue(ctx context.Context, repo model.Repository, draft model.IssueDraft) (string, error) {
	req := &github.IssueRequest{
		Title: github.Ptr(draft.Title),
		Body:  github.Ptr(draft.Body),
	}
	if len(draft.Labels) > 0 {
		labels := append([]string{}, draft.Labels...)
		req.Labels = &labels
	}

	issue, _, err := s.client.Issues.Create(ctx, repo.Owner, repo.Name, req)
	if err != nil {
		return "", domain.ErrIssueCreation.Wrap(err)
	}
	return issue.GetHTMLURL(), nil
}
