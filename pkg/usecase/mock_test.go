package usecase_test

import (
	"context"
	"fmt"

	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

// mockGitHub is an in-memory GitHub recording every mutating call.
type mockGitHub struct {
	user       string
	userErr    error
	existing   map[string]bool
	issues     map[string][]*model.Issue
	labels     map[string]map[string]model.Label
	forkErr    error
	listErr    error
	enableErr  error
	labelErr   error
	issueURLFn func(fork model.Repository, n int) string

	forkCalls    []string
	enableCalls  []string
	labelCalls   []string
	createdDraft []model.IssueDraft
	createdIn    []string
}

func newMockGitHub(user string) *mockGitHub {
	return &mockGitHub{
		user:     user,
		existing: map[string]bool{},
		issues:   map[string][]*model.Issue{},
		labels:   map[string]map[string]model.Label{},
	}
}

func (m *mockGitHub) CurrentUser(ctx context.Context) (string, error) {
	if m.userErr != nil {
		return "", m.userErr
	}
	return m.user, nil
}

func (m *mockGitHub) RepositoryExists(ctx context.Context, repo model.Repository) (bool, error) {
	return m.existing[repo.FullName()], nil
}

func (m *mockGitHub) CreateFork(ctx context.Context, repo model.Repository) error {
	m.forkCalls = append(m.forkCalls, repo.FullName())
	if m.forkErr != nil {
		return domain.ErrFork.Wrap(m.forkErr)
	}
	m.existing[repo.ForkFor(m.user).FullName()] = true
	return nil
}

func (m *mockGitHub) EnableIssues(ctx context.Context, repo model.Repository) error {
	m.enableCalls = append(m.enableCalls, repo.FullName())
	return m.enableErr
}

func (m *mockGitHub) ListOpenIssues(ctx context.Context, repo model.Repository) ([]*model.Issue, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.issues[repo.FullName()], nil
}

func (m *mockGitHub) GetLabel(ctx context.Context, repo model.Repository, name string) (*model.Label, error) {
	label, ok := m.labels[repo.FullName()][name]
	if !ok {
		return nil, fmt.Errorf("label %s not found", name)
	}
	return &label, nil
}

func (m *mockGitHub) CreateLabel(ctx context.Context, repo model.Repository, label model.Label) error {
	m.labelCalls = append(m.labelCalls, repo.FullName()+":"+label.Name+":"+label.Color)
	if m.labelErr != nil {
		return m.labelErr
	}
	if m.labels[repo.FullName()] == nil {
		m.labels[repo.FullName()] = map[string]model.Label{}
	}
	if _, ok := m.labels[repo.FullName()][label.Name]; ok {
		return domain.ErrLabelExists.Wrap(fmt.Errorf("label %s already exists", label.Name))
	}
	m.labels[repo.FullName()][label.Name] = label
	return nil
}

func (m *mockGitHub) CreateIssue(ctx context.Context, repo model.Repository, draft model.IssueDraft) (string, error) {
	m.createdDraft = append(m.createdDraft, draft)
	m.createdIn = append(m.createdIn, repo.FullName())
	n := len(m.createdDraft)
	if m.issueURLFn != nil {
		return m.issueURLFn(repo, n), nil
	}
	return fmt.Sprintf("https://github.com/%s/issues/%d", repo.FullName(), n), nil
}

// recordingDisplay keeps the calls relevant to assertions.
type recordingDisplay struct {
	started  []string
	owned    []string
	copied   []int
	failed   []int
	warnings []string
	summary  *model.Summary
}

func (d *recordingDisplay) StartRepository(index, total int, id string) {
	d.started = append(d.started, id)
}
func (d *recordingDisplay) ShowOwned(repo model.Repository) {
	d.owned = append(d.owned, repo.FullName())
}
func (d *recordingDisplay) ShowFork(fork model.Repository, created bool) {}
func (d *recordingDisplay) ShowIssuesFound(count int)                    {}
func (d *recordingDisplay) ShowIssueCopied(src *model.Issue, number int) {
	d.copied = append(d.copied, src.Number)
}
func (d *recordingDisplay) ShowIssueFailed(src *model.Issue, err error) {
	d.failed = append(d.failed, src.Number)
}
func (d *recordingDisplay) ShowWarning(msg string, err error) {
	d.warnings = append(d.warnings, msg)
}
func (d *recordingDisplay) FinishRepository(result *model.RepositoryResult) {}
func (d *recordingDisplay) ShowSummary(summary *model.Summary) {
	d.summary = summary
}

type recordingHooks struct {
	events []model.ReplicationEvent
}

func (h *recordingHooks) Execute(ctx context.Context, event model.ReplicationEvent) error {
	h.events = append(h.events, event)
	return nil
}
