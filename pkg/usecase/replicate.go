package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type IssueReplicator struct {
	github     interfaces.GitHubService
	labels     *LabelReplicator
	display    interfaces.Display
	delay      time.Duration
	sleep      SleepFunc
	linkSource bool
}

type IssueReplicatorOptions struct {
	GitHub     interfaces.GitHubService
	Labels     *LabelReplicator
	Display    interfaces.Display
	Delay      time.Duration
	Sleep      SleepFunc
	LinkSource bool
}

func NewIssueReplicator(opts IssueReplicatorOptions) *IssueReplicator {
	r := &IssueReplicator{
		github:     opts.GitHub,
		labels:     opts.Labels,
		display:    opts.Display,
		delay:      opts.Delay,
		sleep:      opts.Sleep,
		linkSource: opts.LinkSource,
	}
	if r.sleep == nil {
		r.sleep = sleepContext
	}
	if r.display == nil {
		r.display = NewNoOpDisplay()
	}
	return r
}

// Replicate creates one issue in fork per source issue, in the given order.
// Individual failures are counted in result; only context cancellation is returned.
func (r *IssueReplicator) Replicate(ctx context.Context, src, fork model.Repository, issues []*model.Issue, result *model.RepositoryResult) error {
	logger := ctxlog.From(ctx)

	for i, issue := range issues {
		if i > 0 {
			if err := r.sleep(ctx, r.delay); err != nil {
				return err
			}
		}

		if r.labels != nil {
			for _, warning := range r.labels.Replicate(ctx, src, fork, issue) {
				logger.Warn("label replication failed",
					slog.String("fork", fork.FullName()),
					slog.Int("issue", issue.Number),
					slog.String("error", warning.Error()),
				)
				r.display.ShowWarning("label not created", warning)
			}
		}

		number, err := r.copyIssue(ctx, fork, issue)
		if err != nil {
			logger.Warn("issue copy failed",
				slog.String("fork", fork.FullName()),
				slog.Int("issue", issue.Number),
				slog.String("error", err.Error()),
			)
			result.Failed++
			r.display.ShowIssueFailed(issue, err)
			continue
		}

		result.Copied++
		result.Created = append(result.Created, number)
		r.display.ShowIssueCopied(issue, number)
	}

	return nil
}

func (r *IssueReplicator) copyIssue(ctx context.Context, fork model.Repository, issue *model.Issue) (int, error) {
	if issue.Title == "" {
		return 0, domain.ErrIssueCreation.Wrap(goerr.New("source issue has no title"))
	}

	draft := model.NewIssueDraft(issue, r.linkSource)
	issueURL, err := r.github.CreateIssue(ctx, fork, draft)
	if err != nil {
		return 0, err
	}

	number, err := model.ParseIssueURL(issueURL)
	if err != nil {
		return 0, domain.ErrIssueCreation.Wrap(err)
	}
	return number, nil
}

type ReplicateUseCase struct {
	github    interfaces.GitHubService
	display   interfaces.Display
	hooks     interfaces.HookExecutor
	snapshots interfaces.SnapshotStore
	config    *model.ReplicateConfig
	sleep     SleepFunc
}

type ReplicateUseCaseOptions struct {
	GitHub    interfaces.GitHubService
	Display   interfaces.Display
	Hooks     interfaces.HookExecutor
	Snapshots interfaces.SnapshotStore
	Config    *model.ReplicateConfig
	Sleep     SleepFunc
}

func NewReplicateUseCase(opts ReplicateUseCaseOptions) *ReplicateUseCase {
	u := &ReplicateUseCase{
		github:    opts.GitHub,
		display:   opts.Display,
		hooks:     opts.Hooks,
		snapshots: opts.Snapshots,
		config:    opts.Config,
		sleep:     opts.Sleep,
	}
	if u.config == nil {
		u.config = model.NewReplicateConfig()
	}
	if u.display == nil {
		u.display = NewNoOpDisplay()
	}
	if u.hooks == nil {
		u.hooks = NewHookExecutor(nil)
	}
	if u.snapshots == nil {
		u.snapshots = NewSnapshotStorage(u.config.SnapshotDir)
	}
	if u.sleep == nil {
		u.sleep = sleepContext
	}
	return u
}

// Execute processes every configured repository in order. Only failures to
// identify the current user and context cancellation are returned as errors;
// per-repository problems end up in the summary.
func (u *ReplicateUseCase) Execute(ctx context.Context) (*model.Summary, error) {
	logger := ctxlog.From(ctx)
	startTime := time.Now()
	summary := &model.Summary{}

	user, err := u.github.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved current user", slog.String("user", user))

	forks := NewForkEnsurer(u.github, u.config.ForkWait, u.sleep)
	fetcher := NewIssueFetcher(u.github, u.snapshots)
	replicator := NewIssueReplicator(IssueReplicatorOptions{
		GitHub:     u.github,
		Labels:     NewLabelReplicator(u.github, u.config.FallbackColor),
		Display:    u.display,
		Delay:      u.config.Delay,
		Sleep:      u.sleep,
		LinkSource: u.config.LinkSource,
	})

	total := len(u.config.Repositories)
	for i, id := range u.config.Repositories {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(startTime)
			return summary, goerr.Wrap(err, "replication interrupted")
		}

		u.display.StartRepository(i+1, total, id)
		result := u.processRepository(ctx, id, user, forks, fetcher, replicator)
		summary.Add(result)
		u.display.FinishRepository(result)
		u.runHook(ctx, result.Event())
	}

	summary.Duration = time.Since(startTime).Round(time.Millisecond)
	u.display.ShowSummary(summary)
	u.runHook(ctx, summary.Event())

	return summary, nil
}

func (u *ReplicateUseCase) processRepository(
	ctx context.Context,
	id, user string,
	forks *ForkEnsurer,
	fetcher *IssueFetcher,
	replicator *IssueReplicator,
) *model.RepositoryResult {
	logger := ctxlog.From(ctx)
	result := &model.RepositoryResult{ID: id, Status: model.RepositoryStatusFailed}

	src, err := model.ParseRepository(id)
	if err != nil {
		result.Err = domain.ErrRepository.Wrap(err)
		return result
	}
	result.Source = src

	if src.OwnedBy(user) {
		result.Status = model.RepositoryStatusOwned
		u.display.ShowOwned(src)
		return result
	}

	fork, created, err := forks.Ensure(ctx, src, user)
	if err != nil {
		result.Err = err
		return result
	}
	result.Fork = fork
	result.ForkCreated = created
	u.display.ShowFork(fork, created)

	if err := forks.EnableIssues(ctx, fork); err != nil {
		logger.Warn("failed to enable issues on fork",
			slog.String("fork", fork.FullName()),
			slog.String("error", err.Error()),
		)
		u.display.ShowWarning("could not enable issues on "+fork.FullName(), err)
	}

	issues, release, err := fetcher.Fetch(ctx, src)
	defer release()
	if err != nil {
		result.Err = err
		return result
	}
	result.Found = len(issues)
	u.display.ShowIssuesFound(len(issues))

	if err := replicator.Replicate(ctx, src, fork, issues, result); err != nil {
		result.Err = goerr.Wrap(err, "issue replication interrupted")
		return result
	}

	result.Status = model.RepositoryStatusReplicated
	return result
}

func (u *ReplicateUseCase) runHook(ctx context.Context, event model.ReplicationEvent) {
	if err := u.hooks.Execute(ctx, event); err != nil {
		ctxlog.From(ctx).Warn("hook execution failed",
			slog.String("event", string(event.Type)),
			slog.String("error", err.Error()),
		)
	}
}
