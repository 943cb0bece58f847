package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type ForkEnsurer struct {
	github interfaces.GitHubService
	wait   time.Duration
	sleep  SleepFunc
}

// NewForkEnsurer creates a ForkEnsurer that waits for wait after requesting a new fork.
func NewForkEnsurer(github interfaces.GitHubService, wait time.Duration, sleep SleepFunc) *ForkEnsurer {
	if sleep == nil {
		sleep = sleepContext
	}
	return &ForkEnsurer{
		github: github,
		wait:   wait,
		sleep:  sleep,
	}
}

// Ensure returns the fork of src under user, requesting it when no repository of
// the same name exists there yet. created tells whether a fork request was sent.
func (f *ForkEnsurer) Ensure(ctx context.Context, src model.Repository, user string) (fork model.Repository, created bool, err error) {
	logger := ctxlog.From(ctx)
	fork = src.ForkFor(user)

	exists, err := f.github.RepositoryExists(ctx, fork)
	if err != nil {
		return fork, false, domain.ErrFork.Wrap(err)
	}
	if exists {
		logger.Debug("fork already exists", slog.String("fork", fork.FullName()))
		return fork, false, nil
	}

	if err := f.github.CreateFork(ctx, src); err != nil {
		return fork, false, domain.ErrFork.Wrap(err)
	}

	logger.Info("fork requested",
		slog.String("source", src.FullName()),
		slog.String("fork", fork.FullName()),
		slog.Duration("wait", f.wait),
	)

	if err := f.sleep(ctx, f.wait); err != nil {
		return fork, true, err
	}

	return fork, true, nil
}

// EnableIssues turns on issue tracking, which GitHub disables on new forks.
func (f *ForkEnsurer) EnableIssues(ctx context.Context, fork model.Repository) error {
	return f.github.EnableIssues(ctx, fork)
}
