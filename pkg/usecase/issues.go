package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type IssueFetcher struct {
	github    interfaces.GitHubService
	snapshots interfaces.SnapshotStore
}

func NewIssueFetcher(github interfaces.GitHubService, snapshots interfaces.SnapshotStore) *IssueFetcher {
	return &IssueFetcher{
		github:    github,
		snapshots: snapshots,
	}
}

// Fetch lists the open issues of src and stages them in a snapshot file. The
// returned release func removes the snapshot and must always be called.
func (f *IssueFetcher) Fetch(ctx context.Context, src model.Repository) ([]*model.Issue, func(), error) {
	release := func() {}

	issues, err := f.github.ListOpenIssues(ctx, src)
	if err != nil {
		return nil, release, err
	}
	if len(issues) == 0 {
		return nil, release, nil
	}

	path, err := f.snapshots.Save(ctx, src, issues)
	if err != nil {
		return nil, release, err
	}
	release = func() {
		if err := f.snapshots.Remove(ctx, path); err != nil {
			ctxlog.From(ctx).Warn("failed to remove issue snapshot",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}

	staged, err := f.snapshots.Load(ctx, path)
	if err != nil {
		release()
		return nil, func() {}, err
	}

	return staged, release, nil
}
