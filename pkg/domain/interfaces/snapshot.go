package interfaces

import (
	"context"

	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

// SnapshotStore keeps the fetched issue list of one repository in a transient file.
type SnapshotStore interface {
	Save(ctx context.Context, repo model.Repository, issues []*model.Issue) (string, error)
	Load(ctx context.Context, path string) ([]*model.Issue, error)
	Remove(ctx context.Context, path string) error
}
