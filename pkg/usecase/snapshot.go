package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type SnapshotStorage struct {
	dir string
}

// NewSnapshotStorage stores snapshots in dir, or in the OS temp directory when dir is empty.
func NewSnapshotStorage(dir string) interfaces.SnapshotStore {
	return &SnapshotStorage{dir: dir}
}

type snapshotData struct {
	Repository string         `json:"repository"`
	Issues     []*model.Issue `json:"issues"`
}

func (s *SnapshotStorage) Save(ctx context.Context, repo model.Repository, issues []*model.Issue) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0700); err != nil {
			return "", domain.ErrSnapshot.Wrap(err)
		}
	}

	pattern := "issuefork-" + strings.ReplaceAll(repo.FullName(), "/", "-") + "-*.json"
	f, err := os.CreateTemp(s.dir, pattern)
	if err != nil {
		return "", domain.ErrSnapshot.Wrap(err)
	}
	path := f.Name()

	data := snapshotData{Repository: repo.FullName(), Issues: issues}
	encErr := json.NewEncoder(f).Encode(data)
	closeErr := f.Close()
	if err := errors.Join(encErr, closeErr); err != nil {
		_ = os.Remove(path)
		return "", domain.ErrSnapshot.Wrap(err)
	}

	ctxlog.From(ctx).Debug("saved issue snapshot",
		slog.String("repo", repo.FullName()),
		slog.String("path", path),
		slog.Int("count", len(issues)),
	)
	return path, nil
}

func (s *SnapshotStorage) Load(ctx context.Context, path string) ([]*model.Issue, error) {
	raw, err := os.ReadFile(path) // #nosec G304 - path is returned by Save
	if err != nil {
		return nil, domain.ErrSnapshot.Wrap(err)
	}

	var data snapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, domain.ErrSnapshot.Wrap(err)
	}

	return data.Issues, nil
}

func (s *SnapshotStorage) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return domain.ErrSnapshot.Wrap(err)
	}
	return nil
}
