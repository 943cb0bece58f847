package usecase_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"github.com/m-mizutani/issuefork/pkg/usecase"
)

func TestIssueFetcher(t *testing.T) {
	ctx := context.Background()
	src := model.Repository{Owner: "octo", Name: "tool"}

	t.Run("stages issues until released", func(t *testing.T) {
		dir := t.TempDir()
		gh := newMockGitHub("alice")
		gh.issues["octo/tool"] = []*model.Issue{
			{Number: 3, Title: "three", Labels: []model.Label{{Name: "bug", Color: "d73a4a"}}},
		}

		issues, release, err := usecase.NewIssueFetcher(gh, usecase.NewSnapshotStorage(dir)).Fetch(ctx, src)
		gt.NoError(t, err)
		gt.Equal(t, len(issues), 1)
		gt.Equal(t, issues[0].Title, "three")
		gt.Equal(t, issues[0].Labels[0].Color, "d73a4a")

		entries, err := os.ReadDir(dir)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 1)

		release()
		entries, err = os.ReadDir(dir)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 0)
	})

	t.Run("no issues writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		issues, release, err := usecase.NewIssueFetcher(newMockGitHub("alice"), usecase.NewSnapshotStorage(dir)).Fetch(ctx, src)
		gt.NoError(t, err)
		gt.Equal(t, len(issues), 0)
		release()

		entries, err := os.ReadDir(dir)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 0)
	})
}
