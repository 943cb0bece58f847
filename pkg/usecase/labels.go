package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type LabelReplicator struct {
	github   interfaces.GitHubService
	fallback string
	ensured  map[string]bool
}

func NewLabelReplicator(github interfaces.GitHubService, fallbackColor string) *LabelReplicator {
	return &LabelReplicator{
		github:   github,
		fallback: model.NormalizeColor(fallbackColor, model.DefaultLabelColor),
		ensured:  make(map[string]bool),
	}
}

// Replicate creates the labels of issue in fork, copying color and description
// from src. Existing labels are left untouched. Returned errors are warnings.
func (r *LabelReplicator) Replicate(ctx context.Context, src, fork model.Repository, issue *model.Issue) []error {
	var warnings []error

	for _, name := range issue.LabelNames() {
		key := fork.FullName() + "\x00" + name
		if r.ensured[key] {
			continue
		}

		label := r.resolve(ctx, src, issue, name)
		err := r.github.CreateLabel(ctx, fork, label)
		switch {
		case err == nil:
			ctxlog.From(ctx).Debug("created label",
				slog.String("fork", fork.FullName()),
				slog.String("label", name),
				slog.String("color", label.Color),
			)
		case errors.Is(err, domain.ErrLabelExists):
		default:
			warnings = append(warnings, goerr.Wrap(err, "failed to create label "+name))
			continue
		}
		r.ensured[key] = true
	}

	return warnings
}

// resolve looks up the source label, falling back to what the issue listing carried.
func (r *LabelReplicator) resolve(ctx context.Context, src model.Repository, issue *model.Issue, name string) model.Label {
	label := model.Label{Name: name}
	for _, l := range issue.Labels {
		if l.Name == name {
			label = l
			break
		}
	}

	fetched, err := r.github.GetLabel(ctx, src, name)
	if err != nil {
		ctxlog.From(ctx).Debug("failed to fetch source label, using listing data",
			slog.String("repo", src.FullName()),
			slog.String("label", name),
			slog.String("error", err.Error()),
		)
	} else {
		label.Color = fetched.Color
		label.Description = fetched.Description
	}

	label.Color = model.NormalizeColor(label.Color, r.fallback)
	return label
}
