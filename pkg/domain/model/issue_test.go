package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

func TestIssueDraft(t *testing.T) {
	t.Run("empty body and single label", func(t *testing.T) {
		src := &model.Issue{
			Number: 3,
			Title:  "Bug X",
			Body:   "",
			Labels: []model.Label{{Name: "bug"}},
			URL:    "https://github.com/upstream/tool/issues/3",
		}

		draft := model.NewIssueDraft(src, false)
		gt.Equal(t, draft.Title, "Bug X")
		gt.Equal(t, draft.Body, "")
		gt.Equal(t, draft.LabelList(), "bug")
	})

	t.Run("labels are comma joined without duplicates", func(t *testing.T) {
		src := &model.Issue{
			Title: "multi",
			Labels: []model.Label{
				{Name: "bug"},
				{Name: "help wanted"},
				{Name: "bug"},
				{Name: ""},
			},
		}

		draft := model.NewIssueDraft(src, false)
		gt.Equal(t, draft.LabelList(), "bug,help wanted")
	})

	t.Run("link source appends footer", func(t *testing.T) {
		src := &model.Issue{
			Title: "linked",
			Body:  "details",
			URL:   "https://github.com/upstream/tool/issues/9",
		}

		draft := model.NewIssueDraft(src, true)
		gt.Equal(t, draft.Body, "details\n\n---\nCopied from https://github.com/upstream/tool/issues/9")
	})

	t.Run("link source with empty body", func(t *testing.T) {
		src := &model.Issue{
			Title: "linked",
			URL:   "https://github.com/upstream/tool/issues/9",
		}

		draft := model.NewIssueDraft(src, true)
		gt.Equal(t, draft.Body, "Copied from https://github.com/upstream/tool/issues/9")
	})
}

func TestParseIssueURL(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		want    int
		wantErr bool
	}{
		{name: "github.com", url: "https://github.com/alice/tool/issues/42", want: 42},
		{name: "enterprise host", url: "https://ghe.example.com/alice/tool/issues/7", want: 7},
		{name: "http scheme", url: "http://github.com/alice/tool/issues/42", wantErr: true},
		{name: "error text", url: "GraphQL: Could not resolve to a Repository", wantErr: true},
		{name: "pull request URL", url: "https://github.com/alice/tool/pull/42", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			number, err := model.ParseIssueURL(tc.url)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, number, tc.want)
		})
	}
}

func TestNormalizeColor(t *testing.T) {
	gt.Equal(t, model.NormalizeColor("d73a4a", model.DefaultLabelColor), "d73a4a")
	gt.Equal(t, model.NormalizeColor("#D73A4A", model.DefaultLabelColor), "d73a4a")
	gt.Equal(t, model.NormalizeColor("", model.DefaultLabelColor), "ededed")
	gt.Equal(t, model.NormalizeColor("red", model.DefaultLabelColor), "ededed")
	gt.True(t, model.IsValidColor("#00ff00"))
	gt.False(t, model.IsValidColor("00ff0"))
}
