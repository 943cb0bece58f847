package model

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Issue is an open issue fetched from a source repository.
type Issue struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Labels []Label `json:"labels"`
	URL    string  `json:"url"`
}

// LabelNames returns the issue's label names in order, without duplicates.
func (i *Issue) LabelNames() []string {
	seen := make(map[string]bool, len(i.Labels))
	names := make([]string, 0, len(i.Labels))
	for _, label := range i.Labels {
		if label.Name == "" || seen[label.Name] {
			continue
		}
		seen[label.Name] = true
		names = append(names, label.Name)
	}
	return names
}

// IssueDraft is the payload of an issue to be created in a fork.
type IssueDraft struct {
	Title  string
	Body   string
	Labels []string
}

// LabelList returns the comma-joined label names.
func (d IssueDraft) LabelList() string {
	return strings.Join(d.Labels, ",")
}

const sourceFooterPrefix = "Copied from "

// NewIssueDraft builds the draft replicating src. When linkSource is set a footer
// pointing at the original issue is appended to the body.
func NewIssueDraft(src *Issue, linkSource bool) IssueDraft {
	body := src.Body
	if linkSource && src.URL != "" {
		if body != "" {
			body += "\n\n---\n"
		}
		body += sourceFooterPrefix + src.URL
	}

	return IssueDraft{
		Title:  src.Title,
		Body:   body,
		Labels: src.LabelNames(),
	}
}

var issueURLPattern = regexp.MustCompile(`^https://[^/]+/[^/]+/[^/]+/issues/(\d+)$`)

// ParseIssueURL extracts the issue number from an issue HTML URL such as
// https://github.com/owner/repo/issues/12.
func ParseIssueURL(url string) (int, error) {
	if !strings.HasPrefix(url, "https://") {
		return 0, goerr.New("issue URL does not use https scheme: " + url)
	}

	m := issueURLPattern.FindStringSubmatch(url)
	if m == nil {
		return 0, goerr.New("unexpected issue URL shape: " + url)
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, goerr.Wrap(err, "invalid issue number in URL")
	}
	return number, nil
}
