package model

import "time"

type RepositoryStatus string

const (
	RepositoryStatusReplicated RepositoryStatus = "replicated"
	RepositoryStatusOwned      RepositoryStatus = "owned"
	RepositoryStatusFailed     RepositoryStatus = "failed"
)

// RepositoryResult is the outcome of processing one repository identifier.
type RepositoryResult struct {
	ID          string
	Source      Repository
	Fork        Repository
	Status      RepositoryStatus
	ForkCreated bool
	Found       int
	Copied      int
	Failed      int
	Created     []int
	Err         error
}

// Succeeded reports whether the repository counts towards the success tally.
func (r *RepositoryResult) Succeeded() bool {
	return r.Status != RepositoryStatusFailed
}

// Event converts the result into its hook event.
func (r *RepositoryResult) Event() ReplicationEvent {
	ev := ReplicationEvent{
		Type:       HookRepositorySuccess,
		Repository: r.ID,
		Copied:     r.Copied,
		Failed:     r.Failed,
	}
	if r.Fork.Owner != "" {
		ev.Fork = r.Fork.FullName()
	}
	if !r.Succeeded() {
		ev.Type = HookRepositoryFailure
	}
	return ev
}

type Summary struct {
	Results      []*RepositoryResult
	Succeeded    int
	Failed       int
	CopiedIssues int
	FailedIssues int
	Duration     time.Duration
}

func (s *Summary) Add(r *RepositoryResult) {
	s.Results = append(s.Results, r)
	if r.Succeeded() {
		s.Succeeded++
	} else {
		s.Failed++
	}
	s.CopiedIssues += r.Copied
	s.FailedIssues += r.Failed
}

// Event converts the summary into its completion hook event.
func (s *Summary) Event() ReplicationEvent {
	ev := ReplicationEvent{
		Type:   HookCompleteSuccess,
		Copied: s.CopiedIssues,
		Failed: s.FailedIssues,
	}
	if s.Failed > 0 {
		ev.Type = HookCompleteFailure
	}
	return ev
}
