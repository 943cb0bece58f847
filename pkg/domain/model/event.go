package model

// HookEvent represents a type of replication event
type HookEvent string

const (
	HookRepositorySuccess HookEvent = "repository_success"
	HookRepositoryFailure HookEvent = "repository_failure"
	HookCompleteSuccess   HookEvent = "complete_success"
	HookCompleteFailure   HookEvent = "complete_failure"
)

// ReplicationEvent contains information about a replication event. For complete_*
// events Repository and Fork are empty and the counts are run totals.
type ReplicationEvent struct {
	Type       HookEvent
	Repository string
	Fork       string
	Copied     int
	Failed     int
}
