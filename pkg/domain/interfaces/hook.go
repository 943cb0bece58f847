package interfaces

import (
	"context"

	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

// HookExecutor executes hooks based on replication events
type HookExecutor interface {
	Execute(ctx context.Context, event model.ReplicationEvent) error
}

// ActionExecutor executes a specific action
type ActionExecutor interface {
	Execute(ctx context.Context, action model.Action, event model.ReplicationEvent) error
}
