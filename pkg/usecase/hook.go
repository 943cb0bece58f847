package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

type hookExecutor struct {
	config  *model.Config
	actions map[string]interfaces.ActionExecutor
}

type HookExecutorOption func(*hookExecutor)

// WithActionExecutor registers or replaces the executor for an action type.
func WithActionExecutor(actionType string, executor interfaces.ActionExecutor) HookExecutorOption {
	return func(h *hookExecutor) {
		h.actions[actionType] = executor
	}
}

// NewHookExecutor creates a HookExecutor for the hooks section of config. A nil
// config runs nothing.
func NewHookExecutor(config *model.Config, opts ...HookExecutorOption) interfaces.HookExecutor {
	h := &hookExecutor{
		config: config,
		actions: map[string]interfaces.ActionExecutor{
			"slack":   NewSlackAction(),
			"command": NewCommandAction(),
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute runs the actions configured for event one after another. A failing
// action is logged and does not stop the remaining ones.
func (h *hookExecutor) Execute(ctx context.Context, event model.ReplicationEvent) error {
	logger := ctxlog.From(ctx)

	for _, action := range h.getActionsForEvent(event.Type) {
		if err := h.executeAction(ctx, action, event); err != nil {
			logger.Warn("Failed to execute hook action",
				slog.String("type", action.Type),
				slog.String("event", string(event.Type)),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (h *hookExecutor) getActionsForEvent(eventType model.HookEvent) []model.Action {
	if h.config == nil {
		return nil
	}

	switch eventType {
	case model.HookRepositorySuccess:
		return h.config.Hooks.RepositorySuccess
	case model.HookRepositoryFailure:
		return h.config.Hooks.RepositoryFailure
	case model.HookCompleteSuccess:
		return h.config.Hooks.CompleteSuccess
	case model.HookCompleteFailure:
		return h.config.Hooks.CompleteFailure
	default:
		return nil
	}
}

func (h *hookExecutor) executeAction(ctx context.Context, action model.Action, event model.ReplicationEvent) error {
	executor, ok := h.actions[action.Type]
	if !ok {
		ctxlog.From(ctx).Warn("Unknown action type",
			slog.String("type", action.Type),
		)
		return nil
	}

	return executor.Execute(ctx, action, event)
}
