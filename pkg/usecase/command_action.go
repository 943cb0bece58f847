package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

const defaultCommandTimeout = 30 * time.Second

type commandAction struct{}

// NewCommandAction creates an ActionExecutor running a local command.
func NewCommandAction() interfaces.ActionExecutor {
	return &commandAction{}
}

func (c *commandAction) Execute(ctx context.Context, action model.Action, event model.ReplicationEvent) error {
	logger := ctxlog.From(ctx)

	cmdAction, err := action.ToCommandAction()
	if err != nil {
		return goerr.Wrap(err, "failed to parse command action")
	}

	env := append(os.Environ(), eventEnv(event)...)
	env = append(env, cmdAction.Env...)

	timeout := cmdAction.Timeout
	if timeout == 0 {
		timeout = defaultCommandTimeout
	}

	if err := c.executeCommand(ctx, cmdAction, env, timeout); err != nil {
		return goerr.Wrap(err, "command execution failed")
	}

	logger.Debug("Command executed successfully",
		slog.String("command", cmdAction.Command),
		slog.Any("args", cmdAction.Args),
	)
	return nil
}

// eventEnv exposes the event to the command as ISSUEFORK_* variables.
func eventEnv(event model.ReplicationEvent) []string {
	return []string{
		"ISSUEFORK_EVENT_TYPE=" + string(event.Type),
		"ISSUEFORK_REPOSITORY=" + event.Repository,
		"ISSUEFORK_FORK=" + event.Fork,
		"ISSUEFORK_COPIED=" + strconv.Itoa(event.Copied),
		"ISSUEFORK_FAILED=" + strconv.Itoa(event.Failed),
	}
}

func (c *commandAction) executeCommand(ctx context.Context, cmdAction *model.CommandAction, env []string, timeout time.Duration) error {
	logger := ctxlog.From(ctx)

	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lookup := envLookup(env)
	command := expandPath(os.Expand(cmdAction.Command, lookup))
	args := make([]string, len(cmdAction.Args))
	for i, arg := range cmdAction.Args {
		args[i] = os.Expand(arg, lookup)
	}

	cmd := exec.CommandContext(cmdCtx, command, args...) // #nosec G204 - command is from config file
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Executing command",
		slog.String("command", command),
		slog.Any("args", args),
		slog.Duration("timeout", timeout),
	)

	err := cmd.Run()

	if stdout.Len() > 0 {
		logger.Debug("Command stdout",
			slog.String("command", command),
			slog.String("stdout", stdout.String()),
		)
	}

	if err != nil {
		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			return goerr.New(fmt.Sprintf("command timed out after %s", timeout))
		}
		errMsg := fmt.Sprintf("command failed: %v", err)
		if stderr.Len() > 0 {
			errMsg += fmt.Sprintf(", stderr: %s", strings.TrimSpace(stderr.String()))
		}
		return goerr.New(errMsg)
	}

	return nil
}

// envLookup resolves variables against env, the environment the command runs
// with. Later entries win, as they do for the child process. Names not in env
// are left as ${name} for the command itself to interpret.
func envLookup(env []string) func(string) string {
	values := make(map[string]string, len(env))
	for _, kv := range env {
		if key, value, ok := strings.Cut(kv, "="); ok {
			values[key] = value
		}
	}
	return func(key string) string {
		if value, ok := values[key]; ok {
			return value
		}
		return "${" + key + "}"
	}
}

// expandPath expands a leading ~/ in path.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
