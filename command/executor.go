package command

import (
	"context"
	"os/exec"
	"time"
)

const (
	// MaxTimeout is the maximum allowed run timeout
	MaxTimeout = 2 * time.Hour

	// waitDelay bounds how long Wait blocks on output pipes held open by
	// grandchildren after the shell itself has been killed.
	waitDelay = 2 * time.Second
)

// Executor creates exec.Cmd instances. This abstraction allows for dependency
// injection, enabling test-specific command creation logic (e.g. counting
// spawns or redirecting to a helper process) without modifying production code.
type Executor interface {
	// CommandContext creates a new context-aware exec.Cmd instance.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor is the production implementation of the Executor interface,
// which uses the standard os/exec package to create commands.
type RealExecutor struct{}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// Shell wraps a canonical command string so that it runs through the host
// command interpreter in its own process group. Cancelling ctx terminates the
// interpreter together with everything it started.
func Shell(ctx context.Context, executor Executor, commandLine string) *exec.Cmd {
	if executor == nil {
		executor = &RealExecutor{}
	}
	cmd := shellCommand(ctx, executor, commandLine)
	cmd.WaitDelay = waitDelay
	return cmd
}

// ClampTimeout caps a requested timeout at MaxTimeout. Zero means no timeout.
func ClampTimeout(timeout time.Duration) time.Duration {
	if timeout < 0 {
		return 0
	}
	if timeout > MaxTimeout {
		return MaxTimeout
	}
	return timeout
}
