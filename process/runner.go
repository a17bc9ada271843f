// Package process runs a canonical UPX command line and classifies the
// outcome.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grovetools/upxgui/command"
	"github.com/grovetools/upxgui/errors"
	"github.com/grovetools/upxgui/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Status classifies a finished run.
type Status string

const (
	StatusSucceeded      Status = "succeeded"
	StatusFailed         Status = "failed"
	StatusExecutionError Status = "execution_error"
	StatusCanceled       Status = "canceled"
)

// Request is everything needed to execute one command.
type Request struct {
	// Command is the canonical command string to hand to the interpreter.
	Command string
	// ExecutablePath and InputFile are the raw paths, checked for existence
	// before anything is spawned.
	ExecutablePath string
	InputFile      string
	// Timeout bounds the run; zero means no limit.
	Timeout time.Duration
}

// Result is the outcome of a run that got as far as spawning (or trying to).
type Result struct {
	Command  string        `json:"command"`
	Status   Status        `json:"status"`
	ExitCode int           `json:"exit_code"`
	Output   string        `json:"output"`
	Duration time.Duration `json:"duration"`
	// Err carries the OS failure text for StatusExecutionError and the
	// cancellation cause for StatusCanceled.
	Err string `json:"error,omitempty"`
}

// Succeeded reports whether the command exited with code 0.
func (r *Result) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// Runner executes commands one at a time.
type Runner struct {
	executor command.Executor
	logger   *logrus.Entry
	running  atomic.Bool
	stat     func(string) (os.FileInfo, error)

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the exec.Cmd factory, e.g. with a spawn-counting probe.
func WithExecutor(e command.Executor) Option {
	return func(r *Runner) { r.executor = e }
}

// NewRunner returns a Runner spawning real processes unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		executor: &command.RealExecutor{},
		logger:   logging.NewLogger("process"),
		stat:     os.Stat,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Running reports whether a command is currently executing.
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Cancel terminates the in-flight command, if any, together with its
// process group.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

// Validate checks the preconditions of req without spawning anything.
func (r *Runner) Validate(req Request) error {
	if req.Command == "" {
		return errors.NoCommand()
	}

	exe := command.StripQuotes(req.ExecutablePath)
	if exe == "" {
		return errors.MissingExecutable(req.ExecutablePath)
	}
	if _, err := r.stat(exe); err != nil {
		return errors.MissingExecutable(exe)
	}

	if input := command.StripQuotes(req.InputFile); input != "" {
		if _, err := r.stat(input); err != nil {
			return errors.MissingInputFile(input)
		}
	}
	return nil
}

// Run validates req, runs it through the host command interpreter and waits
// for it to finish. Precondition failures and a second concurrent Run are
// returned as errors with nothing spawned. Every outcome after that point,
// including a failure to spawn, is a Result.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, errors.ExecutionInProgress()
	}
	defer r.running.Store(false)

	if err := r.Validate(req); err != nil {
		r.logger.WithError(err).Debug("Precondition failed, nothing spawned")
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	if timeout := command.ClampTimeout(req.Timeout); timeout > 0 {
		ctx, cancel = withTimeout(ctx, cancel, timeout)
	}
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.cancel = nil
		r.mu.Unlock()
		cancel()
	}()

	return r.execute(ctx, req.Command), nil
}

func withTimeout(ctx context.Context, parentCancel context.CancelFunc, timeout time.Duration) (context.Context, context.CancelFunc) {
	tctx, tcancel := context.WithTimeout(ctx, timeout)
	return tctx, func() {
		tcancel()
		parentCancel()
	}
}

func (r *Runner) execute(ctx context.Context, commandLine string) *Result {
	logger := r.logger.WithField("command", commandLine)

	var buf bytes.Buffer
	cmd := command.Shell(ctx, r.executor, commandLine)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	logger.Info("Executing command")
	err := cmd.Run()

	res := &Result{
		Command:  commandLine,
		Duration: time.Since(start),
		Output:   decodeOutput(buf.Bytes()),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	switch {
	case err == nil:
		res.Status = StatusSucceeded
		logger.WithField("duration", res.Duration).Info("Command succeeded")

	case ctx.Err() != nil:
		res.Status = StatusCanceled
		res.Err = errors.Canceled(commandLine, ctx.Err()).Error()
		logger.WithError(ctx.Err()).Warn("Command canceled")

	default:
		var exitErr *exec.ExitError
		if asExitError(err, &exitErr) {
			res.Status = StatusFailed
			res.ExitCode = exitErr.ExitCode()
			logger.WithError(errors.NonZeroExit(commandLine, exitErr)).
				WithField("exit_code", res.ExitCode).Warn("Command failed")
		} else {
			// Never started (or the wait itself failed): no exit code to report.
			res.Status = StatusExecutionError
			res.ExitCode = -1
			res.Err = err.Error()
			logger.WithError(errors.ExecutionError(commandLine, err)).Error("Command could not be executed")
		}
	}

	return res
}

func asExitError(err error, target **exec.ExitError) bool {
	exitErr, ok := err.(*exec.ExitError)
	if ok {
		*target = exitErr
	}
	return ok
}

// decodeOutput turns captured bytes into text, replacing every invalid UTF-8
// sequence with U+FFFD. It never fails.
func decodeOutput(raw []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		return string(bytes.ToValidUTF8(raw, []byte("\uFFFD")))
	}
	return string(out)
}

// Transcript renders a result the way the result pane shows it: the command,
// a rule, the captured output and a closing status line.
func Transcript(res *Result) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Executing: %s\n", res.Command)
	b.WriteString(TranscriptRule)
	b.WriteString("\n")
	b.WriteString(res.Output)
	if res.Output != "" && res.Output[len(res.Output)-1] != '\n' {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StatusLine(res))
	return b.String()
}

// TranscriptRule separates the command from its output.
const TranscriptRule = "--------------------------------------------------"

// StatusLine is the closing line of a transcript.
func StatusLine(res *Result) string {
	switch res.Status {
	case StatusSucceeded:
		return "Command succeeded"
	case StatusFailed:
		return fmt.Sprintf("Command failed (exit code: %d)", res.ExitCode)
	case StatusCanceled:
		return "Command canceled"
	default:
		return fmt.Sprintf("Execution error: %s", res.Err)
	}
}
