// Package session ties the option model, the config store and the process
// runner together and keeps the command preview current.
//
// Every mutation goes through the Session so the preview is rebuilt
// synchronously after it. Execution happens off the caller's goroutine and is
// reported on a channel that delivers exactly one Outcome.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/grovetools/upxgui/command"
	"github.com/grovetools/upxgui/config"
	"github.com/grovetools/upxgui/errors"
	"github.com/grovetools/upxgui/logging"
	"github.com/grovetools/upxgui/options"
	"github.com/grovetools/upxgui/process"
	"github.com/sirupsen/logrus"
)

// Outcome is the single value delivered by Execute. Exactly one of Result and
// Err is set: Err for runs rejected before anything was spawned.
type Outcome struct {
	State  State
	Result *process.Result
	Err    error
}

// Transcript is the text shown in the result pane for this outcome.
func (o Outcome) Transcript() string {
	if o.Result != nil {
		return process.Transcript(o.Result)
	}
	if o.Err != nil {
		return "Error: " + o.Err.Error()
	}
	return ""
}

// Session is the single per-process state container.
type Session struct {
	model  *options.Model
	store  *config.Store
	runner *process.Runner
	logger *logrus.Entry

	mu         sync.Mutex
	executable string
	preview    string
	state      State
	timeout    time.Duration
	last       *Outcome
	cancel     context.CancelFunc
}

// New loads the executable path from store and builds the initial preview.
func New(store *config.Store, runner *process.Runner) *Session {
	if runner == nil {
		runner = process.NewRunner()
	}
	s := &Session{
		model:  options.NewModel(),
		store:  store,
		runner: runner,
		logger: logging.NewLogger("session"),
	}
	s.executable = store.Load()
	s.mu.Lock()
	s.rebuildLocked()
	s.mu.Unlock()
	return s
}

// rebuildLocked recomputes the preview from scratch. s.mu must be held.
func (s *Session) rebuildLocked() {
	if s.state == StateExecuting {
		// The running command keeps its own copy; the preview catches up now
		// and the state stays Executing until completion.
		s.preview = command.Build(s.model.Snapshot(), s.executable)
		return
	}
	s.state = StateBuilding
	s.preview = command.Build(s.model.Snapshot(), s.executable)
	s.state = StatePreviewReady
	s.logger.WithField("preview", s.preview).Debug("Preview rebuilt")
}

func (s *Session) mutate(fn func(m *options.Model)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.model)
	s.rebuildLocked()
}

func (s *Session) SetLevel(l options.Level, on bool) {
	s.mutate(func(m *options.Model) { m.SetLevel(l, on) })
}

func (s *Session) ToggleLevel(l options.Level) {
	s.mutate(func(m *options.Model) { m.ToggleLevel(l) })
}

func (s *Session) SetMode(f options.ModeFlag, on bool) {
	s.mutate(func(m *options.Model) { m.SetMode(f, on) })
}

func (s *Session) ToggleMode(f options.ModeFlag) {
	s.mutate(func(m *options.Model) { m.ToggleMode(f) })
}

func (s *Session) SetAux(f options.AuxFlag, on bool) {
	s.mutate(func(m *options.Model) { m.SetAux(f, on) })
}

func (s *Session) ToggleAux(f options.AuxFlag) {
	s.mutate(func(m *options.Model) { m.ToggleAux(f) })
}

func (s *Session) SetOutputEnabled(enabled bool) {
	s.mutate(func(m *options.Model) { m.SetOutputEnabled(enabled) })
}

func (s *Session) SetOutputPath(path string) {
	s.mutate(func(m *options.Model) { m.SetOutputPath(path) })
}

func (s *Session) SetInputFile(path string) {
	s.mutate(func(m *options.Model) { m.SetInputFile(path) })
}

// Reset clears every option, the output spec and the input file in one step.
// The executable path is configuration, not selection state, and survives.
func (s *Session) Reset() {
	s.mutate(func(m *options.Model) { m.Reset() })
}

// SetTimeout bounds future runs. Zero disables the limit.
func (s *Session) SetTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = command.ClampTimeout(d)
}

// SetExecutablePath persists path and rebuilds the preview. An empty path is
// ignored. When the write fails the new path still applies to this session
// and the ConfigWrite error is returned.
func (s *Session) SetExecutablePath(path string) error {
	if path == "" {
		return nil
	}
	err := s.store.Save(path)
	if err != nil {
		s.logger.WithError(err).Warn("Executable path not persisted")
	}
	s.applyExecutablePath(path)
	return err
}

// ReloadExecutablePath adopts a path that was changed on disk by someone
// else. Nothing is written back.
func (s *Session) ReloadExecutablePath(path string) {
	if path == "" {
		return
	}
	s.mu.Lock()
	same := path == s.executable
	s.mu.Unlock()
	if same {
		return
	}
	s.logger.WithField("path", path).Info("Executable path reloaded")
	s.applyExecutablePath(path)
}

func (s *Session) applyExecutablePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executable = path
	s.rebuildLocked()
}

// DeliverPath implements PathSink.
func (s *Session) DeliverPath(target Target, path string) error {
	if path == "" {
		return nil
	}
	switch target {
	case TargetInputFile:
		s.SetInputFile(path)
	case TargetOutputFile:
		s.SetOutputPath(path)
	case TargetExecutable:
		return s.SetExecutablePath(path)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown path target").
			WithDetail("target", int(target))
	}
	return nil
}

// Snapshot returns a copy of the current options.
func (s *Session) Snapshot() options.Snapshot {
	return s.model.Snapshot()
}

// ExecutablePath returns the executable path in effect.
func (s *Session) ExecutablePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executable
}

// ConfigPath returns the file the executable path is persisted to.
func (s *Session) ConfigPath() string {
	return s.store.Path()
}

// Preview returns the canonical command for the current state.
func (s *Session) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastOutcome returns the outcome of the most recent completed execution.
func (s *Session) LastOutcome() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Outcome{}, false
	}
	return *s.last, true
}

// Execute runs the current preview in the background. The returned channel
// receives exactly one Outcome and is then closed. A trigger while a run is
// in flight is rejected with ExecutionInProgress and leaves the running
// command untouched.
func (s *Session) Execute(ctx context.Context) <-chan Outcome {
	ch := make(chan Outcome, 1)

	s.mu.Lock()
	if s.state == StateExecuting {
		s.mu.Unlock()
		ch <- Outcome{State: StateExecuting, Err: errors.ExecutionInProgress()}
		close(ch)
		return ch
	}
	snap := s.model.Snapshot()
	req := process.Request{
		Command:        s.preview,
		ExecutablePath: s.executable,
		InputFile:      snap.InputFile,
		Timeout:        s.timeout,
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateExecuting
	s.mu.Unlock()

	s.logger.WithField("command", req.Command).Debug("Execution triggered")

	go func() {
		defer close(ch)
		res, err := s.runner.Run(runCtx, req)
		cancel()

		out := Outcome{Result: res, Err: err}
		if err != nil {
			out.State = StateExecutionError
		} else {
			out.State = stateFor(res.Status)
		}

		s.mu.Lock()
		s.state = out.State
		s.last = &out
		s.cancel = nil
		s.mu.Unlock()

		ch <- out
	}()

	return ch
}

// Run is Execute for callers that want to block.
func (s *Session) Run(ctx context.Context) Outcome {
	return <-s.Execute(ctx)
}

// Cancel terminates the in-flight run, if any. A cancel that arrives before
// the command has been spawned still takes effect: nothing is started and the
// outcome is Canceled.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Acknowledge returns a finished session to Idle once its outcome has been
// shown. It is a no-op in any other state.
func (s *Session) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Terminal() {
		s.state = StateIdle
	}
}
