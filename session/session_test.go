package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/upxgui/config"
	"github.com/grovetools/upxgui/errors"
	"github.com/grovetools/upxgui/options"
	"github.com/grovetools/upxgui/process"
	"github.com/grovetools/upxgui/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, executable string) *Session {
	t.Helper()
	testutil.QuietLogs(t)
	store := config.NewStore(filepath.Join(t.TempDir(), "upx_config.ini"))
	require.NoError(t, store.Save(executable))
	return New(store, process.NewRunner())
}

func waitOutcome(t *testing.T, ch <-chan Outcome) Outcome {
	t.Helper()
	select {
	case out, ok := <-ch:
		require.True(t, ok, "channel closed without an outcome")
		_, open := <-ch
		assert.False(t, open, "channel must close after one outcome")
		return out
	case <-time.After(15 * time.Second):
		t.Fatal("no outcome delivered")
		return Outcome{}
	}
}

func TestNewLoadsExecutable(t *testing.T) {
	s := newTestSession(t, "/opt/upx/upx")

	assert.Equal(t, "/opt/upx/upx", s.ExecutablePath())
	assert.Equal(t, `"/opt/upx/upx"`, s.Preview())
	assert.Equal(t, StatePreviewReady, s.State())
}

func TestMutationsRebuildPreview(t *testing.T) {
	s := newTestSession(t, "upx")

	s.SetLevel(6, true)
	s.SetAux(options.Force, true)
	s.SetAux(options.KeepBackup, true)
	s.SetOutputEnabled(true)
	s.SetOutputPath("out.exe")
	s.SetInputFile("a.exe")
	assert.Equal(t, `"upx" -6 -f -k -o"out.exe" "a.exe"`, s.Preview())

	s.ToggleLevel(6)
	s.ToggleLevel(3)
	s.ToggleLevel(7)
	s.SetOutputEnabled(false)
	assert.Equal(t, `"upx" -3 -7 -f -k "a.exe"`, s.Preview())

	s.ToggleMode(options.Decompress)
	assert.Equal(t, `"upx" -3 -7 -d -f -k "a.exe"`, s.Preview())

	s.Reset()
	assert.Equal(t, `"upx"`, s.Preview())
	assert.True(t, s.Snapshot().IsZero())
	assert.Equal(t, StatePreviewReady, s.State())
}

func TestSetExecutablePath(t *testing.T) {
	s := newTestSession(t, "upx")

	require.NoError(t, s.SetExecutablePath(""))
	assert.Equal(t, "upx", s.ExecutablePath())
	assert.Equal(t, "upx", config.NewStore(s.ConfigPath()).Load())

	require.NoError(t, s.SetExecutablePath(`C:\tools\upx.exe`))
	assert.Equal(t, `"C:\tools\upx.exe"`, s.Preview())
	assert.Equal(t, `C:\tools\upx.exe`, config.NewStore(s.ConfigPath()).Load())
}

func TestSetExecutablePathWriteFailure(t *testing.T) {
	testutil.QuietLogs(t)
	target := filepath.Join(t.TempDir(), "upx_config.ini")
	require.NoError(t, os.Mkdir(target, 0755))
	s := New(config.NewStore(target), nil)

	err := s.SetExecutablePath("/usr/bin/upx")
	assert.True(t, errors.Is(err, errors.ErrCodeConfigWrite))
	assert.Equal(t, `"/usr/bin/upx"`, s.Preview())
}

func TestReloadExecutablePathDoesNotPersist(t *testing.T) {
	s := newTestSession(t, "upx")

	s.ReloadExecutablePath("/elsewhere/upx")
	assert.Equal(t, `"/elsewhere/upx"`, s.Preview())
	assert.Equal(t, "upx", config.NewStore(s.ConfigPath()).Load())

	s.ReloadExecutablePath("")
	assert.Equal(t, "/elsewhere/upx", s.ExecutablePath())
}

func TestDeliverPath(t *testing.T) {
	s := newTestSession(t, "upx")
	var sink PathSink = s

	require.NoError(t, sink.DeliverPath(TargetInputFile, "/tmp/a.exe"))
	require.NoError(t, sink.DeliverPath(TargetOutputFile, "/tmp/b.exe"))
	require.NoError(t, sink.DeliverPath(TargetInputFile, ""))

	snap := s.Snapshot()
	assert.Equal(t, "/tmp/a.exe", snap.InputFile)
	assert.Equal(t, "/tmp/b.exe", snap.Output.Path)
	assert.False(t, snap.Output.Enabled)

	require.NoError(t, sink.DeliverPath(TargetExecutable, "/usr/local/bin/upx"))
	assert.Equal(t, "/usr/local/bin/upx", config.NewStore(s.ConfigPath()).Load())

	err := sink.DeliverPath(Target(42), "x")
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestExecuteMissingExecutable(t *testing.T) {
	s := newTestSession(t, filepath.Join(t.TempDir(), "no-upx"))

	out := waitOutcome(t, s.Execute(context.Background()))
	assert.Nil(t, out.Result)
	assert.Equal(t, errors.ErrCodeMissingExecutable, errors.GetCode(out.Err))
	assert.Equal(t, StateExecutionError, out.State)
	assert.Equal(t, StateExecutionError, s.State())
	assert.Contains(t, out.Transcript(), "UPX executable not found")

	s.Acknowledge()
	assert.Equal(t, StateIdle, s.State())
}

func TestExecuteMissingInputFile(t *testing.T) {
	exe := testutil.InstallFakeUPX(t)
	s := newTestSession(t, exe)
	s.SetInputFile(filepath.Join(t.TempDir(), "gone.exe"))

	out := waitOutcome(t, s.Execute(context.Background()))
	assert.Equal(t, errors.ErrCodeMissingInputFile, errors.GetCode(out.Err))
}

func TestExecuteSucceeded(t *testing.T) {
	exe := testutil.InstallFakeUPX(t)
	input := filepath.Join(t.TempDir(), "a.exe")
	require.NoError(t, os.WriteFile(input, []byte("MZ"), 0644))

	s := newTestSession(t, exe)
	s.SetLevel(9, true)
	s.SetInputFile(input)

	out := waitOutcome(t, s.Execute(context.Background()))
	require.NoError(t, out.Err)
	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, 0, out.Result.ExitCode)
	assert.Contains(t, out.Result.Output, "upx-fake -9 "+input)
	assert.Contains(t, out.Transcript(), "Command succeeded")

	last, ok := s.LastOutcome()
	require.True(t, ok)
	assert.Equal(t, out.Result, last.Result)

	// Any mutation after completion starts a new build cycle.
	s.SetLevel(1, true)
	assert.Equal(t, StatePreviewReady, s.State())
}

func TestExecuteFailed(t *testing.T) {
	exe := testutil.InstallFakeUPX(t)
	s := newTestSession(t, exe)
	s.SetMode(options.Test, true)

	out := waitOutcome(t, s.Execute(context.Background()))
	require.NoError(t, out.Err)
	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, 3, out.Result.ExitCode)
	assert.Contains(t, out.Result.Output, "testing failed")
	assert.Contains(t, out.Transcript(), "Command failed (exit code: 3)")
}

func TestExecuteRejectsSecondTriggerAndCancels(t *testing.T) {
	exe := testutil.InstallFakeUPX(t)
	s := newTestSession(t, exe)
	s.SetMode(options.List, true)

	first := s.Execute(context.Background())
	assert.Equal(t, StateExecuting, s.State())

	second := waitOutcome(t, s.Execute(context.Background()))
	assert.Equal(t, errors.ErrCodeExecutionInProgress, errors.GetCode(second.Err))
	assert.Equal(t, StateExecuting, s.State())

	s.Cancel()

	out := waitOutcome(t, first)
	require.NoError(t, out.Err)
	assert.Equal(t, StateCanceled, out.State)
	assert.Equal(t, StateCanceled, s.State())
}

func TestCancelRightAfterExecute(t *testing.T) {
	exe := testutil.InstallFakeUPX(t)
	s := newTestSession(t, exe)
	s.SetMode(options.List, true)

	for i := 0; i < 5; i++ {
		start := time.Now()
		ch := s.Execute(context.Background())
		s.Cancel()

		out := waitOutcome(t, ch)
		require.NoError(t, out.Err)
		assert.Equal(t, StateCanceled, out.State, "run %d", i)
		assert.Less(t, time.Since(start), 10*time.Second, "run %d waited for the child", i)
		s.Acknowledge()
	}
}

func TestCancelWithoutRunIsNoop(t *testing.T) {
	s := newTestSession(t, "upx")
	s.Cancel()
	assert.Equal(t, StatePreviewReady, s.State())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "preview-ready", StatePreviewReady.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateExecuting.Terminal())
	assert.Equal(t, "executable", TargetExecutable.String())
}
