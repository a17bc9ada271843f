//go:build !windows

package command

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// shellCommand runs the command line through /bin/sh -c.
func shellCommand(ctx context.Context, executor Executor, commandLine string) *exec.Cmd {
	cmd := executor.CommandContext(ctx, "/bin/sh", "-c", commandLine)
	// New process group so cancellation reaches every descendant of the shell.
	cmd.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
	return cmd
}
