//go:build windows

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/sys/windows"
)

// shellCommand runs the command line through cmd.exe /c.
func shellCommand(ctx context.Context, executor Executor, commandLine string) *exec.Cmd {
	comspec := os.Getenv("COMSPEC")
	if comspec == "" {
		comspec = "cmd.exe"
	}

	cmd := executor.CommandContext(ctx, comspec, "/c", commandLine)
	attr := &windows.SysProcAttr{CreationFlags: windows.CREATE_NEW_PROCESS_GROUP}
	// cmd.exe does its own quote parsing: hand it the raw line wrapped in one
	// extra pair of quotes instead of letting os/exec escape the argument.
	if len(cmd.Args) == 3 && cmd.Args[1] == "/c" {
		attr.CmdLine = fmt.Sprintf(`%s /c "%s"`, comspec, commandLine)
	}
	cmd.SysProcAttr = attr
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		// Kill the whole tree; Process.Kill would only reach cmd.exe.
		kill := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid))
		if err := kill.Run(); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
	return cmd
}
