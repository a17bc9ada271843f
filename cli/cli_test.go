package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/grovetools/upxgui/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "missing executable",
			err:  errors.MissingExecutable("/opt/upx"),
			want: []string{"UPX executable not found: /opt/upx", "upxgui config set"},
		},
		{
			name: "missing input",
			err:  errors.MissingInputFile("a.exe"),
			want: []string{"Input file not found: a.exe"},
		},
		{
			name: "config write",
			err:  errors.ConfigWrite("/etc/upx_config.ini", fmt.Errorf("permission denied")),
			want: []string{"Could not save configuration to /etc/upx_config.ini", "--config"},
		},
		{
			name: "in progress",
			err:  errors.ExecutionInProgress(),
			want: []string{"already executing"},
		},
		{
			name: "no command",
			err:  errors.NoCommand(),
			want: []string{"no command to execute"},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}

			returned := h.Handle(tt.err)
			assert.Equal(t, tt.err, returned)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			assert.NotContains(t, buf.String(), "Error details")
		})
	}
}

func TestErrorHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}

	h.Handle(errors.MissingInputFile("a.exe"))
	assert.Contains(t, buf.String(), "Error details")
	assert.Contains(t, buf.String(), `"code": "MISSING_INPUT_FILE"`)
	assert.NoError(t, h.Handle(nil))
}

func TestStandardCommandFlags(t *testing.T) {
	root := NewStandardCommand("upxgui", "test root")
	var got CommandOptions
	sub := &cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = GetOptions(cmd)
			return nil
		},
	}
	root.AddCommand(sub)
	root.SetArgs([]string{"sub", "--json", "-v", "-c", "/tmp/x.ini"})

	require.NoError(t, root.Execute())
	assert.Equal(t, CommandOptions{ConfigFile: "/tmp/x.ini", Verbose: true, JSONOutput: true}, got)
}

func TestRenderHelp(t *testing.T) {
	root := NewStandardCommand("upxgui", "Build and run UPX commands")
	root.AddCommand(&cobra.Command{Use: "preview", Short: "Print the command", Run: func(*cobra.Command, []string) {}})
	root.Flags().String("output", "", "Output file")

	var buf bytes.Buffer
	renderHelp(&buf, root, 60)
	out := buf.String()

	assert.Contains(t, out, "UPXGUI")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "preview")
	assert.Contains(t, out, "--output")
	assert.Contains(t, out, "-c, --config")
	assert.Contains(t, out, `Use "upxgui [command] --help"`)
}

func TestWrapText(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	wrapped := wrapText(text, 10)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, text, strings.Join(strings.Fields(wrapped), " "))

	assert.Equal(t, "short\nlines", wrapText("short\nlines", 10))
}

func TestVersionCommandJSON(t *testing.T) {
	root := NewStandardCommand("upxgui", "root")
	root.AddCommand(NewVersionCommand("upxgui"))

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), `"version": "dev"`)
	assert.Contains(t, buf.String(), `"goVersion"`)
}
