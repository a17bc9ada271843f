package command

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/upxgui/options"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		exe   string
		setup func(m *options.Model)
		want  string
	}{
		{
			name:  "executable and input only",
			exe:   `C:\tools\upx.exe`,
			setup: func(m *options.Model) { m.SetInputFile("a.exe") },
			want:  `"C:\tools\upx.exe" "a.exe"`,
		},
		{
			name: "level, aux flags, output and input",
			exe:  "upx",
			setup: func(m *options.Model) {
				m.SetLevel(6, true)
				m.SetAux(options.KeepBackup, true)
				m.SetAux(options.Force, true)
				m.SetOutputEnabled(true)
				m.SetOutputPath("out.exe")
				m.SetInputFile("a.exe")
			},
			want: `"upx" -6 -f -k -o"out.exe" "a.exe"`,
		},
		{
			name: "multiple levels ascending",
			exe:  "upx",
			setup: func(m *options.Model) {
				m.SetLevel(7, true)
				m.SetLevel(3, true)
			},
			want: `"upx" -3 -7`,
		},
		{
			name:  "empty state",
			exe:   "upx",
			setup: func(m *options.Model) {},
			want:  `"upx"`,
		},
		{
			name: "output enabled without path is omitted",
			exe:  "upx",
			setup: func(m *options.Model) {
				m.SetOutputEnabled(true)
			},
			want: `"upx"`,
		},
		{
			name: "output path without enable is omitted",
			exe:  "upx",
			setup: func(m *options.Model) {
				m.SetOutputPath("out.exe")
			},
			want: `"upx"`,
		},
		{
			name: "all flags in canonical order",
			exe:  "upx",
			setup: func(m *options.Model) {
				for _, f := range options.AuxFlags() {
					m.SetAux(f, true)
				}
				for _, f := range options.ModeFlags() {
					m.SetMode(f, true)
				}
				m.SetLevel(9, true)
				m.SetLevel(1, true)
			},
			want: `"upx" -1 -9 -d -l -t -V -h -L -q -v -f -k`,
		},
		{
			name: "paths with spaces are quoted, embedded quotes are not escaped",
			exe:  "/opt/my tools/upx",
			setup: func(m *options.Model) {
				m.SetInputFile(`my "app".exe`)
			},
			want: `"/opt/my tools/upx" "my "app".exe"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := options.NewModel()
			tt.setup(m)
			got := Build(m.Snapshot(), tt.exe)
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every subset of toggles yields exactly its tokens in canonical order, no
// matter which order the toggles were flipped in.
func TestBuildOrderIndependent(t *testing.T) {
	type toggle struct {
		token string
		apply func(m *options.Model)
	}
	var all []toggle
	for _, l := range options.Levels() {
		l := l
		all = append(all, toggle{l.Token(), func(m *options.Model) { m.SetLevel(l, true) }})
	}
	for _, f := range options.ModeFlags() {
		f := f
		all = append(all, toggle{f.Token(), func(m *options.Model) { m.SetMode(f, true) }})
	}
	for _, f := range options.AuxFlags() {
		f := f
		all = append(all, toggle{f.Token(), func(m *options.Model) { m.SetAux(f, true) }})
	}

	// Deterministic sample of subsets: every mask stepping by a prime.
	for mask := uint32(0); mask < 1<<len(all); mask += 7919 {
		var wantTokens []string
		forward := options.NewModel()
		reverse := options.NewModel()
		for i, tg := range all {
			if mask&(1<<i) != 0 {
				wantTokens = append(wantTokens, tg.token)
				tg.apply(forward)
			}
		}
		for i := len(all) - 1; i >= 0; i-- {
			if mask&(1<<i) != 0 {
				all[i].apply(reverse)
			}
		}

		want := strings.Join(append([]string{`"upx"`}, wantTokens...), " ")
		if got := Build(forward.Snapshot(), "upx"); got != want {
			t.Fatalf("mask %b: Build() = %q, want %q", mask, got, want)
		}
		if got := Build(reverse.Snapshot(), "upx"); got != want {
			t.Fatalf("mask %b reversed: Build() = %q, want %q", mask, got, want)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	m := options.NewModel()
	m.SetLevel(4, true)
	m.SetMode(options.Test, true)
	m.SetInputFile("x.bin")
	snap := m.Snapshot()

	first := Build(snap, "upx")
	second := Build(snap, "upx")
	if first != second {
		t.Errorf("Build() not idempotent: %q vs %q", first, second)
	}
}

func TestBuildAfterReset(t *testing.T) {
	m := options.NewModel()
	initial := Build(m.Snapshot(), "upx")

	m.SetLevel(2, true)
	m.SetMode(options.List, true)
	m.SetAux(options.Verbose, true)
	m.SetOutputEnabled(true)
	m.SetOutputPath("o")
	m.SetInputFile("i")
	m.Reset()

	if got := Build(m.Snapshot(), "upx"); got != initial {
		t.Errorf("Build() after Reset = %q, want %q", got, initial)
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"C:\upx.exe"`, `C:\upx.exe`},
		{`upx`, `upx`},
		{`""a b""`, `a b`},
		{``, ``},
	}
	for _, tt := range tests {
		if got := StripQuotes(tt.input); got != tt.want {
			t.Errorf("StripQuotes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClampTimeout(t *testing.T) {
	if got := ClampTimeout(20 * time.Hour); got != MaxTimeout {
		t.Errorf("expected timeout to be capped at %v, got %v", MaxTimeout, got)
	}
	if got := ClampTimeout(-time.Second); got != 0 {
		t.Errorf("negative timeout should disable, got %v", got)
	}
	if got := ClampTimeout(time.Minute); got != time.Minute {
		t.Errorf("expected 1m, got %v", got)
	}
}

func TestShellUsesInjectedExecutor(t *testing.T) {
	probe := &countingExecutor{}
	cmd := Shell(context.Background(), probe, `"upx" -V`)
	if probe.calls != 1 {
		t.Fatalf("expected 1 CommandContext call, got %d", probe.calls)
	}
	if !strings.Contains(strings.Join(cmd.Args, " "), `"upx" -V`) {
		t.Errorf("command line not passed to interpreter: %v", cmd.Args)
	}
	if cmd.Cancel == nil {
		t.Error("expected a process-group cancel function")
	}
}

type countingExecutor struct {
	RealExecutor
	calls int
}

func (c *countingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	c.calls++
	return c.RealExecutor.CommandContext(ctx, name, args...)
}
