package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/upxgui/errors"
	"github.com/grovetools/upxgui/options"
	"github.com/grovetools/upxgui/session"
	"github.com/grovetools/upxgui/util/pathutil"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.resizeResult()
		return m, nil

	case outcomeMsg:
		return m, m.handleOutcome(msg.outcome)

	case configChangedMsg:
		m.session.ReloadExecutablePath(msg.path)
		m.setStatus("Executable path reloaded from "+m.session.ConfigPath(), false)
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.editing {
			return m, m.updateEditing(msg)
		}
		return m, m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.running {
			m.session.Cancel()
		}
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return nil

	case key.Matches(msg, m.keys.Execute):
		return m.execute()

	case key.Matches(msg, m.keys.CancelRun):
		if m.running {
			m.session.Cancel()
			m.setStatus("Canceling...", false)
		}
		return nil

	case key.Matches(msg, m.keys.PageUp):
		m.result.HalfViewUp()
		return nil

	case key.Matches(msg, m.keys.PageDown):
		m.result.HalfViewDown()
		return nil
	}

	if m.running {
		// Options are frozen until the run completes.
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.items) - 1
	case key.Matches(msg, m.keys.FocusNext):
		m.jumpGroup(1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.jumpGroup(-1)

	case key.Matches(msg, m.keys.Level):
		if l, err := options.ParseLevel(msg.String()); err == nil {
			m.session.ToggleLevel(l)
		}

	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Confirm):
		return m.activate()

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.setStatus("Options reset", false)
	}
	return nil
}

// jumpGroup moves the cursor to the first item of the next or previous kind.
func (m *Model) jumpGroup(dir int) {
	kind := m.current().kind
	i := m.cursor
	for {
		i += dir
		if i < 0 || i >= len(m.items) {
			return
		}
		if m.items[i].kind != kind {
			break
		}
	}
	if dir < 0 {
		// Land on the first item of the previous group.
		k := m.items[i].kind
		for i > 0 && m.items[i-1].kind == k {
			i--
		}
	}
	m.cursor = i
}

// activate toggles the item under the cursor, or starts editing a path field.
func (m *Model) activate() tea.Cmd {
	it := m.current()
	switch it.kind {
	case kindLevel:
		m.session.ToggleLevel(it.level)
	case kindMode:
		m.session.ToggleMode(it.mode)
	case kindAux:
		m.session.ToggleAux(it.aux)
	case kindOutputToggle:
		m.session.SetOutputEnabled(!m.session.Snapshot().Output.Enabled)
	case kindPath:
		m.editing = true
		m.input.SetValue(m.pathValue(it.target))
		m.input.CursorEnd()
		m.input.Placeholder = it.label
		m.input.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return nil
	case tea.KeyEnter:
		m.commitPath(m.current().target, strings.TrimSpace(m.input.Value()))
		m.stopEditing()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

// commitPath hands a confirmed path to the session after expanding ~ and
// environment variables. Clearing an input or output field is a plain setter
// call; an empty executable path is ignored.
func (m *Model) commitPath(target session.Target, value string) {
	if value == "" {
		switch target {
		case session.TargetInputFile:
			m.session.SetInputFile("")
		case session.TargetOutputFile:
			m.session.SetOutputPath("")
		}
		return
	}

	value = pathutil.ExpandOrKeep(value)
	if err := m.session.DeliverPath(target, value); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if target == session.TargetExecutable {
		m.setStatus("Executable saved to "+m.session.ConfigPath(), false)
	}
}

// execute starts a run and returns the command that waits for its outcome.
func (m *Model) execute() tea.Cmd {
	ch := m.session.Execute(m.ctx)
	if !m.running {
		m.running = true
		m.setStatus("Executing...", false)
	}
	return func() tea.Msg {
		return outcomeMsg{outcome: <-ch}
	}
}

func (m *Model) handleOutcome(out session.Outcome) tea.Cmd {
	if errors.Is(out.Err, errors.ErrCodeExecutionInProgress) {
		// The in-flight run is untouched; only report the rejection.
		m.setStatus(out.Err.Error(), true)
		return nil
	}

	m.running = false
	m.result.SetContent(out.Transcript())
	m.result.GotoBottom()

	switch out.State {
	case session.StateSucceeded:
		m.setStatus("Command succeeded", false)
	case session.StateCanceled:
		m.setStatus("Command canceled", true)
	case session.StateFailed:
		m.setStatus("Command failed", true)
	default:
		m.setStatus("Command not executed", true)
	}
	m.session.Acknowledge()
	return nil
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.isError = isError
}
