package app

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/upxgui/options"
	"github.com/grovetools/upxgui/session"
	"github.com/grovetools/upxgui/tui/components/help"
)

// HomepageURL is shown next to the executable setting.
const HomepageURL = "https://upx.github.io/"

type itemKind int

const (
	kindLevel itemKind = iota
	kindMode
	kindAux
	kindOutputToggle
	kindPath
)

// item is one selectable row of the options list.
type item struct {
	kind   itemKind
	level  options.Level
	mode   options.ModeFlag
	aux    options.AuxFlag
	target session.Target
	label  string
}

func buildItems() []item {
	var items []item
	for _, l := range options.Levels() {
		items = append(items, item{kind: kindLevel, level: l, label: l.Token()})
	}
	for _, f := range options.ModeFlags() {
		items = append(items, item{kind: kindMode, mode: f, label: f.Label()})
	}
	for _, f := range options.AuxFlags() {
		items = append(items, item{kind: kindAux, aux: f, label: f.Label()})
	}
	items = append(items,
		item{kind: kindOutputToggle, label: "Output file (" + options.OutputTokenPrefix + ")"},
		item{kind: kindPath, target: session.TargetOutputFile, label: "Output path"},
		item{kind: kindPath, target: session.TargetInputFile, label: "Input file"},
		item{kind: kindPath, target: session.TargetExecutable, label: "UPX executable"},
	)
	return items
}

// Model is the main screen: option toggles, path fields, the live command
// preview and the result of the last run.
type Model struct {
	ctx     context.Context
	session *session.Session
	keys    KeyMap
	help    help.Model

	items  []item
	cursor int

	editing bool
	input   textinput.Model

	result  viewport.Model
	status  string
	isError bool
	running bool

	width  int
	height int
}

// New creates the model for sess. ctx bounds every run started from the
// screen.
func New(ctx context.Context, sess *session.Session) *Model {
	keys := NewKeyMap()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096

	h := help.New(keys)
	h.Title = "UPX GUI"

	return &Model{
		ctx:     ctx,
		session: sess,
		keys:    keys,
		help:    h,
		items:   buildItems(),
		input:   ti,
		result:  viewport.New(0, 0),
		status:  "Ready",
	}
}

// Init is the first command that will be executed.
func (m *Model) Init() tea.Cmd {
	return nil
}

// outcomeMsg carries the single outcome of a run back into the update loop.
type outcomeMsg struct {
	outcome session.Outcome
}

// configChangedMsg reports an executable path changed on disk.
type configChangedMsg struct {
	path string
}

// Running reports whether a run started from this screen is in flight.
func (m *Model) Running() bool {
	return m.running
}

func (m *Model) current() item {
	return m.items[m.cursor]
}

func (m *Model) pathValue(target session.Target) string {
	snap := m.session.Snapshot()
	switch target {
	case session.TargetInputFile:
		return snap.InputFile
	case session.TargetOutputFile:
		return snap.Output.Path
	case session.TargetExecutable:
		return m.session.ExecutablePath()
	}
	return ""
}

func (m *Model) checked(it item, snap options.Snapshot) bool {
	switch it.kind {
	case kindLevel:
		return snap.LevelActive(it.level)
	case kindMode:
		return snap.ModeActive(it.mode)
	case kindAux:
		return snap.AuxActive(it.aux)
	case kindOutputToggle:
		return snap.Output.Enabled
	}
	return false
}
