package options

import "sync"

// OutputSpec describes the -o option. It only contributes to a command when
// Enabled is set and Path is non-empty.
type OutputSpec struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// Snapshot is an immutable copy of the selection state. It is a comparable
// value: two snapshots are equal exactly when they build the same command.
type Snapshot struct {
	levels    [MaxLevel]bool
	modes     [numModeFlags]bool
	aux       [numAuxFlags]bool
	Output    OutputSpec
	InputFile string
}

// LevelActive reports whether the level toggle is on.
func (s Snapshot) LevelActive(l Level) bool {
	return l.Valid() && s.levels[l-1]
}

// ActiveLevels returns the active levels in ascending order.
func (s Snapshot) ActiveLevels() []Level {
	var out []Level
	for _, l := range Levels() {
		if s.levels[l-1] {
			out = append(out, l)
		}
	}
	return out
}

func (s Snapshot) ModeActive(f ModeFlag) bool {
	return f.valid() && s.modes[f]
}

func (s Snapshot) AuxActive(f AuxFlag) bool {
	return f.valid() && s.aux[f]
}

// ActiveModes returns the active mode flags in declaration order.
func (s Snapshot) ActiveModes() []ModeFlag {
	var out []ModeFlag
	for _, f := range ModeFlags() {
		if s.modes[f] {
			out = append(out, f)
		}
	}
	return out
}

// ActiveAux returns the active auxiliary flags in declaration order.
func (s Snapshot) ActiveAux() []AuxFlag {
	var out []AuxFlag
	for _, f := range AuxFlags() {
		if s.aux[f] {
			out = append(out, f)
		}
	}
	return out
}

// IsZero reports whether the snapshot equals the initial empty state.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// Model is the session-scoped selection state. Levels are independent
// toggles: several may be active at once. Out-of-range levels and unknown
// flags are ignored. No cross-field validation happens here.
type Model struct {
	mu    sync.RWMutex
	state Snapshot
}

// NewModel returns a model in the empty state.
func NewModel() *Model {
	return &Model{}
}

// Snapshot returns a copy of the current state.
func (m *Model) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Model) SetLevel(l Level, on bool) {
	if !l.Valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.levels[l-1] = on
}

func (m *Model) ToggleLevel(l Level) {
	if !l.Valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.levels[l-1] = !m.state.levels[l-1]
}

func (m *Model) SetMode(f ModeFlag, on bool) {
	if !f.valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.modes[f] = on
}

func (m *Model) ToggleMode(f ModeFlag) {
	if !f.valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.modes[f] = !m.state.modes[f]
}

func (m *Model) SetAux(f AuxFlag, on bool) {
	if !f.valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.aux[f] = on
}

func (m *Model) ToggleAux(f AuxFlag) {
	if !f.valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.aux[f] = !m.state.aux[f]
}

func (m *Model) SetOutputEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Output.Enabled = enabled
}

func (m *Model) SetOutputPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Output.Path = path
}

func (m *Model) SetInputFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.InputFile = path
}

// Reset clears every field to its empty default in one step.
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Snapshot{}
}
