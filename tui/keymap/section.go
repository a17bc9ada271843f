package keymap

import "github.com/charmbracelet/bubbles/key"

// Standard section names shared by every help view.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionOptions    = "Options"
	SectionView       = "View"
	SectionSystem     = "System"
)

// Section is a named group of bindings for structured help display.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that organize their bindings
// into sections.
type SectionedKeyMap interface {
	Sections() []Section
}

// NewSection creates a section with a custom name.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

func NavigationSection(bindings ...key.Binding) Section {
	return Section{Name: SectionNavigation, Bindings: bindings}
}

func ActionsSection(bindings ...key.Binding) Section {
	return Section{Name: SectionActions, Bindings: bindings}
}

func OptionsSection(bindings ...key.Binding) Section {
	return Section{Name: SectionOptions, Bindings: bindings}
}

func ViewSection(bindings ...key.Binding) Section {
	return Section{Name: SectionView, Bindings: bindings}
}

func SystemSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSystem, Bindings: bindings}
}

// FilterEnabled returns only the enabled bindings.
func (s Section) FilterEnabled() []key.Binding {
	var result []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			result = append(result, b)
		}
	}
	return result
}

// IsEmpty reports whether the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	return len(s.FilterEnabled()) == 0
}
