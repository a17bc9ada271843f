package keymap

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ToggleLevel", "toggle_level"},
		{"Execute", "execute"},
		{"PageUp", "page_up"},
		{"EditExecutable", "edit_executable"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := camelToSnake(tt.input)
			if result != tt.expected {
				t.Errorf("camelToSnake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		input string
		want  Overrides
	}{
		{"", Overrides{}},
		{"execute=x", Overrides{"execute": {"x"}}},
		{"execute=x,ctrl+x; reset = R ", Overrides{"execute": {"x", "ctrl+x"}, "reset": {"R"}}},
		{"broken;=x;empty=;ok=o", Overrides{"ok": {"o"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseOverrides(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOverrides(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// testKeyMap is a sample keymap for testing
type testKeyMap struct {
	Base
	Execute     key.Binding
	Reset       key.Binding
	unexported  key.Binding // Should be skipped
	NotABinding string      // Should be skipped
}

func TestApplyOverrides(t *testing.T) {
	km := testKeyMap{
		Base: NewBase(),
		Execute: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "execute"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		NotABinding: "not a binding",
	}

	ApplyOverrides(&km, Overrides{
		"execute":       {"X", "ctrl+x"},
		"quit":          {"Q"},
		"not_a_binding": {"z"},
		"unexported":    {"u"},
	})

	if keys := km.Execute.Keys(); len(keys) != 2 || keys[0] != "X" || keys[1] != "ctrl+x" {
		t.Errorf("Execute keys = %v, want [X ctrl+x]", keys)
	}
	if help := km.Execute.Help(); help.Key != "X" || help.Desc != "execute" {
		t.Errorf("Execute help = %+v, want key X desc execute", help)
	}
	if keys := km.Reset.Keys(); len(keys) != 1 || keys[0] != "r" {
		t.Errorf("Reset should be unchanged, got %v", keys)
	}
	if keys := km.Quit.Keys(); len(keys) != 1 || keys[0] != "Q" {
		t.Errorf("Embedded Quit should be overridden, got %v", keys)
	}
	if km.NotABinding != "not a binding" {
		t.Errorf("NotABinding changed to %q", km.NotABinding)
	}
}

func TestApplyOverridesIgnoresNonPointers(t *testing.T) {
	km := testKeyMap{Execute: key.NewBinding(key.WithKeys("x"))}
	ApplyOverrides(km, Overrides{"execute": {"X"}})
	ApplyOverrides(&km, nil)

	if keys := km.Execute.Keys(); keys[0] != "x" {
		t.Errorf("Execute should be unchanged, got %v", keys)
	}
}
