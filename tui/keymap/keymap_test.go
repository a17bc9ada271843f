package keymap

import "testing"

func TestDefaultVim(t *testing.T) {
	km := DefaultVim()

	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "k" {
		t.Errorf("Expected Up to have 'k' as first key, got %v", keys)
	}
	if keys := km.Down.Keys(); len(keys) < 1 || keys[0] != "j" {
		t.Errorf("Expected Down to have 'j' as first key, got %v", keys)
	}
	if keys := km.Select.Keys(); len(keys) != 1 || keys[0] != " " {
		t.Errorf("Expected Select to be space, got %v", keys)
	}
}

func TestDefaultEmacs(t *testing.T) {
	km := DefaultEmacs()

	if keys := km.Up.Keys(); len(keys) < 1 || keys[0] != "ctrl+p" {
		t.Errorf("Expected Up to have 'ctrl+p' as first key, got %v", keys)
	}
	if keys := km.Down.Keys(); len(keys) < 1 || keys[0] != "ctrl+n" {
		t.Errorf("Expected Down to have 'ctrl+n' as first key, got %v", keys)
	}
	// Non-navigation bindings come from the vim base.
	if keys := km.Quit.Keys(); len(keys) < 1 || keys[0] != "q" {
		t.Errorf("Expected Quit to keep 'q', got %v", keys)
	}
}

func TestDefaultArrows(t *testing.T) {
	km := DefaultArrows()

	if keys := km.Up.Keys(); len(keys) != 1 || keys[0] != "up" {
		t.Errorf("Expected Up to be only 'up', got %v", keys)
	}
	if keys := km.Left.Keys(); len(keys) != 1 || keys[0] != "left" {
		t.Errorf("Expected Left to be only 'left', got %v", keys)
	}
}

func TestForStyle(t *testing.T) {
	tests := []struct {
		style string
		up    string
	}{
		{"vim", "k"},
		{"EMACS", "ctrl+p"},
		{" arrows ", "up"},
		{"", "k"},
		{"unknown", "k"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			if got := ForStyle(tt.style).Up.Keys()[0]; got != tt.up {
				t.Errorf("ForStyle(%q).Up = %q, want %q", tt.style, got, tt.up)
			}
		})
	}
}

func TestNewBaseReadsEnvironment(t *testing.T) {
	t.Setenv("UPXGUI_KEYMAP", "emacs")
	if got := NewBase().Down.Keys()[0]; got != "ctrl+n" {
		t.Errorf("Expected emacs keymap from UPXGUI_KEYMAP, got Down=%q", got)
	}
}

func TestSections(t *testing.T) {
	sections := DefaultVim().Sections()
	if len(sections) == 0 {
		t.Fatal("Expected sections")
	}

	names := map[string]bool{}
	for _, s := range sections {
		names[s.Name] = true
		if s.IsEmpty() {
			t.Errorf("Section %q has no enabled bindings", s.Name)
		}
	}
	for _, want := range []string{SectionNavigation, SectionActions, SectionSystem} {
		if !names[want] {
			t.Errorf("Missing section %q", want)
		}
	}
}

func TestFullHelpCoversShortHelp(t *testing.T) {
	km := DefaultVim()
	full := map[string]bool{}
	for _, group := range km.FullHelp() {
		for _, b := range group {
			full[b.Help().Key] = true
		}
	}
	for _, b := range km.ShortHelp() {
		if !full[b.Help().Key] {
			t.Errorf("ShortHelp binding %q missing from FullHelp", b.Help().Key)
		}
	}
}
