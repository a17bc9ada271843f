package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
)

// Overrides maps snake_case binding names to replacement keys.
type Overrides map[string][]string

// ParseOverrides reads the UPXGUI_KEYS format:
//
//	execute=x,ctrl+x;reset=R
//
// Entries without a name or keys are skipped.
func ParseOverrides(s string) Overrides {
	out := Overrides{}
	for _, entry := range strings.Split(s, ";") {
		name, keys, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		var list []string
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				list = append(list, k)
			}
		}
		if len(list) > 0 {
			out[strings.TrimSpace(name)] = list
		}
	}
	return out
}

// ApplyOverrides replaces the keys of every key.Binding field in km whose
// snake_case name appears in overrides. Embedded structs are walked too. The
// help description of each binding is kept.
//
//	ApplyOverrides(&km, Overrides{"toggle_level": {"L"}}) // km.ToggleLevel
func ApplyOverrides(km interface{}, overrides Overrides) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	applyOverridesRecursive(v, overrides)
}

func applyOverridesRecursive(v reflect.Value, overrides Overrides) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides)
			continue
		}

		if fieldType.Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(fieldType.Name)]
		if !ok || len(keys) == 0 {
			continue
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: ToggleLevel -> toggle_level, PageUp -> page_up
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
