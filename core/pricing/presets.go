// Package pricing - Named combo presets
// A preset is a fixed platform set a user can apply in a single action.
package pricing

import "sort"

// presets maps preset keys to their member display names
var presets = map[string][]string{
	"duo":      {"Netflix", "Disney+ Premium"},
	"trio":     {"Netflix", "Disney+ Premium", "HBO Max"},
	"ultimate": {"Netflix", "Disney+ Premium", "HBO Max", "Prime Video", "Paramount+"},
}

// Preset returns the member display names for a preset key
func Preset(name string) ([]string, bool) {
	members, ok := presets[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), members...), true
}

// PresetNames returns all preset keys in stable order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
