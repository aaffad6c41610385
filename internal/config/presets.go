package config

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"
)

//go:embed presets.toml
var presetsTOML []byte

type presetFile struct {
	Presets map[string]Layout `toml:"presets"`
}

var presets = mustLoadPresets(presetsTOML)

func mustLoadPresets(data []byte) map[string]Layout {
	out, err := parsePresets(data)
	if err != nil {
		panic(fmt.Sprintf("embedded presets: %v", err))
	}
	return out
}

func parsePresets(data []byte) (map[string]Layout, error) {
	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	out := make(map[string]Layout, len(file.Presets))
	for name, layout := range file.Presets {
		layout.Source = name
		out[name] = layout
	}
	return out, nil
}

// PresetNames lists the shipped presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named layout. Only the selected preset is
// validated.
func Preset(name string) (Layout, error) {
	if layout, ok := presets[name]; ok {
		if err := Validate(layout); err != nil {
			return Layout{}, fmt.Errorf("preset %s: %w", name, err)
		}
		return layout, nil
	}
	return Layout{}, fmt.Errorf("unknown preset %q%s", name, suggest(name, PresetNames()))
}

// suggest formats a "did you mean" hint for the closest candidate.
func suggest(input string, candidates []string) string {
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
}
