package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides on top of a
// layout. Unknown keys and malformed values are errors.
func ApplyKVOverrides(layout Layout, overrides []string) (Layout, error) {
	if len(overrides) == 0 {
		return layout, nil
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return layout, fmt.Errorf("override %q: want key=value", raw)
		}
		key := strings.TrimSpace(parts[0])
		val := parts[1]
		switch key {
		case "width":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return layout, fmt.Errorf("override %s: %w", key, err)
			}
			layout.Width = n
		case "frame_delay_ms", "frame-delay-ms":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return layout, fmt.Errorf("override %s: %w", key, err)
			}
			layout.FrameDelayMS = n
		case "bubble_color", "bubble-color":
			layout.BubbleColor = strings.TrimSpace(val)
		case "art_color", "art-color":
			layout.ArtColor = strings.TrimSpace(val)
		default:
			glyph, ok := glyphFields(&layout.Glyphs)[key]
			if !ok {
				return layout, fmt.Errorf("unknown override key %q%s", key, suggest(key, OverrideKeys()))
			}
			*glyph = val
		}
	}
	return layout, Validate(layout)
}

// OverrideKeys lists every key accepted by ApplyKVOverrides.
func OverrideKeys() []string {
	keys := []string{"width", "frame_delay_ms", "bubble_color", "art_color"}
	var zero Layout
	var glyphs []string
	for key := range glyphFields(&zero.Glyphs) {
		glyphs = append(glyphs, key)
	}
	sort.Strings(glyphs)
	return append(keys, glyphs...)
}
