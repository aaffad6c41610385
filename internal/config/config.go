package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"yisangsay/internal/bubble"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// DefaultPreset is the preset used by say and animate.
const DefaultPreset = "classic"

// glyphWidth measures border glyphs with ambiguous-width runes (box drawing
// characters) counted as one column, whatever the user's locale says.
var glyphWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Layout is the set of cosmetic constants the renderer runs with.
type Layout struct {
	Width        int           `toml:"width"`
	FrameDelayMS int           `toml:"frame_delay_ms"`
	BubbleColor  string        `toml:"bubble_color"`
	ArtColor     string        `toml:"art_color"`
	Glyphs       bubble.Glyphs `toml:"glyphs"`
	Source       string        `toml:"-"`
}

// Default returns the classic layout.
func Default() Layout {
	return Layout{
		Width:        bubble.DefaultWidth,
		FrameDelayMS: 400,
		Glyphs:       bubble.ClassicGlyphs(),
		Source:       DefaultPreset,
	}
}

// FrameDelay returns the pause between animation frames.
func (l Layout) FrameDelay() time.Duration {
	return time.Duration(l.FrameDelayMS) * time.Millisecond
}

// Validate checks that the layout can be drawn without breaking the border.
func Validate(l Layout) error {
	if l.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", l.Width)
	}
	if l.FrameDelayMS < 1 {
		return fmt.Errorf("frame_delay_ms must be at least 1, got %d", l.FrameDelayMS)
	}
	for key, glyph := range glyphFields(&l.Glyphs) {
		if w := glyphWidth.StringWidth(*glyph); w != 1 {
			return fmt.Errorf("glyph %s=%q must be exactly one column wide, got %d", key, *glyph, w)
		}
	}
	if err := validateColor("bubble_color", l.BubbleColor); err != nil {
		return err
	}
	return validateColor("art_color", l.ArtColor)
}

// validateColor accepts "" (no colour), an ANSI index 0-255 or #rrggbb.
func validateColor(key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return fmt.Errorf("%s=%s: ansi colour must be 0-255", key, value)
		}
		return nil
	}
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%s=%s: want an ansi index or #rrggbb: %w", key, value, err)
	}
	return nil
}

// glyphFields maps override keys to the glyph they set.
func glyphFields(g *bubble.Glyphs) map[string]*string {
	return map[string]*string{
		"top":          &g.Top,
		"bottom":       &g.Bottom,
		"top_left":     &g.TopLeft,
		"top_right":    &g.TopRight,
		"bottom_left":  &g.BottomLeft,
		"bottom_right": &g.BottomRight,
		"single_left":  &g.Single.Left,
		"single_right": &g.Single.Right,
		"first_left":   &g.First.Left,
		"first_right":  &g.First.Right,
		"last_left":    &g.Last.Left,
		"last_right":   &g.Last.Right,
		"middle_left":  &g.Middle.Left,
		"middle_right": &g.Middle.Right,
	}
}
