package bubble

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Padding is the number of columns a bordered row adds around its content:
// a side glyph and a space on each side.
const Padding = 4

// Sides is the glyph pair flanking one content row.
type Sides struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

// Glyphs is the full border glyph set. Every glyph must occupy exactly one
// terminal column.
type Glyphs struct {
	Top         string `toml:"top"`
	Bottom      string `toml:"bottom"`
	TopLeft     string `toml:"top_left"`
	TopRight    string `toml:"top_right"`
	BottomLeft  string `toml:"bottom_left"`
	BottomRight string `toml:"bottom_right"`
	Single      Sides  `toml:"single"`
	First       Sides  `toml:"first"`
	Last        Sides  `toml:"last"`
	Middle      Sides  `toml:"middle"`
}

// ClassicGlyphs returns the traditional talking-animal glyph set.
func ClassicGlyphs() Glyphs {
	return Glyphs{
		Top:         "_",
		Bottom:      "-",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
		Single:      Sides{Left: "<", Right: ">"},
		First:       Sides{Left: "/", Right: "\\"},
		Last:        Sides{Left: "\\", Right: "/"},
		Middle:      Sides{Left: "|", Right: "|"},
	}
}

// SidesFor picks the side glyphs of row i in a bubble of n rows.
func (g Glyphs) SidesFor(i, n int) Sides {
	switch {
	case n == 1:
		return g.Single
	case i == 0:
		return g.First
	case i == n-1:
		return g.Last
	default:
		return g.Middle
	}
}

// DrawBorder frames the bubble: a top border, one row per line padded to
// the bubble width, and a bottom border. All rows share one display width.
func DrawBorder(b Bubble, g Glyphs) []string {
	lines := b.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	inner := Bubble{Lines: lines}.Width()
	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, g.TopLeft+strings.Repeat(g.Top, inner+2)+g.TopRight)
	for i, line := range lines {
		sides := g.SidesFor(i, len(lines))
		pad := strings.Repeat(" ", inner-runewidth.StringWidth(line))
		rows = append(rows, sides.Left+" "+line+pad+" "+sides.Right)
	}
	rows = append(rows, g.BottomLeft+strings.Repeat(g.Bottom, inner+2)+g.BottomRight)
	return rows
}

// connector is the tail between the bubble and the figure's head outline.
var connector = []string{
	"        \\",
	"         \\",
}

// DrawConnector returns the fixed tail drawn below the bubble.
func DrawConnector() []string {
	return append([]string(nil), connector...)
}
