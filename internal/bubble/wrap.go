// Package bubble lays out the speech bubble: word wrapping, border glyphs
// and the connector tail that points at the figure.
package bubble

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the wrap width used when the caller does not choose one.
const DefaultWidth = 40

// Bubble holds the wrapped lines of one utterance.
type Bubble struct {
	Lines []string
}

// Len returns the number of content rows.
func (b Bubble) Len() int {
	return len(b.Lines)
}

// Width returns the display width of the widest line.
func (b Bubble) Width() int {
	widest := 0
	for _, line := range b.Lines {
		widest = maxInt(widest, runewidth.StringWidth(line))
	}
	return widest
}

// Render wraps text into a Bubble no wider than maxWidth columns.
// Explicit line breaks are kept; maxWidth below 1 is clamped to 1.
func Render(text string, maxWidth int) Bubble {
	if maxWidth < 1 {
		maxWidth = 1
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := []string{}
	for _, segment := range strings.Split(text, "\n") {
		lines = append(lines, wrapSegment(segment, maxWidth)...)
	}
	return Bubble{Lines: lines}
}

// wrapSegment greedily packs the words of one paragraph.
func wrapSegment(segment string, width int) []string {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return []string{""}
	}
	out := []string{}
	current := ""
	currentWidth := 0
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if current != "" && currentWidth+1+ww <= width {
			current += " " + word
			currentWidth += 1 + ww
			continue
		}
		if current != "" {
			out = append(out, current)
			current, currentWidth = "", 0
		}
		if ww <= width {
			current, currentWidth = word, ww
			continue
		}
		chunks := breakLongWord(word, width)
		out = append(out, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
		currentWidth = runewidth.StringWidth(current)
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

// breakLongWord splits word into chunks of at most width columns. A rune
// wider than width still gets a chunk of its own.
func breakLongWord(word string, width int) []string {
	out := []string{}
	var chunk strings.Builder
	chunkWidth := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if chunkWidth > 0 && chunkWidth+rw > width {
			out = append(out, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteRune(r)
		chunkWidth += rw
	}
	if chunk.Len() > 0 {
		out = append(out, chunk.String())
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
