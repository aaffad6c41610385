// Package render assembles the bubble, the connector tail and the figure
// into the text that is written to the terminal.
package render

import (
	"strings"

	"yisangsay/internal/bubble"
	"yisangsay/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Scene describes one picture: what is said and how it is laid out.
type Scene struct {
	Text       string
	ShowBubble bool
	Layout     config.Layout
}

// Plain returns the scene with colouring switched off.
func (s Scene) Plain() Scene {
	s.Layout.BubbleColor = ""
	s.Layout.ArtColor = ""
	return s
}

// BubbleRows returns the bordered bubble followed by the connector, or nil
// when the scene has no bubble.
func (s Scene) BubbleRows() []string {
	if !s.ShowBubble {
		return nil
	}
	b := bubble.Render(s.Text, s.Layout.Width)
	rows := bubble.DrawBorder(b, s.Layout.Glyphs)
	return append(rows, bubble.DrawConnector()...)
}

// Compose renders the scene above figure. The result ends with a newline.
func Compose(s Scene, figure string) string {
	return compose(s.BubbleRows(), figure, s.Layout)
}

// ComposeFrames renders the scene once per animation frame, wrapping the
// text a single time.
func ComposeFrames(s Scene, frames []string) []string {
	rows := s.BubbleRows()
	out := make([]string, 0, len(frames))
	for _, frame := range frames {
		out = append(out, compose(rows, frame, s.Layout))
	}
	return out
}

func compose(rows []string, figure string, layout config.Layout) string {
	var sb strings.Builder
	bubbleStyle := colorStyle(layout.BubbleColor)
	for _, row := range rows {
		sb.WriteString(paint(bubbleStyle, row))
		sb.WriteByte('\n')
	}
	artStyle := colorStyle(layout.ArtColor)
	for _, line := range strings.Split(figure, "\n") {
		sb.WriteString(paint(artStyle, line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func colorStyle(color string) *lipgloss.Style {
	if color == "" {
		return nil
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return &style
}

// paint colours one line at a time so lipgloss never pads rows to a
// common width.
func paint(style *lipgloss.Style, line string) string {
	if style == nil || line == "" {
		return line
	}
	return style.Render(line)
}
