// Package tui plays the animation as an interactive Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is used when Options.Delay is not positive.
const DefaultDelay = 400 * time.Millisecond

// Options configures an interactive animation run.
type Options struct {
	Frames []string
	Delay  time.Duration
	// Cycles stops the program after that many passes; 0 runs until quit.
	Cycles int
	Input  io.Reader
	Output io.Writer
}

// Run plays the frames on the alternate screen until the user quits or the
// cycle limit is reached.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Frames) == 0 {
		return errors.New("no frames to play")
	}
	programOptions := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}
	if opts.Input != nil {
		programOptions = append(programOptions, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOptions = append(programOptions, tea.WithOutput(opts.Output))
	}
	program := tea.NewProgram(New(opts), programOptions...)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return nil
}
