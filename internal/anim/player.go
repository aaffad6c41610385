// Package anim plays pre-rendered frames on a fixed cadence.
package anim

import (
	"context"
	"errors"
	"io"
	"time"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Player writes frames to Out one after another, pausing Delay between
// them. It runs on the caller's goroutine.
type Player struct {
	Out   io.Writer
	Delay time.Duration
	// Cycles is how many times the whole frame sequence is shown; 0 loops
	// until the context is cancelled.
	Cycles int
	// Clear redraws each frame in place instead of appending it.
	Clear bool
	// Sleep pauses between frames; nil uses a context-aware timer.
	Sleep func(context.Context, time.Duration) error
}

// Play shows the frames. Cancelling ctx stops playback and is not an error.
func (p Player) Play(ctx context.Context, frames []string) error {
	if len(frames) == 0 {
		return errors.New("no frames to play")
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	for cycle := 0; p.Cycles == 0 || cycle < p.Cycles; cycle++ {
		for _, frame := range frames {
			if ctx.Err() != nil {
				return nil
			}
			if err := p.show(frame); err != nil {
				return err
			}
			if err := sleep(ctx, p.Delay); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				return err
			}
		}
	}
	return nil
}

func (p Player) show(frame string) error {
	if p.Clear {
		if _, err := io.WriteString(p.Out, clearScreen); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.Out, frame)
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
