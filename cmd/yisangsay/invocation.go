package main

import (
	"context"
	"io"

	"yisangsay/internal/anim"
	"yisangsay/internal/art"
	"yisangsay/internal/config"
	"yisangsay/internal/render"
	"yisangsay/internal/tui"
)

type invocationKind int

const (
	kindSay invocationKind = iota
	kindAnimate
	kindFreestyle
)

func (k invocationKind) String() string {
	switch k {
	case kindSay:
		return "say"
	case kindAnimate:
		return "animate"
	case kindFreestyle:
		return "freestyle"
	default:
		return "unknown"
	}
}

// invocation is a fully parsed command line. Every subcommand builds one and
// hands it to run.
type invocation struct {
	kind    invocationKind
	text    string
	hasText bool
	layout  config.Layout

	// animate
	variant int
	cycles  int
	plain   bool

	// freestyle
	copy bool
}

func (inv invocation) scene() render.Scene {
	return render.Scene{
		Text:       inv.text,
		ShowBubble: inv.kind != kindFreestyle || inv.hasText,
		Layout:     inv.layout,
	}
}

func (a *app) run(ctx context.Context, inv invocation) error {
	log := a.log.WithField("kind", inv.kind.String())
	scene := inv.scene()
	if inv.kind == kindAnimate {
		return a.animate(ctx, inv, scene)
	}

	output := render.Compose(scene, art.Figure())
	log.WithField("preset", inv.layout.Source).Debugf("rendered %d bytes", len(output))
	if _, err := io.WriteString(a.out, output); err != nil {
		return runError{err: err}
	}
	if inv.copy {
		if err := a.copyText(render.Compose(scene.Plain(), art.Figure())); err != nil {
			log.Warnf("copy to clipboard failed: %v", err)
		} else {
			log.Debug("copied output to clipboard")
		}
	}
	return nil
}

func (a *app) animate(ctx context.Context, inv invocation, scene render.Scene) error {
	log := a.log.WithField("variant", inv.variant)
	figures, err := art.Frames(inv.variant)
	if err != nil {
		return err
	}
	frames := render.ComposeFrames(scene, figures)
	delay := inv.layout.FrameDelay()

	if a.isTerminal() && !inv.plain {
		log.Debugf("playing %d frames interactively", len(frames))
		err = tui.Run(ctx, tui.Options{
			Frames: frames,
			Delay:  delay,
			Cycles: inv.cycles,
			Input:  a.in,
			Output: a.out,
		})
	} else {
		log.Debugf("playing %d frames on the plain loop", len(frames))
		err = anim.Player{
			Out:    a.out,
			Delay:  delay,
			Cycles: inv.cycles,
			Clear:  a.isTerminal(),
			Sleep:  a.sleep,
		}.Play(ctx, frames)
	}
	if err != nil {
		return runError{err: err}
	}
	return nil
}
