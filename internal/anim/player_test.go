package anim

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPlayCycles(t *testing.T) {
	var out bytes.Buffer
	var slept []time.Duration
	p := Player{
		Out:    &out,
		Delay:  250 * time.Millisecond,
		Cycles: 2,
		Sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	}
	if err := p.Play(context.Background(), []string{"A\n", "B\n"}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if got := out.String(); got != "A\nB\nA\nB\n" {
		t.Fatalf("output = %q", got)
	}
	if len(slept) != 4 {
		t.Fatalf("slept %d times, want 4", len(slept))
	}
	for _, d := range slept {
		if d != 250*time.Millisecond {
			t.Fatalf("slept %v, want 250ms", d)
		}
	}
}

func TestPlayClearsBetweenFrames(t *testing.T) {
	var out bytes.Buffer
	p := Player{Out: &out, Cycles: 1, Clear: true, Sleep: func(context.Context, time.Duration) error { return nil }}
	if err := p.Play(context.Background(), []string{"x", "y"}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if got, want := out.String(), clearScreen+"x"+clearScreen+"y"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	shown := 0
	p := Player{
		Out: &out,
		Sleep: func(ctx context.Context, _ time.Duration) error {
			shown++
			if shown == 3 {
				cancel()
				return ctx.Err()
			}
			return nil
		},
	}
	if err := p.Play(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("Play after cancel returned %v, want nil", err)
	}
	if got := out.String(); got != "aba" {
		t.Fatalf("output = %q, want %q", got, "aba")
	}
}

func TestPlayRealSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	var out bytes.Buffer
	start := time.Now()
	if err := (Player{Out: &out, Delay: time.Hour}).Play(ctx, []string{"frame"}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Play ignored cancellation, ran %v", elapsed)
	}
	if !strings.HasPrefix(out.String(), "frame") {
		t.Fatalf("output = %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPlayWriteError(t *testing.T) {
	err := Player{Out: failingWriter{}, Cycles: 1}.Play(context.Background(), []string{"x"})
	if err == nil || !strings.Contains(err.Error(), "closed pipe") {
		t.Fatalf("Play err = %v, want write failure", err)
	}
}

func TestPlaySleepErrors(t *testing.T) {
	stopped := errors.New("timer stopped")
	cases := []struct {
		name  string
		sleep error
		want  error
	}{
		{name: "deadline ends playback", sleep: context.DeadlineExceeded, want: nil},
		{name: "other error is returned", sleep: stopped, want: stopped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			calls := 0
			p := Player{
				Out: &out,
				Sleep: func(context.Context, time.Duration) error {
					calls++
					return tc.sleep
				},
			}
			if err := p.Play(context.Background(), []string{"a", "b"}); !errors.Is(err, tc.want) {
				t.Fatalf("Play err = %v, want %v", err, tc.want)
			}
			if calls != 1 || out.String() != "a" {
				t.Fatalf("sleep calls = %d, output = %q; want 1, %q", calls, out.String(), "a")
			}
		})
	}
}

func TestPlayNoFrames(t *testing.T) {
	if err := (Player{Out: &bytes.Buffer{}}).Play(context.Background(), nil); err == nil {
		t.Fatalf("Play(nil) succeeded, want error")
	}
}
