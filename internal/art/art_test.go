package art

import (
	"errors"
	"strings"
	"testing"
)

func TestFigureHasNoTrailingNewline(t *testing.T) {
	fig := Figure()
	if fig == "" {
		t.Fatalf("Figure() is empty")
	}
	if strings.HasSuffix(fig, "\n") {
		t.Fatalf("Figure() ends with a newline")
	}
}

func TestFrames(t *testing.T) {
	for _, variant := range Variants {
		frames, err := Frames(variant)
		if err != nil {
			t.Fatalf("Frames(%d) error: %v", variant, err)
		}
		if len(frames) != 2 {
			t.Fatalf("Frames(%d) gave %d frames want 2", variant, len(frames))
		}
		if frames[0] != Figure() {
			t.Fatalf("Frames(%d)[0] should be the resting figure", variant)
		}
		if frames[0] == frames[1] {
			t.Fatalf("Frames(%d) frames are identical", variant)
		}
	}
}

func TestFramesUnknownVariant(t *testing.T) {
	for _, variant := range []int{0, 3, -1} {
		_, err := Frames(variant)
		if !errors.Is(err, ErrUnknownVariant) {
			t.Fatalf("Frames(%d) err=%v want ErrUnknownVariant", variant, err)
		}
	}
}

func TestHeadColumnMarksHeadOutline(t *testing.T) {
	rows := strings.Split(Figure(), "\n")
	if len(rows) < 2 || HeadColumn >= len(rows[1]) {
		t.Fatalf("HeadColumn %d outside figure %q", HeadColumn, rows)
	}
	if got := rows[1][HeadColumn]; got != '/' {
		t.Fatalf("row 1 column %d = %q, want '/'", HeadColumn, got)
	}
	if strings.TrimSpace(rows[1][:HeadColumn]) != "" {
		t.Fatalf("row 1 has ink left of the head outline: %q", rows[1])
	}
}
