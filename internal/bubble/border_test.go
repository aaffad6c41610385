package bubble

import (
	"slices"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestDrawBorderSingleLine(t *testing.T) {
	got := DrawBorder(Render("Hello", DefaultWidth), ClassicGlyphs())
	want := []string{
		" _______ ",
		"< Hello >",
		" ------- ",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("DrawBorder single line:\n got %q\nwant %q", got, want)
	}
}

func TestDrawBorderMultiLine(t *testing.T) {
	got := DrawBorder(Bubble{Lines: []string{"one", "three", "two"}}, ClassicGlyphs())
	want := []string{
		" _______ ",
		"/ one   \\",
		"| three |",
		"\\ two   /",
		" ------- ",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("DrawBorder multi line:\n got %q\nwant %q", got, want)
	}
}

func TestDrawBorderTwoLinesHasNoMiddle(t *testing.T) {
	got := DrawBorder(Bubble{Lines: []string{"a", "b"}}, ClassicGlyphs())
	want := []string{
		" ___ ",
		"/ a \\",
		"\\ b /",
		" --- ",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("DrawBorder two lines:\n got %q\nwant %q", got, want)
	}
}

func TestDrawBorderEmptyBubble(t *testing.T) {
	for _, b := range []Bubble{Render("", DefaultWidth), {}} {
		got := DrawBorder(b, ClassicGlyphs())
		want := []string{" __ ", "<  >", " -- "}
		if !slices.Equal(got, want) {
			t.Fatalf("DrawBorder(%q)=%q want %q", b.Lines, got, want)
		}
	}
}

func TestDrawBorderRowsShareWidth(t *testing.T) {
	texts := []string{
		"",
		"Hello",
		"a longer piece of text that certainly needs to wrap across several lines of output",
		"你好 wide 世界 runes mixed in",
		"x\n\nyy\nzzz",
	}
	for _, text := range texts {
		b := Render(text, 16)
		rows := DrawBorder(b, ClassicGlyphs())
		if len(rows) != b.Len()+2 {
			t.Fatalf("DrawBorder(%q) gave %d rows want %d", text, len(rows), b.Len()+2)
		}
		want := b.Width() + Padding
		for _, row := range rows {
			if w := runewidth.StringWidth(row); w != want {
				t.Fatalf("DrawBorder(%q) row %q width %d want %d", text, row, w, want)
			}
		}
	}
}

func TestSidesFor(t *testing.T) {
	g := ClassicGlyphs()
	cases := []struct {
		i, n int
		want Sides
	}{
		{i: 0, n: 1, want: g.Single},
		{i: 0, n: 2, want: g.First},
		{i: 1, n: 2, want: g.Last},
		{i: 0, n: 4, want: g.First},
		{i: 1, n: 4, want: g.Middle},
		{i: 2, n: 4, want: g.Middle},
		{i: 3, n: 4, want: g.Last},
	}
	for _, tc := range cases {
		if got := g.SidesFor(tc.i, tc.n); got != tc.want {
			t.Fatalf("SidesFor(%d,%d)=%v want %v", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestDrawConnectorIsFixed(t *testing.T) {
	first := DrawConnector()
	first[0] = "mutated"
	second := DrawConnector()
	if second[0] == "mutated" {
		t.Fatalf("DrawConnector returned shared backing array")
	}
	if len(second) == 0 {
		t.Fatalf("DrawConnector returned no rows")
	}
}
