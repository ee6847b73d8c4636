package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEstimateWidthMonotonicInLength(t *testing.T) {
	prev := 0.0
	for n := 1; n <= 20; n++ {
		w := EstimateWidth(strings.Repeat("a", n), 12, false, false)
		if w <= prev {
			t.Fatalf("width not strictly increasing at length %d: %.2f <= %.2f", n, w, prev)
		}
		prev = w
	}
}

func TestEstimateWidthStyleOrdering(t *testing.T) {
	text := "Quarterly Report"
	normal := EstimateWidth(text, 12, false, false)
	bold := EstimateWidth(text, 12, true, false)
	italic := EstimateWidth(text, 12, false, true)

	if bold <= normal {
		t.Errorf("bold width %.2f should exceed normal %.2f", bold, normal)
	}
	if italic <= normal {
		t.Errorf("italic width %.2f should exceed normal %.2f", italic, normal)
	}
}

func TestEstimateWidthCharacterClasses(t *testing.T) {
	narrow := EstimateWidth("llll", 12, false, false)
	regular := EstimateWidth("aaaa", 12, false, false)
	wide := EstimateWidth("MMMM", 12, false, false)

	if !(narrow < regular && regular < wide) {
		t.Errorf("expected narrow < regular < wide, got %.2f, %.2f, %.2f", narrow, regular, wide)
	}

	// Double-width runes count as wide even though they are not in the
	// ASCII wide set.
	cjk := EstimateWidth("漢漢漢漢", 12, false, false)
	if cjk != wide {
		t.Errorf("double-width runes should use the wide factor: got %.2f, want %.2f", cjk, wide)
	}
}

func TestEstimateWidthScalesWithFontSize(t *testing.T) {
	small := EstimateWidth("Hello World", 12, false, false)
	large := EstimateWidth("Hello World", 24, false, false)
	if large < small*1.8 {
		t.Errorf("doubling font size should roughly double width: %.2f vs %.2f", small, large)
	}
}

func TestFlipYExtremes(t *testing.T) {
	if got := FlipY(0, 0); got != PageHeight {
		t.Errorf("FlipY(0, 0) = %.2f, want %.2f", got, PageHeight)
	}
	if got := FlipY(PageHeight, 0); got != 0 {
		t.Errorf("FlipY(PageHeight, 0) = %.2f, want 0", got)
	}
}

func TestLineHeightHeadingBoost(t *testing.T) {
	body := LineHeight(12, 0)
	h3 := LineHeight(12, 3)
	h2 := LineHeight(12, 2)
	h1 := LineHeight(12, 1)
	if !(body < h3 && h3 < h2 && h2 < h1) {
		t.Errorf("expected body < h3 < h2 < h1, got %.2f %.2f %.2f %.2f", body, h3, h2, h1)
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestWrapShortTextSingleLine(t *testing.T) {
	lines, rest := Wrap("hello", Request{
		X:        floatPtr(50),
		Y:        floatPtr(100),
		MaxWidth: 150,
		FontSize: 12,
	})
	if rest != "" {
		t.Fatalf("unexpected rest %q", rest)
	}
	want := []Line{{Text: "hello", X: 50, Y: 100}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

// Words of five average-width characters measure 30 points at 12pt, and a
// leading space adds 3.3, so a 100-point budget takes three words per line.
const sixWords = "abcde abcde abcde abcde abcde abcde"

func TestWrapColumnPreservingContinuation(t *testing.T) {
	lines, rest := Wrap(sixWords, Request{
		X:        floatPtr(80),
		Y:        floatPtr(100),
		MaxWidth: 130,
		FontSize: 12,
	})
	if rest != "" {
		t.Fatalf("unexpected rest %q", rest)
	}
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	for i, line := range lines[1:] {
		if line.X != lines[0].X {
			t.Errorf("line %d x = %.2f, want %.2f (column-preserving)", i+1, line.X, lines[0].X)
		}
	}
}

func TestWrapTargetXContinuation(t *testing.T) {
	lines, rest := Wrap(sixWords, Request{
		X:        floatPtr(80),
		Y:        floatPtr(100),
		MaxWidth: 130,
		FontSize: 12,
		WrapX:    floatPtr(30),
	})
	if rest != "" {
		t.Fatalf("unexpected rest %q", rest)
	}
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	if lines[0].X != 80 {
		t.Errorf("first line x = %.2f, want 80", lines[0].X)
	}
	for i, line := range lines[1:] {
		if line.X != 30 {
			t.Errorf("line %d x = %.2f, want wrap-target 30", i+1, line.X)
		}
	}
}

func TestWrapFirstLineBudgetReduction(t *testing.T) {
	// Starting 100 points past the margin leaves a 50-point first-line
	// budget, so only one 30-point word fits on the first line.
	lines, _ := Wrap("abcde abcde abcde", Request{
		X:        floatPtr(Margin + 100),
		Y:        floatPtr(100),
		MaxWidth: 150,
		FontSize: 12,
	})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "abcde" {
		t.Errorf("first line = %q, want single word", lines[0].Text)
	}
	if lines[1].Text != "abcde abcde" {
		t.Errorf("second line = %q, want remaining words at full budget", lines[1].Text)
	}
}

func TestWrapAdvancesY(t *testing.T) {
	lines, _ := Wrap(sixWords, Request{
		X:        floatPtr(30),
		Y:        floatPtr(100),
		MaxWidth: 100,
		FontSize: 12,
	})
	lh := LineHeight(12, 0)
	for i, line := range lines {
		want := 100 + float64(i)*lh
		if line.Y != want {
			t.Errorf("line %d y = %.2f, want %.2f", i, line.Y, want)
		}
	}
}

func TestWrapHeadingNeverWraps(t *testing.T) {
	long := strings.Repeat("Heading ", 30)
	lines, rest := Wrap(long, Request{
		Y:            floatPtr(100),
		MaxWidth:     150,
		FontSize:     24,
		HeadingLevel: 1,
	})
	if rest != "" || len(lines) != 1 {
		t.Fatalf("heading should be a single line, got %d lines, rest %q", len(lines), rest)
	}
}

func TestWrapHeadingPageBreakFlag(t *testing.T) {
	lines, _ := Wrap("Appendix", Request{
		Y:            floatPtr(PageHeight - Margin - 10),
		FontSize:     24,
		HeadingLevel: 1,
	})
	if len(lines) != 1 || !lines[0].PageBreak {
		t.Fatalf("heading near the bottom margin should carry the page-break flag: %+v", lines)
	}
}

func TestWrapOverflowReturnsRest(t *testing.T) {
	many := strings.TrimSpace(strings.Repeat("abcde ", 40))
	lines, rest := Wrap(many, Request{
		X:        floatPtr(30),
		Y:        floatPtr(PageHeight - Margin - 40),
		MaxWidth: 100,
		FontSize: 12,
	})
	if rest == "" {
		t.Fatal("expected remaining words after overflow")
	}
	// Placed words plus remaining words account for the whole input.
	var placed []string
	for _, line := range lines {
		placed = append(placed, line.Text)
	}
	joined := strings.Join(placed, " ") + " " + rest
	if joined != many {
		t.Errorf("words lost in overflow: got %q", joined)
	}
}

func TestWrapDefaultsToMargin(t *testing.T) {
	lines, _ := Wrap("hello", Request{MaxWidth: 150, FontSize: 12})
	if len(lines) != 1 || lines[0].X != Margin || lines[0].Y != Margin {
		t.Fatalf("expected placement at the top margin, got %+v", lines)
	}
}

func TestWrapFlowsBelowCursor(t *testing.T) {
	lines, _ := Wrap("hello", Request{
		MaxWidth: 150,
		FontSize: 12,
		CursorY:  floatPtr(200),
	})
	want := 200 + LineHeight(12, 0)
	if len(lines) != 1 || lines[0].Y != want {
		t.Fatalf("expected y %.2f below cursor, got %+v", want, lines)
	}
}
