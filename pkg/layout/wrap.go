package layout

import (
	"strings"
)

// Request describes one layout invocation in document coordinates
// (origin top-left, Y increases downward). Optional fields use pointers
// so that "absent" is distinct from zero.
type Request struct {
	X *float64 // nil: start at the page margin
	Y *float64 // nil: below the cursor, or at the top margin

	MaxWidth     float64  // 0: no wrapping
	FontSize     float64
	Bold         bool
	Italic       bool
	HeadingLevel int      // 0 for body text, 1-3 for headings
	WrapX        *float64 // continuation-line X; nil: reuse the starting X
	CursorY      *float64 // nil: no prior cursor
}

// Line is one laid-out line of text in document coordinates.
type Line struct {
	Text string
	X    float64
	Y    float64

	// PageBreak marks a line that could not be placed because it would
	// cross the bottom margin. The caller is expected to start a new
	// page and lay the text out again.
	PageBreak bool
}

// Wrap lays text out as one or more lines. Headings are never wrapped.
// Body text with a max width is wrapped greedily; once a line would cross
// the bottom margin, layout stops and the words that did not fit are
// returned in rest for the caller to place on a fresh page.
func Wrap(text string, req Request) (lines []Line, rest string) {
	x := Margin
	if req.X != nil {
		x = *req.X
	}

	var y float64
	switch {
	case req.Y != nil:
		y = *req.Y
	case req.CursorY != nil:
		y = *req.CursorY + LineHeight(req.FontSize, req.HeadingLevel)
	default:
		y = Margin
	}

	if req.HeadingLevel > 0 || req.MaxWidth <= 0 {
		line := Line{Text: text, X: x, Y: y}
		if overflows(y, req.FontSize, req.HeadingLevel) {
			line.PageBreak = true
		}
		return []Line{line}, ""
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, ""
	}

	// The first line's budget shrinks by however far the starting X sits
	// past the margin; continuation lines get the full max width.
	budget := req.MaxWidth
	if x > Margin {
		budget = req.MaxWidth - (x - Margin)
	}

	wrapX := x
	if req.WrapX != nil {
		wrapX = *req.WrapX
	}

	lh := LineHeight(req.FontSize, 0)
	current := words[0]
	lineX := x

	flush := func() {
		lines = append(lines, Line{Text: current, X: lineX, Y: y})
		y += lh
		budget = req.MaxWidth
		lineX = wrapX
	}

	for i := 1; i < len(words); i++ {
		w := words[i]
		lineW := EstimateWidth(current, req.FontSize, req.Bold, req.Italic)
		wordW := EstimateWidth(" "+w, req.FontSize, req.Bold, req.Italic)
		if lineW+wordW <= budget {
			current += " " + w
			continue
		}
		flush()
		if overflows(y, req.FontSize, 0) {
			return lines, strings.Join(words[i:], " ")
		}
		current = w
	}
	flush()
	return lines, ""
}

// overflows reports whether a line placed at y would cross the bottom
// printable boundary.
func overflows(y, fontSize float64, headingLevel int) bool {
	return y+LineHeight(fontSize, headingLevel) > PageHeight-Margin
}
