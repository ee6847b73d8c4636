package pdf

import (
	"strconv"

	"github.com/propelplm/apexpdf/pkg/layout"
	"github.com/propelplm/apexpdf/pkg/writer"
)

// Operators renders the rectangle as format-native drawing operators,
// flipping into bottom-left device space. A raw override bypasses the
// rectangle model entirely and is emitted verbatim.
func (r RectElement) Operators() string {
	if r.Raw != "" {
		return writer.NewContentStream().Raw(r.Raw).String()
	}

	cs := writer.NewContentStream()
	deviceY := layout.PageHeight - r.Y - r.Height

	width := r.StrokeWidth
	if width <= 0 {
		width = 1
	}

	switch r.Mode {
	case ModeFill:
		fr, fg, fb := parseHexColor(r.FillColor)
		cs.SetFillRGB(fr, fg, fb)
		cs.Rect(r.X, deviceY, r.Width, r.Height).Fill()
	case ModeFillStroke:
		fr, fg, fb := parseHexColor(r.FillColor)
		sr, sg, sb := parseHexColor(r.StrokeColor)
		cs.SetFillRGB(fr, fg, fb)
		cs.SetStrokeRGB(sr, sg, sb)
		cs.SetLineWidth(width)
		cs.Rect(r.X, deviceY, r.Width, r.Height).FillStroke()
	default:
		sr, sg, sb := parseHexColor(r.StrokeColor)
		cs.SetStrokeRGB(sr, sg, sb)
		cs.SetLineWidth(width)
		cs.Rect(r.X, deviceY, r.Width, r.Height).Stroke()
	}
	return cs.String()
}

// parseHexColor converts a 6-hex-digit color to a normalized RGB triple.
// A missing or malformed color yields black; color problems never raise
// errors, they default.
func parseHexColor(s string) (r, g, b float64) {
	if len(s) != 6 {
		return 0, 0, 0
	}
	channel := func(hexPair string) (float64, bool) {
		v, err := strconv.ParseUint(hexPair, 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v) / 255, true
	}
	cr, ok1 := channel(s[0:2])
	cg, ok2 := channel(s[2:4])
	cb, ok3 := channel(s[4:6])
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0
	}
	return cr, cg, cb
}

// validHexColor reports whether s would survive parseHexColor unchanged
func validHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < 6; i += 2 {
		if _, err := strconv.ParseUint(s[i:i+2], 16, 8); err != nil {
			return false
		}
	}
	return true
}
