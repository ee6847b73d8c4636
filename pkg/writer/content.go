// Package writer serializes a document into the indirect-object container
// format: a content-stream operator builder plus an append-only object
// writer that records the byte offset of every object for the
// cross-reference table.
package writer

import (
	"bytes"
	"fmt"
)

// ContentStream accumulates the drawing operators for one page.
type ContentStream struct {
	buf bytes.Buffer
}

// NewContentStream creates an empty content stream builder.
func NewContentStream() *ContentStream {
	return &ContentStream{}
}

// Bytes returns the operator stream built so far.
func (cs *ContentStream) Bytes() []byte {
	return cs.buf.Bytes()
}

// String returns the operator stream as a string.
func (cs *ContentStream) String() string {
	return cs.buf.String()
}

// Len returns the current stream length in bytes.
func (cs *ContentStream) Len() int {
	return cs.buf.Len()
}

// SaveState pushes the graphics state (q operator).
func (cs *ContentStream) SaveState() *ContentStream {
	cs.buf.WriteString("q\n")
	return cs
}

// RestoreState pops the graphics state (Q operator).
func (cs *ContentStream) RestoreState() *ContentStream {
	cs.buf.WriteString("Q\n")
	return cs
}

// SetMatrix sets the current transformation matrix (cm operator).
func (cs *ContentStream) SetMatrix(a, b, c, d, e, f float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f %.3f %.3f %.3f %.3f cm\n", a, b, c, d, e, f)
	return cs
}

// SetFillRGB sets the non-stroking color (rg operator).
func (cs *ContentStream) SetFillRGB(r, g, b float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f %.3f rg\n", r, g, b)
	return cs
}

// SetStrokeRGB sets the stroking color (RG operator).
func (cs *ContentStream) SetStrokeRGB(r, g, b float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f %.3f RG\n", r, g, b)
	return cs
}

// SetLineWidth sets the stroke width (w operator).
func (cs *ContentStream) SetLineWidth(width float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f w\n", width)
	return cs
}

// MoveTo starts a new subpath (m operator).
func (cs *ContentStream) MoveTo(x, y float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f m\n", x, y)
	return cs
}

// LineTo appends a line segment (l operator).
func (cs *ContentStream) LineTo(x, y float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f l\n", x, y)
	return cs
}

// Rect appends a rectangle path (re operator).
func (cs *ContentStream) Rect(x, y, w, h float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f %.3f %.3f re\n", x, y, w, h)
	return cs
}

// Stroke strokes the current path (S operator).
func (cs *ContentStream) Stroke() *ContentStream {
	cs.buf.WriteString("S\n")
	return cs
}

// Fill fills the current path (f operator).
func (cs *ContentStream) Fill() *ContentStream {
	cs.buf.WriteString("f\n")
	return cs
}

// FillStroke fills and strokes the current path (B operator).
func (cs *ContentStream) FillStroke() *ContentStream {
	cs.buf.WriteString("B\n")
	return cs
}

// BeginText starts a text object (BT operator).
func (cs *ContentStream) BeginText() *ContentStream {
	cs.buf.WriteString("BT\n")
	return cs
}

// EndText ends a text object (ET operator).
func (cs *ContentStream) EndText() *ContentStream {
	cs.buf.WriteString("ET\n")
	return cs
}

// SetFont selects a font resource and size (Tf operator).
// name is a resource name without the leading slash, e.g. "F1".
func (cs *ContentStream) SetFont(name string, size float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "/%s %.3f Tf\n", name, size)
	return cs
}

// SetTextMatrix sets the text matrix (Tm operator).
func (cs *ContentStream) SetTextMatrix(a, b, c, d, e, f float64) *ContentStream {
	fmt.Fprintf(&cs.buf, "%.3f %.3f %.3f %.3f %.3f %.3f Tm\n", a, b, c, d, e, f)
	return cs
}

// ShowText displays a string (Tj operator).
func (cs *ContentStream) ShowText(text string) *ContentStream {
	fmt.Fprintf(&cs.buf, "(%s) Tj\n", escapeString(text))
	return cs
}

// DrawXObject paints a named XObject (Do operator).
func (cs *ContentStream) DrawXObject(name string) *ContentStream {
	fmt.Fprintf(&cs.buf, "/%s Do\n", name)
	return cs
}

// Raw appends pre-rendered operator text verbatim, ensuring it is
// newline-terminated.
func (cs *ContentStream) Raw(ops string) *ContentStream {
	cs.buf.WriteString(ops)
	if len(ops) > 0 && ops[len(ops)-1] != '\n' {
		cs.buf.WriteByte('\n')
	}
	return cs
}

// escapeString escapes the characters that delimit literal strings in the
// output format.
func escapeString(s string) string {
	var out bytes.Buffer
	for _, c := range s {
		switch c {
		case '(':
			out.WriteString(`\(`)
		case ')':
			out.WriteString(`\)`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteRune(c)
		}
	}
	return out.String()
}
