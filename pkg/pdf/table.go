package pdf

import (
	"strings"

	"github.com/propelplm/apexpdf/pkg/layout"
)

// Fixed table metrics in points.
const (
	headerHeight = 24.0
	rowHeight    = 20.0
	cellPadding  = 4.0

	headerFontSize = 11.0
	cellFontSize   = 10.0
)

// The striped theme forces this header color pair regardless of caller
// styling.
const (
	stripedHeaderBackground = "4472C4"
	stripedHeaderForeground = "FFFFFF"
	stripedAltBackground    = "F2F2F2"
)

const ellipsis = "..."

// TableRenderer draws a column/row table onto a bound document. Drawing
// fails with a typed error when no target is bound or no columns are
// defined, emitting nothing.
type TableRenderer struct {
	target  *Document
	columns []Column
	options TableOptions
}

// NewTableRenderer binds a renderer to a target document.
func NewTableRenderer(target *Document, columns []Column, options TableOptions) *TableRenderer {
	return &TableRenderer{target: target, columns: columns, options: options}
}

// DrawTable renders a table at the current cursor and advances it past
// the last row.
func (d *Document) DrawTable(columns []Column, rows []Row, options TableOptions) (float64, error) {
	return NewTableRenderer(d, columns, options).Draw(rows)
}

// DrawTableFrom renders a table fed by a RowSource.
func (d *Document) DrawTableFrom(columns []Column, source RowSource, options TableOptions) (float64, error) {
	rows, err := source.Rows()
	if err != nil {
		return 0, err
	}
	return NewTableRenderer(d, columns, options).Draw(rows)
}

// Draw lays the table out and returns the new vertical cursor,
// lastRowBottom + margin. The whole table is drawn in a single pass on
// the current page; the header policy's every-page and first-page modes
// therefore both render the header once, at the top of the table.
func (tr *TableRenderer) Draw(rows []Row) (float64, error) {
	if tr.target == nil {
		return 0, ErrNoTarget
	}
	if tr.target.finalized {
		tr.target.logger.Error("table draw on finalized document")
		return 0, ErrFinalized
	}
	if len(tr.columns) == 0 {
		tr.target.logger.Error("table draw with no columns")
		return 0, ErrNoColumns
	}

	margin := tr.options.Margin
	if margin <= 0 {
		margin = layout.Margin
	}
	top := tr.options.StartY
	if top <= 0 {
		if tr.target.hasCursor {
			top = tr.target.cursorY + rowHeight
		} else {
			top = margin
		}
	}

	// Fixed column widths are honored verbatim; the rest get an equal
	// share of the available width. Fixed widths are not reconciled
	// against the available width.
	available := layout.PageWidth - 2*margin
	widths := make([]float64, len(tr.columns))
	for i, col := range tr.columns {
		if col.Width > 0 {
			widths[i] = col.Width
		} else {
			widths[i] = available / float64(len(tr.columns))
		}
	}

	y := top
	if tr.options.Header != HeaderNever {
		tr.drawHeader(margin, y, widths)
		y += headerHeight
	}
	for i, row := range rows {
		tr.drawRow(i, row, margin, y, widths)
		y += rowHeight
	}

	if tr.options.Theme == ThemeGrid {
		tr.drawGridLines(margin, top, y, widths)
	}

	newY := y + margin
	tr.target.SetCursorY(newY)
	return newY, nil
}

func (tr *TableRenderer) drawHeader(x, y float64, widths []float64) {
	style := tr.options.HeaderStyle
	if tr.options.Theme == ThemeStriped {
		style.Background = stripedHeaderBackground
		style.Color = stripedHeaderForeground
	}

	if style.Background != "" {
		tr.fillRowBackground(x, y, headerHeight, widths, style.Background)
	}

	cellX := x
	for i, col := range tr.columns {
		tr.drawCell(col.Title, cellX, y, widths[i], headerHeight, headerFontSize, CellStyle{
			Align: style.Align,
			Bold:  true,
			Color: style.Color,
		})
		cellX += widths[i]
	}
}

func (tr *TableRenderer) drawRow(index int, row Row, x, y float64, widths []float64) {
	style := tr.options.BodyStyle
	if index%2 == 1 {
		if alt := tr.options.AltRowStyle; alt != (CellStyle{}) {
			style = alt
		} else if tr.options.Theme == ThemeStriped {
			style.Background = stripedAltBackground
		}
	}

	if tr.options.Theme == ThemeStriped && style.Background != "" {
		tr.fillRowBackground(x, y, rowHeight, widths, style.Background)
	}

	cellX := x
	for i, col := range tr.columns {
		cellStyle := style
		if col.Style != nil {
			cellStyle = *col.Style
		}
		tr.drawCell(row[col.Key], cellX, y, widths[i], rowHeight, cellFontSize, cellStyle)
		cellX += widths[i]
	}
}

// drawCell places one cell's text, aligned within the column and
// truncated with an ellipsis when it exceeds the interior width.
func (tr *TableRenderer) drawCell(text string, x, y, width, height, fontSize float64, style CellStyle) {
	interior := width - 2*cellPadding
	fontStyle := StyleNormal
	if style.Bold {
		fontStyle = StyleBold
	}

	text = truncateToWidth(text, interior, fontSize, style.Bold)
	tw := layout.EstimateWidth(text, fontSize, style.Bold, false)

	textX := x + cellPadding
	switch style.Align {
	case AlignCenter:
		textX = x + (width-tw)/2
	case AlignRight:
		textX = x + width - cellPadding - tw
	}

	el := NewTextElement(text, textX, y+(height-fontSize)/2, fontSize)
	el.Style = fontStyle
	el.Color = style.Color
	tr.target.emitText(el)
}

// fillRowBackground paints a full-width band behind one row.
func (tr *TableRenderer) fillRowBackground(x, y, height float64, widths []float64, color string) {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	tr.target.currentPage().content.Raw(RectElement{
		X: x, Y: y, Width: total, Height: height,
		Mode:      ModeFill,
		FillColor: color,
	}.Operators())
}

// drawGridLines draws the outline, the per-column dividers and the
// per-row dividers for the grid theme.
func (tr *TableRenderer) drawGridLines(x, top, bottom float64, widths []float64) {
	cs := tr.target.currentPage().content
	total := 0.0
	for _, w := range widths {
		total += w
	}

	tr.target.currentPage().content.Raw(RectElement{
		X: x, Y: top, Width: total, Height: bottom - top,
		Mode:        ModeStroke,
		StrokeWidth: 1,
	}.Operators())

	// Device space for the divider strokes.
	deviceTop := layout.PageHeight - top
	deviceBottom := layout.PageHeight - bottom

	cs.SetStrokeRGB(0, 0, 0).SetLineWidth(1)
	cellX := x
	for _, w := range widths[:len(widths)-1] {
		cellX += w
		cs.MoveTo(cellX, deviceTop).LineTo(cellX, deviceBottom).Stroke()
	}

	firstRow := top
	if tr.options.Header != HeaderNever {
		firstRow += headerHeight
		deviceY := layout.PageHeight - firstRow
		cs.MoveTo(x, deviceY).LineTo(x+total, deviceY).Stroke()
	}
	for y := firstRow + rowHeight; y < bottom; y += rowHeight {
		deviceY := layout.PageHeight - y
		cs.MoveTo(x, deviceY).LineTo(x+total, deviceY).Stroke()
	}
}

// truncateToWidth trims text so its estimated width fits maxWidth,
// appending an ellipsis when anything was cut.
func truncateToWidth(text string, maxWidth, fontSize float64, bold bool) string {
	if layout.EstimateWidth(text, fontSize, bold, false) <= maxWidth {
		return text
	}
	runes := []rune(strings.TrimSpace(text))
	for len(runes) > 0 {
		candidate := string(runes) + ellipsis
		if layout.EstimateWidth(candidate, fontSize, bold, false) <= maxWidth {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return ellipsis
}
