// Package apexpdf builds page-description documents from high-level
// drawing commands (text, headings, images, rectangles and tables) and
// serializes them to an indirect-object-addressed byte stream.
package apexpdf

import (
	"github.com/propelplm/apexpdf/pkg/pdf"
)

// Re-export types from the pdf package for the public API
type (
	Document      = pdf.Document
	Option        = pdf.Option
	TextOption    = pdf.TextOption
	TextElement   = pdf.TextElement
	ImageElement  = pdf.ImageElement
	RectElement   = pdf.RectElement
	Column        = pdf.Column
	Row           = pdf.Row
	CellStyle     = pdf.CellStyle
	TableOptions  = pdf.TableOptions
	TableRenderer = pdf.TableRenderer
	Sink          = pdf.Sink
	RowSource     = pdf.RowSource
	StaticRows    = pdf.StaticRows
	FileSink      = pdf.FileSink
	FontStyle     = pdf.FontStyle
	FontFamily    = pdf.FontFamily
	DrawMode      = pdf.DrawMode
	Alignment     = pdf.Alignment
	TableTheme    = pdf.TableTheme
	HeaderPolicy  = pdf.HeaderPolicy
)

// Re-export constants
const (
	StyleNormal     = pdf.StyleNormal
	StyleBold       = pdf.StyleBold
	StyleItalic     = pdf.StyleItalic
	StyleBoldItalic = pdf.StyleBoldItalic

	ModeStroke     = pdf.ModeStroke
	ModeFill       = pdf.ModeFill
	ModeFillStroke = pdf.ModeFillStroke

	AlignLeft   = pdf.AlignLeft
	AlignCenter = pdf.AlignCenter
	AlignRight  = pdf.AlignRight

	ThemeGrid    = pdf.ThemeGrid
	ThemeStriped = pdf.ThemeStriped

	HeaderEveryPage = pdf.HeaderEveryPage
	HeaderFirstPage = pdf.HeaderFirstPage
	HeaderNever     = pdf.HeaderNever
)

// Re-export errors
var (
	ErrNoColumns = pdf.ErrNoColumns
	ErrNoTarget  = pdf.ErrNoTarget
	ErrFinalized = pdf.ErrFinalized
)

// Re-export option functions
var (
	WithLogger      = pdf.WithLogger
	WithSink        = pdf.WithSink
	WithCompression = pdf.WithCompression

	WithXY            = pdf.WithXY
	WithX             = pdf.WithX
	WithMaxWidth      = pdf.WithMaxWidth
	WithFontSize      = pdf.WithFontSize
	WithStyle         = pdf.WithStyle
	WithFamily        = pdf.WithFamily
	WithColor         = pdf.WithColor
	WithWrapX         = pdf.WithWrapX
	WithRotation      = pdf.WithRotation
	WithTextScale     = pdf.WithTextScale
	WithOpacity       = pdf.WithOpacity
	WithStrikethrough = pdf.WithStrikethrough
)

// New creates an empty document with one blank page
func New(opts ...Option) *Document {
	return pdf.NewDocument(opts...)
}

// NewTableRenderer binds a table renderer to a document
func NewTableRenderer(target *Document, columns []Column, options TableOptions) *TableRenderer {
	return pdf.NewTableRenderer(target, columns, options)
}
