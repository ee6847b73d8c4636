package pdf

// FontStyle represents the style variant of a font
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// String returns the style name
func (s FontStyle) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	default:
		return "normal"
	}
}

// Bold reports whether the style includes a bold weight
func (s FontStyle) Bold() bool {
	return s == StyleBold || s == StyleBoldItalic
}

// Italic reports whether the style includes an oblique slant
func (s FontStyle) Italic() bool {
	return s == StyleItalic || s == StyleBoldItalic
}

// TextElement represents one positioned run of text in document
// coordinates (origin top-left, Y increases downward)
type TextElement struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Style    FontStyle
	Family   FontFamily
	Color    string // 6-hex-digit RGB; anything else renders black

	Rotation      int // degrees, 0-359
	ScaleX        float64
	ScaleY        float64
	Opacity       float64 // 0.0-1.0
	Strikethrough bool

	// PageBreak is set when vertical placement would exceed the
	// printable area; the element was not added to any page.
	PageBreak bool
}

// NewTextElement creates a text element with the default styling:
// primary family, normal style, black, unit scale, fully opaque.
func NewTextElement(text string, x, y, fontSize float64) TextElement {
	return TextElement{
		Text:     text,
		X:        x,
		Y:        y,
		FontSize: fontSize,
		Family:   FamilyHelvetica,
		ScaleX:   1,
		ScaleY:   1,
		Opacity:  1,
	}
}

// WithRotation returns a copy with the rotation angle normalized mod 360
func (e TextElement) WithRotation(degrees int) TextElement {
	e.Rotation = ((degrees % 360) + 360) % 360
	return e
}

// WithScale returns a copy with the given axis scales; non-positive
// values fall back to 1
func (e TextElement) WithScale(sx, sy float64) TextElement {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	e.ScaleX, e.ScaleY = sx, sy
	return e
}

// WithOpacity returns a copy with the opacity clamped to [0, 1]
func (e TextElement) WithOpacity(opacity float64) TextElement {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	e.Opacity = opacity
	return e
}

// ImageElement represents an image placement. The document owns the
// element for its lifetime; the image pipeline only transforms it.
type ImageElement struct {
	ID     string // unique within the document, used as the XObject name
	Format string // source format tag, normalized at embed time
	Data   []byte

	X      float64
	Y      float64
	Width  float64 // placement box in device points, not pixel dimensions
	Height float64
}

// DrawMode selects which painting operators a rectangle emits
type DrawMode int

const (
	ModeStroke DrawMode = iota
	ModeFill
	ModeFillStroke
)

// String returns the mode name
func (m DrawMode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeFillStroke:
		return "fill-stroke"
	default:
		return "stroke"
	}
}

// RectElement represents a rectangle in document coordinates
type RectElement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	Mode        DrawMode
	StrokeColor string  // 6-hex or empty; invalid renders black
	FillColor   string  // 6-hex or empty; invalid renders black
	StrokeWidth float64 // points; 0 is replaced by 1 at emission

	// Raw, when set, is emitted verbatim instead of the rectangle
	// operators. Used for shapes the primitive cannot express, such as
	// diagonal rules.
	Raw string
}

// Row is one record of table body data, keyed by column data key
type Row map[string]string

// Alignment represents horizontal cell text alignment
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// CellStyle carries the visual overrides applied to a table cell
type CellStyle struct {
	Align      Alignment
	Bold       bool
	Color      string // text color, 6-hex
	Background string // fill color, 6-hex; empty means no fill
}

// Column describes one table column
type Column struct {
	Title string
	Key   string  // data key looked up in each Row
	Width float64 // fixed width in points; 0 means equal division
	Style *CellStyle
}

// TableTheme selects the table rendering style
type TableTheme int

const (
	// ThemeGrid draws a full outline plus per-column and per-row dividers
	ThemeGrid TableTheme = iota
	// ThemeStriped paints alternating row backgrounds with no borders and
	// forces a fixed header color pair
	ThemeStriped
)

// HeaderPolicy controls on which pages the header row is drawn
type HeaderPolicy int

const (
	HeaderEveryPage HeaderPolicy = iota
	HeaderFirstPage
	HeaderNever
)

// TableOptions configures one table draw call
type TableOptions struct {
	Theme  TableTheme
	Header HeaderPolicy

	StartY float64 // 0 means the current document cursor
	Margin float64 // 0 means the page margin

	HeaderStyle CellStyle
	BodyStyle   CellStyle
	AltRowStyle CellStyle
}
