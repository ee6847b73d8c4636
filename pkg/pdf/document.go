package pdf

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/propelplm/apexpdf/pkg/layout"
	"github.com/propelplm/apexpdf/pkg/writer"
)

// Document assembles a page-description document from high-level draw
// calls and serializes it exactly once. It is single-threaded and
// non-reentrant; callers sharing one across goroutines must serialize
// access externally.
type Document struct {
	logger   *slog.Logger
	sink     Sink
	compress bool

	w      *writer.Writer
	pages  []*page
	images []*imageRecord

	cursorX   float64
	cursorY   float64
	hasCursor bool

	output    []byte
	finalized bool
}

type page struct {
	num     int
	content *writer.ContentStream
}

type imageRecord struct {
	num      int
	element  ImageElement
	embedded EmbeddedImage
}

// Option configures a Document at construction time
type Option func(*Document)

// WithLogger sets the diagnostic logger; slog.Default() is used otherwise
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) { d.logger = l }
}

// WithSink sets the output sink used by Save; the default is a FileSink
// in the current directory
func WithSink(s Sink) Option {
	return func(d *Document) { d.sink = s }
}

// WithCompression enables deflate compression of page content streams
func WithCompression() Option {
	return func(d *Document) { d.compress = true }
}

// NewDocument creates an empty document with one blank page.
func NewDocument(opts ...Option) *Document {
	d := &Document{sink: FileSink{}}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.w = writer.New(StandardFonts(), d.compress)
	d.addPage()
	return d
}

func (d *Document) addPage() *page {
	p := &page{num: d.w.NextNumber(), content: writer.NewContentStream()}
	d.pages = append(d.pages, p)
	d.hasCursor = false
	return p
}

func (d *Document) currentPage() *page {
	return d.pages[len(d.pages)-1]
}

// AddPage starts a new blank page and resets the cursor to the top margin.
func (d *Document) AddPage() error {
	if d.finalized {
		return ErrFinalized
	}
	d.addPage()
	return nil
}

// PageCount returns the number of pages started so far.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// CursorY returns the current vertical cursor in document coordinates.
func (d *Document) CursorY() float64 {
	return d.cursorY
}

// SetCursorY moves the vertical cursor.
func (d *Document) SetCursorY(y float64) {
	d.cursorY = y
	d.hasCursor = true
}

// TextOption configures one AddText or AddHeading call
type TextOption func(*textConfig)

type textConfig struct {
	x, y     *float64
	maxWidth float64
	fontSize float64
	style    FontStyle
	family   string
	color    string
	wrapX    *float64

	rotation      int
	scaleX        float64
	scaleY        float64
	opacity       float64
	strikethrough bool

	heading int
}

// WithXY places the text at an explicit position instead of flowing from
// the cursor
func WithXY(x, y float64) TextOption {
	return func(c *textConfig) { c.x, c.y = &x, &y }
}

// WithX sets only the starting X; Y still flows from the cursor
func WithX(x float64) TextOption {
	return func(c *textConfig) { c.x = &x }
}

// WithMaxWidth enables word wrapping at the given width in points
func WithMaxWidth(w float64) TextOption {
	return func(c *textConfig) { c.maxWidth = w }
}

// WithFontSize sets the font size in points
func WithFontSize(size float64) TextOption {
	return func(c *textConfig) { c.fontSize = size }
}

// WithStyle sets the font style variant
func WithStyle(s FontStyle) TextOption {
	return func(c *textConfig) { c.style = s }
}

// WithFamily sets the font family by name; unknown names default to the
// primary family
func WithFamily(name string) TextOption {
	return func(c *textConfig) { c.family = name }
}

// WithColor sets the text color as a 6-hex-digit RGB string
func WithColor(hex string) TextOption {
	return func(c *textConfig) { c.color = hex }
}

// WithWrapX makes every wrapped line after the first start at the given X
// (paragraph-reflow behavior); without it wrapped lines reuse the
// original starting X (column-preserving behavior)
func WithWrapX(x float64) TextOption {
	return func(c *textConfig) { c.wrapX = &x }
}

// WithRotation rotates the text by the given angle in degrees
func WithRotation(degrees int) TextOption {
	return func(c *textConfig) { c.rotation = degrees }
}

// WithTextScale scales the text horizontally and vertically
func WithTextScale(sx, sy float64) TextOption {
	return func(c *textConfig) { c.scaleX, c.scaleY = sx, sy }
}

// WithOpacity sets the text opacity, clamped to [0, 1]
func WithOpacity(opacity float64) TextOption {
	return func(c *textConfig) { c.opacity = opacity }
}

// WithStrikethrough draws a rule across the text
func WithStrikethrough() TextOption {
	return func(c *textConfig) { c.strikethrough = true }
}

// AddText lays text out on the current page, word-wrapping when a max
// width is configured and continuing on a fresh page when the printable
// area runs out.
func (d *Document) AddText(text string, opts ...TextOption) error {
	if d.finalized {
		return ErrFinalized
	}

	cfg := textConfig{fontSize: 12, scaleX: 1, scaleY: 1, opacity: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return d.addText(text, cfg)
}

// AddHeading places one of the three fixed heading levels. Headings are
// never wrapped; one that would cross the bottom margin moves to a fresh
// page whole.
func (d *Document) AddHeading(level int, text string, opts ...TextOption) error {
	if d.finalized {
		return ErrFinalized
	}
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}

	cfg := textConfig{scaleX: 1, scaleY: 1, opacity: 1, style: StyleBold}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.heading = level
	cfg.fontSize = layout.HeadingSizes[level-1]
	cfg.maxWidth = 0
	return d.addText(text, cfg)
}

func (d *Document) addText(text string, cfg textConfig) error {
	family, ok := ParseFontFamily(cfg.family)
	if !ok {
		d.logger.Debug("unsupported font name, using primary family",
			"font", cfg.family, "family", family.String())
	}

	color := cfg.color
	if color != "" && !validHexColor(color) {
		d.logger.Debug("malformed color, defaulting to black", "color", color)
		color = ""
	}

	base := NewTextElement("", 0, 0, cfg.fontSize)
	base.Style = cfg.style
	base.Family = family
	base.Color = color
	base.Strikethrough = cfg.strikethrough
	base = base.WithRotation(cfg.rotation).
		WithScale(cfg.scaleX, cfg.scaleY).
		WithOpacity(cfg.opacity)

	req := layout.Request{
		X:            cfg.x,
		Y:            cfg.y,
		MaxWidth:     cfg.maxWidth,
		FontSize:     cfg.fontSize,
		Bold:         cfg.style.Bold(),
		Italic:       cfg.style.Italic(),
		HeadingLevel: cfg.heading,
		WrapX:        cfg.wrapX,
	}
	if d.hasCursor {
		y := d.cursorY
		req.CursorY = &y
	}

	retried := false
	for {
		lines, rest := layout.Wrap(text, req)
		if len(lines) == 0 {
			return nil
		}

		if lines[0].PageBreak && !retried {
			// The single line does not fit below the cursor; start a
			// fresh page and lay it out from the top margin.
			retried = true
			d.addPage()
			req.Y = nil
			req.CursorY = nil
			continue
		}

		for _, line := range lines {
			el := base
			el.Text = line.Text
			el.X = line.X
			el.Y = line.Y
			d.emitText(el)
			d.cursorX = line.X
			d.cursorY = line.Y
			d.hasCursor = true
		}

		if rest == "" {
			return nil
		}

		// Continuation on a fresh page: remaining words start at the
		// wrap-target X when one was given, else at the original X.
		text = rest
		d.addPage()
		startX := lines[0].X
		if cfg.wrapX != nil {
			startX = *cfg.wrapX
		}
		req.X = &startX
		req.Y = nil
		req.CursorY = nil
	}
}

// emitText renders one laid-out element onto the current page.
func (d *Document) emitText(el TextElement) {
	cs := d.currentPage().content
	name := fontResourceName(el.Family, el.Style)
	r, g, b := parseHexColor(el.Color)

	// Opacity is approximated by blending toward the page background;
	// the container scheme has no room for transparency state objects.
	if el.Opacity < 1 {
		r = r*el.Opacity + (1 - el.Opacity)
		g = g*el.Opacity + (1 - el.Opacity)
		b = b*el.Opacity + (1 - el.Opacity)
	}

	deviceY := layout.FlipY(el.Y, el.FontSize)

	a, bm, c, dm := el.ScaleX, 0.0, 0.0, el.ScaleY
	if el.Rotation != 0 {
		rad := float64(el.Rotation) * math.Pi / 180
		sin, cos := math.Sin(rad), math.Cos(rad)
		a, bm = el.ScaleX*cos, el.ScaleX*sin
		c, dm = -el.ScaleY*sin, el.ScaleY*cos
	}

	cs.BeginText().
		SetFont(name, el.FontSize).
		SetFillRGB(r, g, b).
		SetTextMatrix(a, bm, c, dm, el.X, deviceY).
		ShowText(el.Text).
		EndText()

	if el.Strikethrough {
		width := layout.EstimateWidth(el.Text, el.FontSize, el.Style.Bold(), el.Style.Italic()) * el.ScaleX
		ruleY := deviceY + el.FontSize*0.3
		cs.SetFillRGB(r, g, b).
			Rect(el.X, ruleY, width, el.FontSize*0.06).
			Fill()
	}
}

// AddImage places an image scaled into the given box. The id must be
// unique within the document; it becomes the XObject resource name.
func (d *Document) AddImage(id string, data []byte, format string, x, y, w, h float64) error {
	if d.finalized {
		return ErrFinalized
	}
	for _, rec := range d.images {
		if rec.element.ID == id {
			return errors.Errorf("image %q: duplicate identifier", id)
		}
	}

	el := ImageElement{ID: id, Format: format, Data: data, X: x, Y: y, Width: w, Height: h}
	emb := embedImage(data, format)
	if emb.Format != FormatJPEG && emb.Format != FormatPNG {
		d.logger.Debug("unrecognized image format, using primary filter chain",
			"image", id, "format", emb.Format)
	}

	rec := &imageRecord{num: d.w.NextNumber(), element: el, embedded: emb}
	d.images = append(d.images, rec)

	deviceY := layout.PageHeight - y - h
	d.currentPage().content.
		SaveState().
		SetMatrix(w, 0, 0, h, x, deviceY).
		DrawXObject(id).
		RestoreState()
	return nil
}

// AddRect draws a rectangle on the current page.
func (d *Document) AddRect(r RectElement) error {
	if d.finalized {
		return ErrFinalized
	}
	if r.Raw == "" {
		if r.StrokeColor != "" && !validHexColor(r.StrokeColor) {
			d.logger.Debug("malformed stroke color, defaulting to black", "color", r.StrokeColor)
		}
		if r.FillColor != "" && !validHexColor(r.FillColor) {
			d.logger.Debug("malformed fill color, defaulting to black", "color", r.FillColor)
		}
	}
	d.currentPage().content.Raw(r.Operators())
	return nil
}

// Bytes finalizes the document and returns the complete byte stream:
// header, catalog, page tree, every page and image object in number
// order, cross-reference table and trailer. Finalization happens once;
// later calls return the same bytes and draw calls fail with
// ErrFinalized.
func (d *Document) Bytes() ([]byte, error) {
	if d.finalized {
		return d.output, nil
	}

	d.w.WriteHeader()
	d.w.AppendCatalog()

	pageNums := make([]int, len(d.pages))
	for i, p := range d.pages {
		pageNums[i] = p.num
	}
	xobjects := make(map[string]int, len(d.images))
	for _, rec := range d.images {
		xobjects[rec.element.ID] = rec.num
	}
	d.w.AppendPageTree(pageNums, xobjects)

	type streamObj struct {
		num          int
		dict         string
		data         []byte
		compressible bool
	}
	objs := make([]streamObj, 0, len(d.pages)+len(d.images))
	for _, p := range d.pages {
		objs = append(objs, streamObj{
			num:          p.num,
			dict:         pageDict(),
			data:         p.content.Bytes(),
			compressible: true,
		})
	}
	for _, rec := range d.images {
		objs = append(objs, streamObj{
			num:  rec.num,
			dict: rec.embedded.dict(rec.element),
			data: []byte(rec.embedded.Hex),
		})
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].num < objs[j].num })

	for _, obj := range objs {
		if _, err := d.w.AppendStream(obj.num, obj.dict, obj.data, obj.compressible); err != nil {
			return nil, err
		}
	}
	if err := d.w.WriteTrailer(); err != nil {
		return nil, err
	}

	d.output = d.w.Bytes()
	d.finalized = true
	return d.output, nil
}

// Save finalizes the document, hands the bytes to the sink and returns
// the sink-assigned identifier. Sink failures are propagated unchanged;
// the in-memory document is left intact and no retry is attempted.
func (d *Document) Save(name string) (string, error) {
	data, err := d.Bytes()
	if err != nil {
		return "", err
	}
	return d.sink.Save(name, data)
}

// pageDict renders the dictionary entries shared by every page object.
// Each page is a single indirect object carrying its content stream
// inline; resources are inherited from the page tree.
func pageDict() string {
	return fmt.Sprintf("/Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d]",
		writer.PageTreeNumber, int(layout.PageWidth), int(layout.PageHeight))
}
