package writer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// Object numbers 1 and 2 are reserved for the catalog and the page tree.
// Everything else is numbered sequentially from firstFreeNumber in
// creation order.
const (
	CatalogNumber  = 1
	PageTreeNumber = 2

	firstFreeNumber = 3
)

const (
	headerLine   = "%PDF-1.4\n"
	binaryMarker = "%\xe2\xe3\xcf\xd3\n"
)

// FontResource maps a fixed resource name to a base font. The standard
// table is injected by the caller; the writer treats it as read-only.
type FontResource struct {
	Name     string // resource name without the leading slash, e.g. "F1"
	BaseFont string // e.g. "Helvetica-Bold"
}

// Writer is the append-only object serializer. It owns the output buffer,
// the object-number counter and the per-object byte offsets used to build
// the cross-reference table. It is not safe for concurrent use.
type Writer struct {
	buf      bytes.Buffer
	offsets  map[int]int
	nextNum  int
	maxNum   int
	fonts    []FontResource
	compress bool
}

// New creates a Writer with the given read-only font resource table.
func New(fonts []FontResource, compress bool) *Writer {
	return &Writer{
		offsets:  make(map[int]int),
		nextNum:  firstFreeNumber,
		maxNum:   PageTreeNumber,
		fonts:    fonts,
		compress: compress,
	}
}

// NextNumber assigns the next free object number.
func (w *Writer) NextNumber() int {
	n := w.nextNum
	w.nextNum++
	if n > w.maxNum {
		w.maxNum = n
	}
	return n
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the serialized output built so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Offset returns the recorded byte offset of an object, or -1 if the
// object has not been appended.
func (w *Writer) Offset(num int) int {
	off, ok := w.offsets[num]
	if !ok {
		return -1
	}
	return off
}

// ObjectCount returns the number of objects appended so far.
func (w *Writer) ObjectCount() int {
	return len(w.offsets)
}

// WriteHeader emits the version line and the binary-marker comment.
// It must be called exactly once, before any object is appended.
func (w *Writer) WriteHeader() {
	w.buf.WriteString(headerLine)
	w.buf.WriteString(binaryMarker)
}

// AppendObject records the current buffer length as the object's offset,
// then appends the numbered object. The offset is what later lands in the
// cross-reference table.
func (w *Writer) AppendObject(num int, body string) int {
	offset := w.buf.Len()
	w.offsets[num] = offset
	if num > w.maxNum {
		w.maxNum = num
	}
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", num, body)
	return offset
}

// AppendStream appends a numbered stream object. dict holds the dictionary
// entries without /Length, which is added here. When the writer was built
// with compression enabled and the stream is compressible, the data is
// deflated and a /Filter entry added.
func (w *Writer) AppendStream(num int, dict string, data []byte, compressible bool) (int, error) {
	filter := ""
	if w.compress && compressible {
		var zbuf bytes.Buffer
		zw := zlib.NewWriter(&zbuf)
		if _, err := zw.Write(data); err != nil {
			return 0, errors.Wrap(err, "compressing stream")
		}
		if err := zw.Close(); err != nil {
			return 0, errors.Wrap(err, "compressing stream")
		}
		data = zbuf.Bytes()
		filter = " /Filter /FlateDecode"
	}

	offset := w.buf.Len()
	w.offsets[num] = offset
	if num > w.maxNum {
		w.maxNum = num
	}
	fmt.Fprintf(&w.buf, "%d 0 obj\n<< %s /Length %d%s >>\nstream\n", num, dict, len(data), filter)
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
	return offset, nil
}

// AppendCatalog emits the document catalog as object 1. The catalog and
// the page tree are always the first two objects, in that order.
func (w *Writer) AppendCatalog() int {
	return w.AppendObject(CatalogNumber, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", PageTreeNumber))
}

// AppendPageTree emits the page tree as object 2, enumerating the page
// object numbers and the shared resource dictionary: the fixed procedure
// set, the injected font table and, when images are present, an XObject
// sub-dictionary mapping each image identifier to its object number.
func (w *Writer) AppendPageTree(pageNums []int, xobjects map[string]int) int {
	var kids bytes.Buffer
	for i, n := range pageNums {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(&kids, "%d 0 R", n)
	}

	var res bytes.Buffer
	res.WriteString("/ProcSet [/PDF /Text /ImageB /ImageC] /Font << ")
	for _, f := range w.fonts {
		fmt.Fprintf(&res, "/%s << /Type /Font /Subtype /Type1 /BaseFont /%s >> ", f.Name, f.BaseFont)
	}
	res.WriteString(">>")

	if len(xobjects) > 0 {
		names := make([]string, 0, len(xobjects))
		for name := range xobjects {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool { return xobjects[names[i]] < xobjects[names[j]] })
		res.WriteString(" /XObject << ")
		for _, name := range names {
			fmt.Fprintf(&res, "/%s %d 0 R ", name, xobjects[name])
		}
		res.WriteString(">>")
	}

	body := fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /Resources << %s >> >>",
		kids.String(), len(pageNums), res.String())
	return w.AppendObject(PageTreeNumber, body)
}

// WriteTrailer emits the cross-reference section listing the recorded
// offset of every object in number order, then the trailer referencing
// the catalog and the total object count, terminated by the end-of-file
// marker. The output is complete and immutable afterwards.
func (w *Writer) WriteTrailer() error {
	startXref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", w.maxNum+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= w.maxNum; num++ {
		off, ok := w.offsets[num]
		if !ok {
			return errors.Errorf("object %d was allocated but never appended", num)
		}
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		w.maxNum+1, CatalogNumber, startXref)
	return nil
}
