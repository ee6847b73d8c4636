package writer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

var testFonts = []FontResource{
	{Name: "F1", BaseFont: "Helvetica"},
	{Name: "F2", BaseFont: "Helvetica-Bold"},
}

func TestOffsetsPointAtObjectMarkers(t *testing.T) {
	w := New(testFonts, false)
	pageNum := w.NextNumber()

	w.WriteHeader()
	w.AppendCatalog()
	w.AppendPageTree([]int{pageNum}, nil)
	if _, err := w.AppendStream(pageNum, "/Type /Page /Parent 2 0 R", []byte("BT ET"), true); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteTrailer(); err != nil {
		t.Fatal(err)
	}

	out := w.Bytes()
	prev := -1
	for num := 1; num <= 3; num++ {
		off := w.Offset(num)
		if off <= prev {
			t.Errorf("offset of object %d (%d) not strictly increasing", num, off)
		}
		prev = off

		marker := fmt.Sprintf("%d 0 obj", num)
		if !bytes.HasPrefix(out[off:], []byte(marker)) {
			t.Errorf("offset %d of object %d does not point at %q", off, num, marker)
		}
	}
}

func TestHeaderAndTrailerStructure(t *testing.T) {
	w := New(testFonts, false)
	pageNum := w.NextNumber()

	w.WriteHeader()
	w.AppendCatalog()
	w.AppendPageTree([]int{pageNum}, nil)
	if _, err := w.AppendStream(pageNum, "/Type /Page /Parent 2 0 R", []byte("BT ET"), true); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteTrailer(); err != nil {
		t.Fatal(err)
	}

	out := string(w.Bytes())
	if !strings.HasPrefix(out, "%PDF-1.4\n") {
		t.Error("missing version header line")
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Error("missing end-of-file marker")
	}
	if !strings.Contains(out, "xref\n0 4\n") {
		t.Error("xref section should list 4 entries including the free object")
	}
	if !strings.Contains(out, "/Size 4 /Root 1 0 R") {
		t.Error("trailer should name the catalog and the total object count")
	}
	if !strings.Contains(out, "0000000000 65535 f ") {
		t.Error("xref should start with the free-object entry")
	}
}

func TestCatalogAndPageTreeFixedOrder(t *testing.T) {
	w := New(testFonts, false)
	w.WriteHeader()
	w.AppendCatalog()
	w.AppendPageTree([]int{3, 4}, nil)

	out := string(w.Bytes())
	catalogAt := strings.Index(out, "1 0 obj")
	treeAt := strings.Index(out, "2 0 obj")
	if catalogAt < 0 || treeAt < 0 || catalogAt > treeAt {
		t.Fatalf("catalog must precede the page tree: %d vs %d", catalogAt, treeAt)
	}
	if !strings.Contains(out, "/Kids [3 0 R 4 0 R]") {
		t.Error("page tree should enumerate page object numbers in order")
	}
	if !strings.Contains(out, "/Count 2") {
		t.Error("page tree should carry the page count")
	}
}

func TestPageTreeResources(t *testing.T) {
	w := New(testFonts, false)
	w.AppendPageTree([]int{3}, map[string]int{"logo": 4})

	out := string(w.Bytes())
	if !strings.Contains(out, "/ProcSet [/PDF /Text /ImageB /ImageC]") {
		t.Error("missing fixed procedure set")
	}
	if !strings.Contains(out, "/F1 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>") {
		t.Error("missing injected font resource F1")
	}
	if !strings.Contains(out, "/F2 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>") {
		t.Error("missing injected font resource F2")
	}
	if !strings.Contains(out, "/XObject << /logo 4 0 R >>") {
		t.Error("missing XObject sub-dictionary for the embedded image")
	}
}

func TestPageTreeOmitsEmptyXObjects(t *testing.T) {
	w := New(testFonts, false)
	w.AppendPageTree([]int{3}, nil)
	if strings.Contains(string(w.Bytes()), "/XObject") {
		t.Error("XObject sub-dictionary should be absent without images")
	}
}

func TestNumbersStartAfterReserved(t *testing.T) {
	w := New(testFonts, false)
	if n := w.NextNumber(); n != 3 {
		t.Errorf("first assigned number = %d, want 3", n)
	}
	if n := w.NextNumber(); n != 4 {
		t.Errorf("second assigned number = %d, want 4", n)
	}
}

func TestStreamLengthDeclared(t *testing.T) {
	w := New(testFonts, false)
	data := []byte("0.000 0.000 0.000 RG\n")
	if _, err := w.AppendStream(3, "/Type /Page", data, false); err != nil {
		t.Fatal(err)
	}
	if want := fmt.Sprintf("/Length %d", len(data)); !strings.Contains(string(w.Bytes()), want) {
		t.Errorf("stream dictionary should declare %q", want)
	}
}

func TestCompressedStreamRoundTrips(t *testing.T) {
	w := New(testFonts, true)
	content := bytes.Repeat([]byte("BT /F1 12 Tf (hello) Tj ET\n"), 50)
	if _, err := w.AppendStream(3, "/Type /Page", content, true); err != nil {
		t.Fatal(err)
	}

	out := w.Bytes()
	if !bytes.Contains(out, []byte("/Filter /FlateDecode")) {
		t.Fatal("compressed stream should declare the flate filter")
	}

	start := bytes.Index(out, []byte("stream\n")) + len("stream\n")
	end := bytes.Index(out, []byte("\nendstream"))
	if start < 0 || end < 0 || end <= start {
		t.Fatal("malformed stream framing")
	}

	zr, err := zlib.NewReader(bytes.NewReader(out[start:end]))
	if err != nil {
		t.Fatalf("opening deflated stream: %v", err)
	}
	defer zr.Close()
	decoded, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("inflating stream: %v", err)
	}
	if !bytes.Equal(decoded, content) {
		t.Error("inflated stream differs from the original content")
	}
}

func TestUncompressedImageStreamKeptVerbatim(t *testing.T) {
	w := New(testFonts, true)
	payload := []byte("FFD8FFE0>")
	if _, err := w.AppendStream(3, "/Subtype /Image", payload, false); err != nil {
		t.Fatal(err)
	}
	out := w.Bytes()
	if bytes.Contains(out, []byte("/Filter /FlateDecode")) {
		t.Error("non-compressible stream must not be deflated")
	}
	if !bytes.Contains(out, payload) {
		t.Error("payload should appear verbatim")
	}
}

func TestTrailerFailsOnMissingObject(t *testing.T) {
	w := New(testFonts, false)
	w.NextNumber() // allocated but never appended
	w.AppendCatalog()
	w.AppendPageTree(nil, nil)
	if err := w.WriteTrailer(); err == nil {
		t.Fatal("expected an error for an allocated but unwritten object")
	}
}
