package pdf

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Supported image encodings. JPEG is the primary encoding; empty or
// unrecognized tags fall back to its filter chain.
const (
	FormatJPEG = "JPEG"
	FormatPNG  = "PNG"
)

const hexEOD = ">"

// EmbeddedImage is the result of transforming an image element into
// dictionary and stream form. It holds no ownership of the source bytes.
type EmbeddedImage struct {
	Format     string   // normalized tag, or the caller's original tag
	Filters    []string // decode-filter chain, outermost first
	ColorSpace string
	Hex        string // hex-encoded payload including the end-of-data marker
	Length     int    // declared stream length, terminator included
}

// embedImage normalizes the format tag, selects the decode-filter chain
// and hex-encodes the payload. Unrecognized tags keep the caller's
// declared format but use the primary chain, treating the payload as
// already-compressed opaque data.
func embedImage(data []byte, format string) EmbeddedImage {
	tag := strings.ToUpper(strings.TrimSpace(format))

	filters := []string{"ASCIIHexDecode", "DCTDecode"}
	switch tag {
	case "", "JPG":
		tag = FormatJPEG
	case FormatJPEG:
	case FormatPNG:
		filters = []string{"ASCIIHexDecode", "FlateDecode"}
	}

	payload := strings.ToUpper(hex.EncodeToString(data)) + hexEOD
	return EmbeddedImage{
		Format:     tag,
		Filters:    filters,
		ColorSpace: "DeviceRGB",
		Hex:        payload,
		Length:     len(payload),
	}
}

// dict renders the XObject dictionary entries for an image placed in the
// given box. Width and height come from the placement element: the image
// is scaled to the requested box, never resampled.
func (e EmbeddedImage) dict(img ImageElement) string {
	var b strings.Builder
	b.WriteString("/Type /XObject /Subtype /Image")
	fmt.Fprintf(&b, " /Name /%s", img.ID)
	fmt.Fprintf(&b, " /Width %d /Height %d", int(img.Width), int(img.Height))
	b.WriteString(" /BitsPerComponent 8")
	fmt.Fprintf(&b, " /ColorSpace /%s", e.ColorSpace)
	b.WriteString(" /Filter [")
	for i, f := range e.Filters {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("/" + f)
	}
	b.WriteString("]")
	return b.String()
}
