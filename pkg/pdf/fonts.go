package pdf

import (
	"strings"

	"github.com/propelplm/apexpdf/pkg/writer"
)

// FontFamily represents one of the supported font families
type FontFamily int

const (
	// FamilyHelvetica is the primary family; unknown names default to it
	FamilyHelvetica FontFamily = iota
	FamilyTimes
	FamilyCourier
	FamilySymbol
)

// String returns the family name
func (f FontFamily) String() string {
	switch f {
	case FamilyTimes:
		return "Times"
	case FamilyCourier:
		return "Courier"
	case FamilySymbol:
		return "Symbol"
	default:
		return "Helvetica"
	}
}

// ParseFontFamily maps a font name to a supported family. ok is false
// when the name is unrecognized, in which case the primary family is
// returned for the caller to default to.
func ParseFontFamily(name string) (family FontFamily, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "helvetica", "arial":
		return FamilyHelvetica, true
	case "times", "times-roman", "times new roman":
		return FamilyTimes, true
	case "courier":
		return FamilyCourier, true
	case "symbol":
		return FamilySymbol, true
	}
	return FamilyHelvetica, false
}

// standardFonts is the fixed 8-slot resource table shared by every
// document: two base families in four variants each. It is loaded once
// and injected read-only into the serializer.
var standardFonts = []writer.FontResource{
	{Name: "F1", BaseFont: "Helvetica"},
	{Name: "F2", BaseFont: "Helvetica-Bold"},
	{Name: "F3", BaseFont: "Helvetica-Oblique"},
	{Name: "F4", BaseFont: "Helvetica-BoldOblique"},
	{Name: "F5", BaseFont: "Times-Roman"},
	{Name: "F6", BaseFont: "Times-Bold"},
	{Name: "F7", BaseFont: "Times-Italic"},
	{Name: "F8", BaseFont: "Times-BoldItalic"},
}

// StandardFonts returns a copy of the fixed font resource table.
func StandardFonts() []writer.FontResource {
	out := make([]writer.FontResource, len(standardFonts))
	copy(out, standardFonts)
	return out
}

// fontResourceName selects the resource slot for a family and style.
// Courier and Symbol have no dedicated slots and resolve to the
// Helvetica variants.
func fontResourceName(family FontFamily, style FontStyle) string {
	base := 0
	if family == FamilyTimes {
		base = 4
	}
	return standardFonts[base+int(style)].Name
}
