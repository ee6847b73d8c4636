// Package layout implements the approximate text measurement and
// line-wrapping model used for positioning text on a page. No real font
// metrics are available, so widths are estimated from a per-character base
// width with adjustments for style and character class.
package layout

import (
	"github.com/mattn/go-runewidth"
)

// Page geometry in points. One fixed paper size, one fixed margin.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 30.0
)

// Width model constants. BaseCharWidth is the width of an average
// character at ReferenceSize points.
const (
	BaseCharWidth = 6.0
	ReferenceSize = 12.0

	boldFactor   = 1.10
	italicFactor = 1.08
	narrowFactor = 0.55
	wideFactor   = 1.45
)

// Heading sizes in points, levels 1-3.
var HeadingSizes = [3]float64{24, 18, 14}

// Line-height ratios. Headings get a larger ratio than body text,
// the largest heading getting the largest boost.
const (
	baseLineRatio = 1.2
	h1LineRatio   = 1.5
	h2LineRatio   = 1.4
	h3LineRatio   = 1.3
)

var narrowChars = map[rune]bool{}
var wideChars = map[rune]bool{}

func init() {
	for _, r := range " ijltfr.,;:!'|()[]{}" {
		narrowChars[r] = true
	}
	for _, r := range "mwMW@%&" {
		wideChars[r] = true
	}
}

// EstimateWidth returns the approximate rendered width of text in points.
// Narrow characters contribute 55% of the base width, wide characters
// (including double-width runes such as CJK) 145%, everything else 100%.
// Bold adds 10%, italic 8%.
func EstimateWidth(text string, fontSize float64, bold, italic bool) float64 {
	perChar := BaseCharWidth * fontSize / ReferenceSize

	var total float64
	for _, r := range text {
		switch {
		case narrowChars[r]:
			total += perChar * narrowFactor
		case wideChars[r] || runewidth.RuneWidth(r) == 2:
			total += perChar * wideFactor
		default:
			total += perChar
		}
	}

	if bold {
		total *= boldFactor
	}
	if italic {
		total *= italicFactor
	}
	return total
}

// LineHeight returns the vertical advance for one line of text at the
// given size. headingLevel 0 means body text.
func LineHeight(fontSize float64, headingLevel int) float64 {
	ratio := baseLineRatio
	switch headingLevel {
	case 1:
		ratio = h1LineRatio
	case 2:
		ratio = h2LineRatio
	case 3:
		ratio = h3LineRatio
	}
	return fontSize * ratio
}

// FlipY converts a top-left-origin Y coordinate to the device space used
// by the output format (bottom-left origin, Y up), correcting the baseline
// by the font size.
func FlipY(y, fontSize float64) float64 {
	return PageHeight - y - fontSize
}
