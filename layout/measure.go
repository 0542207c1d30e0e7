package layout

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// CharWidthFactor is the approximate width of one display cell as a
// fraction of font size. Accurate font metrics are out of scope; the whole
// engine measures with this average-character model.
const CharWidthFactor = 0.5

// epsilon absorbs float error in fit comparisons; a word exactly filling
// the remaining width fits.
const epsilon = 1e-6

// RuneAdvance returns the approximate advance width of one rune at the
// given font size. Wide (East Asian) runes occupy two cells, zero-width
// runes none.
func RuneAdvance(r rune, fontSize float64) float64 {
	return float64(runewidth.RuneWidth(r)) * fontSize * CharWidthFactor
}

// TextAdvance returns the approximate advance width of a string at the
// given font size.
func TextAdvance(s string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(s)) * fontSize * CharWidthFactor
}

// CharCount returns the number of user-perceived characters (grapheme
// clusters) in a string. The height estimator sizes paragraphs by this
// count.
func CharCount(s string) int {
	n := 0
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		n++
	}
	return n
}
