package layout

import (
	"unicode"

	"github.com/tsawler/flowtext/catalog"
	"github.com/tsawler/flowtext/model"
)

// LineBox is one laid-out line of a paragraph. Start and End are rune
// offsets into the paragraph's plain text, half-open; X and Y are relative
// to the frame's usable area. LineBoxes are derived, disposable values.
type LineBox struct {
	ParagraphID model.ParagraphID
	Start       int
	End         int
	X           float64
	Y           float64
	Width       float64
	Height      float64
}

// wordSpan is one whitespace-delimited word with its rune range and
// measured width.
type wordSpan struct {
	start int
	end   int
	width float64
}

// scanWords splits text on whitespace, recording rune offsets and
// approximate widths.
func scanWords(text string, fontSize float64) []wordSpan {
	var words []wordSpan
	pos := 0
	start := -1
	width := 0.0
	for _, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, wordSpan{start: start, end: pos, width: width})
				start = -1
				width = 0
			}
		} else {
			if start < 0 {
				start = pos
			}
			width += RuneAdvance(r, fontSize)
		}
		pos++
	}
	if start >= 0 {
		words = append(words, wordSpan{start: start, end: pos, width: width})
	}
	return words
}

// BreakParagraph word-wraps a paragraph's plain text under its effective
// format. Lines are stacked from startY downward.
func BreakParagraph(p *model.Paragraph, eff catalog.Effective, usableWidth, startY float64) []LineBox {
	return BreakText(p.PlainText(), p.ID, eff, usableWidth, startY)
}

// BreakText greedily word-wraps text into line boxes. A word fits while
// current + space + word stays within the available width (a word exactly
// filling the line fits). A single word wider than the line is placed alone,
// never dropped. Empty text yields exactly one zero-width line of height
// fontSize × lineSpacing, so empty paragraphs still occupy vertical space.
func BreakText(text string, id model.ParagraphID, eff catalog.Effective, usableWidth, startY float64) []LineBox {
	lineHeight := eff.LineHeight()
	firstAvail := usableWidth - eff.LeftIndent - eff.FirstIndent - eff.RightIndent
	restAvail := usableWidth - eff.LeftIndent - eff.RightIndent
	spaceWidth := eff.FontSize * CharWidthFactor

	words := scanWords(text, eff.FontSize)
	if len(words) == 0 {
		return []LineBox{{
			ParagraphID: id,
			X:           lineX(eff, true, firstAvail, 0),
			Y:           startY,
			Height:      lineHeight,
		}}
	}

	var lines []LineBox
	y := startY
	first := true
	start, end := -1, -1
	width := 0.0

	flush := func() {
		avail := restAvail
		if first {
			avail = firstAvail
		}
		lines = append(lines, LineBox{
			ParagraphID: id,
			Start:       start,
			End:         end,
			X:           lineX(eff, first, avail, width),
			Y:           y,
			Width:       width,
			Height:      lineHeight,
		})
		y += lineHeight
		first = false
		start = -1
		width = 0
	}

	for _, w := range words {
		if start < 0 {
			start, end, width = w.start, w.end, w.width
			continue
		}
		avail := restAvail
		if first {
			avail = firstAvail
		}
		if width+spaceWidth+w.width <= avail+epsilon {
			width += spaceWidth + w.width
			end = w.end
			continue
		}
		flush()
		start, end, width = w.start, w.end, w.width
	}
	flush()

	return lines
}

// lineX positions a line inside the usable width according to indentation
// and alignment. Justification is not micro-spaced; justified lines sit at
// the left indent like left-aligned ones.
func lineX(eff catalog.Effective, first bool, avail, lineWidth float64) float64 {
	indent := eff.LeftIndent
	if first {
		indent += eff.FirstIndent
	}
	slack := avail - lineWidth
	if slack < 0 {
		slack = 0
	}
	switch eff.Alignment {
	case model.AlignCenter:
		return indent + slack/2
	case model.AlignRight:
		return indent + slack
	default:
		return indent
	}
}
