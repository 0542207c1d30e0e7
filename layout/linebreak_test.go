package layout

import (
	"testing"

	"github.com/tsawler/flowtext/catalog"
	"github.com/tsawler/flowtext/model"
)

// makeEff returns a 12pt/1.5 format: 6pt per character cell, 18pt lines.
func makeEff() catalog.Effective {
	return catalog.Effective{
		FontName:    "Helvetica",
		FontSize:    12,
		LineSpacing: 1.5,
	}
}

func TestBreakText_EmptyParagraph(t *testing.T) {
	lines := BreakText("", 1, makeEff(), 100, 0)

	if len(lines) != 1 {
		t.Fatalf("Expected exactly 1 line, got %d", len(lines))
	}
	ln := lines[0]
	if ln.Width != 0 {
		t.Errorf("Expected zero width, got %v", ln.Width)
	}
	if ln.Height != 18 {
		t.Errorf("Expected height fontSize*lineSpacing = 18, got %v", ln.Height)
	}
	if ln.Start != 0 || ln.End != 0 {
		t.Errorf("Expected empty range, got [%d,%d)", ln.Start, ln.End)
	}
}

func TestBreakText_WhitespaceOnlyBehavesAsEmpty(t *testing.T) {
	lines := BreakText("   \t ", 1, makeEff(), 100, 0)
	if len(lines) != 1 || lines[0].Width != 0 {
		t.Errorf("Expected single zero-width line, got %+v", lines)
	}
}

func TestBreakText_GreedyWrap(t *testing.T) {
	// 4-char words are 24pt; "aaaa bbbb" is 54pt, the third word overflows 60.
	lines := BreakText("aaaa bbbb cccc", 7, makeEff(), 60, 0)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Start != 0 || lines[0].End != 9 {
		t.Errorf("Line 1: expected range [0,9), got [%d,%d)", lines[0].Start, lines[0].End)
	}
	if lines[0].Width != 54 {
		t.Errorf("Line 1: expected width 54, got %v", lines[0].Width)
	}
	if lines[1].Start != 10 || lines[1].End != 14 {
		t.Errorf("Line 2: expected range [10,14), got [%d,%d)", lines[1].Start, lines[1].End)
	}
	for _, ln := range lines {
		if ln.ParagraphID != 7 {
			t.Errorf("Expected paragraph id 7, got %d", ln.ParagraphID)
		}
	}
}

func TestBreakText_ExactFitTieGoesToFitting(t *testing.T) {
	// "aaaa bbbb" is exactly 54pt wide.
	lines := BreakText("aaaa bbbb", 1, makeEff(), 54, 0)
	if len(lines) != 1 {
		t.Fatalf("Expected exact fit on one line, got %d lines", len(lines))
	}
}

func TestBreakText_OversizedWordPlacedAlone(t *testing.T) {
	// 16 chars = 96pt, wider than the 60pt line.
	lines := BreakText("tiny abcdefghijklmnop end", 1, makeEff(), 60, 0)

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[1].Width != 96 {
		t.Errorf("Expected oversized word kept whole at 96pt, got %v", lines[1].Width)
	}
	if lines[1].Start != 5 || lines[1].End != 21 {
		t.Errorf("Expected range [5,21), got [%d,%d)", lines[1].Start, lines[1].End)
	}
}

func TestBreakText_FirstLineIndent(t *testing.T) {
	eff := makeEff()
	eff.LeftIndent = 6
	eff.FirstIndent = 12

	// First line avail 60-18=42: "aaaa bbbb" is 54, so only "aaaa" fits.
	// Second line avail 54: "bbbb cccc" is 54, exact fit.
	lines := BreakText("aaaa bbbb cccc", 1, eff, 60, 0)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].X != 18 {
		t.Errorf("First line: expected x = firstIndent+leftIndent = 18, got %v", lines[0].X)
	}
	if lines[1].X != 6 {
		t.Errorf("Second line: expected x = leftIndent = 6, got %v", lines[1].X)
	}
}

func TestBreakText_AbsoluteYPositions(t *testing.T) {
	lines := BreakText("aaaa bbbb cccc", 1, makeEff(), 60, 100)

	if lines[0].Y != 100 {
		t.Errorf("Expected first line at y=100, got %v", lines[0].Y)
	}
	if lines[1].Y != 118 {
		t.Errorf("Expected second line at y=118, got %v", lines[1].Y)
	}
}

func TestBreakText_WideRunesCountTwoCells(t *testing.T) {
	eff := makeEff()
	narrow := BreakText("ab", 1, eff, 100, 0)
	wide := BreakText("世界", 1, eff, 100, 0)

	if narrow[0].Width != 12 {
		t.Errorf("Expected ascii pair width 12, got %v", narrow[0].Width)
	}
	if wide[0].Width != 24 {
		t.Errorf("Expected CJK pair width 24, got %v", wide[0].Width)
	}
}

func TestBreakText_Alignment(t *testing.T) {
	tests := []struct {
		name  string
		align model.Alignment
		wantX float64
	}{
		{"left", model.AlignLeft, 0},
		{"center", model.AlignCenter, 24},
		{"right", model.AlignRight, 48},
		{"justify sits left", model.AlignJustify, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := makeEff()
			eff.Alignment = tt.align
			// Single 2-char word: 12pt wide in a 60pt line.
			lines := BreakText("ab", 1, eff, 60, 0)
			if lines[0].X != tt.wantX {
				t.Errorf("Expected x=%v, got %v", tt.wantX, lines[0].X)
			}
		})
	}
}

func TestBreakParagraph_UsesPlainText(t *testing.T) {
	p := &model.Paragraph{
		ID: 3,
		Content: []model.Inline{
			&model.TextRun{Text: "value "},
			&model.Variable{Name: "n", Value: "42"},
		},
	}

	lines := BreakParagraph(p, makeEff(), 100, 0)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	// "value 42" = two words, 5 and 2 chars: 30 + 6 + 12 = 48.
	if lines[0].Width != 48 {
		t.Errorf("Expected width 48, got %v", lines[0].Width)
	}
	if lines[0].End != 8 {
		t.Errorf("Expected end offset 8, got %d", lines[0].End)
	}
}

func TestCharCount_GraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"combining mark", "é", 1},
		{"cjk", "世界", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharCount(tt.text); got != tt.want {
				t.Errorf("CharCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
