package layout

import (
	"github.com/tsawler/flowtext/catalog"
	"github.com/tsawler/flowtext/model"
)

// Config holds shared layout configuration.
type Config struct {
	// FramePadding is the fixed padding subtracted from each side of a
	// frame's geometry to obtain its usable area.
	// Default: 4 points
	FramePadding float64
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		FramePadding: 4.0,
	}
}

// CutPoint marks where a frame's content stops fitting: the index of the
// first paragraph that crosses the boundary and the rune offset of its
// first non-fitting line. Offset 0 means the cut falls at the paragraph
// boundary.
type CutPoint struct {
	Paragraph int
	Offset    int
}

// Result is the layout of one frame: the lines that fit, the overflow cut
// point (nil when everything fits), and the running content height.
type Result struct {
	Lines         []LineBox
	Cut           *CutPoint
	ContentHeight float64
}

// Overflowing reports whether the frame's content exceeds its bounds.
func (r Result) Overflowing() bool {
	return r.Cut != nil
}

// LineCount returns the number of lines that fit.
func (r Result) LineCount() int {
	return len(r.Lines)
}

// Calculator lays out the paragraphs of one frame against its usable area.
// It never mutates the document.
type Calculator struct {
	cat *catalog.Catalog
	cfg Config
}

// NewCalculator creates a calculator with default configuration.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return NewCalculatorWithConfig(cat, DefaultConfig())
}

// NewCalculatorWithConfig creates a calculator with custom configuration.
func NewCalculatorWithConfig(cat *catalog.Catalog, cfg Config) *Calculator {
	if cfg.FramePadding < 0 {
		cfg.FramePadding = 0
	}
	return &Calculator{cat: cat, cfg: cfg}
}

// UsableSize returns a frame's geometry minus the fixed padding.
func (c *Calculator) UsableSize(f *model.Frame) (width, height float64) {
	inner := f.Rect.Inset(c.cfg.FramePadding)
	return inner.Width, inner.Height
}

// LayoutFrame walks the frame's paragraphs in order, inserting space-above
// before every paragraph except the first, breaking each into lines, and
// appending lines while the running y stays within the usable height. The
// first line that would cross the boundary becomes the cut point. Non-text
// and nil frames produce an empty result.
func (c *Calculator) LayoutFrame(f *model.Frame) Result {
	var res Result
	if !f.IsText() {
		return res
	}
	usableWidth, usableHeight := c.UsableSize(f)

	y := 0.0
	for i, p := range f.Paragraphs {
		eff := c.cat.Resolve(p.FormatTag, p.Overrides)
		if i > 0 {
			y += eff.SpaceAbove
		}
		lines := BreakParagraph(p, eff, usableWidth, y)
		for j, ln := range lines {
			if ln.Y+ln.Height > usableHeight+epsilon {
				offset := ln.Start
				if j == 0 {
					// The paragraph's first line crossing means the
					// cut falls at the paragraph boundary, even when
					// leading whitespace pushes its range past 0.
					offset = 0
				}
				res.Cut = &CutPoint{Paragraph: i, Offset: offset}
				res.ContentHeight = ln.Y + ln.Height
				return res
			}
			res.Lines = append(res.Lines, ln)
		}
		last := lines[len(lines)-1]
		y = last.Y + last.Height + eff.SpaceBelow
	}
	res.ContentHeight = y
	return res
}

// HasOverflow reports whether the frame's content exceeds its usable
// height. It is the pure counterpart of the coordinator's cached flag.
func (c *Calculator) HasOverflow(f *model.Frame) bool {
	return c.LayoutFrame(f).Overflowing()
}
