package layout

import (
	"math"

	"github.com/tsawler/flowtext/catalog"
	"github.com/tsawler/flowtext/model"
)

// Estimator approximates content height without running line layout. The
// reflow coordinator uses it to judge overflow cheaply on every edit.
//
// The estimate derives line counts from character counts and an assumed
// characters-per-line, so it is monotonic: more characters or a narrower
// frame never estimates smaller.
type Estimator struct {
	cat *catalog.Catalog
	cfg Config
}

// NewEstimator creates an estimator with default configuration.
func NewEstimator(cat *catalog.Catalog) *Estimator {
	return NewEstimatorWithConfig(cat, DefaultConfig())
}

// NewEstimatorWithConfig creates an estimator with custom configuration.
func NewEstimatorWithConfig(cat *catalog.Catalog, cfg Config) *Estimator {
	if cfg.FramePadding < 0 {
		cfg.FramePadding = 0
	}
	return &Estimator{cat: cat, cfg: cfg}
}

// ParagraphHeight estimates one paragraph's occupied height at the given
// usable width. Space-above is counted unless the paragraph is the first in
// its frame; space-below is always counted.
func (e *Estimator) ParagraphHeight(p *model.Paragraph, usableWidth float64, first bool) float64 {
	eff := e.cat.Resolve(p.FormatTag, p.Overrides)

	chars := CharCount(p.PlainText())
	perLine := int(usableWidth / (eff.FontSize * CharWidthFactor))
	if perLine < 1 {
		perLine = 1
	}
	lines := (chars + perLine - 1) / perLine
	if lines < 1 {
		lines = 1
	}

	h := float64(lines) * eff.LineHeight()
	if !first {
		h += eff.SpaceAbove
	}
	return h + eff.SpaceBelow
}

// ContentHeight estimates the total height of a frame's paragraphs.
func (e *Estimator) ContentHeight(f *model.Frame) float64 {
	if !f.IsText() {
		return 0
	}
	usableWidth := math.Max(0, f.Rect.Width-2*e.cfg.FramePadding)
	h := 0.0
	for i, p := range f.Paragraphs {
		h += e.ParagraphHeight(p, usableWidth, i == 0)
	}
	return h
}

// Overflows reports whether the estimated content height exceeds the
// frame's usable height.
func (e *Estimator) Overflows(f *model.Frame) bool {
	if !f.IsText() || f.IsEmpty() {
		return false
	}
	usableHeight := math.Max(0, f.Rect.Height-2*e.cfg.FramePadding)
	return e.ContentHeight(f) > usableHeight+epsilon
}

// FitsAlone reports whether one paragraph's estimated height fits a frame's
// usable area by itself.
func (e *Estimator) FitsAlone(p *model.Paragraph, f *model.Frame) bool {
	if !f.IsText() {
		return false
	}
	usableWidth := math.Max(0, f.Rect.Width-2*e.cfg.FramePadding)
	usableHeight := math.Max(0, f.Rect.Height-2*e.cfg.FramePadding)
	return e.ParagraphHeight(p, usableWidth, true) <= usableHeight+epsilon
}
