// Package layout computes line layout and overflow for text frames.
//
// All functions here are pure: they read frames, paragraphs, and the style
// catalog and never mutate the document, so renderers may call them at any
// frequency.
//
// # Line Breaking
//
// [BreakParagraph] greedily word-wraps one paragraph into [LineBox] values
// for a given usable width. Character width uses an approximate model:
// fontSize × 0.5 per display cell, with wide runes counting two cells.
//
// # Frame Layout
//
// The [Calculator] lays out all paragraphs of one frame:
//
//	calc := layout.NewCalculator(cat)
//	result := calc.LayoutFrame(frame)
//
// result.Lines holds the lines that fit; result.Cut, when non-nil, is the
// overflow cut point (paragraph index plus rune offset, offset 0 meaning the
// cut falls on the paragraph boundary).
//
// # Height Estimation
//
// The [Estimator] is the cheap substitute the reflow coordinator uses to
// judge overflow without full line layout. Its estimate is monotonic in
// character count and frame width, so overflow decisions never oscillate
// for unchanged input.
package layout
