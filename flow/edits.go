package flow

import (
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/flowtext/model"
)

// Edit operations are the mutation surface the edit layer calls. Each one
// resolves its frame id, applies the change, re-derives the cached overflow
// flag, and reflows the chain. Bad ids and out-of-range indices are silent
// no-ops, since UI-driven calls routinely pass stale references.

// paragraphAt resolves a frame and paragraph index together.
func (c *Coordinator) paragraphAt(id model.FrameID, index int) (*model.Frame, *model.Paragraph) {
	f := c.doc.TextFrame(id)
	if f == nil || index < 0 || index >= len(f.Paragraphs) {
		return nil, nil
	}
	return f, f.Paragraphs[index]
}

// InsertText inserts text at a rune offset within a paragraph. Input is
// normalized to NFC so offsets stay stable across editors that compose
// differently.
func (c *Coordinator) InsertText(id model.FrameID, paragraph, offset int, s string) {
	f, p := c.paragraphAt(id, paragraph)
	if p == nil || s == "" {
		return
	}
	p.InsertText(offset, norm.NFC.String(s))
	c.detect(f)
	c.ReflowText(id)
}

// DeleteText removes the half-open rune range [start, end) from a
// paragraph.
func (c *Coordinator) DeleteText(id model.FrameID, paragraph, start, end int) {
	f, p := c.paragraphAt(id, paragraph)
	if p == nil {
		return
	}
	p.DeleteText(start, end)
	c.detect(f)
	c.ReflowText(id)
}

// SplitParagraph divides a paragraph at a rune offset. The new paragraph
// inherits the format tag and overrides and is inserted directly after the
// original.
func (c *Coordinator) SplitParagraph(id model.FrameID, paragraph, offset int) {
	f, p := c.paragraphAt(id, paragraph)
	if p == nil {
		return
	}
	tail := p.SplitAt(offset)
	created := c.doc.NewParagraph(p.FormatTag)
	created.Overrides = p.Overrides
	created.Content = tail

	f.Paragraphs = append(f.Paragraphs, nil)
	copy(f.Paragraphs[paragraph+2:], f.Paragraphs[paragraph+1:])
	f.Paragraphs[paragraph+1] = created

	c.detect(f)
	c.ReflowText(id)
}

// MergeParagraphs merges the paragraph after the given index into it,
// destroying the later paragraph. No-op when there is no following
// paragraph in the frame.
func (c *Coordinator) MergeParagraphs(id model.FrameID, paragraph int) {
	f, p := c.paragraphAt(id, paragraph)
	if p == nil || paragraph+1 >= len(f.Paragraphs) {
		return
	}
	absorbed := f.Paragraphs[paragraph+1]
	p.AppendContent(absorbed.Content...)
	f.Paragraphs = append(f.Paragraphs[:paragraph+1], f.Paragraphs[paragraph+2:]...)

	c.detect(f)
	c.ReflowText(id)
}

// AppendParagraphs appends paragraphs to the end of a frame's list. This is
// how imported or programmatically built content enters a flow.
func (c *Coordinator) AppendParagraphs(id model.FrameID, paragraphs ...*model.Paragraph) {
	f := c.doc.TextFrame(id)
	if f == nil || len(paragraphs) == 0 {
		return
	}
	f.Paragraphs = append(f.Paragraphs, paragraphs...)
	c.detect(f)
	c.ReflowText(id)
}

// AppendText appends one paragraph of plain text with the given format tag.
func (c *Coordinator) AppendText(id model.FrameID, formatTag, text string) {
	if c.doc.TextFrame(id) == nil {
		return
	}
	c.AppendParagraphs(id, c.doc.NewTextParagraph(formatTag, norm.NFC.String(text)))
}

// ResizeFrame changes a frame's width and height, then re-derives overflow
// and reflows. Non-positive dimensions are a no-op.
func (c *Coordinator) ResizeFrame(id model.FrameID, width, height float64) {
	f := c.doc.TextFrame(id)
	if f == nil || width <= 0 || height <= 0 {
		return
	}
	f.Rect.Width = width
	f.Rect.Height = height
	c.detect(f)
	c.ReflowText(id)
}

// MoveFrame changes a frame's position. Position does not affect the usable
// area, so no reflow runs.
func (c *Coordinator) MoveFrame(id model.FrameID, x, y float64) {
	f := c.doc.TextFrame(id)
	if f == nil {
		return
	}
	f.Rect.X = x
	f.Rect.Y = y
}
