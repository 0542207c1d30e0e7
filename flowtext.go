// Package flowtext provides a fluent API for flowing text through chains of
// frames in page-layout documents.
//
// Basic usage:
//
//	e := flowtext.New()
//	page := e.AddPage(612, 792)
//	a := e.AddTextFrame(page, model.NewRect(72, 72, 300, 400), "main")
//	b := e.AddTextFrame(page, model.NewRect(72, 500, 300, 200), "main")
//	e.Connect(a, b)
//	e.AddText(a, "default", "Hello, world.")
//
// Layout is pure and safe at any frequency:
//
//	result := e.Layout(a)
//	for _, line := range result.Lines {
//	    // render line
//	}
//
// For advanced use the lower-level model, catalog, layout, and flow
// packages are also available.
package flowtext

import (
	"io"

	"github.com/tsawler/flowtext/catalog"
	"github.com/tsawler/flowtext/flow"
	"github.com/tsawler/flowtext/htmldoc"
	"github.com/tsawler/flowtext/layout"
	"github.com/tsawler/flowtext/model"
)

// Engine bundles a document, a style catalog, and the flow coordinator
// behind one fluent surface. All mutation funnels through the coordinator,
// so between Engine calls the document is a stable snapshot.
type Engine struct {
	doc     *model.Document
	cat     *catalog.Catalog
	coord   *flow.Coordinator
	options engineOptions
}

// New creates an engine with an empty document and the default catalog.
func New() *Engine {
	return NewWithCatalog(catalog.DefaultCatalog())
}

// NewWithCatalog creates an engine using the given style catalog.
func NewWithCatalog(cat *catalog.Catalog) *Engine {
	e := &Engine{
		doc:     model.NewDocument(),
		cat:     cat,
		options: defaultEngineOptions(),
	}
	e.coord = flow.NewCoordinatorWithConfig(e.doc, e.cat, e.options.layoutConfig())
	return e
}

// WithFramePadding sets the fixed frame padding and returns the engine for
// chaining. Call before adding content; changing padding re-derives nothing
// retroactively until the next edit or reflow.
func (e *Engine) WithFramePadding(points float64) *Engine {
	if points < 0 {
		points = 0
	}
	e.options.framePadding = points
	e.coord = flow.NewCoordinatorWithConfig(e.doc, e.cat, e.options.layoutConfig())
	return e
}

// Document returns the underlying document.
func (e *Engine) Document() *model.Document { return e.doc }

// Catalog returns the style catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Coordinator returns the flow coordinator for direct use.
func (e *Engine) Coordinator() *flow.Coordinator { return e.coord }

// AddPage appends a page with the given dimensions in points.
func (e *Engine) AddPage(width, height float64) *model.Page {
	return e.doc.AddPage(width, height)
}

// AddTextFrame places a text frame on a page and returns its id.
func (e *Engine) AddTextFrame(page *model.Page, rect model.Rect, flowTag string) model.FrameID {
	f := e.doc.NewTextFrame(page, rect, flowTag)
	if flowTag != "" {
		fl := e.doc.EnsureFlow(flowTag)
		fl.FrameIDs = append(fl.FrameIDs, f.ID)
	}
	return f.ID
}

// AddText appends one paragraph of text to a frame and reflows.
func (e *Engine) AddText(id model.FrameID, formatTag, text string) {
	e.coord.AppendText(id, formatTag, text)
}

// SetAutoConnect enables or disables autoconnection for a flow tag.
func (e *Engine) SetAutoConnect(tag string, on bool) {
	if fl := e.doc.EnsureFlow(tag); fl != nil {
		fl.AutoConnect = on
	}
}

// Connect links two frames so text flows from the first into the second.
func (e *Engine) Connect(source, target model.FrameID) {
	e.coord.ConnectFrames(source, target)
}

// Disconnect splices a frame out of its chain.
func (e *Engine) Disconnect(id model.FrameID) {
	e.coord.DisconnectFrame(id)
}

// Autoconnect links overflowing frames to loose empty frames that share
// their flow tag.
func (e *Engine) Autoconnect() {
	e.coord.AutoconnectFrames()
}

// Reflow redistributes paragraphs along the chain starting at a frame.
func (e *Engine) Reflow(id model.FrameID) {
	e.coord.ReflowText(id)
}

// InsertText inserts text at a rune offset within a frame's paragraph.
func (e *Engine) InsertText(id model.FrameID, paragraph, offset int, s string) {
	e.coord.InsertText(id, paragraph, offset, s)
}

// DeleteText removes a rune range from a frame's paragraph.
func (e *Engine) DeleteText(id model.FrameID, paragraph, start, end int) {
	e.coord.DeleteText(id, paragraph, start, end)
}

// SplitParagraph divides a frame's paragraph at a rune offset.
func (e *Engine) SplitParagraph(id model.FrameID, paragraph, offset int) {
	e.coord.SplitParagraph(id, paragraph, offset)
}

// MergeParagraphs merges the paragraph after the given index into it.
func (e *Engine) MergeParagraphs(id model.FrameID, paragraph int) {
	e.coord.MergeParagraphs(id, paragraph)
}

// Resize changes a frame's dimensions and reflows.
func (e *Engine) Resize(id model.FrameID, width, height float64) {
	e.coord.ResizeFrame(id, width, height)
}

// Move repositions a frame on its page.
func (e *Engine) Move(id model.FrameID, x, y float64) {
	e.coord.MoveFrame(id, x, y)
}

// Layout lays out one frame. Pure; the returned lines are derived,
// disposable values.
func (e *Engine) Layout(id model.FrameID) layout.Result {
	return e.coord.LayoutFrame(id)
}

// Overflowing recomputes whether a frame's content exceeds its bounds.
// Pure; does not touch the cached flag.
func (e *Engine) Overflowing(id model.FrameID) bool {
	return e.coord.HasOverflow(id)
}

// State returns the derived content state of a frame.
func (e *Engine) State(id model.FrameID) model.FrameState {
	return e.coord.State(id)
}

// Text assembles the full text stream of the chain containing a frame,
// starting from the chain head.
func (e *Engine) Text(id model.FrameID) string {
	return e.doc.ChainText(e.doc.ChainHead(id))
}

// ImportHTML parses HTML and appends the resulting paragraphs to a frame,
// reflowing its chain. Returns import warnings.
func (e *Engine) ImportHTML(r io.Reader, id model.FrameID) ([]string, error) {
	result, err := htmldoc.Parse(r, e.doc)
	if err != nil {
		return nil, err
	}
	e.coord.AppendParagraphs(id, result.Paragraphs...)
	return result.Warnings, nil
}
