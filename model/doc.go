// Package model defines the document model for flow text layout: documents,
// pages, text frames, flows, paragraphs, and inline content.
//
// # Document Structure
//
// A [Document] owns an ordered list of pages and a single frame arena keyed
// by [FrameID]. Pages and flows refer to frames by id, never by pointer, so
// structural invariants (mutual next/prev links, acyclic chains) can be
// checked independently of ownership:
//
//	doc := model.NewDocument()
//	page := doc.AddPage(612, 792)
//	frame := doc.NewTextFrame(page, model.NewRect(72, 72, 468, 400), "main")
//
// # Flows
//
// A [Flow] names an ordered chain of text frames that share one logical text
// stream. Frames link to their chain neighbours through the Next and Prev
// fields of [Frame]; the zero FrameID means no neighbour.
//
// # Paragraphs and Inline Content
//
// A [Paragraph] holds an ordered list of [Inline] content elements. The
// inline set is closed: text runs, equations, tables, and variables, each
// identified by an [InlineKind] and dispatched by exhaustive switch.
// Paragraph editing operations (insert, delete, split, merge) work on rune
// offsets into the paragraph's plain text.
//
// This package is passive data. Layout lives in the layout package and all
// cross-frame mutation goes through the flow package's coordinator.
package model
