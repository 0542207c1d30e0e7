// Package flow maintains frame chains and redistributes paragraphs across
// them after edits.
//
// # The Coordinator
//
// One [Coordinator] instance serializes all mutation of a document's frame
// links, paragraph lists, and cached overflow flags. Readers (the layout
// package, renderers) see a stable snapshot between coordinator calls.
//
//	coord := flow.NewCoordinator(doc, cat)
//	coord.ConnectFrames(a, b)
//	coord.InsertText(a, 0, 0, "Hello")
//	coord.AutoconnectFrames()
//
// # Failure Semantics
//
// Every operation either succeeds or is a documented no-op: unresolved or
// stale frame ids, non-text frames where text frames are required,
// self-connects, and connects that would create a cycle or strand a
// downstream frame all do nothing. Callers observe outcomes only through
// the resulting document state; nothing here panics or returns errors.
//
// # Reflow
//
// [Coordinator.ReflowText] drains an explicit work queue to a fixed point
// within one call: while a frame's estimated content height exceeds its
// usable height and it has a next frame, the last paragraph moves to the
// front of the next frame, and the next frame is queued in turn. A lone
// paragraph keeps moving down the chain until some frame holds it, stopping
// only before a tail frame it would also overflow. A paragraph too tall for
// every remaining frame is a terminal overflow: its frame stays flagged,
// which is a normal user-visible state rather than an error.
package flow
