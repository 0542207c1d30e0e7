package flow

import (
	"github.com/tsawler/flowtext/catalog"
	"github.com/tsawler/flowtext/layout"
	"github.com/tsawler/flowtext/model"
)

// Coordinator orchestrates cross-frame reflow. It is the sole writer of
// frame paragraph lists, chain links, and cached overflow flags. It is not
// safe for concurrent use; the document model assumes one synchronous
// editor.
type Coordinator struct {
	doc  *model.Document
	cat  *catalog.Catalog
	calc *layout.Calculator
	est  *layout.Estimator
}

// NewCoordinator creates a coordinator with default layout configuration.
func NewCoordinator(doc *model.Document, cat *catalog.Catalog) *Coordinator {
	return NewCoordinatorWithConfig(doc, cat, layout.DefaultConfig())
}

// NewCoordinatorWithConfig creates a coordinator with custom layout
// configuration (frame padding).
func NewCoordinatorWithConfig(doc *model.Document, cat *catalog.Catalog, cfg layout.Config) *Coordinator {
	return &Coordinator{
		doc:  doc,
		cat:  cat,
		calc: layout.NewCalculatorWithConfig(cat, cfg),
		est:  layout.NewEstimatorWithConfig(cat, cfg),
	}
}

// Document returns the document the coordinator mutates.
func (c *Coordinator) Document() *model.Document {
	return c.doc
}

// Calculator returns the pure layout calculator sharing the coordinator's
// configuration, for renderers.
func (c *Coordinator) Calculator() *layout.Calculator {
	return c.calc
}

// LayoutFrame lays out a frame by id. Pure; safe at any frequency.
func (c *Coordinator) LayoutFrame(id model.FrameID) layout.Result {
	return c.calc.LayoutFrame(c.doc.Frame(id))
}

// HasOverflow recomputes overflow for a frame by id without touching the
// cached flag. Pure; safe at any frequency.
func (c *Coordinator) HasOverflow(id model.FrameID) bool {
	return c.calc.HasOverflow(c.doc.Frame(id))
}

// State returns the derived content state of a frame by id.
func (c *Coordinator) State(id model.FrameID) model.FrameState {
	return c.doc.Frame(id).State()
}

// DetectFrameOverflow recomputes and caches a frame's overflow flag. It is
// the sole authority for the cache and runs after every structural change;
// renderers must never second-guess the flag. Returns the new value, false
// for unresolved or non-text frames.
func (c *Coordinator) DetectFrameOverflow(id model.FrameID) bool {
	return c.detect(c.doc.Frame(id))
}

func (c *Coordinator) detect(f *model.Frame) bool {
	if !f.IsText() {
		return false
	}
	f.Overflow = c.calc.HasOverflow(f)
	return f.Overflow
}

// ConnectFrames links source to target so text flows from one into the
// other. No-op when either id is unresolved or not a text frame, on
// self-connect, when the frames are already linked, or when the link would
// create a cycle or strand a frame already downstream of the source. Any
// pre-existing partners are severed symmetrically, the target joins the
// source's flow, and the source is reflowed.
func (c *Coordinator) ConnectFrames(sourceID, targetID model.FrameID) {
	if sourceID == targetID {
		return
	}
	source := c.doc.TextFrame(sourceID)
	target := c.doc.TextFrame(targetID)
	if source == nil || target == nil {
		return
	}
	if source.Next == targetID {
		return
	}
	if c.reachable(targetID, sourceID) || c.reachable(sourceID, targetID) {
		return
	}

	oldTag := target.FlowTag

	if source.Next != model.None {
		if old := c.doc.Frame(source.Next); old != nil && old.Prev == sourceID {
			old.Prev = model.None
		}
		source.Next = model.None
	}
	if target.Prev != model.None {
		if old := c.doc.Frame(target.Prev); old != nil && old.Next == targetID {
			old.Next = model.None
		}
		target.Prev = model.None
	}

	source.Next = targetID
	target.Prev = sourceID
	target.FlowTag = source.FlowTag

	if oldTag != source.FlowTag {
		if fl := c.doc.FlowByTag(oldTag); fl != nil {
			fl.Remove(targetID)
		}
	}
	if source.FlowTag != "" {
		c.doc.EnsureFlow(source.FlowTag)
		c.syncFlow(source.FlowTag)
	}

	c.ReflowText(sourceID)
}

// DisconnectFrame splices a frame out of its chain, relinking its former
// prev and next to each other directly and clearing the frame's own links.
// No-op when the id is unresolved, not a text frame, or already
// disconnected. The frame keeps its flow tag, so it remains an eligible
// autoconnect target once empty.
func (c *Coordinator) DisconnectFrame(id model.FrameID) {
	f := c.doc.TextFrame(id)
	if f == nil {
		return
	}
	if f.Next == model.None && f.Prev == model.None {
		return
	}

	prev := c.doc.Frame(f.Prev)
	next := c.doc.Frame(f.Next)
	prevID, nextID := f.Prev, f.Next
	if prev == nil {
		prevID = model.None
	}
	if next == nil {
		nextID = model.None
	}
	if prev != nil {
		prev.Next = nextID
	}
	if next != nil {
		next.Prev = prevID
	}
	f.Next = model.None
	f.Prev = model.None

	if f.FlowTag != "" {
		c.syncFlow(f.FlowTag)
	}

	c.detect(f)
	c.detect(next)
	if prev != nil {
		c.detect(prev)
		c.ReflowText(prev.ID)
	}
}

// ReflowText redistributes paragraphs forward along the chain starting at
// the given frame, draining an explicit work queue to a fixed point within
// this call. While a frame's estimated content exceeds its usable height
// and it has a next frame, its last paragraph moves to the front of the
// next frame's list. A frame down to one paragraph pushes it onward unless
// the next frame is the chain tail and cannot hold it, so a paragraph too
// tall for every remaining frame comes to rest before the tail and its
// frame stays flagged overflowing. No-op on unresolved or non-text ids.
func (c *Coordinator) ReflowText(id model.FrameID) {
	if c.doc.TextFrame(id) == nil {
		return
	}

	queue := []model.FrameID{id}
	// Bounds pathological chains; in well-formed documents the queue
	// drains long before this.
	budget := 2*c.doc.FrameCount() + 1

	for len(queue) > 0 && budget > 0 {
		budget--
		f := c.doc.TextFrame(queue[0])
		queue = queue[1:]
		if f == nil {
			continue
		}

		moved := false
		for c.est.Overflows(f) && f.Next != model.None {
			next := c.doc.TextFrame(f.Next)
			if next == nil {
				break
			}
			last := len(f.Paragraphs) - 1
			p := f.Paragraphs[last]
			if last == 0 && next.Next == model.None && !c.est.FitsAlone(p, next) {
				// A lone paragraph never moves into a tail frame it
				// would also overflow.
				break
			}
			f.Paragraphs = f.Paragraphs[:last]
			next.Paragraphs = append([]*model.Paragraph{p}, next.Paragraphs...)
			moved = true
		}

		c.detect(f)
		if moved {
			next := c.doc.TextFrame(f.Next)
			if next != nil {
				c.detect(next)
				// detect above already flagged an overflowing tail;
				// only frames with somewhere to push are queued.
				if next.Next != model.None && c.est.Overflows(next) {
					queue = append(queue, next.ID)
				}
			}
		}
	}
}

// AutoconnectFrames scans all frames in document order and links each
// overflowing text frame that lacks a next to the first empty text frame
// after it that shares its flow tag and has no prev. Only empty frames are
// eligible, so independent content is never absorbed into a foreign flow.
// Flows with autoconnect disabled are skipped.
func (c *Coordinator) AutoconnectFrames() {
	// Snapshot: ConnectFrames mutates links while we iterate.
	order := c.doc.FramesInOrder()

	for i, id := range order {
		f := c.doc.TextFrame(id)
		if f == nil {
			continue
		}
		c.detect(f)
		if !f.Overflow || f.Next != model.None {
			continue
		}
		if fl := c.doc.FlowByTag(f.FlowTag); fl != nil && !fl.AutoConnect {
			continue
		}
		for _, candidateID := range order[i+1:] {
			candidate := c.doc.TextFrame(candidateID)
			if candidate == nil || candidate.FlowTag != f.FlowTag ||
				candidate.Prev != model.None || !candidate.IsEmpty() {
				continue
			}
			c.ConnectFrames(id, candidateID)
			break
		}
	}
}

// reachable reports whether following Next links from one frame arrives at
// another. The walk is bounded by the arena size.
func (c *Coordinator) reachable(from, to model.FrameID) bool {
	steps := c.doc.FrameCount() + 1
	for id := from; id != model.None && steps > 0; steps-- {
		if id == to {
			return true
		}
		f := c.doc.Frame(id)
		if f == nil {
			return false
		}
		id = f.Next
	}
	return false
}

// syncFlow rebuilds a flow's ordered frame-id list from the chains of its
// member frames: chain heads in document order, each followed by its chain.
func (c *Coordinator) syncFlow(tag string) {
	fl := c.doc.FlowByTag(tag)
	if fl == nil {
		return
	}
	members := c.doc.FramesWithTag(tag)
	inOrder := make(map[model.FrameID]bool)
	var order []model.FrameID

	for _, id := range members {
		f := c.doc.Frame(id)
		prev := c.doc.Frame(f.Prev)
		if prev.IsText() && prev.FlowTag == tag {
			continue // not a chain head
		}
		for _, chainID := range c.doc.ChainFrames(id) {
			cf := c.doc.Frame(chainID)
			if cf.IsText() && cf.FlowTag == tag && !inOrder[chainID] {
				inOrder[chainID] = true
				order = append(order, chainID)
			}
		}
	}
	// Anything left (corrupted links) keeps document order.
	for _, id := range members {
		if !inOrder[id] {
			order = append(order, id)
		}
	}
	fl.FrameIDs = order
}
