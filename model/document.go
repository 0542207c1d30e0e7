package model

// Document owns the pages, the frame arena, and the flow registry. Frames
// are stored once, keyed by id; pages and flows hold ids into the arena.
type Document struct {
	Pages []*Page

	frames map[FrameID]*Frame
	flows  map[string]*Flow

	nextFrameID FrameID
	nextParaID  ParagraphID
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages:  make([]*Page, 0),
		frames: make(map[FrameID]*Frame),
		flows:  make(map[string]*Flow),
	}
}

// AddPage appends a new page with the given dimensions and returns it
func (d *Document) AddPage(width, height float64) *Page {
	page := NewPage(width, height)
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
	return page
}

// Page returns a page by number (1-indexed), or nil
func (d *Document) Page(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// NewTextFrame creates a text frame, registers it in the arena, and appends
// it to the page's frame order.
func (d *Document) NewTextFrame(page *Page, rect Rect, flowTag string) *Frame {
	return d.newFrame(page, rect, FrameKindText, flowTag)
}

// NewFrame creates a non-text frame (image, shape) on the page.
func (d *Document) NewFrame(page *Page, rect Rect, kind FrameKind) *Frame {
	return d.newFrame(page, rect, kind, "")
}

func (d *Document) newFrame(page *Page, rect Rect, kind FrameKind, flowTag string) *Frame {
	d.nextFrameID++
	f := &Frame{
		ID:         d.nextFrameID,
		Kind:       kind,
		Rect:       rect,
		FlowTag:    flowTag,
		Paragraphs: make([]*Paragraph, 0),
	}
	d.frames[f.ID] = f
	if page != nil {
		page.AddFrame(f.ID)
	}
	return f
}

// Frame resolves a frame id against the arena, returning nil for unknown ids
func (d *Document) Frame(id FrameID) *Frame {
	if id == None {
		return nil
	}
	return d.frames[id]
}

// TextFrame resolves a frame id and returns it only if it is a text frame
func (d *Document) TextFrame(id FrameID) *Frame {
	f := d.Frame(id)
	if !f.IsText() {
		return nil
	}
	return f
}

// RemoveFrame deletes a frame from the arena, its page, and its flow. The
// caller is responsible for splicing the frame out of its chain first.
func (d *Document) RemoveFrame(id FrameID) {
	f := d.Frame(id)
	if f == nil {
		return
	}
	for _, page := range d.Pages {
		page.RemoveFrame(id)
	}
	if fl := d.FlowByTag(f.FlowTag); fl != nil {
		fl.Remove(id)
	}
	delete(d.frames, id)
}

// FrameCount returns the number of frames in the arena
func (d *Document) FrameCount() int {
	return len(d.frames)
}

// FramesInOrder returns a snapshot of all frame ids in document order:
// pages in sequence, frames in page order.
func (d *Document) FramesInOrder() []FrameID {
	var ids []FrameID
	for _, page := range d.Pages {
		ids = append(ids, page.FrameIDs...)
	}
	return ids
}

// FramesWithTag returns, in document order, the ids of all text frames
// carrying the given flow tag.
func (d *Document) FramesWithTag(tag string) []FrameID {
	var ids []FrameID
	for _, id := range d.FramesInOrder() {
		if f := d.Frame(id); f.IsText() && f.FlowTag == tag {
			ids = append(ids, id)
		}
	}
	return ids
}

// ChainFrames follows Next links from a frame and returns the visited ids,
// starting frame included. The walk is bounded by the arena size, so it
// terminates even on corrupted links.
func (d *Document) ChainFrames(start FrameID) []FrameID {
	var ids []FrameID
	seen := make(map[FrameID]bool)
	for id := start; id != None && !seen[id] && len(ids) <= len(d.frames); {
		f := d.Frame(id)
		if f == nil {
			break
		}
		ids = append(ids, id)
		seen[id] = true
		id = f.Next
	}
	return ids
}

// ChainHead follows Prev links from a frame to the head of its chain.
func (d *Document) ChainHead(start FrameID) FrameID {
	seen := make(map[FrameID]bool)
	id := start
	for {
		f := d.Frame(id)
		if f == nil || f.Prev == None || seen[id] {
			return id
		}
		seen[id] = true
		id = f.Prev
	}
}

// ChainParagraphs concatenates the paragraph ids of a chain in stream order
func (d *Document) ChainParagraphs(start FrameID) []ParagraphID {
	var ids []ParagraphID
	for _, fid := range d.ChainFrames(start) {
		for _, p := range d.Frame(fid).Paragraphs {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// ChainText assembles the full text stream of a chain with paragraph breaks
func (d *Document) ChainText(start FrameID) string {
	text := ""
	for i, fid := range d.ChainFrames(start) {
		if i > 0 {
			text += "\n"
		}
		text += d.Frame(fid).PlainText()
	}
	return text
}

// NewParagraph allocates a paragraph with a fresh id
func (d *Document) NewParagraph(formatTag string) *Paragraph {
	d.nextParaID++
	return &Paragraph{
		ID:        d.nextParaID,
		FormatTag: formatTag,
	}
}

// NewTextParagraph allocates a paragraph holding a single text run
func (d *Document) NewTextParagraph(formatTag, text string) *Paragraph {
	p := d.NewParagraph(formatTag)
	if text != "" {
		p.Content = append(p.Content, &TextRun{Text: text})
	}
	return p
}

// FlowByTag returns the registered flow for a tag, or nil
func (d *Document) FlowByTag(tag string) *Flow {
	if tag == "" {
		return nil
	}
	return d.flows[tag]
}

// EnsureFlow returns the flow for a tag, registering it if needed
func (d *Document) EnsureFlow(tag string) *Flow {
	if tag == "" {
		return nil
	}
	fl, ok := d.flows[tag]
	if !ok {
		fl = NewFlow(tag)
		d.flows[tag] = fl
	}
	return fl
}

// FrameAt returns the topmost frame on the page containing the point, or nil.
// Later frames on a page sit above earlier ones.
func (d *Document) FrameAt(page *Page, pt Point) *Frame {
	if page == nil {
		return nil
	}
	for i := len(page.FrameIDs) - 1; i >= 0; i-- {
		if f := d.Frame(page.FrameIDs[i]); f != nil && f.Rect.Contains(pt) {
			return f
		}
	}
	return nil
}
