package model

// Page represents a single page of the document
type Page struct {
	Number   int     // 1-indexed page number
	Width    float64 // Page width in points
	Height   float64 // Page height in points
	FrameIDs []FrameID
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:    width,
		Height:   height,
		FrameIDs: make([]FrameID, 0),
	}
}

// AddFrame appends a frame id to the page's order
func (p *Page) AddFrame(id FrameID) {
	p.FrameIDs = append(p.FrameIDs, id)
}

// RemoveFrame removes a frame id from the page's order
func (p *Page) RemoveFrame(id FrameID) {
	for i, fid := range p.FrameIDs {
		if fid == id {
			p.FrameIDs = append(p.FrameIDs[:i], p.FrameIDs[i+1:]...)
			return
		}
	}
}

// ContainsFrame reports whether the page lists the frame
func (p *Page) ContainsFrame(id FrameID) bool {
	for _, fid := range p.FrameIDs {
		if fid == id {
			return true
		}
	}
	return false
}
