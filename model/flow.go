package model

// Flow names an ordered chain of text frames sharing one logical text
// stream. FrameIDs lists the member frames in stream order. AutoConnect
// controls whether overflowing members may be linked to loose empty frames
// automatically.
type Flow struct {
	Tag         string
	FrameIDs    []FrameID
	AutoConnect bool
}

// NewFlow creates a flow for a tag. Autoconnect is on by default.
func NewFlow(tag string) *Flow {
	return &Flow{
		Tag:         tag,
		FrameIDs:    make([]FrameID, 0),
		AutoConnect: true,
	}
}

// Contains reports whether the flow lists the frame
func (fl *Flow) Contains(id FrameID) bool {
	for _, fid := range fl.FrameIDs {
		if fid == id {
			return true
		}
	}
	return false
}

// Remove removes a frame id from the flow's order
func (fl *Flow) Remove(id FrameID) {
	for i, fid := range fl.FrameIDs {
		if fid == id {
			fl.FrameIDs = append(fl.FrameIDs[:i], fl.FrameIDs[i+1:]...)
			return
		}
	}
}
