package model

// FrameID uniquely identifies a frame within a document. The zero value
// means "no frame" and is what Next/Prev hold when a frame is unlinked.
type FrameID int

// None is the zero FrameID.
const None FrameID = 0

// FrameKind identifies what a frame contains. Only text frames participate
// in flow layout; other kinds are opaque canvas objects.
type FrameKind int

const (
	FrameKindText FrameKind = iota
	FrameKindImage
	FrameKindShape
)

func (k FrameKind) String() string {
	switch k {
	case FrameKindText:
		return "text"
	case FrameKindImage:
		return "image"
	case FrameKindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// FrameState is the derived content state of a text frame.
type FrameState int

const (
	StateEmpty FrameState = iota
	StateHasContent
	StateOverflowing
)

func (s FrameState) String() string {
	switch s {
	case StateHasContent:
		return "has-content"
	case StateOverflowing:
		return "overflowing"
	default:
		return "empty"
	}
}

// Frame is a rectangular content container placed on a page. Text frames
// carry paragraphs and may be chained to neighbours through Next/Prev links;
// a frame belongs to at most one flow. The Overflow flag is a cache derived
// from (paragraphs, geometry, formats); the flow coordinator is its only
// writer.
type Frame struct {
	ID      FrameID
	Kind    FrameKind
	Rect    Rect
	FlowTag string

	// Chain links; None means unlinked. A.Next == B implies B.Prev == A.
	Next FrameID
	Prev FrameID

	Paragraphs []*Paragraph

	// Overflow caches the result of the last overflow detection.
	Overflow bool
}

// IsText returns true for text frames.
func (f *Frame) IsText() bool {
	return f != nil && f.Kind == FrameKindText
}

// IsEmpty returns true if the frame holds no paragraphs.
func (f *Frame) IsEmpty() bool {
	return f == nil || len(f.Paragraphs) == 0
}

// State derives the frame's content state from its paragraph list and the
// cached overflow flag.
func (f *Frame) State() FrameState {
	switch {
	case f.IsEmpty():
		return StateEmpty
	case f.Overflow:
		return StateOverflowing
	default:
		return StateHasContent
	}
}

// ParagraphCount returns the number of paragraphs in the frame.
func (f *Frame) ParagraphCount() int {
	if f == nil {
		return 0
	}
	return len(f.Paragraphs)
}

// LastParagraph returns the frame's last paragraph, or nil.
func (f *Frame) LastParagraph() *Paragraph {
	if f == nil || len(f.Paragraphs) == 0 {
		return nil
	}
	return f.Paragraphs[len(f.Paragraphs)-1]
}

// PlainText assembles the frame's text with paragraph breaks.
func (f *Frame) PlainText() string {
	if f == nil {
		return ""
	}
	text := ""
	for i, p := range f.Paragraphs {
		if i > 0 {
			text += "\n"
		}
		text += p.PlainText()
	}
	return text
}
