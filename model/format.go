package model

// Alignment represents horizontal text alignment
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// FormatOverrides holds per-paragraph adjustments applied on top of the
// catalog entry named by the paragraph's format tag. Nil fields leave the
// catalog value in place.
type FormatOverrides struct {
	FontSize    *float64
	LineSpacing *float64
	LeftIndent  *float64
	RightIndent *float64
	FirstIndent *float64
	SpaceAbove  *float64
	SpaceBelow  *float64
	Alignment   *Alignment
	Bold        *bool
	Italic      *bool
}

// Float returns a pointer to v, for building overrides in place.
func Float(v float64) *float64 { return &v }

// Align returns a pointer to a, for building overrides in place.
func Align(a Alignment) *Alignment { return &a }

// Flag returns a pointer to b, for building overrides in place.
func Flag(b bool) *bool { return &b }
