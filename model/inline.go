package model

import "unicode/utf8"

// ObjectReplacement is the placeholder text contributed to a paragraph's
// plain text by inline elements that do not carry text of their own
// (equations and tables). It is U+FFFC OBJECT REPLACEMENT CHARACTER.
const ObjectReplacement = "￼"

// InlineKind identifies the kind of an inline content element. The set is
// closed: every consumer dispatches with an exhaustive switch over these
// four values.
type InlineKind int

const (
	InlineTextRun InlineKind = iota
	InlineEquation
	InlineTable
	InlineVariable
)

func (k InlineKind) String() string {
	switch k {
	case InlineTextRun:
		return "TextRun"
	case InlineEquation:
		return "Equation"
	case InlineTable:
		return "Table"
	case InlineVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Inline is one element of a paragraph's ordered content list.
type Inline interface {
	Kind() InlineKind
}

// TextRun is a run of text with uniform character styling.
type TextRun struct {
	Text   string
	Bold   bool
	Italic bool
}

func (r *TextRun) Kind() InlineKind { return InlineTextRun }

// Equation is an embedded equation. Its source is edited by an external
// sub-editor; the layout engine treats it as a single opaque object.
type Equation struct {
	Source string
}

func (e *Equation) Kind() InlineKind { return InlineEquation }

// Table is an embedded inline table. Its cells are edited by an external
// sub-editor; the layout engine treats it as a single opaque object.
type Table struct {
	Rows int
	Cols int
}

func (t *Table) Kind() InlineKind { return InlineTable }

// Variable is a named placeholder whose substitution happens outside the
// engine. Value holds the last substituted text and is what layout measures.
type Variable struct {
	Name  string
	Value string
}

func (v *Variable) Kind() InlineKind { return InlineVariable }

// InlineText returns the plain text an inline element contributes to its
// paragraph: runs contribute their text, variables their cached value, and
// equations and tables a single object replacement character.
func InlineText(el Inline) string {
	switch el.Kind() {
	case InlineTextRun:
		return el.(*TextRun).Text
	case InlineEquation:
		return ObjectReplacement
	case InlineTable:
		return ObjectReplacement
	case InlineVariable:
		return el.(*Variable).Value
	}
	return ""
}

// inlineRuneLen returns the length of an element's plain text in runes.
func inlineRuneLen(el Inline) int {
	return utf8.RuneCountInString(InlineText(el))
}
