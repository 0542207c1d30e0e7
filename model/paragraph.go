package model

import "strings"

// ParagraphID uniquely identifies a paragraph within a document. Paragraph
// ids are allocated by the document and never reused, so conservation across
// reflow can be checked by id.
type ParagraphID int

// Paragraph is one paragraph of flowing text. Styling comes from the format
// tag resolved against the style catalog, optionally adjusted by Overrides.
// A paragraph belongs to exactly one frame at any instant; only the flow
// coordinator moves paragraphs between frames.
type Paragraph struct {
	ID        ParagraphID
	FormatTag string
	Overrides *FormatOverrides
	Content   []Inline
}

// PlainText assembles the paragraph's breakable text from its inline
// content in order.
func (p *Paragraph) PlainText() string {
	if p == nil || len(p.Content) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, el := range p.Content {
		sb.WriteString(InlineText(el))
	}
	return sb.String()
}

// RuneLen returns the length of the paragraph's plain text in runes.
func (p *Paragraph) RuneLen() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, el := range p.Content {
		n += inlineRuneLen(el)
	}
	return n
}

// IsEmpty returns true if the paragraph contributes no plain text.
func (p *Paragraph) IsEmpty() bool {
	return p.RuneLen() == 0
}

// InsertText inserts s at the given rune offset into the paragraph's plain
// text. An offset inside a text run splices the run; an offset that falls on
// an opaque inline element (equation, table, variable) inserts a new run in
// front of it. Offsets are clamped to the paragraph's bounds.
func (p *Paragraph) InsertText(offset int, s string) {
	if s == "" {
		return
	}
	if offset < 0 {
		offset = 0
	}

	pos := 0
	for i, el := range p.Content {
		n := inlineRuneLen(el)
		if run, ok := el.(*TextRun); ok && offset <= pos+n {
			r := []rune(run.Text)
			at := offset - pos
			if at < 0 {
				at = 0
			}
			run.Text = string(r[:at]) + s + string(r[at:])
			return
		}
		if offset <= pos {
			p.Content = append(p.Content, nil)
			copy(p.Content[i+1:], p.Content[i:])
			p.Content[i] = &TextRun{Text: s}
			return
		}
		pos += n
	}

	// Past the end (or empty paragraph): extend the last run if possible.
	if len(p.Content) > 0 {
		if run, ok := p.Content[len(p.Content)-1].(*TextRun); ok {
			run.Text += s
			return
		}
	}
	p.Content = append(p.Content, &TextRun{Text: s})
}

// DeleteText removes the half-open rune range [start, end) from the
// paragraph. A text run overlapping the range loses the covered runes; an
// opaque inline element is removed entirely if any part of it is covered.
func (p *Paragraph) DeleteText(start, end int) {
	if start < 0 {
		start = 0
	}
	if total := p.RuneLen(); end > total {
		end = total
	}
	if start >= end {
		return
	}

	var out []Inline
	pos := 0
	for _, el := range p.Content {
		n := inlineRuneLen(el)
		lo, hi := pos, pos+n
		pos = hi

		if hi <= start || lo >= end {
			out = append(out, el)
			continue
		}
		run, ok := el.(*TextRun)
		if !ok {
			continue
		}
		r := []rune(run.Text)
		s := start - lo
		if s < 0 {
			s = 0
		}
		e := end - lo
		if e > n {
			e = n
		}
		kept := string(r[:s]) + string(r[e:])
		if kept == "" {
			continue
		}
		out = append(out, &TextRun{Text: kept, Bold: run.Bold, Italic: run.Italic})
	}
	p.Content = out
}

// SplitAt divides the paragraph's content at the given rune offset. The
// paragraph keeps the content before the offset and the remainder is
// returned, ready to seed a new paragraph. An offset inside an opaque
// inline element moves the whole element to the tail.
func (p *Paragraph) SplitAt(offset int) []Inline {
	if offset < 0 {
		offset = 0
	}

	var head, tail []Inline
	pos := 0
	for _, el := range p.Content {
		n := inlineRuneLen(el)
		switch {
		case pos+n <= offset:
			head = append(head, el)
		case pos >= offset:
			tail = append(tail, el)
		default:
			run, ok := el.(*TextRun)
			if !ok {
				tail = append(tail, el)
				break
			}
			r := []rune(run.Text)
			at := offset - pos
			if at > 0 {
				head = append(head, &TextRun{Text: string(r[:at]), Bold: run.Bold, Italic: run.Italic})
			}
			if at < len(r) {
				tail = append(tail, &TextRun{Text: string(r[at:]), Bold: run.Bold, Italic: run.Italic})
			}
		}
		pos += n
	}
	p.Content = head
	return tail
}

// AppendContent appends inline elements, coalescing adjacent text runs with
// identical styling.
func (p *Paragraph) AppendContent(els ...Inline) {
	for _, el := range els {
		if run, ok := el.(*TextRun); ok && len(p.Content) > 0 {
			if last, ok := p.Content[len(p.Content)-1].(*TextRun); ok &&
				last.Bold == run.Bold && last.Italic == run.Italic {
				last.Text += run.Text
				continue
			}
		}
		p.Content = append(p.Content, el)
	}
}
