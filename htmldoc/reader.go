package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/flowtext/model"
)

// Result holds the outcome of an HTML import: the document title, the
// paragraphs ready to pour into a frame, and warnings for content that was
// flattened or skipped.
type Result struct {
	Title      string
	Paragraphs []*model.Paragraph
	Warnings   []string
}

// Open parses an HTML file into paragraphs allocated from doc.
func Open(filename string, doc *model.Document) (*Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f, doc)
}

// Parse reads HTML from r into paragraphs allocated from doc.
func Parse(r io.Reader, doc *model.Document) (*Result, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	imp := &importer{doc: doc, res: &Result{}}
	imp.extractTitle(root)

	body := findElement(root, "body")
	if body == nil {
		body = root
	}
	imp.walk(body)
	imp.flush()

	return imp.res, nil
}

// ParseString parses an HTML string into paragraphs allocated from doc.
func ParseString(s string, doc *model.Document) (*Result, error) {
	return Parse(strings.NewReader(s), doc)
}

// importer carries traversal state: the paragraph being assembled and the
// inline style depth counters.
type importer struct {
	doc *model.Document
	res *Result

	current      *model.Paragraph
	bold         int
	italic       int
	pendingSpace bool
}

func (imp *importer) extractTitle(n *html.Node) {
	if t := findElement(n, "title"); t != nil {
		imp.res.Title = strings.TrimSpace(textContent(t))
	}
}

// walk traverses body content, opening paragraphs at block elements and
// appending styled runs at text nodes.
func (imp *importer) walk(n *html.Node) {
	if n.Type == html.TextNode {
		imp.appendText(n.Data)
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}

	switch n.Data {
	case "script", "style", "head", "noscript":
		return

	case "h1", "h2", "h3":
		imp.startParagraph("heading" + n.Data[1:])
		imp.walkChildren(n)
		imp.flush()
		return
	case "h4", "h5", "h6":
		imp.warnf("heading level %s clamped to heading3", n.Data)
		imp.startParagraph("heading3")
		imp.walkChildren(n)
		imp.flush()
		return
	case "p", "blockquote":
		imp.startParagraph("default")
		imp.walkChildren(n)
		imp.flush()
		return
	case "li":
		imp.startParagraph("list")
		imp.walkChildren(n)
		imp.flush()
		return
	case "pre":
		imp.startParagraph("code")
		imp.walkChildren(n)
		imp.flush()
		return
	case "figcaption":
		imp.startParagraph("caption")
		imp.walkChildren(n)
		imp.flush()
		return

	case "b", "strong":
		imp.bold++
		imp.walkChildren(n)
		imp.bold--
		return
	case "i", "em":
		imp.italic++
		imp.walkChildren(n)
		imp.italic--
		return

	case "br":
		imp.pendingSpace = true
		return

	case "table":
		rows, cols := tableShape(n)
		imp.ensureParagraph()
		imp.current.Content = append(imp.current.Content, &model.Table{Rows: rows, Cols: cols})
		imp.warnf("table imported as %dx%d placeholder", rows, cols)
		return
	case "math":
		imp.ensureParagraph()
		imp.current.Content = append(imp.current.Content, &model.Equation{
			Source: strings.TrimSpace(textContent(n)),
		})
		return
	case "var":
		name := strings.TrimSpace(textContent(n))
		imp.ensureParagraph()
		imp.current.Content = append(imp.current.Content, &model.Variable{
			Name:  name,
			Value: name,
		})
		return

	case "img":
		imp.warnf("skipped image %q", attr(n, "src"))
		return
	}

	imp.walkChildren(n)
}

func (imp *importer) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		imp.walk(c)
	}
}

// appendText collapses whitespace and appends a run with the current
// styling, merging with the previous run when the style matches.
func (imp *importer) appendText(raw string) {
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" {
		if raw != "" && imp.current != nil && len(imp.current.Content) > 0 {
			imp.pendingSpace = true
		}
		return
	}

	imp.ensureParagraph()
	text := collapsed
	if imp.pendingSpace || startsWithSpace(raw) {
		if len(imp.current.Content) > 0 {
			text = " " + text
		}
	}
	imp.pendingSpace = endsWithSpace(raw)

	imp.current.AppendContent(&model.TextRun{
		Text:   text,
		Bold:   imp.bold > 0,
		Italic: imp.italic > 0,
	})
}

func (imp *importer) startParagraph(tag string) {
	imp.flush()
	imp.current = imp.doc.NewParagraph(tag)
	imp.pendingSpace = false
}

func (imp *importer) ensureParagraph() {
	if imp.current == nil {
		imp.startParagraph("default")
	}
}

// flush finishes the paragraph under assembly, trimming edge whitespace and
// discarding paragraphs that collected nothing.
func (imp *importer) flush() {
	p := imp.current
	imp.current = nil
	imp.pendingSpace = false
	if p == nil {
		return
	}
	trimEdges(p)
	if len(p.Content) == 0 {
		return
	}
	imp.res.Paragraphs = append(imp.res.Paragraphs, p)
}

func (imp *importer) warnf(format string, args ...any) {
	imp.res.Warnings = append(imp.res.Warnings, fmt.Sprintf(format, args...))
}

// trimEdges strips leading whitespace from the first run and trailing
// whitespace from the last, dropping runs emptied by the trim.
func trimEdges(p *model.Paragraph) {
	for len(p.Content) > 0 {
		run, ok := p.Content[0].(*model.TextRun)
		if !ok {
			break
		}
		run.Text = strings.TrimLeft(run.Text, " ")
		if run.Text != "" {
			break
		}
		p.Content = p.Content[1:]
	}
	for len(p.Content) > 0 {
		run, ok := p.Content[len(p.Content)-1].(*model.TextRun)
		if !ok {
			break
		}
		run.Text = strings.TrimRight(run.Text, " ")
		if run.Text != "" {
			break
		}
		p.Content = p.Content[:len(p.Content)-1]
	}
}

// tableShape counts a table's rows and its widest row.
func tableShape(n *html.Node) (rows, cols int) {
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			rows++
			width := 0
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					width++
				}
			}
			if width > cols {
				cols = width
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return rows, cols
}

// findElement returns the first element with the given tag, depth-first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all text beneath a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// attr returns the value of an attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r')
}

func endsWithSpace(s string) bool {
	return s != "" && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t' || s[len(s)-1] == '\n' || s[len(s)-1] == '\r')
}
