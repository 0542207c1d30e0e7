package flowtext

import (
	"strings"
	"testing"

	"github.com/tsawler/flowtext/model"
)

func TestEngineEndToEnd(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)

	// Usable 60x36 each: two 18pt lines of ten 12pt cells.
	a := e.AddTextFrame(page, model.NewRect(72, 72, 68, 44), "main")
	b := e.AddTextFrame(page, model.NewRect(72, 200, 68, 44), "main")
	e.Connect(a, b)

	e.AddText(a, "default", "aaaa")
	e.AddText(a, "default", "bbbb")
	e.AddText(a, "default", "cccc")

	fa := e.Document().Frame(a)
	fb := e.Document().Frame(b)
	if len(fa.Paragraphs) != 2 || len(fb.Paragraphs) != 1 {
		t.Fatalf("Expected 2/1 distribution, got %d/%d", len(fa.Paragraphs), len(fb.Paragraphs))
	}
	if e.State(a) != model.StateHasContent || e.State(b) != model.StateHasContent {
		t.Error("Expected both frames settled with content")
	}

	if got := e.Text(a); got != "aaaa\nbbbb\ncccc" {
		t.Errorf("Expected full stream text, got %q", got)
	}
	// The stream reads the same from any frame in the chain.
	if e.Text(b) != e.Text(a) {
		t.Error("Expected chain text independent of the queried frame")
	}
}

func TestEngineLayout(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 68, 44), "main")
	e.AddText(a, "default", "aaaa bbbb cccc")

	res := e.Layout(a)

	if res.LineCount() != 2 {
		t.Errorf("Expected 2 lines, got %d", res.LineCount())
	}
	if res.Overflowing() {
		t.Error("Expected content to fit")
	}
	if e.Overflowing(a) {
		t.Error("Expected pure overflow check to agree")
	}
}

func TestEngineFramePadding(t *testing.T) {
	e := New().WithFramePadding(0)
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 60, 54), "main")
	e.AddText(a, "default", "aaaa bbbb cccc")

	// With no padding the full 60pt width holds "aaaa bbbb" on one line.
	if got := e.Layout(a).LineCount(); got != 2 {
		t.Errorf("Expected 2 lines at zero padding, got %d", got)
	}
}

func TestEngineAutoconnect(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 68, 44), "story")
	b := e.AddTextFrame(page, model.NewRect(100, 0, 68, 44), "story")

	e.AddText(a, "default", "aaaa")
	e.AddText(a, "default", "bbbb")
	e.AddText(a, "default", "cccc")
	if e.State(a) != model.StateOverflowing {
		t.Fatal("Expected the unconnected frame to overflow")
	}

	e.Autoconnect()

	if e.Document().Frame(a).Next != b {
		t.Error("Expected the empty same-tag frame claimed")
	}
	if e.State(a) != model.StateHasContent {
		t.Error("Expected overflow resolved by the new link")
	}
}

func TestEngineAutoconnectDisabled(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 68, 44), "story")
	e.AddTextFrame(page, model.NewRect(100, 0, 68, 44), "story")
	e.SetAutoConnect("story", false)

	e.AddText(a, "default", "aaaa")
	e.AddText(a, "default", "bbbb")
	e.AddText(a, "default", "cccc")
	e.Autoconnect()

	if e.Document().Frame(a).Next != model.None {
		t.Error("Expected autoconnect suppressed for the flow")
	}
}

func TestEngineDisconnect(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 68, 44), "main")
	b := e.AddTextFrame(page, model.NewRect(100, 0, 68, 44), "main")
	e.Connect(a, b)
	e.AddText(a, "default", "aaaa")
	e.AddText(a, "default", "bbbb")
	e.AddText(a, "default", "cccc")

	e.Disconnect(b)

	doc := e.Document()
	if doc.Frame(a).Next != model.None || doc.Frame(b).Prev != model.None {
		t.Error("Expected the link severed on both ends")
	}
	e.AddText(a, "default", "dddd")
	if e.State(a) != model.StateOverflowing {
		t.Error("Expected growth to strand in the source after disconnect")
	}
}

func TestEngineEditing(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 308, 400), "main")
	e.AddText(a, "default", "hello world")

	e.InsertText(a, 0, 5, " there")
	if got := e.Text(a); got != "hello there world" {
		t.Fatalf("Expected insert applied, got %q", got)
	}

	e.DeleteText(a, 0, 5, 11)
	if got := e.Text(a); got != "hello world" {
		t.Fatalf("Expected delete applied, got %q", got)
	}

	e.SplitParagraph(a, 0, 5)
	if got := e.Text(a); got != "hello\n world" {
		t.Fatalf("Expected split into two paragraphs, got %q", got)
	}

	e.MergeParagraphs(a, 0)
	if got := e.Text(a); got != "hello world" {
		t.Fatalf("Expected merge to restore one paragraph, got %q", got)
	}
}

func TestEngineResizeReflows(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 68, 62), "main")
	b := e.AddTextFrame(page, model.NewRect(100, 0, 68, 44), "main")
	e.Connect(a, b)
	e.AddText(a, "default", "aaaa")
	e.AddText(a, "default", "bbbb")
	e.AddText(a, "default", "cccc")

	e.Resize(a, 68, 44)

	if got := len(e.Document().Frame(b).Paragraphs); got != 1 {
		t.Errorf("Expected one paragraph pushed forward by the shrink, got %d", got)
	}
	e.Move(a, 300, 300)
	if got := len(e.Document().Frame(b).Paragraphs); got != 1 {
		t.Errorf("Expected move to change nothing, got %d paragraphs", got)
	}
}

func TestEngineImportHTML(t *testing.T) {
	e := New()
	page := e.AddPage(612, 792)
	a := e.AddTextFrame(page, model.NewRect(0, 0, 308, 400), "main")

	warnings, err := e.ImportHTML(strings.NewReader(
		"<h1>Title</h1><p>Hello <b>bold</b> world</p><img src=\"x.png\">"), a)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f := e.Document().Frame(a)
	if len(f.Paragraphs) != 2 {
		t.Fatalf("Expected 2 imported paragraphs, got %d", len(f.Paragraphs))
	}
	if f.Paragraphs[0].FormatTag != "heading1" {
		t.Errorf("Expected heading tag, got %q", f.Paragraphs[0].FormatTag)
	}
	if got := f.Paragraphs[1].PlainText(); got != "Hello bold world" {
		t.Errorf("Expected body text imported, got %q", got)
	}
	if len(warnings) != 1 {
		t.Errorf("Expected one warning for the skipped image, got %v", warnings)
	}
}
