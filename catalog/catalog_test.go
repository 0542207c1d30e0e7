package catalog

import (
	"testing"

	"github.com/tsawler/flowtext/model"
)

func TestResolve_UnknownTagFallsBackToDefault(t *testing.T) {
	cat := NewCatalog()
	eff := cat.Resolve("no-such-tag", nil)

	if eff.FontSize != 12 {
		t.Errorf("Expected default font size 12, got %v", eff.FontSize)
	}
	if eff.LineSpacing != 1.5 {
		t.Errorf("Expected default line spacing 1.5, got %v", eff.LineSpacing)
	}
	if eff.LineHeight() != 18 {
		t.Errorf("Expected line height 18, got %v", eff.LineHeight())
	}
}

func TestResolve_RegisteredTag(t *testing.T) {
	cat := NewCatalog()
	cat.PutParagraph(ParagraphFormat{
		Tag:         "body",
		LeftIndent:  10,
		FirstIndent: 15,
		SpaceAbove:  6,
		LineSpacing: 1.2,
		Character: CharacterFormat{
			Tag:      "body",
			FontName: "Times",
			FontSize: 11,
		},
	})

	eff := cat.Resolve("body", nil)
	if eff.FontName != "Times" || eff.FontSize != 11 {
		t.Errorf("Expected Times 11, got %s %v", eff.FontName, eff.FontSize)
	}
	if eff.LeftIndent != 10 || eff.FirstIndent != 15 || eff.SpaceAbove != 6 {
		t.Errorf("Unexpected indents: %+v", eff)
	}
}

func TestResolve_OverridesWin(t *testing.T) {
	cat := NewCatalog()
	o := &model.FormatOverrides{
		FontSize:   model.Float(20),
		LeftIndent: model.Float(30),
		Alignment:  model.Align(model.AlignCenter),
		Bold:       model.Flag(true),
	}

	eff := cat.Resolve("default", o)
	if eff.FontSize != 20 {
		t.Errorf("Expected overridden font size 20, got %v", eff.FontSize)
	}
	if eff.LeftIndent != 30 {
		t.Errorf("Expected overridden left indent 30, got %v", eff.LeftIndent)
	}
	if eff.Alignment != model.AlignCenter {
		t.Errorf("Expected center alignment, got %v", eff.Alignment)
	}
	if !eff.Bold {
		t.Error("Expected bold override")
	}
	// Untouched properties keep catalog values.
	if eff.LineSpacing != 1.5 {
		t.Errorf("Expected line spacing 1.5, got %v", eff.LineSpacing)
	}
}

func TestResolve_IgnoresInvalidOverrides(t *testing.T) {
	cat := NewCatalog()
	o := &model.FormatOverrides{
		FontSize:    model.Float(0),
		LineSpacing: model.Float(-1),
	}

	eff := cat.Resolve("default", o)
	if eff.FontSize != 12 || eff.LineSpacing != 1.5 {
		t.Errorf("Expected invalid overrides ignored, got size %v spacing %v", eff.FontSize, eff.LineSpacing)
	}
}

func TestResolve_GuardsDegenerateEntries(t *testing.T) {
	cat := NewCatalog()
	cat.PutParagraph(ParagraphFormat{
		Tag: "broken",
		Character: CharacterFormat{
			Tag: "broken",
			// FontSize zero
		},
		// LineSpacing zero
	})

	eff := cat.Resolve("broken", nil)
	if eff.FontSize <= 0 || eff.LineSpacing <= 0 {
		t.Errorf("Expected sanitized entry, got size %v spacing %v", eff.FontSize, eff.LineSpacing)
	}
}

func TestDefaultCatalog_BuiltinTags(t *testing.T) {
	cat := DefaultCatalog()

	for _, tag := range []string{"default", "heading1", "heading2", "heading3", "list", "caption", "code"} {
		if !cat.HasTag(tag) {
			t.Errorf("Expected built-in tag %q", tag)
		}
	}

	h1 := cat.Resolve("heading1", nil)
	body := cat.Resolve("default", nil)
	if h1.FontSize <= body.FontSize {
		t.Errorf("Expected heading1 larger than body: %v vs %v", h1.FontSize, body.FontSize)
	}
	if !h1.Bold {
		t.Error("Expected heading1 bold")
	}

	code := cat.Resolve("code", nil)
	if code.FontName != "Courier" {
		t.Errorf("Expected monospace code format, got %q", code.FontName)
	}
}

func TestPutParagraph_IgnoresEmptyTag(t *testing.T) {
	cat := NewCatalog()
	before := len(cat.Tags())
	cat.PutParagraph(ParagraphFormat{})
	if len(cat.Tags()) != before {
		t.Error("Expected empty tag rejected")
	}
}
