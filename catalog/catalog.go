package catalog

import "github.com/tsawler/flowtext/model"

// DefaultTag is the tag of the guaranteed catalog entry that unknown tags
// resolve to.
const DefaultTag = "default"

// ParagraphFormat is a catalog entry describing paragraph-level styling.
// All distances are in points; LineSpacing is a multiplier on font size.
type ParagraphFormat struct {
	Tag         string
	LeftIndent  float64
	RightIndent float64
	FirstIndent float64
	SpaceAbove  float64
	SpaceBelow  float64
	LineSpacing float64
	Alignment   model.Alignment
	Character   CharacterFormat
}

// CharacterFormat is a catalog entry describing character-level styling.
type CharacterFormat struct {
	Tag      string
	FontName string
	FontSize float64
	Bold     bool
	Italic   bool
}

// Effective is the merged property set for one paragraph: the catalog entry
// for its format tag combined with any per-paragraph overrides.
type Effective struct {
	FontName    string
	FontSize    float64
	Bold        bool
	Italic      bool
	LineSpacing float64
	LeftIndent  float64
	RightIndent float64
	FirstIndent float64
	SpaceAbove  float64
	SpaceBelow  float64
	Alignment   model.Alignment
}

// LineHeight returns the height of one line under this format.
func (e Effective) LineHeight() float64 {
	return e.FontSize * e.LineSpacing
}

// Catalog maps format tags to formats. The default entry always exists, so
// resolution never fails.
type Catalog struct {
	paragraphs map[string]ParagraphFormat
	characters map[string]CharacterFormat
}

// builtinDefault is the entry installed under DefaultTag in every catalog.
func builtinDefault() ParagraphFormat {
	return ParagraphFormat{
		Tag:         DefaultTag,
		LineSpacing: 1.5,
		Character: CharacterFormat{
			Tag:      DefaultTag,
			FontName: "Helvetica",
			FontSize: 12,
		},
	}
}

// NewCatalog creates a catalog holding only the default entry.
func NewCatalog() *Catalog {
	c := &Catalog{
		paragraphs: make(map[string]ParagraphFormat),
		characters: make(map[string]CharacterFormat),
	}
	def := builtinDefault()
	c.paragraphs[DefaultTag] = def
	c.characters[DefaultTag] = def.Character
	return c
}

// DefaultCatalog creates a catalog with the built-in named formats used by
// content import: default, heading1..heading3, list, caption, and code.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	def := builtinDefault()

	heading := func(tag string, size, above, below float64) ParagraphFormat {
		f := def
		f.Tag = tag
		f.SpaceAbove = above
		f.SpaceBelow = below
		f.LineSpacing = 1.2
		f.Character.Tag = tag
		f.Character.FontSize = size
		f.Character.Bold = true
		return f
	}
	c.PutParagraph(heading("heading1", 24, 18, 12))
	c.PutParagraph(heading("heading2", 18, 14, 10))
	c.PutParagraph(heading("heading3", 14, 12, 8))

	list := def
	list.Tag = "list"
	list.LeftIndent = 18
	list.SpaceBelow = 2
	c.PutParagraph(list)

	caption := def
	caption.Tag = "caption"
	caption.Alignment = model.AlignCenter
	caption.Character.Tag = "caption"
	caption.Character.FontSize = 10
	caption.Character.Italic = true
	c.PutParagraph(caption)

	code := def
	code.Tag = "code"
	code.LeftIndent = 12
	code.LineSpacing = 1.2
	code.Character.Tag = "code"
	code.Character.FontName = "Courier"
	code.Character.FontSize = 10
	c.PutParagraph(code)

	return c
}

// PutParagraph registers or replaces a paragraph format under its tag. Its
// character format is registered alongside it.
func (c *Catalog) PutParagraph(f ParagraphFormat) {
	if f.Tag == "" {
		return
	}
	c.paragraphs[f.Tag] = f
	if f.Character.Tag != "" {
		c.characters[f.Character.Tag] = f.Character
	}
}

// PutCharacter registers or replaces a character format under its tag.
func (c *Catalog) PutCharacter(f CharacterFormat) {
	if f.Tag == "" {
		return
	}
	c.characters[f.Tag] = f
}

// ParagraphFormat returns the entry for a tag, falling back to the default
// entry for unknown tags.
func (c *Catalog) ParagraphFormat(tag string) ParagraphFormat {
	if f, ok := c.paragraphs[tag]; ok {
		return f
	}
	return c.paragraphs[DefaultTag]
}

// CharacterFormat returns the entry for a tag, falling back to the default
// entry for unknown tags.
func (c *Catalog) CharacterFormat(tag string) CharacterFormat {
	if f, ok := c.characters[tag]; ok {
		return f
	}
	return c.characters[DefaultTag]
}

// HasTag reports whether a paragraph format is registered under the tag.
func (c *Catalog) HasTag(tag string) bool {
	_, ok := c.paragraphs[tag]
	return ok
}

// Tags returns the registered paragraph format tags in no particular order.
func (c *Catalog) Tags() []string {
	tags := make([]string, 0, len(c.paragraphs))
	for tag := range c.paragraphs {
		tags = append(tags, tag)
	}
	return tags
}

// Resolve merges the catalog entry for a tag with per-paragraph overrides
// into one effective property set. Unknown tags resolve to the default
// entry; Resolve never fails.
func (c *Catalog) Resolve(tag string, o *model.FormatOverrides) Effective {
	f := c.ParagraphFormat(tag)
	eff := Effective{
		FontName:    f.Character.FontName,
		FontSize:    f.Character.FontSize,
		Bold:        f.Character.Bold,
		Italic:      f.Character.Italic,
		LineSpacing: f.LineSpacing,
		LeftIndent:  f.LeftIndent,
		RightIndent: f.RightIndent,
		FirstIndent: f.FirstIndent,
		SpaceAbove:  f.SpaceAbove,
		SpaceBelow:  f.SpaceBelow,
		Alignment:   f.Alignment,
	}
	if eff.FontSize <= 0 {
		eff.FontSize = builtinDefault().Character.FontSize
	}
	if eff.LineSpacing <= 0 {
		eff.LineSpacing = builtinDefault().LineSpacing
	}
	if o == nil {
		return eff
	}
	if o.FontSize != nil && *o.FontSize > 0 {
		eff.FontSize = *o.FontSize
	}
	if o.LineSpacing != nil && *o.LineSpacing > 0 {
		eff.LineSpacing = *o.LineSpacing
	}
	if o.LeftIndent != nil {
		eff.LeftIndent = *o.LeftIndent
	}
	if o.RightIndent != nil {
		eff.RightIndent = *o.RightIndent
	}
	if o.FirstIndent != nil {
		eff.FirstIndent = *o.FirstIndent
	}
	if o.SpaceAbove != nil {
		eff.SpaceAbove = *o.SpaceAbove
	}
	if o.SpaceBelow != nil {
		eff.SpaceBelow = *o.SpaceBelow
	}
	if o.Alignment != nil {
		eff.Alignment = *o.Alignment
	}
	if o.Bold != nil {
		eff.Bold = *o.Bold
	}
	if o.Italic != nil {
		eff.Italic = *o.Italic
	}
	return eff
}
