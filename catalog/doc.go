// Package catalog provides the style catalog and format resolution for flow
// text layout.
//
// A [Catalog] maps format tags to paragraph and character formats. Lookup
// never fails: an unknown tag resolves to the guaranteed built-in default
// entry. [Catalog.Resolve] merges the catalog entry for a tag with optional
// per-paragraph overrides into one [Effective] property set, which is what
// the layout package consumes:
//
//	cat := catalog.DefaultCatalog()
//	eff := cat.Resolve("heading1", nil)
//	lineHeight := eff.LineHeight()
package catalog
