// Package htmldoc imports HTML content into flow paragraphs.
//
// The importer maps block elements onto catalog format tags (h1-h3 to
// heading1..heading3, p to default, li to list, pre and code to code,
// figcaption to caption) and inline b/strong/i/em styling onto text run
// properties. Embedded tables become inline table placeholders and MathML
// elements become inline equations; content the importer cannot represent
// is reported through warnings rather than errors:
//
//	result, err := htmldoc.ParseString(src, doc)
//	if err != nil {
//	    // malformed input
//	}
//	for _, w := range result.Warnings {
//	    log.Println(w)
//	}
//
// The resulting paragraphs are plain model values; pouring them into a
// frame and reflowing is the coordinator's job.
package htmldoc
