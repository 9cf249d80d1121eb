// Package mdpress converts restricted Markdown documents to styled,
// paginated PDF files without any external renderer.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := mdpress.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdpress.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// Or convert files directly:
//
//	out, err := conv.ConvertFile(ctx, "report.md", "")
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line splitting and block classification (headings, paragraphs,
//     list items, fenced code, horizontal rules)
//  2. Inline tokenization of text blocks (bold, italic, code spans, links)
//  3. Flow building: each block is paired with its resolved style
//  4. PDF rendering via fpdf, with chroma coloring fenced code
//
// # Supported Markdown
//
// The dialect is deliberately restricted: ATX headings levels 1-3,
// paragraphs, dash and star list items, fenced code blocks with an
// optional language tag, horizontal rules, and the inline markup
// **bold**, *italic*, `code`, and [label](target). Anything else
// renders as plain paragraph text; malformed markup degrades to
// literal text and never fails a conversion.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdpress.NewConverter(
//	    mdpress.WithPageSettings(&mdpress.PageSettings{Size: "a4"}),
//	    mdpress.WithBreakBefore(2),
//	)
//
// Styles are adjustable per block kind between conversions:
//
//	conv.Styles().Override(mdpress.KindHeading1, mdpress.StyleOverride{
//	    Size: mdpress.Float64(28),
//	})
//
// Per-conversion page settings are passed via Input:
//
//	result, err := conv.Convert(ctx, mdpress.Input{
//	    Markdown: content,
//	    Title:    "Release Notes",
//	    Page:     &mdpress.PageSettings{Size: "letter", Margin: 0.75},
//	})
//
// # Batch Conversion
//
// ConvertFiles processes inputs sequentially and never aborts the batch
// on a single failure:
//
//	results := conv.ConvertFiles(ctx, paths, "out/")
//	for _, r := range results {
//	    if r.Err != nil {
//	        log.Printf("%s: %v", r.InputPath, r.Err)
//	    }
//	}
package mdpress
