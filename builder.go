package mdpress

import (
	"github.com/hmarchal/mdpress/internal/pipeline"
)

// documentBuilder walks a classified block sequence and produces the flow
// primitives the render backend consumes. It reads the style registry and
// has no other side effects; output order always matches block order and
// no non-blank block is ever dropped.
type documentBuilder struct {
	styles      *StyleRegistry
	breakBefore map[int]bool // heading levels that force a page break
}

func newDocumentBuilder(styles *StyleRegistry, breakBefore []int) *documentBuilder {
	levels := make(map[int]bool, len(breakBefore))
	for _, l := range breakBefore {
		levels[l] = true
	}
	return &documentBuilder{styles: styles, breakBefore: levels}
}

// Build converts blocks to flow primitives, one or two per block (a
// heading may be preceded by a page break). Text-bearing blocks are run
// through the inline tokenizer; code blocks are passed verbatim, never
// re-parsed for markdown.
func (b *documentBuilder) Build(blocks []pipeline.Block) ([]FlowPrimitive, error) {
	flow := make([]FlowPrimitive, 0, len(blocks))

	for _, blk := range blocks {
		switch blk.Kind {
		case pipeline.BlockHeading:
			if b.breakBefore[blk.Level] {
				flow = append(flow, FlowPrimitive{Kind: KindPageBreak})
			}
			kind := headingKind(blk.Level)
			p, err := b.textPrimitive(kind, blk.Text)
			if err != nil {
				return nil, err
			}
			flow = append(flow, p)

		case pipeline.BlockListItem:
			p, err := b.textPrimitive(KindListItem, blk.Text)
			if err != nil {
				return nil, err
			}
			flow = append(flow, p)

		case pipeline.BlockCode:
			style, err := b.styles.Get(KindCodeBlock)
			if err != nil {
				return nil, err
			}
			flow = append(flow, FlowPrimitive{
				Kind:     KindCodeBlock,
				Style:    style,
				Code:     blk.Code,
				Language: blk.Language,
			})

		case pipeline.BlockRule:
			style, err := b.styles.Get(KindRule)
			if err != nil {
				return nil, err
			}
			flow = append(flow, FlowPrimitive{Kind: KindRule, Style: style})

		default:
			// Anything unrecognized renders as a paragraph rather than
			// being dropped.
			p, err := b.textPrimitive(KindBody, blk.Text)
			if err != nil {
				return nil, err
			}
			flow = append(flow, p)
		}
	}
	return flow, nil
}

// textPrimitive tokenizes text and resolves its block and inline styles.
func (b *documentBuilder) textPrimitive(kind Kind, text string) (FlowPrimitive, error) {
	style, err := b.styles.Get(kind)
	if err != nil {
		return FlowPrimitive{}, err
	}
	inlines, err := b.toInlines(pipeline.Tokenize(text))
	if err != nil {
		return FlowPrimitive{}, err
	}
	return FlowPrimitive{Kind: kind, Style: style, Inlines: inlines}, nil
}

// toInlines translates tokenizer spans to backend inline runs, attaching
// the resolved inline-code and link styles where they apply.
func (b *documentBuilder) toInlines(spans []pipeline.Span) ([]Inline, error) {
	if len(spans) == 0 {
		return nil, nil
	}
	inlines := make([]Inline, 0, len(spans))
	for _, s := range spans {
		in := Inline{
			Text:   s.Text,
			Bold:   s.Bold,
			Italic: s.Italic,
			Code:   s.Code,
			Link:   s.Link,
		}
		switch {
		case s.Code:
			style, err := b.styles.Get(KindInlineCode)
			if err != nil {
				return nil, err
			}
			in.Style = &style
		case s.Link != "":
			style, err := b.styles.Get(KindLink)
			if err != nil {
				return nil, err
			}
			in.Style = &style
		}
		inlines = append(inlines, in)
	}
	return inlines, nil
}

// headingKind maps a heading level to its style kind.
func headingKind(level int) Kind {
	switch level {
	case 1:
		return KindHeading1
	case 2:
		return KindHeading2
	default:
		return KindHeading3
	}
}
