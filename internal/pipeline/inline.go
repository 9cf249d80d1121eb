package pipeline

import "strings"

// Span is a contiguous run of inline-styled text within a block. Style
// flags combine freely except Code: inline code spans carry no other flag
// and their text is never scanned for further markup.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Link   string // link target; empty for non-link spans
}

// Plain reports whether the span carries no styling at all.
func (s Span) Plain() bool {
	return !s.Bold && !s.Italic && !s.Code && s.Link == ""
}

// Tokenize scans one logical line of text and returns its ordered inline
// spans. Scanning is strictly left-to-right and greedy; at each position
// delimiters are tried in precedence order: inline code, bold (** or __),
// italic (* or _), link [label](target). Double-character markers are
// checked before single ones so **x** is never read as nested italics.
//
// Unmatched delimiters are literal text; Tokenize never fails. The
// returned spans concatenate back to the input text minus consumed
// markers, with any text between recognized spans emitted as plain spans.
func Tokenize(text string) []Span {
	return scanInline(text, Span{})
}

// scanInline tokenizes text, stamping every produced span with the style
// flags of base. Bold and italic content is re-scanned recursively so
// nested emphasis accumulates flags; recursion depth is bounded by the
// number of delimiter characters in the input.
func scanInline(text string, base Span) []Span {
	var spans []Span
	start := 0 // start of the pending plain run

	flush := func(end int) {
		if end > start {
			p := base
			p.Text = text[start:end]
			spans = append(spans, p)
		}
	}

	i := 0
	for i < len(text) {
		switch c := text[i]; c {
		case '`':
			rest := text[i+1:]
			j := strings.IndexByte(rest, '`')
			if j < 0 {
				i++ // unbalanced backtick stays literal
				continue
			}
			flush(i)
			// Code is exclusive: inherited flags are dropped.
			spans = append(spans, Span{Text: rest[:j], Code: true})
			i += j + 2
			start = i

		case '*', '_':
			delim := string(c)
			if i+1 < len(text) && text[i+1] == c {
				// Bold: find the matching double marker of the same family.
				inner, width := matchedPair(text[i+2:], delim+delim)
				if width > 0 {
					flush(i)
					b := base
					b.Bold = true
					spans = append(spans, scanInline(inner, b)...)
					i += width + 4
					start = i
					continue
				}
			}
			inner, width := matchedPair(text[i+1:], delim)
			if width > 0 {
				flush(i)
				it := base
				it.Italic = true
				spans = append(spans, scanInline(inner, it)...)
				i += width + 2
				start = i
				continue
			}
			i++

		case '[':
			label, target, consumed := matchLink(text[i:])
			if consumed == 0 {
				i++
				continue
			}
			flush(i)
			l := base
			l.Text = label
			l.Link = target
			spans = append(spans, l)
			i += consumed
			start = i

		default:
			i++
		}
	}
	flush(len(text))
	return spans
}

// matchedPair looks for the closing delimiter in rest and returns the
// enclosed content and its width. Width 0 means no match; empty content
// (e.g. "****") is treated as unmatched so stray runs stay literal.
func matchedPair(rest, delim string) (content string, width int) {
	j := strings.Index(rest, delim)
	if j <= 0 {
		return "", 0
	}
	return rest[:j], j
}

// matchLink matches a [label](target) construct at the start of s.
// Both label and target must be non-empty and the "](" must be adjacent.
// Returns the number of bytes consumed, 0 if s is not a link.
func matchLink(s string) (label, target string, consumed int) {
	rb := strings.IndexByte(s, ']')
	if rb <= 1 || rb+1 >= len(s) || s[rb+1] != '(' {
		return "", "", 0
	}
	end := strings.IndexByte(s[rb+2:], ')')
	if end <= 0 {
		return "", "", 0
	}
	label = s[1:rb]
	target = s[rb+2 : rb+2+end]
	return label, target, rb + end + 3
}
