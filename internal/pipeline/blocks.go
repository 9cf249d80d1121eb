package pipeline

import "strings"

// fenceMarker opens and closes code blocks. The opening line may carry a
// trailing info string (language tag); the closing line is the bare marker.
const fenceMarker = "```"

// maxHeadingLevel is the deepest supported heading. Deeper marker runs
// (####...) are not headings and fall back to paragraph text.
const maxHeadingLevel = 3

// BlockKind identifies the structural type of a classified block.
type BlockKind string

// Block kinds produced by Classify.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockListItem  BlockKind = "list-item"
	BlockCode      BlockKind = "code"
	BlockRule      BlockKind = "rule"
)

// Line is one row of source text with its zero-based position.
type Line struct {
	Text  string
	Index int
}

// Block is a classified run of one or more consecutive source lines.
// Text carries the marker-stripped content of single-line and paragraph
// blocks; Code carries the verbatim lines of a fenced block, with
// Language holding the opening fence's info string (may be empty).
type Block struct {
	Kind     BlockKind
	Level    int // heading level 1..3; 0 otherwise
	Text     string
	Code     []string
	Language string
}

// SplitLines splits document text on newlines into indexed lines.
// A trailing newline does not produce an extra empty line.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, t := range raw {
		lines[i] = Line{Text: t, Index: i}
	}
	return lines
}

// Classify groups a line sequence into typed blocks, in source order.
//
// The scan is a state machine with two states, normal and in-code-fence.
// In the normal state each line is matched against, in order: blank,
// fence, heading, horizontal rule, list item, paragraph text. Consecutive
// paragraph lines merge into a single block joined with single spaces;
// blank lines close the open paragraph and are dropped from the result.
// List markers and headings are only recognized at column zero: indented
// lines are paragraph continuation text, never nested structure.
//
// A fence opens on a (possibly indented) ``` line, recording any info
// string as the block's language; every following line is code content,
// verbatim, until a bare closing fence. A fence still open at end of
// input closes implicitly with the remaining lines as its content.
func Classify(lines []Line) []Block {
	var blocks []Block
	var para []string

	inFence := false
	var code []string
	var lang string

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.Join(para, " ")})
			para = nil
		}
	}

	for _, ln := range lines {
		if inFence {
			if strings.TrimSpace(ln.Text) == fenceMarker {
				blocks = append(blocks, Block{Kind: BlockCode, Code: code, Language: lang})
				inFence, code, lang = false, nil, ""
			} else {
				code = append(code, ln.Text)
			}
			continue
		}

		trimmed := strings.TrimSpace(ln.Text)
		switch {
		case trimmed == "":
			flushPara()

		case strings.HasPrefix(trimmed, fenceMarker):
			flushPara()
			inFence = true
			lang = strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))

		case headingLevel(ln.Text) > 0:
			flushPara()
			level := headingLevel(ln.Text)
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: level,
				Text:  strings.TrimSpace(ln.Text[level+1:]),
			})

		case isRule(trimmed):
			flushPara()
			blocks = append(blocks, Block{Kind: BlockRule})

		case isListItem(ln.Text):
			flushPara()
			blocks = append(blocks, Block{Kind: BlockListItem, Text: strings.TrimSpace(ln.Text[2:])})

		default:
			para = append(para, trimmed)
		}
	}

	if inFence {
		// Unterminated fence: everything to EOF is code content.
		blocks = append(blocks, Block{Kind: BlockCode, Code: code, Language: lang})
	}
	flushPara()
	return blocks
}

// headingLevel returns 1..3 for a line starting with that many '#'
// characters followed by a space, 0 otherwise. Deeper runs return 0.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0
	}
	if level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// isRule reports whether a trimmed line is a horizontal rule: three or
// more of the same marker character and nothing else.
func isRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != c {
			return false
		}
	}
	return true
}

// isListItem reports whether a line opens a bulleted list item. Only
// column-zero markers count; indentation never implies nesting here.
func isListItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}
