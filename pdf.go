package mdpress

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaStyleName selects the highlight palette for fenced code blocks.
// "github" keeps light backgrounds printable.
const chromaStyleName = "github"

// fpdfRenderer paginates flow primitives onto PDF pages using fpdf.
// It receives primitives in final order and writes them without
// reordering; pagination itself (automatic page breaks) is fpdf's job.
type fpdfRenderer struct {
	highlightStyle *chroma.Style
}

func newFpdfRenderer() *fpdfRenderer {
	st := styles.Get(chromaStyleName)
	if st == nil {
		st = styles.Fallback
	}
	return &fpdfRenderer{highlightStyle: st}
}

// Render lays out the flow sequence on pages of the given settings and
// returns the finished PDF bytes. All failures wrap ErrRenderFailed so
// callers can tell render problems from parse-time errors.
func (r *fpdfRenderer) Render(flow []FlowPrimitive, page *PageSettings) ([]byte, error) {
	if page == nil {
		page = DefaultPageSettings()
	}

	pdf := fpdf.New(fpdfOrientation(page.Orientation), "pt", fpdfPageSize(page.Size), "")
	margin := page.Margin * 72 // inches to points
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, p := range flow {
		switch p.Kind {
		case KindPageBreak:
			pdf.AddPage()
		case KindRule:
			r.rule(pdf, p.Style)
		case KindCodeBlock:
			r.codeBlock(pdf, tr, p)
		case KindListItem:
			r.textBlock(pdf, tr, p, "• ")
		default:
			r.textBlock(pdf, tr, p, "")
		}
		if pdf.Err() {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// textBlock writes a heading, paragraph or list item: optional bullet,
// then each inline run with its own font/style/color, links as fpdf link
// annotations.
func (r *fpdfRenderer) textBlock(pdf *fpdf.Fpdf, tr func(string) string, p FlowPrimitive, bullet string) {
	st := p.Style
	if st.SpaceBefore > 0 {
		pdf.Ln(st.SpaceBefore)
	}
	left, _, _, _ := pdf.GetMargins()
	if st.LeftIndent > 0 {
		pdf.SetLeftMargin(left + st.LeftIndent)
		pdf.SetX(left + st.LeftIndent)
	}

	h := lineHeight(st)
	if bullet != "" {
		applyStyle(pdf, st, nil)
		pdf.Write(h, tr(bullet))
	}
	for i := range p.Inlines {
		in := &p.Inlines[i]
		applyStyle(pdf, st, in)
		if in.Link != "" {
			pdf.WriteLinkString(h, tr(in.Text), in.Link)
		} else {
			pdf.Write(h, tr(in.Text))
		}
	}
	pdf.Ln(h)

	if st.LeftIndent > 0 {
		pdf.SetLeftMargin(left)
	}
	if st.SpaceAfter > 0 {
		pdf.Ln(st.SpaceAfter)
	}
}

// codeBlock writes verbatim preformatted lines. With a recognized
// language the tokens are colored via chroma; otherwise the whole block
// is one filled monospace cell.
func (r *fpdfRenderer) codeBlock(pdf *fpdf.Fpdf, tr func(string) string, p FlowPrimitive) {
	st := p.Style
	if st.SpaceBefore > 0 {
		pdf.Ln(st.SpaceBefore)
	}
	left, _, _, _ := pdf.GetMargins()
	if st.LeftIndent > 0 {
		pdf.SetLeftMargin(left + st.LeftIndent)
		pdf.SetX(left + st.LeftIndent)
	}

	h := lineHeight(st)
	pdf.SetFont(st.Family, "", st.Size)
	code := strings.Join(p.Code, "\n")

	if tokens := highlightTokens(p.Language, code); tokens != nil {
		defR, defG, defB := hexRGB(st.Color)
		for _, tok := range tokens {
			cr, cg, cb := defR, defG, defB
			if entry := r.highlightStyle.Get(tok.Type); entry.Colour.IsSet() {
				cr = int(entry.Colour.Red())
				cg = int(entry.Colour.Green())
				cb = int(entry.Colour.Blue())
			}
			pdf.SetTextColor(cr, cg, cb)
			pdf.Write(h, tr(tok.Value))
		}
		pdf.Ln(h)
	} else {
		fr, fg, fb := hexRGB(st.Fill)
		pdf.SetFillColor(fr, fg, fb)
		cr, cg, cb := hexRGB(st.Color)
		pdf.SetTextColor(cr, cg, cb)
		pdf.MultiCell(0, h, tr(code), "", "L", st.Fill != "")
	}

	if st.LeftIndent > 0 {
		pdf.SetLeftMargin(left)
	}
	if st.SpaceAfter > 0 {
		pdf.Ln(st.SpaceAfter)
	}
}

// rule draws a margin-to-margin divider line.
func (r *fpdfRenderer) rule(pdf *fpdf.Fpdf, st StyleDescriptor) {
	if st.SpaceBefore > 0 {
		pdf.Ln(st.SpaceBefore)
	}
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	y := pdf.GetY()

	dr, dg, db := hexRGB(st.Color)
	pdf.SetDrawColor(dr, dg, db)
	pdf.SetLineWidth(1)
	pdf.Line(left, y, width-right, y)

	if st.SpaceAfter > 0 {
		pdf.Ln(st.SpaceAfter)
	}
}

// applyStyle sets the current font and text color for an inline run.
// The run merges into the block style: Bold/Italic flags add to it, and
// an attached inline style (code, link) overrides family/color/underline,
// with zero Size meaning inherit.
func applyStyle(pdf *fpdf.Fpdf, block StyleDescriptor, in *Inline) {
	family, size, color := block.Family, block.Size, block.Color
	bold, italic, underline := block.Bold, block.Italic, block.Underline

	if in != nil {
		bold = bold || in.Bold
		italic = italic || in.Italic
		if s := in.Style; s != nil {
			if s.Family != "" {
				family = s.Family
			}
			if s.Size > 0 {
				size = s.Size
			}
			if s.Color != "" {
				color = s.Color
			}
			bold = bold || s.Bold
			italic = italic || s.Italic
			underline = underline || s.Underline
		}
	}

	var styleStr string
	if bold {
		styleStr += "B"
	}
	if italic {
		styleStr += "I"
	}
	if underline {
		styleStr += "U"
	}
	pdf.SetFont(family, styleStr, size)
	cr, cg, cb := hexRGB(color)
	pdf.SetTextColor(cr, cg, cb)
}

// highlightTokens lexes code for the given language tag. Nil means no
// highlighting (unknown language or lexer failure) and the caller falls
// back to plain preformatted output.
func highlightTokens(language, code string) []chroma.Token {
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}
	return it.Tokens()
}

// lineHeight returns the writing line height for a style.
func lineHeight(st StyleDescriptor) float64 {
	if st.Leading > 0 {
		return st.Leading
	}
	return st.Size * 1.2
}

// hexRGB parses "#rrggbb" into components; malformed colors become black.
func hexRGB(hex string) (int, int, int) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}

// fpdfPageSize maps our page size names to fpdf's.
func fpdfPageSize(size string) string {
	switch strings.ToLower(size) {
	case PageSizeA4:
		return "A4"
	case PageSizeLegal:
		return "Legal"
	default:
		return "Letter"
	}
}

// fpdfOrientation maps our orientation names to fpdf's.
func fpdfOrientation(orientation string) string {
	if strings.ToLower(orientation) == OrientationLandscape {
		return "L"
	}
	return "P"
}
