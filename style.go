package mdpress

import "fmt"

// Kind names a block or inline style in the registry's fixed set.
type Kind string

// The fixed set of style kinds. Requesting or setting any other kind
// fails with ErrUnknownStyleKind.
const (
	KindHeading1   Kind = "heading1"
	KindHeading2   Kind = "heading2"
	KindHeading3   Kind = "heading3"
	KindBody       Kind = "body"
	KindCodeBlock  Kind = "code-block"
	KindInlineCode Kind = "inline-code"
	KindListItem   Kind = "list-item"
	KindLink       Kind = "link"
	KindRule       Kind = "rule"
)

// KindPageBreak marks a forced page break in the flow. It is a flow kind
// only, not a style kind: it never appears in the registry.
const KindPageBreak Kind = "page-break"

// styleKinds is the registry's enumeration, in a stable order.
var styleKinds = []Kind{
	KindHeading1, KindHeading2, KindHeading3,
	KindBody, KindCodeBlock, KindInlineCode,
	KindListItem, KindLink, KindRule,
}

// StyleDescriptor is the resolved visual style for one kind.
//
// Sizes and spacing are in points; colors are "#rrggbb" hex. A zero Size
// or empty Family on an inline kind (inline-code, link) means "inherit
// from the enclosing block's style".
type StyleDescriptor struct {
	Family      string  // "Helvetica" or "Courier"
	Size        float64 // font size in points
	Bold        bool
	Italic      bool
	Underline   bool
	Color       string  // text color
	Fill        string  // background fill; empty = none
	Leading     float64 // line height in points
	LeftIndent  float64 // points
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
}

// StyleOverride is a partial style change; nil fields keep the current
// value. Used by Override to merge caller tweaks into a descriptor.
type StyleOverride struct {
	Family      *string
	Size        *float64
	Bold        *bool
	Italic      *bool
	Underline   *bool
	Color       *string
	Fill        *string
	Leading     *float64
	LeftIndent  *float64
	SpaceBefore *float64
	SpaceAfter  *float64
}

// StyleRegistry maps style kinds to descriptors. It is seeded with
// defaults at construction and mutable by the caller between conversions;
// a conversion reads it without synchronization, so callers must not
// mutate styles concurrently with an in-flight conversion.
type StyleRegistry struct {
	styles map[Kind]StyleDescriptor
}

// NewStyleRegistry returns a registry seeded with the default styles:
// distinct sizes per heading level, monospaced code, colored underlined
// links.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{styles: map[Kind]StyleDescriptor{
		KindHeading1: {
			Family: "Helvetica", Size: 24, Bold: true, Color: "#1a1a1a",
			Leading: 29, SpaceBefore: 12, SpaceAfter: 12,
		},
		KindHeading2: {
			Family: "Helvetica", Size: 18, Bold: true, Color: "#2a2a2a",
			Leading: 22, SpaceBefore: 10, SpaceAfter: 10,
		},
		KindHeading3: {
			Family: "Helvetica", Size: 14, Bold: true, Color: "#3a3a3a",
			Leading: 17, SpaceBefore: 8, SpaceAfter: 8,
		},
		KindBody: {
			Family: "Helvetica", Size: 11, Color: "#000000",
			Leading: 16, SpaceAfter: 6,
		},
		KindCodeBlock: {
			Family: "Courier", Size: 9, Color: "#333333", Fill: "#f5f5f5",
			Leading: 11, LeftIndent: 20, SpaceBefore: 6, SpaceAfter: 6,
		},
		// Size 0: inline code inherits the enclosing block's size.
		KindInlineCode: {
			Family: "Courier", Color: "#c7254e", Fill: "#f9f2f4",
		},
		KindListItem: {
			Family: "Helvetica", Size: 11, Color: "#000000",
			Leading: 16, LeftIndent: 12, SpaceAfter: 3,
		},
		KindLink: {
			Color: "#0000ee", Underline: true,
		},
		KindRule: {
			Color: "#c8c8c8", SpaceBefore: 10, SpaceAfter: 10,
		},
	}}
}

// Get returns the descriptor for kind, or ErrUnknownStyleKind.
func (r *StyleRegistry) Get(kind Kind) (StyleDescriptor, error) {
	d, ok := r.styles[kind]
	if !ok {
		return StyleDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownStyleKind, kind)
	}
	return d, nil
}

// Set fully replaces the descriptor for kind.
func (r *StyleRegistry) Set(kind Kind, d StyleDescriptor) error {
	if _, ok := r.styles[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyleKind, kind)
	}
	r.styles[kind] = d
	return nil
}

// Override merges the non-nil fields of o into the descriptor for kind.
// Subsequent conversions pick up the new values immediately.
func (r *StyleRegistry) Override(kind Kind, o StyleOverride) error {
	d, ok := r.styles[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyleKind, kind)
	}
	if o.Family != nil {
		d.Family = *o.Family
	}
	if o.Size != nil {
		d.Size = *o.Size
	}
	if o.Bold != nil {
		d.Bold = *o.Bold
	}
	if o.Italic != nil {
		d.Italic = *o.Italic
	}
	if o.Underline != nil {
		d.Underline = *o.Underline
	}
	if o.Color != nil {
		d.Color = *o.Color
	}
	if o.Fill != nil {
		d.Fill = *o.Fill
	}
	if o.Leading != nil {
		d.Leading = *o.Leading
	}
	if o.LeftIndent != nil {
		d.LeftIndent = *o.LeftIndent
	}
	if o.SpaceBefore != nil {
		d.SpaceBefore = *o.SpaceBefore
	}
	if o.SpaceAfter != nil {
		d.SpaceAfter = *o.SpaceAfter
	}
	r.styles[kind] = d
	return nil
}

// Kinds returns the fixed style kind set in a stable order.
func (r *StyleRegistry) Kinds() []Kind {
	out := make([]Kind, len(styleKinds))
	copy(out, styleKinds)
	return out
}

// Float64 returns a pointer to v, for building StyleOverride values.
func Float64(v float64) *float64 { return &v }

// Bool returns a pointer to v, for building StyleOverride values.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for building StyleOverride values.
func String(v string) *string { return &v }
