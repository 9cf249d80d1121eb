package mdpress

// Inline is one styled run of text inside a flow primitive, the backend-
// facing translation of a tokenized span. Style is resolved for inline
// code and link runs; nil means the run inherits the primitive's style,
// modified by the Bold/Italic flags.
type Inline struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Link   string // link target; empty for non-link runs
	Style  *StyleDescriptor
}

// FlowPrimitive is one renderable unit with its style resolved: a styled
// paragraph, heading or list item (Inlines), a preformatted code block
// (Code/Language), a horizontal rule, or a forced page break. The render
// backend consumes the sequence once, in order, and never reorders it.
type FlowPrimitive struct {
	Kind     Kind
	Style    StyleDescriptor
	Inlines  []Inline
	Code     []string
	Language string
}
