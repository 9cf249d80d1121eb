// Package pipeline implements the parsing stages of the markdown-to-PDF
// conversion: splitting source text into lines, classifying lines into
// blocks, and tokenizing block text into inline spans.
//
// The parsers are deliberate finite-state scanners rather than regex or
// grammar engines: precedence (inline code > bold > italic > link) and
// left-to-right greedy matching are explicit in the control flow, so the
// behavior does not depend on any pattern engine's backtracking semantics.
//
// Only the restricted markdown subset documented on each scanner is
// recognized; everything else passes through as plain text. Parsing never
// fails: malformed markup degrades to literal text.
package pipeline
