package console

import (
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

// Highlighter turns plain text into styled segments. It is the hook the
// console carries for pluggable semantic highlighting (see pkg/syntax).
type Highlighter interface {
	Highlight(text string) []segment.Segment
}

// Options is the immutable per-render-call configuration. A nested
// renderable receives a derived copy (via the With* methods); a parent's
// copy is never mutated.
type Options struct {
	// MaxWidth is the target line width in cells.
	MaxWidth int
	// Height caps the number of produced lines; 0 means unbounded.
	Height int
	// Justify aligns each finalized line within MaxWidth.
	Justify segment.Justify
	// Overflow selects the policy for words wider than MaxWidth.
	Overflow segment.Overflow
	// NoWrap disables word wrapping; overlong lines follow Overflow.
	NoWrap bool
	// Context is the style merged beneath every segment produced in
	// this call. Segment styles win on conflicts.
	Context style.Style
	// Highlighter, when set, may be used by renderables to style plain
	// text they emit.
	Highlighter Highlighter
}

// WithWidth returns a copy with a new target width.
func (o Options) WithWidth(width int) Options {
	o.MaxWidth = width
	return o
}

// WithHeight returns a copy with a line cap.
func (o Options) WithHeight(height int) Options {
	o.Height = height
	return o
}

// WithJustify returns a copy with a new justification.
func (o Options) WithJustify(j segment.Justify) Options {
	o.Justify = j
	return o
}

// WithOverflow returns a copy with a new overflow policy.
func (o Options) WithOverflow(of segment.Overflow) Options {
	o.Overflow = of
	return o
}

// WithNoWrap returns a copy with wrapping toggled.
func (o Options) WithNoWrap(noWrap bool) Options {
	o.NoWrap = noWrap
	return o
}

// WithStyle returns a copy whose style context has st layered on top of
// the inherited context, so style precedence accumulates top-down.
func (o Options) WithStyle(st style.Style) Options {
	o.Context = o.Context.Combine(st)
	return o
}

// WithHighlighter returns a copy carrying a highlighter.
func (o Options) WithHighlighter(h Highlighter) Options {
	o.Highlighter = h
	return o
}
