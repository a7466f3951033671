package console

import (
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

// brokenStyle marks the placeholder line substituted for a child
// renderable that failed to render.
var brokenStyle = style.MustParse("bold red")

const brokenMarker = "✘ render error"

// RenderLines expands r into finalized lines: every line is exactly
// opts.MaxWidth cells wide after padding, or shorter only when a height
// cap truncated the output.
//
// Expansion uses an explicit work stack, so nesting depth is bounded by
// content, not by the goroutine stack. A child renderable that fails is
// replaced by a visible placeholder line and its siblings continue; only
// invalid options abort the call.
func (c *Console) RenderLines(r Renderable, opts Options) ([]segment.Line, error) {
	if opts.MaxWidth <= 0 {
		opts = opts.WithWidth(c.effectiveWidth(0))
	}
	segments := c.collect(r, opts)
	lines := layout(segments, opts)
	return capHeight(lines, opts), nil
}

// Render expands r at the given width; width <= 0 resolves to the
// ambient terminal width (or the fallback).
func (c *Console) Render(r Renderable, width int) ([]segment.Line, error) {
	return c.RenderLines(r, c.Options().WithWidth(c.effectiveWidth(width)))
}

// effectiveWidth resolves a requested width: explicit request, else the
// console's (detected) width, else the fixed fallback.
func (c *Console) effectiveWidth(requested int) int {
	if requested > 0 {
		return requested
	}
	if c.width > 0 {
		return c.width
	}
	return FallbackWidth
}

// frame is one level of the expansion stack: the pending items of a
// renderable plus the options they render under.
type frame struct {
	items []Item
	idx   int
	opts  Options
}

// collect flattens the renderable tree into raw segments with each
// level's style context merged beneath segment styles.
func (c *Console) collect(r Renderable, opts Options) []segment.Segment {
	var out []segment.Segment
	stack := []frame{{items: c.expand(r, opts), opts: opts}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		item := top.items[top.idx]
		top.idx++

		if item.child != nil {
			childOpts := top.opts
			if item.childOpts != nil {
				childOpts = *item.childOpts
			}
			stack = append(stack, frame{items: c.expand(item.child, childOpts), opts: childOpts})
			continue
		}
		out = append(out, segment.Apply(item.segments, top.opts.Context)...)
	}
	return out
}

// expand invokes one renderable's render step, substituting the broken
// placeholder for its output when it fails.
func (c *Console) expand(r Renderable, opts Options) []Item {
	items, err := r.GlintRender(c, opts)
	if err != nil {
		c.log.Warn().Err(err).Msg("renderable failed, substituting placeholder")
		return []Item{Segments(
			segment.Styled(brokenMarker, brokenStyle),
			segment.NewLine,
		)}
	}
	return items
}

// layout buffers segments into logical lines terminated at newline
// segments, then wraps, justifies, and pads each to the target width.
// An empty segment stream yields zero lines; explicit newline segments
// yield blank lines.
func layout(segments []segment.Segment, opts Options) []segment.Line {
	var lines []segment.Line
	var current []segment.Segment

	emit := func() {
		lines = append(lines, finalize(current, opts)...)
		current = nil
	}

	for _, s := range segments {
		if s.IsNewLine() {
			emit()
			continue
		}
		current = append(current, s)
	}
	if len(current) > 0 {
		emit()
	}
	return lines
}

// finalize turns one logical line into one or more finalized rows.
func finalize(run []segment.Segment, opts Options) []segment.Line {
	width := opts.MaxWidth
	if len(run) == 0 {
		// An explicit blank line still occupies a padded row.
		return []segment.Line{segment.PadOrCrop(segment.Line{}, width, opts.Justify)}
	}
	if opts.NoWrap {
		line := cropLine(segment.Line{Segments: run}, width, opts.Overflow)
		return []segment.Line{segment.PadOrCrop(line, width, opts.Justify)}
	}
	wrapped := segment.WordWrap(run, width, opts.Overflow)
	out := make([]segment.Line, 0, len(wrapped))
	for i, line := range wrapped {
		justify := opts.Justify
		// Full justification never stretches the final wrapped row.
		if justify == segment.JustifyFull && i == len(wrapped)-1 {
			justify = segment.JustifyLeft
		}
		out = append(out, segment.PadOrCrop(line, width, justify))
	}
	return out
}

// cropLine applies the overflow policy to an unwrapped line.
func cropLine(line segment.Line, width int, overflow segment.Overflow) segment.Line {
	if line.Width() <= width {
		return line
	}
	if overflow == segment.OverflowEllipsis && width > 0 {
		fit, _ := segment.SplitAtWidth(line.Segments, width-1)
		return segment.Line{Segments: append(fit, segment.New("…"))}
	}
	fit, _ := segment.SplitAtWidth(line.Segments, width)
	return segment.Line{Segments: fit}
}

// capHeight drops lines beyond the height cap, replacing the last
// visible row with a truncation marker.
func capHeight(lines []segment.Line, opts Options) []segment.Line {
	if opts.Height <= 0 || len(lines) <= opts.Height {
		return lines
	}
	capped := lines[:opts.Height]
	marker := segment.Line{Segments: []segment.Segment{segment.New("…")}}
	capped[len(capped)-1] = segment.PadOrCrop(marker, opts.MaxWidth, opts.Justify)
	return capped
}
