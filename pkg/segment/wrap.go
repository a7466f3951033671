package segment

import (
	"strings"

	"github.com/arthur-debert/glint/pkg/style"
)

// Justify selects horizontal alignment of a finalized line.
type Justify uint8

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
	JustifyFull
)

func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	case JustifyFull:
		return "full"
	}
	return "left"
}

// Overflow selects what happens to a word longer than the full line width.
type Overflow uint8

const (
	// OverflowFold force-splits the word across lines.
	OverflowFold Overflow = iota
	// OverflowCrop hard-cuts the line at the width.
	OverflowCrop
	// OverflowEllipsis cuts the line and marks it with "…" in the last cell.
	OverflowEllipsis
)

func (o Overflow) String() string {
	switch o {
	case OverflowCrop:
		return "crop"
	case OverflowEllipsis:
		return "ellipsis"
	}
	return "fold"
}

const ellipsis = "…"

// chunk is a wrap unit: a run of segments that is either all whitespace
// or a single unbreakable word, possibly spanning style boundaries.
type chunk struct {
	segments []Segment
	width    int
	space    bool
}

// chunks splits segments into alternating word and whitespace runs,
// keeping each substring attached to its originating style.
func chunks(segments []Segment) []chunk {
	var out []chunk
	push := func(s Segment, space bool) {
		if s.Text == "" {
			return
		}
		w := s.Width()
		if n := len(out); n > 0 && out[n-1].space == space {
			out[n-1].segments = append(out[n-1].segments, s)
			out[n-1].width += w
			return
		}
		out = append(out, chunk{segments: []Segment{s}, width: w, space: space})
	}

	for _, s := range segments {
		if s.control {
			// Control sequences ride along with the preceding chunk.
			if n := len(out); n > 0 {
				out[n-1].segments = append(out[n-1].segments, s)
			} else {
				out = append(out, chunk{segments: []Segment{s}, space: true})
			}
			continue
		}
		text := s.Text
		for text != "" {
			idx := strings.IndexByte(text, ' ')
			switch {
			case idx < 0:
				push(s.withText(text), false)
				text = ""
			case idx == 0:
				end := 0
				for end < len(text) && text[end] == ' ' {
					end++
				}
				push(s.withText(text[:end]), true)
				text = text[end:]
			default:
				push(s.withText(text[:idx]), false)
				text = text[idx:]
			}
		}
	}
	return out
}

// WordWrap greedily wraps segments into lines no wider than width. Words
// that fit within the remaining space stay on the current line; a single
// word wider than the full width is folded, cropped, or ellipsis-marked
// per the overflow policy. Whitespace at a break point is dropped.
// Wrapping never produces a line exceeding width, and empty input yields
// zero lines.
func WordWrap(segments []Segment, width int, overflow Overflow) []Line {
	if width < 1 {
		width = 1
	}
	var lines []Line
	var current []Segment
	currentWidth := 0

	flush := func() {
		lines = append(lines, Line{Segments: trimTrailingSpace(current)})
		current = nil
		currentWidth = 0
	}

	for _, c := range chunks(segments) {
		switch {
		case c.space:
			if currentWidth+c.width <= width {
				current = append(current, c.segments...)
				currentWidth += c.width
			} else {
				// Whitespace at the break is dropped.
				flush()
			}
		case currentWidth+c.width <= width:
			current = append(current, c.segments...)
			currentWidth += c.width
		case c.width <= width:
			flush()
			current = append(current, c.segments...)
			currentWidth = c.width
		default:
			// A single word wider than the whole line.
			if currentWidth > 0 {
				flush()
			}
			switch overflow {
			case OverflowFold:
				rest := c.segments
				for totalWidth(rest) > width {
					var fit []Segment
					fit, rest = SplitAtWidth(rest, width)
					lines = append(lines, Line{Segments: fit})
				}
				current = rest
				currentWidth = totalWidth(rest)
			case OverflowCrop:
				fit, _ := SplitAtWidth(c.segments, width)
				current = fit
				currentWidth = totalWidth(fit)
			case OverflowEllipsis:
				fit, _ := SplitAtWidth(c.segments, width-1)
				fit = append(fit, New(ellipsis))
				current = fit
				currentWidth = totalWidth(fit)
			}
		}
	}
	if len(current) > 0 {
		flush()
	}
	return lines
}

// trimTrailingSpace drops whitespace segments left dangling at a line
// break, preserving any trailing control segments.
func trimTrailingSpace(segments []Segment) []Segment {
	end := len(segments)
	for end > 0 {
		s := segments[end-1]
		if s.control {
			break
		}
		trimmed := strings.TrimRight(s.Text, " ")
		if trimmed == s.Text {
			break
		}
		if trimmed != "" {
			segments[end-1] = s.withText(trimmed)
			break
		}
		end--
	}
	return segments[:end]
}

// PadOrCrop finalizes a line to exactly width cells. Shorter lines are
// padded according to justify; the center tie-break sends the extra cell
// to the right. Full justification distributes filler across the line's
// existing whitespace gaps, falling back to left justification when the
// line has none. Longer lines are cropped from the end.
func PadOrCrop(line Line, width int, justify Justify) Line {
	w := line.Width()
	if w > width {
		fit, _ := SplitAtWidth(line.Segments, width)
		return Line{Segments: fit}
	}
	extra := width - w
	if extra == 0 {
		return line
	}

	switch justify {
	case JustifyRight:
		return Line{Segments: append([]Segment{filler(extra)}, line.Segments...)}
	case JustifyCenter:
		left := extra / 2
		right := extra - left
		segments := make([]Segment, 0, len(line.Segments)+2)
		if left > 0 {
			segments = append(segments, filler(left))
		}
		segments = append(segments, line.Segments...)
		segments = append(segments, filler(right))
		return Line{Segments: segments}
	case JustifyFull:
		if justified, ok := justifyFull(line, extra); ok {
			return justified
		}
	}
	return line.Append(filler(extra))
}

// justifyFull widens each whitespace gap in turn, leftmost gaps first,
// until the extra cells are spent.
func justifyFull(line Line, extra int) (Line, bool) {
	var gaps []int
	for i, s := range line.Segments {
		if !s.control && s.Text != "" && strings.TrimLeft(s.Text, " ") == "" {
			gaps = append(gaps, i)
		}
	}
	if len(gaps) == 0 {
		return Line{}, false
	}

	segments := append([]Segment(nil), line.Segments...)
	per := extra / len(gaps)
	remainder := extra % len(gaps)
	for n, i := range gaps {
		add := per
		if n < remainder {
			add++
		}
		if add > 0 {
			segments[i] = segments[i].withText(segments[i].Text + strings.Repeat(" ", add))
		}
	}
	return Line{Segments: segments}, true
}

func filler(width int) Segment {
	return New(strings.Repeat(" ", width))
}

// Apply layers base beneath every printing segment's own style; the
// segment's style wins on conflicts.
func Apply(segments []Segment, base style.Style) []Segment {
	if base.IsEmpty() {
		return segments
	}
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if s.control {
			out[i] = s
			continue
		}
		merged := base
		if s.Style != nil {
			merged = base.Combine(*s.Style)
		}
		out[i] = Styled(s.Text, merged)
	}
	return out
}
