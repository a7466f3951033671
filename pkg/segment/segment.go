// Package segment defines the atoms of rendering: styled text segments
// and the width-exact lines built from them.
package segment

import (
	"strings"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/arthur-debert/glint/pkg/style"
)

// Segment is the smallest renderable unit: a run of text with an
// optional style. Control segments carry non-printing escape sequences
// (cursor moves, erases) and are excluded from all width accounting.
// Segments are immutable; operations return fresh values.
type Segment struct {
	Text    string
	Style   *style.Style
	control bool
}

// New returns an unstyled text segment.
func New(text string) Segment {
	return Segment{Text: text}
}

// Styled returns a segment carrying the given style.
func Styled(text string, st style.Style) Segment {
	if st.IsEmpty() {
		return Segment{Text: text}
	}
	return Segment{Text: text, Style: &st}
}

// Control returns a non-printing control segment.
func Control(text string) Segment {
	return Segment{Text: text, control: true}
}

// NewLine is the segment that terminates a logical line.
var NewLine = Segment{Text: "\n"}

// IsControl reports whether the segment bypasses width accounting.
func (s Segment) IsControl() bool {
	return s.control
}

// IsNewLine reports whether the segment is a logical line break.
func (s Segment) IsNewLine() bool {
	return !s.control && s.Text == "\n"
}

// Width returns the display width in cells; control segments are zero.
func (s Segment) Width() int {
	if s.control {
		return 0
	}
	return cells.Width(s.Text)
}

// SplitAt divides the segment at a cell position. Both halves keep the
// original style.
func (s Segment) SplitAt(at int) (Segment, Segment) {
	left, right := cells.Split(s.Text, at)
	return Segment{Text: left, Style: s.Style, control: s.control},
		Segment{Text: right, Style: s.Style, control: s.control}
}

// withText returns a copy of the segment with replaced text.
func (s Segment) withText(text string) Segment {
	return Segment{Text: text, Style: s.Style, control: s.control}
}

// Line is an ordered run of segments representing exactly one terminal
// row. A finalized line (after PadOrCrop) sums to the target width.
type Line struct {
	Segments []Segment
}

// Width returns the total display width of the line's printing segments.
func (l Line) Width() int {
	width := 0
	for _, s := range l.Segments {
		width += s.Width()
	}
	return width
}

// Text returns the line's plain text without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Segments {
		if !s.control {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Append returns the line with a segment added.
func (l Line) Append(s Segment) Line {
	return Line{Segments: append(l.Segments[:len(l.Segments):len(l.Segments)], s)}
}

// Width of a run of segments.
func totalWidth(segments []Segment) int {
	width := 0
	for _, s := range segments {
		width += s.Width()
	}
	return width
}

// SplitAtWidth divides segments into a prefix fitting within width cells
// and the remainder, splitting a segment's text mid-string if needed.
// Style always stays attached to its originating substring. Control
// segments at the boundary go with the prefix.
func SplitAtWidth(segments []Segment, width int) (fit, rest []Segment) {
	acc := 0
	for i, s := range segments {
		if s.control {
			fit = append(fit, s)
			continue
		}
		w := s.Width()
		if acc+w <= width {
			fit = append(fit, s)
			acc += w
			continue
		}
		left, right := s.SplitAt(width - acc)
		if left.Text != "" {
			fit = append(fit, left)
		}
		rest = append(rest, right)
		rest = append(rest, segments[i+1:]...)
		return fit, rest
	}
	return fit, nil
}
