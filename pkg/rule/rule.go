// Package rule renders a horizontal divider line, optionally carrying a
// centered title.
package rule

import (
	"strings"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/measure"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

// Rule is a full-width horizontal line.
type Rule struct {
	title string
	style style.Style
	char  string
}

// New returns an untitled rule drawn with "─".
func New() *Rule {
	return &Rule{char: "─"}
}

// Title returns the rule with a centered title.
func (r *Rule) Title(title string) *Rule {
	r.title = title
	return r
}

// Style returns the rule with the line drawn in st.
func (r *Rule) Style(st style.Style) *Rule {
	r.style = st
	return r
}

// Char returns the rule drawn with a custom character.
func (r *Rule) Char(char string) *Rule {
	if char != "" {
		r.char = char
	}
	return r
}

// GlintRender draws the rule across the full available width. A title
// that cannot fit alongside at least two line cells per side is cropped.
func (r *Rule) GlintRender(_ *console.Console, opts console.Options) ([]console.Item, error) {
	width := opts.MaxWidth
	if r.title == "" {
		return []console.Item{console.Segments(
			segment.Styled(strings.Repeat(r.char, width), r.style),
			segment.NewLine,
		)}, nil
	}

	maxTitle := width - 6
	if maxTitle < 1 {
		return []console.Item{console.Segments(
			segment.Styled(strings.Repeat(r.char, width), r.style),
			segment.NewLine,
		)}, nil
	}
	title := cells.Truncate(r.title, maxTitle, "…")
	side := width - cells.Width(title) - 2
	left := side / 2
	right := side - left
	return []console.Item{console.Segments(
		segment.Styled(strings.Repeat(r.char, left), r.style),
		segment.New(" "+title+" "),
		segment.Styled(strings.Repeat(r.char, right), r.style),
		segment.NewLine,
	)}, nil
}

// GlintMeasure reports that a rule wants the full width but tolerates
// anything that fits its title.
func (r *Rule) GlintMeasure(_ *console.Console, opts console.Options) (measure.Measurement, error) {
	minimum := 1
	if r.title != "" {
		minimum = cells.Width(r.title) + 4
	}
	return measure.New(minimum, opts.MaxWidth), nil
}
