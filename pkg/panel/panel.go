// Package panel wraps any renderable in a drawn border with one cell of
// horizontal padding.
package panel

import (
	"strings"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/measure"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

// Border and padding overhead on each side of the child content.
const overhead = 4

// Box holds the characters a panel border is drawn with.
type Box struct {
	TopLeft, Top, TopRight          string
	Left, Right                     string
	BottomLeft, Bottom, BottomRight string
}

// Rounded is the default border set.
var Rounded = Box{
	TopLeft: "╭", Top: "─", TopRight: "╮",
	Left: "│", Right: "│",
	BottomLeft: "╰", Bottom: "─", BottomRight: "╯",
}

// Square is a sharp-cornered border set.
var Square = Box{
	TopLeft: "┌", Top: "─", TopRight: "┐",
	Left: "│", Right: "│",
	BottomLeft: "└", Bottom: "─", BottomRight: "┘",
}

// Panel draws a border around a child renderable.
type Panel struct {
	child       console.Renderable
	title       string
	box         Box
	borderStyle style.Style
}

// New wraps child in a rounded border.
func New(child console.Renderable) *Panel {
	return &Panel{child: child, box: Rounded}
}

// Title returns the panel with a title embedded in the top border.
func (p *Panel) Title(title string) *Panel {
	p.title = title
	return p
}

// Border returns the panel drawn with a custom box.
func (p *Panel) Border(box Box) *Panel {
	p.box = box
	return p
}

// BorderStyle returns the panel with its border drawn in st.
func (p *Panel) BorderStyle(st style.Style) *Panel {
	p.borderStyle = st
	return p
}

// GlintRender renders the child at a width reduced by the border
// overhead, then frames each child line. Framed rows come out at
// exactly the target width, so the outer wrap pass leaves them intact.
func (p *Panel) GlintRender(c *console.Console, opts console.Options) ([]console.Item, error) {
	width := opts.MaxWidth
	if width < overhead+1 {
		width = overhead + 1
	}
	inner := width - overhead

	childLines, err := c.RenderLines(p.child, opts.WithWidth(inner))
	if err != nil {
		return nil, err
	}

	border := func(text string) segment.Segment {
		return segment.Styled(text, p.borderStyle)
	}

	items := []console.Item{console.Segments(
		border(p.topBorder(width)),
		segment.NewLine,
	)}
	for _, line := range childLines {
		segs := make([]segment.Segment, 0, len(line.Segments)+4)
		segs = append(segs, border(p.box.Left), segment.New(" "))
		segs = append(segs, line.Segments...)
		segs = append(segs, segment.New(" "), border(p.box.Right), segment.NewLine)
		items = append(items, console.Segments(segs...))
	}
	items = append(items, console.Segments(
		border(p.bottomBorder(width)),
		segment.NewLine,
	))
	return items, nil
}

func (p *Panel) topBorder(width int) string {
	span := width - 2
	if p.title == "" {
		return p.box.TopLeft + strings.Repeat(p.box.Top, span) + p.box.TopRight
	}
	title := cells.Truncate(p.title, span-4, "…")
	rest := span - cells.Width(title) - 2
	left := rest / 2
	right := rest - left
	return p.box.TopLeft + strings.Repeat(p.box.Top, left) +
		" " + title + " " + strings.Repeat(p.box.Top, right) + p.box.TopRight
}

func (p *Panel) bottomBorder(width int) string {
	return p.box.BottomLeft + strings.Repeat(p.box.Bottom, width-2) + p.box.BottomRight
}

// GlintMeasure adds the border overhead to the child's measurement.
func (p *Panel) GlintMeasure(c *console.Console, opts console.Options) (measure.Measurement, error) {
	inner := opts.MaxWidth - overhead
	if inner < 1 {
		inner = 1
	}
	m, err := c.Measure(p.child, opts.WithWidth(inner))
	if err != nil {
		return measure.Measurement{}, err
	}
	return m.Grow(overhead), nil
}
