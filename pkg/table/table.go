// Package table renders rows of cells in measured columns: fixed-width
// columns keep their size, flexible ones share the remaining space
// between their minimum and maximum measurements.
package table

import (
	"strings"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/measure"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
	"github.com/arthur-debert/glint/pkg/text"
)

const separator = " │ "
const separatorWidth = 3

// Column describes one table column.
type Column struct {
	Header  string
	Style   style.Style
	Justify segment.Justify
	// Width fixes the column width; 0 lets the table size it from
	// content measurements.
	Width int
}

// Table is a renderable grid with a header row.
type Table struct {
	columns     []Column
	rows        [][]*text.Text
	headerStyle style.Style
}

// New returns a table with the given columns and a bold header.
func New(columns ...Column) *Table {
	return &Table{
		columns:     columns,
		headerStyle: style.MustParse("bold"),
	}
}

// HeaderStyle replaces the header row style.
func (t *Table) HeaderStyle(st style.Style) *Table {
	t.headerStyle = st
	return t
}

// AddRow appends a row of plain-text cells. Missing cells render empty;
// extra cells are dropped.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]*text.Text, len(t.columns))
	for i := range t.columns {
		if i < len(cells) {
			row[i] = text.New(cells[i])
		} else {
			row[i] = text.New("")
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// AddTextRow appends a row of styled cells.
func (t *Table) AddTextRow(cells ...*text.Text) *Table {
	row := make([]*text.Text, len(t.columns))
	for i := range t.columns {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = text.New("")
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// GlintRender lays the grid out at the available width. Each emitted row
// is pre-finalized, one terminal line per item.
func (t *Table) GlintRender(c *console.Console, opts console.Options) ([]console.Item, error) {
	if len(t.columns) == 0 {
		return nil, nil
	}
	widths, err := t.widths(c, opts)
	if err != nil {
		return nil, err
	}

	var items []console.Item

	headerCells := make([]*text.Text, len(t.columns))
	for i, col := range t.columns {
		headerCells[i] = text.Styled(col.Header, t.headerStyle)
	}
	items = append(items, t.renderRow(c, opts, headerCells, widths)...)
	items = append(items, t.separatorRow(widths))

	for _, row := range t.rows {
		items = append(items, t.renderRow(c, opts, row, widths)...)
	}
	return items, nil
}

// renderRow renders every cell at its column width and stitches the
// resulting lines side by side, padding short cells with blank rows.
func (t *Table) renderRow(c *console.Console, opts console.Options, row []*text.Text, widths []int) []console.Item {
	cellLines := make([][]segment.Line, len(t.columns))
	height := 0
	for i, col := range t.columns {
		cellOpts := opts.WithWidth(widths[i]).WithJustify(col.Justify).WithStyle(col.Style)
		lines, err := c.RenderLines(row[i], cellOpts)
		if err != nil || len(lines) == 0 {
			lines = []segment.Line{segment.PadOrCrop(segment.Line{}, widths[i], segment.JustifyLeft)}
		}
		cellLines[i] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}

	items := make([]console.Item, 0, height)
	for ln := 0; ln < height; ln++ {
		var segs []segment.Segment
		for i := range t.columns {
			if i > 0 {
				segs = append(segs, segment.New(separator))
			}
			if ln < len(cellLines[i]) {
				segs = append(segs, cellLines[i][ln].Segments...)
			} else {
				segs = append(segs, segment.New(strings.Repeat(" ", widths[i])))
			}
		}
		segs = append(segs, segment.NewLine)
		items = append(items, console.Segments(segs...))
	}
	return items
}

func (t *Table) separatorRow(widths []int) console.Item {
	var b strings.Builder
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}
	return console.Segments(segment.New(b.String()), segment.NewLine)
}

// widths sizes every column: fixed widths are honored, flexible columns
// get their measured maximum when everything fits, and otherwise share
// the remaining space proportionally above their minimums.
func (t *Table) widths(c *console.Console, opts console.Options) ([]int, error) {
	n := len(t.columns)
	available := opts.MaxWidth - separatorWidth*(n-1)
	if available < n {
		available = n
	}

	mins := make([]int, n)
	maxs := make([]int, n)
	flexible := 0
	for i, col := range t.columns {
		if col.Width > 0 {
			mins[i], maxs[i] = col.Width, col.Width
			continue
		}
		flexible++
		m, err := t.measureColumn(c, opts, i)
		if err != nil {
			return nil, err
		}
		mins[i], maxs[i] = m.Minimum, m.Maximum
	}

	total := 0
	for _, m := range maxs {
		total += m
	}
	if total <= available {
		return maxs, nil
	}

	// Shrink flexible columns: start at minimums, hand out what is left
	// proportionally to how much each column wants to grow.
	widths := make([]int, n)
	minTotal := 0
	for i := range widths {
		widths[i] = mins[i]
		if widths[i] < 1 {
			widths[i] = 1
		}
		minTotal += widths[i]
	}
	spare := available - minTotal
	if spare <= 0 || flexible == 0 {
		return squeeze(widths, available, t.columns), nil
	}

	want := 0
	for i := range widths {
		if t.columns[i].Width == 0 && maxs[i] > widths[i] {
			want += maxs[i] - widths[i]
		}
	}
	if want == 0 {
		return widths, nil
	}
	if spare > want {
		spare = want
	}
	handed := 0
	for i := range widths {
		if t.columns[i].Width != 0 || maxs[i] <= widths[i] {
			continue
		}
		share := spare * (maxs[i] - widths[i]) / want
		widths[i] += share
		handed += share
	}
	// Leftover cells from integer division go to the leftmost flexible
	// columns that still want them.
	for i := 0; handed < spare && i < n; i++ {
		if t.columns[i].Width == 0 && widths[i] < maxs[i] {
			widths[i]++
			handed++
		}
	}
	return widths, nil
}

// squeeze force-fits widths into the available space when even the
// minimums overflow, trimming the widest flexible columns first.
func squeeze(widths []int, available int, columns []Column) []int {
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > available {
		widest, at := 0, -1
		for i, w := range widths {
			if columns[i].Width == 0 && w > widest {
				widest, at = w, i
			}
		}
		if at < 0 || widths[at] <= 1 {
			break
		}
		widths[at]--
		total--
	}
	return widths
}

func (t *Table) measureColumn(c *console.Console, opts console.Options, col int) (measure.Measurement, error) {
	out, err := c.Measure(text.New(t.columns[col].Header), opts)
	if err != nil {
		return measure.Measurement{}, err
	}
	for _, row := range t.rows {
		m, err := c.Measure(row[col], opts)
		if err != nil {
			return measure.Measurement{}, err
		}
		out = measure.Max(out, m)
	}
	return out, nil
}

// GlintMeasure sums column bounds plus separator overhead.
func (t *Table) GlintMeasure(c *console.Console, opts console.Options) (measure.Measurement, error) {
	if len(t.columns) == 0 {
		return measure.Measurement{}, nil
	}
	out := measure.New(0, 0)
	for i, col := range t.columns {
		if col.Width > 0 {
			out = measure.Sum(out, measure.New(col.Width, col.Width))
			continue
		}
		m, err := t.measureColumn(c, opts, i)
		if err != nil {
			return measure.Measurement{}, err
		}
		out = measure.Sum(out, m)
	}
	return out.Grow(separatorWidth * (len(t.columns) - 1)), nil
}
