package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/table"
)

func newConsole(width int) *console.Console {
	var buf bytes.Buffer
	return console.New(&buf, console.WithWidth(width), console.WithProfile(termenv.Ascii))
}

func lineTexts(lines []segment.Line) []string {
	var out []string
	for _, l := range lines {
		out = append(out, strings.TrimRight(l.Text(), " "))
	}
	return out
}

func TestTableBasicLayout(t *testing.T) {
	tbl := table.New(
		table.Column{Header: "name"},
		table.Column{Header: "id"},
	).AddRow("alpha", "1").AddRow("beta", "22")

	c := newConsole(40)
	lines, err := c.Render(tbl, 40)
	require.NoError(t, err)

	got := lineTexts(lines)
	require.Len(t, got, 4, "header, separator, two rows")
	assert.Equal(t, "name  │ id", got[0])
	assert.Equal(t, "──────┼───", got[1])
	assert.Equal(t, "alpha │ 1", got[2])
	assert.Equal(t, "beta  │ 22", got[3])
}

func TestTableFixedColumnWidth(t *testing.T) {
	tbl := table.New(
		table.Column{Header: "a", Width: 3},
		table.Column{Header: "b"},
	).AddRow("x", "y")

	c := newConsole(40)
	lines, err := c.Render(tbl, 40)
	require.NoError(t, err)
	assert.Equal(t, "a   │ b", lineTexts(lines)[0])
}

func TestTableWrapsCellsWhenNarrow(t *testing.T) {
	tbl := table.New(
		table.Column{Header: "words"},
		table.Column{Header: "n"},
	).AddRow("hello world", "1")

	c := newConsole(12)
	lines, err := c.Render(tbl, 12)
	require.NoError(t, err)

	got := lineTexts(lines)
	// The first column shrinks below its maximum, wrapping the cell
	// onto two rows.
	require.GreaterOrEqual(t, len(got), 4)
	for _, l := range lines {
		assert.LessOrEqual(t, l.Width(), 12)
	}
	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "hello")
	assert.Contains(t, joined, "world")
}

func TestTableRightJustifiedColumn(t *testing.T) {
	tbl := table.New(
		table.Column{Header: "n", Justify: segment.JustifyRight, Width: 4},
	).AddRow("12")

	c := newConsole(20)
	lines, err := c.Render(tbl, 20)
	require.NoError(t, err)
	got := lineTexts(lines)
	assert.Equal(t, "  12", got[2])
}

func TestTableMeasure(t *testing.T) {
	tbl := table.New(
		table.Column{Header: "ab"},
		table.Column{Header: "cd"},
	).AddRow("wxyz", "e")

	c := newConsole(40)
	m, err := c.Measure(tbl, c.Options())
	require.NoError(t, err)
	// Columns measure 4 and 2, plus one 3-cell separator.
	assert.Equal(t, 9, m.Maximum)
	assert.Equal(t, 9, m.Minimum)
}
