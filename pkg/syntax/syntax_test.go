package syntax_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/syntax"
)

var _ console.Highlighter = syntax.Highlighter{}

func newConsole(width int) *console.Console {
	var buf bytes.Buffer
	return console.New(&buf, console.WithWidth(width), console.WithProfile(termenv.Ascii))
}

const goSource = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}"

func TestCodePreservesSourceLines(t *testing.T) {
	c := newConsole(40)
	lines, err := c.Render(syntax.New(goSource, "go"), 40)
	require.NoError(t, err)

	want := strings.Split(goSource, "\n")
	require.Len(t, lines, len(want))
	for i, line := range lines {
		assert.Equal(t, want[i], strings.TrimRight(line.Text(), " "))
	}
}

func TestCodeTokensCarryStyles(t *testing.T) {
	c := newConsole(80)
	lines, err := c.Render(syntax.New("package main", "go"), 80)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	styled := false
	for _, s := range lines[0].Segments {
		if s.Style != nil && !s.Style.IsEmpty() {
			styled = true
		}
	}
	assert.True(t, styled, "known language produces styled tokens")
}

func TestCodeUnknownLanguageFallsBackToPlain(t *testing.T) {
	c := newConsole(40)
	lines, err := c.Render(syntax.New("just words", "no-such-lang"), 40)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "just words", strings.TrimRight(lines[0].Text(), " "))
}

func TestCodeLongLinesCropInsteadOfWrapping(t *testing.T) {
	long := "alpha beta gamma delta epsilon zeta"
	c := newConsole(10)
	lines, err := c.Render(syntax.New(long, ""), 10)
	require.NoError(t, err)
	require.Len(t, lines, 1, "code never wraps")
	assert.LessOrEqual(t, lines[0].Width(), 10)
}

func TestCodeMeasureUsesWidestLine(t *testing.T) {
	c := newConsole(80)
	m, err := c.Measure(syntax.New("ab\nabcdef\nabc", "go"), c.Options())
	require.NoError(t, err)
	assert.Equal(t, 6, m.Minimum)
	assert.Equal(t, 6, m.Maximum)
}

func TestCodeMeasureCountsCellsNotBytes(t *testing.T) {
	c := newConsole(80)
	// Two double-width characters in a literal: 4 cells plus quotes.
	m, err := c.Measure(syntax.New(`"日本"`, "go"), c.Options())
	require.NoError(t, err)
	assert.Equal(t, 6, m.Maximum)
}

func TestHighlighterStylesPlainText(t *testing.T) {
	h := syntax.Highlighter{Lang: "json"}
	segs := h.Highlight(`{"key": 1}`)
	require.NotEmpty(t, segs)

	var b strings.Builder
	for _, s := range segs {
		if !s.IsControl() {
			b.WriteString(s.Text)
		}
	}
	assert.Equal(t, `{"key": 1}`, b.String())
}
