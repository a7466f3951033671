package markdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/markdown"
	"github.com/arthur-debert/glint/pkg/segment"
)

func render(t *testing.T, source string, width int) []segment.Line {
	t.Helper()
	var buf bytes.Buffer
	c := console.New(&buf, console.WithWidth(width), console.WithProfile(termenv.Ascii))
	lines, err := c.Render(markdown.New(source), width)
	require.NoError(t, err)
	return lines
}

func joined(lines []segment.Line) string {
	var out []string
	for _, l := range lines {
		out = append(out, strings.TrimRight(l.Text(), " "))
	}
	return strings.Join(out, "\n")
}

func TestParagraphWraps(t *testing.T) {
	lines := render(t, "one two three four five", 10)
	require.GreaterOrEqual(t, len(lines), 2)
	for _, l := range lines {
		assert.LessOrEqual(t, l.Width(), 10)
	}
	assert.Contains(t, joined(lines), "one two")
}

func TestTopLevelHeadingBecomesTitledRule(t *testing.T) {
	lines := render(t, "# Overview", 30)
	require.Len(t, lines, 1)
	got := lines[0].Text()
	assert.Contains(t, got, "Overview")
	assert.Contains(t, got, "─")
}

func TestSecondLevelHeadingIsStyledText(t *testing.T) {
	lines := render(t, "## Details", 30)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Details", strings.TrimRight(lines[0].Text(), " "))
	assert.NotContains(t, lines[0].Text(), "─")
}

func TestBlocksSeparatedByBlankLine(t *testing.T) {
	lines := render(t, "first\n\nsecond", 20)
	require.Len(t, lines, 3)
	assert.Equal(t, "first", strings.TrimRight(lines[0].Text(), " "))
	assert.Equal(t, "", strings.TrimRight(lines[1].Text(), " "))
	assert.Equal(t, "second", strings.TrimRight(lines[2].Text(), " "))
}

func TestEmphasisProducesStyledSegments(t *testing.T) {
	lines := render(t, "plain *italic* **bold**", 40)
	require.NotEmpty(t, lines)

	var sawItalic, sawBold bool
	for _, s := range lines[0].Segments {
		if s.Style == nil {
			continue
		}
		if s.Text == "italic" {
			sawItalic = s.Style.ItalicAttr() != 0
		}
		if s.Text == "bold" {
			sawBold = s.Style.IsBold()
		}
	}
	assert.True(t, sawItalic)
	assert.True(t, sawBold)
	assert.NotContains(t, joined(lines), "*", "markers are consumed")
}

func TestBulletList(t *testing.T) {
	lines := render(t, "- alpha\n- beta", 20)
	got := joined(lines)
	assert.Contains(t, got, "• alpha")
	assert.Contains(t, got, "• beta")
}

func TestOrderedListNumbering(t *testing.T) {
	lines := render(t, "1. one\n2. two\n3. three", 20)
	got := joined(lines)
	assert.Contains(t, got, "1. one")
	assert.Contains(t, got, "2. two")
	assert.Contains(t, got, "3. three")
}

func TestNestedListIndents(t *testing.T) {
	lines := render(t, "- outer\n  - inner", 20)
	got := joined(lines)
	assert.Contains(t, got, "• outer")
	assert.Contains(t, got, "  • inner")
}

func TestFencedCodeBlockKeepsLines(t *testing.T) {
	source := "```go\npackage main\n\nfunc main() {}\n```"
	lines := render(t, source, 40)
	got := joined(lines)
	assert.Contains(t, got, "package main")
	assert.Contains(t, got, "func main() {}")
	assert.NotContains(t, got, "```")
}

func TestBlockquotePrefixesEveryRow(t *testing.T) {
	lines := render(t, "> quoted words here", 40)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l.Text(), "│ "), "row %q", l.Text())
	}
	assert.Contains(t, joined(lines), "quoted words here")
}

func TestThematicBreakRendersRule(t *testing.T) {
	lines := render(t, "above\n\n---\n\nbelow", 12)
	got := joined(lines)
	assert.Contains(t, got, strings.Repeat("─", 12))
}

func TestLinkKeepsLabel(t *testing.T) {
	lines := render(t, "see [docs](https://example.com) now", 40)
	got := joined(lines)
	assert.Contains(t, got, "docs")
	assert.NotContains(t, got, "example.com", "destination is carried as a hyperlink, not text")
}
