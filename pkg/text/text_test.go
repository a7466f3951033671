package text_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
	"github.com/arthur-debert/glint/pkg/text"
)

func newConsole(width int) *console.Console {
	var buf bytes.Buffer
	return console.New(&buf, console.WithWidth(width), console.WithProfile(termenv.Ascii))
}

func lineTexts(lines []segment.Line) []string {
	var out []string
	for _, l := range lines {
		out = append(out, l.Text())
	}
	return out
}

func TestPlainTextWraps(t *testing.T) {
	c := newConsole(5)
	lines, err := c.Render(text.New("hello world"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lineTexts(lines))
}

func TestStyledBaseAppliesToAllSegments(t *testing.T) {
	c := newConsole(20)
	bold := style.MustParse("bold")
	lines, err := c.Render(text.Styled("hi there", bold), 20)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	for _, s := range lines[0].Segments {
		if s.Text == "hi there" {
			require.NotNil(t, s.Style)
			assert.Equal(t, bold, *s.Style)
		}
	}
}

func TestStylizeSpanWins(t *testing.T) {
	red := style.MustParse("red")
	notBold := style.MustParse("not bold")
	bold := style.MustParse("bold")

	txt := text.Styled("abcdef", bold.Combine(red)).Stylize(2, 4, notBold)

	c := newConsole(10)
	lines, err := c.Render(txt, 10)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	var sawOverride bool
	for _, s := range lines[0].Segments {
		if s.Text == "cd" {
			require.NotNil(t, s.Style)
			assert.False(t, s.Style.IsBold())
			sawOverride = true
		}
	}
	assert.True(t, sawOverride, "expected a segment for the stylized range")
}

func TestMultilineContent(t *testing.T) {
	c := newConsole(6)
	lines, err := c.Render(text.New("ab\ncdef"), 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab    ", "cdef  "}, lineTexts(lines))
}

func TestAppendAndJoin(t *testing.T) {
	bold := style.MustParse("bold")
	txt := text.New("a").Append("b", bold)
	assert.Equal(t, "ab", txt.Content())

	joined := text.Join(" ", text.New("x"), text.New("y"))
	assert.Equal(t, "x y", joined.Content())
}

func TestLinesSplitsPreservingStyle(t *testing.T) {
	bold := style.MustParse("bold")
	txt := text.New("one\n").AppendText(text.Styled("two", bold))

	lines := txt.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "one", lines[0].Content())
	assert.Equal(t, "two", lines[1].Content())
}

func TestTrimTrailingNewline(t *testing.T) {
	txt := text.New("abc\n").TrimTrailingNewline()
	assert.Equal(t, "abc", txt.Content())
}
