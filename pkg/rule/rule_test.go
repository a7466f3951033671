package rule_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/rule"
)

func newConsole(width int) *console.Console {
	var buf bytes.Buffer
	return console.New(&buf, console.WithWidth(width), console.WithProfile(termenv.Ascii))
}

func TestPlainRule(t *testing.T) {
	c := newConsole(8)
	lines, err := c.Render(rule.New(), 8)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "────────", lines[0].Text())
	assert.Equal(t, 8, lines[0].Width())
}

func TestTitledRule(t *testing.T) {
	c := newConsole(12)
	lines, err := c.Render(rule.New().Title("hi"), 12)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "──── hi ────", lines[0].Text())
}

func TestTitleTooWideGetsCropped(t *testing.T) {
	c := newConsole(10)
	lines, err := c.Render(rule.New().Title("much too long title"), 10)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].Width())
}

func TestRuleMeasure(t *testing.T) {
	c := newConsole(40)
	m, err := c.Measure(rule.New().Title("hi"), c.Options())
	require.NoError(t, err)
	assert.Equal(t, 6, m.Minimum)
	assert.Equal(t, 40, m.Maximum)
}
