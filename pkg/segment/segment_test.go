package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

func TestSegmentWidth(t *testing.T) {
	assert.Equal(t, 5, segment.New("hello").Width())
	assert.Equal(t, 0, segment.Control("\x1b[2K").Width(), "control segments bypass width accounting")
	assert.Equal(t, 4, segment.New("日本").Width())
}

func TestSplitAtKeepsStyle(t *testing.T) {
	bold := style.MustParse("bold")
	left, right := segment.Styled("hello", bold).SplitAt(2)
	assert.Equal(t, "he", left.Text)
	assert.Equal(t, "llo", right.Text)
	require.NotNil(t, left.Style)
	require.NotNil(t, right.Style)
	assert.Equal(t, bold, *left.Style)
	assert.Equal(t, bold, *right.Style)
}

func TestSplitAtWidth(t *testing.T) {
	bold := style.MustParse("bold")
	segs := []segment.Segment{
		segment.New("ab"),
		segment.Styled("cdef", bold),
	}

	fit, rest := segment.SplitAtWidth(segs, 4)
	assert.Equal(t, "abcd", segment.Line{Segments: fit}.Text())
	assert.Equal(t, "ef", segment.Line{Segments: rest}.Text())
	require.Len(t, fit, 2)
	assert.Equal(t, bold, *fit[1].Style, "style stays attached to the split substring")
}

func TestSplitAtWidthEverythingFits(t *testing.T) {
	fit, rest := segment.SplitAtWidth([]segment.Segment{segment.New("hi")}, 10)
	assert.Equal(t, "hi", segment.Line{Segments: fit}.Text())
	assert.Nil(t, rest)
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		overflow segment.Overflow
		want     []string
	}{
		{"hello world folds at 5", "hello world", 5, segment.OverflowFold, []string{"hello", "world"}},
		{"fits on one line", "hi there", 10, segment.OverflowFold, []string{"hi there"}},
		{"long word folds", "abcdefgh", 3, segment.OverflowFold, []string{"abc", "def", "gh"}},
		{"long word crops", "abcdefgh", 3, segment.OverflowCrop, []string{"abc"}},
		{"long word ellipsis", "abcdefgh", 3, segment.OverflowEllipsis, []string{"ab…"}},
		{"greedy fill", "aa bb cc dd", 5, segment.OverflowFold, []string{"aa bb", "cc dd"}},
		{"empty input yields zero lines", "", 5, segment.OverflowFold, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input []segment.Segment
			if tt.input != "" {
				input = []segment.Segment{segment.New(tt.input)}
			}
			lines := segment.WordWrap(input, tt.width, tt.overflow)
			var got []string
			for _, l := range lines {
				got = append(got, l.Text())
				assert.LessOrEqual(t, l.Width(), tt.width, "line %q exceeds width", l.Text())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordWrapStyleSurvivesBreak(t *testing.T) {
	red := style.MustParse("red")
	lines := segment.WordWrap([]segment.Segment{
		segment.New("hello "),
		segment.Styled("world", red),
	}, 5, segment.OverflowFold)

	require.Len(t, lines, 2)
	require.Len(t, lines[1].Segments, 1)
	assert.Equal(t, red, *lines[1].Segments[0].Style)
}

func TestPadOrCrop(t *testing.T) {
	line := func(s string) segment.Line {
		return segment.Line{Segments: []segment.Segment{segment.New(s)}}
	}

	tests := []struct {
		name    string
		line    segment.Line
		width   int
		justify segment.Justify
		want    string
	}{
		{"left pads right side", line("hi"), 6, segment.JustifyLeft, "hi    "},
		{"right pads left side", line("hi"), 6, segment.JustifyRight, "    hi"},
		{"center even split", line("hi"), 6, segment.JustifyCenter, "  hi  "},
		{"center extra cell goes right", line("hi"), 7, segment.JustifyCenter, "  hi   "},
		{"exact width untouched", line("abcdef"), 6, segment.JustifyLeft, "abcdef"},
		{"crop removes from the end", line("abcdefgh"), 6, segment.JustifyLeft, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.PadOrCrop(tt.line, tt.width, tt.justify)
			assert.Equal(t, tt.want, got.Text())
			assert.Equal(t, tt.width, got.Width())
		})
	}
}

func TestPadOrCropFullJustify(t *testing.T) {
	line := segment.Line{Segments: []segment.Segment{
		segment.New("aa"), segment.New(" "), segment.New("bb"), segment.New(" "), segment.New("cc"),
	}}

	got := segment.PadOrCrop(line, 11, segment.JustifyFull)
	assert.Equal(t, "aa   bb  cc", got.Text(), "leftmost gap takes the odd cell")
	assert.Equal(t, 11, got.Width())
}

func TestApply(t *testing.T) {
	base := style.MustParse("red")
	bold := style.MustParse("bold")

	segs := segment.Apply([]segment.Segment{
		segment.New("plain"),
		segment.Styled("styled", bold),
		segment.Control("\x1b[1A"),
	}, base)

	require.Len(t, segs, 3)
	assert.Equal(t, base, *segs[0].Style)
	assert.Equal(t, base.Combine(bold), *segs[1].Style)
	assert.Nil(t, segs[2].Style, "control segments take no style")
}
