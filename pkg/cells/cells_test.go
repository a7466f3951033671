package cells_test

import (
	"testing"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"space", " ", 1},
		{"cjk wide", "日本", 4},
		{"mixed", "a日b", 4},
		{"combining mark counts once", "é", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cells.Width(tt.input))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		at    int
		left  string
		right string
	}{
		{"middle", "hello", 2, "he", "llo"},
		{"at zero", "hello", 0, "", "hello"},
		{"past end", "hi", 10, "hi", ""},
		{"wide char straddles boundary", "a日b", 2, "a", "日b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := cells.Split(tt.input, tt.at)
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.right, right)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", cells.Truncate("hello", 5, "…"))
	assert.Equal(t, "hell…", cells.Truncate("hello world", 5, "…"))
	assert.Equal(t, "hello", cells.Truncate("hello world", 5, ""))
	assert.Equal(t, "日…", cells.Truncate("日本語", 3, "…"))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "hi   ", cells.Fit("hi", 5))
	assert.Equal(t, "hello", cells.Fit("hello world", 5))
	assert.Equal(t, "hello", cells.Fit("hello", 5))
}
