// Package cells measures strings in terminal cells.
//
// Widths are computed per grapheme cluster so that combining marks and
// ZWJ emoji sequences count as a single unit, with east-asian wide
// characters counting as two cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += clusterWidth(g.Str())
	}
	return width
}

// clusterWidth returns the cell width of a single grapheme cluster.
// A cluster never occupies more than two cells.
func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w > 2 {
		w = 2
	}
	return w
}

// Split divides s at the given cell position. A double-width character
// straddling the boundary goes to the right half.
func Split(s string, at int) (left, right string) {
	if at <= 0 {
		return "", s
	}
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := clusterWidth(g.Str())
		if width+w > at {
			start, _ := g.Positions()
			return s[:start], s[start:]
		}
		width += w
	}
	return s, ""
}

// Truncate cuts s so that it fits within width cells, appending tail
// (which counts against the width) when a cut was necessary.
func Truncate(s string, width int, tail string) string {
	if Width(s) <= width {
		return s
	}
	tailWidth := Width(tail)
	if tailWidth >= width {
		head, _ := Split(tail, width)
		return head
	}
	head, _ := Split(s, width-tailWidth)
	return head + tail
}

// Fit pads or truncates s to exactly width cells.
func Fit(s string, width int) string {
	w := Width(s)
	switch {
	case w < width:
		return s + strings.Repeat(" ", width-w)
	case w > width:
		return Truncate(s, width, "")
	}
	return s
}
