// Package text provides the basic styled-text renderable: a string with
// style spans, wrapped and justified by the console at render time.
package text

import (
	"sort"
	"strings"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

// Span styles a byte range of a Text's content.
type Span struct {
	Start int
	End   int
	Style style.Style
}

// Text is a renderable string. The base style applies to the whole
// content; spans layer on top of it, later spans over earlier ones.
// Texts are value-built: every method returns the receiver for chaining
// but mutates only the not-yet-rendered builder state.
type Text struct {
	content string
	style   style.Style
	spans   []Span
}

// New returns an unstyled text.
func New(content string) *Text {
	return &Text{content: content}
}

// Styled returns a text with a base style.
func Styled(content string, st style.Style) *Text {
	return &Text{content: content, style: st}
}

// Append adds content, styled with st layered over the base style.
func (t *Text) Append(content string, st style.Style) *Text {
	start := len(t.content)
	t.content += content
	if !st.IsEmpty() {
		t.spans = append(t.spans, Span{Start: start, End: len(t.content), Style: st})
	}
	return t
}

// AppendText concatenates another text, shifting its spans.
func (t *Text) AppendText(other *Text) *Text {
	offset := len(t.content)
	t.content += other.content
	if !other.style.IsEmpty() {
		t.spans = append(t.spans, Span{Start: offset, End: len(t.content), Style: other.style})
	}
	for _, sp := range other.spans {
		t.spans = append(t.spans, Span{Start: sp.Start + offset, End: sp.End + offset, Style: sp.Style})
	}
	return t
}

// Stylize layers st over the byte range [start, end) of the content.
func (t *Text) Stylize(start, end int, st style.Style) *Text {
	if start < 0 {
		start = 0
	}
	if end > len(t.content) {
		end = len(t.content)
	}
	if start >= end {
		return t
	}
	t.spans = append(t.spans, Span{Start: start, End: end, Style: st})
	return t
}

// Content returns the plain text.
func (t *Text) Content() string {
	return t.content
}

func (t *Text) String() string {
	return t.content
}

// GlintRender emits the content as styled segments with newline markers
// at line breaks.
func (t *Text) GlintRender(_ *console.Console, _ console.Options) ([]console.Item, error) {
	var segs []segment.Segment
	for _, piece := range t.pieces() {
		if piece.text == "\n" && piece.newline {
			segs = append(segs, segment.NewLine)
			continue
		}
		segs = append(segs, segment.Styled(piece.text, piece.style))
	}
	return []console.Item{console.Segments(segs...)}, nil
}

type piece struct {
	text    string
	style   style.Style
	newline bool
}

// pieces slices the content at span boundaries and newlines, resolving
// the effective style of every slice.
func (t *Text) pieces() []piece {
	if t.content == "" {
		return nil
	}

	cuts := map[int]struct{}{0: {}, len(t.content): {}}
	for _, sp := range t.spans {
		cuts[sp.Start] = struct{}{}
		cuts[sp.End] = struct{}{}
	}
	for i := 0; i < len(t.content); i++ {
		if t.content[i] == '\n' {
			cuts[i] = struct{}{}
			cuts[i+1] = struct{}{}
		}
	}

	offsets := make([]int, 0, len(cuts))
	for o := range cuts {
		offsets = append(offsets, o)
	}
	sort.Ints(offsets)

	var out []piece
	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		chunk := t.content[start:end]
		if chunk == "" {
			continue
		}
		if chunk == "\n" {
			out = append(out, piece{text: "\n", newline: true})
			continue
		}
		st := t.style
		for _, sp := range t.spans {
			if sp.Start <= start && end <= sp.End {
				st = st.Combine(sp.Style)
			}
		}
		out = append(out, piece{text: chunk, style: st})
	}
	return out
}

// Lines splits the text into one Text per line, preserving styles.
// Used by composites that lay lines out themselves.
func (t *Text) Lines() []*Text {
	var out []*Text
	current := New("")
	for _, p := range t.pieces() {
		if p.newline {
			out = append(out, current)
			current = New("")
			continue
		}
		current.Append(p.text, p.style)
	}
	if current.content != "" {
		out = append(out, current)
	}
	return out
}

// Join builds a text from parts separated by sep.
func Join(sep string, parts ...*Text) *Text {
	out := New("")
	for i, p := range parts {
		if i > 0 {
			out.Append(sep, style.New())
		}
		out.AppendText(p)
	}
	return out
}

// TrimTrailingNewline drops a single trailing newline from the content.
func (t *Text) TrimTrailingNewline() *Text {
	t.content = strings.TrimSuffix(t.content, "\n")
	for i, sp := range t.spans {
		if sp.End > len(t.content) {
			t.spans[i].End = len(t.content)
		}
	}
	return t
}
