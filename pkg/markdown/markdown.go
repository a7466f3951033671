// Package markdown renders CommonMark documents as terminal output. The
// goldmark AST is walked block by block; each block maps to an existing
// renderable (styled text, rules, highlighted code blocks) so layout,
// wrapping, and color degradation come from the render pipeline.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/rule"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
	"github.com/arthur-debert/glint/pkg/syntax"
	"github.com/arthur-debert/glint/pkg/text"
)

var (
	h1Style         = style.MustParse("bold magenta")
	h2Style         = style.MustParse("bold cyan")
	headingStyle    = style.MustParse("bold")
	codeSpanStyle   = style.MustParse("cyan")
	emphasisStyle   = style.MustParse("italic")
	strongStyle     = style.MustParse("bold")
	strikeStyle     = style.MustParse("strike")
	blockquoteStyle = style.MustParse("dim")
	bulletStyle     = style.MustParse("yellow")
)

// Document is a renderable markdown source.
type Document struct {
	source    []byte
	codeTheme string
}

// New parses nothing up front; the source is parsed at render time so a
// Document is cheap to construct.
func New(source string) *Document {
	return &Document{source: []byte(source), codeTheme: syntax.DefaultTheme}
}

// CodeTheme selects the chroma style for fenced code blocks.
func (d *Document) CodeTheme(name string) *Document {
	d.codeTheme = name
	return d
}

// GlintRender parses the source and emits one child item per block,
// with a blank line between blocks.
func (d *Document) GlintRender(c *console.Console, opts console.Options) ([]console.Item, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	root := md.Parser().Parse(gmtext.NewReader(d.source))

	var items []console.Item
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		blockItems, err := d.renderBlock(c, opts, node, 0)
		if err != nil {
			return nil, err
		}
		if len(blockItems) == 0 {
			continue
		}
		if len(items) > 0 {
			items = append(items, console.Segments(segment.NewLine))
		}
		items = append(items, blockItems...)
	}
	return items, nil
}

// renderBlock maps one block-level node to render items. depth tracks
// list nesting for indentation.
func (d *Document) renderBlock(c *console.Console, opts console.Options, node ast.Node, depth int) ([]console.Item, error) {
	switch n := node.(type) {
	case *ast.Heading:
		return d.renderHeading(n), nil
	case *ast.Paragraph, *ast.TextBlock:
		t := d.inlineText(node, style.New())
		return []console.Item{console.Child(t, nil), console.Segments(segment.NewLine)}, nil
	case *ast.FencedCodeBlock:
		lang := string(n.Language(d.source))
		return d.renderCode(d.blockText(n), lang), nil
	case *ast.CodeBlock:
		return d.renderCode(d.blockText(n), ""), nil
	case *ast.ThematicBreak:
		return []console.Item{console.Child(rule.New(), nil)}, nil
	case *ast.List:
		return d.renderList(c, opts, n, depth)
	case *ast.Blockquote:
		return d.renderBlockquote(c, opts, n)
	default:
		// Unknown blocks degrade to their flattened inline text.
		t := d.inlineText(node, style.New())
		if t.Content() == "" {
			return nil, nil
		}
		return []console.Item{console.Child(t, nil), console.Segments(segment.NewLine)}, nil
	}
}

func (d *Document) renderHeading(n *ast.Heading) []console.Item {
	st := headingStyle
	switch n.Level {
	case 1:
		st = h1Style
	case 2:
		st = h2Style
	}
	title := d.inlineText(n, st)
	if n.Level == 1 {
		// Top-level headings render as a titled rule spanning the width.
		return []console.Item{console.Child(rule.New().Title(title.Content()).Style(st), nil)}
	}
	return []console.Item{console.Child(title, nil), console.Segments(segment.NewLine)}
}

func (d *Document) renderCode(source, lang string) []console.Item {
	code := syntax.New(strings.TrimSuffix(source, "\n"), lang).Theme(d.codeTheme)
	return []console.Item{console.Child(code, nil)}
}

// renderList emits one line per item with a bullet or ordinal marker,
// recursing into nested lists with deeper indentation.
func (d *Document) renderList(c *console.Console, opts console.Options, list *ast.List, depth int) ([]console.Item, error) {
	var items []console.Item
	indent := strings.Repeat("  ", depth)
	ordinal := list.Start
	if ordinal == 0 {
		ordinal = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", ordinal)
			ordinal++
		}

		first := true
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if nested, ok := child.(*ast.List); ok {
				nestedItems, err := d.renderList(c, opts, nested, depth+1)
				if err != nil {
					return nil, err
				}
				items = append(items, nestedItems...)
				continue
			}
			prefix := indent + strings.Repeat(" ", len(marker))
			if first {
				items = append(items,
					console.Segments(segment.New(indent), segment.Styled(marker, bulletStyle)),
				)
				first = false
			} else {
				items = append(items, console.Segments(segment.New(prefix)))
			}
			t := d.inlineText(child, style.New())
			items = append(items, console.Child(t, nil), console.Segments(segment.NewLine))
		}
	}
	return items, nil
}

// renderBlockquote pre-renders the quoted content two cells narrower
// and prefixes every row with a dim quote bar.
func (d *Document) renderBlockquote(c *console.Console, opts console.Options, quote *ast.Blockquote) ([]console.Item, error) {
	innerWidth := opts.MaxWidth - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerOpts := opts.WithWidth(innerWidth).WithStyle(blockquoteStyle)

	var items []console.Item
	for node := quote.FirstChild(); node != nil; node = node.NextSibling() {
		blockItems, err := d.renderBlock(c, innerOpts, node, 0)
		if err != nil {
			return nil, err
		}
		lines, err := c.RenderLines(itemList(blockItems), innerOpts)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			segs := []segment.Segment{segment.Styled("│ ", blockquoteStyle)}
			segs = append(segs, line.Segments...)
			segs = append(segs, segment.NewLine)
			items = append(items, console.Segments(segs...))
		}
	}
	return items, nil
}

// itemList adapts a pre-built item slice to the Renderable interface.
type itemList []console.Item

func (l itemList) GlintRender(_ *console.Console, _ console.Options) ([]console.Item, error) {
	return l, nil
}

// inlineText flattens a node's inline children into styled text. base
// is layered under every inline style.
func (d *Document) inlineText(node ast.Node, base style.Style) *text.Text {
	out := text.New("")
	d.appendInlines(out, node, base)
	return out
}

func (d *Document) appendInlines(out *text.Text, node ast.Node, st style.Style) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			out.Append(string(n.Segment.Value(d.source)), st)
			if n.SoftLineBreak() {
				out.Append(" ", st)
			}
			if n.HardLineBreak() {
				out.Append("\n", st)
			}
		case *ast.String:
			out.Append(string(n.Value), st)
		case *ast.CodeSpan:
			d.appendInlines(out, n, st.Combine(codeSpanStyle))
		case *ast.Emphasis:
			es := emphasisStyle
			if n.Level >= 2 {
				es = strongStyle
			}
			d.appendInlines(out, n, st.Combine(es))
		case *ast.Link:
			d.appendInlines(out, n, st.Combine(style.New().Underline(true).Link(string(n.Destination))))
		case *ast.AutoLink:
			url := string(n.URL(d.source))
			out.Append(url, st.Combine(style.New().Underline(true).Link(url)))
		case *ast.Image:
			d.appendInlines(out, n, st.Combine(emphasisStyle))
		case *extast.Strikethrough:
			d.appendInlines(out, n, st.Combine(strikeStyle))
		default:
			d.appendInlines(out, child, st)
		}
	}
}

// blockText joins a block node's raw source lines.
func (d *Document) blockText(node ast.Node) string {
	var b bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(d.source))
	}
	return b.String()
}
