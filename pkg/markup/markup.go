// Package markup parses XML-like style tags into styled text. Tag names
// resolve to styles through a Resolver, so the same markup renders under
// different themes; nested tags layer their styles.
//
//	warm, err := markup.Parse("<bold>hi</bold> <red>there</red>", markup.StyleResolver)
package markup

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/arthur-debert/glint/pkg/style"
	"github.com/arthur-debert/glint/pkg/text"
)

const rootTag = "glint-markup"

// Resolver maps a tag name to a style.
type Resolver func(tag string) (style.Style, error)

// StyleResolver resolves tags as style specifications, with dashes
// standing in for spaces: <bold-red> means the "bold red" style.
func StyleResolver(tag string) (style.Style, error) {
	st, err := style.Parse(strings.ReplaceAll(tag, "-", " "))
	if err != nil {
		return style.Style{}, errors.Wrapf(err, errors.ErrMarkupParse, "unknown tag %q", tag)
	}
	return st, nil
}

// Parse expands the tags in input into a styled text. Malformed markup
// and unresolvable tags are MARKUP_PARSE errors.
func Parse(input string, resolve Resolver) (*text.Text, error) {
	if resolve == nil {
		resolve = StyleResolver
	}
	root, err := parseFragment(input)
	if err != nil {
		return nil, err
	}
	out := text.New("")
	if err := walk(root, style.New(), resolve, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Strip removes all tags, returning the plain text content.
func Strip(input string) (string, error) {
	root, err := parseFragment(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	collectText(root, &b)
	return b.String(), nil
}

// parseFragment wraps input in a synthetic root so tag soup without a
// single top-level element still parses.
func parseFragment(input string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, errors.Wrap(err, errors.ErrMarkupParse, "malformed markup")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrMarkupParse, "malformed markup")
	}
	return root, nil
}

func walk(el *etree.Element, base style.Style, resolve Resolver, out *text.Text) error {
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			out.Append(node.Data, base)
		case *etree.Element:
			st, err := resolve(node.Tag)
			if err != nil {
				return err
			}
			if err := walk(node, base.Combine(st), resolve, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			b.WriteString(node.Data)
		case *etree.Element:
			collectText(node, b)
		}
	}
}
