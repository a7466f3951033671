package style

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/glint/pkg/errors"
)

// attrNames index-matches sgrCodes.
var attrNames = []string{
	"bold", "dim", "italic", "underline", "blink", "reverse", "conceal", "strike",
}

// Parse builds a Style from a space-separated specification, e.g.
//
//	"bold red on blue"
//	"not dim underline #ff8700"
//	"italic color(240) link:https://example.com"
//
// Tokens are attribute names (optionally negated with a preceding "not"),
// color names, color(N) palette indexes, #rrggbb triplets, "on" followed
// by a background color, link:URL, meta:TAG, or the word "none" for the
// identity style. Any unrecognized token is a STYLE_SYNTAX error.
func Parse(spec string) (Style, error) {
	s := New()
	tokens := strings.Fields(spec)

	negate := false
	background := false
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case lower == "none":
			if negate || background {
				return Style{}, errors.Newf(errors.ErrStyleSyntax,
					"unexpected %q in style %q", tok, spec)
			}
			s = New()
			continue
		case lower == "not":
			if negate {
				return Style{}, errors.Newf(errors.ErrStyleSyntax,
					"duplicate \"not\" in style %q", spec)
			}
			negate = true
			continue
		case lower == "on":
			if background {
				return Style{}, errors.Newf(errors.ErrStyleSyntax,
					"duplicate \"on\" in style %q", spec)
			}
			background = true
			continue
		case strings.HasPrefix(lower, "link:"):
			s = s.Link(tok[len("link:"):])
			continue
		case strings.HasPrefix(lower, "meta:"):
			s = s.Meta(tok[len("meta:"):])
			continue
		}

		if idx := attrIndex(lower); idx >= 0 {
			if background {
				return Style{}, errors.Newf(errors.ErrStyleSyntax,
					"expected color after \"on\", got %q in style %q", tok, spec)
			}
			s = setAttr(s, idx, !negate)
			negate = false
			continue
		}

		if negate {
			return Style{}, errors.Newf(errors.ErrStyleSyntax,
				"expected attribute after \"not\", got %q in style %q", tok, spec)
		}

		color, err := parseColor(lower)
		if err != nil {
			return Style{}, err
		}
		if background {
			s = s.Background(color)
			background = false
		} else {
			s = s.Foreground(color)
		}
	}

	if negate {
		return Style{}, errors.Newf(errors.ErrStyleSyntax,
			"dangling \"not\" in style %q", spec)
	}
	if background {
		return Style{}, errors.Newf(errors.ErrStyleSyntax,
			"dangling \"on\" in style %q", spec)
	}
	return s, nil
}

// MustParse is Parse for statically known specifications; it panics on
// syntax errors.
func MustParse(spec string) Style {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func attrIndex(name string) int {
	for i, n := range attrNames {
		if n == name {
			return i
		}
	}
	return -1
}

func setAttr(s Style, idx int, on bool) Style {
	switch idx {
	case 0:
		return s.Bold(on)
	case 1:
		return s.Dim(on)
	case 2:
		return s.Italic(on)
	case 3:
		return s.Underline(on)
	case 4:
		return s.Blink(on)
	case 5:
		return s.Reverse(on)
	case 6:
		return s.Conceal(on)
	default:
		return s.Strike(on)
	}
}

func parseColor(tok string) (Color, error) {
	if strings.HasPrefix(tok, "#") {
		return Hex(tok)
	}
	if strings.HasPrefix(tok, "color(") && strings.HasSuffix(tok, ")") {
		raw := tok[len("color(") : len(tok)-1]
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 255 {
			return Color{}, errors.Newf(errors.ErrStyleSyntax,
				"invalid color index %q", tok)
		}
		return Indexed(n), nil
	}
	if c, ok := Named(tok); ok {
		return c, nil
	}
	return Color{}, errors.Newf(errors.ErrStyleSyntax, "unrecognized color %q", tok)
}
