// Package style implements immutable terminal styles with override-based
// composition and capability-aware ANSI encoding.
//
// A Style is a value: once created it never changes. Combining a base with
// an overlay produces a third style in which every field the overlay sets
// wins and every field it leaves unset is inherited. The zero Style is the
// identity element of Combine.
package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// Attr is a tri-state boolean attribute: unset, on, or off. The
// distinction matters for composition: an unset overlay attribute
// inherits from the base, an explicit off clears it.
type Attr uint8

const (
	AttrUnset Attr = iota
	AttrOn
	AttrOff
)

// Style is an immutable color/attribute value. The zero value is the
// identity style: no colors, no attributes, no link.
type Style struct {
	fg   Color
	bg   Color
	link string
	meta string

	bold      Attr
	dim       Attr
	italic    Attr
	underline Attr
	blink     Attr
	reverse   Attr
	conceal   Attr
	strike    Attr
}

// New returns the identity style.
func New() Style {
	return Style{}
}

// IsEmpty reports whether s is the identity style.
func (s Style) IsEmpty() bool {
	return s == Style{}
}

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c Color) Style { s.fg = c; return s }

// Background returns a copy of s with the background color set.
func (s Style) Background(c Color) Style { s.bg = c; return s }

// Link returns a copy of s with a hyperlink target.
func (s Style) Link(url string) Style { s.link = url; return s }

// Meta returns a copy of s carrying a semantic tag. Meta never affects
// encoding; it exists for callers that post-process segments.
func (s Style) Meta(tag string) Style { s.meta = tag; return s }

func (s Style) Bold(on bool) Style      { s.bold = attr(on); return s }
func (s Style) Dim(on bool) Style       { s.dim = attr(on); return s }
func (s Style) Italic(on bool) Style    { s.italic = attr(on); return s }
func (s Style) Underline(on bool) Style { s.underline = attr(on); return s }
func (s Style) Blink(on bool) Style     { s.blink = attr(on); return s }
func (s Style) Reverse(on bool) Style   { s.reverse = attr(on); return s }
func (s Style) Conceal(on bool) Style   { s.conceal = attr(on); return s }
func (s Style) Strike(on bool) Style    { s.strike = attr(on); return s }

func attr(on bool) Attr {
	if on {
		return AttrOn
	}
	return AttrOff
}

// GetForeground returns the foreground color.
func (s Style) GetForeground() Color { return s.fg }

// GetBackground returns the background color.
func (s Style) GetBackground() Color { return s.bg }

// GetLink returns the hyperlink target, if any.
func (s Style) GetLink() string { return s.link }

// GetMeta returns the semantic tag, if any.
func (s Style) GetMeta() string { return s.meta }

// IsBold reports whether the bold attribute is explicitly on.
func (s Style) IsBold() bool { return s.bold == AttrOn }

// BoldAttr returns the raw tri-state bold attribute.
func (s Style) BoldAttr() Attr { return s.bold }

// ItalicAttr returns the raw tri-state italic attribute.
func (s Style) ItalicAttr() Attr { return s.italic }

// Combine layers overlay on top of s. Every field set in overlay
// overrides s; unset overlay fields are inherited. An explicit off
// attribute in the overlay clears one set in the base.
func (s Style) Combine(overlay Style) Style {
	out := s
	if overlay.fg.IsSet() {
		out.fg = overlay.fg
	}
	if overlay.bg.IsSet() {
		out.bg = overlay.bg
	}
	if overlay.link != "" {
		out.link = overlay.link
	}
	if overlay.meta != "" {
		out.meta = overlay.meta
	}
	out.bold = combineAttr(s.bold, overlay.bold)
	out.dim = combineAttr(s.dim, overlay.dim)
	out.italic = combineAttr(s.italic, overlay.italic)
	out.underline = combineAttr(s.underline, overlay.underline)
	out.blink = combineAttr(s.blink, overlay.blink)
	out.reverse = combineAttr(s.reverse, overlay.reverse)
	out.conceal = combineAttr(s.conceal, overlay.conceal)
	out.strike = combineAttr(s.strike, overlay.strike)
	return out
}

func combineAttr(base, overlay Attr) Attr {
	if overlay == AttrUnset {
		return base
	}
	return overlay
}

// sgrCodes maps each attribute to its SGR parameter.
var sgrCodes = []struct {
	get  func(Style) Attr
	code string
}{
	{func(s Style) Attr { return s.bold }, "1"},
	{func(s Style) Attr { return s.dim }, "2"},
	{func(s Style) Attr { return s.italic }, "3"},
	{func(s Style) Attr { return s.underline }, "4"},
	{func(s Style) Attr { return s.blink }, "5"},
	{func(s Style) Attr { return s.reverse }, "7"},
	{func(s Style) Attr { return s.conceal }, "8"},
	{func(s Style) Attr { return s.strike }, "9"},
}

// Sequence returns the SGR parameter list ("1;31" etc.) encoding s at the
// given color profile. Colors the profile cannot carry are downgraded by
// nearest match; at Ascii all color parameters are dropped. Off and unset
// attributes contribute nothing: encoding always starts from a reset
// terminal state.
func (s Style) Sequence(profile termenv.Profile) string {
	var params []string
	for _, c := range sgrCodes {
		if c.get(s) == AttrOn {
			params = append(params, c.code)
		}
	}
	if profile != termenv.Ascii {
		if fg := s.fg.terminal(profile); fg != (termenv.NoColor{}) {
			params = append(params, fg.Sequence(false))
		}
		if bg := s.bg.terminal(profile); bg != (termenv.NoColor{}) {
			params = append(params, bg.Sequence(true))
		}
	}
	return strings.Join(params, ";")
}

const (
	csi      = "\x1b["
	osc      = "\x1b]"
	st       = "\x1b\\"
	sgrReset = "\x1b[0m"
)

// Apply wraps text in the escape sequences encoding s at the given
// profile, including an OSC 8 hyperlink when one is set. Identity styles
// return the text unchanged.
func (s Style) Apply(profile termenv.Profile, text string) string {
	params := s.Sequence(profile)
	out := text
	if params != "" {
		out = csi + params + "m" + out + sgrReset
	}
	if s.link != "" && profile != termenv.Ascii {
		out = osc + "8;;" + s.link + st + out + osc + "8;;" + st
	}
	return out
}

// String renders s in the style mini-language, round-trippable through
// Parse for styles built from it.
func (s Style) String() string {
	if s.IsEmpty() {
		return "none"
	}
	var parts []string
	for i, c := range sgrCodes {
		name := attrNames[i]
		switch c.get(s) {
		case AttrOn:
			parts = append(parts, name)
		case AttrOff:
			parts = append(parts, "not "+name)
		}
	}
	if s.fg.IsSet() {
		parts = append(parts, s.fg.String())
	}
	if s.bg.IsSet() {
		parts = append(parts, "on", s.bg.String())
	}
	if s.link != "" {
		parts = append(parts, "link:"+s.link)
	}
	if s.meta != "" {
		parts = append(parts, "meta:"+s.meta)
	}
	return strings.Join(parts, " ")
}
