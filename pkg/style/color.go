package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/glint/pkg/errors"
)

type colorKind uint8

const (
	colorNone colorKind = iota
	colorANSI
	colorIndexed
	colorRGB
)

// Color is a tri-state terminal color: unset, named/indexed, or 24-bit.
// The zero value is the unset color.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// Names of the 16 base ANSI colors, in palette order.
var ansiColorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

var colorAliases = map[string]string{
	"grey": "bright_black",
	"gray": "bright_black",
}

// ANSI returns one of the 16 base palette colors.
func ANSI(n int) Color {
	return Color{kind: colorANSI, index: uint8(n & 0x0f)}
}

// Indexed returns an 8-bit palette color (0-255).
func Indexed(n int) Color {
	if n < 16 {
		return ANSI(n)
	}
	return Color{kind: colorIndexed, index: uint8(n)}
}

// RGB returns a 24-bit color from components.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// Hex parses a "#rrggbb" triplet into a 24-bit color.
func Hex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(err, errors.ErrStyleSyntax, "invalid hex color %q", hex)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Named looks up one of the 16 ANSI color names (plus grey/gray aliases).
func Named(name string) (Color, bool) {
	name = strings.ToLower(name)
	if alias, ok := colorAliases[name]; ok {
		name = alias
	}
	for i, n := range ansiColorNames {
		if n == name {
			return ANSI(i), true
		}
	}
	return Color{}, false
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return c.kind != colorNone
}

// RGBA returns the 24-bit components. ok is false unless the color is
// a true-color value.
func (c Color) RGBA() (r, g, b uint8, ok bool) {
	if c.kind != colorRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// Index returns the palette index for named/indexed colors. ok is false
// for unset and true-color values.
func (c Color) Index() (int, bool) {
	switch c.kind {
	case colorANSI, colorIndexed:
		return int(c.index), true
	}
	return 0, false
}

func (c Color) String() string {
	switch c.kind {
	case colorANSI:
		return ansiColorNames[c.index]
	case colorIndexed:
		return fmt.Sprintf("color(%d)", c.index)
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "default"
}

// terminal converts the color to a termenv color at the given profile,
// downgrading by nearest palette match when the profile cannot carry it.
// Colors are never upgraded.
func (c Color) terminal(profile termenv.Profile) termenv.Color {
	if c.kind == colorNone || profile == termenv.Ascii {
		return termenv.NoColor{}
	}
	var tc termenv.Color
	switch c.kind {
	case colorANSI:
		tc = termenv.ANSIColor(c.index)
	case colorIndexed:
		tc = termenv.ANSI256Color(c.index)
	case colorRGB:
		tc = termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
	}
	return profile.Convert(tc)
}
