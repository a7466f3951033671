package style

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/glint/pkg/errors"
)

// Decode parses an SGR parameter list as produced by Sequence back into a
// Style. It accepts either the bare parameter list ("1;38;2;255;0;0") or a
// full CSI sequence ("\x1b[1;38;2;255;0;0m"). Decoding is defined for the
// eight attributes plus 16-color, 256-color, and true-color parameters;
// hyperlinks and meta tags are not representable in SGR and do not round
// trip.
func Decode(seq string) (Style, error) {
	seq = strings.TrimPrefix(seq, csi)
	seq = strings.TrimSuffix(seq, "m")
	s := New()
	if seq == "" {
		return s, nil
	}

	params := strings.Split(seq, ";")
	for i := 0; i < len(params); i++ {
		n, err := strconv.Atoi(params[i])
		if err != nil {
			return Style{}, errors.Wrapf(err, errors.ErrStyleSyntax,
				"invalid SGR parameter %q", params[i])
		}
		switch {
		case n == 0:
			s = New()
		case n >= 1 && n <= 9 && n != 6:
			s = setAttr(s, sgrAttrIndex(n), true)
		case n >= 30 && n <= 37:
			s = s.Foreground(ANSI(n - 30))
		case n >= 40 && n <= 47:
			s = s.Background(ANSI(n - 40))
		case n >= 90 && n <= 97:
			s = s.Foreground(ANSI(n - 90 + 8))
		case n >= 100 && n <= 107:
			s = s.Background(ANSI(n - 100 + 8))
		case n == 38 || n == 48:
			color, consumed, err := decodeExtendedColor(params[i+1:])
			if err != nil {
				return Style{}, err
			}
			if n == 38 {
				s = s.Foreground(color)
			} else {
				s = s.Background(color)
			}
			i += consumed
		default:
			return Style{}, errors.Newf(errors.ErrStyleSyntax,
				"unsupported SGR parameter %d", n)
		}
	}
	return s, nil
}

// sgrAttrIndex maps SGR codes 1-9 (excluding 6) onto attrNames indexes.
func sgrAttrIndex(code int) int {
	if code <= 5 {
		return code - 1
	}
	return code - 2
}

func decodeExtendedColor(params []string) (Color, int, error) {
	if len(params) == 0 {
		return Color{}, 0, errors.New(errors.ErrStyleSyntax, "truncated extended color")
	}
	switch params[0] {
	case "5":
		if len(params) < 2 {
			return Color{}, 0, errors.New(errors.ErrStyleSyntax, "truncated 256-color parameter")
		}
		n, err := strconv.Atoi(params[1])
		if err != nil || n < 0 || n > 255 {
			return Color{}, 0, errors.Newf(errors.ErrStyleSyntax, "invalid 256-color index %q", params[1])
		}
		return Indexed(n), 2, nil
	case "2":
		if len(params) < 4 {
			return Color{}, 0, errors.New(errors.ErrStyleSyntax, "truncated true-color parameter")
		}
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(params[1+i])
			if err != nil || n < 0 || n > 255 {
				return Color{}, 0, errors.Newf(errors.ErrStyleSyntax, "invalid color component %q", params[1+i])
			}
			rgb[i] = uint8(n)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), 4, nil
	}
	return Color{}, 0, errors.Newf(errors.ErrStyleSyntax, "unsupported extended color mode %q", params[0])
}
