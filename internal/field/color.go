package field

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrBadColor is returned by ParseHex for strings that are not hex colours.
var ErrBadColor = errors.New("field: bad hex color")

// Alpha converts an opacity in [0,1] to an 8-bit alpha, truncating.
// Out-of-range opacities are clamped.
func Alpha(opacity float64) uint8 {
	a := math.Floor(opacity * 255)
	if a < 0 || math.IsNaN(a) {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}

// FillStyle appends the alpha of opacity to a #rrggbb colour as two lowercase
// hex digits, e.g. FillStyle("#00ff88", 0.5) == "#00ff887f".
func FillStyle(hex string, opacity float64) string {
	return fmt.Sprintf("%s%02x", hex, Alpha(opacity))
}

// ParseHex parses #rgb, #rrggbb and #rrggbbaa colours. Colours without an
// alpha component are opaque.
func ParseHex(s string) (color.NRGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q missing '#'", ErrBadColor, s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q has %d digits", ErrBadColor, s, len(h))
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
