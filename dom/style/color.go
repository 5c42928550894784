package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Color is a resolved CSS color. The zero value is an invalid color, which
// for border and outline colors stands for "use the value of `color`".
type Color struct {
	rgba  color.NRGBA
	valid bool
}

// Some colors used as initial values.
var (
	Black       = RGBA(0, 0, 0, 0xff)
	White       = RGBA(0xff, 0xff, 0xff, 0xff)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGBA creates a valid color from non-premultiplied components.
func RGBA(r, g, b, a uint8) Color {
	return Color{rgba: color.NRGBA{R: r, G: g, B: b, A: a}, valid: true}
}

// ParseColor converts a CSS color value (keyword, #hex, rgb(), hsl(), …)
// into a color. If quirks is set, hex colors without a leading '#' are
// accepted as well.
func ParseColor(s string, quirks bool) (Color, error) {
	s = strings.TrimSpace(s)
	if isBareHex(s) {
		if !quirks {
			return Color{}, fmt.Errorf("not a color: %q: hex color without '#'", s)
		}
		s = "#" + s
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("not a color: %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return RGBA(r, g, b, a), nil
}

func isBareHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, ch := range s {
		if !(ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F') {
			return false
		}
	}
	return true
}

// IsValid is false for the zero color.
func (c Color) IsValid() bool {
	return c.valid
}

// IsTransparent is true for colors with alpha 0.
func (c Color) IsTransparent() bool {
	return c.valid && c.rgba.A == 0
}

// NRGBA returns the color as a Go color value.
func (c Color) NRGBA() color.NRGBA {
	return c.rgba
}

// RGBA is part of interface color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.rgba.RGBA()
}

// Or returns c if it is valid, otherwise dflt.
func (c Color) Or(dflt Color) Color {
	if c.valid {
		return c
	}
	return dflt
}

func (c Color) String() string {
	if !c.valid {
		return "currentcolor"
	}
	if c.rgba.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.rgba.R, c.rgba.G, c.rgba.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.rgba.R, c.rgba.G, c.rgba.B, float64(c.rgba.A)/255)
}

var _ color.Color = Color{}
