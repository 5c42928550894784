package css

import (
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// UnitResolver converts CSS lengths to CSS pixels, honouring the logical
// resolution of the output device and a zoom factor.
type UnitResolver struct {
	DPI  float64 // logical dots per inch of the device
	Zoom int     // zoom factor in percent; 0 is treated as 100
}

// ToPix returns the number of pixels per point. The factor is never
// smaller than 96/72.
func (u UnitResolver) ToPix() float64 {
	f := u.DPI / 72
	if f < 96.0/72.0 {
		f = 96.0 / 72.0
	}
	return f
}

func (u UnitResolver) zoom() float64 {
	if u.Zoom <= 0 {
		return 1
	}
	return float64(u.Zoom) / 100
}

// points per unit, relative to the big point of 1/72 in
var pointsPer = map[string]float64{
	"pt": 1,
	"pc": 12,
	"in": float64(dimen.IN) / float64(dimen.BP),
	"cm": float64(dimen.CM) / float64(dimen.BP),
	"mm": float64(dimen.MM) / float64(dimen.BP),
}

// Length converts value in unit to CSS pixels. fontSize and xHeight are
// the metrics of the current font, used for `em` and `ex`.
// Unknown units yield ok = false. A unit-less 0 is accepted; other
// unit-less numbers are accepted only if quirks is set (and treated as px).
func (u UnitResolver) Length(value float64, unit string, fontSize, xHeight float64, quirks bool) (px float64, ok bool) {
	unit = strings.ToLower(unit)
	switch unit {
	case "":
		if value != 0 && !quirks {
			return 0, false
		}
		px = value * u.zoom()
	case "px":
		px = value * u.zoom()
	case "pt", "pc", "in", "cm", "mm":
		px = value * pointsPer[unit] * u.ToPix() * u.zoom()
	case "em":
		px = value * fontSize // font sizes are already zoomed
	case "ex":
		px = value * xHeight
	default:
		tracer().Debugf("unknown length unit %q", unit)
		return 0, false
	}
	return px, true
}
