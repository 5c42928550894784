package css

import (
	"sort"
	"strings"
)

// Indices into a font size table.
const (
	FontSizeXXSmall = iota
	FontSizeXSmall
	FontSizeSmall
	FontSizeMedium
	FontSizeLarge
	FontSizeXLarge
	FontSizeXXLarge
	FontSizeXXXLarge
	fontSizeCount
)

var fontFactors = [fontSizeCount]float64{3.0 / 5, 3.0 / 4, 8.0 / 9, 1, 6.0 / 5, 3.0 / 2, 2, 3}

var fontSizeKeywords = map[string]int{
	"xx-small":         FontSizeXXSmall,
	"x-small":          FontSizeXSmall,
	"small":            FontSizeSmall,
	"medium":           FontSizeMedium,
	"large":            FontSizeLarge,
	"x-large":          FontSizeXLarge,
	"xx-large":         FontSizeXXLarge,
	"-khtml-xxx-large": FontSizeXXXLarge,
}

// FontSizeKeyword returns the table index for an absolute-size keyword.
func FontSizeKeyword(kw string) (int, bool) {
	inx, ok := fontSizeKeywords[strings.ToLower(kw)]
	return inx, ok
}

// FontSizeTable holds pixel sizes for the 8 absolute font-size keywords,
// for proportional and for fixed-pitch fonts.
type FontSizeTable struct {
	proportional [fontSizeCount]float64
	fixed        [fontSizeCount]float64
	minimum      float64
}

// NewFontSizeTable computes the keyword font sizes. medium and mediumFixed
// are given in points, minimum is given in pixels. Sizes are scaled by the
// unit resolver's point-to-pixel factor and zoom.
func NewFontSizeTable(medium, mediumFixed, minimum float64, u UnitResolver) *FontSizeTable {
	t := &FontSizeTable{minimum: minimum}
	scale := u.ToPix() * u.zoom()
	for i, f := range fontFactors {
		t.proportional[i] = medium * scale * f
		t.fixed[i] = mediumFixed * scale * f
	}
	tracer().Debugf("font size table: medium = %.2fpx, fixed = %.2fpx",
		t.proportional[FontSizeMedium], t.fixed[FontSizeMedium])
	return t
}

func (t *FontSizeTable) table(fixed bool) []float64 {
	if fixed {
		return t.fixed[:]
	}
	return t.proportional[:]
}

// Size returns the size for a keyword index.
func (t *FontSizeTable) Size(inx int, fixed bool) float64 {
	if inx < 0 {
		inx = 0
	} else if inx >= fontSizeCount {
		inx = fontSizeCount - 1
	}
	return t.Floor(t.table(fixed)[inx])
}

// Medium is a shortcut for Size(FontSizeMedium, fixed).
func (t *FontSizeTable) Medium(fixed bool) float64 {
	return t.Size(FontSizeMedium, fixed)
}

// Larger returns the next larger table entry, or size × 6/5 beyond the table.
func (t *FontSizeTable) Larger(size float64, fixed bool) float64 {
	sizes := t.table(fixed)
	i := sort.Search(len(sizes), func(i int) bool { return sizes[i] > size })
	if i < len(sizes) {
		return t.Floor(sizes[i])
	}
	return t.Floor(size * 6 / 5)
}

// Smaller returns the next smaller table entry, or size × 5/6 beyond the table.
func (t *FontSizeTable) Smaller(size float64, fixed bool) float64 {
	sizes := t.table(fixed)
	i := sort.Search(len(sizes), func(i int) bool { return sizes[i] >= size })
	if i > 0 {
		return t.Floor(sizes[i-1])
	}
	return t.Floor(size * 5 / 6)
}

// Floor applies the minimum font size. An explicit size of 0 is kept.
func (t *FontSizeTable) Floor(size float64) float64 {
	if size == 0 || size >= t.minimum {
		return size
	}
	return t.minimum
}
