package cascade

import (
	"math"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
)

// xHeightRatio approximates the x-height of a font as a fraction of its
// size, as long as we do not have access to font metrics.
const xHeightRatio = 0.5

// applier applies declarations to a style, in cascading order.
//
// Font properties are applied first. Other properties may depend on the
// resulting font size (for `em` and `ex` units), so the cascade calls
// updateFont before applying the first non-font property.
type applier struct {
	style     *style.RenderStyle
	parent    *style.RenderStyle // nil for the root element
	units     css.UnitResolver
	fonts     *css.FontSizeTable
	quirks    bool
	fontDirty bool
}

// propertyDef holds the behavior of a longhand or shorthand property.
// apply converts and stores values, returning false for invalid values, in
// which case the style must be left untouched. copy transfers the computed
// value from one style to another and is used for `inherit` and `initial`.
// Shorthands do not have a copy function; they delegate to their longhands.
type propertyDef struct {
	apply func(a *applier, vals []cssom.Value) bool
	copy  func(dst, src *style.RenderStyle)
}

// apply applies a single declaration. Invalid declarations are ignored.
func (a *applier) apply(d *cssom.Declaration) {
	id := d.Property
	switch {
	case id == style.PropertyUnknown:
		return
	case d.IsInherit() && a.parent != nil:
		a.inherit(id)
	case d.IsInherit() || d.IsInitial():
		a.initial(id)
	default:
		def, ok := propertyDefs[id]
		if !ok || def.apply == nil {
			tracer().Debugf("property %s not supported", id)
			return
		}
		if !def.apply(a, d.Values) {
			tracer().Debugf("ignoring invalid declaration %q", d.String())
			return
		}
	}
	if isFontProperty(id) {
		a.fontDirty = true
	}
}

// inherit copies the parent's value for a property. Non-inherited
// properties set to `inherit` are flagged in the style.
func (a *applier) inherit(id style.PropertyID) {
	if id.IsShorthand() {
		for _, l := range id.Longhands() {
			a.inherit(l)
		}
		return
	}
	def, ok := propertyDefs[id]
	if !ok || def.copy == nil {
		return
	}
	def.copy(a.style, a.parent)
	if !id.IsInherited() {
		a.style.SetExplicitInherit(id.Group())
	}
}

// initial resets a property to its initial value. The initial font size
// is `medium`, which is resolved by updateFont.
func (a *applier) initial(id style.PropertyID) {
	if id.IsShorthand() {
		for _, l := range id.Longhands() {
			a.initial(l)
		}
		return
	}
	if def, ok := propertyDefs[id]; ok && def.copy != nil {
		def.copy(a.style, style.InitialStyle())
	}
}

// updateFont recomputes the font size of keyword sizes, which depend on
// the font family being of fixed pitch or not.
func (a *applier) updateFont() {
	if !a.fontDirty {
		return
	}
	a.fontDirty = false
	inh := a.style.Inherited()
	if inh.FontKeyword <= 0 || a.fonts == nil {
		return
	}
	if size := a.fonts.Size(inh.FontKeyword-1, isMonospace(inh.FontFamily)); size != inh.FontSize {
		a.style.EditInherited().FontSize = size
	}
}

// transaction applies f to a copy of the style first. Only if this
// succeeds, it is applied to the real style. Shorthands use it to make
// sure they are applied either completely or not at all.
func (a *applier) transaction(f func(*applier) bool) bool {
	trial := *a
	trial.style = a.style.Copy()
	if !f(&trial) {
		return false
	}
	return f(a)
}

func isFontProperty(id style.PropertyID) bool {
	switch id {
	case style.PropFont, style.PropFontFamily, style.PropFontSize, style.PropFontStyle,
		style.PropFontVariant, style.PropFontWeight:
		return true
	}
	return false
}

func isMonospace(families []string) bool {
	return len(families) == 1 && families[0] == "monospace"
}

func (a *applier) fontSize() float64 {
	return a.style.Inherited().FontSize
}

func (a *applier) parentFontSize() float64 {
	switch {
	case a.parent != nil:
		return a.parent.Inherited().FontSize
	case a.fonts != nil:
		return a.fonts.Medium(false)
	}
	return style.DefaultFontSize
}

// --- Value conversion ------------------------------------------------------

type lengthFlags uint8

const (
	allowAuto lengthFlags = 1 << iota
	allowNone
	allowPercent
	allowNegative
)

// length converts a value to a computed dimension.
func (a *applier) length(v cssom.Value, flags lengthFlags) (css.DimenT, bool) {
	switch v.Kind {
	case cssom.ValueIdent:
		switch {
		case flags&allowAuto != 0 && v.IsIdent("auto"):
			return css.Auto(), true
		case flags&allowNone != 0 && v.IsIdent("none"):
			return css.Unbounded(), true
		}
	case cssom.ValuePercentage:
		if flags&allowPercent != 0 && (v.Num >= 0 || flags&allowNegative != 0) {
			return css.Percentage(v.Num), true
		}
	case cssom.ValueNumber, cssom.ValueDimension:
		if px, ok := a.pixels(v); ok && (px >= 0 || flags&allowNegative != 0) {
			return css.Px(px), true
		}
	}
	return css.DimenT{}, false
}

// pixels converts a length to CSS pixels, relative to the current font.
func (a *applier) pixels(v cssom.Value) (float64, bool) {
	if v.Kind != cssom.ValueNumber && v.Kind != cssom.ValueDimension {
		return 0, false
	}
	fs := a.fontSize()
	return a.units.Length(v.Num, v.Unit, fs, fs*xHeightRatio, a.quirks)
}

// color converts a value to a color. `currentcolor` yields the invalid
// color, which stands for the value of property `color`.
func (a *applier) color(v cssom.Value) (style.Color, bool) {
	switch v.Kind {
	case cssom.ValueIdent:
		if v.IsIdent("currentcolor") {
			return style.Color{}, true
		}
	case cssom.ValueHash, cssom.ValueFunction:
	case cssom.ValueNumber, cssom.ValueDimension:
		if !a.quirks { // bare hex colors like 336699
			return style.Color{}, false
		}
	default:
		return style.Color{}, false
	}
	c, err := style.ParseColor(v.Raw, a.quirks)
	if err != nil {
		return style.Color{}, false
	}
	return c, true
}

// borderWidth converts a border or outline width. In quirks mode,
// fractional widths between 0 and 1 are rounded up to 1px.
func (a *applier) borderWidth(v cssom.Value) (float64, bool) {
	if v.Kind == cssom.ValueIdent {
		switch strings.ToLower(v.Text) {
		case "thin":
			return 1, true
		case "medium":
			return style.MediumBorderWidth, true
		case "thick":
			return 5, true
		}
		return 0, false
	}
	px, ok := a.pixels(v)
	if !ok || px < 0 {
		return 0, false
	}
	if a.quirks && px > 0 && px < 1 {
		px = 1
	}
	return px, true
}

func single(vals []cssom.Value) (cssom.Value, bool) {
	if len(vals) != 1 {
		return cssom.Value{}, false
	}
	return vals[0], true
}

func keywordOf[T comparable](vals []cssom.Value, kw css.Keywords[T]) (T, bool) {
	var zero T
	v, ok := single(vals)
	if !ok || v.Kind != cssom.ValueIdent {
		return zero, false
	}
	return kw.Lookup(v.Text)
}

func integerOf(v cssom.Value) (int, bool) {
	if v.Kind != cssom.ValueNumber || v.Num != math.Trunc(v.Num) {
		return 0, false
	}
	return int(v.Num), true
}

// splitCommas splits a value list at top-level commas.
func splitCommas(vals []cssom.Value) [][]cssom.Value {
	var groups [][]cssom.Value
	start := 0
	for i, v := range vals {
		if v.Kind == cssom.ValueComma {
			groups = append(groups, vals[start:i])
			start = i + 1
		}
	}
	return append(groups, vals[start:])
}

var genericFamilies = map[string]bool{
	"serif": true, "sans-serif": true, "cursive": true, "fantasy": true, "monospace": true,
}

// fontFamilies parses a comma separated list of font family names. Names
// are either strings or sequences of identifiers.
func fontFamilies(vals []cssom.Value) ([]string, bool) {
	var families []string
	for _, group := range splitCommas(vals) {
		if len(group) == 0 {
			return nil, false
		}
		if len(group) == 1 && group[0].Kind == cssom.ValueString {
			families = append(families, group[0].Text)
			continue
		}
		words := make([]string, len(group))
		for i, v := range group {
			if v.Kind != cssom.ValueIdent {
				return nil, false
			}
			words[i] = v.Text
		}
		name := strings.Join(words, " ")
		if genericFamilies[strings.ToLower(name)] {
			name = strings.ToLower(name)
		}
		families = append(families, name)
	}
	return families, len(families) > 0
}

// fontWeight converts a font weight, relative to the parent's weight for
// `bolder` and `lighter`.
func (a *applier) fontWeight(v cssom.Value) (int, bool) {
	parent := 400
	if a.parent != nil {
		parent = a.parent.Inherited().FontWeight
	}
	if v.Kind == cssom.ValueIdent {
		switch strings.ToLower(v.Text) {
		case "normal":
			return 400, true
		case "bold":
			return 700, true
		case "bolder":
			switch {
			case parent < 400:
				return 400, true
			case parent < 600:
				return 700, true
			}
			return 900, true
		case "lighter":
			switch {
			case parent < 600:
				return 100, true
			case parent < 800:
				return 400, true
			}
			return 700, true
		}
		return 0, false
	}
	w, ok := integerOf(v)
	if !ok || w < 100 || w > 900 || w%100 != 0 {
		return 0, false
	}
	return w, true
}

// fontSizeOf computes a font size from a value. Relative sizes refer to
// the parent's font size. It returns the size and the keyword index plus
// one, or 0 for sizes not set by a keyword.
func (a *applier) fontSizeOf(v cssom.Value) (size float64, keyword int, ok bool) {
	fixed := isMonospace(a.style.Inherited().FontFamily)
	parent := a.parentFontSize()
	switch v.Kind {
	case cssom.ValueIdent:
		if a.fonts == nil {
			return 0, 0, false
		}
		if inx, found := css.FontSizeKeyword(v.Text); found {
			return a.fonts.Size(inx, fixed), inx + 1, true
		}
		switch strings.ToLower(v.Text) {
		case "larger":
			return a.fonts.Larger(parent, fixed), 0, true
		case "smaller":
			return a.fonts.Smaller(parent, fixed), 0, true
		}
		return 0, 0, false
	case cssom.ValuePercentage:
		size = parent * v.Num / 100
	case cssom.ValueNumber, cssom.ValueDimension:
		size, ok = a.units.Length(v.Num, v.Unit, parent, parent*xHeightRatio, a.quirks)
		if !ok {
			return 0, 0, false
		}
	default:
		return 0, 0, false
	}
	if size < 0 {
		return 0, 0, false
	}
	if a.fonts != nil {
		size = a.fonts.Floor(size)
	}
	return size, 0, true
}
