package cascade

import (
	"math"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
)

// field gives typed access to a property value within a style. get reads
// from the shared group, set edits a private copy.
type field[T any] struct {
	get func(*style.RenderStyle) T
	set func(*style.RenderStyle, T)
}

func (f field[T]) copyFrom(dst, src *style.RenderStyle) {
	f.set(dst, f.get(src))
}

func inheritedField[T any](p func(*style.Inherited) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Inherited()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditInherited()) = v },
	}
}

func boxField[T any](p func(*style.Box) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Box()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditBox()) = v },
	}
}

func surroundField[T any](p func(*style.Surround) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Surround()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditSurround()) = v },
	}
}

func visualField[T any](p func(*style.Visual) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Visual()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditVisual()) = v },
	}
}

func flagsField[T any](p func(*style.Flags) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Flags()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditFlags()) = v },
	}
}

func generatedField[T any](p func(*style.Generated) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Generated()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditGenerated()) = v },
	}
}

func marqueeField[T any](p func(*style.Marquee) *T) field[T] {
	return field[T]{
		get: func(rs *style.RenderStyle) T { return *p(rs.Marquee()) },
		set: func(rs *style.RenderStyle, v T) { *p(rs.EditMarquee()) = v },
	}
}

// --- Property definition builders ------------------------------------------

func keywordProp[T comparable](f field[T], kw css.Keywords[T]) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := keywordOf(vals, kw)
			if ok {
				f.set(a.style, v)
			}
			return ok
		},
		copy: f.copyFrom,
	}
}

func lengthProp(f field[css.DimenT], flags lengthFlags) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			d, ok := a.length(v, flags)
			if ok {
				f.set(a.style, d)
			}
			return ok
		},
		copy: f.copyFrom,
	}
}

func colorProp(f field[style.Color]) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			c, ok := a.color(v)
			if ok {
				f.set(a.style, c)
			}
			return ok
		},
		copy: f.copyFrom,
	}
}

// spacingProp is for letter-spacing and word-spacing.
func spacingProp(f field[float64]) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			if v.IsIdent("normal") {
				f.set(a.style, 0)
				return true
			}
			px, ok := a.pixels(v)
			if ok {
				f.set(a.style, px)
			}
			return ok
		},
		copy: f.copyFrom,
	}
}

// countProp is for orphans and widows.
func countProp(f field[int]) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			n, ok := integerOf(v)
			if !ok || n < 1 {
				return false
			}
			f.set(a.style, n)
			return true
		},
		copy: f.copyFrom,
	}
}

func side(s css.Side) func(*[4]css.DimenT) *css.DimenT {
	return func(arr *[4]css.DimenT) *css.DimenT { return &arr[s] }
}

func offsetField(s css.Side) field[css.DimenT] {
	return surroundField(func(g *style.Surround) *css.DimenT { return side(s)(&g.Offset) })
}

func marginField(s css.Side) field[css.DimenT] {
	return surroundField(func(g *style.Surround) *css.DimenT { return side(s)(&g.Margin) })
}

func paddingField(s css.Side) field[css.DimenT] {
	return surroundField(func(g *style.Surround) *css.DimenT { return side(s)(&g.Padding) })
}

// edgeField accesses a border edge; the outline for s < 0.
func edgeField(s int) field[style.BorderEdge] {
	return surroundField(func(g *style.Surround) *style.BorderEdge {
		if s < 0 {
			return &g.Outline
		}
		return &g.Border[s]
	})
}

func edgeWidthProp(s int) propertyDef {
	f := edgeField(s)
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			w, ok := a.borderWidth(v)
			if ok {
				e := f.get(a.style)
				e.Width = w
				f.set(a.style, e)
			}
			return ok
		},
		copy: func(dst, src *style.RenderStyle) {
			e := f.get(dst)
			e.Width = f.get(src).Width
			f.set(dst, e)
		},
	}
}

func edgeStyleProp(s int) propertyDef {
	f := edgeField(s)
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			bs, ok := keywordOf(vals, css.BorderStyleKeywords)
			if ok {
				e := f.get(a.style)
				e.Style = bs
				f.set(a.style, e)
			}
			return ok
		},
		copy: func(dst, src *style.RenderStyle) {
			e := f.get(dst)
			e.Style = f.get(src).Style
			f.set(dst, e)
		},
	}
}

func edgeColorProp(s int) propertyDef {
	f := edgeField(s)
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			c, ok := a.color(v)
			if ok {
				e := f.get(a.style)
				e.Color = c
				f.set(a.style, e)
			}
			return ok
		},
		copy: func(dst, src *style.RenderStyle) {
			e := f.get(dst)
			e.Color = f.get(src).Color
			f.set(dst, e)
		},
	}
}

// --- Special properties ----------------------------------------------------

var colorField = inheritedField(func(g *style.Inherited) *style.Color { return &g.Color })

// applyColor sets the foreground color. `currentcolor` means the parent's
// color.
func applyColor(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	c, ok := a.color(v)
	if !ok {
		return false
	}
	if !c.IsValid() {
		c = style.Black
		if a.parent != nil {
			c = a.parent.Color()
		}
	}
	colorField.set(a.style, c)
	return true
}

func applyFontFamily(a *applier, vals []cssom.Value) bool {
	families, ok := fontFamilies(vals)
	if ok {
		a.style.EditInherited().FontFamily = families
	}
	return ok
}

func applyFontSize(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	size, kw, ok := a.fontSizeOf(v)
	if !ok {
		return false
	}
	inh := a.style.EditInherited()
	inh.FontSize, inh.FontKeyword = size, kw
	return true
}

func copyFontSize(dst, src *style.RenderStyle) {
	inh := dst.EditInherited()
	inh.FontSize = src.Inherited().FontSize
	inh.FontKeyword = src.Inherited().FontKeyword
}

func applyFontWeight(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	w, ok := a.fontWeight(v)
	if ok {
		a.style.EditInherited().FontWeight = w
	}
	return ok
}

// applyLineHeight: numbers are kept as percentages, to be inherited as
// factors; percentages and lengths compute to absolute values.
func applyLineHeight(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	var lh css.DimenT
	switch {
	case v.IsIdent("normal"):
		lh = css.Auto()
	case v.Kind == cssom.ValueNumber && v.Num >= 0:
		lh = css.Percentage(v.Num * 100)
	case v.Kind == cssom.ValuePercentage && v.Num >= 0:
		lh = css.Px(a.fontSize() * v.Num / 100)
	case v.Kind == cssom.ValueDimension:
		px, ok := a.pixels(v)
		if !ok || px < 0 {
			return false
		}
		lh = css.Px(px)
	default:
		return false
	}
	a.style.EditInherited().LineHeight = lh
	return true
}

func applyTextAlign(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok || v.Kind != cssom.ValueIdent {
		return false
	}
	ta, ok := css.TextAlignKeywords.Lookup(v.Text)
	if !ok && v.IsIdent("auto") {
		ta, ok = css.TextAlignAuto, true
	}
	if ok {
		a.style.EditInherited().TextAlign = ta
	}
	return ok
}

func applyTextDecoration(a *applier, vals []cssom.Value) bool {
	var deco css.TextDecoration
	if len(vals) == 1 && vals[0].IsIdent("none") {
		a.style.EditVisual().TextDecoration = css.TextDecorationNone
		return true
	}
	for _, v := range vals {
		if v.Kind != cssom.ValueIdent || v.IsIdent("none") {
			return false
		}
		d, ok := css.TextDecorationKeywords.Lookup(v.Text)
		if !ok {
			return false
		}
		deco |= d
	}
	if len(vals) == 0 {
		return false
	}
	a.style.EditVisual().TextDecoration = deco
	return true
}

func applyListStyleImage(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	switch {
	case v.IsIdent("none"):
		a.style.EditInherited().ListStyleImage = ""
	case v.Kind == cssom.ValueURI:
		a.style.EditInherited().ListStyleImage = v.Text
	default:
		return false
	}
	return true
}

func applyBorderSpacing(a *applier, vals []cssom.Value) bool {
	if len(vals) < 1 || len(vals) > 2 {
		return false
	}
	h, ok := a.pixels(vals[0])
	if !ok || h < 0 {
		return false
	}
	v := h
	if len(vals) == 2 {
		if v, ok = a.pixels(vals[1]); !ok || v < 0 {
			return false
		}
	}
	inh := a.style.EditInherited()
	inh.BorderSpacingH, inh.BorderSpacingV = h, v
	return true
}

func copyBorderSpacing(dst, src *style.RenderStyle) {
	inh := dst.EditInherited()
	inh.BorderSpacingH = src.Inherited().BorderSpacingH
	inh.BorderSpacingV = src.Inherited().BorderSpacingV
}

func applyQuotes(a *applier, vals []cssom.Value) bool {
	if len(vals) == 1 && vals[0].IsIdent("none") {
		a.style.EditInherited().Quotes = []string{}
		return true
	}
	if len(vals) == 0 || len(vals)%2 != 0 {
		return false
	}
	quotes := make([]string, len(vals))
	for i, v := range vals {
		if v.Kind != cssom.ValueString {
			return false
		}
		quotes[i] = v.Text
	}
	a.style.EditInherited().Quotes = quotes
	return true
}

func applyVerticalAlign(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	if va, ok := keywordOf(vals, css.VerticalAlignKeywords); ok {
		box := a.style.EditBox()
		box.VerticalAlign, box.VerticalAlignLength = va, css.DimenT{}
		return true
	}
	d, ok := a.length(v, allowPercent|allowNegative)
	if !ok {
		return false
	}
	box := a.style.EditBox()
	box.VerticalAlign, box.VerticalAlignLength = css.VerticalAlignLength, d
	return true
}

func copyVerticalAlign(dst, src *style.RenderStyle) {
	box := dst.EditBox()
	box.VerticalAlign = src.Box().VerticalAlign
	box.VerticalAlignLength = src.Box().VerticalAlignLength
}

func applyZIndex(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	if v.IsIdent("auto") {
		box := a.style.EditBox()
		box.ZIndex, box.ZAuto = 0, true
		return true
	}
	z, ok := integerOf(v)
	if ok {
		box := a.style.EditBox()
		box.ZIndex, box.ZAuto = z, false
	}
	return ok
}

func copyZIndex(dst, src *style.RenderStyle) {
	box := dst.EditBox()
	box.ZIndex, box.ZAuto = src.Box().ZIndex, src.Box().ZAuto
}

func applyOutlineOffset(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	px, ok := a.pixels(v)
	if ok {
		a.style.EditSurround().OutlineOffset = px
	}
	return ok
}

// applyClip accepts `auto` and `rect(t, r, b, l)`, with or without commas.
func applyClip(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok {
		return false
	}
	if v.IsIdent("auto") {
		vis := a.style.EditVisual()
		vis.HasClip = false
		vis.Clip = style.InitialStyle().Visual().Clip
		return true
	}
	if v.Kind != cssom.ValueFunction || v.Text != "rect" {
		return false
	}
	args := v.FunctionArgs()
	var edges []cssom.Value
	if len(args) == 1 {
		edges = args[0]
	} else {
		for _, arg := range args {
			if len(arg) != 1 {
				return false
			}
			edges = append(edges, arg[0])
		}
	}
	if len(edges) != 4 {
		return false
	}
	var clip [4]css.DimenT
	for i, e := range edges {
		d, ok := a.length(e, allowAuto|allowNegative)
		if !ok {
			return false
		}
		clip[i] = d
	}
	vis := a.style.EditVisual()
	vis.Clip, vis.HasClip = clip, true
	return true
}

func copyClip(dst, src *style.RenderStyle) {
	vis := dst.EditVisual()
	vis.Clip, vis.HasClip = src.Visual().Clip, src.Visual().HasClip
}

func applyOpacity(a *applier, vals []cssom.Value) bool {
	v, ok := single(vals)
	if !ok || v.Kind != cssom.ValueNumber {
		return false
	}
	a.style.EditVisual().Opacity = math.Max(0, math.Min(1, v.Num))
	return true
}

// applyContent handles generated content: strings, URIs, counters,
// attribute values and quotes.
func applyContent(a *applier, vals []cssom.Value) bool {
	if len(vals) == 1 && (vals[0].IsIdent("normal") || vals[0].IsIdent("none")) {
		a.style.EditGenerated().Content = nil
		return true
	}
	items := make([]style.ContentItem, 0, len(vals))
	for _, v := range vals {
		var item style.ContentItem
		switch v.Kind {
		case cssom.ValueString:
			item = style.ContentItem{Kind: style.ContentText, Value: v.Text}
		case cssom.ValueURI:
			item = style.ContentItem{Kind: style.ContentURI, Value: v.Text}
		case cssom.ValueIdent:
			switch strings.ToLower(v.Text) {
			case "open-quote":
				item.Kind = style.ContentOpenQuote
			case "close-quote":
				item.Kind = style.ContentCloseQuote
			case "no-open-quote":
				item.Kind = style.ContentNoOpenQuote
			case "no-close-quote":
				item.Kind = style.ContentNoCloseQuote
			default:
				return false
			}
		case cssom.ValueFunction:
			var kind style.ContentKind
			switch v.Text {
			case "counter":
				kind = style.ContentCounter
			case "counters":
				kind = style.ContentCounters
			case "attr":
				kind = style.ContentAttr
			default:
				return false
			}
			var parts []string
			for _, arg := range v.FunctionArgs() {
				if len(arg) != 1 || (arg[0].Kind != cssom.ValueIdent && arg[0].Kind != cssom.ValueString) {
					return false
				}
				parts = append(parts, arg[0].Text)
			}
			if len(parts) == 0 || (kind == style.ContentAttr && len(parts) != 1) {
				return false
			}
			if kind == style.ContentAttr {
				parts[0] = strings.ToLower(parts[0])
			}
			item = style.ContentItem{Kind: kind, Value: strings.Join(parts, ",")}
		default:
			return false
		}
		items = append(items, item)
	}
	a.style.EditGenerated().Content = items
	return true
}

// counterProp parses counter-reset and counter-increment: `none` or pairs
// of a counter name and an optional integer.
func counterProp(f field[[]style.Counter], dflt int) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			if len(vals) == 1 && vals[0].IsIdent("none") {
				f.set(a.style, nil)
				return true
			}
			var counters []style.Counter
			for i := 0; i < len(vals); i++ {
				if vals[i].Kind != cssom.ValueIdent {
					return false
				}
				c := style.Counter{Name: vals[i].Text, Value: dflt}
				if i+1 < len(vals) {
					if n, ok := integerOf(vals[i+1]); ok {
						c.Value = n
						i++
					}
				}
				counters = append(counters, c)
			}
			if len(counters) == 0 {
				return false
			}
			f.set(a.style, counters)
			return true
		},
		copy: f.copyFrom,
	}
}

func marqueeIncrementOf(a *applier, v cssom.Value) (css.DimenT, bool) {
	if v.Kind == cssom.ValueIdent {
		switch strings.ToLower(v.Text) {
		case "small":
			return css.Px(1), true
		case "normal":
			return css.Px(6), true
		case "large":
			return css.Px(36), true
		}
		return css.DimenT{}, false
	}
	return a.length(v, allowPercent)
}

// marqueeSpeedOf returns the delay between marquee steps in milliseconds.
func marqueeSpeedOf(v cssom.Value) (int, bool) {
	switch v.Kind {
	case cssom.ValueIdent:
		switch strings.ToLower(v.Text) {
		case "slow":
			return 500, true
		case "normal":
			return 85, true
		case "fast":
			return 10, true
		}
	case cssom.ValueNumber:
		if v.Num >= 0 {
			return int(v.Num), true
		}
	case cssom.ValueDimension:
		switch {
		case v.Num < 0:
		case v.Unit == "ms":
			return int(v.Num), true
		case v.Unit == "s":
			return int(v.Num * 1000), true
		}
	}
	return 0, false
}

func marqueeLoopsOf(v cssom.Value) (int, bool) {
	if v.IsIdent("infinite") {
		return -1, true
	}
	n, ok := integerOf(v)
	return n, ok && n >= 0
}

func singleValueProp[T any](f field[T], conv func(*applier, cssom.Value) (T, bool)) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			v, ok := single(vals)
			if !ok {
				return false
			}
			x, ok := conv(a, v)
			if ok {
				f.set(a.style, x)
			}
			return ok
		},
		copy: f.copyFrom,
	}
}

// --- The property table ----------------------------------------------------

var propertyDefs map[style.PropertyID]propertyDef

func init() {
	inh := func(p func(*style.Inherited) *css.DimenT) field[css.DimenT] { return inheritedField(p) }
	box := func(p func(*style.Box) *css.DimenT) field[css.DimenT] { return boxField(p) }
	propertyDefs = map[style.PropertyID]propertyDef{
		style.PropColor:     {apply: applyColor, copy: colorField.copyFrom},
		style.PropDirection: keywordProp(inheritedField(func(g *style.Inherited) *css.Direction { return &g.Direction }), css.DirectionKeywords),
		style.PropDisplay:   keywordProp(flagsField(func(g *style.Flags) *css.Display { return &g.Display }), css.DisplayKeywords),
		style.PropFontFamily: {apply: applyFontFamily,
			copy: inheritedField(func(g *style.Inherited) *[]string { return &g.FontFamily }).copyFrom},
		style.PropFontSize:    {apply: applyFontSize, copy: copyFontSize},
		style.PropFontStyle:   keywordProp(inheritedField(func(g *style.Inherited) *css.FontStyle { return &g.FontStyle }), css.FontStyleKeywords),
		style.PropFontVariant: keywordProp(inheritedField(func(g *style.Inherited) *css.FontVariant { return &g.FontVariant }), css.FontVariantKeywords),
		style.PropFontWeight: {apply: applyFontWeight,
			copy: inheritedField(func(g *style.Inherited) *int { return &g.FontWeight }).copyFrom},
		style.PropLineHeight: {apply: applyLineHeight,
			copy: inh(func(g *style.Inherited) *css.DimenT { return &g.LineHeight }).copyFrom},
		style.PropTextAlign: {apply: applyTextAlign,
			copy: inheritedField(func(g *style.Inherited) *css.TextAlign { return &g.TextAlign }).copyFrom},
		style.PropTextIndent:     lengthProp(inh(func(g *style.Inherited) *css.DimenT { return &g.TextIndent }), allowPercent|allowNegative),
		style.PropTextTransform:  keywordProp(inheritedField(func(g *style.Inherited) *css.TextTransform { return &g.TextTransform }), css.TextTransformKeywords),
		style.PropTextDecoration: {apply: applyTextDecoration, copy: visualField(func(g *style.Visual) *css.TextDecoration { return &g.TextDecoration }).copyFrom},
		style.PropLetterSpacing:  spacingProp(inheritedField(func(g *style.Inherited) *float64 { return &g.LetterSpacing })),
		style.PropWordSpacing:    spacingProp(inheritedField(func(g *style.Inherited) *float64 { return &g.WordSpacing })),
		style.PropWhiteSpace:     keywordProp(inheritedField(func(g *style.Inherited) *css.WhiteSpace { return &g.WhiteSpace }), css.WhiteSpaceKeywords),
		style.PropUnicodeBidi:    keywordProp(flagsField(func(g *style.Flags) *css.UnicodeBidi { return &g.UnicodeBidi }), css.UnicodeBidiKeywords),
		style.PropVisibility:     keywordProp(inheritedField(func(g *style.Inherited) *css.Visibility { return &g.Visibility }), css.VisibilityKeywords),
		style.PropCursor:         keywordProp(inheritedField(func(g *style.Inherited) *css.Cursor { return &g.Cursor }), css.CursorKeywords),
		style.PropListStyleType:  keywordProp(inheritedField(func(g *style.Inherited) *css.ListStyleType { return &g.ListStyleType }), css.ListStyleTypeKeywords),
		style.PropListStylePosition: keywordProp(inheritedField(func(g *style.Inherited) *css.ListStylePosition { return &g.ListStylePosition }),
			css.ListStylePositionKeywords),
		style.PropListStyleImage: {apply: applyListStyleImage,
			copy: inheritedField(func(g *style.Inherited) *string { return &g.ListStyleImage }).copyFrom},
		style.PropBorderCollapse: keywordProp(inheritedField(func(g *style.Inherited) *css.BorderCollapse { return &g.BorderCollapse }), css.BorderCollapseKeywords),
		style.PropBorderSpacing:  {apply: applyBorderSpacing, copy: copyBorderSpacing},
		style.PropCaptionSide:    keywordProp(inheritedField(func(g *style.Inherited) *css.CaptionSide { return &g.CaptionSide }), css.CaptionSideKeywords),
		style.PropEmptyCells:     keywordProp(inheritedField(func(g *style.Inherited) *css.EmptyCells { return &g.EmptyCells }), css.EmptyCellsKeywords),
		style.PropQuotes: {apply: applyQuotes,
			copy: inheritedField(func(g *style.Inherited) *[]string { return &g.Quotes }).copyFrom},
		style.PropOrphans:         countProp(inheritedField(func(g *style.Inherited) *int { return &g.Orphans })),
		style.PropWidows:          countProp(inheritedField(func(g *style.Inherited) *int { return &g.Widows })),
		style.PropPageBreakInside: keywordProp(inheritedField(func(g *style.Inherited) *css.PageBreak { return &g.PageBreakInside }), css.PageBreakKeywords),
		// box
		style.PropWidth:         lengthProp(box(func(g *style.Box) *css.DimenT { return &g.Width }), allowAuto|allowPercent),
		style.PropHeight:        lengthProp(box(func(g *style.Box) *css.DimenT { return &g.Height }), allowAuto|allowPercent),
		style.PropMinWidth:      lengthProp(box(func(g *style.Box) *css.DimenT { return &g.MinWidth }), allowPercent),
		style.PropMinHeight:     lengthProp(box(func(g *style.Box) *css.DimenT { return &g.MinHeight }), allowPercent),
		style.PropMaxWidth:      lengthProp(box(func(g *style.Box) *css.DimenT { return &g.MaxWidth }), allowNone|allowPercent),
		style.PropMaxHeight:     lengthProp(box(func(g *style.Box) *css.DimenT { return &g.MaxHeight }), allowNone|allowPercent),
		style.PropVerticalAlign: {apply: applyVerticalAlign, copy: copyVerticalAlign},
		style.PropZIndex:        {apply: applyZIndex, copy: copyZIndex},
		style.PropBoxSizing:     keywordProp(boxField(func(g *style.Box) *css.BoxSizing { return &g.BoxSizing }), css.BoxSizingKeywords),
		// surround
		style.PropTop:               lengthProp(offsetField(css.Top), allowAuto|allowPercent|allowNegative),
		style.PropRight:             lengthProp(offsetField(css.Right), allowAuto|allowPercent|allowNegative),
		style.PropBottom:            lengthProp(offsetField(css.Bottom), allowAuto|allowPercent|allowNegative),
		style.PropLeft:              lengthProp(offsetField(css.Left), allowAuto|allowPercent|allowNegative),
		style.PropMarginTop:         lengthProp(marginField(css.Top), allowAuto|allowPercent|allowNegative),
		style.PropMarginRight:       lengthProp(marginField(css.Right), allowAuto|allowPercent|allowNegative),
		style.PropMarginBottom:      lengthProp(marginField(css.Bottom), allowAuto|allowPercent|allowNegative),
		style.PropMarginLeft:        lengthProp(marginField(css.Left), allowAuto|allowPercent|allowNegative),
		style.PropPaddingTop:        lengthProp(paddingField(css.Top), allowPercent),
		style.PropPaddingRight:      lengthProp(paddingField(css.Right), allowPercent),
		style.PropPaddingBottom:     lengthProp(paddingField(css.Bottom), allowPercent),
		style.PropPaddingLeft:       lengthProp(paddingField(css.Left), allowPercent),
		style.PropBorderTopWidth:    edgeWidthProp(int(css.Top)),
		style.PropBorderRightWidth:  edgeWidthProp(int(css.Right)),
		style.PropBorderBottomWidth: edgeWidthProp(int(css.Bottom)),
		style.PropBorderLeftWidth:   edgeWidthProp(int(css.Left)),
		style.PropBorderTopStyle:    edgeStyleProp(int(css.Top)),
		style.PropBorderRightStyle:  edgeStyleProp(int(css.Right)),
		style.PropBorderBottomStyle: edgeStyleProp(int(css.Bottom)),
		style.PropBorderLeftStyle:   edgeStyleProp(int(css.Left)),
		style.PropBorderTopColor:    edgeColorProp(int(css.Top)),
		style.PropBorderRightColor:  edgeColorProp(int(css.Right)),
		style.PropBorderBottomColor: edgeColorProp(int(css.Bottom)),
		style.PropBorderLeftColor:   edgeColorProp(int(css.Left)),
		style.PropOutlineWidth:      edgeWidthProp(-1),
		style.PropOutlineStyle:      edgeStyleProp(-1),
		style.PropOutlineColor:      edgeColorProp(-1),
		style.PropOutlineOffset: {apply: applyOutlineOffset,
			copy: surroundField(func(g *style.Surround) *float64 { return &g.OutlineOffset }).copyFrom},
		// flags
		style.PropPosition:        keywordProp(flagsField(func(g *style.Flags) *css.Position { return &g.Position }), css.PositionKeywords),
		style.PropFloat:           keywordProp(flagsField(func(g *style.Flags) *css.Float { return &g.Float }), css.FloatKeywords),
		style.PropClear:           keywordProp(flagsField(func(g *style.Flags) *css.Clear { return &g.Clear }), css.ClearKeywords),
		style.PropOverflowX:       keywordProp(flagsField(func(g *style.Flags) *css.Overflow { return &g.OverflowX }), css.OverflowKeywords),
		style.PropOverflowY:       keywordProp(flagsField(func(g *style.Flags) *css.Overflow { return &g.OverflowY }), css.OverflowKeywords),
		style.PropTableLayout:     keywordProp(flagsField(func(g *style.Flags) *css.TableLayout { return &g.TableLayout }), css.TableLayoutKeywords),
		style.PropPageBreakBefore: keywordProp(flagsField(func(g *style.Flags) *css.PageBreak { return &g.PageBreakBefore }), css.PageBreakKeywords),
		style.PropPageBreakAfter:  keywordProp(flagsField(func(g *style.Flags) *css.PageBreak { return &g.PageBreakAfter }), css.PageBreakKeywords),
		// visual
		style.PropClip:         {apply: applyClip, copy: copyClip},
		style.PropOpacity:      {apply: applyOpacity, copy: visualField(func(g *style.Visual) *float64 { return &g.Opacity }).copyFrom},
		style.PropTextOverflow: keywordProp(visualField(func(g *style.Visual) *css.TextOverflow { return &g.TextOverflow }), css.TextOverflowKeywords),
		// background
		style.PropBackgroundColor: colorProp(field[style.Color]{
			get: func(rs *style.RenderStyle) style.Color { return rs.Background().Color },
			set: func(rs *style.RenderStyle, c style.Color) { rs.EditBackground().Color = c },
		}),
		style.PropBackgroundImage:      layerProp(style.LayerImage, parseLayerImage),
		style.PropBackgroundRepeat:     layerProp(style.LayerRepeat, parseLayerRepeat),
		style.PropBackgroundAttachment: layerProp(style.LayerAttachment, parseLayerAttachment),
		style.PropBackgroundPositionX:  layerProp(style.LayerPositionX, parseLayerPositionX),
		style.PropBackgroundPositionY:  layerProp(style.LayerPositionY, parseLayerPositionY),
		style.PropBackgroundClip:       layerProp(style.LayerClip, parseLayerClip),
		style.PropBackgroundOrigin:     layerProp(style.LayerOrigin, parseLayerOrigin),
		style.PropBackgroundSize:       layerProp(style.LayerSize, parseLayerSize),
		// generated content
		style.PropContent: {apply: applyContent,
			copy: generatedField(func(g *style.Generated) *[]style.ContentItem { return &g.Content }).copyFrom},
		style.PropCounterReset:     counterProp(generatedField(func(g *style.Generated) *[]style.Counter { return &g.CounterReset }), 0),
		style.PropCounterIncrement: counterProp(generatedField(func(g *style.Generated) *[]style.Counter { return &g.CounterIncrement }), 1),
		// marquee
		style.PropMarqueeIncrement: singleValueProp(marqueeField(func(g *style.Marquee) *css.DimenT { return &g.Increment }), marqueeIncrementOf),
		style.PropMarqueeSpeed: singleValueProp(marqueeField(func(g *style.Marquee) *int { return &g.Speed }),
			func(_ *applier, v cssom.Value) (int, bool) { return marqueeSpeedOf(v) }),
		style.PropMarqueeRepetition: singleValueProp(marqueeField(func(g *style.Marquee) *int { return &g.Loops }),
			func(_ *applier, v cssom.Value) (int, bool) { return marqueeLoopsOf(v) }),
		style.PropMarqueeStyle:     keywordProp(marqueeField(func(g *style.Marquee) *css.MarqueeBehavior { return &g.Behavior }), css.MarqueeBehaviorKeywords),
		style.PropMarqueeDirection: keywordProp(marqueeField(func(g *style.Marquee) *css.MarqueeDirection { return &g.Direction }), css.MarqueeDirectionKeywords),
		// shorthands
		style.PropFont:               {apply: applyFont},
		style.PropListStyle:          {apply: applyListStyle},
		style.PropMargin:             boxShorthand(style.PropMargin),
		style.PropPadding:            boxShorthand(style.PropPadding),
		style.PropBorderWidth:        boxShorthand(style.PropBorderWidth),
		style.PropBorderStyle:        boxShorthand(style.PropBorderStyle),
		style.PropBorderColor:        boxShorthand(style.PropBorderColor),
		style.PropBorder:             {apply: applyBorder},
		style.PropBorderTop:          borderSideShorthand(int(css.Top)),
		style.PropBorderRight:        borderSideShorthand(int(css.Right)),
		style.PropBorderBottom:       borderSideShorthand(int(css.Bottom)),
		style.PropBorderLeft:         borderSideShorthand(int(css.Left)),
		style.PropOutline:            borderSideShorthand(-1),
		style.PropOverflow:           {apply: applyOverflow},
		style.PropBackground:         {apply: applyBackground},
		style.PropBackgroundPosition: {apply: applyBackgroundPosition},
		style.PropMarquee:            {apply: applyMarquee},
	}
}
