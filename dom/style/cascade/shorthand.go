package cascade

import (
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
)

// Shorthands reset every longhand they do not mention to its initial
// value. They are applied as a whole or not at all.

// boxShorthand distributes 1 to 4 values onto the longhands of the four
// sides, as margin or border-color do.
func boxShorthand(id style.PropertyID) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			sides, ok := style.ExpandBox(vals)
			if !ok {
				return false
			}
			return a.transaction(func(b *applier) bool {
				for i, l := range id.Longhands() {
					if !propertyDefs[l].apply(b, sides[i:i+1]) {
						return false
					}
				}
				return true
			})
		},
	}
}

// borderParts parses the values of a border shorthand: width, style and
// color in any order, each at most once.
func (a *applier) borderParts(vals []cssom.Value) (style.BorderEdge, bool) {
	edge := style.BorderEdge{Width: style.MediumBorderWidth, Style: css.BorderStyleNone}
	var hasWidth, hasStyle, hasColor bool
	for _, v := range vals {
		if !hasWidth {
			if w, ok := a.borderWidth(v); ok {
				edge.Width, hasWidth = w, true
				continue
			}
		}
		if !hasStyle {
			if bs, ok := keywordOf([]cssom.Value{v}, css.BorderStyleKeywords); ok {
				edge.Style, hasStyle = bs, true
				continue
			}
		}
		if !hasColor {
			if c, ok := a.color(v); ok {
				edge.Color, hasColor = c, true
				continue
			}
		}
		return edge, false
	}
	return edge, len(vals) > 0
}

// borderSideShorthand is for border-top etc., and for outline (s < 0).
func borderSideShorthand(s int) propertyDef {
	f := edgeField(s)
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			edge, ok := a.borderParts(vals)
			if ok {
				f.set(a.style, edge)
			}
			return ok
		},
	}
}

func applyBorder(a *applier, vals []cssom.Value) bool {
	edge, ok := a.borderParts(vals)
	if !ok {
		return false
	}
	sur := a.style.EditSurround()
	for i := range sur.Border {
		sur.Border[i] = edge
	}
	return true
}

func applyOverflow(a *applier, vals []cssom.Value) bool {
	o, ok := keywordOf(vals, css.OverflowKeywords)
	if ok {
		flags := a.style.EditFlags()
		flags.OverflowX, flags.OverflowY = o, o
	}
	return ok
}

// applyFont: [style || variant || weight] size [/ line-height] family.
// Line-height depends on the font size just set, so the longhands are
// applied in this order.
func applyFont(a *applier, vals []cssom.Value) bool {
	var (
		fontStyle                       css.FontStyle
		variant                         css.FontVariant
		weight                          = cssom.Value{Kind: cssom.ValueIdent, Text: "normal"}
		hasStyle, hasVariant, hasWeight bool
		i                               int
	)
	for ; i < len(vals) && i < 3; i++ {
		v := vals[i]
		if v.IsIdent("normal") {
			continue
		}
		if !hasStyle {
			if fs, ok := keywordOf(vals[i:i+1], css.FontStyleKeywords); ok {
				fontStyle, hasStyle = fs, true
				continue
			}
		}
		if !hasVariant {
			if fv, ok := keywordOf(vals[i:i+1], css.FontVariantKeywords); ok {
				variant, hasVariant = fv, true
				continue
			}
		}
		if !hasWeight {
			if _, ok := a.fontWeight(v); ok {
				weight, hasWeight = v, true
				continue
			}
		}
		break
	}
	if i >= len(vals) {
		return false
	}
	size := vals[i : i+1]
	i++
	var lineHeight []cssom.Value
	if i < len(vals) && vals[i].Kind == cssom.ValueSlash {
		if i+1 >= len(vals) {
			return false
		}
		lineHeight = vals[i+1 : i+2]
		i += 2
	}
	families, ok := fontFamilies(vals[i:])
	if !ok {
		return false
	}
	return a.transaction(func(b *applier) bool {
		w, _ := b.fontWeight(weight)
		inh := b.style.EditInherited()
		inh.FontStyle, inh.FontVariant, inh.FontWeight = fontStyle, variant, w
		inh.FontFamily = families
		if !applyFontSize(b, size) {
			return false
		}
		if lineHeight == nil {
			b.style.EditInherited().LineHeight = css.Auto()
			return true
		}
		return applyLineHeight(b, lineHeight)
	})
}

// applyListStyle: type || position || image. `none` sets whichever of
// type and image is not given otherwise.
func applyListStyle(a *applier, vals []cssom.Value) bool {
	var (
		typ                       = css.ListStyleDisc
		pos                       = css.ListStyleOutside
		image                     string
		hasType, hasPos, hasImage bool
		nones                     int
	)
	for _, v := range vals {
		switch {
		case v.IsIdent("none"):
			nones++
			continue
		case v.Kind == cssom.ValueURI && !hasImage:
			image, hasImage = v.Text, true
			continue
		}
		one := []cssom.Value{v}
		if t, ok := keywordOf(one, css.ListStyleTypeKeywords); ok && !hasType {
			typ, hasType = t, true
			continue
		}
		if p, ok := keywordOf(one, css.ListStylePositionKeywords); ok && !hasPos {
			pos, hasPos = p, true
			continue
		}
		return false
	}
	if nones > 0 && !hasType {
		typ = css.ListStyleNone
		nones--
	}
	if nones > 0 && !hasImage {
		nones-- // image is none already
	}
	if nones > 0 || len(vals) == 0 {
		return false
	}
	inh := a.style.EditInherited()
	inh.ListStyleType, inh.ListStylePosition, inh.ListStyleImage = typ, pos, image
	return true
}

// applyMarquee: direction || increment || repetition || style || speed.
func applyMarquee(a *applier, vals []cssom.Value) bool {
	m := *style.InitialStyle().Marquee()
	var hasDir, hasIncr, hasLoops, hasStyle, hasSpeed bool
	for _, v := range vals {
		one := []cssom.Value{v}
		if d, ok := keywordOf(one, css.MarqueeDirectionKeywords); ok && !hasDir {
			m.Direction, hasDir = d, true
			continue
		}
		if b, ok := keywordOf(one, css.MarqueeBehaviorKeywords); ok && !hasStyle {
			m.Behavior, hasStyle = b, true
			continue
		}
		if n, ok := marqueeLoopsOf(v); ok && !hasLoops {
			m.Loops, hasLoops = n, true
			continue
		}
		if s, ok := marqueeSpeedOf(v); ok && !hasSpeed && v.Kind != cssom.ValueNumber {
			m.Speed, hasSpeed = s, true
			continue
		}
		if d, ok := marqueeIncrementOf(a, v); ok && !hasIncr {
			m.Increment, hasIncr = d, true
			continue
		}
		return false
	}
	if len(vals) == 0 {
		return false
	}
	*a.style.EditMarquee() = m
	return true
}

// --- Background layers -----------------------------------------------------

// copyLayerField copies a single field of a background layer.
func copyLayerField(dst, src *style.BackgroundLayer, f style.LayerFields) {
	switch f {
	case style.LayerImage:
		dst.Image = src.Image
	case style.LayerRepeat:
		dst.Repeat = src.Repeat
	case style.LayerAttachment:
		dst.Attachment = src.Attachment
	case style.LayerPositionX:
		dst.PositionX = src.PositionX
	case style.LayerPositionY:
		dst.PositionY = src.PositionY
	case style.LayerClip:
		dst.Clip = src.Clip
	case style.LayerOrigin:
		dst.Origin = src.Origin
	case style.LayerSize:
		dst.SizeW, dst.SizeH = src.SizeW, src.SizeH
	}
}

type layerParser func(a *applier, vals []cssom.Value, l *style.BackgroundLayer) bool

// layerProp is for background longhands, which take a comma separated
// list of values, one per layer. Layers beyond the list get the field
// unset, to be filled by repeating the list when the background is
// compacted.
func layerProp(f style.LayerFields, parse layerParser) propertyDef {
	return propertyDef{
		apply: func(a *applier, vals []cssom.Value) bool {
			groups := splitCommas(vals)
			parsed := make([]style.BackgroundLayer, len(groups))
			for i, g := range groups {
				parsed[i] = style.InitialLayer()
				if len(g) == 0 || !parse(a, g, &parsed[i]) {
					return false
				}
			}
			bg := a.style.EditBackground()
			for i := range parsed {
				l := bg.Layer(i)
				copyLayerField(l, &parsed[i], f)
				l.Set |= f
			}
			for i := len(parsed); i < len(bg.Layers); i++ {
				bg.Layers[i].Set &^= f
			}
			return true
		},
		copy: func(dst, src *style.RenderStyle) {
			from := src.Background().Layers
			bg := dst.EditBackground()
			for i := range from {
				l := bg.Layer(i)
				copyLayerField(l, &from[i], f)
				l.Set = l.Set&^f | from[i].Set&f
			}
			for i := len(from); i < len(bg.Layers); i++ {
				bg.Layers[i].Set &^= f
			}
		},
	}
}

func parseLayerImage(_ *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	v, ok := single(vals)
	switch {
	case !ok:
		return false
	case v.IsIdent("none"):
		l.Image = ""
	case v.Kind == cssom.ValueURI:
		l.Image = v.Text
	default:
		return false
	}
	return true
}

func parseLayerRepeat(_ *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	r, ok := keywordOf(vals, css.BackgroundRepeatKeywords)
	l.Repeat = r
	return ok
}

func parseLayerAttachment(_ *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	att, ok := keywordOf(vals, css.BackgroundAttachmentKeywords)
	l.Attachment = att
	return ok
}

func parseLayerClip(_ *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	b, ok := keywordOf(vals, css.BackgroundBoxKeywords)
	l.Clip = b
	return ok
}

func parseLayerOrigin(_ *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	b, ok := keywordOf(vals, css.BackgroundBoxKeywords)
	l.Origin = b
	return ok
}

func parseLayerSize(a *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	if len(vals) < 1 || len(vals) > 2 {
		return false
	}
	w, ok := a.length(vals[0], allowAuto|allowPercent)
	if !ok {
		return false
	}
	h := css.Auto()
	if len(vals) == 2 {
		if h, ok = a.length(vals[1], allowAuto|allowPercent); !ok {
			return false
		}
	}
	l.SizeW, l.SizeH = w, h
	return true
}

func parseLayerPositionX(a *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	c, ok := a.positionComponent(vals)
	if !ok || c.axis == axisY {
		return false
	}
	l.PositionX = c.dimen
	return true
}

func parseLayerPositionY(a *applier, vals []cssom.Value, l *style.BackgroundLayer) bool {
	c, ok := a.positionComponent(vals)
	if !ok || c.axis == axisX {
		return false
	}
	l.PositionY = c.dimen
	return true
}

const (
	axisAny = iota
	axisX
	axisY
)

type positionComponent struct {
	dimen css.DimenT
	axis  int
}

func (a *applier) positionComponent(vals []cssom.Value) (positionComponent, bool) {
	v, ok := single(vals)
	if !ok {
		return positionComponent{}, false
	}
	if v.Kind == cssom.ValueIdent {
		switch {
		case v.IsIdent("left"):
			return positionComponent{css.Percentage(0), axisX}, true
		case v.IsIdent("right"):
			return positionComponent{css.Percentage(100), axisX}, true
		case v.IsIdent("top"):
			return positionComponent{css.Percentage(0), axisY}, true
		case v.IsIdent("bottom"):
			return positionComponent{css.Percentage(100), axisY}, true
		case v.IsIdent("center"):
			return positionComponent{css.Percentage(50), axisAny}, true
		}
		return positionComponent{}, false
	}
	d, ok := a.length(v, allowPercent|allowNegative)
	return positionComponent{d, axisAny}, ok
}

// backgroundPosition parses one or two position components. A single
// component leaves the other axis centered.
func (a *applier) backgroundPosition(vals []cssom.Value) (x, y css.DimenT, ok bool) {
	switch len(vals) {
	case 1:
		c, ok := a.positionComponent(vals)
		if !ok {
			return x, y, false
		}
		if c.axis == axisY {
			return css.Percentage(50), c.dimen, true
		}
		return c.dimen, css.Percentage(50), true
	case 2:
		c0, ok0 := a.positionComponent(vals[:1])
		c1, ok1 := a.positionComponent(vals[1:])
		if !ok0 || !ok1 {
			return x, y, false
		}
		if c0.axis == axisY || c1.axis == axisX {
			c0, c1 = c1, c0
		}
		if c0.axis == axisY || c1.axis == axisX {
			return x, y, false
		}
		return c0.dimen, c1.dimen, true
	}
	return x, y, false
}

func applyBackgroundPosition(a *applier, vals []cssom.Value) bool {
	groups := splitCommas(vals)
	xs := make([]style.BackgroundLayer, len(groups))
	for i, g := range groups {
		x, y, ok := a.backgroundPosition(g)
		if !ok {
			return false
		}
		xs[i].PositionX, xs[i].PositionY = x, y
	}
	bg := a.style.EditBackground()
	const both = style.LayerPositionX | style.LayerPositionY
	for i := range xs {
		l := bg.Layer(i)
		l.PositionX, l.PositionY = xs[i].PositionX, xs[i].PositionY
		l.Set |= both
	}
	for i := len(xs); i < len(bg.Layers); i++ {
		bg.Layers[i].Set &^= both
	}
	return true
}

// applyBackground parses a comma separated list of layers. Each layer may
// hold an image, repeat, attachment and position; the color is only
// allowed in the final layer.
func applyBackground(a *applier, vals []cssom.Value) bool {
	groups := splitCommas(vals)
	layers := make([]style.BackgroundLayer, len(groups))
	color := style.Transparent
	const all = style.LayerImage | style.LayerRepeat | style.LayerAttachment |
		style.LayerPositionX | style.LayerPositionY | style.LayerClip | style.LayerOrigin | style.LayerSize
	for i, g := range groups {
		if len(g) == 0 {
			return false
		}
		l := style.InitialLayer()
		l.Set = all
		var hasImage, hasRepeat, hasAttachment, hasPosition, hasColor bool
		for j := 0; j < len(g); j++ {
			v := g[j]
			one := g[j : j+1]
			if !hasImage && (v.IsIdent("none") || v.Kind == cssom.ValueURI) {
				parseLayerImage(a, one, &l)
				hasImage = true
				continue
			}
			if r, ok := keywordOf(one, css.BackgroundRepeatKeywords); ok && !hasRepeat {
				l.Repeat, hasRepeat = r, true
				continue
			}
			if att, ok := keywordOf(one, css.BackgroundAttachmentKeywords); ok && !hasAttachment {
				l.Attachment, hasAttachment = att, true
				continue
			}
			if _, ok := a.positionComponent(one); ok && !hasPosition {
				n := 1
				if j+1 < len(g) {
					if _, ok := a.positionComponent(g[j+1 : j+2]); ok {
						n = 2
					}
				}
				x, y, ok := a.backgroundPosition(g[j : j+n])
				if !ok {
					return false
				}
				l.PositionX, l.PositionY, hasPosition = x, y, true
				j += n - 1
				continue
			}
			if c, ok := a.color(v); ok && !hasColor && i == len(groups)-1 {
				color, hasColor = c, true
				continue
			}
			return false
		}
		layers[i] = l
	}
	bg := a.style.EditBackground()
	bg.Color = color
	bg.Layers = layers
	return true
}
