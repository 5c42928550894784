package style

import "github.com/npillmayer/cascade/css"

// Property groups are plain structs. A style shares group values with
// other styles as long as it does not edit them. Slices inside a group are
// never modified in place, but replaced as a whole; background layers are
// the exception and are copied on edit.

// Inherited is the group of all inherited properties.
type Inherited struct {
	Color             Color
	FontFamily        []string // nil is the UA default font
	FontSize          float64  // computed size in px
	FontKeyword       int      // 1+index into the font size table, if set by keyword; else 0
	FontWeight        int
	FontStyle         css.FontStyle
	FontVariant       css.FontVariant
	LineHeight        css.DimenT // auto means `normal`; a number n is kept as n*100 %
	TextAlign         css.TextAlign
	TextIndent        css.DimenT
	TextTransform     css.TextTransform
	LetterSpacing     float64 // px
	WordSpacing       float64 // px
	WhiteSpace        css.WhiteSpace
	Direction         css.Direction
	Visibility        css.Visibility
	Cursor            css.Cursor
	ListStyleType     css.ListStyleType
	ListStylePosition css.ListStylePosition
	ListStyleImage    string
	BorderCollapse    css.BorderCollapse
	BorderSpacingH    float64
	BorderSpacingV    float64
	CaptionSide       css.CaptionSide
	EmptyCells        css.EmptyCells
	Quotes            []string // pairs of open/close quotes; nil is the UA default
	Orphans           int
	Widows            int
	PageBreakInside   css.PageBreak
	// text decorations of this element and its ancestors which are to be drawn
	DecorationsInEffect css.TextDecoration
}

// Box holds dimensions of the box.
type Box struct {
	Width, Height       css.DimenT
	MinWidth, MinHeight css.DimenT
	MaxWidth, MaxHeight css.DimenT
	VerticalAlign       css.VerticalAlign
	VerticalAlignLength css.DimenT // valid for VerticalAlignLength only
	ZIndex              int
	ZAuto               bool
	BoxSizing           css.BoxSizing
}

// BorderEdge is one of the four borders, or the outline.
type BorderEdge struct {
	Width float64 // px
	Style css.BorderStyle
	Color Color // invalid: use `color`
}

// ComputedWidth is 0 for borders of style none or hidden.
func (e BorderEdge) ComputedWidth() float64 {
	if e.Style == css.BorderStyleNone || e.Style == css.BorderStyleHidden {
		return 0
	}
	return e.Width
}

// Surround holds offsets, margins, paddings, borders and the outline,
// indexed by css.Side.
type Surround struct {
	Offset        [4]css.DimenT
	Margin        [4]css.DimenT
	Padding       [4]css.DimenT
	Border        [4]BorderEdge
	Outline       BorderEdge
	OutlineOffset float64
}

// Visual holds non-inherited properties of visual effects.
type Visual struct {
	Clip           [4]css.DimenT // valid if HasClip is set
	HasClip        bool
	TextDecoration css.TextDecoration
	Opacity        float64
	TextOverflow   css.TextOverflow
}

// LayerFields flags which properties of a background layer have been set
// explicitly.
type LayerFields uint8

// Fields of a background layer.
const (
	LayerImage LayerFields = 1 << iota
	LayerRepeat
	LayerAttachment
	LayerPositionX
	LayerPositionY
	LayerClip
	LayerOrigin
	LayerSize
)

// BackgroundLayer is one layer of a (possibly multi-layered) background.
type BackgroundLayer struct {
	Image      string // URI, empty for none
	PositionX  css.DimenT
	PositionY  css.DimenT
	Repeat     css.BackgroundRepeat
	Attachment css.BackgroundAttachment
	Clip       css.BackgroundBox
	Origin     css.BackgroundBox
	SizeW      css.DimenT
	SizeH      css.DimenT
	Set        LayerFields
}

// Background holds the background color and layers. There is always at
// least one layer.
type Background struct {
	Color  Color
	Layers []BackgroundLayer
}

// Layer returns layer i, appending fresh layers if necessary.
func (bg *Background) Layer(i int) *BackgroundLayer {
	for len(bg.Layers) <= i {
		bg.Layers = append(bg.Layers, initialLayer)
	}
	return &bg.Layers[i]
}

// Compact removes trailing layers without an image (keeping at least one
// layer) and fills fields not set explicitly by repeating the values of
// the preceding layers cyclically.
func (bg *Background) Compact() {
	n := len(bg.Layers)
	for n > 1 && bg.Layers[n-1].Set&LayerImage == 0 {
		n--
	}
	bg.Layers = bg.Layers[:n]
	for _, f := range []LayerFields{LayerImage, LayerRepeat, LayerAttachment, LayerPositionX,
		LayerPositionY, LayerClip, LayerOrigin, LayerSize} {
		fillLayers(bg.Layers, f)
	}
}

func fillLayers(layers []BackgroundLayer, f LayerFields) {
	set := 0
	for set < len(layers) && layers[set].Set&f != 0 {
		set++
	}
	if set == 0 || set == len(layers) {
		return
	}
	for i := set; i < len(layers); i++ {
		src := &layers[i%set]
		dst := &layers[i]
		switch f {
		case LayerImage:
			dst.Image = src.Image
		case LayerRepeat:
			dst.Repeat = src.Repeat
		case LayerAttachment:
			dst.Attachment = src.Attachment
		case LayerPositionX:
			dst.PositionX = src.PositionX
		case LayerPositionY:
			dst.PositionY = src.PositionY
		case LayerClip:
			dst.Clip = src.Clip
		case LayerOrigin:
			dst.Origin = src.Origin
		case LayerSize:
			dst.SizeW, dst.SizeH = src.SizeW, src.SizeH
		}
	}
}

// Flags holds non-inherited keyword properties.
type Flags struct {
	Display         css.Display
	OriginalDisplay css.Display
	Position        css.Position
	Float           css.Float
	Clear           css.Clear
	OverflowX       css.Overflow
	OverflowY       css.Overflow
	UnicodeBidi     css.UnicodeBidi
	TableLayout     css.TableLayout
	PageBreakBefore css.PageBreak
	PageBreakAfter  css.PageBreak
	Affected        Affinity
}

// Affinity records which dynamic states rules applied to an element
// depend upon.
type Affinity uint8

// Dynamic states.
const (
	AffectedByHover Affinity = 1 << iota
	AffectedByActive
	AffectedByFocus
)

// ContentKind is the kind of an item of the `content` property.
type ContentKind uint8

// Kinds of content items.
const (
	ContentNone ContentKind = iota
	ContentText
	ContentURI
	ContentCounter
	ContentCounters
	ContentAttr
	ContentOpenQuote
	ContentCloseQuote
	ContentNoOpenQuote
	ContentNoCloseQuote
)

// ContentItem is a single item of generated content.
type ContentItem struct {
	Kind  ContentKind
	Value string // text, URI, attribute name or counter arguments
}

// Counter is a directive of counter-reset or counter-increment.
type Counter struct {
	Name  string
	Value int
}

// Generated holds properties of generated content. Content is nil for
// `normal`.
type Generated struct {
	Content          []ContentItem
	CounterReset     []Counter
	CounterIncrement []Counter
}

// Marquee holds the -khtml-marquee properties.
type Marquee struct {
	Increment css.DimenT
	Speed     int
	Loops     int // -1 is infinite
	Behavior  css.MarqueeBehavior
	Direction css.MarqueeDirection
}
