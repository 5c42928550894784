package css

import "strings"

// Keywords maps CSS identifiers to enum values of a keyword property.
type Keywords[T comparable] map[string]T

// Lookup finds the value for a (case-insensitive) keyword.
func (kw Keywords[T]) Lookup(s string) (T, bool) {
	v, ok := kw[strings.ToLower(s)]
	return v, ok
}

// Name returns the keyword for a value, or "?".
func (kw Keywords[T]) Name(v T) string {
	for k, x := range kw {
		if x == v {
			return k
		}
	}
	return "?"
}

// Position is an enum type for the CSS position property.
type Position uint8

// Values for property "position".
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

var PositionKeywords = Keywords[Position]{
	"static":   PositionStatic,
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
	"fixed":    PositionFixed,
}

func (p Position) String() string { return PositionKeywords.Name(p) }

// IsOutOfFlow is true for absolute and fixed positioning.
func (p Position) IsOutOfFlow() bool {
	return p == PositionAbsolute || p == PositionFixed
}

// Float is an enum type for the CSS float property.
type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

var FloatKeywords = Keywords[Float]{"none": FloatNone, "left": FloatLeft, "right": FloatRight}

func (f Float) String() string { return FloatKeywords.Name(f) }

// Clear is an enum type for the CSS clear property.
type Clear uint8

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

var ClearKeywords = Keywords[Clear]{"none": ClearNone, "left": ClearLeft, "right": ClearRight, "both": ClearBoth}

// Overflow is an enum type for CSS overflow-x/overflow-y.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
	OverflowMarquee
)

var OverflowKeywords = Keywords[Overflow]{
	"visible":        OverflowVisible,
	"hidden":         OverflowHidden,
	"scroll":         OverflowScroll,
	"auto":           OverflowAuto,
	"-khtml-marquee": OverflowMarquee,
}

func (o Overflow) String() string { return OverflowKeywords.Name(o) }

// Visibility is an enum type for the CSS visibility property.
type Visibility uint8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

var VisibilityKeywords = Keywords[Visibility]{
	"visible": VisibilityVisible, "hidden": VisibilityHidden, "collapse": VisibilityCollapse,
}

// TextAlign is an enum type for the CSS text-align property.
type TextAlign uint8

const (
	TextAlignAuto TextAlign = iota
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	TextAlignKhtmlLeft
	TextAlignKhtmlRight
	TextAlignKhtmlCenter
)

var TextAlignKeywords = Keywords[TextAlign]{
	"left":          TextAlignLeft,
	"right":         TextAlignRight,
	"center":        TextAlignCenter,
	"justify":       TextAlignJustify,
	"-khtml-left":   TextAlignKhtmlLeft,
	"-khtml-right":  TextAlignKhtmlRight,
	"-khtml-center": TextAlignKhtmlCenter,
	"-khtml-auto":   TextAlignAuto,
}

func (ta TextAlign) String() string {
	if ta == TextAlignAuto {
		return "auto"
	}
	return TextAlignKeywords.Name(ta)
}

// TextTransform is an enum type for the CSS text-transform property.
type TextTransform uint8

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
)

var TextTransformKeywords = Keywords[TextTransform]{
	"none": TextTransformNone, "capitalize": TextTransformCapitalize,
	"uppercase": TextTransformUppercase, "lowercase": TextTransformLowercase,
}

// WhiteSpace is an enum type for the CSS white-space property.
type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
	WhiteSpaceNowrap
	WhiteSpaceKhtmlNowrap
)

var WhiteSpaceKeywords = Keywords[WhiteSpace]{
	"normal": WhiteSpaceNormal, "pre": WhiteSpacePre, "pre-wrap": WhiteSpacePreWrap,
	"pre-line": WhiteSpacePreLine, "nowrap": WhiteSpaceNowrap, "-khtml-nowrap": WhiteSpaceKhtmlNowrap,
}

// Direction is an enum type for the CSS direction property.
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

var DirectionKeywords = Keywords[Direction]{"ltr": DirectionLTR, "rtl": DirectionRTL}

// UnicodeBidi is an enum type for the CSS unicode-bidi property.
type UnicodeBidi uint8

const (
	UnicodeBidiNormal UnicodeBidi = iota
	UnicodeBidiEmbed
	UnicodeBidiOverride
)

var UnicodeBidiKeywords = Keywords[UnicodeBidi]{
	"normal": UnicodeBidiNormal, "embed": UnicodeBidiEmbed, "bidi-override": UnicodeBidiOverride,
}

// VerticalAlign is an enum type for the keyword part of CSS vertical-align.
// VerticalAlignLength signals a length value held elsewhere.
type VerticalAlign uint8

const (
	VerticalAlignBaseline VerticalAlign = iota
	VerticalAlignMiddle
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTextTop
	VerticalAlignTextBottom
	VerticalAlignTop
	VerticalAlignBottom
	VerticalAlignBaselineMiddle
	VerticalAlignLength
)

var VerticalAlignKeywords = Keywords[VerticalAlign]{
	"baseline": VerticalAlignBaseline, "middle": VerticalAlignMiddle, "sub": VerticalAlignSub,
	"super": VerticalAlignSuper, "text-top": VerticalAlignTextTop, "text-bottom": VerticalAlignTextBottom,
	"top": VerticalAlignTop, "bottom": VerticalAlignBottom, "-khtml-baseline-middle": VerticalAlignBaselineMiddle,
}

// BorderStyle is an enum type for CSS border and outline styles.
type BorderStyle uint8

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleInset
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleOutset
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
)

var BorderStyleKeywords = Keywords[BorderStyle]{
	"none": BorderStyleNone, "hidden": BorderStyleHidden, "inset": BorderStyleInset,
	"groove": BorderStyleGroove, "ridge": BorderStyleRidge, "outset": BorderStyleOutset,
	"dotted": BorderStyleDotted, "dashed": BorderStyleDashed, "solid": BorderStyleSolid,
	"double": BorderStyleDouble,
}

// TextDecoration is a bit-set for CSS text-decoration.
type TextDecoration uint8

const (
	TextDecorationNone        TextDecoration = 0
	TextDecorationUnderline   TextDecoration = 0x01
	TextDecorationOverline    TextDecoration = 0x02
	TextDecorationLineThrough TextDecoration = 0x04
	TextDecorationBlink       TextDecoration = 0x08
)

var TextDecorationKeywords = Keywords[TextDecoration]{
	"none": TextDecorationNone, "underline": TextDecorationUnderline, "overline": TextDecorationOverline,
	"line-through": TextDecorationLineThrough, "blink": TextDecorationBlink,
}

// ListStyleType is an enum type for CSS list-style-type.
type ListStyleType uint8

const (
	ListStyleDisc ListStyleType = iota
	ListStyleCircle
	ListStyleSquare
	ListStyleBox
	ListStyleDecimal
	ListStyleDecimalLeadingZero
	ListStyleLowerRoman
	ListStyleUpperRoman
	ListStyleLowerGreek
	ListStyleLowerAlpha
	ListStyleUpperAlpha
	ListStyleLowerLatin
	ListStyleUpperLatin
	ListStyleHebrew
	ListStyleArmenian
	ListStyleGeorgian
	ListStyleCJKIdeographic
	ListStyleHiragana
	ListStyleKatakana
	ListStyleNone
)

var ListStyleTypeKeywords = Keywords[ListStyleType]{
	"disc": ListStyleDisc, "circle": ListStyleCircle, "square": ListStyleSquare, "box": ListStyleBox,
	"decimal": ListStyleDecimal, "decimal-leading-zero": ListStyleDecimalLeadingZero,
	"lower-roman": ListStyleLowerRoman, "upper-roman": ListStyleUpperRoman,
	"lower-greek": ListStyleLowerGreek, "lower-alpha": ListStyleLowerAlpha,
	"upper-alpha": ListStyleUpperAlpha, "lower-latin": ListStyleLowerLatin,
	"upper-latin": ListStyleUpperLatin, "hebrew": ListStyleHebrew, "armenian": ListStyleArmenian,
	"georgian": ListStyleGeorgian, "cjk-ideographic": ListStyleCJKIdeographic,
	"hiragana": ListStyleHiragana, "katakana": ListStyleKatakana, "none": ListStyleNone,
}

// ListStylePosition is an enum type for CSS list-style-position.
type ListStylePosition uint8

const (
	ListStyleOutside ListStylePosition = iota
	ListStyleInside
)

var ListStylePositionKeywords = Keywords[ListStylePosition]{"outside": ListStyleOutside, "inside": ListStyleInside}

// Cursor is an enum type for the CSS cursor property.
type Cursor uint8

const (
	CursorAuto Cursor = iota
	CursorDefault
	CursorPointer
	CursorCrosshair
	CursorMove
	CursorText
	CursorWait
	CursorHelp
	CursorProgress
	CursorResize
)

var CursorKeywords = Keywords[Cursor]{
	"auto": CursorAuto, "default": CursorDefault, "pointer": CursorPointer, "hand": CursorPointer,
	"crosshair": CursorCrosshair, "move": CursorMove, "text": CursorText, "wait": CursorWait,
	"help": CursorHelp, "progress": CursorProgress,
	"e-resize": CursorResize, "ne-resize": CursorResize, "nw-resize": CursorResize, "n-resize": CursorResize,
	"se-resize": CursorResize, "sw-resize": CursorResize, "s-resize": CursorResize, "w-resize": CursorResize,
}

// Table related enums.
type (
	BorderCollapse uint8
	CaptionSide    uint8
	EmptyCells     uint8
	TableLayout    uint8
)

const (
	BorderSeparate BorderCollapse = iota
	BorderCollapsed
)

const (
	CaptionTop CaptionSide = iota
	CaptionBottom
	CaptionLeft
	CaptionRight
)

const (
	EmptyCellsShow EmptyCells = iota
	EmptyCellsHide
)

const (
	TableLayoutAuto TableLayout = iota
	TableLayoutFixed
)

var BorderCollapseKeywords = Keywords[BorderCollapse]{"separate": BorderSeparate, "collapse": BorderCollapsed}
var CaptionSideKeywords = Keywords[CaptionSide]{
	"top": CaptionTop, "bottom": CaptionBottom, "left": CaptionLeft, "right": CaptionRight,
}
var EmptyCellsKeywords = Keywords[EmptyCells]{"show": EmptyCellsShow, "hide": EmptyCellsHide}
var TableLayoutKeywords = Keywords[TableLayout]{"auto": TableLayoutAuto, "fixed": TableLayoutFixed}

// PageBreak is an enum type for CSS page-break-before/after/inside.
type PageBreak uint8

const (
	PageBreakAuto PageBreak = iota
	PageBreakAlways
	PageBreakAvoid
	PageBreakLeft
	PageBreakRight
)

var PageBreakKeywords = Keywords[PageBreak]{
	"auto": PageBreakAuto, "always": PageBreakAlways, "avoid": PageBreakAvoid,
	"left": PageBreakLeft, "right": PageBreakRight,
}

// BoxSizing is an enum type for CSS box-sizing.
type BoxSizing uint8

const (
	ContentBox BoxSizing = iota
	BorderBox
)

var BoxSizingKeywords = Keywords[BoxSizing]{"content-box": ContentBox, "border-box": BorderBox}

// TextOverflow is an enum type for CSS text-overflow.
type TextOverflow uint8

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis
)

var TextOverflowKeywords = Keywords[TextOverflow]{"clip": TextOverflowClip, "ellipsis": TextOverflowEllipsis}

// Background layer enums.
type (
	BackgroundRepeat     uint8
	BackgroundAttachment uint8
	BackgroundBox        uint8
)

const (
	RepeatBoth BackgroundRepeat = iota
	RepeatX
	RepeatY
	NoRepeat
)

const (
	AttachmentScroll BackgroundAttachment = iota
	AttachmentFixed
	AttachmentLocal
)

const (
	BorderBoxArea BackgroundBox = iota
	PaddingBoxArea
	ContentBoxArea
)

var BackgroundRepeatKeywords = Keywords[BackgroundRepeat]{
	"repeat": RepeatBoth, "repeat-x": RepeatX, "repeat-y": RepeatY, "no-repeat": NoRepeat,
}
var BackgroundAttachmentKeywords = Keywords[BackgroundAttachment]{
	"scroll": AttachmentScroll, "fixed": AttachmentFixed, "local": AttachmentLocal,
}
var BackgroundBoxKeywords = Keywords[BackgroundBox]{
	"border-box": BorderBoxArea, "padding-box": PaddingBoxArea, "content-box": ContentBoxArea,
	"border": BorderBoxArea, "padding": PaddingBoxArea, "content": ContentBoxArea,
}

// Marquee enums for the -khtml-marquee properties.
type (
	MarqueeDirection uint8
	MarqueeBehavior  uint8
)

const (
	MarqueeAuto MarqueeDirection = iota
	MarqueeLeft
	MarqueeRight
	MarqueeUp
	MarqueeDown
	MarqueeForward
	MarqueeBackward
)

const (
	MarqueeScroll MarqueeBehavior = iota
	MarqueeSlide
	MarqueeAlternate
	MarqueeNone
)

var MarqueeDirectionKeywords = Keywords[MarqueeDirection]{
	"auto": MarqueeAuto, "left": MarqueeLeft, "right": MarqueeRight, "up": MarqueeUp,
	"down": MarqueeDown, "forwards": MarqueeForward, "ahead": MarqueeForward,
	"backwards": MarqueeBackward, "reverse": MarqueeBackward,
}
var MarqueeBehaviorKeywords = Keywords[MarqueeBehavior]{
	"scroll": MarqueeScroll, "slide": MarqueeSlide, "alternate": MarqueeAlternate, "none": MarqueeNone,
}

// FontVariant is an enum type for CSS font-variant.
type FontVariant uint8

const (
	FontVariantNormal FontVariant = iota
	FontVariantSmallCaps
)

var FontVariantKeywords = Keywords[FontVariant]{"normal": FontVariantNormal, "small-caps": FontVariantSmallCaps}

// FontStyle is an enum type for CSS font-style.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var FontStyleKeywords = Keywords[FontStyle]{
	"normal": FontStyleNormal, "italic": FontStyleItalic, "oblique": FontStyleOblique,
}

// Side is either Top, Right, Bottom or Left, in the order box shorthands
// distribute their values.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	return [...]string{"top", "right", "bottom", "left"}[s&3]
}
