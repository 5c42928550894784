package style

import "github.com/npillmayer/cascade/css"

// Initial values for all properties, as defined by CSS 2.1.
// These groups are shared by every fresh style and are never edited.

// DefaultFontSize is the initial font size in px, i.e. `medium` at 96 dpi.
// The cascade replaces it by the configured size for root elements.
const DefaultFontSize = 16.0

// MediumBorderWidth is the width of the `medium` border keyword in px.
const MediumBorderWidth = 3.0

var initialInherited = Inherited{
	Color:          Black,
	FontSize:       DefaultFontSize,
	FontKeyword:    1 + css.FontSizeMedium,
	FontWeight:     400,
	LineHeight:     css.Auto(),
	TextIndent:     css.Zero(),
	Visibility:     css.VisibilityVisible,
	ListStyleType:  css.ListStyleDisc,
	Orphans:        2,
	Widows:         2,
	TextAlign:      css.TextAlignAuto,
	WhiteSpace:     css.WhiteSpaceNormal,
	Direction:      css.DirectionLTR,
	BorderCollapse: css.BorderSeparate,
}

var initialBox = Box{
	Width:         css.Auto(),
	Height:        css.Auto(),
	MinWidth:      css.Zero(),
	MinHeight:     css.Zero(),
	MaxWidth:      css.Unbounded(),
	MaxHeight:     css.Unbounded(),
	VerticalAlign: css.VerticalAlignBaseline,
	ZAuto:         true,
}

var initialEdge = BorderEdge{Width: MediumBorderWidth, Style: css.BorderStyleNone}

var initialSurround = Surround{
	Offset:  [4]css.DimenT{css.Auto(), css.Auto(), css.Auto(), css.Auto()},
	Margin:  [4]css.DimenT{css.Zero(), css.Zero(), css.Zero(), css.Zero()},
	Padding: [4]css.DimenT{css.Zero(), css.Zero(), css.Zero(), css.Zero()},
	Border:  [4]BorderEdge{initialEdge, initialEdge, initialEdge, initialEdge},
	Outline: initialEdge,
}

var initialVisual = Visual{
	Clip:    [4]css.DimenT{css.Auto(), css.Auto(), css.Auto(), css.Auto()},
	Opacity: 1,
}

var initialLayer = BackgroundLayer{
	PositionX:  css.Percentage(0),
	PositionY:  css.Percentage(0),
	Repeat:     css.RepeatBoth,
	Attachment: css.AttachmentScroll,
	Clip:       css.BorderBoxArea,
	Origin:     css.PaddingBoxArea,
	SizeW:      css.Auto(),
	SizeH:      css.Auto(),
}

var initialBackground = Background{
	Color:  Transparent,
	Layers: []BackgroundLayer{initialLayer},
}

var initialFlags = Flags{
	Display:         css.DisplayInline,
	OriginalDisplay: css.DisplayInline,
	Position:        css.PositionStatic,
	OverflowX:       css.OverflowVisible,
	OverflowY:       css.OverflowVisible,
}

var initialGenerated = Generated{}

var initialMarquee = Marquee{
	Increment: css.Px(6),
	Speed:     85,
	Loops:     -1,
	Behavior:  css.MarqueeScroll,
	Direction: css.MarqueeAuto,
}

// InitialLayer returns a background layer with initial values.
func InitialLayer() BackgroundLayer {
	return initialLayer
}

var initialStyle = New()

// InitialStyle returns a shared style holding the initial values of all
// properties. The cascade uses it to implement the `initial` keyword.
// It must never be edited.
func InitialStyle() *RenderStyle {
	return initialStyle
}
