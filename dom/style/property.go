package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.style'
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}

// PropertyID identifies a CSS property known to the cascade.
// Shorthand properties have IDs as well, but are never stored in a style.
type PropertyID uint16

// PropertyUnknown is the ID for every property name we do not support.
// Declarations for it are silently ignored.
const PropertyUnknown PropertyID = 0

// Property IDs, longhands first.
const (
	PropColor PropertyID = iota + 1
	PropDirection
	PropDisplay
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontVariant
	PropFontWeight
	PropLineHeight
	PropTextAlign
	PropTextIndent
	PropTextTransform
	PropTextDecoration
	PropLetterSpacing
	PropWordSpacing
	PropWhiteSpace
	PropUnicodeBidi
	PropVisibility
	PropCursor
	PropListStyleType
	PropListStylePosition
	PropListStyleImage
	PropBorderCollapse
	PropBorderSpacing
	PropCaptionSide
	PropEmptyCells
	PropQuotes
	PropOrphans
	PropWidows
	PropPageBreakInside
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropVerticalAlign
	PropZIndex
	PropBoxSizing
	PropTop
	PropRight
	PropBottom
	PropLeft
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle
	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor
	PropOutlineWidth
	PropOutlineStyle
	PropOutlineColor
	PropOutlineOffset
	PropPosition
	PropFloat
	PropClear
	PropOverflowX
	PropOverflowY
	PropTableLayout
	PropPageBreakBefore
	PropPageBreakAfter
	PropClip
	PropOpacity
	PropTextOverflow
	PropBackgroundColor
	PropBackgroundImage
	PropBackgroundRepeat
	PropBackgroundAttachment
	PropBackgroundPositionX
	PropBackgroundPositionY
	PropBackgroundClip
	PropBackgroundOrigin
	PropBackgroundSize
	PropContent
	PropCounterReset
	PropCounterIncrement
	PropMarqueeIncrement
	PropMarqueeSpeed
	PropMarqueeRepetition
	PropMarqueeStyle
	PropMarqueeDirection
	// shorthands
	PropFont
	PropListStyle
	PropMargin
	PropPadding
	PropBorder
	PropBorderTop
	PropBorderRight
	PropBorderBottom
	PropBorderLeft
	PropBorderWidth
	PropBorderStyle
	PropBorderColor
	PropOutline
	PropOverflow
	PropBackground
	PropBackgroundPosition
	PropMarquee
	propertyCount
)

// Group is a collection of properties sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups, which are the unit of sharing between styles.
type Group uint8

// Property groups. Only GroupInherited holds inherited properties.
const (
	GroupInherited Group = iota
	GroupBox
	GroupSurround
	GroupVisual
	GroupBackground
	GroupFlags
	GroupGenerated
	GroupMarquee
	groupCount
)

var groupNames = [groupCount]string{
	"Inherited", "Box", "Surround", "Visual", "Background", "Flags", "Generated", "Marquee",
}

func (g Group) String() string {
	if g >= groupCount {
		return "X"
	}
	return groupNames[g]
}

type propertyInfo struct {
	name      string
	group     Group
	inherited bool
	first     bool // applied early, as other properties depend on it
	longhands []PropertyID
}

var properties = [propertyCount]propertyInfo{
	PropertyUnknown:          {name: "?"},
	PropColor:                {name: "color", inherited: true, first: true},
	PropDirection:            {name: "direction", inherited: true, first: true},
	PropDisplay:              {name: "display", group: GroupFlags, first: true},
	PropFontFamily:           {name: "font-family", inherited: true, first: true},
	PropFontSize:             {name: "font-size", inherited: true, first: true},
	PropFontStyle:            {name: "font-style", inherited: true, first: true},
	PropFontVariant:          {name: "font-variant", inherited: true, first: true},
	PropFontWeight:           {name: "font-weight", inherited: true, first: true},
	PropLineHeight:           {name: "line-height", inherited: true},
	PropTextAlign:            {name: "text-align", inherited: true},
	PropTextIndent:           {name: "text-indent", inherited: true},
	PropTextTransform:        {name: "text-transform", inherited: true},
	PropTextDecoration:       {name: "text-decoration", group: GroupVisual},
	PropLetterSpacing:        {name: "letter-spacing", inherited: true},
	PropWordSpacing:          {name: "word-spacing", inherited: true},
	PropWhiteSpace:           {name: "white-space", inherited: true},
	PropUnicodeBidi:          {name: "unicode-bidi", group: GroupFlags},
	PropVisibility:           {name: "visibility", inherited: true},
	PropCursor:               {name: "cursor", inherited: true},
	PropListStyleType:        {name: "list-style-type", inherited: true},
	PropListStylePosition:    {name: "list-style-position", inherited: true},
	PropListStyleImage:       {name: "list-style-image", inherited: true},
	PropBorderCollapse:       {name: "border-collapse", inherited: true},
	PropBorderSpacing:        {name: "border-spacing", inherited: true},
	PropCaptionSide:          {name: "caption-side", inherited: true},
	PropEmptyCells:           {name: "empty-cells", inherited: true},
	PropQuotes:               {name: "quotes", inherited: true},
	PropOrphans:              {name: "orphans", inherited: true},
	PropWidows:               {name: "widows", inherited: true},
	PropPageBreakInside:      {name: "page-break-inside", inherited: true},
	PropWidth:                {name: "width", group: GroupBox},
	PropHeight:               {name: "height", group: GroupBox},
	PropMinWidth:             {name: "min-width", group: GroupBox},
	PropMinHeight:            {name: "min-height", group: GroupBox},
	PropMaxWidth:             {name: "max-width", group: GroupBox},
	PropMaxHeight:            {name: "max-height", group: GroupBox},
	PropVerticalAlign:        {name: "vertical-align", group: GroupBox},
	PropZIndex:               {name: "z-index", group: GroupBox},
	PropBoxSizing:            {name: "box-sizing", group: GroupBox},
	PropTop:                  {name: "top", group: GroupSurround},
	PropRight:                {name: "right", group: GroupSurround},
	PropBottom:               {name: "bottom", group: GroupSurround},
	PropLeft:                 {name: "left", group: GroupSurround},
	PropMarginTop:            {name: "margin-top", group: GroupSurround},
	PropMarginRight:          {name: "margin-right", group: GroupSurround},
	PropMarginBottom:         {name: "margin-bottom", group: GroupSurround},
	PropMarginLeft:           {name: "margin-left", group: GroupSurround},
	PropPaddingTop:           {name: "padding-top", group: GroupSurround},
	PropPaddingRight:         {name: "padding-right", group: GroupSurround},
	PropPaddingBottom:        {name: "padding-bottom", group: GroupSurround},
	PropPaddingLeft:          {name: "padding-left", group: GroupSurround},
	PropBorderTopWidth:       {name: "border-top-width", group: GroupSurround},
	PropBorderRightWidth:     {name: "border-right-width", group: GroupSurround},
	PropBorderBottomWidth:    {name: "border-bottom-width", group: GroupSurround},
	PropBorderLeftWidth:      {name: "border-left-width", group: GroupSurround},
	PropBorderTopStyle:       {name: "border-top-style", group: GroupSurround},
	PropBorderRightStyle:     {name: "border-right-style", group: GroupSurround},
	PropBorderBottomStyle:    {name: "border-bottom-style", group: GroupSurround},
	PropBorderLeftStyle:      {name: "border-left-style", group: GroupSurround},
	PropBorderTopColor:       {name: "border-top-color", group: GroupSurround},
	PropBorderRightColor:     {name: "border-right-color", group: GroupSurround},
	PropBorderBottomColor:    {name: "border-bottom-color", group: GroupSurround},
	PropBorderLeftColor:      {name: "border-left-color", group: GroupSurround},
	PropOutlineWidth:         {name: "outline-width", group: GroupSurround},
	PropOutlineStyle:         {name: "outline-style", group: GroupSurround},
	PropOutlineColor:         {name: "outline-color", group: GroupSurround},
	PropOutlineOffset:        {name: "outline-offset", group: GroupSurround},
	PropPosition:             {name: "position", group: GroupFlags},
	PropFloat:                {name: "float", group: GroupFlags},
	PropClear:                {name: "clear", group: GroupFlags},
	PropOverflowX:            {name: "overflow-x", group: GroupFlags},
	PropOverflowY:            {name: "overflow-y", group: GroupFlags},
	PropTableLayout:          {name: "table-layout", group: GroupFlags},
	PropPageBreakBefore:      {name: "page-break-before", group: GroupFlags},
	PropPageBreakAfter:       {name: "page-break-after", group: GroupFlags},
	PropClip:                 {name: "clip", group: GroupVisual},
	PropOpacity:              {name: "opacity", group: GroupVisual},
	PropTextOverflow:         {name: "text-overflow", group: GroupVisual},
	PropBackgroundColor:      {name: "background-color", group: GroupBackground},
	PropBackgroundImage:      {name: "background-image", group: GroupBackground},
	PropBackgroundRepeat:     {name: "background-repeat", group: GroupBackground},
	PropBackgroundAttachment: {name: "background-attachment", group: GroupBackground},
	PropBackgroundPositionX:  {name: "background-position-x", group: GroupBackground},
	PropBackgroundPositionY:  {name: "background-position-y", group: GroupBackground},
	PropBackgroundClip:       {name: "background-clip", group: GroupBackground},
	PropBackgroundOrigin:     {name: "background-origin", group: GroupBackground},
	PropBackgroundSize:       {name: "background-size", group: GroupBackground},
	PropContent:              {name: "content", group: GroupGenerated},
	PropCounterReset:         {name: "counter-reset", group: GroupGenerated},
	PropCounterIncrement:     {name: "counter-increment", group: GroupGenerated},
	PropMarqueeIncrement:     {name: "-khtml-marquee-increment", group: GroupMarquee},
	PropMarqueeSpeed:         {name: "-khtml-marquee-speed", group: GroupMarquee},
	PropMarqueeRepetition:    {name: "-khtml-marquee-repetition", group: GroupMarquee},
	PropMarqueeStyle:         {name: "-khtml-marquee-style", group: GroupMarquee},
	PropMarqueeDirection:     {name: "-khtml-marquee-direction", group: GroupMarquee},
	PropFont: {name: "font", first: true, longhands: []PropertyID{
		PropFontStyle, PropFontVariant, PropFontWeight, PropFontSize, PropLineHeight, PropFontFamily}},
	PropListStyle: {name: "list-style", longhands: []PropertyID{
		PropListStyleType, PropListStylePosition, PropListStyleImage}},
	PropMargin: {name: "margin", longhands: []PropertyID{
		PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft}},
	PropPadding: {name: "padding", longhands: []PropertyID{
		PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft}},
	PropBorder: {name: "border", longhands: []PropertyID{
		PropBorderTop, PropBorderRight, PropBorderBottom, PropBorderLeft}},
	PropBorderTop: {name: "border-top", longhands: []PropertyID{
		PropBorderTopWidth, PropBorderTopStyle, PropBorderTopColor}},
	PropBorderRight: {name: "border-right", longhands: []PropertyID{
		PropBorderRightWidth, PropBorderRightStyle, PropBorderRightColor}},
	PropBorderBottom: {name: "border-bottom", longhands: []PropertyID{
		PropBorderBottomWidth, PropBorderBottomStyle, PropBorderBottomColor}},
	PropBorderLeft: {name: "border-left", longhands: []PropertyID{
		PropBorderLeftWidth, PropBorderLeftStyle, PropBorderLeftColor}},
	PropBorderWidth: {name: "border-width", longhands: []PropertyID{
		PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth}},
	PropBorderStyle: {name: "border-style", longhands: []PropertyID{
		PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle}},
	PropBorderColor: {name: "border-color", longhands: []PropertyID{
		PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor}},
	PropOutline: {name: "outline", longhands: []PropertyID{
		PropOutlineWidth, PropOutlineStyle, PropOutlineColor}},
	PropOverflow: {name: "overflow", longhands: []PropertyID{PropOverflowX, PropOverflowY}},
	PropBackground: {name: "background", longhands: []PropertyID{
		PropBackgroundColor, PropBackgroundImage, PropBackgroundRepeat, PropBackgroundAttachment,
		PropBackgroundPositionX, PropBackgroundPositionY}},
	PropBackgroundPosition: {name: "background-position", longhands: []PropertyID{
		PropBackgroundPositionX, PropBackgroundPositionY}},
	PropMarquee: {name: "-khtml-marquee", longhands: []PropertyID{
		PropMarqueeDirection, PropMarqueeIncrement, PropMarqueeRepetition, PropMarqueeStyle,
		PropMarqueeSpeed}},
}

var propertyByName map[string]PropertyID

func init() {
	propertyByName = make(map[string]PropertyID, propertyCount)
	for id := PropertyID(1); id < propertyCount; id++ {
		propertyByName[properties[id].name] = id
	}
	propertyByName["-khtml-marquee-loop"] = PropMarqueeRepetition
	propertyByName["-khtml-user-select"] = PropertyUnknown
}

// PropertyByName returns the ID for a property name. Property names are
// case-insensitive. Unknown names return PropertyUnknown and false.
func PropertyByName(name string) (PropertyID, bool) {
	id, ok := propertyByName[strings.ToLower(strings.TrimSpace(name))]
	return id, ok && id != PropertyUnknown
}

// PropertyCount is the number of property IDs, including PropertyUnknown.
func PropertyCount() int {
	return int(propertyCount)
}

// Name returns the CSS name of a property.
func (id PropertyID) Name() string {
	if id >= propertyCount {
		return "?"
	}
	return properties[id].name
}

func (id PropertyID) String() string {
	return id.Name()
}

// IsInherited returns wether the standard behaviour for a propery is to be
// inherited or not.
func (id PropertyID) IsInherited() bool {
	return id < propertyCount && properties[id].inherited
}

// AppliesFirst is true for the properties other properties depend upon:
// fonts, color, direction and display. They are applied before all others.
func (id PropertyID) AppliesFirst() bool {
	return id < propertyCount && properties[id].first
}

// IsShorthand is true for shorthand properties like `margin`.
func (id PropertyID) IsShorthand() bool {
	return id < propertyCount && len(properties[id].longhands) > 0
}

// Longhands returns the properties a shorthand expands to, in the order
// they have to be applied. Longhands of `border` are shorthands themselves.
func (id PropertyID) Longhands() []PropertyID {
	if id >= propertyCount {
		return nil
	}
	return properties[id].longhands
}

// Group returns the property group a longhand property lives in.
func (id PropertyID) Group() Group {
	if id >= propertyCount {
		return groupCount
	}
	if properties[id].inherited {
		return GroupInherited
	}
	return properties[id].group
}

// ExpandBox distributes 1 to 4 values of a box shorthand like `margin` or
// `border-color` onto the four sides top, right, bottom and left.
//
// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func ExpandBox[T any](fields []T) (r [4]T, ok bool) {
	l := len(fields)
	if l == 0 || l > 4 {
		return r, false
	}
	r[0] = fields[0]
	switch l {
	case 1:
		r[1], r[2], r[3] = fields[0], fields[0], fields[0]
	case 2:
		r[1], r[2], r[3] = fields[1], fields[0], fields[1]
	case 3:
		r[1], r[2], r[3] = fields[1], fields[2], fields[1]
	case 4:
		r[1], r[2], r[3] = fields[1], fields[2], fields[3]
	}
	return r, true
}
