package cascade

import (
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"golang.org/x/net/html/atom"
)

// adjustRenderStyle normalizes a style after the cascade. e is nil for
// pseudo-element styles, parent is nil for the root element.
//
// Edits are done only if a value actually changes, to keep groups shared
// with the parent and the initial style as long as possible.
func adjustRenderStyle(rs, parent *style.RenderStyle, e w3cdom.Element, quirks bool) {
	if rs.Flags().OriginalDisplay != rs.Display() {
		rs.EditFlags().OriginalDisplay = rs.Display()
	}
	var tag atom.Atom
	isRoot := false
	if e != nil {
		tag = e.Atom()
		isRoot = e.ParentElement() == nil
	}
	switch tag {
	case atom.Frame: // frames ignore display:none
		setPosition(rs, css.PositionStatic)
		setDisplay(rs, css.DisplayBlock)
	case atom.Frameset:
		setPosition(rs, css.PositionStatic)
	}
	if rs.Display() != css.DisplayNone {
		if quirks {
			switch tag {
			case atom.Td:
				setDisplay(rs, css.DisplayTableCell)
				setFloat(rs, css.FloatNone)
			case atom.Table:
				if rs.Display().IsInlineType() {
					setDisplay(rs, css.DisplayInlineTable)
				} else {
					setDisplay(rs, css.DisplayTable)
				}
			}
		}
		if tag == atom.Th && rs.Inherited().TextAlign == css.TextAlignAuto {
			rs.EditInherited().TextAlign = css.TextAlignCenter
		}
		if rs.Position() == css.PositionRelative {
			switch rs.Display() {
			case css.DisplayTableRowGroup, css.DisplayTableHeaderGroup, css.DisplayTableFooterGroup,
				css.DisplayTableRow:
				setPosition(rs, css.PositionStatic)
			}
		}
		if rs.Position().IsOutOfFlow() || rs.IsFloating() || isRoot {
			blockify(rs, quirks)
		}
		if rs.Position().IsOutOfFlow() {
			setFloat(rs, css.FloatNone)
		}
		if tag == atom.Button && rs.Display() == css.DisplayInline {
			setDisplay(rs, css.DisplayInlineBlock)
		}
	}
	adjustDecorations(rs, parent)
	adjustOverflow(rs)
	switch rs.Display() {
	case css.DisplayTable, css.DisplayInlineTable:
		switch rs.Inherited().TextAlign {
		case css.TextAlignKhtmlLeft, css.TextAlignKhtmlRight, css.TextAlignKhtmlCenter:
			rs.EditInherited().TextAlign = css.TextAlignAuto
		}
	}
	if len(rs.BackgroundLayers()) > 1 {
		rs.EditBackground().Compact()
	}
}

// blockify turns displays into block-level ones for floated and
// positioned elements, and for the root element.
func blockify(rs *style.RenderStyle, quirks bool) {
	switch rs.Display() {
	case css.DisplayNone, css.DisplayBlock, css.DisplayTable:
	case css.DisplayInlineTable:
		setDisplay(rs, css.DisplayTable)
	case css.DisplayListItem:
		// floated list items lose their markers, but only in quirks mode
		if quirks && rs.IsFloating() {
			setDisplay(rs, css.DisplayBlock)
		}
	default:
		setDisplay(rs, css.DisplayBlock)
	}
}

// adjustDecorations computes the text decorations in effect. Decorations
// do not propagate into tables, inline-blocks and run-ins.
func adjustDecorations(rs, parent *style.RenderStyle) {
	deco := rs.Visual().TextDecoration
	switch rs.Display() {
	case css.DisplayTable, css.DisplayInlineTable, css.DisplayRunIn, css.DisplayInlineBlock:
	default:
		if parent != nil {
			deco |= parent.TextDecorationsInEffect()
		}
	}
	if rs.TextDecorationsInEffect() != deco {
		rs.EditInherited().DecorationsInEffect = deco
	}
}

func adjustOverflow(rs *style.RenderStyle) {
	x, y := rs.Flags().OverflowX, rs.Flags().OverflowY
	switch {
	case (x == css.OverflowMarquee) != (y == css.OverflowMarquee):
		x, y = css.OverflowAuto, css.OverflowAuto
	case x == css.OverflowVisible && y != css.OverflowVisible:
		x = css.OverflowAuto
	case y == css.OverflowVisible && x != css.OverflowVisible:
		y = css.OverflowAuto
	}
	switch rs.Display() {
	case css.DisplayTable, css.DisplayInlineTable, css.DisplayTableRowGroup, css.DisplayTableHeaderGroup,
		css.DisplayTableFooterGroup, css.DisplayTableRow:
		x, y = noScrolling(x), noScrolling(y)
	}
	if x != rs.Flags().OverflowX || y != rs.Flags().OverflowY {
		flags := rs.EditFlags()
		flags.OverflowX, flags.OverflowY = x, y
	}
}

func noScrolling(o css.Overflow) css.Overflow {
	if o == css.OverflowScroll || o == css.OverflowAuto {
		return css.OverflowVisible
	}
	return o
}

func setDisplay(rs *style.RenderStyle, d css.Display) {
	if rs.Display() != d {
		rs.EditFlags().Display = d
	}
}

func setPosition(rs *style.RenderStyle, p css.Position) {
	if rs.Position() != p {
		rs.EditFlags().Position = p
	}
}

func setFloat(rs *style.RenderStyle, f css.Float) {
	if rs.Float() != f {
		rs.EditFlags().Float = f
	}
}
