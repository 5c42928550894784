package css

// Display is a type for CSS property "display".
type Display uint8

// Values for property "display".
const (
	DisplayInline Display = iota // initial value
	DisplayBlock
	DisplayListItem
	DisplayRunIn
	DisplayCompact
	DisplayInlineBlock
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayNone
)

// DisplayKeywords maps CSS keywords to display values.
var DisplayKeywords = Keywords[Display]{
	"inline":             DisplayInline,
	"block":              DisplayBlock,
	"list-item":          DisplayListItem,
	"run-in":             DisplayRunIn,
	"compact":            DisplayCompact,
	"inline-block":       DisplayInlineBlock,
	"table":              DisplayTable,
	"inline-table":       DisplayInlineTable,
	"table-row-group":    DisplayTableRowGroup,
	"table-header-group": DisplayTableHeaderGroup,
	"table-footer-group": DisplayTableFooterGroup,
	"table-row":          DisplayTableRow,
	"table-column-group": DisplayTableColumnGroup,
	"table-column":       DisplayTableColumn,
	"table-cell":         DisplayTableCell,
	"table-caption":      DisplayTableCaption,
	"none":               DisplayNone,
}

func (disp Display) String() string {
	return DisplayKeywords.Name(disp)
}

// IsInlineType is true for displays generating inline-level boxes.
func (disp Display) IsInlineType() bool {
	switch disp {
	case DisplayInline, DisplayInlineBlock, DisplayInlineTable, DisplayRunIn, DisplayCompact:
		return true
	}
	return false
}

// IsBlockLevel returns true if disp generates a block-level box.
//
// “The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.”
func (disp Display) IsBlockLevel() bool {
	return disp == DisplayBlock || disp == DisplayListItem || disp == DisplayTable
}

// IsTableType is true for all of the table-related displays.
func (disp Display) IsTableType() bool {
	return disp >= DisplayTable && disp <= DisplayTableCaption
}

// Symbol returns a Unicode symbol for a display mode.
func (disp Display) Symbol() string {
	switch {
	case disp == DisplayNone:
		return "–"
	case disp.IsTableType():
		return "▥"
	case disp == DisplayListItem:
		return "▣"
	case disp == DisplayBlock || disp == DisplayInlineBlock:
		return "▩"
	}
	return "►"
}
