package cascade

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"golang.org/x/net/html/atom"
)

// presentationalHints derives declarations from presentational attributes
// of HTML elements, like `bgcolor` or `width`. They enter the cascade with
// tier NonCSSHint, below any user or author rule.
//
// Hints which can be expressed with attribute selectors (`hidden`, `dir`,
// `align=center` for tables) are part of the hints style sheet of the
// registry instead.
func presentationalHints(e w3cdom.Element) []cssom.Declaration {
	if ns := e.Namespace(); ns != "" && ns != xhtmlNamespace {
		return nil
	}
	h := hints{e: e}
	tag := e.Atom()
	switch tag {
	case atom.Body:
		h.color("bgcolor", "background-color")
		h.color("text", "color")
	case atom.Table:
		h.color("bgcolor", "background-color")
		h.dimensions()
		h.tableBorder()
		if v, ok := h.pixels("cellspacing"); ok {
			h.add("border-spacing", v)
		}
		switch h.attr("align") {
		case "left", "right":
			h.add("float", h.attr("align"))
		}
	case atom.Td, atom.Th:
		h.color("bgcolor", "background-color")
		h.dimensions()
		h.cellAlign()
		if _, ok := e.Attribute("nowrap"); ok {
			h.add("white-space", "nowrap")
		}
	case atom.Tr, atom.Thead, atom.Tbody, atom.Tfoot:
		h.color("bgcolor", "background-color")
		h.cellAlign()
	case atom.Font:
		h.color("color", "color")
		if face, ok := e.Attribute("face"); ok && strings.TrimSpace(face) != "" {
			h.addRaw("font-family", face)
		}
		if size, ok := fontSizeHint(h.attr("size")); ok {
			h.add("font-size", size)
		}
	case atom.Img, atom.Object, atom.Embed, atom.Iframe, atom.Applet:
		h.dimensions()
		switch h.attr("align") {
		case "left", "right":
			h.add("float", h.attr("align"))
		case "top", "middle", "bottom":
			h.add("vertical-align", h.attr("align"))
		}
		if v, ok := h.pixels("hspace"); ok {
			h.add("margin-left", v)
			h.add("margin-right", v)
		}
		if v, ok := h.pixels("vspace"); ok {
			h.add("margin-top", v)
			h.add("margin-bottom", v)
		}
		if tag == atom.Img {
			if v, ok := h.pixels("border"); ok {
				h.add("border-width", v)
				h.add("border-style", "solid")
			}
		}
	case atom.Hr, atom.Canvas, atom.Video, atom.Col:
		h.dimensions()
	case atom.Div, atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Caption:
		h.textAlign()
	}
	return h.decls
}

const xhtmlNamespace = "http://www.w3.org/1999/xhtml"

// hints collects presentational declarations of an element.
type hints struct {
	e     w3cdom.Element
	decls []cssom.Declaration
}

// attr returns the trimmed, lower-case value of an attribute.
func (h *hints) attr(key string) string {
	v, _ := h.e.Attribute(key)
	return strings.ToLower(strings.TrimSpace(v))
}

func (h *hints) add(property, value string) {
	d, err := cssom.NewDeclaration(property, value, false)
	if err != nil {
		tracer().Debugf("presentational hint %s=%q: %v", property, value, err)
		return
	}
	h.decls = append(h.decls, d)
}

// addRaw adds a declaration from an attribute value as found in the source.
func (h *hints) addRaw(property, value string) {
	h.add(property, strings.TrimSpace(value))
}

// color adds a color hint. Legacy color attributes often omit the '#' of
// hex colors.
func (h *hints) color(key, property string) {
	v, ok := h.e.Attribute(key)
	if !ok {
		return
	}
	v = strings.TrimSpace(v)
	if isBareHex(v) {
		v = "#" + v
	}
	if v != "" {
		h.add(property, v)
	}
}

func isBareHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// length reads an HTML length attribute, which is either a pixel count or
// a percentage.
func (h *hints) length(key string) (string, bool) {
	v := h.attr(key)
	if strings.HasSuffix(v, "%") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil && n >= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64) + "%", true
		}
		return "", false
	}
	return h.pixels(key)
}

func (h *hints) pixels(key string) (string, bool) {
	v := strings.TrimSuffix(h.attr(key), "px")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		return "", false
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + "px", true
}

func (h *hints) dimensions() {
	if w, ok := h.length("width"); ok {
		h.add("width", w)
	}
	if ht, ok := h.length("height"); ok {
		h.add("height", ht)
	}
}

// tableBorder: `border` on tables draws an outset border around the table.
// A bare `border` attribute means 1px.
func (h *hints) tableBorder() {
	v, ok := h.e.Attribute("border")
	if !ok {
		return
	}
	width := "1px"
	if strings.TrimSpace(v) != "" {
		if width, ok = h.pixels("border"); !ok {
			return
		}
	}
	h.add("border-width", width)
	h.add("border-style", "outset")
}

// textAlign maps `align` to the -khtml variants of text-align, which
// align block children as well.
func (h *hints) textAlign() {
	switch a := h.attr("align"); a {
	case "left", "right":
		h.add("text-align", "-khtml-"+a)
	case "center", "middle":
		h.add("text-align", "-khtml-center")
	case "justify":
		h.add("text-align", "justify")
	}
}

func (h *hints) cellAlign() {
	h.textAlign()
	switch v := h.attr("valign"); v {
	case "top", "middle", "bottom", "baseline":
		h.add("vertical-align", v)
	}
}

var fontSizeHints = [...]string{
	"x-small", "small", "medium", "large", "x-large", "xx-large", "-khtml-xxx-large",
}

// fontSizeHint maps the size attribute of <font> to a font size keyword.
// Sizes may be absolute (1 to 7) or relative to 3 (+1, -2).
func fontSizeHint(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	relative := v[0] == '+' || v[0] == '-'
	n, err := strconv.Atoi(v)
	if err != nil {
		return "", false
	}
	if relative {
		n += 3
	}
	if n < 1 {
		n = 1
	} else if n > len(fontSizeHints) {
		n = len(fontSizeHints)
	}
	return fontSizeHints[n-1], true
}
