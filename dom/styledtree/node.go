package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	htmlNode      *html.Node
	doc           *Document
	computedStyle *style.RenderStyle
	classes       []string
	inline        []cssom.Declaration
	inlineParsed  bool
	traits        w3cdom.Traits
	state         w3cdom.State
	open          bool // still being parsed
	implicit      bool
}

func newNode(h *html.Node, doc *Document) *StyNode {
	sn := &StyNode{htmlNode: h, doc: doc}
	if h.Type == html.ElementNode {
		sn.classes = strings.Fields(sn.attr("class"))
		sn.traits = traitsOf(h)
		sn.state = initialState(h, sn.traits)
	}
	return sn
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

func (sn *StyNode) attr(key string) string {
	v, _ := sn.Attribute(key)
	return v
}

func (sn *StyNode) wrap(h *html.Node) *StyNode {
	if h == nil {
		return nil
	}
	return sn.doc.NodeFor(h)
}

// --- w3cdom.Node -----------------------------------------------------------

// NodeType returns the type of the underlying HTML node.
func (sn *StyNode) NodeType() html.NodeType {
	return sn.htmlNode.Type
}

// NodeName returns the tag name of elements, "#text" for text nodes, and
// so on.
func (sn *StyNode) NodeName() string {
	switch sn.htmlNode.Type {
	case html.ElementNode:
		return sn.htmlNode.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "!doctype"
	}
	return "<unknown>"
}

// NodeValue returns the text of text and comment nodes.
func (sn *StyNode) NodeValue() string {
	switch sn.htmlNode.Type {
	case html.TextNode, html.CommentNode:
		return sn.htmlNode.Data
	}
	return ""
}

// ParentNode returns the parent node, if any.
func (sn *StyNode) ParentNode() w3cdom.Node {
	return asNode(sn.wrap(sn.htmlNode.Parent))
}

// FirstChild returns the first child node, if any.
func (sn *StyNode) FirstChild() w3cdom.Node {
	return asNode(sn.wrap(sn.htmlNode.FirstChild))
}

// NextSibling returns the next sibling node, if any.
func (sn *StyNode) NextSibling() w3cdom.Node {
	return asNode(sn.wrap(sn.htmlNode.NextSibling))
}

// PreviousSibling returns the previous sibling node, if any.
func (sn *StyNode) PreviousSibling() w3cdom.Node {
	return asNode(sn.wrap(sn.htmlNode.PrevSibling))
}

// TextContent returns the text of this node and all its descendents.
func (sn *StyNode) TextContent() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(sn.htmlNode)
	return b.String()
}

// asNode avoids non-nil interfaces holding nil pointers.
func asNode(sn *StyNode) w3cdom.Node {
	if sn == nil {
		return nil
	}
	return sn
}

func asElement(sn *StyNode) w3cdom.Element {
	if sn == nil {
		return nil
	}
	return sn
}

// --- w3cdom.Element --------------------------------------------------------

// LocalName returns the lower-case tag name of an element.
func (sn *StyNode) LocalName() string {
	if sn.htmlNode.Type != html.ElementNode {
		return ""
	}
	return sn.htmlNode.Data
}

// Atom returns the tag of an element as an atom.
func (sn *StyNode) Atom() atom.Atom {
	return sn.htmlNode.DataAtom
}

// Namespace returns the namespace of an element, which is empty for HTML.
func (sn *StyNode) Namespace() string {
	return sn.htmlNode.Namespace
}

// Attribute returns the value of an attribute.
func (sn *StyNode) Attribute(key string) (string, bool) {
	for _, a := range sn.htmlNode.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the value of the id attribute.
func (sn *StyNode) ID() string {
	return sn.attr("id")
}

// Classes returns the tokens of the class attribute.
func (sn *StyNode) Classes() []string {
	return sn.classes
}

// ParentElement returns the parent element, or nil for the root element.
func (sn *StyNode) ParentElement() w3cdom.Element {
	p := sn.htmlNode.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return asElement(sn.wrap(p))
}

// PreviousElementSibling returns the nearest element sibling to the left.
func (sn *StyNode) PreviousElementSibling() w3cdom.Element {
	for h := sn.htmlNode.PrevSibling; h != nil; h = h.PrevSibling {
		if h.Type == html.ElementNode {
			return asElement(sn.wrap(h))
		}
	}
	return nil
}

// NextElementSibling returns the nearest element sibling to the right.
func (sn *StyNode) NextElementSibling() w3cdom.Element {
	for h := sn.htmlNode.NextSibling; h != nil; h = h.NextSibling {
		if h.Type == html.ElementNode {
			return asElement(sn.wrap(h))
		}
	}
	return nil
}

// FirstElementChild returns the first child element.
func (sn *StyNode) FirstElementChild() w3cdom.Element {
	for h := sn.htmlNode.FirstChild; h != nil; h = h.NextSibling {
		if h.Type == html.ElementNode {
			return asElement(sn.wrap(h))
		}
	}
	return nil
}

// IsClosed is true if the parser has finished this element. Elements of
// parsed documents are closed, unless SetOpen has been called.
func (sn *StyNode) IsClosed() bool {
	return !sn.open
}

// SetOpen marks an element as still being parsed, i.e. more children may
// follow.
func (sn *StyNode) SetOpen(open bool) {
	sn.open = open
}

// IsImplicit is true for elements the parser inserted without a tag in the
// source, like <tbody> in tables.
func (sn *StyNode) IsImplicit() bool {
	return sn.implicit
}

// Traits returns the capabilities of an element.
func (sn *StyNode) Traits() w3cdom.Traits {
	return sn.traits
}

// State returns the dynamic state of an element.
func (sn *StyNode) State() w3cdom.State {
	return sn.state
}

// SetState switches dynamic states on or off.
func (sn *StyNode) SetState(s w3cdom.State, on bool) {
	if on {
		sn.state |= s
	} else {
		sn.state &^= s
	}
}

// InlineStyle returns the parsed declarations of the style attribute.
func (sn *StyNode) InlineStyle() []cssom.Declaration {
	if !sn.inlineParsed {
		sn.inlineParsed = true
		if text, ok := sn.Attribute("style"); ok && strings.TrimSpace(text) != "" {
			sn.inline = douceuradapter.ParseInline(text)
		}
	}
	return sn.inline
}

// ComputedStyle returns the resolved style of an element, or nil.
func (sn *StyNode) ComputedStyle() *style.RenderStyle {
	return sn.computedStyle
}

// SetComputedStyle sets the resolved style of an element.
func (sn *StyNode) SetComputedStyle(rs *style.RenderStyle) {
	sn.computedStyle = rs
}

// OwnerDocument returns the document of a node.
func (sn *StyNode) OwnerDocument() w3cdom.Document {
	return sn.doc
}

var _ w3cdom.Element = &StyNode{}

// --- Traits ----------------------------------------------------------------

func traitsOf(h *html.Node) w3cdom.Traits {
	var t w3cdom.Traits
	if h.Namespace == "" {
		t |= w3cdom.IsHTML
	}
	get := func(key string) (string, bool) {
		for _, a := range h.Attr {
			if a.Key == key {
				return a.Val, true
			}
		}
		return "", false
	}
	_, hasHref := get("href")
	switch h.DataAtom {
	case atom.Input:
		t |= w3cdom.IsFormControl | w3cdom.IsFocusable
		typ, _ := get("type")
		switch strings.ToLower(typ) {
		case "checkbox", "radio":
			t |= w3cdom.IsCheckable
		case "hidden":
			t |= w3cdom.IsHiddenInput
			t &^= w3cdom.IsFocusable
		}
	case atom.Select, atom.Textarea:
		t |= w3cdom.IsFormControl | w3cdom.IsFocusable
	case atom.Button:
		t |= w3cdom.IsFormControl | w3cdom.IsFocusable | w3cdom.IsButton
	case atom.A, atom.Area:
		if hasHref {
			t |= w3cdom.IsLink | w3cdom.IsFocusable
		}
	case atom.Link:
		if hasHref {
			t |= w3cdom.IsLink
		}
	case atom.Frame, atom.Iframe:
		t |= w3cdom.IsFrame
	case atom.Frameset:
		t |= w3cdom.IsFrameSet
	}
	if _, ok := get("tabindex"); ok {
		t |= w3cdom.IsFocusable
	}
	if v, ok := get("contenteditable"); ok && (v == "" || strings.EqualFold(v, "true")) {
		t |= w3cdom.IsContentEditable | w3cdom.IsFocusable
	}
	return t
}

func initialState(h *html.Node, t w3cdom.Traits) w3cdom.State {
	var s w3cdom.State
	for _, a := range h.Attr {
		switch a.Key {
		case "checked":
			if t.Has(w3cdom.IsCheckable) {
				s |= w3cdom.StateChecked | w3cdom.StateDefault
			}
		case "selected":
			if h.DataAtom == atom.Option {
				s |= w3cdom.StateChecked | w3cdom.StateDefault
			}
		case "disabled":
			if t.Has(w3cdom.IsFormControl) {
				s |= w3cdom.StateDisabled
			}
		case "readonly":
			s |= w3cdom.StateReadOnly
		}
	}
	return s
}
