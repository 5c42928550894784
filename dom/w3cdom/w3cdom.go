/*
Package w3cdom defines the interface types the style engine consumes from a
Document Object Model.

The cascade never depends on a concrete DOM implementation. It navigates
elements, reads their attributes, traits and dynamic state, and stores
resolved styles through the interfaces of this package. Package styledtree
provides a default implementation on top of golang.org/x/net/html.

See also https://www.w3schools.com/XML/dom_intro.asp

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeName() string        // node name output depends on the node's type
	NodeValue() string       // node value output depends on the node's type
	ParentNode() Node        // get the parent node, if any
	FirstChild() Node        // get the first children-node
	NextSibling() Node       // get the Node's next sibling or nil if last
	PreviousSibling() Node   // get the Node's previous sibling or nil if first
	TextContent() string     // get text from node and all descendents
}

// Element is an element node. Navigation methods skip all nodes which are
// not elements and return nil at the end of the respective axis.
type Element interface {
	Node
	LocalName() string                   // lower-case tag name
	Atom() atom.Atom                     // tag as an atom, 0 for unknown tags
	Namespace() string                   // namespace URI, empty for HTML
	Attribute(key string) (string, bool) // attribute value by lower-case key
	ID() string                          // value of the id attribute
	Classes() []string                   // tokens of the class attribute
	ParentElement() Element              // parent element, nil for the root
	PreviousElementSibling() Element     // nil if first
	NextElementSibling() Element         // nil if last
	FirstElementChild() Element          // nil if there are no element children
	IsClosed() bool                      // has the parser finished this element?
	IsImplicit() bool                    // was the element inserted by the parser?
	Traits() Traits                      // capabilities of the element
	State() State                        // live dynamic state
	InlineStyle() []cssom.Declaration    // parsed declarations of the style attribute
	ComputedStyle() *style.RenderStyle   // resolved style, nil if not yet resolved
	SetComputedStyle(*style.RenderStyle) // store the resolved style
	OwnerDocument() Document             // the document this element belongs to
}

// Document provides document level facts for styling.
type Document interface {
	DocumentElement() Element // the root element
	Mode() Mode               // parsing mode
	IsXHTML() bool            // XHTML documents compare attribute values case-sensitively
	Target() Element          // current fragment navigation target, may be nil
	ContentLanguage() string  // fallback for :lang()
	BaseURL() string          // for resolving links
}

// Mode is the parsing mode of a document.
type Mode uint8

// Parsing modes, as determined by the document type declaration.
const (
	QuirksMode Mode = iota
	AlmostStandardsMode
	StandardsMode
)

func (m Mode) String() string {
	switch m {
	case QuirksMode:
		return "quirks"
	case AlmostStandardsMode:
		return "almost-standards"
	}
	return "standards"
}

// Traits is a set of capability flags of an element. Style matching queries
// traits instead of the concrete type of an element.
type Traits uint16

// Element traits.
const (
	IsHTML            Traits = 1 << iota // element in the HTML namespace
	IsFormControl                        // input, select, textarea, button, …
	IsCheckable                          // radio buttons and checkboxes
	IsHiddenInput                        // <input type="hidden">
	IsFocusable                          // may receive keyboard focus
	IsContentEditable                    // content is user-editable
	IsLink                               // anchor with an href
	IsFrame                              // <frame> or <iframe>
	IsFrameSet                           // <frameset>
	IsButton                             // <button>
)

// Has checks if all traits of t2 are set.
func (t Traits) Has(t2 Traits) bool {
	return t&t2 == t2
}

// State is a set of live dynamic state flags of an element.
type State uint16

// Dynamic states.
const (
	StateHover State = 1 << iota
	StateActive
	StateFocus
	StateChecked
	StateDisabled
	StateDefault
	StateReadOnly
	StateIndeterminate
)

// Has checks if all states of s2 are set.
func (s State) Has(s2 State) bool {
	return s&s2 == s2
}
