package styledtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cascade/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a styled HTML document. It implements w3cdom.Document.
type Document struct {
	root    *html.Node
	nodes   map[*html.Node]*StyNode
	mode    w3cdom.Mode
	xhtml   bool
	target  *StyNode
	lang    string
	baseURL string
}

// Parse reads an HTML document and creates a styled document for it.
// The parsing mode is derived from the document type declaration, and
// elements the parser inserted without a tag in the source are flagged as
// implicit.
func Parse(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root, err := html.Parse(strings.NewReader(string(src)))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	doc := NewDocument(root)
	explicit := sourceTags(string(src))
	doc.Walk(func(sn *StyNode) bool {
		switch a := sn.htmlNode.DataAtom; a {
		case 0, atom.Html, atom.Head, atom.Body: // structural, never skipped by child selectors
		default:
			sn.implicit = !explicit[a]
		}
		return true
	})
	return doc, nil
}

// NewDocument creates a styled document for an HTML parse tree.
func NewDocument(root *html.Node) *Document {
	doc := &Document{
		root:  root,
		nodes: make(map[*html.Node]*StyNode),
		mode:  modeFromDoctype(root),
	}
	doc.lang = contentLanguage(root)
	tracer().Debugf("new document in %s mode", doc.mode)
	return doc
}

// sourceTags collects the tags of all start tags in an HTML source.
func sourceTags(src string) map[atom.Atom]bool {
	tags := make(map[atom.Atom]bool)
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return tags
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tags[atom.Lookup(name)] = true
		}
	}
}

// NodeFor returns the styled node for an HTML node of this document.
func (doc *Document) NodeFor(h *html.Node) *StyNode {
	if h == nil {
		return nil
	}
	if sn, ok := doc.nodes[h]; ok {
		return sn
	}
	sn := newNode(h, doc)
	doc.nodes[h] = sn
	return sn
}

// Root returns the node for the HTML document node.
func (doc *Document) Root() *StyNode {
	return doc.NodeFor(doc.root)
}

// Walk calls f for every element in document order, as long as f returns
// true. Children of an element are visited only if f returns true for it.
func (doc *Document) Walk(f func(*StyNode) bool) {
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != html.ElementNode {
				continue
			}
			if f(doc.NodeFor(ch)) {
				walk(ch)
			}
		}
	}
	walk(doc.root)
}

// Find returns the first element matching a predicate, in document order.
func (doc *Document) Find(pred func(*StyNode) bool) *StyNode {
	var found *StyNode
	doc.Walk(func(sn *StyNode) bool {
		if found == nil && pred(sn) {
			found = sn
		}
		return found == nil
	})
	return found
}

// ElementByID returns the first element with a given id.
func (doc *Document) ElementByID(id string) *StyNode {
	return doc.Find(func(sn *StyNode) bool { return sn.ID() == id })
}

// --- w3cdom.Document -------------------------------------------------------

// DocumentElement returns the root element.
func (doc *Document) DocumentElement() w3cdom.Element {
	for h := doc.root.FirstChild; h != nil; h = h.NextSibling {
		if h.Type == html.ElementNode {
			return doc.NodeFor(h)
		}
	}
	return nil
}

// Mode returns the parsing mode.
func (doc *Document) Mode() w3cdom.Mode {
	return doc.mode
}

// SetMode overrides the parsing mode.
func (doc *Document) SetMode(m w3cdom.Mode) {
	doc.mode = m
}

// IsXHTML is true for XHTML documents.
func (doc *Document) IsXHTML() bool {
	return doc.xhtml
}

// SetXHTML flags a document as XHTML.
func (doc *Document) SetXHTML(x bool) {
	doc.xhtml = x
}

// Target returns the current fragment navigation target.
func (doc *Document) Target() w3cdom.Element {
	return asElement(doc.target)
}

// SetTarget sets the fragment navigation target, e.g. after navigating to
// "#chapter2".
func (doc *Document) SetTarget(sn *StyNode) {
	doc.target = sn
}

// ContentLanguage returns the language declared by a <meta> element.
func (doc *Document) ContentLanguage() string {
	return doc.lang
}

// SetContentLanguage overrides the document language.
func (doc *Document) SetContentLanguage(lang string) {
	doc.lang = lang
}

// BaseURL returns the URL the document has been loaded from.
func (doc *Document) BaseURL() string {
	return doc.baseURL
}

// SetBaseURL sets the URL to resolve links against.
func (doc *Document) SetBaseURL(u string) {
	doc.baseURL = u
}

var _ w3cdom.Document = &Document{}

// --- Parsing mode ----------------------------------------------------------

var quirkyPublicIDs = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer",
	"-//netscape comm. corp.//dtd",
	"-//o'reilly and associates//dtd html",
	"-//softquad",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//sun microsystems corp.//dtd hotjava",
	"-//w3c//dtd html 3",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html",
	"-//webtechs//dtd mozilla html",
}

// modeFromDoctype determines the parsing mode from the document type
// declaration, following the rules of the HTML standard.
func modeFromDoctype(root *html.Node) w3cdom.Mode {
	var dt *html.Node
	for h := root.FirstChild; h != nil; h = h.NextSibling {
		if h.Type == html.DoctypeNode {
			dt = h
			break
		}
	}
	if dt == nil || !strings.EqualFold(dt.Data, "html") {
		return w3cdom.QuirksMode
	}
	var public, system string
	hasSystem := false
	for _, a := range dt.Attr {
		switch a.Key {
		case "public":
			public = strings.ToLower(a.Val)
		case "system":
			system, hasSystem = strings.ToLower(a.Val), true
		}
	}
	if system == "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd" {
		return w3cdom.QuirksMode
	}
	for _, prefix := range quirkyPublicIDs {
		if strings.HasPrefix(public, prefix) {
			return w3cdom.QuirksMode
		}
	}
	html401 := strings.HasPrefix(public, "-//w3c//dtd html 4.01 frameset//") ||
		strings.HasPrefix(public, "-//w3c//dtd html 4.01 transitional//")
	if html401 && !hasSystem {
		return w3cdom.QuirksMode
	}
	if html401 || strings.HasPrefix(public, "-//w3c//dtd xhtml 1.0 frameset//") ||
		strings.HasPrefix(public, "-//w3c//dtd xhtml 1.0 transitional//") {
		return w3cdom.AlmostStandardsMode
	}
	return w3cdom.StandardsMode
}

func contentLanguage(root *html.Node) string {
	var lang string
	var find func(*html.Node)
	find = func(h *html.Node) {
		if lang != "" {
			return
		}
		if h.Type == html.ElementNode && h.DataAtom == atom.Meta {
			var equiv, content string
			for _, a := range h.Attr {
				switch a.Key {
				case "http-equiv":
					equiv = a.Val
				case "content":
					content = a.Val
				}
			}
			if strings.EqualFold(equiv, "content-language") {
				lang = strings.TrimSpace(strings.Split(content, ",")[0])
			}
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			find(ch)
		}
	}
	find(root)
	return lang
}
