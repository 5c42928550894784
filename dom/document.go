package dom

import (
	"fmt"
	"io"

	"github.com/npillmayer/cascade/dom/style/cascade"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/dom/w3cdom"
)

// Document is an HTML document with the style sheets in effect for it.
type Document struct {
	*styledtree.Document
	Sheets   []*cssom.StyleSheet // author sheets, in document order
	resolver *cascade.Resolver
}

// Option configures the parsing and styling of a document.
type Option struct {
	config func(*options)
}

type options struct {
	baseURL  string
	loader   douceuradapter.Loader
	xhtml    bool
	resolver []cascade.Option
}

// BaseURL sets the URL a document has been loaded from. Links and style
// sheet references are resolved against it.
func BaseURL(u string) Option {
	return Option{config: func(o *options) {
		o.baseURL = u
	}}
}

// Loader sets a loader for external style sheets.
func Loader(l douceuradapter.Loader) Option {
	return Option{config: func(o *options) {
		o.loader = l
	}}
}

// XHTML flags a document as XHTML.
func XHTML() Option {
	return Option{config: func(o *options) {
		o.xhtml = true
	}}
}

// ResolverOptions passes options to the style resolver of a document.
func ResolverOptions(opts ...cascade.Option) Option {
	return Option{config: func(o *options) {
		o.resolver = append(o.resolver, opts...)
	}}
}

// Parse reads an HTML document and the style sheets it contains or
// references. Styles are not resolved; call Style for that.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	var o options
	for _, option := range opts {
		option.config(&o)
	}
	sdoc, err := styledtree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot create styled document: %w", err)
	}
	sdoc.SetBaseURL(o.baseURL)
	sdoc.SetXHTML(o.xhtml)
	doc := &Document{Document: sdoc}
	doc.Sheets = douceuradapter.ExtractStyleElements(sdoc.Root().HTMLNode(), o.baseURL, o.loader)
	tracer().Debugf("document in %s mode with %d style sheets", sdoc.Mode(), len(doc.Sheets))
	doc.resolver = cascade.NewResolver(sdoc, o.resolver...)
	doc.resolver.SetStyleSheets(doc.Sheets...)
	return doc, nil
}

// Resolver returns the style resolver of a document.
func (doc *Document) Resolver() *cascade.Resolver {
	return doc.resolver
}

// AddStyleSheet appends an author style sheet. Styles have to be resolved
// again afterwards.
func (doc *Document) AddStyleSheet(sheet *cssom.StyleSheet) {
	doc.Sheets = append(doc.Sheets, sheet)
	doc.resolver.SetStyleSheets(doc.Sheets...)
}

// Style resolves the styles of all elements, in document order. If deps is
// non-nil, the dependencies of every element's style are reported to it.
func (doc *Document) Style(deps cascade.DependencyStore) {
	root := doc.DocumentElement()
	if root == nil {
		return
	}
	doc.resolver.StyleSubtree(root, deps)
}

// Restyle resolves the styles of an element and its descendants again,
// e.g. after a change of its dynamic state.
func (doc *Document) Restyle(e w3cdom.Element, deps cascade.DependencyStore) {
	doc.resolver.StyleSubtree(e, deps)
}

// StyleDocument resolves the styles of a styled document with a set of
// author style sheets and returns the resolver used.
func StyleDocument(sdoc *styledtree.Document, sheets []*cssom.StyleSheet, opts ...cascade.Option) *cascade.Resolver {
	r := cascade.NewResolver(sdoc, opts...)
	r.SetStyleSheets(sheets...)
	if root := sdoc.DocumentElement(); root != nil {
		r.StyleSubtree(root, nil)
	}
	return r
}
