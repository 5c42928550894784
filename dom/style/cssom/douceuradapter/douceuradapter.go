/*
Package douceuradapter reads style sheets with the douceur CSS parser and
converts them into cssom.StyleSheets.

Douceur splits a style sheet into rules and declarations, but leaves
selectors and values as text. These are parsed by package cssom. Rules
with invalid selectors and declarations for unknown properties are
dropped, as CSS demands, and traced.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// Loader fetches the text of external style sheets, referenced by @import
// rules or <link> elements. URLs are absolute if the referencing sheet has
// a base URL.
type Loader interface {
	Load(href string) (string, error)
}

// LoaderFunc adapts a function to interface Loader.
type LoaderFunc func(string) (string, error)

// Load calls f(href).
func (f LoaderFunc) Load(href string) (string, error) {
	return f(href)
}

// maxImportDepth limits nesting of @import rules.
const maxImportDepth = 16

// Parse parses the text of a style sheet. @import rules are resolved with
// loader, which may be nil.
func Parse(text string, origin cssom.Origin, baseURL string, loader Loader) (*cssom.StyleSheet, error) {
	c := &converter{loader: loader, visited: make(map[string]bool)}
	if baseURL != "" {
		c.visited[baseURL] = true
	}
	return c.parse(text, origin, baseURL, 0)
}

// Wrap converts a douceur style sheet. The stylesheet is now managed by the
// wrapper.
func Wrap(sheet *css.Stylesheet, origin cssom.Origin, baseURL string, loader Loader) *cssom.StyleSheet {
	c := &converter{loader: loader, visited: make(map[string]bool)}
	return c.wrap(sheet, origin, baseURL, 0)
}

// ParseInline parses the content of a style attribute into declarations.
// Invalid declarations are dropped.
func ParseInline(text string) []cssom.Declaration {
	// the last declaration is lost unless it is terminated
	text = strings.TrimRight(strings.TrimSpace(text), ";")
	if text == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(text + ";")
	if err != nil { // keep what was parsed up to the error
		tracer().Debugf("style attribute %q: %v", text, err)
	}
	return convertDeclarations(decls)
}

type converter struct {
	loader  Loader
	visited map[string]bool
}

func (c *converter) parse(text string, origin cssom.Origin, baseURL string, depth int) (*cssom.StyleSheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("style sheet %q: %w", baseURL, err)
	}
	return c.wrap(sheet, origin, baseURL, depth), nil
}

func (c *converter) wrap(sheet *css.Stylesheet, origin cssom.Origin, baseURL string, depth int) *cssom.StyleSheet {
	s := cssom.NewStyleSheet(origin)
	s.BaseURL = baseURL
	s.Rules = c.convertRules(sheet.Rules, origin, baseURL, depth)
	return s
}

func (c *converter) convertRules(rules []*css.Rule, origin cssom.Origin, baseURL string, depth int) []*cssom.Rule {
	var result []*cssom.Rule
	for _, r := range rules {
		if r == nil {
			continue
		}
		if r.Kind == css.QualifiedRule {
			decls := convertDeclarations(r.Declarations)
			rule, err := cssom.NewStyleRule(r.Prelude, decls)
			if err != nil {
				tracer().Infof("dropping rule: %v", err)
				continue
			}
			result = append(result, rule)
			continue
		}
		switch strings.ToLower(r.Name) {
		case "@media":
			result = append(result, &cssom.Rule{
				Kind:  cssom.MediaRule,
				Media: cssom.ParseMediaList(r.Prelude),
				Rules: c.convertRules(r.Rules, origin, baseURL, depth),
			})
		case "@import":
			if rule := c.importRule(r.Prelude, origin, baseURL, depth); rule != nil {
				result = append(result, rule)
			}
		case "@font-face":
			desc := make(map[string]string, len(r.Declarations))
			for _, d := range r.Declarations {
				desc[strings.ToLower(d.Property)] = d.Value
			}
			result = append(result, &cssom.Rule{Kind: cssom.FontFaceRule, Descriptors: desc})
		default:
			if r.EmbedsRules() {
				tracer().Debugf("ignoring at-rule %s", r.Name)
			}
		}
	}
	return result
}

func (c *converter) importRule(prelude string, origin cssom.Origin, baseURL string, depth int) *cssom.Rule {
	href, media := splitImport(prelude)
	if href == "" {
		return nil
	}
	rule := &cssom.Rule{
		Kind:  cssom.ImportRule,
		Href:  resolveURL(baseURL, href),
		Media: cssom.ParseMediaList(media),
	}
	if c.loader == nil || depth >= maxImportDepth || c.visited[rule.Href] {
		return rule
	}
	c.visited[rule.Href] = true
	text, err := c.loader.Load(rule.Href)
	if err != nil {
		tracer().Infof("cannot load style sheet %s: %v", rule.Href, err)
		return rule
	}
	imported, err := c.parse(text, origin, rule.Href, depth+1)
	if err != nil {
		tracer().Infof("%v", err)
		return rule
	}
	rule.Import = imported
	return rule
}

// splitImport separates URL and media list of an @import prelude, e.g.
// `url("print.css") print`.
func splitImport(prelude string) (href, media string) {
	vals, err := cssom.ParseValues(prelude)
	if err != nil || len(vals) == 0 {
		return "", ""
	}
	switch vals[0].Kind {
	case cssom.ValueURI, cssom.ValueString:
		href = vals[0].Text
	default:
		return "", ""
	}
	if i := strings.Index(prelude, vals[0].Raw); i >= 0 {
		media = strings.TrimSpace(prelude[i+len(vals[0].Raw):])
	}
	return href, media
}

func resolveURL(base, href string) string {
	if base == "" {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

func convertDeclarations(decls []*css.Declaration) []cssom.Declaration {
	result := make([]cssom.Declaration, 0, len(decls))
	for _, d := range decls {
		decl, err := cssom.NewDeclaration(d.Property, d.Value, d.Important)
		if err != nil {
			tracer().Debugf("dropping declaration: %v", err)
			continue
		}
		result = append(result, decl)
	}
	return result
}

// --- HTML documents --------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s and for <link rel="stylesheet">s.
// The latter are loaded with loader, if it is non-nil. Style sheets are
// returned in document order, with author origin.
func ExtractStyleElements(htmldoc *html.Node, baseURL string, loader Loader) []*cssom.StyleSheet {
	c := &converter{loader: loader, visited: make(map[string]bool)}
	var sheets []*cssom.StyleSheet
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		sheets = append(sheets, c.extractStyles(findElement(a, htmldoc), baseURL)...)
	}
	return sheets
}

func (c *converter) extractStyles(h *html.Node, baseURL string) []*cssom.StyleSheet {
	if h == nil {
		return nil
	}
	var sheets []*cssom.StyleSheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		var sheet *cssom.StyleSheet
		switch ch.DataAtom {
		case atom.Style:
			if ch.FirstChild == nil {
				continue
			}
			s, err := c.parse(ch.FirstChild.Data, cssom.OriginAuthor, baseURL, 0)
			if err != nil {
				tracer().Infof("%v", err)
				continue
			}
			sheet = s
		case atom.Link:
			if !strings.EqualFold(attr(ch, "rel"), "stylesheet") || c.loader == nil {
				continue
			}
			href := resolveURL(baseURL, attr(ch, "href"))
			text, err := c.loader.Load(href)
			if err != nil {
				tracer().Infof("cannot load style sheet %s: %v", href, err)
				continue
			}
			if sheet, err = c.parse(text, cssom.OriginAuthor, href, 0); err != nil {
				tracer().Infof("%v", err)
				continue
			}
		default:
			continue
		}
		sheet.Media = cssom.ParseMediaList(attr(ch, "media"))
		sheets = append(sheets, sheet)
	}
	return sheets
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
