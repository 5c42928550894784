package cascade

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func matchesID(t *testing.T, doc *styledtree.Document, selector, id string) bool {
	t.Helper()
	e := doc.ElementByID(id)
	require.NotNil(t, e, "no element with id %q", id)
	return MatchSelector(cssom.MustParseSelector(selector), e)
}

func TestStructuralPseudoClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><div>
	<a id="a1"></a><b id="b1"></b><a id="a2"></a><b id="b2"></b>
	</div></body>`)
	assert.True(t, matchesID(t, doc, "a:nth-of-type(2)", "a2"))
	assert.False(t, matchesID(t, doc, "a:nth-child(2)", "a2"))
	assert.True(t, matchesID(t, doc, "a:nth-child(3)", "a2"))
	assert.True(t, matchesID(t, doc, "b:nth-child(2)", "b1"))
	assert.True(t, matchesID(t, doc, "b:first-of-type", "b1"))
	assert.False(t, matchesID(t, doc, "b:first-child", "b1"))
	assert.True(t, matchesID(t, doc, ":first-child", "a1"))
	assert.True(t, matchesID(t, doc, "b:last-child", "b2"))
	assert.True(t, matchesID(t, doc, "a:last-of-type", "a2"))
	assert.False(t, matchesID(t, doc, "a:last-child", "a2"))
	assert.True(t, matchesID(t, doc, "b:nth-last-child(3)", "b1"))
	assert.True(t, matchesID(t, doc, "a:nth-last-of-type(2)", "a1"))
	assert.False(t, matchesID(t, doc, "a:only-of-type", "a1"))
	assert.True(t, matchesID(t, doc, "a:empty", "a1"))
}

func TestLastChildOfOpenParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><ul id="u"><li id="l1"></li><li id="l2"></li></ul></body>`)
	assert.True(t, matchesID(t, doc, "li:last-child", "l2"))
	doc.ElementByID("u").SetOpen(true) // more children may follow
	assert.False(t, matchesID(t, doc, "li:last-child", "l2"))
	assert.True(t, matchesID(t, doc, "li:first-child", "l1"))
}

func TestNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><ul>
	<li id="l1" class="skip">1</li><li id="l2">2</li><li id="l3">3</li>
	</ul></body>`)
	assert.False(t, matchesID(t, doc, "li:not(.skip)", "l1"))
	assert.True(t, matchesID(t, doc, "li:not(.skip)", "l2"))
	assert.True(t, matchesID(t, doc, "li:not(p)", "l1"))
	// chained negations are legal
	assert.True(t, matchesID(t, doc, "li:not(.skip):not(#l3)", "l2"))
	assert.False(t, matchesID(t, doc, "li:not(.skip):not(#l3)", "l3"))
	// nested negations never match
	for _, id := range []string{"l1", "l2", "l3"} {
		assert.False(t, matchesID(t, doc, "li:not(:not(.skip))", id), id)
	}
}

func TestAttributeSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body>
	<p id="p" title="hello world" lang="en-US" data-x="abc">x</p>
	</body>`)
	tests := []struct {
		selector string
		match    bool
	}{
		{"[title]", true},
		{"[href]", false},
		{"[title~=world]", true},
		{`[title~="lo wo"]`, false},
		{`[title*="lo wo"]`, true},
		{"[title^=hello]", true},
		{"[title$=world]", true},
		{`[title^=""]`, false},
		{"[lang|=en]", true},
		{"[lang|=us]", false},
		{"[data-x=abc]", true},
		{"[data-x=ABC]", true}, // values are case-insensitive in HTML
		{"p[title=hello]", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.match, matchesID(t, doc, tt.selector, "p"), tt.selector)
	}
	doc.SetXHTML(true)
	assert.False(t, matchesID(t, doc, "[data-x=ABC]", "p"))
}

func TestCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><div id="d">
	<h1 id="h">H</h1><p id="p1">1</p><span id="s">s</span><p id="p2">2</p>
	</div></body>`)
	assert.True(t, matchesID(t, doc, "div > p", "p1"))
	assert.False(t, matchesID(t, doc, "body > p", "p1"))
	assert.True(t, matchesID(t, doc, "body p", "p1"))
	assert.True(t, matchesID(t, doc, "h1 + p", "p1"))
	assert.False(t, matchesID(t, doc, "h1 + p", "p2"))
	assert.True(t, matchesID(t, doc, "h1 ~ p", "p2"))
	assert.True(t, matchesID(t, doc, "span + p", "p2"))
	assert.False(t, matchesID(t, doc, "p ~ h1", "h"))
	assert.True(t, matchesID(t, doc, "body > div#d > h1 ~ span", "s"))
}

func TestQuirksModeMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	isRow := func(sn *styledtree.StyNode) bool { return sn.Atom() == atom.Tr }
	quirky := parseDoc(t, `<table><tr><td class="Cell">x</td></tr></table>`)
	require.Equal(t, w3cdom.QuirksMode, quirky.Mode())
	tr := quirky.Find(isRow)
	require.NotNil(t, tr)
	require.True(t, tr.ParentElement().IsImplicit())
	// child selectors skip the implicit <tbody> in quirks mode
	assert.True(t, MatchSelector(cssom.MustParseSelector("table > tr"), tr))
	td := quirky.Find(func(sn *styledtree.StyNode) bool { return sn.Atom() == atom.Td })
	assert.True(t, MatchSelector(cssom.MustParseSelector(".cell"), td))
	//
	strict := parseDoc(t, `<!DOCTYPE html><table><tr><td class="Cell">x</td></tr></table>`)
	require.Equal(t, w3cdom.StandardsMode, strict.Mode())
	tr = strict.Find(isRow)
	assert.False(t, MatchSelector(cssom.MustParseSelector("table > tr"), tr))
	assert.True(t, MatchSelector(cssom.MustParseSelector("tbody > tr"), tr))
	td = strict.Find(func(sn *styledtree.StyNode) bool { return sn.Atom() == atom.Td })
	assert.False(t, MatchSelector(cssom.MustParseSelector(".cell"), td))
	assert.True(t, MatchSelector(cssom.MustParseSelector(".Cell"), td))
}

func TestDynamicPseudoClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body>
	<a id="a" href="#top">top</a>
	<form><input id="i" type="checkbox" checked><input id="t" type="text" readonly>
	<input id="x" disabled></form>
	<p id="p" lang="de-AT">Hallo</p>
	</body>`)
	assert.True(t, matchesID(t, doc, "a:link", "a"))
	assert.False(t, matchesID(t, doc, "a:visited", "a"))
	assert.False(t, matchesID(t, doc, "a:hover", "a"))
	doc.ElementByID("a").SetState(w3cdom.StateHover, true)
	assert.True(t, matchesID(t, doc, "a:hover", "a"))
	assert.True(t, matchesID(t, doc, "input:checked", "i"))
	assert.True(t, matchesID(t, doc, "input:read-only", "t"))
	assert.False(t, matchesID(t, doc, "input:read-write", "t"))
	assert.True(t, matchesID(t, doc, "input:disabled", "x"))
	assert.True(t, matchesID(t, doc, "input:enabled", "i"))
	assert.True(t, matchesID(t, doc, ":lang(de)", "p"))
	assert.False(t, matchesID(t, doc, ":lang(d)", "p"))
	assert.True(t, matchesID(t, doc, "p:contains(Hal)", "p"))
	//
	root := doc.DocumentElement()
	assert.True(t, MatchSelector(cssom.MustParseSelector(":root"), root))
	assert.False(t, matchesID(t, doc, ":root", "p"))
	assert.False(t, matchesID(t, doc, "p:target", "p"))
	doc.SetTarget(doc.ElementByID("p"))
	assert.True(t, matchesID(t, doc, "p:target", "p"))
}

func TestLangFallsBackToDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><html><head>
	<meta http-equiv="Content-Language" content="fr">
	</head><body>
	<div lang="en"><p id="e" lang="">x</p></div>
	<p id="n" lang="">y</p>
	<p id="d">z</p>
	</body></html>`)
	assert.True(t, matchesID(t, doc, ":lang(en)", "e"), "empty lang is skipped")
	assert.True(t, matchesID(t, doc, ":lang(fr)", "n"))
	assert.True(t, matchesID(t, doc, ":lang(fr)", "d"))
	assert.False(t, matchesID(t, doc, ":lang(en)", "d"))
}

func TestPseudoElementSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><p id="p">x</p></body>`)
	assert.True(t, matchesID(t, doc, "p::before", "p"))
	assert.True(t, matchesID(t, doc, "p:first-line", "p"))
	assert.False(t, matchesID(t, doc, "div::before", "p"))
	_, err := cssom.ParseSelector("body::before p")
	assert.Error(t, err)
}

// deepDocument creates a document with a chain of n nested <div>s in its
// body, and a <span> in the innermost one.
func deepDocument(n int) (*styledtree.Document, *html.Node) {
	elem := func(a atom.Atom) *html.Node {
		return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	}
	root := &html.Node{Type: html.DocumentNode}
	h, body := elem(atom.Html), elem(atom.Body)
	root.AppendChild(h)
	h.AppendChild(body)
	parent := body
	for i := 0; i < n; i++ {
		div := elem(atom.Div)
		parent.AppendChild(div)
		parent = div
	}
	span := elem(atom.Span)
	parent.AppendChild(span)
	return styledtree.NewDocument(root), span
}

func TestAncestorFastReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc, span := deepDocument(500)
	subject := doc.NodeFor(span)
	for _, text := range []string{".absent span", "#nowhere span", "section span", "section div span"} {
		ctx := newMatchContext(subject, nil, nil)
		sel := cssom.MustParseSelector(text)
		assert.Equal(t, failsGlobally, ctx.checkSelector(sel, subject, true, false), text)
	}
	ctx := newMatchContext(subject, nil, nil)
	assert.Equal(t, matches, ctx.checkSelector(cssom.MustParseSelector("body div span"), subject, true, false))
	assert.Equal(t, failsLocally, ctx.checkSelector(cssom.MustParseSelector("p"), subject, true, false))
}

func TestDependencies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body>
	<ul id="u" title="list"><li id="l1">1</li><li id="l2" class="k">2</li></ul>
	</body>`)
	u, l2 := doc.ElementByID("u"), doc.ElementByID("l2")
	deps := &DependencyList{}
	check := func(text string) matchResult {
		ctx := newMatchContext(l2, nil, deps)
		return ctx.checkSelector(cssom.MustParseSelector(text), l2, true, false)
	}
	check("li:first-child")
	assert.True(t, deps.Has(l2, StructuralDependency, u))
	check("li:last-child")
	assert.True(t, deps.Has(l2, BackwardsStructuralDependency, u))
	check("li[title]")
	assert.True(t, deps.Has(l2, PersonalDependency, "title"))
	check("ul[title] li")
	assert.True(t, deps.Has(l2, AncestorDependency, "title"))
	check("li[data-x] + li")
	assert.True(t, deps.Has(l2, PredecessorDependency, "data-x"))
	check("li:hover")
	assert.True(t, deps.Has(l2, HoverDependency, l2))
	check("ul:active li")
	assert.True(t, deps.Has(l2, ActiveDependency, u))
	assert.False(t, deps.Has(l2, HoverDependency, u))
	deps.Reset()
	assert.Empty(t, deps.Records)
	check(".k")
	assert.Empty(t, deps.Records)
}

func TestMatcherAgainstCascadia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html>
<html><head><title>t</title></head><body>
<div id="main" class="box wide">
  <h1 class="title">Head</h1>
  <p class="intro" lang="en-GB">One <em>two</em></p>
  <p title="greeting card" data-kind="note-x">Three</p>
  <ul><li class="a">1</li><li class="b">2</li><li class="a b">3</li><li>4</li><li class="a">5</li></ul>
  <span><a href="x.html">link</a></span>
</div>
<div class="box"><p>Alone</p></div>
</body></html>`)
	selectors := []string{
		"*", "p", "div p", "div > p", "h1 + p", "h1 ~ p", ".box", ".box.wide", "#main p.intro",
		"li.a", "li.a.b", "li:not(.a)", "li:nth-child(2n+1)", "li:nth-child(-n+2)",
		"li:nth-last-child(2)", "li:nth-of-type(odd)", "li:first-child", "li:last-child",
		"p:only-child", "p:first-of-type", "p:last-of-type", "[title]", "[title~=card]",
		"[title^=greet]", "[title$=card]", "[title*=ting]", "[data-kind|=note]", "div > ul > li.b",
		"body > div:not(#main) p", "ul li + li", "em", "span > a", "p em", "div *", ":root",
		"ul > :nth-child(3)", "h1.title ~ *",
	}
	for _, text := range selectors {
		sel := cssom.MustParseSelector(text)
		oracle := cascadia.MustCompile(text)
		count := 0
		doc.Walk(func(sn *styledtree.StyNode) bool {
			want := oracle.Match(sn.HTMLNode())
			if want {
				count++
			}
			assert.Equal(t, want, MatchSelector(sel, sn), "%s against <%s>", text, sn.LocalName())
			return true
		})
		assert.Greater(t, count, 0, "%s should match something", text)
	}
}
