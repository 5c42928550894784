package cascade

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/config"
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, src string) *styledtree.Document {
	t.Helper()
	doc, err := styledtree.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func sheet(t *testing.T, text string, origin cssom.Origin) *cssom.StyleSheet {
	t.Helper()
	s, err := douceuradapter.Parse(text, origin, "", nil)
	require.NoError(t, err)
	return s
}

// styleDoc styles a complete document with a single author style sheet.
func styleDoc(t *testing.T, doc *styledtree.Document, rules string, opts ...Option) *Resolver {
	t.Helper()
	r := NewResolver(doc, opts...)
	r.SetStyleSheets(sheet(t, rules, cssom.OriginAuthor))
	r.StyleSubtree(doc.DocumentElement(), nil)
	return r
}

func styled(t *testing.T, src, rules string, opts ...Option) *styledtree.Document {
	t.Helper()
	doc := parseDoc(t, src)
	styleDoc(t, doc, rules, opts...)
	return doc
}

func styleOf(t *testing.T, doc *styledtree.Document, id string) *style.RenderStyle {
	t.Helper()
	e := doc.ElementByID(id)
	require.NotNil(t, e, "no element with id %q", id)
	rs := e.ComputedStyle()
	require.NotNil(t, rs, "element %q is not styled", id)
	return rs
}

func mustColor(t *testing.T, name string) style.Color {
	t.Helper()
	c, err := style.ParseColor(name, false)
	require.NoError(t, err)
	return c
}

func TestImportantBeatsSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><div id="x" class="y">text</div></body>`,
		`div { color: blue; } #x { color: red; } .y { color: green !important; }`)
	assert.Equal(t, mustColor(t, "green"), styleOf(t, doc, "x").Color())
}

func TestNthChildBackground(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><div>
	<p id="p1">1</p><p id="p2">2</p><p id="p3">3</p><p id="p4">4</p><p id="p5">5</p>
	</div></body>`, `p:nth-child(odd) { background: yellow; }`)
	yellow := mustColor(t, "yellow")
	for _, id := range []string{"p1", "p3", "p5"} {
		assert.Equal(t, yellow, styleOf(t, doc, id).BackgroundColor(), id)
	}
	for _, id := range []string{"p2", "p4"} {
		assert.Equal(t, style.Transparent, styleOf(t, doc, id).BackgroundColor(), id)
	}
}

func TestVisitedLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body>
	<a id="a1" href="seen.html">seen</a>
	<a id="a2" href="other.html">other</a>
	<a id="a3" href="http://example.org/docs/seen.html">seen, absolute</a>
	<a id="a4" href="../seen.html">up</a>
	</body>`)
	doc.SetBaseURL("http://example.org/docs/index.html")
	visited := NewVisitedSet("http://example.org/docs/seen.html")
	styleDoc(t, doc, `a:link { color: blue; } a:visited { color: purple; }`, WithVisitedLinks(visited))
	assert.Equal(t, mustColor(t, "purple"), styleOf(t, doc, "a1").Color())
	assert.Equal(t, mustColor(t, "blue"), styleOf(t, doc, "a2").Color())
	assert.Equal(t, mustColor(t, "purple"), styleOf(t, doc, "a3").Color())
	assert.Equal(t, mustColor(t, "blue"), styleOf(t, doc, "a4").Color())
	// links never share their styles
	assert.NotSame(t, styleOf(t, doc, "a1"), styleOf(t, doc, "a3"))
}

func TestImportantBeatsInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body>
	<span id="s" style="color: red">x</span>
	<em id="e" style="color: red">y</em>
	<em id="f" style="color: red !important">z</em>
	</body>`, `span { color: blue !important; } em { color: blue; } #f { color: blue !important }`)
	assert.Equal(t, mustColor(t, "blue"), styleOf(t, doc, "s").Color())
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "e").Color())
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "f").Color())
}

func TestQuirksTableCell(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<table><tr><td id="c" style="float:left">x</td></tr></table>`)
	r := styleDoc(t, doc, ``)
	require.True(t, r.IsQuirksMode())
	rs := styleOf(t, doc, "c")
	assert.Equal(t, css.DisplayTableCell, rs.Display())
	assert.Equal(t, css.FloatNone, rs.Float())
	//
	doc = parseDoc(t, `<!DOCTYPE html><table><tr><td id="c" style="float:left">x</td></tr></table>`)
	r = styleDoc(t, doc, ``)
	require.False(t, r.IsQuirksMode())
	rs = styleOf(t, doc, "c")
	assert.Equal(t, css.FloatLeft, rs.Float())
	assert.Equal(t, css.DisplayBlock, rs.Display()) // floats are blockified
}

func TestSourceOrderAndSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body>
	<p id="a">a</p><p id="b" class="k">b</p>
	</body>`, `
	p { color: red } p { color: blue }
	#b { background-color: lime } p.k { background-color: red }
	p { margin-left: 1px } body p { margin-left: 2px } p { margin-left: 3px }`)
	a, b := styleOf(t, doc, "a"), styleOf(t, doc, "b")
	assert.Equal(t, mustColor(t, "blue"), a.Color())
	assert.Equal(t, mustColor(t, "lime"), b.BackgroundColor())
	assert.InDelta(t, 2.0, a.Surround().Margin[css.Left].Px(), 0.01)
}

func TestUserStyleSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	user := sheet(t, `p { color: green !important; background-color: green }`, cssom.OriginUser)
	doc := styled(t, `<!DOCTYPE html><body><p id="p">x</p></body>`,
		`p { color: red !important; background-color: red }`, WithUserStyleSheet(user))
	rs := styleOf(t, doc, "p")
	assert.Equal(t, mustColor(t, "green"), rs.Color(), "user !important wins over author !important")
	assert.Equal(t, mustColor(t, "red"), rs.BackgroundColor(), "author wins over user")
}

func TestInheritAndInitial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><div id="d">
	<p id="p1">1</p><p id="p2">2</p><p id="p3">3</p><p id="p4">4</p>
	</div></body>`, `
	div { color: red; margin-left: 10px; border: 2px solid blue }
	#p1 { color: inherit }
	#p2 { color: initial }
	#p3 { margin-left: inherit; border-top: inherit }
	#p4 { font: 20px serif; border: inherit; border: 1px dotted }`)
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "p1").Color())
	assert.Equal(t, style.Black, styleOf(t, doc, "p2").Color())
	p3 := styleOf(t, doc, "p3")
	assert.InDelta(t, 10.0, p3.Surround().Margin[css.Left].Px(), 0.01)
	assert.Equal(t, css.BorderStyleSolid, p3.Surround().Border[css.Top].Style)
	assert.InDelta(t, 2.0, p3.Surround().Border[css.Top].Width, 0.01)
	assert.True(t, p3.HasExplicitInherit())
	assert.False(t, styleOf(t, doc, "p1").HasExplicitInherit())
	p4 := styleOf(t, doc, "p4")
	assert.InDelta(t, 20.0, p4.FontSize(), 0.01)
	assert.Equal(t, []string{"serif"}, p4.Inherited().FontFamily)
	assert.Equal(t, css.BorderStyleDotted, p4.Surround().Border[css.Left].Style)
}

func TestRelativeLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body>
	<h1 id="h">Title</h1>
	<div id="d" style="font-size: 20px"><p id="p" style="margin-left: 2em; font-size: 150%">x</p></div>
	</body>`, ``)
	body := doc.Find(func(sn *styledtree.StyNode) bool { return sn.LocalName() == "body" })
	require.NotNil(t, body)
	assert.InDelta(t, 16.0, body.ComputedStyle().FontSize(), 0.01)
	h := styleOf(t, doc, "h")
	assert.InDelta(t, 32.0, h.FontSize(), 0.01)
	assert.Equal(t, 700, h.Inherited().FontWeight)
	p := styleOf(t, doc, "p")
	assert.InDelta(t, 30.0, p.FontSize(), 0.01)
	assert.InDelta(t, 60.0, p.Surround().Margin[css.Left].Px(), 0.01)
}

func TestFontSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	settings := config.Default()
	settings.Fonts.Medium = 15 // 20px at 96 dpi
	doc := styled(t, `<!DOCTYPE html><body><p id="p">x</p><tt id="tt">x</tt></body>`, ``,
		WithSettings(settings))
	assert.InDelta(t, 20.0, styleOf(t, doc, "p").FontSize(), 0.01)
	assert.InDelta(t, 40.0/3.0, styleOf(t, doc, "tt").FontSize(), 0.01) // 10pt fixed pitch
}

func TestPrintMedia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	src := `<!DOCTYPE html><body><p id="p">x</p></body>`
	rules := `@media print { p { color: red } } @media screen { p { color: blue } }`
	doc := styled(t, src, rules)
	assert.Equal(t, mustColor(t, "blue"), styleOf(t, doc, "p").Color())
	settings := config.Default()
	settings.Media.Type = "print"
	doc = styled(t, src, rules, WithSettings(settings))
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "p").Color())
}

func TestStyleSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><ul>
	<li id="l1" class="x">a</li><li id="l2" class="x">b</li><li id="l3" class="x">c</li>
	<li id="l4" class="x" style="color: red">d</li><li id="l5" class="x">e</li>
	</ul></body>`)
	doc.ElementByID("l3").SetState(w3cdom.StateHover, true)
	styleDoc(t, doc, `li.x { color: red } li:hover { color: green }`)
	l1, l2, l3 := styleOf(t, doc, "l1"), styleOf(t, doc, "l2"), styleOf(t, doc, "l3")
	assert.Same(t, l1, l2)
	assert.NotSame(t, l1, l3)
	assert.Equal(t, mustColor(t, "green"), l3.Color())
	assert.Equal(t, style.AffectedByHover, l1.Flags().Affected&style.AffectedByHover)
	// equal values, but the style attribute prevents sharing the style object
	l4, l5 := styleOf(t, doc, "l4"), styleOf(t, doc, "l5")
	assert.NotSame(t, l1, l4)
	assert.True(t, l1.Equal(l4))
	assert.NotSame(t, l4, l5)
	assert.True(t, l5.SharesGroup(l4, style.GroupInherited))
}

func TestNoSharingWithIDSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body>
	<p id="a">1</p><p id="b">2</p><p>3</p>
	</body>`, `p { color: blue } #b { color: blue }`)
	a, b := styleOf(t, doc, "a"), styleOf(t, doc, "b")
	assert.True(t, a.Equal(b))
	assert.NotSame(t, a, b)
}

func TestUnavailableWhileLoading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><p id="p">x</p></body>`)
	r := NewResolver(doc)
	r.SetLoading(true)
	rs := r.StyleForElement(doc.ElementByID("p"), nil, nil)
	assert.Same(t, Unavailable(), rs)
	assert.Equal(t, css.DisplayNone, rs.Display())
	r.SetLoading(false)
	r.StyleSubtree(doc.DocumentElement(), nil)
	assert.Equal(t, css.DisplayBlock, styleOf(t, doc, "p").Display())
}

func TestDetachedSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><div id="d"><p id="p">x</p></div></body>`)
	r := NewResolver(doc)
	r.SetStyleSheets(sheet(t, `div p { color: red } body { color: green; font-size: 30px }`, cssom.OriginAuthor))
	r.StyleSubtree(doc.ElementByID("d"), nil)
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "p").Color())
	assert.Nil(t, doc.Find(func(sn *styledtree.StyNode) bool { return sn.LocalName() == "body" }).ComputedStyle())
	// the unstyled body is replaced by the initial style as parent
	d := styleOf(t, doc, "d")
	assert.Equal(t, mustColor(t, "black"), d.Color())
	assert.Equal(t, style.DefaultFontSize, d.Inherited().FontSize)
	assert.Equal(t, css.DisplayBlock, d.Display())
	assert.Equal(t, style.DefaultFontSize, styleOf(t, doc, "p").Inherited().FontSize)
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><head><title id="t">T</title></head><body>
	<div id="div">x</div><span id="span">y</span>
	<ul><li id="li">z</li></ul>
	<table id="table"><tr id="tr"><th id="th">h</th></tr></table>
	<a id="a" href="x.html">link</a>
	<b id="b">bold</b>
	</body>`, ``)
	tests := map[string]css.Display{
		"t": css.DisplayNone, "div": css.DisplayBlock, "span": css.DisplayInline,
		"li": css.DisplayListItem, "table": css.DisplayTable, "tr": css.DisplayTableRow,
		"th": css.DisplayTableCell,
	}
	for id, display := range tests {
		assert.Equal(t, display, styleOf(t, doc, id).Display(), id)
	}
	assert.Equal(t, css.TextAlignCenter, styleOf(t, doc, "th").Inherited().TextAlign)
	assert.Equal(t, 700, styleOf(t, doc, "b").Inherited().FontWeight)
	assert.Equal(t, css.TextDecorationUnderline, styleOf(t, doc, "a").TextDecorationsInEffect()&css.TextDecorationUnderline)
	html := doc.DocumentElement().ComputedStyle()
	require.NotNil(t, html)
	assert.Equal(t, css.DisplayBlock, html.Display())
}

func TestPseudoElementStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><p id="p">x</p><p id="q">y</p></body>`, `
	p { color: blue }
	#p::before { content: ">> "; color: red }
	#p::after { content: "<<" }
	p::frobnicate { color: green }`)
	p := styleOf(t, doc, "p")
	assert.Equal(t, mustColor(t, "blue"), p.Color())
	before := p.PseudoStyle(style.Before)
	require.NotNil(t, before)
	assert.Equal(t, mustColor(t, "red"), before.Color())
	require.Len(t, before.Generated().Content, 1)
	assert.Equal(t, style.ContentItem{Kind: style.ContentText, Value: ">> "}, before.Generated().Content[0])
	after := p.PseudoStyle(style.After)
	require.NotNil(t, after)
	assert.Equal(t, mustColor(t, "blue"), after.Color(), "pseudo-elements inherit from their element")
	assert.Nil(t, styleOf(t, doc, "q").PseudoStyle(style.Before))
}

func TestPresentationalHintsInCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body id="body" bgcolor="#ff0000">
	<font id="f" color="green">x</font>
	<table id="t" width="100" border><tr><td id="c" bgcolor="lime" align="right">1</td></tr></table>
	<div id="h" hidden>hidden</div>
	<p id="p" align="center">p</p>
	</body>`, `#c { background-color: blue }`)
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "body").BackgroundColor())
	assert.Equal(t, mustColor(t, "green"), styleOf(t, doc, "f").Color())
	table := styleOf(t, doc, "t")
	assert.InDelta(t, 100.0, table.Box().Width.Px(), 0.01)
	assert.Equal(t, css.BorderStyleOutset, table.Surround().Border[css.Top].Style)
	assert.InDelta(t, 1.0, table.Surround().Border[css.Top].Width, 0.01)
	c := styleOf(t, doc, "c")
	assert.Equal(t, mustColor(t, "blue"), c.BackgroundColor(), "author rules beat hints")
	assert.Equal(t, css.TextAlignKhtmlRight, c.Inherited().TextAlign)
	assert.Equal(t, css.DisplayNone, styleOf(t, doc, "h").Display())
	assert.Equal(t, css.TextAlignKhtmlCenter, styleOf(t, doc, "p").Inherited().TextAlign)
}

func TestStyleDependencies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><ul id="u"><li id="l1">1</li><li id="l2">2</li></ul></body>`)
	deps := &DependencyList{}
	r := NewResolver(doc)
	r.SetStyleSheets(sheet(t, `li:first-child { color: red } ul:hover li { color: blue }`, cssom.OriginAuthor))
	r.StyleSubtree(doc.DocumentElement(), deps)
	u, l1, l2 := doc.ElementByID("u"), doc.ElementByID("l1"), doc.ElementByID("l2")
	assert.True(t, deps.Has(l1, StructuralDependency, u))
	assert.True(t, deps.Has(l2, StructuralDependency, u))
	assert.True(t, deps.Has(l2, HoverDependency, u))
	assert.Equal(t, mustColor(t, "red"), styleOf(t, doc, "l1").Color())
	assert.Equal(t, style.Black, styleOf(t, doc, "l2").Color())
}

func TestPositionReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><table>
	<thead id="head"><tr id="hr"><td>1</td></tr></thead>
	<tbody id="body"><tr id="r"><td id="c">2</td></tr></tbody>
	<tfoot id="foot"><tr><td>3</td></tr></tfoot>
	</table><div id="d">x</div></body>`,
		`thead, tbody, tfoot, tr, td, div { position: relative }`)
	for _, id := range []string{"head", "hr", "body", "r", "foot"} {
		assert.Equal(t, css.PositionStatic, styleOf(t, doc, id).Position(), id)
	}
	assert.Equal(t, css.PositionRelative, styleOf(t, doc, "c").Position())
	assert.Equal(t, css.PositionRelative, styleOf(t, doc, "d").Position())
}
