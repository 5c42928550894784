package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myhtml = `<!DOCTYPE html><html><head>
<style>
  #x { margin-left: 3px; color: red }
  p::before { content: "*" }
</style>
</head><body>
  <p id="x" class="c">The quick brown fox jumps over the lazy dog.</p>
</body></html>
`

func styledDocument(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	doc.Style(nil)
	return doc
}

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc := styledDocument(t)
	var b bytes.Buffer
	Tree(doc.Document, &b)
	out := b.String()
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "#document"))
	assert.Contains(t, out, "<body>")
	assert.Contains(t, out, "<p#x.c> style{display=block")
	assert.Contains(t, out, "color=#ff0000")
	assert.Contains(t, out, "::before")
	//
	unstyled, err := styledtree.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	b.Reset()
	Tree(unstyled, &b)
	assert.Contains(t, b.String(), "<html> (unstyled)")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc := styledDocument(t)
	var b bytes.Buffer
	ToGraphViz(doc.Document, &b, nil)
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="p"`)
	assert.Contains(t, out, "margin-left:</td><td>3px")
	assert.Contains(t, out, "shape=box")
	assert.NotContains(t, out, "font-size:")
	//
	b.Reset()
	ToGraphViz(doc.Document, &b, []string{GroupFont})
	assert.Contains(t, b.String(), "font-size:")
	assert.NotContains(t, b.String(), "margin-left:")
}

func TestGroupProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc := styledDocument(t)
	rs := doc.ElementByID("x").ComputedStyle()
	require.NotNil(t, rs)
	assert.Nil(t, GroupProperties(rs, "no-such-group"))
	pg := GroupProperties(rs, GroupMargins)
	require.NotNil(t, pg)
	assert.Len(t, pg.Properties, 4)
	assert.Contains(t, pg.Properties, Property{"margin-left", "3px"})
	pg = GroupProperties(rs, GroupDisplay)
	require.NotNil(t, pg)
	assert.Contains(t, pg.Properties, Property{"display", "block"})
	assert.Contains(t, pg.Properties, Property{"float", "none"})
	pg = GroupProperties(rs, GroupFont)
	require.NotNil(t, pg)
	assert.Contains(t, pg.Properties, Property{"color", "#ff0000"})
}
