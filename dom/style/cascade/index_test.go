package cascade

import (
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const indexRules = `
* { color: red }
div { color: blue }
.x { color: green }
#y { color: black }
div.x span { margin-left: 0 }
`

func TestSelectorIndexBuckets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	rules := RulesOf(sheet(t, indexRules, cssom.OriginAuthor), cssom.MediaEnvironment{Type: "screen"}, nil)
	ix := BuildIndex([]RuleSet{rules}, true)
	assert.Equal(t, SelectorID(5), ix.N())
	assert.Equal(t, 5, ix.PropertyCount())
	assert.Equal(t, "div", ix.Selector(1).Tag.Local)
	//
	doc := parseDoc(t, `<!DOCTYPE html><body><div id="y" class="x"><span id="s">a</span></div></body>`)
	assert.Equal(t, []SelectorID{0, 2, 3, 1}, ix.CandidatesFor(doc.ElementByID("y")))
	assert.Equal(t, []SelectorID{0, 4}, ix.CandidatesFor(doc.ElementByID("s")))
	assert.True(t, ix.HasIDSelector("y"))
	assert.False(t, ix.HasIDSelector("Y"))
	assert.False(t, ix.HasIDSelector("s"))
}

func TestSelectorIndexFoldsCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	rules := RulesOf(sheet(t, indexRules, cssom.OriginAuthor), cssom.MediaEnvironment{Type: "screen"}, nil)
	ix := BuildIndex([]RuleSet{rules}, false)
	doc := parseDoc(t, `<body><p id="Y" class="X">a</p></body>`)
	assert.Equal(t, []SelectorID{0, 2, 3}, ix.CandidatesFor(doc.ElementByID("Y")))
	assert.True(t, ix.HasIDSelector("Y"))
}

func TestSelectorIndexOrdersOrigins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	env := cssom.MediaEnvironment{Type: "screen"}
	ua := RulesOf(sheet(t, `p { color: gray }`, cssom.OriginUserAgent), env, nil)
	author := RulesOf(sheet(t, `p { color: navy !important }`, cssom.OriginAuthor), env, nil)
	ix := BuildIndex([]RuleSet{ua, author}, true)
	doc := parseDoc(t, `<body><p id="p">a</p></body>`)
	ids := ix.CandidatesFor(doc.ElementByID("p"))
	assert.Equal(t, []SelectorID{0, 1}, ids)
	var props []orderedProperty
	for _, id := range ids {
		props = ix.propertiesOf(id, props, style.NoPseudo)
	}
	if assert.Len(t, props, 2) {
		assert.Equal(t, TierDefault, props[0].priority.Tier())
		assert.Equal(t, TierAuthorImportant, props[1].priority.Tier())
		assert.True(t, props[0].position < props[1].position)
	}
}
