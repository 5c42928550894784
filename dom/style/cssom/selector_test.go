package cssom

import (
	"errors"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestParseCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sel, err := ParseSelector("p.note:hover")
	require.NoError(t, err)
	assert.Equal(t, "p", sel.Tag.Local)
	assert.Equal(t, atom.P, sel.Tag.Atom)
	assert.Equal(t, MatchClass, sel.Match)
	assert.Equal(t, "note", sel.Value)
	assert.Equal(t, SubSelector, sel.Relation)
	require.NotNil(t, sel.TagHistory)
	hover := sel.TagHistory
	assert.True(t, hover.Tag.IsAny())
	assert.Equal(t, MatchPseudoClass, hover.Match)
	assert.Equal(t, PseudoHover, hover.Pseudo)
	assert.Nil(t, hover.TagHistory)
	assert.Equal(t, SubSelector, hover.Relation)
}

func TestParseCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sel, err := ParseSelector("div.a > ul li + li ~ span")
	require.NoError(t, err)
	// subject first
	assert.Equal(t, "span", sel.Tag.Local)
	assert.Equal(t, IndirectAdjacent, sel.Relation)
	li2 := sel.TagHistory
	assert.Equal(t, "li", li2.Tag.Local)
	assert.Equal(t, DirectAdjacent, li2.Relation)
	li1 := li2.TagHistory
	assert.Equal(t, Descendant, li1.Relation)
	ul := li1.TagHistory
	assert.Equal(t, "ul", ul.Tag.Local)
	assert.Equal(t, Child, ul.Relation)
	div := ul.TagHistory
	assert.Equal(t, "div", div.Tag.Local)
	assert.Equal(t, MatchClass, div.Match)
	assert.Equal(t, SubSelector, div.Relation)
	assert.Nil(t, div.TagHistory)
	assert.Equal(t, "div.a > ul li + li ~ span", sel.String())
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	tests := []struct {
		text  string
		match MatchKind
		value string
	}{
		{"[href]", MatchSet, ""},
		{"[lang=en]", MatchExact, "en"},
		{`[class~="x"]`, MatchList, "x"},
		{"[lang|=en]", MatchHyphen, "en"},
		{"[title*='a b']", MatchContain, "a b"},
		{"[src^=http]", MatchBegin, "http"},
		{"[src$=png]", MatchEnd, "png"},
	}
	for _, test := range tests {
		sel, err := ParseSelector(test.text)
		require.NoError(t, err, test.text)
		assert.Equal(t, test.match, sel.Match, test.text)
		assert.Equal(t, test.value, sel.Value, test.text)
		assert.True(t, sel.Tag.IsAny())
	}
}

func TestParsePseudo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sel := MustParseSelector("li:nth-child(2n+1)")
	assert.Equal(t, "li", sel.Tag.Local)
	assert.Equal(t, PseudoNthChild, sel.Pseudo)
	assert.Equal(t, "2n+1", sel.Argument)
	sel = MustParseSelector("p:first-line")
	assert.Equal(t, MatchPseudoElement, sel.Match)
	assert.Equal(t, PseudoFirstLine, sel.PseudoElement())
	sel = MustParseSelector("p::selection")
	assert.Equal(t, PseudoSelection, sel.PseudoElement())
	sel = MustParseSelector("p:selection") // not a legacy pseudo-element
	assert.Equal(t, PseudoUnknown, sel.Pseudo)
	assert.Equal(t, PseudoNone, sel.PseudoElement())
	sel = MustParseSelector("a.x:frobnicate")
	assert.Equal(t, PseudoUnknown, sel.TagHistory.Pseudo)
	sel = MustParseSelector(":hover(x)")
	assert.Equal(t, PseudoUnknown, sel.Pseudo)
	sel = MustParseSelector(`:lang("de")`)
	assert.Equal(t, "de", sel.Argument)
	sel = MustParseSelector("p.x:contains(foo bar)")
	assert.Equal(t, "foo bar", sel.TagHistory.Argument)
}

func TestParseNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sel := MustParseSelector("li:not(.skip)")
	assert.Equal(t, PseudoNot, sel.Pseudo)
	require.NotNil(t, sel.Simple)
	assert.Equal(t, MatchClass, sel.Simple.Match)
	assert.Equal(t, "skip", sel.Simple.Value)
	assert.Equal(t, "li:not(.skip)", sel.String())
	// nested negation is kept, the matcher rejects it
	sel = MustParseSelector(":not(:not(.skip))")
	require.NotNil(t, sel.Simple)
	assert.Equal(t, PseudoNot, sel.Simple.Pseudo)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	for _, text := range []string{"", "  ", "p >", "> p", "p,,q", "p::before span",
		"p::after.x", "[=x]", "[a=]", "a!b", ".", "p:not(x"} {
		_, err := ParseSelectorGroup(text)
		assert.Error(t, err, "%q should not parse", text)
	}
	_, err := ParseSelectorGroup("svg|rect")
	assert.True(t, errors.Is(err, ErrUnsupportedSelector))
	group, err := ParseSelectorGroup("h1, h2 ,h3")
	require.NoError(t, err)
	assert.Len(t, group, 3)
	assert.Equal(t, "h2", group[1].Tag.Local)
}

func TestSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	for _, text := range []string{
		"*", "p", "p.a", "#x", "div#x.a.b", "ul li", "ul > li + li",
		"a[href]:first-child", "li:nth-child(2n+1)", "li:not(.skip)", "#a #b .c d",
		"input[type=text]:empty", "p:first-child",
	} {
		sel, err := ParseSelector(text)
		require.NoError(t, err, text)
		oracle, err := cascadia.Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, Specificity(oracle.Specificity()), sel.Specificity(), text)
	}
	sel := MustParseSelector("p::before")
	assert.Equal(t, Specificity{0, 0, 2}, sel.Specificity())
}

func TestSpecificityOrder(t *testing.T) {
	id := MustParseSelector("#x").Specificity()
	cls := MustParseSelector(".a.b.c.d").Specificity()
	assert.True(t, cls.Less(id))
	assert.False(t, id.Less(cls))
	assert.Less(t, cls.Value(), id.Value())
	big := Specificity{0, 300, 0}
	assert.Equal(t, uint32(0xff00), big.Value())
}
