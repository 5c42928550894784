package cssom

import (
	"errors"
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	vals, err := ParseValues(`1.5em solid  #FF0000 50% "Times New Roman", url(a.png) 0 / 20px`)
	require.NoError(t, err)
	require.Len(t, vals, 10)
	assert.Equal(t, ValueDimension, vals[0].Kind)
	assert.Equal(t, 1.5, vals[0].Num)
	assert.Equal(t, "em", vals[0].Unit)
	assert.True(t, vals[1].IsIdent("SOLID"))
	assert.Equal(t, ValueHash, vals[2].Kind)
	assert.Equal(t, "FF0000", vals[2].Text)
	assert.Equal(t, ValuePercentage, vals[3].Kind)
	assert.Equal(t, 50.0, vals[3].Num)
	assert.Equal(t, ValueString, vals[4].Kind)
	assert.Equal(t, "Times New Roman", vals[4].Text)
	assert.Equal(t, ValueComma, vals[5].Kind)
	assert.Equal(t, ValueURI, vals[6].Kind)
	assert.Equal(t, "a.png", vals[6].Text)
	assert.Equal(t, ValueNumber, vals[7].Kind)
	assert.Equal(t, ValueSlash, vals[8].Kind)
	assert.Equal(t, 20.0, vals[9].Num)
	assert.Equal(t, "px", vals[9].Unit)
}

func TestParseFunctionValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	vals, err := ParseValues("rgb(10, 20, 30) counter(item, upper-roman)")
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, ValueFunction, vals[0].Kind)
	assert.Equal(t, "rgb", vals[0].Text)
	assert.Equal(t, "rgb(10, 20, 30)", vals[0].Raw)
	args := vals[1].FunctionArgs()
	require.Len(t, args, 2)
	assert.True(t, args[0][0].IsIdent("item"))
	assert.True(t, args[1][0].IsIdent("upper-roman"))
}

func TestSplitDimension(t *testing.T) {
	for _, test := range [][3]string{
		{"12px", "12", "px"}, {"-1.5em", "-1.5", "em"}, {"2e3px", "2e3", "px"},
		{"3ex", "3", "ex"}, {".5in", ".5", "in"},
	} {
		n, u := splitDimension(test[0])
		assert.Equal(t, test[1], n, test[0])
		assert.Equal(t, test[2], u, test[0])
	}
}

func TestDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	d, err := NewDeclaration("Color", "red !important", false)
	require.NoError(t, err)
	assert.Equal(t, style.PropColor, d.Property)
	assert.True(t, d.Important)
	assert.Len(t, d.Values, 1)
	assert.Equal(t, "color: red !important", d.String())
	d = MustDeclaration("margin", "inherit")
	assert.True(t, d.IsInherit())
	assert.False(t, d.IsInitial())
	_, err = NewDeclaration("flow-into", "x", false)
	assert.True(t, errors.Is(err, ErrUnknownProperty))
	_, err = NewDeclaration("color", "  ", false)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestMediaQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	screen := Screen(800, 600)
	paper := MediaEnvironment{Type: "print", Width: 600, Height: 900}
	tests := []struct {
		media         string
		screen, print bool
	}{
		{"", true, true},
		{"all", true, true},
		{"screen", true, false},
		{"print", false, true},
		{"screen, print", true, true},
		{"not print", true, false},
		{"only screen and (min-width: 700px)", true, false},
		{"screen and (max-width: 700px)", false, false},
		{"(min-width: 640px)", true, false},
		{"(orientation: landscape)", true, false},
		{"(orientation: portrait)", false, true},
		{"screen and (min-width: 40em)", true, false},
		{"screen and (frobnication)", false, false},
		{"screen and", false, false},
	}
	for _, test := range tests {
		ml := ParseMediaList(test.media)
		assert.Equal(t, test.screen, ml.Matches(screen), "screen: %q", test.media)
		assert.Equal(t, test.print, ml.Matches(paper), "print: %q", test.media)
	}
}

type fontCollector struct {
	faces []map[string]string
}

func (fc *fontCollector) AddFontFace(desc map[string]string, base string) {
	fc.faces = append(fc.faces, desc)
}

func TestStyleRulesFlatten(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	mustRule := func(sel string) *Rule {
		r, err := NewStyleRule(sel, []Declaration{MustDeclaration("color", "red")})
		require.NoError(t, err)
		return r
	}
	imported := &StyleSheet{Origin: OriginAuthor, Rules: []*Rule{mustRule("h1")}}
	sheet := &StyleSheet{Origin: OriginAuthor, Rules: []*Rule{
		{Kind: ImportRule, Href: "a.css", Import: imported},
		{Kind: ImportRule, Href: "p.css", Import: imported, Media: ParseMediaList("print")},
		mustRule("p"),
		{Kind: MediaRule, Media: ParseMediaList("print"), Rules: []*Rule{mustRule("div")}},
		{Kind: MediaRule, Media: ParseMediaList("screen"), Rules: []*Rule{mustRule("span")}},
		{Kind: FontFaceRule, Descriptors: map[string]string{"font-family": "Foo"}},
	}}
	fonts := &fontCollector{}
	rules := sheet.StyleRules(Screen(1024, 768), fonts)
	require.Len(t, rules, 3)
	assert.Equal(t, "h1", rules[0].SelectorText)
	assert.Equal(t, "p", rules[1].SelectorText)
	assert.Equal(t, "span", rules[2].SelectorText)
	require.Len(t, fonts.faces, 1)
	assert.Equal(t, "Foo", fonts.faces[0]["font-family"])
	//
	sheet.Media = ParseMediaList("print")
	assert.Empty(t, sheet.StyleRules(Screen(1024, 768), nil))
}
