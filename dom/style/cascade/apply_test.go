package cascade

import (
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body>
	<div id="d">x</div>
	<ul><li id="l">y</li></ul>
	<p id="f">z</p>
	</body>`, `
	#d { margin: 1px 2px 3px; padding: 4px; border: 2px dashed red; border-left-color: blue; }
	#l { list-style: square inside; }
	#f { font: italic bold 12px/1.5 "Helvetica", sans-serif; }
	`)
	sur := styleOf(t, doc, "d").Surround()
	assert.Equal(t, 1.0, sur.Margin[css.Top].Px())
	assert.Equal(t, 2.0, sur.Margin[css.Right].Px())
	assert.Equal(t, 3.0, sur.Margin[css.Bottom].Px())
	assert.Equal(t, 2.0, sur.Margin[css.Left].Px())
	for _, p := range sur.Padding {
		assert.Equal(t, 4.0, p.Px())
	}
	assert.Equal(t, 2.0, sur.Border[css.Top].Width)
	assert.Equal(t, css.BorderStyleDashed, sur.Border[css.Bottom].Style)
	assert.Equal(t, mustColor(t, "red"), sur.Border[css.Right].Color)
	assert.Equal(t, mustColor(t, "blue"), sur.Border[css.Left].Color)
	//
	l := styleOf(t, doc, "l").Inherited()
	assert.Equal(t, css.ListStyleSquare, l.ListStyleType)
	assert.Equal(t, css.ListStyleInside, l.ListStylePosition)
	//
	f := styleOf(t, doc, "f").Inherited()
	assert.Equal(t, css.FontStyleItalic, f.FontStyle)
	assert.Equal(t, 700, f.FontWeight)
	assert.Equal(t, 12.0, f.FontSize)
	assert.Equal(t, []string{"Helvetica", "sans-serif"}, f.FontFamily)
}

func TestInvalidDeclarationsAreIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><div id="d">x</div></body>`, `
	#d { color: blue; color: nonsense; }
	#d { color: ff0000; }
	#d { margin-left: 5px; margin-left: 12; }
	#d { border: 3px bogus red; }
	#d { font-weight: 600; font-weight: 450; }
	`)
	rs := styleOf(t, doc, "d")
	assert.Equal(t, mustColor(t, "blue"), rs.Color())
	assert.Equal(t, 5.0, rs.Surround().Margin[css.Left].Px())
	assert.Equal(t, css.BorderStyleNone, rs.Surround().Border[css.Top].Style)
	assert.Equal(t, 600, rs.Inherited().FontWeight)
}

func TestQuirksModeValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	rules := `#d { border-top: 0.5px solid; color: 336699; margin-left: 12; }`
	quirks := styled(t, `<html><body><div id="d">x</div></body></html>`, rules)
	rs := styleOf(t, quirks, "d")
	assert.Equal(t, 1.0, rs.Surround().Border[css.Top].Width)
	assert.Equal(t, mustColor(t, "#336699"), rs.Color())
	assert.Equal(t, 12.0, rs.Surround().Margin[css.Left].Px())
	//
	strict := styled(t, `<!DOCTYPE html><html><body><div id="d">x</div></body></html>`, rules)
	rs = styleOf(t, strict, "d")
	assert.Equal(t, 0.5, rs.Surround().Border[css.Top].Width)
	assert.Equal(t, mustColor(t, "black"), rs.Color())
	assert.Equal(t, 0.0, rs.Surround().Margin[css.Left].Px())
}

func TestRelativeFontWeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body>
	<b id="b1">x<b id="b2">y<span id="s" style="font-weight: lighter">z</span></b></b>
	</body>`, ``)
	assert.Equal(t, 700, styleOf(t, doc, "b1").Inherited().FontWeight)
	assert.Equal(t, 900, styleOf(t, doc, "b2").Inherited().FontWeight)
	assert.Equal(t, 700, styleOf(t, doc, "s").Inherited().FontWeight)
}

func TestFontRelativeUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	doc := styled(t, `<!DOCTYPE html><body><div id="d">x</div></body>`,
		`#d { margin-left: 2em; margin-right: 2ex; font-size: 20px; }`)
	sur := styleOf(t, doc, "d").Surround()
	assert.Equal(t, 40.0, sur.Margin[css.Left].Px())
	assert.Equal(t, 20.0, sur.Margin[css.Right].Px())
}
