package style

import (
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyTable(t *testing.T) {
	id, ok := PropertyByName("Margin-Top")
	require.True(t, ok)
	assert.Equal(t, PropMarginTop, id)
	assert.Equal(t, GroupSurround, id.Group())
	assert.False(t, id.IsInherited())
	assert.True(t, PropColor.IsInherited())
	assert.True(t, PropColor.AppliesFirst())
	assert.True(t, PropDisplay.AppliesFirst())
	assert.False(t, PropWidth.AppliesFirst())
	assert.True(t, PropBorder.IsShorthand())
	_, ok = PropertyByName("flow-into")
	assert.False(t, ok)
	for id := PropertyID(1); id < propertyCount; id++ {
		x, ok := PropertyByName(id.Name())
		assert.True(t, ok, id.Name())
		assert.Equal(t, id, x, id.Name())
	}
}

func TestExpandBox(t *testing.T) {
	r, ok := ExpandBox([]string{"1px"})
	assert.True(t, ok)
	assert.Equal(t, [4]string{"1px", "1px", "1px", "1px"}, r)
	r, _ = ExpandBox([]string{"1px", "2px"})
	assert.Equal(t, [4]string{"1px", "2px", "1px", "2px"}, r)
	r, _ = ExpandBox([]string{"1px", "2px", "3px"})
	assert.Equal(t, [4]string{"1px", "2px", "3px", "2px"}, r)
	r, _ = ExpandBox([]string{"1px", "2px", "3px", "4px"})
	assert.Equal(t, [4]string{"1px", "2px", "3px", "4px"}, r)
	_, ok = ExpandBox([]string{})
	assert.False(t, ok)
	_, ok = ExpandBox([]string{"1", "2", "3", "4", "5"})
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("red", false)
	require.NoError(t, err)
	assert.Equal(t, RGBA(0xff, 0, 0, 0xff), c)
	c, err = ParseColor("#00f", false)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", c.String())
	_, err = ParseColor("00f", false)
	assert.Error(t, err)
	_, err = ParseColor("ff0000", false)
	assert.Error(t, err, "bare hex is a quirks-mode extension")
	c, err = ParseColor("00f", true)
	require.NoError(t, err)
	assert.Equal(t, RGBA(0, 0, 0xff, 0xff), c)
	c, err = ParseColor("transparent", false)
	require.NoError(t, err)
	assert.True(t, c.IsTransparent())
	assert.False(t, Color{}.IsValid())
	assert.Equal(t, Black, Color{}.Or(Black))
}

func TestCopyOnWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	parent := New()
	parent.EditInherited().Color = RGBA(0xff, 0, 0, 0xff)
	child := New()
	child.InheritFrom(parent)
	assert.True(t, child.SharesGroup(parent, GroupInherited))
	child.EditInherited().FontWeight = 700
	assert.False(t, child.SharesGroup(parent, GroupInherited))
	assert.Equal(t, 400, parent.Inherited().FontWeight, "parent must not change")
	assert.Equal(t, parent.Color(), child.Color())
	//
	assert.True(t, child.SharesGroup(InitialStyle(), GroupBox))
	child.EditBox().Width = css.Px(100)
	assert.True(t, InitialStyle().Box().Width.IsAuto(), "initial values must not change")
}

func TestCompactWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	a, b := New(), New()
	a.EditFlags().Display = css.DisplayListItem
	b.EditFlags().Display = css.DisplayListItem
	a.EditSurround().Margin[css.Left] = css.Px(10)
	b.EditSurround().Margin[css.Left] = css.Px(10)
	assert.True(t, a.Equal(b))
	assert.True(t, b.CompactWith(a))
	assert.True(t, b.SharesGroup(a, GroupFlags))
	assert.True(t, b.SharesGroup(a, GroupSurround))
	// editing after sharing must not leak into the other style
	b.EditFlags().Float = css.FloatLeft
	assert.Equal(t, css.FloatNone, a.Float())
	//
	c := New()
	c.EditFlags().Display = css.DisplayListItem
	c.EditBox().Height = css.Px(3)
	assert.False(t, c.CompactWith(a), "differing box group")
	assert.True(t, c.SharesGroup(a, GroupFlags))
	assert.False(t, c.SharesGroup(a, GroupSurround))
	assert.True(t, c.Box().Height.IsAbsolute())
}

func TestPseudoStyles(t *testing.T) {
	s := New()
	s.EditInherited().Color = White
	before := s.AddPseudoStyle(Before)
	assert.Equal(t, Before, before.PseudoID())
	assert.Equal(t, White, before.Color())
	assert.Same(t, before, s.AddPseudoStyle(Before))
	assert.Nil(t, s.PseudoStyle(After))
	assert.Len(t, s.PseudoStyles(), 1)
	o := New()
	o.EditInherited().Color = White
	assert.False(t, s.Equal(o))
	o.AddPseudoStyle(Before)
	assert.True(t, s.Equal(o))
}

func TestBackgroundCompact(t *testing.T) {
	s := New()
	bg := s.EditBackground()
	l0 := bg.Layer(0)
	l0.Image, l0.Repeat = "a.png", css.NoRepeat
	l0.Set |= LayerImage | LayerRepeat
	l1 := bg.Layer(1)
	l1.Image = "b.png"
	l1.Set |= LayerImage
	l2 := bg.Layer(2)
	l2.Repeat = css.RepeatX
	l2.Set |= LayerRepeat
	bg.Compact()
	layers := s.BackgroundLayers()
	require.Len(t, layers, 2)
	assert.Equal(t, css.NoRepeat, layers[1].Repeat, "repeat is filled cyclically")
	assert.Len(t, InitialStyle().BackgroundLayers(), 1)
}
