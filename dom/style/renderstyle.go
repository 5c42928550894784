package style

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/cascade/css"
)

// PseudoID identifies a generated pseudo-element.
type PseudoID uint8

// Pseudo-elements which may receive a style of their own.
const (
	NoPseudo PseudoID = iota
	FirstLine
	FirstLetter
	Before
	After
	Selection
	Marker
)

var pseudoNames = [...]string{"", "first-line", "first-letter", "before", "after", "selection", "marker"}

func (p PseudoID) String() string {
	if int(p) < len(pseudoNames) {
		return pseudoNames[p]
	}
	return "?"
}

type groupSet uint16

func (gs groupSet) has(g Group) bool { return gs&(1<<g) != 0 }

// RenderStyle is the resolved style of an element or of one of its
// pseudo-elements.
//
// Property values are held in groups, which are shared copy-on-write
// between styles: a style created by inheritance initially references the
// groups of its parent and of the initial style, and copies a group the
// first time it is edited. Getters for groups return read-only views;
// clients have to call the EditXxx variants for writing.
//
// A style owns the styles of its pseudo-elements. Once handed out by the
// cascade, a style must be treated as immutable.
type RenderStyle struct {
	inherited  *Inherited
	box        *Box
	surround   *Surround
	visual     *Visual
	background *Background
	flags      *Flags
	generated  *Generated
	marquee    *Marquee

	owned           groupSet // groups we may edit in place
	explicitInherit groupSet // non-inherited groups touched by `inherit`
	pseudoID        PseudoID
	pseudos         []*RenderStyle
}

// New creates a style holding initial values for all properties.
func New() *RenderStyle {
	return &RenderStyle{
		inherited:  &initialInherited,
		box:        &initialBox,
		surround:   &initialSurround,
		visual:     &initialVisual,
		background: &initialBackground,
		flags:      &initialFlags,
		generated:  &initialGenerated,
		marquee:    &initialMarquee,
	}
}

// InheritFrom makes s inherit all inherited properties from parent.
func (s *RenderStyle) InheritFrom(parent *RenderStyle) {
	if parent == nil {
		return
	}
	s.inherited = parent.inherited
	s.owned &^= 1 << GroupInherited
}

// Copy returns a shallow copy of s, sharing all property groups.
// Pseudo-styles are not copied.
func (s *RenderStyle) Copy() *RenderStyle {
	c := *s
	c.owned = 0
	c.pseudos = nil
	return &c
}

// Read-only views of the property groups.

func (s *RenderStyle) Inherited() *Inherited   { return s.inherited }
func (s *RenderStyle) Box() *Box               { return s.box }
func (s *RenderStyle) Surround() *Surround     { return s.surround }
func (s *RenderStyle) Visual() *Visual         { return s.visual }
func (s *RenderStyle) Background() *Background { return s.background }
func (s *RenderStyle) Flags() *Flags           { return s.flags }
func (s *RenderStyle) Generated() *Generated   { return s.generated }
func (s *RenderStyle) Marquee() *Marquee       { return s.marquee }

func edit[G any](s *RenderStyle, g Group, p **G, clone func(G) G) *G {
	if !s.owned.has(g) {
		c := clone(**p)
		*p = &c
		s.owned |= 1 << g
	}
	return *p
}

func same[G any](g G) G { return g }

// EditInherited returns the inherited group for writing.
func (s *RenderStyle) EditInherited() *Inherited {
	return edit(s, GroupInherited, &s.inherited, same[Inherited])
}

// EditBox returns the box group for writing.
func (s *RenderStyle) EditBox() *Box {
	return edit(s, GroupBox, &s.box, same[Box])
}

// EditSurround returns the surround group for writing.
func (s *RenderStyle) EditSurround() *Surround {
	return edit(s, GroupSurround, &s.surround, same[Surround])
}

// EditVisual returns the visual group for writing.
func (s *RenderStyle) EditVisual() *Visual {
	return edit(s, GroupVisual, &s.visual, same[Visual])
}

// EditBackground returns the background group for writing. Layers are
// copied.
func (s *RenderStyle) EditBackground() *Background {
	return edit(s, GroupBackground, &s.background, func(bg Background) Background {
		bg.Layers = append([]BackgroundLayer(nil), bg.Layers...)
		return bg
	})
}

// EditFlags returns the flags group for writing.
func (s *RenderStyle) EditFlags() *Flags {
	return edit(s, GroupFlags, &s.flags, same[Flags])
}

// EditGenerated returns the generated-content group for writing.
func (s *RenderStyle) EditGenerated() *Generated {
	return edit(s, GroupGenerated, &s.generated, same[Generated])
}

// EditMarquee returns the marquee group for writing.
func (s *RenderStyle) EditMarquee() *Marquee {
	return edit(s, GroupMarquee, &s.marquee, same[Marquee])
}

// SetExplicitInherit records that a non-inherited property of group g has
// been set to `inherit`.
func (s *RenderStyle) SetExplicitInherit(g Group) {
	if g != GroupInherited && g < groupCount {
		s.explicitInherit |= 1 << g
	}
}

// HasExplicitInherit is true if any non-inherited property has been set to
// `inherit`. Such styles depend on their parent beyond the inherited group.
func (s *RenderStyle) HasExplicitInherit() bool {
	return s.explicitInherit != 0
}

// --- Shortcuts -------------------------------------------------------------

func (s *RenderStyle) Display() css.Display                { return s.flags.Display }
func (s *RenderStyle) OriginalDisplay() css.Display        { return s.flags.OriginalDisplay }
func (s *RenderStyle) Position() css.Position              { return s.flags.Position }
func (s *RenderStyle) Float() css.Float                    { return s.flags.Float }
func (s *RenderStyle) Color() Color                        { return s.inherited.Color }
func (s *RenderStyle) FontSize() float64                   { return s.inherited.FontSize }
func (s *RenderStyle) BackgroundColor() Color              { return s.background.Color }
func (s *RenderStyle) BackgroundLayers() []BackgroundLayer { return s.background.Layers }
func (s *RenderStyle) TextDecorationsInEffect() css.TextDecoration {
	return s.inherited.DecorationsInEffect
}

// IsFloating is true for styles with float left or right.
func (s *RenderStyle) IsFloating() bool {
	return s.flags.Float != css.FloatNone
}

// --- Pseudo-element styles -------------------------------------------------

// PseudoID returns the pseudo-element s is the style for, if any.
func (s *RenderStyle) PseudoID() PseudoID {
	return s.pseudoID
}

// PseudoStyle returns the style for a pseudo-element, or nil.
func (s *RenderStyle) PseudoStyle(id PseudoID) *RenderStyle {
	for _, ps := range s.pseudos {
		if ps.pseudoID == id {
			return ps
		}
	}
	return nil
}

// PseudoStyles returns all pseudo-element styles of s.
func (s *RenderStyle) PseudoStyles() []*RenderStyle {
	return s.pseudos
}

// AddPseudoStyle creates a style for pseudo-element id, inheriting from s,
// or returns the existing one.
func (s *RenderStyle) AddPseudoStyle(id PseudoID) *RenderStyle {
	if ps := s.PseudoStyle(id); ps != nil {
		return ps
	}
	ps := New()
	ps.InheritFrom(s)
	ps.pseudoID = id
	s.pseudos = append(s.pseudos, ps)
	return ps
}

// --- Comparison and sharing ------------------------------------------------

func (s *RenderStyle) groupEqual(o *RenderStyle, g Group) bool {
	switch g {
	case GroupInherited:
		return s.inherited == o.inherited || reflect.DeepEqual(s.inherited, o.inherited)
	case GroupBox:
		return s.box == o.box || *s.box == *o.box
	case GroupSurround:
		return s.surround == o.surround || *s.surround == *o.surround
	case GroupVisual:
		return s.visual == o.visual || *s.visual == *o.visual
	case GroupBackground:
		return s.background == o.background || reflect.DeepEqual(s.background, o.background)
	case GroupFlags:
		return s.flags == o.flags || *s.flags == *o.flags
	case GroupGenerated:
		return s.generated == o.generated || reflect.DeepEqual(s.generated, o.generated)
	case GroupMarquee:
		return s.marquee == o.marquee || *s.marquee == *o.marquee
	}
	return false
}

// Equal compares two styles by value, including pseudo-element styles.
func (s *RenderStyle) Equal(o *RenderStyle) bool {
	if s == o {
		return true
	}
	if o == nil || s.pseudoID != o.pseudoID || s.explicitInherit != o.explicitInherit {
		return false
	}
	for g := Group(0); g < groupCount; g++ {
		if !s.groupEqual(o, g) {
			return false
		}
	}
	if len(s.pseudos) != len(o.pseudos) {
		return false
	}
	for _, ps := range s.pseudos {
		if !ps.Equal(o.PseudoStyle(ps.pseudoID)) {
			return false
		}
	}
	return true
}

// CompactWith shares storage with another style for every property group
// with equal values. Groups with differing values are kept. It returns
// true if s and o are equal by value, in which case s may be replaced by o.
func (s *RenderStyle) CompactWith(o *RenderStyle) bool {
	if o == nil || o == s {
		return o != nil
	}
	shared := 0
	for g := Group(0); g < groupCount; g++ {
		if !s.groupEqual(o, g) {
			continue
		}
		shared++
		switch g {
		case GroupInherited:
			s.inherited = o.inherited
		case GroupBox:
			s.box = o.box
		case GroupSurround:
			s.surround = o.surround
		case GroupVisual:
			s.visual = o.visual
		case GroupBackground:
			s.background = o.background
		case GroupFlags:
			s.flags = o.flags
		case GroupGenerated:
			s.generated = o.generated
		case GroupMarquee:
			s.marquee = o.marquee
		}
		s.owned &^= 1 << g
	}
	tracer().Debugf("style sharing: %d of %d groups shared", shared, groupCount)
	return shared == int(groupCount) && s.Equal(o)
}

// SharesGroup is true if s and o reference the same storage for group g.
func (s *RenderStyle) SharesGroup(o *RenderStyle, g Group) bool {
	switch g {
	case GroupInherited:
		return s.inherited == o.inherited
	case GroupBox:
		return s.box == o.box
	case GroupSurround:
		return s.surround == o.surround
	case GroupVisual:
		return s.visual == o.visual
	case GroupBackground:
		return s.background == o.background
	case GroupFlags:
		return s.flags == o.flags
	case GroupGenerated:
		return s.generated == o.generated
	case GroupMarquee:
		return s.marquee == o.marquee
	}
	return false
}

func (s *RenderStyle) String() string {
	var b strings.Builder
	b.WriteString("style{")
	if s.pseudoID != NoPseudo {
		fmt.Fprintf(&b, "::%s ", s.pseudoID)
	}
	fmt.Fprintf(&b, "display=%s position=%s float=%s color=%s font-size=%.2fpx",
		s.flags.Display, s.flags.Position, css.FloatKeywords.Name(s.flags.Float),
		s.inherited.Color, s.inherited.FontSize)
	if bg := s.background.Color; bg.IsValid() && !bg.IsTransparent() {
		fmt.Fprintf(&b, " background=%s", bg)
	}
	b.WriteString("}")
	return b.String()
}
