package cascade

import (
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/w3cdom"
)

// maxSharingSiblings limits the search for a style to share.
const maxSharingSiblings = 10

// locateSimilarStyle looks for an already resolved style of an element
// similar to e. Candidates are, in this order: a preceding sibling with the
// same tag and class attribute, a preceding sibling with the same tag, any
// preceding sibling with a style, and the parent element. Only the first
// maxSharingSiblings siblings are inspected.
func locateSimilarStyle(e w3cdom.Element) (w3cdom.Element, *style.RenderStyle) {
	class, _ := e.Attribute("class")
	var sameTag, styled w3cdom.Element
	sib := e.PreviousElementSibling()
	for n := 0; sib != nil && n < maxSharingSiblings; n++ {
		if sib.ComputedStyle() != nil {
			if sameName(sib, e) {
				if c, _ := sib.Attribute("class"); c == class {
					return sib, sib.ComputedStyle()
				}
				if sameTag == nil {
					sameTag = sib
				}
			} else if styled == nil {
				styled = sib
			}
		}
		sib = sib.PreviousElementSibling()
	}
	switch {
	case sameTag != nil:
		return sameTag, sameTag.ComputedStyle()
	case styled != nil:
		return styled, styled.ComputedStyle()
	}
	if parent := e.ParentElement(); parent != nil && parent.ComputedStyle() != nil {
		return parent, parent.ComputedStyle()
	}
	return nil, nil
}

func sameName(a, b w3cdom.Element) bool {
	return a.LocalName() == b.LocalName() && a.Namespace() == b.Namespace()
}

// canShareStyle checks if e may use the style object of other. Equality of
// property values is not enough: the styles of both elements have to stay
// equal under changes of dynamic state and of attributes, as far as the
// cascade can tell.
func (r *Resolver) canShareStyle(e, other w3cdom.Element, ix *SelectorIndex) bool {
	if other == nil || other == e.ParentElement() || !sameName(e, other) {
		return false
	}
	c1, _ := e.Attribute("class")
	c2, _ := other.Attribute("class")
	if c1 != c2 {
		return false
	}
	if _, ok := e.Attribute("style"); ok {
		return false
	}
	if _, ok := other.Attribute("style"); ok {
		return false
	}
	if id := e.ID(); id != "" && ix.HasIDSelector(id) {
		return false
	}
	if id := other.ID(); id != "" && ix.HasIDSelector(id) {
		return false
	}
	if e.State() != other.State() || e.Traits() != other.Traits() {
		return false
	}
	return !e.Traits().Has(w3cdom.IsLink)
}

// shareStyle tries to reuse storage of a similar style for rs. If rs is
// equal to the style of a compatible sibling, the sibling's style object
// is returned. Otherwise property groups with equal values are shared and
// rs is returned.
func (r *Resolver) shareStyle(e w3cdom.Element, rs *style.RenderStyle, ix *SelectorIndex) *style.RenderStyle {
	other, similar := locateSimilarStyle(e)
	if similar == nil || similar == unavailable {
		return rs
	}
	if rs.CompactWith(similar) && r.canShareStyle(e, other, ix) {
		tracer().Debugf("<%s> shares style with preceding <%s>", e.LocalName(), other.LocalName())
		return similar
	}
	return rs
}
