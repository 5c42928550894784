package cssom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// MatchKind is the kind of test a simple selector performs, besides
// testing the element's tag.
type MatchKind uint8

// Kinds of simple selectors.
const (
	MatchNone          MatchKind = iota // type selector only
	MatchID                             // #id
	MatchClass                          // .class
	MatchExact                          // [attr=value]
	MatchSet                            // [attr]
	MatchList                           // [attr~=value]
	MatchHyphen                         // [attr|=value]
	MatchContain                        // [attr*=value]
	MatchBegin                          // [attr^=value]
	MatchEnd                            // [attr$=value]
	MatchPseudoClass                    // :hover
	MatchPseudoElement                  // ::before
)

// IsAttribute is true for all kinds of attribute selectors.
func (m MatchKind) IsAttribute() bool {
	return m >= MatchExact && m <= MatchEnd
}

// Relation is the relation of a simple selector to the next one in the
// chain (to the left).
type Relation uint8

// Relations between simple selectors.
const (
	Descendant       Relation = iota // A B
	Child                            // A > B
	DirectAdjacent                   // A + B
	IndirectAdjacent                 // A ~ B
	SubSelector                      // same element, as in A.b
)

var relationSymbols = [...]string{" ", " > ", " + ", " ~ ", ""}

// QualifiedName is the tag constraint of a simple selector. The zero
// value matches any tag.
type QualifiedName struct {
	Local     string    // lower-case local name, empty for any
	Atom      atom.Atom // 0 for tags unknown to package atom
	Namespace string    // empty for any namespace
}

// AnyName is the universal selector `*`.
var AnyName = QualifiedName{}

// NewName creates a qualified name for a tag in any namespace.
func NewName(local string) QualifiedName {
	local = strings.ToLower(local)
	if local == "*" {
		return AnyName
	}
	return QualifiedName{Local: local, Atom: atom.Lookup([]byte(local))}
}

// IsAny is true for the universal selector.
func (q QualifiedName) IsAny() bool {
	return q.Local == ""
}

// Matches tests a local name and namespace against q.
func (q QualifiedName) Matches(local string, a atom.Atom, ns string) bool {
	if q.IsAny() {
		return true
	}
	if q.Namespace != "" && ns != "" && q.Namespace != ns {
		return false
	}
	if q.Atom != 0 && a != 0 {
		return q.Atom == a
	}
	return strings.EqualFold(q.Local, local)
}

// Selector is a node of a selector chain. Selector chains are immutable
// once constructed and are shared by style sheets and the cascade.
type Selector struct {
	Tag        QualifiedName
	Match      MatchKind
	Attr       string     // attribute name for attribute selectors, lower-case
	Value      string     // id, class name, attribute value or pseudo name
	Argument   string     // argument of functional pseudo-classes
	Pseudo     PseudoType // for MatchPseudoClass and MatchPseudoElement
	Relation   Relation   // relation to TagHistory
	TagHistory *Selector  // next simple selector to the left
	Simple     *Selector  // argument of :not()
}

// PseudoElement returns the pseudo-element type if the selector chain ends in a
// pseudo-element, PseudoNone otherwise.
func (sel *Selector) PseudoElement() PseudoType {
	for s := sel; s != nil; s = s.TagHistory {
		if s.Match == MatchPseudoElement {
			return s.Pseudo
		}
		if s.Relation != SubSelector {
			break
		}
	}
	return PseudoNone
}

// Specificity computes the specificity of a selector chain.
func (sel *Selector) Specificity() Specificity {
	var sp Specificity
	for s := sel; s != nil; s = s.TagHistory {
		sp = sp.Add(s.simpleSpecificity())
	}
	return sp
}

func (sel *Selector) simpleSpecificity() Specificity {
	var sp Specificity
	if !sel.Tag.IsAny() {
		sp[2]++
	}
	switch sel.Match {
	case MatchID:
		sp[0]++
	case MatchClass, MatchExact, MatchSet, MatchList, MatchHyphen, MatchContain, MatchBegin, MatchEnd:
		sp[1]++
	case MatchPseudoClass:
		if sel.Pseudo == PseudoNot {
			if sel.Simple != nil {
				sp = sp.Add(sel.Simple.simpleSpecificity())
			}
		} else {
			sp[1]++
		}
	case MatchPseudoElement:
		sp[2]++
	}
	return sp
}

// String serializes a selector chain back to CSS syntax.
func (sel *Selector) String() string {
	var b strings.Builder
	sel.write(&b)
	return b.String()
}

// write serializes the compound starting at sel, preceded by the compounds
// to its left.
func (sel *Selector) write(b *strings.Builder) {
	last := lastOf(sel)
	if last.TagHistory != nil && last.Relation != SubSelector {
		last.TagHistory.write(b)
		b.WriteString(relationSymbols[last.Relation])
	}
	for s := sel; ; s = s.TagHistory {
		s.writeSimple(b)
		if s == last {
			break
		}
	}
}

func (sel *Selector) writeSimple(b *strings.Builder) {
	if !sel.Tag.IsAny() {
		b.WriteString(sel.Tag.Local)
	} else if sel.Match == MatchNone {
		b.WriteString("*")
	}
	switch sel.Match {
	case MatchID:
		b.WriteString("#" + sel.Value)
	case MatchClass:
		b.WriteString("." + sel.Value)
	case MatchSet:
		b.WriteString("[" + sel.Attr + "]")
	case MatchExact, MatchList, MatchHyphen, MatchContain, MatchBegin, MatchEnd:
		op := [...]string{"=", "", "~=", "|=", "*=", "^=", "$="}[sel.Match-MatchExact]
		b.WriteString("[" + sel.Attr + op + `"` + sel.Value + `"]`)
	case MatchPseudoClass:
		b.WriteString(":" + sel.Value)
		if sel.Pseudo == PseudoNot && sel.Simple != nil {
			b.WriteString("(")
			sel.Simple.write(b)
			b.WriteString(")")
		} else if sel.Pseudo.HasArgument() {
			b.WriteString("(" + sel.Argument + ")")
		}
	case MatchPseudoElement:
		b.WriteString("::" + sel.Value)
	}
}

// --- Specificity -----------------------------------------------------------

// Specificity is the CSS specificity of a selector: the number of ID
// selectors, the number of class, attribute and pseudo-class selectors, and
// the number of type selectors and pseudo-elements.
type Specificity [3]int

// Add adds two specificities component-wise.
func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// Less compares two specificities lexicographically.
func (s Specificity) Less(o Specificity) bool {
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// Value packs a specificity into 24 bits, every component capped at 255.
func (s Specificity) Value() uint32 {
	var v uint32
	for _, c := range s {
		if c > 0xff {
			c = 0xff
		}
		v = v<<8 | uint32(c)
	}
	return v
}
