package cascade

import (
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/w3cdom"
)

// SelectorID identifies a selector within a SelectorIndex.
type SelectorID int32

// PropertyIndex identifies an ordered property within a SelectorIndex.
type PropertyIndex int32

const (
	noSelector SelectorID    = -1
	noProperty PropertyIndex = -1
)

// RuleSet is the flattened list of style rules of a single origin, i.e.
// media rules expanded and imports inlined.
type RuleSet struct {
	Origin cssom.Origin
	Rules  []*cssom.Rule
}

// RulesOf flattens a style sheet for a media environment. @font-face rules
// are reported to fonts, which may be nil.
func RulesOf(sheet *cssom.StyleSheet, env cssom.MediaEnvironment, fonts cssom.FontFaceSink) RuleSet {
	if sheet == nil {
		return RuleSet{}
	}
	return RuleSet{Origin: sheet.Origin, Rules: sheet.StyleRules(env, fonts)}
}

// selectorEntry holds what the cascade knows about a selector of the index.
type selectorEntry struct {
	sel           *cssom.Selector
	specificity   cssom.Specificity
	pseudo        style.PseudoID
	firstProperty PropertyIndex
}

// SelectorIndex holds the selectors of all style sheets in effect for a
// document, in cascading order, together with their declarations.
//
// Selectors are bucketed by the id, class or tag of their subject. Every
// bucket is a singly linked list threaded through next, in ascending order
// of selector IDs and terminated by the sentinel N (the number of
// selectors). Selectors without id, class or tag go to the `other` list.
// Every selector is reachable from exactly one list.
//
// The declarations of a selector form a linked list through nextProperty,
// starting at the selector's first property.
type SelectorIndex struct {
	selectors    []selectorEntry
	next         []SelectorID
	byID         map[string]SelectorID
	byClass      map[string]SelectorID
	byTag        map[string]SelectorID
	other        SelectorID
	properties   []orderedProperty
	nextProperty []PropertyIndex
	foldCase     bool // id and class keys are lower-case
}

// BuildIndex creates a selector index from rule sets. Rule sets are
// expected in cascading order of their origins (user agent, user,
// presentational hints, author), each in source order. If caseSensitive is
// false, ids and class names are compared case-insensitively.
func BuildIndex(sets []RuleSet, caseSensitive bool) *SelectorIndex {
	ix := &SelectorIndex{
		byID:     make(map[string]SelectorID),
		byClass:  make(map[string]SelectorID),
		byTag:    make(map[string]SelectorID),
		foldCase: !caseSensitive,
	}
	for _, set := range sets {
		for _, rule := range set.Rules {
			for _, sel := range rule.Selectors {
				ix.add(sel, rule.Declarations, set.Origin)
			}
		}
	}
	n := ix.N()
	ix.next = make([]SelectorID, n)
	ix.other = n
	for i := n - 1; i >= 0; i-- {
		bucket, key := ix.bucketOf(ix.selectors[i].sel)
		if bucket == nil {
			ix.next[i] = ix.other
			ix.other = i
			continue
		}
		head, ok := bucket[key]
		if !ok {
			head = n
		}
		ix.next[i] = head
		bucket[key] = i
	}
	tracer().Debugf("selector index: %d selectors, %d ids, %d classes, %d tags, %d properties",
		n, len(ix.byID), len(ix.byClass), len(ix.byTag), len(ix.properties))
	return ix
}

func (ix *SelectorIndex) add(sel *cssom.Selector, decls []cssom.Declaration, origin cssom.Origin) {
	id := SelectorID(len(ix.selectors))
	entry := selectorEntry{
		sel:           sel,
		specificity:   sel.Specificity(),
		pseudo:        pseudoID(sel.PseudoElement()),
		firstProperty: noProperty,
	}
	last := noProperty
	for i := range decls {
		d := &decls[i]
		p := PropertyIndex(len(ix.properties))
		ix.properties = append(ix.properties, orderedProperty{
			decl:     d,
			selector: id,
			priority: MakePriority(d.Property.AppliesFirst(), TierFor(origin, d.Important), entry.specificity),
			position: int(p),
		})
		ix.nextProperty = append(ix.nextProperty, noProperty)
		if last == noProperty {
			entry.firstProperty = p
		} else {
			ix.nextProperty[last] = p
		}
		last = p
	}
	ix.selectors = append(ix.selectors, entry)
}

// bucketOf returns the bucket and key for a selector, or a nil bucket for
// the `other` list. The key is taken from the subject's first simple
// selector.
func (ix *SelectorIndex) bucketOf(sel *cssom.Selector) (map[string]SelectorID, string) {
	switch {
	case sel.Match == cssom.MatchClass:
		return ix.byClass, ix.key(sel.Value)
	case sel.Match == cssom.MatchID:
		return ix.byID, ix.key(sel.Value)
	case !sel.Tag.IsAny():
		return ix.byTag, sel.Tag.Local
	}
	return nil, ""
}

func (ix *SelectorIndex) key(s string) string {
	if ix.foldCase {
		return strings.ToLower(s)
	}
	return s
}

// N is the number of selectors in the index. It serves as the sentinel
// terminating bucket lists.
func (ix *SelectorIndex) N() SelectorID {
	return SelectorID(len(ix.selectors))
}

// Selector returns the selector for an ID.
func (ix *SelectorIndex) Selector(id SelectorID) *cssom.Selector {
	return ix.selectors[id].sel
}

// PropertyCount is the number of ordered properties of all selectors.
func (ix *SelectorIndex) PropertyCount() int {
	return len(ix.properties)
}

// HasIDSelector is true if any selector's subject tests for an id.
func (ix *SelectorIndex) HasIDSelector(id string) bool {
	_, ok := ix.byID[ix.key(id)]
	return ok
}

// chain appends the bucket list starting at head to ids.
func (ix *SelectorIndex) chain(head SelectorID, ids []SelectorID) []SelectorID {
	n := ix.N()
	for id := head; id != n; id = ix.next[id] {
		ids = append(ids, id)
	}
	return ids
}

func (ix *SelectorIndex) lookup(bucket map[string]SelectorID, key string, ids []SelectorID) []SelectorID {
	if head, ok := bucket[key]; ok {
		ids = ix.chain(head, ids)
	}
	return ids
}

// CandidatesFor collects the selectors which may possibly match an
// element: the `other` list and the buckets of the element's classes, id
// and tag.
func (ix *SelectorIndex) CandidatesFor(e w3cdom.Element) []SelectorID {
	ids := ix.chain(ix.other, nil)
	for _, class := range e.Classes() {
		ids = ix.lookup(ix.byClass, ix.key(class), ids)
	}
	if id := e.ID(); id != "" {
		ids = ix.lookup(ix.byID, ix.key(id), ids)
	}
	return ix.lookup(ix.byTag, strings.ToLower(e.LocalName()), ids)
}

// propertiesOf appends the properties of a selector in source order,
// tagged with a pseudo-element.
func (ix *SelectorIndex) propertiesOf(id SelectorID, props []orderedProperty, pseudo style.PseudoID) []orderedProperty {
	for p := ix.selectors[id].firstProperty; p != noProperty; p = ix.nextProperty[p] {
		op := ix.properties[p]
		op.pseudo = pseudo
		props = append(props, op)
	}
	return props
}

func pseudoID(p cssom.PseudoType) style.PseudoID {
	switch p {
	case cssom.PseudoFirstLine:
		return style.FirstLine
	case cssom.PseudoFirstLetter:
		return style.FirstLetter
	case cssom.PseudoBefore:
		return style.Before
	case cssom.PseudoAfter:
		return style.After
	case cssom.PseudoSelection:
		return style.Selection
	case cssom.PseudoMarker:
		return style.Marker
	}
	return style.NoPseudo
}
