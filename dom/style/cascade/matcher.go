package cascade

import (
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// matchResult is the outcome of matching a selector chain against an
// element.
type matchResult uint8

const (
	matches       matchResult = iota
	failsLocally              // an ancestor or sibling may still match
	failsGlobally             // no point in walking further up the tree
)

func (r matchResult) String() string {
	return [...]string{"matches", "fails-locally", "fails-globally"}[r]
}

// MatchSelector tests a selector chain against an element. Selectors
// ending in a pseudo-element match if the element could generate it.
// Dependencies are not recorded and links count as unvisited.
func MatchSelector(sel *cssom.Selector, e w3cdom.Element) bool {
	if sel == nil || e == nil {
		return false
	}
	ctx := newMatchContext(e, nil, nil)
	return ctx.checkSelector(sel, e, true, false) == matches
}

// checkSelector matches the selector chain starting at sel against e.
// isAncestor is false for elements reached through a sibling combinator.
func (ctx *MatchContext) checkSelector(sel *cssom.Selector, e w3cdom.Element, isAncestor, isSubSelector bool) matchResult {
	if !ctx.checkSimpleSelector(sel, e, isAncestor, isSubSelector) {
		return failsLocally
	}
	next := sel.TagHistory
	if next == nil {
		return matches
	}
	switch sel.Relation {
	case cssom.Descendant:
		if isAncestor && ctx.cannotMatchAncestor(next) {
			return failsGlobally
		}
		for a := e.ParentElement(); a != nil; a = a.ParentElement() {
			if r := ctx.checkSelector(next, a, true, false); r != failsLocally {
				return r
			}
		}
		return failsGlobally
	case cssom.Child:
		parent := e.ParentElement()
		if !ctx.strict {
			for parent != nil && parent.IsImplicit() {
				parent = parent.ParentElement()
			}
		}
		if parent == nil {
			return failsGlobally
		}
		return ctx.checkSelector(next, parent, true, false)
	case cssom.DirectAdjacent:
		ctx.addDependency(StructuralDependency, e.ParentElement())
		sib := e.PreviousElementSibling()
		if sib == nil {
			return failsLocally
		}
		return ctx.checkSelector(next, sib, false, false)
	case cssom.IndirectAdjacent:
		ctx.addDependency(StructuralDependency, e.ParentElement())
		for sib := e.PreviousElementSibling(); sib != nil; sib = sib.PreviousElementSibling() {
			if r := ctx.checkSelector(next, sib, false, false); r != failsLocally {
				return r
			}
		}
		return failsLocally
	case cssom.SubSelector:
		return ctx.checkSelector(next, e, isAncestor, true)
	}
	return failsLocally
}

// checkSimpleSelector tests a single node of a selector chain.
func (ctx *MatchContext) checkSimpleSelector(sel *cssom.Selector, e w3cdom.Element, isAncestor, isSubSelector bool) bool {
	if !sel.Tag.Matches(e.LocalName(), e.Atom(), e.Namespace()) {
		return false
	}
	switch sel.Match {
	case cssom.MatchNone:
		return true
	case cssom.MatchID:
		return e.ID() != "" && ctx.equalID(e.ID(), sel.Value)
	case cssom.MatchClass:
		return ctx.hasClass(e, sel.Value)
	case cssom.MatchPseudoClass:
		return ctx.checkPseudoClass(sel, e, isAncestor, isSubSelector)
	case cssom.MatchPseudoElement:
		// only the last simple selector of the subject may be a pseudo-element
		if e != ctx.subject || (sel.Relation == cssom.SubSelector && sel.TagHistory != nil) {
			return false
		}
		if !sel.Pseudo.IsElement() {
			return false
		}
		ctx.dynamicPseudo = sel.Pseudo
		return true
	}
	return ctx.checkAttribute(sel, e, isAncestor)
}

func (ctx *MatchContext) hasClass(e w3cdom.Element, class string) bool {
	for _, c := range e.Classes() {
		if ctx.equalID(c, class) {
			return true
		}
	}
	return false
}

func (ctx *MatchContext) checkAttribute(sel *cssom.Selector, e w3cdom.Element, isAncestor bool) bool {
	ctx.addAttributeDependency(sel.Attr, e, isAncestor)
	if sel.Attr == "class" && sel.Match == cssom.MatchList {
		return sel.Value != "" && ctx.hasClass(e, sel.Value)
	}
	value, ok := e.Attribute(sel.Attr)
	if !ok {
		return false
	}
	want := sel.Value
	if !ctx.valueCaseSensitive() {
		value, want = strings.ToLower(value), strings.ToLower(want)
	}
	switch sel.Match {
	case cssom.MatchSet:
		return true
	case cssom.MatchExact:
		return value == want
	case cssom.MatchList:
		if want == "" || len(value) < len(want) || strings.ContainsAny(want, " \t\n\f\r") {
			return false
		}
		for _, token := range strings.Fields(value) {
			if token == want {
				return true
			}
		}
		return false
	case cssom.MatchContain:
		return strings.Contains(value, want)
	case cssom.MatchBegin:
		return want != "" && strings.HasPrefix(value, want)
	case cssom.MatchEnd:
		return want != "" && strings.HasSuffix(value, want)
	case cssom.MatchHyphen:
		return value == want || strings.HasPrefix(value, want+"-")
	}
	return false
}

// checkPseudoClass tests pseudo-classes. Every pseudo type has a case of
// its own; pseudo-elements in the position of a pseudo-class never match.
func (ctx *MatchContext) checkPseudoClass(sel *cssom.Selector, e w3cdom.Element, isAncestor, isSubSelector bool) bool {
	switch sel.Pseudo {
	case cssom.PseudoNone, cssom.PseudoUnknown:
		return false
	case cssom.PseudoLink:
		return ctx.linkStateOf(e) == linkUnvisited
	case cssom.PseudoVisited:
		return ctx.linkStateOf(e) == linkVisited
	case cssom.PseudoHover:
		return ctx.checkUserAction(sel, e, isSubSelector, w3cdom.StateHover)
	case cssom.PseudoActive:
		return ctx.checkUserAction(sel, e, isSubSelector, w3cdom.StateActive)
	case cssom.PseudoFocus:
		if e != ctx.subject {
			ctx.addDependency(OtherStateDependency, e)
		} else {
			ctx.affected |= style.AffectedByFocus
		}
		return e.State().Has(w3cdom.StateFocus)
	case cssom.PseudoTarget:
		return ctx.doc != nil && ctx.doc.Target() != nil && ctx.doc.Target() == e
	case cssom.PseudoRoot:
		return ctx.doc != nil && ctx.doc.DocumentElement() == e
	case cssom.PseudoEmpty:
		ctx.addDependency(BackwardsStructuralDependency, e)
		return e.IsClosed() && isEmpty(e)
	case cssom.PseudoFirstChild, cssom.PseudoFirstOfType:
		parent := e.ParentElement()
		if parent == nil {
			return false
		}
		ctx.addDependency(StructuralDependency, parent)
		return countSiblings(e, sel.Pseudo == cssom.PseudoFirstOfType, false) == 1
	case cssom.PseudoLastChild, cssom.PseudoLastOfType:
		parent := e.ParentElement()
		if parent == nil {
			return false
		}
		ctx.addDependency(BackwardsStructuralDependency, parent)
		return parent.IsClosed() && countSiblings(e, sel.Pseudo == cssom.PseudoLastOfType, true) == 1
	case cssom.PseudoOnlyChild, cssom.PseudoOnlyOfType:
		parent := e.ParentElement()
		if parent == nil {
			return false
		}
		ctx.addDependency(StructuralDependency, parent)
		ctx.addDependency(BackwardsStructuralDependency, parent)
		ofType := sel.Pseudo == cssom.PseudoOnlyOfType
		return parent.IsClosed() && countSiblings(e, ofType, false) == 1 && countSiblings(e, ofType, true) == 1
	case cssom.PseudoNthChild, cssom.PseudoNthOfType:
		parent := e.ParentElement()
		if parent == nil {
			return false
		}
		ctx.addDependency(StructuralDependency, parent)
		return MatchNth(countSiblings(e, sel.Pseudo == cssom.PseudoNthOfType, false), sel.Argument)
	case cssom.PseudoNthLastChild, cssom.PseudoNthLastOfType:
		parent := e.ParentElement()
		if parent == nil {
			return false
		}
		ctx.addDependency(BackwardsStructuralDependency, parent)
		if !parent.IsClosed() {
			return false
		}
		return MatchNth(countSiblings(e, sel.Pseudo == cssom.PseudoNthLastOfType, true), sel.Argument)
	case cssom.PseudoLang:
		return ctx.checkLang(sel.Argument, e, isAncestor)
	case cssom.PseudoNot:
		arg := sel.Simple
		if arg == nil || arg.TagHistory != nil || arg.Match == cssom.MatchPseudoElement ||
			(arg.Match == cssom.MatchPseudoClass && arg.Pseudo == cssom.PseudoNot) {
			return false // only a single simple selector may be negated
		}
		return !ctx.checkSimpleSelector(arg, e, isAncestor, true)
	case cssom.PseudoEnabled, cssom.PseudoDisabled:
		if !e.Traits().Has(w3cdom.IsFormControl) {
			return false
		}
		ctx.addDependency(OtherStateDependency, e)
		if e.Traits().Has(w3cdom.IsHiddenInput) {
			return false
		}
		return e.State().Has(w3cdom.StateDisabled) == (sel.Pseudo == cssom.PseudoDisabled)
	case cssom.PseudoChecked:
		if !e.Traits().Has(w3cdom.IsCheckable) {
			return false
		}
		ctx.addDependency(OtherStateDependency, e)
		return e.State().Has(w3cdom.StateChecked)
	case cssom.PseudoIndeterminate:
		if !e.Traits().Has(w3cdom.IsCheckable) {
			return false
		}
		ctx.addDependency(OtherStateDependency, e)
		return e.State().Has(w3cdom.StateIndeterminate)
	case cssom.PseudoDefault:
		if !e.Traits().Has(w3cdom.IsFormControl) {
			return false
		}
		return e.State().Has(w3cdom.StateDefault)
	case cssom.PseudoReadOnly:
		return !isReadWrite(e)
	case cssom.PseudoReadWrite:
		return isReadWrite(e)
	case cssom.PseudoContains:
		if !e.Traits().Has(w3cdom.IsHTML) {
			return false
		}
		ctx.addDependency(BackwardsStructuralDependency, e)
		return e.IsClosed() && strings.Contains(e.TextContent(), sel.Argument)
	case cssom.PseudoFirstLine, cssom.PseudoFirstLetter, cssom.PseudoBefore, cssom.PseudoAfter,
		cssom.PseudoSelection, cssom.PseudoMarker:
		return false
	}
	tracer().Errorf("pseudo-class %v not handled by matcher", sel.Pseudo)
	return false
}

// checkUserAction tests :hover and :active. In quirks mode, `*:hover` and
// `*:active` only apply to focusable elements.
func (ctx *MatchContext) checkUserAction(sel *cssom.Selector, e w3cdom.Element, isSubSelector bool,
	state w3cdom.State) bool {
	//
	if !ctx.strict && sel.Tag.IsAny() && !isSubSelector && !e.Traits().Has(w3cdom.IsFocusable) {
		return false
	}
	kind, affinity := HoverDependency, style.AffectedByHover
	if state == w3cdom.StateActive {
		kind, affinity = ActiveDependency, style.AffectedByActive
	}
	ctx.addDependency(kind, e)
	if e == ctx.subject {
		ctx.affected |= affinity
	}
	return e.State().Has(state)
}

// checkLang finds the language of e, inherited from ancestors or from the
// document, and matches it against a language range.
func (ctx *MatchContext) checkLang(arg string, e w3cdom.Element, isAncestor bool) bool {
	ctx.addAttributeDependency("lang", e, isAncestor)
	lang := ""
	for a := e; a != nil && lang == ""; a = a.ParentElement() {
		lang, _ = a.Attribute("lang") // empty values are skipped
	}
	if lang == "" && ctx.doc != nil {
		lang = ctx.doc.ContentLanguage()
	}
	if lang == "" || arg == "" || len(lang) < len(arg) {
		return false
	}
	if !strings.EqualFold(lang[:len(arg)], arg) {
		return false
	}
	return len(lang) == len(arg) || lang[len(arg)] == '-'
}

// countSiblings returns the 1-based position of e among its element
// siblings, counting from the end if backwards is set. If ofType is set,
// only siblings with the tag of e are counted.
func countSiblings(e w3cdom.Element, ofType, backwards bool) int {
	step := w3cdom.Element.PreviousElementSibling
	if backwards {
		step = w3cdom.Element.NextElementSibling
	}
	count := 1
	for sib := step(e); sib != nil; sib = step(sib) {
		if !ofType || sameType(sib, e) {
			count++
		}
	}
	return count
}

func sameType(a, b w3cdom.Element) bool {
	if a.Atom() != 0 || b.Atom() != 0 {
		return a.Atom() == b.Atom() && a.Namespace() == b.Namespace()
	}
	return a.LocalName() == b.LocalName() && a.Namespace() == b.Namespace()
}

// isEmpty is true if e has neither element children nor non-empty text.
func isEmpty(e w3cdom.Element) bool {
	for n := e.FirstChild(); n != nil; n = n.NextSibling() {
		switch n.NodeType() {
		case html.ElementNode:
			return false
		case html.TextNode:
			if n.NodeValue() != "" {
				return false
			}
		}
	}
	return true
}

// isReadWrite is true for editable text controls without a readonly
// attribute, and for content-editable elements.
func isReadWrite(e w3cdom.Element) bool {
	t := e.Traits()
	if !t.Has(w3cdom.IsFormControl) {
		return t.Has(w3cdom.IsContentEditable)
	}
	if e.State().Has(w3cdom.StateReadOnly) || e.State().Has(w3cdom.StateDisabled) {
		return false
	}
	switch e.Atom() {
	case atom.Textarea:
		return true
	case atom.Input:
		typ, _ := e.Attribute("type")
		switch strings.ToLower(typ) {
		case "", "text", "password", "search", "email", "url", "tel", "number":
			return true
		}
	}
	return false
}
