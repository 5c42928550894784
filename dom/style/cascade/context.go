package cascade

import (
	"net/url"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/w3cdom"
)

// VisitedLinks is the set of URLs a user has visited. It is consulted for
// :link and :visited. URLs are absolute.
type VisitedLinks interface {
	IsVisited(url string) bool
}

// VisitedSet is a simple implementation of VisitedLinks.
type VisitedSet struct {
	urls map[string]struct{}
}

// NewVisitedSet creates a set of visited URLs.
func NewVisitedSet(urls ...string) *VisitedSet {
	vs := &VisitedSet{urls: make(map[string]struct{}, len(urls))}
	for _, u := range urls {
		vs.Add(u)
	}
	return vs
}

// Add marks a URL as visited.
func (vs *VisitedSet) Add(u string) {
	vs.urls[normalizeURL(u)] = struct{}{}
}

// IsVisited is part of interface VisitedLinks.
func (vs *VisitedSet) IsVisited(u string) bool {
	if vs == nil {
		return false
	}
	_, ok := vs.urls[normalizeURL(u)]
	return ok
}

func normalizeURL(u string) string {
	p, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return u
	}
	return p.String()
}

// resolveURL resolves a link target against a base URL.
func resolveURL(base, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	b, err := url.Parse(base)
	if err != nil || base == "" {
		return ref.String()
	}
	return b.ResolveReference(ref).String()
}

// linkState is the memoized link state of the subject element.
type linkState uint8

const (
	linkUnknown linkState = iota
	linkNone
	linkUnvisited
	linkVisited
)

// MatchContext holds the state of matching selectors against a single
// subject element. It lives for the duration of one style resolution.
type MatchContext struct {
	subject w3cdom.Element
	doc     w3cdom.Document
	strict  bool // standards mode
	xhtml   bool
	visited VisitedLinks
	deps    DependencyStore // nil: do not record dependencies
	// ancestor fast-reject sets
	tags    map[string]struct{}
	ids     map[string]struct{}
	classes map[string]struct{}
	// outputs
	dynamicPseudo cssom.PseudoType
	affected      style.Affinity
	link          linkState
}

// newMatchContext prepares matching against a subject element: it collects
// the tags, ids and classes of all of its ancestors.
func newMatchContext(subject w3cdom.Element, visited VisitedLinks, deps DependencyStore) *MatchContext {
	ctx := &MatchContext{
		subject: subject,
		visited: visited,
		deps:    deps,
		tags:    make(map[string]struct{}),
		ids:     make(map[string]struct{}),
		classes: make(map[string]struct{}),
	}
	if doc := subject.OwnerDocument(); doc != nil {
		ctx.doc = doc
		ctx.strict = doc.Mode() == w3cdom.StandardsMode
		ctx.xhtml = doc.IsXHTML()
	}
	for a := subject.ParentElement(); a != nil; a = a.ParentElement() {
		ctx.tags[strings.ToLower(a.LocalName())] = struct{}{}
		if id := a.ID(); id != "" {
			ctx.ids[ctx.foldIDCase(id)] = struct{}{}
		}
		for _, c := range a.Classes() {
			ctx.classes[ctx.foldIDCase(c)] = struct{}{}
		}
	}
	return ctx
}

// idCaseSensitive: ids and class names are case-sensitive in XHTML and in
// standards mode.
func (ctx *MatchContext) idCaseSensitive() bool {
	return ctx.xhtml || ctx.strict
}

func (ctx *MatchContext) foldIDCase(s string) string {
	if ctx.idCaseSensitive() {
		return s
	}
	return strings.ToLower(s)
}

// equalID compares ids and class names.
func (ctx *MatchContext) equalID(a, b string) bool {
	if ctx.idCaseSensitive() {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// valueCaseSensitive: attribute values are case-sensitive in XHTML only.
func (ctx *MatchContext) valueCaseSensitive() bool {
	return ctx.xhtml
}

// cannotMatchAncestor is true if no ancestor of the subject has the tag,
// id or class the first simple selector of sel requires.
func (ctx *MatchContext) cannotMatchAncestor(sel *cssom.Selector) bool {
	if !sel.Tag.IsAny() {
		if _, ok := ctx.tags[sel.Tag.Local]; !ok {
			return true
		}
	}
	switch sel.Match {
	case cssom.MatchID:
		_, ok := ctx.ids[ctx.foldIDCase(sel.Value)]
		return !ok
	case cssom.MatchClass:
		_, ok := ctx.classes[ctx.foldIDCase(sel.Value)]
		return !ok
	}
	return false
}

func (ctx *MatchContext) addDependency(kind DependencyKind, target w3cdom.Element) {
	if ctx.deps == nil || target == nil {
		return
	}
	ctx.deps.AddDependency(ctx.subject, Dependency{Kind: kind, Element: target})
}

// addAttributeDependency records a dependency on an attribute of e, which
// is the subject, an ancestor of it or a preceding sibling.
func (ctx *MatchContext) addAttributeDependency(attr string, e w3cdom.Element, isAncestor bool) {
	if ctx.deps == nil {
		return
	}
	kind := PredecessorDependency
	if e == ctx.subject {
		kind = PersonalDependency
	} else if isAncestor {
		kind = AncestorDependency
	}
	ctx.deps.AddDependency(ctx.subject, Dependency{Kind: kind, Attribute: attr})
}

// linkStateOf determines if e is a link, and if it has been visited. The
// result is memoized for the subject.
func (ctx *MatchContext) linkStateOf(e w3cdom.Element) linkState {
	isSubject := e == ctx.subject
	if isSubject && ctx.link != linkUnknown {
		return ctx.link
	}
	state := linkNone
	if e.Traits().Has(w3cdom.IsLink) {
		state = linkUnvisited
		if href, ok := e.Attribute("href"); ok && ctx.visited != nil {
			base := ""
			if ctx.doc != nil {
				base = ctx.doc.BaseURL()
			}
			if ctx.visited.IsVisited(resolveURL(base, href)) {
				state = linkVisited
			}
		}
	}
	if isSubject {
		ctx.link = state
	}
	return state
}
