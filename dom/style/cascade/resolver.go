package cascade

import (
	"sort"
	"sync/atomic"

	"github.com/npillmayer/cascade/config"
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/w3cdom"
)

// unavailable is handed out for all elements while style sheets are
// loading. It is never modified.
var unavailable = func() *style.RenderStyle {
	rs := style.New()
	rs.EditFlags().Display = css.DisplayNone
	return rs
}()

// Unavailable returns the placeholder style for elements of documents with
// style sheets still loading. It has display:none. Clients receiving it have
// to resolve the style again after loading completed.
func Unavailable() *style.RenderStyle {
	return unavailable
}

// Resolver resolves the styles of the elements of a single document.
//
// A resolver holds the selector index for the style sheets in effect. The
// index is rebuilt whenever the set of sheets, the media environment or
// the parsing mode of the document changes.
type Resolver struct {
	doc       w3cdom.Document
	settings  config.Settings
	registry  *Registry
	visited   VisitedLinks
	fontFaces cssom.FontFaceSink
	user      *cssom.StyleSheet
	author    []*cssom.StyleSheet
	units     css.UnitResolver
	fontSizes *css.FontSizeTable
	quirks    bool
	loading   bool
	index     atomic.Pointer[SelectorIndex]
	busy      bool
}

// Option is a type to help initializing resolvers at creation time.
type Option struct {
	config func(*Resolver)
}

// WithSettings sets font sizes, resolution, zoom and media of a resolver.
// Default is config.Default().
func WithSettings(s config.Settings) Option {
	return Option{config: func(r *Resolver) {
		r.settings = s
	}}
}

// WithVisitedLinks sets the collection of visited URLs for :visited.
func WithVisitedLinks(v VisitedLinks) Option {
	return Option{config: func(r *Resolver) {
		r.visited = v
	}}
}

// WithFontFaceSink sets a receiver for @font-face rules of style sheets.
func WithFontFaceSink(sink cssom.FontFaceSink) Option {
	return Option{config: func(r *Resolver) {
		r.fontFaces = sink
	}}
}

// WithUserStyleSheet sets the style sheet of the user's preferences. Its
// rules are cascaded with origin user, whatever the sheet's origin.
func WithUserStyleSheet(sheet *cssom.StyleSheet) Option {
	return Option{config: func(r *Resolver) {
		r.user = sheet
	}}
}

// WithRegistry replaces the process-wide registry of default style sheets.
func WithRegistry(reg *Registry) Option {
	return Option{config: func(r *Resolver) {
		r.registry = reg
	}}
}

// NewResolver creates a resolver for a document. Author style sheets are
// set with SetStyleSheets.
func NewResolver(doc w3cdom.Document, opts ...Option) *Resolver {
	assertThat(doc != nil, "resolver needs a document")
	r := &Resolver{
		doc:      doc,
		settings: config.Default(),
		registry: DefaultRegistry(),
	}
	for _, option := range opts {
		option.config(r)
	}
	r.units = r.settings.Units()
	r.fontSizes = r.settings.FontSizes()
	r.Rebuild()
	return r
}

// SetStyleSheets sets the author style sheets of the document, in
// document order, and rebuilds the selector index.
func (r *Resolver) SetStyleSheets(sheets ...*cssom.StyleSheet) {
	r.author = append(r.author[:0], sheets...)
	r.Rebuild()
}

// SetLoading marks style sheets of the document as pending. While loading,
// all elements resolve to the Unavailable style.
func (r *Resolver) SetLoading(loading bool) {
	r.loading = loading
}

// Rebuild creates a new selector index from the style sheets in effect.
// It has to be called after the parsing mode of the document changed; it
// is called implicitly when setting style sheets. The previous index
// stays in effect until the new one is complete.
func (r *Resolver) Rebuild() {
	r.quirks = r.doc.Mode() == w3cdom.QuirksMode
	env := r.settings.Environment()
	sets := []RuleSet{r.registry.DefaultRules(r.settings.IsPrint())}
	if r.quirks {
		sets = append(sets, r.registry.QuirksRules())
	}
	sets = append(sets, r.registry.HintRules())
	if r.user != nil {
		user := RulesOf(r.user, env, r.fontFaces)
		user.Origin = cssom.OriginUser
		sets = append(sets, user)
	}
	for _, sheet := range r.author {
		sets = append(sets, RulesOf(sheet, env, r.fontFaces))
	}
	caseSensitive := r.doc.IsXHTML() || r.doc.Mode() == w3cdom.StandardsMode
	r.index.Store(BuildIndex(sets, caseSensitive))
}

// Index returns the current selector index.
func (r *Resolver) Index() *SelectorIndex {
	return r.index.Load()
}

// IsQuirksMode is true if the document is styled in quirks mode.
func (r *Resolver) IsQuirksMode() bool {
	return r.quirks
}

// selectorState is the outcome of matching a candidate selector.
type selectorState uint8

const (
	stateUnknown selectorState = iota
	stateInvalid
	stateApplies
	stateAppliesPseudo
)

// candidate is a selector tested for an element.
type candidate struct {
	id    SelectorID
	state selectorState
}

// StyleForElement resolves the style of an element. The style of the
// parent element has to be resolved already; for elements of detached
// subtrees fallbackParent is used instead. If deps is non-nil, the
// dependencies of the resolved style are reported to it.
//
// The returned style must not be modified. It may be shared with other
// elements.
func (r *Resolver) StyleForElement(e w3cdom.Element, fallbackParent *style.RenderStyle,
	deps DependencyStore) *style.RenderStyle {
	//
	ix := r.index.Load()
	if r.loading || ix == nil {
		return unavailable
	}
	assertThat(!r.busy, "resolver is not re-entrant")
	r.busy = true
	defer func() { r.busy = false }()
	//
	var parent *style.RenderStyle
	if p := e.ParentElement(); p != nil {
		parent = p.ComputedStyle()
		if parent == nil {
			parent = fallbackParent
		}
	}
	rs := style.New()
	rs.InheritFrom(parent)
	ctx := newMatchContext(e, r.visited, deps)
	props, pseudoProps := r.matchingProperties(ctx, e, ix)
	r.applyAll(rs, parent, props)
	adjustRenderStyle(rs, parent, e, r.quirks)
	if len(pseudoProps) > 0 {
		r.applyPseudos(rs, pseudoProps)
	}
	if ctx.affected != 0 {
		rs.EditFlags().Affected = ctx.affected
	}
	return r.shareStyle(e, rs, ix)
}

// matchingProperties collects the properties of all selectors matching
// e, plus inline styles and presentational hints, in cascading order.
// Properties for pseudo-elements are returned separately.
func (r *Resolver) matchingProperties(ctx *MatchContext, e w3cdom.Element, ix *SelectorIndex) (
	props, pseudoProps []orderedProperty) {
	//
	ids := ix.CandidatesFor(e)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	cands := make([]candidate, 0, len(ids))
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		cands = append(cands, r.check(ctx, e, ix, id))
	}
	for _, c := range cands {
		switch c.state {
		case stateApplies:
			props = ix.propertiesOf(c.id, props, style.NoPseudo)
		case stateAppliesPseudo:
			pseudoProps = ix.propertiesOf(c.id, pseudoProps, ix.selectors[c.id].pseudo)
		}
	}
	position := ix.PropertyCount()
	inline := e.InlineStyle()
	for i := range inline {
		d := &inline[i]
		tier := TierInline
		if d.Important {
			tier = TierInlineImportant
		}
		props = append(props, orderedProperty{
			decl:     d,
			selector: noSelector,
			priority: MakePriority(d.Property.AppliesFirst(), tier, cssom.Specificity{}),
			position: position,
		})
		position++
	}
	hints := presentationalHints(e)
	for i := range hints {
		d := &hints[i]
		props = append(props, orderedProperty{
			decl:     d,
			selector: noSelector,
			priority: MakePriority(d.Property.AppliesFirst(), TierNonCSSHint, cssom.Specificity{}),
			position: position,
		})
		position++
	}
	sortProperties(props)
	sortProperties(pseudoProps)
	return props, pseudoProps
}

// check matches a single selector of the index against e.
func (r *Resolver) check(ctx *MatchContext, e w3cdom.Element, ix *SelectorIndex, id SelectorID) candidate {
	entry := ix.selectors[id]
	c := candidate{id: id, state: stateInvalid}
	if entry.sel.PseudoElement() != cssom.PseudoNone && entry.pseudo == style.NoPseudo {
		return c // pseudo-elements without styles of their own
	}
	ctx.dynamicPseudo = cssom.PseudoNone
	if ctx.checkSelector(entry.sel, e, true, false) != matches {
		return c
	}
	if ctx.dynamicPseudo != cssom.PseudoNone {
		c.state = stateAppliesPseudo
	} else {
		c.state = stateApplies
	}
	return c
}

func (r *Resolver) newApplier(rs, parent *style.RenderStyle) *applier {
	return &applier{
		style:  rs,
		parent: parent,
		units:  r.units,
		fonts:  r.fontSizes,
		quirks: r.quirks,
	}
}

// applyAll applies properties in cascading order. Font properties are
// applied first, and derived font sizes are updated before the first
// other property.
func (r *Resolver) applyAll(rs, parent *style.RenderStyle, props []orderedProperty) {
	a := r.newApplier(rs, parent)
	a.fontDirty = parent == nil // root: resolve `medium` for the configured sizes
	early := true
	for _, p := range props {
		if early && !p.priority.AppliesFirst() {
			a.updateFont()
			early = false
		}
		a.apply(p.decl)
	}
	a.updateFont()
}

// applyPseudos creates the styles for pseudo-elements. Each inherits from
// rs and is adjusted separately.
func (r *Resolver) applyPseudos(rs *style.RenderStyle, pseudoProps []orderedProperty) {
	byPseudo := make(map[style.PseudoID][]orderedProperty)
	var order []style.PseudoID
	for _, p := range pseudoProps {
		if _, ok := byPseudo[p.pseudo]; !ok {
			order = append(order, p.pseudo)
		}
		byPseudo[p.pseudo] = append(byPseudo[p.pseudo], p)
	}
	for _, id := range order {
		ps := rs.AddPseudoStyle(id)
		r.applyAll(ps, rs, byPseudo[id])
	}
	for _, ps := range rs.PseudoStyles() {
		adjustRenderStyle(ps, rs, nil, r.quirks)
	}
}

// StyleSubtree resolves the styles of an element and all of its
// descendants, in document order, and stores them with the elements.
func (r *Resolver) StyleSubtree(root w3cdom.Element, deps DependencyStore) {
	if root == nil {
		return
	}
	var fallback *style.RenderStyle
	if p := root.ParentElement(); p != nil && p.ComputedStyle() == nil {
		fallback = style.InitialStyle()
	}
	r.styleTree(root, fallback, deps)
}

func (r *Resolver) styleTree(e w3cdom.Element, fallback *style.RenderStyle, deps DependencyStore) {
	e.SetComputedStyle(r.StyleForElement(e, fallback, deps))
	for c := e.FirstElementChild(); c != nil; c = c.NextElementSibling() {
		r.styleTree(c, nil, deps)
	}
}
