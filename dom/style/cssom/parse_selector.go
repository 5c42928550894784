package cssom

import (
	"errors"
	"fmt"
	"strings"

	tdcss "github.com/tdewolff/parse/v2/css"
)

// Errors returned by the selector parser.
var (
	ErrEmptySelector       = errors.New("empty selector")
	ErrInvalidSelector     = errors.New("invalid selector")
	ErrUnsupportedSelector = errors.New("unsupported selector")
)

// ParseSelectorGroup parses a comma-separated group of selectors, as found
// in the prelude of a style rule.
// If any selector of the group is invalid, the whole group is rejected,
// as required by CSS.
func ParseSelectorGroup(text string) ([]*Selector, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", text, err)
	}
	ts := &tokenStream{toks: toks}
	var group []*Selector
	for {
		sel, err := parseComplex(ts)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", text, err)
		}
		group = append(group, sel)
		ts.skipWhitespace()
		if ts.atEnd() {
			break
		}
		if !ts.next().is(tdcss.CommaToken) {
			return nil, fmt.Errorf("selector %q: %w", text, ErrInvalidSelector)
		}
	}
	return group, nil
}

// ParseSelector parses a single selector.
func ParseSelector(text string) (*Selector, error) {
	group, err := ParseSelectorGroup(text)
	if err != nil {
		return nil, err
	}
	if len(group) != 1 {
		return nil, fmt.Errorf("selector %q: expected a single selector: %w", text, ErrInvalidSelector)
	}
	return group[0], nil
}

// MustParseSelector is like ParseSelector, but panics on errors.
// It is intended for tests and for the built-in style sheets.
func MustParseSelector(text string) *Selector {
	sel, err := ParseSelector(text)
	if err != nil {
		panic(err)
	}
	return sel
}

// parseComplex parses compound selectors separated by combinators and
// links them right to left.
func parseComplex(ts *tokenStream) (*Selector, error) {
	ts.skipWhitespace()
	var head *Selector // subject compound of the chain built so far
	rel := Descendant
	for {
		compound, err := parseCompound(ts)
		if err != nil {
			return nil, err
		}
		if head != nil {
			// a pseudo-element may only appear in the subject compound
			if head.PseudoElement() != PseudoNone {
				return nil, ErrInvalidSelector
			}
			last := lastOf(compound)
			last.Relation = rel
			last.TagHistory = head
		}
		head = compound
		var more bool
		if rel, more, err = parseCombinator(ts); err != nil {
			return nil, err
		} else if !more {
			return head, nil
		}
	}
}

func lastOf(sel *Selector) *Selector {
	for sel.Relation == SubSelector && sel.TagHistory != nil {
		sel = sel.TagHistory
	}
	return sel
}

// parseCombinator consumes a combinator, if present. more is false at the
// end of the selector (end of input or a comma).
func parseCombinator(ts *tokenStream) (rel Relation, more bool, err error) {
	sawSpace := false
	if ts.peek().is(tdcss.WhitespaceToken) {
		sawSpace = true
		ts.next()
	}
	t := ts.peek()
	switch {
	case ts.atEnd() || t.is(tdcss.CommaToken):
		return 0, false, nil
	case t.isDelim(">"):
		rel = Child
	case t.isDelim("+"):
		rel = DirectAdjacent
	case t.isDelim("~"):
		rel = IndirectAdjacent
	default:
		if sawSpace {
			return Descendant, true, nil
		}
		return 0, false, ErrInvalidSelector
	}
	ts.next()
	ts.skipWhitespace()
	if ts.atEnd() || ts.peek().is(tdcss.CommaToken) {
		return 0, false, ErrInvalidSelector
	}
	return rel, true, nil
}

// parseCompound parses a sequence of simple selectors without combinators
// and returns them chained by SubSelector, the type selector first.
func parseCompound(ts *tokenStream) (*Selector, error) {
	first := &Selector{Relation: SubSelector}
	nodes := []*Selector{first}
	hasTag := false
	t := ts.peek()
	switch {
	case t.is(tdcss.IdentToken):
		first.Tag = NewName(t.data)
		hasTag = true
		ts.next()
	case t.isDelim("*"):
		hasTag = true
		ts.next()
	}
	if ts.peek().isDelim("|") || ts.peek().is(tdcss.ColumnToken) {
		return nil, fmt.Errorf("namespace prefixes: %w", ErrUnsupportedSelector)
	}
	simples := 0
	for !ts.atEnd() {
		t := ts.peek()
		if t.is(tdcss.WhitespaceToken) || t.is(tdcss.CommaToken) || t.is(tdcss.RightParenthesisToken) ||
			t.isDelim(">") || t.isDelim("+") || t.isDelim("~") {
			break
		}
		node := first
		if simples > 0 {
			node = &Selector{Relation: SubSelector}
			nodes = append(nodes, node)
		}
		if err := parseSimple(ts, node); err != nil {
			return nil, err
		}
		simples++
	}
	if simples == 0 && !hasTag {
		return nil, ErrEmptySelector
	}
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].TagHistory = nodes[i+1]
	}
	// pseudo-elements have to be the last simple selector of a compound
	for i, n := range nodes {
		if n.Match == MatchPseudoElement && i != len(nodes)-1 {
			return nil, ErrInvalidSelector
		}
	}
	return first, nil
}

// parseSimple parses one of #id, .class, [attr…] or a pseudo-class/element
// into node.
func parseSimple(ts *tokenStream, node *Selector) error {
	t := ts.next()
	switch {
	case t.is(tdcss.HashToken):
		node.Match = MatchID
		node.Value = t.data[1:]
	case t.isDelim("."):
		name := ts.next()
		if !name.is(tdcss.IdentToken) {
			return ErrInvalidSelector
		}
		node.Match = MatchClass
		node.Value = name.data
	case t.is(tdcss.LeftBracketToken):
		return parseAttribute(ts, node)
	case t.is(tdcss.ColonToken):
		return parsePseudo(ts, node)
	default:
		return fmt.Errorf("unexpected %q: %w", t.data, ErrInvalidSelector)
	}
	return nil
}

func parseAttribute(ts *tokenStream, node *Selector) error {
	ts.skipWhitespace()
	name := ts.next()
	if !name.is(tdcss.IdentToken) {
		return ErrInvalidSelector
	}
	node.Attr = strings.ToLower(name.data)
	ts.skipWhitespace()
	op := ts.next()
	switch {
	case op.is(tdcss.RightBracketToken):
		node.Match = MatchSet
		return nil
	case op.isDelim("="):
		node.Match = MatchExact
	case op.is(tdcss.IncludeMatchToken):
		node.Match = MatchList
	case op.is(tdcss.DashMatchToken):
		node.Match = MatchHyphen
	case op.is(tdcss.PrefixMatchToken):
		node.Match = MatchBegin
	case op.is(tdcss.SuffixMatchToken):
		node.Match = MatchEnd
	case op.is(tdcss.SubstringMatchToken):
		node.Match = MatchContain
	default:
		return ErrInvalidSelector
	}
	ts.skipWhitespace()
	v := ts.next()
	switch v.tt {
	case tdcss.IdentToken:
		node.Value = v.data
	case tdcss.StringToken:
		node.Value = unquote(v.data)
	default:
		return ErrInvalidSelector
	}
	ts.skipWhitespace()
	if !ts.next().is(tdcss.RightBracketToken) {
		return ErrInvalidSelector
	}
	return nil
}

func parsePseudo(ts *tokenStream, node *Selector) error {
	element := false
	if ts.peek().is(tdcss.ColonToken) {
		ts.next()
		element = true
	}
	t := ts.next()
	switch t.tt {
	case tdcss.IdentToken:
		node.Value = strings.ToLower(t.data)
		node.Pseudo = PseudoTypeByName(node.Value)
		if node.Pseudo.HasArgument() {
			node.Pseudo = PseudoUnknown
		}
	case tdcss.FunctionToken:
		node.Value = strings.ToLower(strings.TrimSuffix(t.data, "("))
		node.Pseudo = PseudoTypeByName(node.Value)
		if node.Pseudo == PseudoNot {
			return parseNegation(ts, node)
		}
		arg, ok := ts.block()
		if !ok {
			return ErrInvalidSelector
		}
		node.Argument = unquote(arg)
		if !node.Pseudo.HasArgument() {
			node.Pseudo = PseudoUnknown
		}
	default:
		return ErrInvalidSelector
	}
	switch {
	case node.Pseudo.IsElement() && (element || node.Pseudo.IsLegacyElement()):
		node.Match = MatchPseudoElement
	case element:
		node.Match, node.Pseudo = MatchPseudoElement, PseudoUnknown
	case node.Pseudo.IsElement():
		node.Match, node.Pseudo = MatchPseudoClass, PseudoUnknown
	default:
		node.Match = MatchPseudoClass
	}
	if node.Pseudo == PseudoUnknown {
		tracer().Debugf("unknown pseudo %q will never match", node.Value)
	}
	return nil
}

// parseNegation parses the argument of :not(). The argument is kept even
// if it is not a single simple selector; such negations never match.
func parseNegation(ts *tokenStream, node *Selector) error {
	node.Match = MatchPseudoClass
	ts.skipWhitespace()
	arg, err := parseCompound(ts)
	if err != nil {
		return err
	}
	ts.skipWhitespace()
	if !ts.next().is(tdcss.RightParenthesisToken) {
		return ErrInvalidSelector
	}
	node.Simple = arg
	return nil
}
