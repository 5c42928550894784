package cssom

import "strings"

// Origin is the source a style sheet comes from. Together with the
// importance of a declaration it determines the cascading tier.
type Origin uint8

// Origins of style sheets, in cascading order.
const (
	OriginUserAgent      Origin = iota // browser defaults
	OriginPresentational               // selector-based presentational hints of HTML
	OriginUser                         // user preferences
	OriginAuthor                       // document style sheets
)

var originNames = [...]string{"user-agent", "presentational", "user", "author"}

func (o Origin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}
	return "?"
}

// RuleKind distinguishes style rules from at-rules.
type RuleKind uint8

// Kinds of rules.
const (
	StyleRule RuleKind = iota
	MediaRule
	ImportRule
	FontFaceRule
)

// Rule is a rule of a style sheet.
//
// A style rule holds a group of selectors and a block of declarations.
// A media rule holds nested rules, which apply only if the media list
// matches. An import rule references another style sheet, which may be nil
// if it could not be loaded. A font-face rule holds font descriptors.
type Rule struct {
	Kind         RuleKind
	SelectorText string
	Selectors    []*Selector
	Declarations []Declaration
	Media        MediaList
	Rules        []*Rule
	Href         string
	Import       *StyleSheet
	Descriptors  map[string]string
}

// NewStyleRule creates a style rule from the text of a selector group.
// Invalid selector groups are reported as errors.
func NewStyleRule(selectors string, decls []Declaration) (*Rule, error) {
	sels, err := ParseSelectorGroup(selectors)
	if err != nil {
		return nil, err
	}
	return &Rule{
		Kind:         StyleRule,
		SelectorText: strings.TrimSpace(selectors),
		Selectors:    sels,
		Declarations: decls,
	}, nil
}

// StyleSheet is an ordered list of rules from a single origin.
type StyleSheet struct {
	Origin  Origin
	BaseURL string    // URL the sheet was loaded from, if any
	Media   MediaList // media the whole sheet is restricted to
	Rules   []*Rule
}

// NewStyleSheet creates an empty style sheet.
func NewStyleSheet(origin Origin) *StyleSheet {
	return &StyleSheet{Origin: origin}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends the rules of another style sheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// FontFaceSink receives @font-face rules of style sheets in effect.
type FontFaceSink interface {
	AddFontFace(descriptors map[string]string, baseURL string)
}

// StyleRules flattens a style sheet into its style rules in effect for an
// environment: media rules are expanded if their media list matches,
// imported sheets are inlined at the position of the import rule, and
// font-face rules are handed to fonts (which may be nil).
// Style rules are returned in source order.
func (sheet *StyleSheet) StyleRules(env MediaEnvironment, fonts FontFaceSink) []*Rule {
	if sheet == nil || !sheet.Media.Matches(env) {
		return nil
	}
	var rules []*Rule
	visited := map[*StyleSheet]bool{sheet: true}
	flatten(sheet.Rules, sheet.BaseURL, env, fonts, visited, &rules)
	return rules
}

func flatten(list []*Rule, base string, env MediaEnvironment, fonts FontFaceSink,
	visited map[*StyleSheet]bool, rules *[]*Rule) {
	//
	for _, r := range list {
		switch r.Kind {
		case StyleRule:
			if len(r.Selectors) > 0 {
				*rules = append(*rules, r)
			}
		case MediaRule:
			if r.Media.Matches(env) {
				flatten(r.Rules, base, env, fonts, visited, rules)
			}
		case ImportRule:
			imp := r.Import
			if imp == nil || visited[imp] || !r.Media.Matches(env) || !imp.Media.Matches(env) {
				continue
			}
			visited[imp] = true
			flatten(imp.Rules, imp.BaseURL, env, fonts, visited, rules)
		case FontFaceRule:
			if fonts != nil {
				fonts.AddFontFace(r.Descriptors, base)
			}
		}
	}
}
