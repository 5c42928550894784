package cssom

import (
	"strings"

	tdcss "github.com/tdewolff/parse/v2/css"
)

// MediaEnvironment describes the output device style sheets are evaluated
// for. Width and Height are the viewport dimensions in CSS pixels; zero
// values leave the corresponding media features undecided, which makes
// queries on them fail.
type MediaEnvironment struct {
	Type   string // "screen", "print", …
	Width  float64
	Height float64
}

// Screen returns a screen environment of the given viewport size.
func Screen(width, height float64) MediaEnvironment {
	return MediaEnvironment{Type: "screen", Width: width, Height: height}
}

// MediaQuery is a single query of a media list, like
// `only screen and (min-width: 400px)`.
type MediaQuery struct {
	Not      bool
	Type     string // lower case; empty or "all" for any medium
	Features []MediaFeature
	invalid  bool
}

// MediaFeature is a parenthesized feature test of a media query.
type MediaFeature struct {
	Name  string // lower case, including min-/max- prefixes
	Value []Value
}

// MediaList is a comma-separated list of media queries. An empty list
// matches every environment.
type MediaList []MediaQuery

// ParseMediaList parses the text of a media list, as found in @media and
// @import preludes or in the media attribute of HTML elements.
// Queries which fail to parse are kept as invalid queries, which never match.
func ParseMediaList(text string) MediaList {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var list MediaList
	for _, q := range splitTopLevel(text) {
		list = append(list, parseMediaQuery(q))
	}
	return list
}

func splitTopLevel(text string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, text[start:])
}

func parseMediaQuery(text string) MediaQuery {
	q := MediaQuery{}
	toks, err := tokenize(text)
	if err != nil {
		q.invalid = true
		return q
	}
	ts := &tokenStream{toks: toks}
	ts.skipWhitespace()
	expectFeature := true
	if t := ts.peek(); t.is(tdcss.IdentToken) {
		ts.next()
		switch strings.ToLower(t.data) {
		case "not":
			q.Not = true
		case "only":
		default:
			q.Type = strings.ToLower(t.data)
			expectFeature = false
		}
		ts.skipWhitespace()
		if q.Type == "" {
			if t = ts.next(); !t.is(tdcss.IdentToken) {
				q.invalid = true
				return q
			}
			q.Type = strings.ToLower(t.data)
			expectFeature = false
			ts.skipWhitespace()
		}
	}
	for !ts.atEnd() {
		if !expectFeature {
			if t := ts.next(); !t.is(tdcss.IdentToken) || !strings.EqualFold(t.data, "and") {
				q.invalid = true
				return q
			}
			ts.skipWhitespace()
		}
		f, ok := parseMediaFeature(ts)
		if !ok {
			q.invalid = true
			return q
		}
		q.Features = append(q.Features, f)
		expectFeature = false
		ts.skipWhitespace()
	}
	if q.Type == "" && len(q.Features) == 0 {
		q.invalid = true
	}
	return q
}

func parseMediaFeature(ts *tokenStream) (MediaFeature, bool) {
	var f MediaFeature
	if !ts.next().is(tdcss.LeftParenthesisToken) {
		return f, false
	}
	ts.skipWhitespace()
	name := ts.next()
	if !name.is(tdcss.IdentToken) {
		return f, false
	}
	f.Name = strings.ToLower(name.data)
	ts.skipWhitespace()
	if ts.peek().is(tdcss.RightParenthesisToken) {
		ts.next()
		return f, true
	}
	if !ts.next().is(tdcss.ColonToken) {
		return f, false
	}
	for {
		ts.skipWhitespace()
		if ts.atEnd() {
			return f, false
		}
		if ts.peek().is(tdcss.RightParenthesisToken) {
			ts.next()
			return f, len(f.Value) > 0
		}
		v, err := parseValue(ts)
		if err != nil {
			return f, false
		}
		f.Value = append(f.Value, v)
	}
}

// Matches evaluates a media list against an environment. A list matches if
// any of its queries matches.
func (ml MediaList) Matches(env MediaEnvironment) bool {
	if len(ml) == 0 {
		return true
	}
	for _, q := range ml {
		if q.Matches(env) {
			return true
		}
	}
	return false
}

// Matches evaluates a single media query.
func (q MediaQuery) Matches(env MediaEnvironment) bool {
	if q.invalid {
		return false
	}
	ok := q.Type == "" || q.Type == "all" || strings.EqualFold(q.Type, env.Type)
	for _, f := range q.Features {
		if !ok {
			break
		}
		ok = f.Matches(env)
	}
	return ok != q.Not
}

// Matches evaluates a media feature. Unknown features do not match.
func (f MediaFeature) Matches(env MediaEnvironment) bool {
	name, cmp := f.Name, 0
	if strings.HasPrefix(name, "min-") {
		name, cmp = name[4:], 1
	} else if strings.HasPrefix(name, "max-") {
		name, cmp = name[4:], -1
	}
	var actual float64
	switch name {
	case "width", "device-width":
		actual = env.Width
	case "height", "device-height":
		actual = env.Height
	case "orientation":
		if cmp != 0 || len(f.Value) != 1 || env.Width == 0 || env.Height == 0 {
			return false
		}
		if env.Height >= env.Width {
			return f.Value[0].IsIdent("portrait")
		}
		return f.Value[0].IsIdent("landscape")
	case "color":
		return env.Type != "print"
	default:
		return false
	}
	if actual == 0 {
		return false
	}
	if len(f.Value) == 0 {
		return cmp == 0
	}
	want, ok := mediaLength(f.Value[0])
	if !ok {
		return false
	}
	switch cmp {
	case 1:
		return actual >= want
	case -1:
		return actual <= want
	}
	return actual == want
}

// mediaLength converts a length in a media feature to px. Font-relative
// units refer to the initial font size.
func mediaLength(v Value) (float64, bool) {
	switch v.Kind {
	case ValueNumber:
		return v.Num, v.Num == 0
	case ValueDimension:
		switch v.Unit {
		case "px":
			return v.Num, true
		case "em", "rem":
			return v.Num * 16, true
		case "pt":
			return v.Num * 4 / 3, true
		case "in":
			return v.Num * 96, true
		case "cm":
			return v.Num * 96 / 2.54, true
		case "mm":
			return v.Num * 96 / 25.4, true
		}
	}
	return 0, false
}

func (q MediaQuery) String() string {
	var parts []string
	if q.Not {
		parts = append(parts, "not")
	}
	if q.Type != "" {
		parts = append(parts, q.Type)
	}
	for i, f := range q.Features {
		if i > 0 || q.Type != "" {
			parts = append(parts, "and")
		}
		s := "(" + f.Name
		if len(f.Value) > 0 {
			s += ": " + f.Value[0].Raw
		}
		parts = append(parts, s+")")
	}
	return strings.Join(parts, " ")
}

func (ml MediaList) String() string {
	qs := make([]string, len(ml))
	for i, q := range ml {
		qs[i] = q.String()
	}
	return strings.Join(qs, ", ")
}
