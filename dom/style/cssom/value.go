package cssom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// ValueKind is the kind of a component value of a declaration.
type ValueKind uint8

// Kinds of component values.
const (
	ValueIdent ValueKind = iota
	ValueNumber
	ValuePercentage
	ValueDimension
	ValueString
	ValueURI
	ValueHash
	ValueFunction
	ValueComma
	ValueSlash
	ValueDelim
)

// Value is a single component value of a declaration, e.g. `12px`, `bold`
// or `rgb(0, 0, 255)`.
type Value struct {
	Kind ValueKind
	Text string  // identifier, string content, URI, hash without '#', function name or delimiter
	Num  float64 // for numbers, percentages and dimensions
	Unit string  // lower-case unit of dimensions
	Args []Value // arguments of functions
	Raw  string  // source text of the value
}

// IsIdent is true if v is the identifier name (compared case-insensitively).
func (v Value) IsIdent(name string) bool {
	return v.Kind == ValueIdent && strings.EqualFold(v.Text, name)
}

// IsNumeric is true for numbers, percentages and dimensions.
func (v Value) IsNumeric() bool {
	return v.Kind == ValueNumber || v.Kind == ValuePercentage || v.Kind == ValueDimension
}

func (v Value) String() string {
	return v.Raw
}

// Errors of value parsing.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid value")
)

// ParseValues splits the text of a declaration value into component
// values.
func ParseValues(text string) ([]Value, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("value %q: %w", text, err)
	}
	ts := &tokenStream{toks: toks}
	var values []Value
	for {
		ts.skipWhitespace()
		if ts.atEnd() {
			return values, nil
		}
		v, err := parseValue(ts)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", text, err)
		}
		values = append(values, v)
	}
}

func parseValue(ts *tokenStream) (Value, error) {
	t := ts.next()
	v := Value{Raw: t.data}
	switch t.tt {
	case tdcss.IdentToken:
		v.Kind, v.Text = ValueIdent, t.data
	case tdcss.NumberToken:
		n, err := strconv.ParseFloat(t.data, 64)
		if err != nil {
			return v, ErrInvalidValue
		}
		v.Kind, v.Num = ValueNumber, n
	case tdcss.PercentageToken:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return v, ErrInvalidValue
		}
		v.Kind, v.Num = ValuePercentage, n
	case tdcss.DimensionToken:
		num, unit := splitDimension(t.data)
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return v, ErrInvalidValue
		}
		v.Kind, v.Num, v.Unit = ValueDimension, n, strings.ToLower(unit)
	case tdcss.StringToken:
		v.Kind, v.Text = ValueString, unquote(t.data)
	case tdcss.URLToken:
		inner := strings.TrimSuffix(t.data[strings.IndexByte(t.data, '(')+1:], ")")
		v.Kind, v.Text = ValueURI, unquote(strings.TrimSpace(inner))
	case tdcss.HashToken:
		v.Kind, v.Text = ValueHash, t.data[1:]
	case tdcss.FunctionToken:
		inner, ok := ts.block()
		if !ok {
			return v, ErrInvalidValue
		}
		v.Kind, v.Text = ValueFunction, strings.ToLower(strings.TrimSuffix(t.data, "("))
		v.Raw = t.data + inner + ")"
		if v.Text == "url" {
			v.Kind, v.Text = ValueURI, unquote(inner)
			break
		}
		args, err := ParseValues(inner)
		if err != nil {
			return v, err
		}
		v.Args = args
	case tdcss.CommaToken:
		v.Kind = ValueComma
	case tdcss.DelimToken:
		v.Kind, v.Text = ValueDelim, t.data
		if t.data == "/" {
			v.Kind = ValueSlash
		}
	default:
		return v, fmt.Errorf("unexpected %q: %w", t.data, ErrInvalidValue)
	}
	return v, nil
}

// splitDimension splits a dimension token like "1.5em" or "2e3px" into
// number and unit.
func splitDimension(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i+1 < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return s[:i], s[i:]
}

// FunctionArgs splits the arguments of a function value at commas.
func (v Value) FunctionArgs() [][]Value {
	if v.Kind != ValueFunction {
		return nil
	}
	var args [][]Value
	var cur []Value
	for _, a := range v.Args {
		if a.Kind == ValueComma {
			args = append(args, cur)
			cur = nil
			continue
		}
		cur = append(cur, a)
	}
	return append(args, cur)
}

// --- Declarations ----------------------------------------------------------

// Declaration is a property with its value, as found in a declaration block.
type Declaration struct {
	Property  style.PropertyID
	Name      string
	Values    []Value
	Important bool
}

// NewDeclaration creates a declaration from a property name and the text
// of its value. A trailing `!important` in the value text is honoured.
// Unknown properties and unparsable values are reported as errors,
// which callers usually log and skip.
func NewDeclaration(name, value string, important bool) (Declaration, error) {
	d := Declaration{Name: strings.ToLower(strings.TrimSpace(name)), Important: important}
	id, ok := style.PropertyByName(d.Name)
	if !ok {
		return d, fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}
	d.Property = id
	value = strings.TrimSpace(value)
	if i := strings.LastIndexByte(value, '!'); i >= 0 &&
		strings.EqualFold(strings.TrimSpace(value[i+1:]), "important") {
		d.Important = true
		value = strings.TrimSpace(value[:i])
	}
	values, err := ParseValues(value)
	if err != nil {
		return d, fmt.Errorf("property %s: %w", d.Name, err)
	}
	if len(values) == 0 {
		return d, fmt.Errorf("property %s: empty value: %w", d.Name, ErrInvalidValue)
	}
	d.Values = values
	return d, nil
}

// MustDeclaration is like NewDeclaration, but panics on errors.
func MustDeclaration(name, value string) Declaration {
	d, err := NewDeclaration(name, value, false)
	if err != nil {
		panic(err)
	}
	return d
}

// IsInherit is true for a value of `inherit`.
func (d Declaration) IsInherit() bool {
	return len(d.Values) == 1 && d.Values[0].IsIdent("inherit")
}

// IsInitial is true for a value of `initial`.
func (d Declaration) IsInitial() bool {
	return len(d.Values) == 1 && d.Values[0].IsIdent("initial")
}

func (d Declaration) String() string {
	raws := make([]string, len(d.Values))
	for i, v := range d.Values {
		raws[i] = v.Raw
	}
	s := d.Name + ": " + strings.Join(raws, " ")
	if d.Important {
		s += " !important"
	}
	return s
}
