package cascade

import (
	"strconv"
	"strings"
)

// MatchNth tests a 1-based position among siblings against an `an+b`
// expression as used by :nth-child() and relatives. Expressions are
// `odd`, `even`, an integer, or `an+b` with optional parts, e.g. `-n+3`.
// Malformed expressions never match.
func MatchNth(count int, expr string) bool {
	a, b, ok := parseNth(expr)
	if !ok {
		return false
	}
	switch {
	case a == 0:
		return count == b
	case a > 0:
		return count >= b && (count-b)%a == 0
	}
	return count <= b && (b-count)%(-a) == 0
}

func parseNth(expr string) (a, b int, ok bool) {
	expr = strings.ToLower(strings.Join(strings.Fields(expr), ""))
	switch expr {
	case "":
		return 0, 0, false
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	}
	n := strings.IndexByte(expr, 'n')
	if n < 0 {
		b, err := strconv.Atoi(expr)
		return 0, b, err == nil
	}
	switch coeff := expr[:n]; coeff {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		x, err := strconv.Atoi(coeff)
		if err != nil {
			return 0, 0, false
		}
		a = x
	}
	rest := expr[n+1:]
	if rest == "" {
		return a, 0, true
	}
	if rest[0] != '+' && rest[0] != '-' {
		return 0, 0, false
	}
	// Atoi accepts a sign, but not a second one
	if len(rest) < 2 || rest[1] == '+' || rest[1] == '-' {
		return 0, 0, false
	}
	b, err := strconv.Atoi(rest)
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
