package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchNthKeywords(t *testing.T) {
	for i := 1; i <= 1000; i++ {
		assert.Equal(t, MatchNth(i, "2n+1"), MatchNth(i, "odd"), "position %d", i)
		assert.Equal(t, MatchNth(i, "2n"), MatchNth(i, "even"), "position %d", i)
		assert.Equal(t, i%2 == 1, MatchNth(i, "odd"), "position %d", i)
	}
}

func TestMatchNthExpressions(t *testing.T) {
	var firstThree []int
	for i := 1; i <= 10; i++ {
		if MatchNth(i, "-n+3") {
			firstThree = append(firstThree, i)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, firstThree)
	//
	tests := []struct {
		expr  string
		count int
		match bool
	}{
		{"3", 3, true},
		{"3", 4, false},
		{"n", 7, true},
		{"+n", 1, true},
		{"3n", 9, true},
		{"3n", 10, false},
		{"3n+2", 2, true},
		{"3n+2", 5, true},
		{"3n+2", 6, false},
		{"3n-1", 2, true},
		{"-2n+5", 1, true},
		{"-2n+5", 3, true},
		{"-2n+5", 4, false},
		{"-2n+5", 7, false},
		{" 2n + 1 ", 3, true},
		{"ODD", 5, true},
		{"0n+4", 4, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.match, MatchNth(tt.count, tt.expr), "%d against %q", tt.count, tt.expr)
	}
}

func TestMatchNthMalformed(t *testing.T) {
	for _, expr := range []string{"", "n+", "2n++1", "2n+-1", "x", "2x+1", "n1", "odd+1"} {
		for i := 1; i <= 5; i++ {
			assert.False(t, MatchNth(i, expr), "%d against %q", i, expr)
		}
	}
}
