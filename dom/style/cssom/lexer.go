package cssom

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

type token struct {
	tt   tdcss.TokenType
	data string
}

func (t token) is(tt tdcss.TokenType) bool {
	return t.tt == tt
}

func (t token) isDelim(c string) bool {
	return t.tt == tdcss.DelimToken && t.data == c
}

// tokenize runs the CSS lexer over s. Comments are dropped, runs of
// whitespace are collapsed into single whitespace tokens.
func tokenize(s string) ([]token, error) {
	l := tdcss.NewLexer(parse.NewInputString(s))
	var toks []token
	for {
		tt, data := l.Next()
		switch tt {
		case tdcss.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return toks, err
			}
			return toks, nil
		case tdcss.CommentToken:
			continue
		case tdcss.WhitespaceToken:
			if len(toks) > 0 && toks[len(toks)-1].tt == tdcss.WhitespaceToken {
				continue
			}
			data = []byte(" ")
		}
		toks = append(toks, token{tt: tt, data: string(data)})
	}
}

// tokenStream is a cursor over a slice of tokens.
type tokenStream struct {
	toks []token
	pos  int
}

func (ts *tokenStream) atEnd() bool {
	return ts.pos >= len(ts.toks)
}

func (ts *tokenStream) peek() token {
	if ts.atEnd() {
		return token{tt: tdcss.ErrorToken}
	}
	return ts.toks[ts.pos]
}

func (ts *tokenStream) next() token {
	t := ts.peek()
	if !ts.atEnd() {
		ts.pos++
	}
	return t
}

func (ts *tokenStream) skipWhitespace() {
	for ts.peek().is(tdcss.WhitespaceToken) {
		ts.pos++
	}
}

// block collects the raw text up to the parenthesis closing a function
// token which has already been consumed.
func (ts *tokenStream) block() (string, bool) {
	var b strings.Builder
	depth := 1
	for !ts.atEnd() {
		t := ts.next()
		switch t.tt {
		case tdcss.FunctionToken, tdcss.LeftParenthesisToken:
			depth++
		case tdcss.RightParenthesisToken:
			depth--
			if depth == 0 {
				return strings.TrimSpace(b.String()), true
			}
		}
		b.WriteString(t.data)
	}
	return "", false
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
