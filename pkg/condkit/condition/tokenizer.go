package condition

import (
	"strings"
	"unicode"
)

// Tokenizer splits a condition expression into tokens one at a time.
// It holds only a cursor and the current token; no token list is
// materialized. Once the end of input is reached the tokenizer stays
// at EOF.
type Tokenizer struct {
	input []rune
	pos   int
	cur   Token
}

// NewTokenizer creates a tokenizer positioned on the first token of
// the input.
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{input: []rune(input)}
	t.Advance()
	return t
}

// Current returns the token under the cursor.
func (t *Tokenizer) Current() Token { return t.cur }

// Advance moves the cursor to the next token.
func (t *Tokenizer) Advance() {
	t.skipWhitespace()

	if t.pos >= len(t.input) {
		t.cur = Token{Kind: TokEOF}
		return
	}

	switch t.input[t.pos] {
	case '(':
		t.pos++
		t.cur = Token{Kind: TokLParen, Text: "("}
		return
	case ')':
		t.pos++
		t.cur = Token{Kind: TokRParen, Text: ")"}
		return
	}

	// Connectives are checked before operators so "&&" never matches
	// anything else.
	if t.hasPrefix("&&") {
		t.pos += 2
		t.cur = Token{Kind: TokAnd, Text: "&&"}
		return
	}
	if t.hasPrefix("||") {
		t.pos += 2
		t.cur = Token{Kind: TokOr, Text: "||"}
		return
	}

	// operatorSymbols is ordered longest first, so ">=" is never
	// tokenized as ">" followed by "=".
	for _, sym := range operatorSymbols {
		if t.hasPrefix(sym) {
			t.pos += len(sym)
			t.cur = Token{Kind: TokOperator, Text: sym}
			return
		}
	}

	t.cur = Token{Kind: TokLiteral, Text: t.readLiteral()}
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

// hasPrefix reports whether the input at the cursor starts with s.
// Symbols are ASCII, so bytes and runes line up.
func (t *Tokenizer) hasPrefix(s string) bool {
	if t.pos+len(s) > len(t.input) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if t.input[t.pos+i] != rune(s[i]) {
			return false
		}
	}
	return true
}

// atOperatorStart reports whether the cursor sits on the start of a
// connective or comparison operator.
func (t *Tokenizer) atOperatorStart() bool {
	if t.hasPrefix("&&") || t.hasPrefix("||") {
		return true
	}
	for _, sym := range operatorSymbols {
		if t.hasPrefix(sym) {
			return true
		}
	}
	return false
}

// readLiteral scans a literal: characters up to whitespace, a
// parenthesis, or the start of a connective or operator. Quoted
// sections ('...' or "...") are copied with the quotes stripped and
// nothing inside them terminates the scan. A backslash emits the
// following character verbatim. An unterminated quote scans to the end
// of input.
func (t *Tokenizer) readLiteral() string {
	var sb strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == '\\':
			t.pos++
			if t.pos < len(t.input) {
				sb.WriteRune(t.input[t.pos])
				t.pos++
			}
		case ch == '\'' || ch == '"':
			t.pos++
			t.readQuoted(ch, &sb)
		case unicode.IsSpace(ch) || ch == '(' || ch == ')':
			return sb.String()
		case t.atOperatorStart():
			return sb.String()
		default:
			sb.WriteRune(ch)
			t.pos++
		}
	}
	return sb.String()
}

// readQuoted consumes characters up to the closing quote, which is
// stripped. Backslash escapes work the same as outside quotes.
func (t *Tokenizer) readQuoted(quote rune, sb *strings.Builder) {
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == '\\' {
			t.pos++
			if t.pos < len(t.input) {
				sb.WriteRune(t.input[t.pos])
				t.pos++
			}
			continue
		}
		if ch == quote {
			t.pos++
			return
		}
		sb.WriteRune(ch)
		t.pos++
	}
}
