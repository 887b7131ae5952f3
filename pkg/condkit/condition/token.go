package condition

// TokenKind is the type of a lexical token.
type TokenKind int

const (
	TokLiteral TokenKind = iota
	TokOperator
	TokAnd
	TokOr
	TokLParen
	TokRParen
	TokEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokLiteral:
		return "literal"
	case TokOperator:
		return "operator"
	case TokAnd:
		return "'&&'"
	case TokOr:
		return "'||'"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

// Token is an immutable lexical token. Text holds the literal text for
// TokLiteral tokens and the symbol for operators and punctuation.
type Token struct {
	Kind TokenKind
	Text string
}
