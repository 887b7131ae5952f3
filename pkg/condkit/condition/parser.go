package condition

// Parse parses one full condition expression into its AST.
//
// The grammar, highest to lowest precedence:
//
//	expr       := or
//	or         := and ("||" and)*
//	and        := primary ("&&" primary)*
//	primary    := "(" expr ")" | comparison
//	comparison := LITERAL OPERATOR LITERAL
//
// Chains of "||" and "&&" fold left-associatively. The entire input
// must be consumed: tokens after a complete expression are a
// *ParseError, as is any other deviation from the grammar.
func Parse(input string) (Node, error) {
	p := &parser{tz: NewTokenizer(input)}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.tz.Current(); tok.Kind != TokEOF {
		return nil, &ParseError{Token: tok.Text, Message: "unexpected trailing content"}
	}
	return node, nil
}

type parser struct {
	tz *Tokenizer
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tz.Current().Kind == TokOr {
		p.tz.Advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.tz.Current().Kind == TokAnd {
		p.tz.Advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parsePrimary() (Node, error) {
	if p.tz.Current().Kind == TokLParen {
		p.tz.Advance()
		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if tok := p.tz.Current(); tok.Kind != TokRParen {
			return nil, &ParseError{Token: tok.Text, Message: "expected ')', got " + tok.Kind.String()}
		}
		p.tz.Advance()
		return node, nil
	}
	return p.parseComparison()
}

// parseComparison expects exactly literal, operator, literal. The
// comparator is compiled here so unmapped symbols (such as a lone "=")
// fail at parse time, not during evaluation.
func (p *parser) parseComparison() (Node, error) {
	left, err := p.expectLiteral("left operand")
	if err != nil {
		return nil, err
	}

	opTok := p.tz.Current()
	if opTok.Kind != TokOperator {
		return nil, &ParseError{Token: opTok.Text, Message: "expected comparison operator, got " + opTok.Kind.String()}
	}
	op, err := ParseComparator(opTok.Text)
	if err != nil {
		return nil, err
	}
	p.tz.Advance()

	right, err := p.expectLiteral("right operand")
	if err != nil {
		return nil, err
	}

	return Comparison{Left: left, Op: op, Right: right}, nil
}

func (p *parser) expectLiteral(what string) (string, error) {
	tok := p.tz.Current()
	if tok.Kind != TokLiteral {
		return "", &ParseError{Token: tok.Text, Message: "expected " + what + ", got " + tok.Kind.String()}
	}
	p.tz.Advance()
	return tok.Text, nil
}
