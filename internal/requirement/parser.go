package requirement

import "fmt"

// ParseError reports a token sequence that violates the requirement grammar.
// Index is the offending position in the token slice (== len(tokens) when the
// input ended too early).
type ParseError struct {
	Index  int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: %s", e.Index, e.Reason)
}

// Parse reduces a token sequence to a single Requirement tree.
//
// Grammar, with AND binding tighter than OR and both left-associative
// (the source material never states a precedence for mixed unparenthesized
// expressions; this is a deliberate choice, parentheses override it):
//
//	Program -> Expr | ε
//	Expr    -> Expr OR Term | Term
//	Term    -> Term AND Factor | Factor
//	Factor  -> LPAREN Expr RPAREN | atomic
//
// ε yields a nil Requirement ("no requirement"). Grouping contributes no
// node; And/Or construction flattens, so a combinator run of any length is a
// single node.
func Parse(tokens []Token) (Requirement, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	p := &parser{tokens: tokens}
	req, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, p.errf("unexpected %s", p.tokens[p.pos].Kind)
	}
	return req, nil
}

// ParseString tokenizes and parses in one step. This is the form the service
// caches; both underlying errors pass through unwrapped.
func ParseString(raw string) (Requirement, error) {
	toks, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parser adapts the package-level functions to the interface the app layer
// consumes.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (*Parser) ParseString(raw string) (Requirement, error) {
	return ParseString(raw)
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseExpr() (Requirement, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek(TokenOr) {
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = newOr(left, right)
	}

	return left, nil
}

func (p *parser) parseTerm() (Requirement, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.peek(TokenAnd) {
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = newAnd(left, right)
	}

	return left, nil
}

func (p *parser) parseFactor() (Requirement, error) {
	if p.pos >= len(p.tokens) {
		return nil, p.errf("expected a requisite or group, got end of input")
	}

	tok := p.tokens[p.pos]
	switch {
	case tok.Kind == TokenLParen:
		p.pos++
		if p.peek(TokenRParen) {
			return nil, p.errf("empty group")
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.peek(TokenRParen) {
			return nil, p.errf("unbalanced group: missing closing parenthesis")
		}
		p.pos++
		return inner, nil

	case tok.IsAtomic():
		p.pos++
		return &Atomic{Req: tok.Req}, nil

	default:
		return nil, p.errf("expected a requisite or group, got %s", tok.Kind)
	}
}

func (p *parser) peek(kind TokenKind) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Kind == kind
}

func (p *parser) errf(format string, args ...any) *ParseError {
	return &ParseError{Index: p.pos, Reason: fmt.Sprintf(format, args...)}
}
