package lambda

import (
	"fmt"
	"unicode"

	"golang.org/x/exp/slices"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenHash
	TokenArrow
	TokenLParen
	TokenRParen
	TokenIllegal
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenHash:
		return "'#'"
	case TokenArrow:
		return "'->'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	}
	return "illegal token"
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// ParseError reports malformed input and the byte offset where it was found.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

// terminators end an application chain without being consumed by it.
var terminators = []TokenType{TokenEOF, TokenRParen}

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: p.pos}
		return
	}

	start := p.pos
	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	case ch == '#':
		p.current = Token{Type: TokenHash, Literal: "#", Pos: start}
		p.pos++
	case ch == '-' && p.pos+1 < len(p.input) && p.input[p.pos+1] == '>':
		p.current = Token{Type: TokenArrow, Literal: "->", Pos: start}
		p.pos += 2
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		p.current = Token{Type: TokenIllegal, Literal: string(ch), Pos: start}
		p.pos++
	}
}

// skipWhitespace also skips "--" line comments.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch {
		case unicode.IsSpace(rune(p.input[p.pos])):
			p.pos++
		case p.input[p.pos] == '-' && p.pos+1 < len(p.input) && p.input[p.pos+1] == '-':
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '\''
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse reads a single term and requires the whole input to be consumed.
func (p *Parser) Parse() (Term, error) {
	if p.current.Type == TokenEOF {
		return nil, p.errorf("empty input")
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("unexpected %s after term", p.describe())
	}
	return term, nil
}

func (p *Parser) describe() string {
	if p.current.Type == TokenIdent || p.current.Type == TokenIllegal {
		return fmt.Sprintf("%q", p.current.Literal)
	}
	return p.current.Type.String()
}

// Term ::= Abs | App
func (p *Parser) parseTerm() (Term, error) {
	if p.current.Type == TokenHash {
		return p.parseAbs()
	}
	return p.parseApp()
}

// Abs ::= '#' Ident '->' Term
// The body extends as far right as possible.
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume '#'
	if p.current.Type != TokenIdent {
		return nil, p.errorf("expected parameter name, got %s", p.describe())
	}
	param := p.current.Literal
	p.next()
	if p.current.Type != TokenArrow {
		return nil, p.errorf("expected '->', got %s", p.describe())
	}
	p.next()
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return L(param, body), nil
}

// App ::= Atom Atom* [Abs]
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for !slices.Contains(terminators, p.current.Type) {
		// A lambda inside a chain swallows the rest of it: `f #x -> x y`
		// is `f (#x -> x y)`.
		if p.current.Type == TokenHash {
			abs, err := p.parseAbs()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: abs}, nil
		}

		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}

	return left, nil
}

// Atom ::= Ident | '(' Term ')'
func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return V(name), nil
	case TokenLParen:
		open := p.current.Pos
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, &ParseError{Pos: p.current.Pos, Msg: fmt.Sprintf("expected ')' to close '(' at offset %d, got %s", open, p.describe())}
		}
		p.next()
		return term, nil
	default:
		return nil, p.errorf("unexpected %s", p.describe())
	}
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// MustParse is like Parse but panics on malformed input. It is meant for
// terms written in code.
func MustParse(input string) Term {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}
