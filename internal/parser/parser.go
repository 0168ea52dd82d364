// Package parser implements a recursive-descent statement parser
// coupled with a precedence-partitioned expression parser, producing
// an internal/ast.SyntaxComponent tree.
package parser

import (
	"github.com/tacscript/tac/internal/ast"
	"github.com/tacscript/tac/internal/compileerr"
	"github.com/tacscript/tac/internal/lexer"
	"github.com/tacscript/tac/internal/token"
)

// Parser walks a fully-tokenized input with a single cursor. The
// whole token stream is materialized up front (programs in this
// language are small), which makes the expression parser's "collect
// the run up to the next terminator" step a plain slice operation.
type Parser struct {
	tokens []token.Token
	pos    int
	logger *compileerr.Logger
}

// New tokenizes src via l and returns a Parser positioned at the
// first token.
func New(l *lexer.Lexer) (*Parser, error) {
	toks, err := l.Tokenize()
	if err != nil {
		return nil, compileerr.New("lex", "%s", err)
	}
	return &Parser{tokens: toks, logger: compileerr.NewLogger()}, nil
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(typ token.Type) (token.Token, error) {
	if p.cur().Type != typ {
		return token.Token{}, compileerr.New("parse", "expected %s, got %s", typ, p.cur().Type)
	}
	return p.advance(), nil
}

// ParseProgram parses the entire token stream into a root Sequence
// and asserts that input ends at EOF.
func ParseProgram(l *lexer.Lexer) (*ast.Sequence, error) {
	p, err := New(l)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Sequence, error) {
	var stmts []ast.SyntaxComponent
	for p.cur().Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return &ast.Sequence{Statements: stmts}, nil
}

// parseStatement implements:
//
//	statement := for_stmt | if_stmt | block | declaration | opt_expr ';'
func (p *Parser) parseStatement() (ast.SyntaxComponent, error) {
	switch p.cur().Type {
	case token.FOR:
		return p.parseFor()
	case token.IF:
		return p.parseIf()
	case token.CURLY_OPEN:
		return p.parseBlock()
	case token.NUMTYPE, token.BOOLTYPE:
		return p.parseDeclaration()
	default:
		expr, err := p.parseOptExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return expr, nil
	}
}

// parseFor implements:
//
//	for_stmt := 'for' '(' opt_expr ';' opt_expr ';' opt_expr ')' statement
func (p *Parser) parseFor() (ast.SyntaxComponent, error) {
	p.logger.Trace("Parsing For")
	if _, err := p.expect(token.FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_OPEN); err != nil {
		return nil, err
	}
	init, err := p.parseOptExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	cond, err := p.parseOptExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	post, err := p.parseOptExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_CLOSE); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Condition: cond, Post: post, Body: body}, nil
}

// parseIf implements:
//
//	if_stmt := 'if' '(' expression ')' statement
func (p *Parser) parseIf() (ast.SyntaxComponent, error) {
	p.logger.Trace("Parsing If")
	if _, err := p.expect(token.IF); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_OPEN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_CLOSE); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.If{Condition: cond, Body: body}, nil
}

// parseBlock implements: block := '{' statement* '}'
func (p *Parser) parseBlock() (ast.SyntaxComponent, error) {
	p.logger.Trace("Parsing block")
	if _, err := p.expect(token.CURLY_OPEN); err != nil {
		return nil, err
	}
	var stmts []ast.SyntaxComponent
	for p.cur().Type != token.CURLY_CLOSE {
		if p.cur().Type == token.EOF {
			return nil, compileerr.New("parse", "unexpected end of stream, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.CURLY_CLOSE); err != nil {
		return nil, err
	}
	return &ast.Sequence{Statements: stmts}, nil
}

// parseDeclaration implements:
//
//	declaration := ('num'|'bool') Identifier ('=' expression)? ';'
func (p *Parser) parseDeclaration() (ast.SyntaxComponent, error) {
	typeTok := p.advance()
	var kind ast.TypeKind
	switch typeTok.Type {
	case token.NUMTYPE:
		kind = ast.NumberType
	case token.BOOLTYPE:
		kind = ast.BooleanType
	}

	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var initializer ast.SyntaxComponent = ast.Null{}
	if p.cur().Type == token.ASSIGN {
		p.advance()
		initializer, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.Declaration{
		Type:        ast.TypeNode{Kind: kind},
		Name:        nameTok.Literal,
		Initializer: initializer,
	}, nil
}

// parseOptExpr implements: opt_expr := ε | expr
//
// The empty alternative is chosen iff the next token is ';', ')' or
// EOF.
func (p *Parser) parseOptExpr() (ast.SyntaxComponent, error) {
	p.logger.Trace("Parsing Optional Expression")
	switch p.cur().Type {
	case token.SEMICOLON, token.PAREN_CLOSE, token.EOF:
		p.logger.Trace("Got to end of expression")
		return ast.Null{}, nil
	default:
		return p.parseExpr()
	}
}
