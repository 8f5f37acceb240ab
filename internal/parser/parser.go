// Package parser implements a recursive-descent parser with Pratt-style
// expression precedence climbing over the jsubset token stream (spec.md
// §4.4). Errors are collected rather than raised immediately so the
// caller still receives a best-effort statement list (spec.md §4.4, §7).
package parser

import (
	"fmt"

	"github.com/jsubset/jsubset/internal/ast"
	"github.com/jsubset/jsubset/internal/lexer"
)

// precedence levels, lowest to highest. Logical && and || sit between
// assignment and equality; spec.md's precedence table doesn't list them
// explicitly but §4.5.3 requires short-circuit evaluation, so they need a
// level of their own (see DESIGN.md for this Open Question resolution).
const (
	_ int = iota
	LOWEST
	ASSIGNMENT
	LOGICAL_OR
	LOGICAL_AND
	EQUALITY
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	POSTFIX
	CALL
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:        ASSIGNMENT,
	lexer.PLUS_EQ:       ASSIGNMENT,
	lexer.MINUS_EQ:      ASSIGNMENT,
	lexer.STAR_EQ:       ASSIGNMENT,
	lexer.SLASH_EQ:      ASSIGNMENT,
	lexer.PERCENT_EQ:    ASSIGNMENT,
	lexer.OR_OR:         LOGICAL_OR,
	lexer.AND_AND:       LOGICAL_AND,
	lexer.EQ:            EQUALITY,
	lexer.NOT_EQ:        EQUALITY,
	lexer.EQ_STRICT:     EQUALITY,
	lexer.NOT_EQ_STRICT: EQUALITY,
	lexer.LT:            COMPARISON,
	lexer.LT_EQ:         COMPARISON,
	lexer.GT:            COMPARISON,
	lexer.GT_EQ:         COMPARISON,
	lexer.PLUS:          ADDITIVE,
	lexer.MINUS:         ADDITIVE,
	lexer.STAR:          MULTIPLICATIVE,
	lexer.SLASH:         MULTIPLICATIVE,
	lexer.PERCENT:       MULTIPLICATIVE,
	lexer.LPAREN:        CALL,
	lexer.DOT:           CALL,
	lexer.LBRACKET:      CALL,
	lexer.INC:           POSTFIX,
	lexer.DEC:           POSTFIX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a token stream from a Lexer and produces a Program.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  lexer.Token
	peekToken lexer.Token

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn

	// funcDepth tracks nesting inside function bodies so `return` outside
	// any function can be rejected at parse time, per SPEC_FULL.md's
	// resolution of spec.md §9's "Return raised outside any function"
	// open question.
	funcDepth int
}

// New creates a Parser over the given Lexer and primes the two-token
// lookahead buffer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:     p.parseIdentifier,
		lexer.NUMBER:    p.parseNumberLiteral,
		lexer.STRING:    p.parseStringLiteral,
		lexer.TRUE:      p.parseBooleanLiteral,
		lexer.FALSE:     p.parseBooleanLiteral,
		lexer.NULL:      p.parseNullLiteral,
		lexer.UNDEFINED: p.parseUndefinedLiteral,
		lexer.BANG:      p.parseUnaryExpr,
		lexer.MINUS:     p.parseUnaryExpr,
		lexer.PLUS:      p.parseUnaryExpr,
		lexer.TYPEOF:    p.parseUnaryExpr,
		lexer.VOID:      p.parseUnaryExpr,
		lexer.LPAREN:    p.parseGroupedOrArrow,
		lexer.LBRACKET:  p.parseArrayLiteral,
		lexer.LBRACE:    p.parseObjectLiteral,
		lexer.FUNCTION:  p.parseFunctionLiteral,
	}

	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:          p.parseBinaryExpr,
		lexer.MINUS:         p.parseBinaryExpr,
		lexer.STAR:          p.parseBinaryExpr,
		lexer.SLASH:         p.parseBinaryExpr,
		lexer.PERCENT:       p.parseBinaryExpr,
		lexer.EQ:            p.parseBinaryExpr,
		lexer.NOT_EQ:        p.parseBinaryExpr,
		lexer.EQ_STRICT:     p.parseBinaryExpr,
		lexer.NOT_EQ_STRICT: p.parseBinaryExpr,
		lexer.LT:            p.parseBinaryExpr,
		lexer.LT_EQ:         p.parseBinaryExpr,
		lexer.GT:            p.parseBinaryExpr,
		lexer.GT_EQ:         p.parseBinaryExpr,
		lexer.AND_AND:       p.parseLogicalExpr,
		lexer.OR_OR:         p.parseLogicalExpr,
		lexer.ASSIGN:        p.parseAssignmentExpr,
		lexer.PLUS_EQ:       p.parseCompoundAssignmentExpr,
		lexer.MINUS_EQ:      p.parseCompoundAssignmentExpr,
		lexer.STAR_EQ:       p.parseCompoundAssignmentExpr,
		lexer.SLASH_EQ:      p.parseCompoundAssignmentExpr,
		lexer.PERCENT_EQ:    p.parseCompoundAssignmentExpr,
		lexer.LPAREN:        p.parseCallExpr,
		lexer.DOT:           p.parseMemberExpr,
		lexer.LBRACKET:      p.parseComputedMemberExpr,
		lexer.INC:           p.parsePostfixExpr,
		lexer.DEC:           p.parsePostfixExpr,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error accumulated while parsing.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(tt lexer.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt lexer.TokenType) bool { return p.peekToken.Type == tt }

func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf(
		"line %d: expected next token to be %s, got %s instead",
		p.peekToken.Pos.Line, tt, p.peekToken.Type))
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: ", pos.Line)+fmt.Sprintf(format, args...))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the entire token stream into a Program, collecting
// errors along the way instead of aborting on the first one.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}
