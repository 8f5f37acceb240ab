package parser

import (
	"strconv"
	"strings"

	"github.com/jsubset/jsubset/internal/ast"
	"github.com/jsubset/jsubset/internal/lexer"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		p.errorf(p.curToken.Pos, "no prefix parse function for %s", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// parseIdentifier returns a bare Identifier, unless it is immediately
// followed by `=>`, in which case it is a single bare parameter of an
// arrow function (`x => x * 2`) rather than an identifier expression —
// the parenthesized form (`(x) => ...`) goes through
// parseGroupedOrArrow instead.
func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.curToken
	id := &ast.Identifier{Token: tok, Value: tok.Literal}
	if p.peekTokenIs(lexer.FAT_ARROW) {
		p.nextToken()
		return p.finishArrowFunction(tok, []*ast.Identifier{id})
	}
	return id
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := strings.ReplaceAll(p.curToken.Literal, "_", "")
	val, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.errorf(p.curToken.Pos, "could not parse %q as a number", p.curToken.Literal)
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression { return &ast.NullLiteral{Token: p.curToken} }

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.UndefinedLiteral{Token: p.curToken}
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(UNARY)
	return &ast.UnaryExpr{Token: tok, Operator: tok.Literal, Operand: operand}
}

func (p *Parser) parsePostfixExpr(left ast.Expression) ast.Expression {
	tok := p.curToken
	return &ast.PostfixExpr{Token: tok, Operator: tok.Literal, Operand: left}
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.curToken
	expr := &ast.BinaryExpr{Token: tok, Operator: tok.Literal, Left: left}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseLogicalExpr(left ast.Expression) ast.Expression {
	tok := p.curToken
	expr := &ast.LogicalExpr{Token: tok, Operator: tok.Literal, Left: left}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	return expr
}

// parseAssignmentExpr handles plain `=`. Assignment is right-associative:
// parsing the RHS at precedence ASSIGNMENT-1 lets a chained `a = b = c`
// recurse back into this function for `b = c`.
func (p *Parser) parseAssignmentExpr(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !isAssignable(left) {
		p.errorf(tok.Pos, "invalid assignment target")
	}
	p.nextToken()
	value := p.parseExpression(ASSIGNMENT - 1)
	return &ast.AssignmentExpr{Token: tok, Target: left, Value: value}
}

// parseCompoundAssignmentExpr desugars `target op= value` into
// `target = target op value` at parse time (spec.md §4.4).
func (p *Parser) parseCompoundAssignmentExpr(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !isAssignable(left) {
		p.errorf(tok.Pos, "invalid assignment target")
	}
	op := strings.TrimSuffix(tok.Literal, "=")
	p.nextToken()
	rhs := p.parseExpression(ASSIGNMENT - 1)
	combined := &ast.BinaryExpr{Token: tok, Operator: op, Left: left, Right: rhs}
	return &ast.AssignmentExpr{Token: tok, Target: left, Value: combined}
}

func isAssignable(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpr:
		return true
	default:
		return false
	}
}

func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(lexer.RPAREN)
	return &ast.CallExpr{Token: tok, Callee: callee, Args: args}
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(ASSIGNMENT-1))

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(ASSIGNMENT-1))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseMemberExpr(obj ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.MemberExpr{Token: tok, Object: obj, Property: prop, Computed: false}
}

func (p *Parser) parseComputedMemberExpr(obj ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	prop := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.MemberExpr{Token: tok, Object: obj, Property: prop, Computed: true}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	elems := p.parseExpressionList(lexer.RBRACKET)
	return &ast.ArrayLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken
	obj := &ast.ObjectLiteral{Token: tok}

	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()

		var key ast.Expression
		switch p.curToken.Type {
		case lexer.IDENT:
			key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		case lexer.STRING:
			key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
		default:
			p.errorf(p.curToken.Pos, "invalid object property key %s", p.curToken.Type)
			return nil
		}

		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(ASSIGNMENT - 1)
		obj.Properties = append(obj.Properties, ast.ObjectProperty{Key: key, Value: val})

		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return obj
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	return p.parseFunctionLiteralNode(false)
}

// parseFunctionLiteralNode parses `function [name](params) { body }`.
// requireName is true when called from a FunctionDecl statement context.
func (p *Parser) parseFunctionLiteralNode(requireName bool) *ast.FunctionLiteral {
	tok := p.curToken
	fn := &ast.FunctionLiteral{Token: tok}

	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		fn.Name = p.curToken.Literal
	} else if requireName {
		p.errorf(tok.Pos, "function declaration requires a name")
		return nil
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	fn.Params = p.parseParamList()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	p.funcDepth++
	fn.Body = p.parseBlockStmt()
	p.funcDepth--
	return fn
}

func (p *Parser) parseParamList() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return params
}

// parseGroupedOrArrow disambiguates `(expr)` from an arrow function's
// parameter list by scanning ahead for a matching `)` followed by `=>`.
// The lexer has no backtracking support of its own, so disambiguation is
// done by re-lexing the same prefix through a second Lexer instance
// rather than mutating shared lexer state.
func (p *Parser) parseGroupedOrArrow() ast.Expression {
	if p.looksLikeArrowParams() {
		return p.parseArrowFunction()
	}

	tok := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	if p.peekTokenIs(lexer.FAT_ARROW) {
		if id, ok := inner.(*ast.Identifier); ok {
			p.nextToken()
			return p.finishArrowFunction(tok, []*ast.Identifier{id})
		}
	}

	return &ast.GroupingExpr{Token: tok, Inner: inner}
}

// looksLikeArrowParams reports whether the current `(` begins an arrow
// function's parameter list, i.e. `( [ident (, ident)*] ) =>`. It peeks
// using a cloned lexer so the parser's own token stream is untouched on
// a false result.
func (p *Parser) looksLikeArrowParams() bool {
	clone := p.l.Clone()
	// clone starts fresh from wherever the underlying lexer currently is;
	// curToken/peekToken already consumed LPAREN and the token after it,
	// so scan forward over clone's tokens mirroring that lookahead.
	depth := 1
	tok := p.peekToken
	for {
		switch tok.Type {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				next := clone.NextToken()
				return next.Type == lexer.FAT_ARROW
			}
		case lexer.EOF:
			return false
		case lexer.IDENT, lexer.COMMA:
			// allowed inside an arrow parameter list
		default:
			if depth == 1 {
				return false
			}
		}
		tok = clone.NextToken()
	}
}

func (p *Parser) parseArrowFunction() ast.Expression {
	tok := p.curToken
	params := p.parseParamList()
	if !p.expectPeek(lexer.FAT_ARROW) {
		return nil
	}
	return p.finishArrowFunction(tok, params)
}

func (p *Parser) finishArrowFunction(tok lexer.Token, params []*ast.Identifier) ast.Expression {
	p.nextToken()
	arrow := &ast.ArrowFunctionLiteral{Token: tok, Params: params}

	if p.curTokenIs(lexer.LBRACE) {
		p.funcDepth++
		arrow.Body = p.parseBlockStmt()
		p.funcDepth--
	} else {
		arrow.ExprBody = p.parseExpression(ASSIGNMENT - 1)
	}
	return arrow
}
