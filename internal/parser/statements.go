package parser

import (
	"github.com/jsubset/jsubset/internal/ast"
	"github.com/jsubset/jsubset/internal/lexer"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET, lexer.VAR, lexer.CONST:
		return p.parseVarDeclStmt()
	case lexer.FUNCTION:
		return p.parseFunctionDeclStmt()
	case lexer.LBRACE:
		return p.parseBlockStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.CONTINUE:
		return p.parseContinueStmt()
	case lexer.SEMICOLON:
		return nil // empty statement
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarDeclStmt() ast.Statement {
	tok := p.curToken
	mutable := tok.Type != lexer.CONST

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	stmt := &ast.VarDeclStmt{Token: tok, Name: name, Mutable: mutable}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Init = p.parseExpression(ASSIGNMENT)
	}
	// A const with no initializer is syntactically well-formed; it is a
	// runtime SyntaxError raised by evalVarDecl before the binding is
	// created, not a parse error (spec.md §4.5.2/§7, matching
	// original_source/src/stmt.rs's Stmt::VariableDecl evaluation).

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseFunctionDeclStmt() ast.Statement {
	tok := p.curToken
	fn := p.parseFunctionLiteralNode(true)
	if fn == nil {
		return nil
	}
	return &ast.FunctionDeclStmt{Token: tok, Function: fn}
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	block := &ast.BlockStmt{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.nextToken()
	then := p.parseStatement()

	stmt := &ast.IfStmt{Token: tok, Condition: cond, Then: then}

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()

	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStmt() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	stmt := &ast.ForStmt{Token: tok}

	p.nextToken()
	if p.curTokenIs(lexer.SEMICOLON) {
		stmt.Init = nil
	} else if p.curTokenIs(lexer.LET) || p.curTokenIs(lexer.VAR) || p.curTokenIs(lexer.CONST) {
		stmt.Init = p.parseVarDeclStmt()
	} else {
		stmt.Init = p.parseExprStmt()
	}
	if !p.curTokenIs(lexer.SEMICOLON) {
		p.errorf(p.curToken.Pos, "expected ';' after for-loop initializer")
		return nil
	}

	p.nextToken()
	if !p.curTokenIs(lexer.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
		p.nextToken()
	}
	if !p.curTokenIs(lexer.SEMICOLON) {
		p.errorf(p.curToken.Pos, "expected ';' after for-loop condition")
		return nil
	}

	p.nextToken()
	if !p.curTokenIs(lexer.RPAREN) {
		stmt.Step = p.parseExpression(LOWEST)
		p.nextToken()
	}
	if !p.curTokenIs(lexer.RPAREN) {
		p.errorf(p.curToken.Pos, "expected ')' to close for-loop header")
		return nil
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.curToken
	if p.funcDepth == 0 {
		p.errorf(tok.Pos, "'return' outside of a function body")
	}

	stmt := &ast.ReturnStmt{Token: tok}
	if !p.peekTokenIs(lexer.SEMICOLON) && !p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBreakStmt() ast.Statement {
	stmt := &ast.BreakStmt{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseContinueStmt() ast.Statement {
	stmt := &ast.ContinueStmt{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExprStmt() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	stmt := &ast.ExprStmt{Token: tok, Expression: expr}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}
