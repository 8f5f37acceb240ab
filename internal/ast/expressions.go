package ast

import (
	"strings"

	"github.com/jsubset/jsubset/internal/lexer"
)

// UnaryExpr is a prefix unary operator: `! - + typeof void`.
type UnaryExpr struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryExpr) String() string       { return "(" + u.Operator + u.Operand.String() + ")" }

// PostfixExpr is a postfix `++`/`--` applied to an lvalue (spec.md §9
// "Postfix ++/-- are parsed but not evaluated" — this subset evaluates
// them properly per SPEC_FULL.md's supplemented feature).
type PostfixExpr struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
}

func (p *PostfixExpr) expressionNode()      {}
func (p *PostfixExpr) TokenLiteral() string { return p.Token.Literal }
func (p *PostfixExpr) Pos() lexer.Position  { return p.Token.Pos }
func (p *PostfixExpr) String() string       { return "(" + p.Operand.String() + p.Operator + ")" }

// BinaryExpr covers arithmetic, comparison, and (in)equality operators.
type BinaryExpr struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// LogicalExpr covers `&&` and `||`, which short-circuit and return the
// deciding operand rather than a boolean (spec.md §4.5.3).
type LogicalExpr struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (l *LogicalExpr) expressionNode()      {}
func (l *LogicalExpr) TokenLiteral() string { return l.Token.Literal }
func (l *LogicalExpr) Pos() lexer.Position  { return l.Token.Pos }
func (l *LogicalExpr) String() string {
	return "(" + l.Left.String() + " " + l.Operator + " " + l.Right.String() + ")"
}

// AssignmentExpr is `target = value`; compound forms (`+= -= *= /=`) are
// desugared by the parser into `target = target op value` (spec.md §4.4).
type AssignmentExpr struct {
	Token  lexer.Token
	Target Expression // Identifier or MemberExpr
	Value  Expression
}

func (a *AssignmentExpr) expressionNode()      {}
func (a *AssignmentExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AssignmentExpr) Pos() lexer.Position  { return a.Token.Pos }
func (a *AssignmentExpr) String() string {
	return "(" + a.Target.String() + " = " + a.Value.String() + ")"
}

// MemberExpr is `obj.key` (Computed == false) or `obj[expr]` (Computed ==
// true); spec.md's ObjectCall expression.
type MemberExpr struct {
	Token    lexer.Token
	Object   Expression
	Property Expression // Identifier when !Computed, any Expression when Computed
	Computed bool
}

func (m *MemberExpr) expressionNode()      {}
func (m *MemberExpr) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpr) Pos() lexer.Position  { return m.Token.Pos }
func (m *MemberExpr) String() string {
	if m.Computed {
		return m.Object.String() + "[" + m.Property.String() + "]"
	}
	return m.Object.String() + "." + m.Property.String()
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Token    lexer.Token
	Callee   Expression
	Args     []Expression
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// FunctionLiteral is a `function [name](params) { body }` expression or
// declaration; FunctionDeclStmt (statements.go) wraps one with a binding name.
type FunctionLiteral struct {
	Token  lexer.Token
	Name   string // "" for anonymous function expressions
	Params []*Identifier
	Body   *BlockStmt
}

func (f *FunctionLiteral) expressionNode()      {}
func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionLiteral) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionLiteral) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "function " + f.Name + "(" + strings.Join(parts, ", ") + ") " + f.Body.String()
}

// ArrowFunctionLiteral is `(params) => expr` or `(params) => { block }`.
// ExprBody is non-nil for the implicit-return expression form.
type ArrowFunctionLiteral struct {
	Token    lexer.Token
	Params   []*Identifier
	Body     *BlockStmt // non-nil for the block-body form
	ExprBody Expression // non-nil for the expression-body form
}

func (a *ArrowFunctionLiteral) expressionNode()      {}
func (a *ArrowFunctionLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrowFunctionLiteral) Pos() lexer.Position  { return a.Token.Pos }
func (a *ArrowFunctionLiteral) String() string {
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = p.String()
	}
	head := "(" + strings.Join(parts, ", ") + ") => "
	if a.ExprBody != nil {
		return head + a.ExprBody.String()
	}
	return head + a.Body.String()
}
