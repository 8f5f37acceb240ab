// Package ast defines the abstract syntax tree produced by the parser.
// Node shapes are deliberately minimal: spec.md specifies the AST only at
// the level of its externally observable contract, so each node carries
// just enough to drive evaluation and error reporting.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jsubset/jsubset/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing
// a value for its enclosing expression context.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Identifier is a bare name reference: a variable, parameter, or function
// name (spec.md §4.5.3).
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()          {}
func (i *Identifier) TokenLiteral() string     { return i.Token.Literal }
func (i *Identifier) String() string           { return i.Value }
func (i *Identifier) Pos() lexer.Position      { return i.Token.Pos }

// NumberLiteral is a numeric literal token already parsed to float64.
type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Token.Literal }
func (n *NumberLiteral) Pos() lexer.Position  { return n.Token.Pos }

// StringLiteral is a single- or double-quoted string literal.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return fmt.Sprintf("%q", s.Value) }
func (s *StringLiteral) Pos() lexer.Position  { return s.Token.Pos }

// BooleanLiteral is the `true`/`false` literal keyword.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }
func (b *BooleanLiteral) Pos() lexer.Position  { return b.Token.Pos }

// NullLiteral is the `null` literal keyword.
type NullLiteral struct{ Token lexer.Token }

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) String() string       { return "null" }
func (n *NullLiteral) Pos() lexer.Position  { return n.Token.Pos }

// UndefinedLiteral is the `undefined` literal keyword.
type UndefinedLiteral struct{ Token lexer.Token }

func (u *UndefinedLiteral) expressionNode()      {}
func (u *UndefinedLiteral) TokenLiteral() string { return u.Token.Literal }
func (u *UndefinedLiteral) String() string       { return "undefined" }
func (u *UndefinedLiteral) Pos() lexer.Position  { return u.Token.Pos }

// GroupingExpr is a parenthesized expression, kept distinct from its inner
// expression only so `String()` can round-trip parens for debugging.
type GroupingExpr struct {
	Token lexer.Token
	Inner Expression
}

func (g *GroupingExpr) expressionNode()      {}
func (g *GroupingExpr) TokenLiteral() string { return g.Token.Literal }
func (g *GroupingExpr) String() string       { return "(" + g.Inner.String() + ")" }
func (g *GroupingExpr) Pos() lexer.Position  { return g.Token.Pos }

// ArrayLiteral is `[expr, expr, ...]`.
type ArrayLiteral struct {
	Token    lexer.Token
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()      {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() lexer.Position  { return a.Token.Pos }
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectProperty is one `key: value` pair inside an ObjectLiteral.
type ObjectProperty struct {
	Key   Expression // Identifier or StringLiteral
	Value Expression
}

// ObjectLiteral is `{ key: value, ... }`.
type ObjectLiteral struct {
	Token      lexer.Token
	Properties []ObjectProperty
}

func (o *ObjectLiteral) expressionNode()      {}
func (o *ObjectLiteral) TokenLiteral() string { return o.Token.Literal }
func (o *ObjectLiteral) Pos() lexer.Position  { return o.Token.Pos }
func (o *ObjectLiteral) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
