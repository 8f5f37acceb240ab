package ast

import (
	"bytes"

	"github.com/jsubset/jsubset/internal/lexer"
)

// VarDeclStmt is `let|var|const name [= init];` (spec.md §4.5.2).
type VarDeclStmt struct {
	Token     lexer.Token // the let/var/const token
	Name      *Identifier
	Init      Expression // nil when absent
	Mutable   bool        // false for `const`
}

func (v *VarDeclStmt) statementNode()       {}
func (v *VarDeclStmt) TokenLiteral() string { return v.Token.Literal }
func (v *VarDeclStmt) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarDeclStmt) String() string {
	var out bytes.Buffer
	out.WriteString(v.Token.Literal + " " + v.Name.String())
	if v.Init != nil {
		out.WriteString(" = " + v.Init.String())
	}
	out.WriteString(";")
	return out.String()
}

// FunctionDeclStmt binds a named function in the declaring scope
// (spec.md §4.5.2 "FunctionDecl").
type FunctionDeclStmt struct {
	Token    lexer.Token
	Function *FunctionLiteral
}

func (f *FunctionDeclStmt) statementNode()       {}
func (f *FunctionDeclStmt) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclStmt) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDeclStmt) String() string       { return f.Function.String() }

// BlockStmt is `{ stmt* }`.
type BlockStmt struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *BlockStmt) statementNode()       {}
func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) Pos() lexer.Position  { return b.Token.Pos }
func (b *BlockStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStmt is `if (cond) then [else alt]`.
type IfStmt struct {
	Token     lexer.Token
	Condition Expression
	Then      Statement
	Else      Statement // nil when absent
}

func (i *IfStmt) statementNode()       {}
func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) Pos() lexer.Position  { return i.Token.Pos }
func (i *IfStmt) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Condition.String() + ") " + i.Then.String())
	if i.Else != nil {
		out.WriteString(" else " + i.Else.String())
	}
	return out.String()
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) statementNode()       {}
func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) Pos() lexer.Position  { return w.Token.Pos }
func (w *WhileStmt) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// ForStmt is `for ([init]; [cond]; [step]) body`. Init may be a VarDeclStmt
// or an ExprStmt, or nil; Cond and Step may be nil (spec.md §4.5.2).
type ForStmt struct {
	Token     lexer.Token
	Init      Statement
	Condition Expression
	Step      Expression
	Body      Statement
}

func (f *ForStmt) statementNode()       {}
func (f *ForStmt) TokenLiteral() string { return f.Token.Literal }
func (f *ForStmt) Pos() lexer.Position  { return f.Token.Pos }
func (f *ForStmt) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		out.WriteString(f.Init.String())
	}
	out.WriteString("; ")
	if f.Condition != nil {
		out.WriteString(f.Condition.String())
	}
	out.WriteString("; ")
	if f.Step != nil {
		out.WriteString(f.Step.String())
	}
	out.WriteString(") " + f.Body.String())
	return out.String()
}

// ReturnStmt is `return [expr];`.
type ReturnStmt struct {
	Token lexer.Token
	Value Expression // nil when absent
}

func (r *ReturnStmt) statementNode()       {}
func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) Pos() lexer.Position  { return r.Token.Pos }
func (r *ReturnStmt) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}

// BreakStmt is `break;`.
type BreakStmt struct{ Token lexer.Token }

func (b *BreakStmt) statementNode()       {}
func (b *BreakStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStmt) Pos() lexer.Position  { return b.Token.Pos }
func (b *BreakStmt) String() string       { return "break;" }

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Token lexer.Token }

func (c *ContinueStmt) statementNode()       {}
func (c *ContinueStmt) TokenLiteral() string { return c.Token.Literal }
func (c *ContinueStmt) Pos() lexer.Position  { return c.Token.Pos }
func (c *ContinueStmt) String() string       { return "continue;" }

// ExprStmt wraps an expression evaluated purely for its side effects.
type ExprStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (e *ExprStmt) statementNode()       {}
func (e *ExprStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExprStmt) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExprStmt) String() string {
	if e.Expression != nil {
		return e.Expression.String() + ";"
	}
	return ";"
}
