package ast

import (
	"testing"

	"github.com/jsubset/jsubset/internal/lexer"
)

func TestProgramString(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&VarDeclStmt{
				Token:   lexer.Token{Type: lexer.LET, Literal: "let"},
				Name:    &Identifier{Token: lexer.Token{Literal: "x"}, Value: "x"},
				Init:    &NumberLiteral{Token: lexer.Token{Literal: "5"}, Value: 5},
				Mutable: true,
			},
		},
	}
	want := "let x = 5;"
	if got := prog.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBinaryExprString(t *testing.T) {
	expr := &BinaryExpr{
		Operator: "+",
		Left:     &NumberLiteral{Value: 2, Token: lexer.Token{Literal: "2"}},
		Right:    &NumberLiteral{Value: 3, Token: lexer.Token{Literal: "3"}},
	}
	if got, want := expr.String(), "(2 + 3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptyProgramTokenLiteral(t *testing.T) {
	prog := &Program{}
	if got := prog.TokenLiteral(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
