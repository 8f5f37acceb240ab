package parser

import (
	"fmt"
	"testing"

	"github.com/jsubset/jsubset/internal/ast"
	"github.com/jsubset/jsubset/internal/lexer"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return prog
}

func TestVarDeclStmt(t *testing.T) {
	prog := parseProgram(t, "let x = 5;")
	require.Len(t, prog.Statements, 1)
	stmt := prog.Statements[0].(*ast.VarDeclStmt)
	require.Equal(t, "x", stmt.Name.Value)
	require.True(t, stmt.Mutable)
	num := stmt.Init.(*ast.NumberLiteral)
	require.Equal(t, float64(5), num.Value)
}

// A const with no initializer is syntactically valid; evalVarDecl
// raises it as a runtime SyntaxError instead (see interp's
// TestConstWithoutInitializerIsRuntimeSyntaxError).
func TestConstWithoutInitializerParsesCleanly(t *testing.T) {
	prog := parseProgram(t, "const x;")
	require.Len(t, prog.Statements, 1)
	stmt := prog.Statements[0].(*ast.VarDeclStmt)
	require.Equal(t, "x", stmt.Name.Value)
	require.False(t, stmt.Mutable)
	require.Nil(t, stmt.Init)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3));"},
		{"(1 + 2) * 3;", "((1 + 2) * 3);"},
		{"a = b = 3;", "(a = (b = 3));"},
		{"a < b == c < d;", "((a < b) == (c < d));"},
		{"a || b && c;", "(a || (b && c));"},
		{"-a * b;", "((-a) * b);"},
		{"!a;", "(!a);"},
		{"a + b - c;", "((a + b) - c);"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog := parseProgram(t, tt.input)
			got := fmt.Sprintf("%s;", prog.Statements[0].(*ast.ExprStmt).Expression.String())
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCompoundAssignmentDesugars(t *testing.T) {
	prog := parseProgram(t, "x += 1;")
	expr := prog.Statements[0].(*ast.ExprStmt).Expression.(*ast.AssignmentExpr)
	require.Equal(t, "x", expr.Target.(*ast.Identifier).Value)
	bin := expr.Value.(*ast.BinaryExpr)
	require.Equal(t, "+", bin.Operator)
	require.Equal(t, "x", bin.Left.(*ast.Identifier).Value)
}

func TestIfElseStmt(t *testing.T) {
	prog := parseProgram(t, "if (x) { y; } else { z; }")
	stmt := prog.Statements[0].(*ast.IfStmt)
	require.NotNil(t, stmt.Then)
	require.NotNil(t, stmt.Else)
}

func TestWhileStmt(t *testing.T) {
	prog := parseProgram(t, "while (x < 10) { x = x + 1; }")
	stmt := prog.Statements[0].(*ast.WhileStmt)
	require.IsType(t, &ast.BinaryExpr{}, stmt.Condition)
}

func TestForStmtAllClauses(t *testing.T) {
	prog := parseProgram(t, "for (let i = 0; i < 10; i++) { sum = sum + i; }")
	stmt := prog.Statements[0].(*ast.ForStmt)
	require.IsType(t, &ast.VarDeclStmt{}, stmt.Init)
	require.NotNil(t, stmt.Condition)
	require.IsType(t, &ast.PostfixExpr{}, stmt.Step)
}

func TestForStmtEmptyClauses(t *testing.T) {
	prog := parseProgram(t, "for (;;) { break; }")
	stmt := prog.Statements[0].(*ast.ForStmt)
	require.Nil(t, stmt.Init)
	require.Nil(t, stmt.Condition)
	require.Nil(t, stmt.Step)
}

func TestFunctionDeclaration(t *testing.T) {
	prog := parseProgram(t, "function add(a, b) { return a + b; }")
	decl := prog.Statements[0].(*ast.FunctionDeclStmt)
	require.Equal(t, "add", decl.Function.Name)
	require.Len(t, decl.Function.Params, 2)
}

func TestReturnOutsideFunctionIsParseError(t *testing.T) {
	p := New(lexer.New("return 1;"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestPostfixIncrementDecrement(t *testing.T) {
	prog := parseProgram(t, "x++; y--;")
	require.Len(t, prog.Statements, 2)
	inc := prog.Statements[0].(*ast.ExprStmt).Expression.(*ast.PostfixExpr)
	require.Equal(t, "++", inc.Operator)
	dec := prog.Statements[1].(*ast.ExprStmt).Expression.(*ast.PostfixExpr)
	require.Equal(t, "--", dec.Operator)
}

func TestCallExpression(t *testing.T) {
	prog := parseProgram(t, "add(1, 2 * 3);")
	call := prog.Statements[0].(*ast.ExprStmt).Expression.(*ast.CallExpr)
	require.Equal(t, "add", call.Callee.(*ast.Identifier).Value)
	require.Len(t, call.Args, 2)
}

func TestMemberExpressions(t *testing.T) {
	prog := parseProgram(t, "a.b[c];")
	outer := prog.Statements[0].(*ast.ExprStmt).Expression.(*ast.MemberExpr)
	require.True(t, outer.Computed)
	inner := outer.Object.(*ast.MemberExpr)
	require.False(t, inner.Computed)
	require.Equal(t, "b", inner.Property.(*ast.Identifier).Value)
}

func TestArrayAndObjectLiterals(t *testing.T) {
	prog := parseProgram(t, `[1, 2, 3];`)
	arr := prog.Statements[0].(*ast.ExprStmt).Expression.(*ast.ArrayLiteral)
	require.Len(t, arr.Elements, 3)

	prog2 := parseProgram(t, `({a: 1, "b": 2});`)
	obj := prog2.Statements[0].(*ast.ExprStmt).Expression.(*ast.GroupingExpr).Inner.(*ast.ObjectLiteral)
	require.Len(t, obj.Properties, 2)
}

func TestArrowFunctionExpressionBody(t *testing.T) {
	prog := parseProgram(t, "let f = (a, b) => a + b;")
	decl := prog.Statements[0].(*ast.VarDeclStmt)
	arrow := decl.Init.(*ast.ArrowFunctionLiteral)
	require.Len(t, arrow.Params, 2)
	require.NotNil(t, arrow.ExprBody)
	require.Nil(t, arrow.Body)
}

func TestArrowFunctionSingleParamParenthesized(t *testing.T) {
	prog := parseProgram(t, "let f = (x) => { return x; };")
	decl := prog.Statements[0].(*ast.VarDeclStmt)
	arrow := decl.Init.(*ast.ArrowFunctionLiteral)
	require.Len(t, arrow.Params, 1)
	require.NotNil(t, arrow.Body)
}

func TestArrowFunctionSingleParamNoParens(t *testing.T) {
	prog := parseProgram(t, "let f = x => x * 2;")
	decl := prog.Statements[0].(*ast.VarDeclStmt)
	arrow := decl.Init.(*ast.ArrowFunctionLiteral)
	require.Len(t, arrow.Params, 1)
	require.Equal(t, "x", arrow.Params[0].Value)
	require.NotNil(t, arrow.ExprBody)
	require.Nil(t, arrow.Body)
}

func TestArrowFunctionSingleParamNoParensBlockBody(t *testing.T) {
	prog := parseProgram(t, "let f = x => { return x; };")
	decl := prog.Statements[0].(*ast.VarDeclStmt)
	arrow := decl.Init.(*ast.ArrowFunctionLiteral)
	require.Len(t, arrow.Params, 1)
	require.NotNil(t, arrow.Body)
}

func TestGroupedExpressionIsNotArrow(t *testing.T) {
	prog := parseProgram(t, "(1 + 2);")
	_, ok := prog.Statements[0].(*ast.ExprStmt).Expression.(*ast.GroupingExpr)
	require.True(t, ok)
}

func TestFunctionExpression(t *testing.T) {
	prog := parseProgram(t, "let f = function(x) { return x; };")
	decl := prog.Statements[0].(*ast.VarDeclStmt)
	fn := decl.Init.(*ast.FunctionLiteral)
	require.Equal(t, "", fn.Name)
	require.Len(t, fn.Params, 1)
}
