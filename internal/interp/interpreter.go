package interp

import (
	"bytes"
	"fmt"

	"github.com/jsubset/jsubset/internal/ast"
	"github.com/jsubset/jsubset/internal/lexer"
	"github.com/jsubset/jsubset/internal/parser"
)

// Interpreter holds one session's heap and global environment. Every
// Interpret call on the same Interpreter runs against that state, so
// declarations persist across calls, which the REPL relies on; nothing
// on the heap is freed before the Interpreter itself is dropped.
type Interpreter struct {
	Heap      *Heap
	globalEnv EnvID

	// globalThisObj backs the `globalThis` binding: every built-in is a
	// property on it as well as a name in the global Environment, so
	// identifier resolution can fall through to it the way spec.md §4.6
	// requires ("Identifier resolution falls through from an empty
	// environment chain to the properties of globalThis").
	globalThisObj ObjID

	Stdout bytes.Buffer
	Stderr bytes.Buffer

	callDepth int
}

// maxCallDepth guards against unbounded recursion overflowing the Go
// goroutine stack; it is generous enough not to bite well-behaved
// scripts (spec.md §5 "resource bounds are the host's concern", applied
// pragmatically at the one place an unbounded recursive script could
// otherwise crash the process).
const maxCallDepth = 2000

// New builds an Interpreter with a populated global environment
// (console, Infinity, NaN, undefined, isFinite, isNaN — spec.md §4.5.1
// "globalThis").
func New() *Interpreter {
	in := &Interpreter{Heap: NewHeap()}
	in.globalEnv = in.Heap.NewEnv(0, false)
	in.installGlobals()
	return in
}

// Interpret lexes, parses, and evaluates source against this
// Interpreter's persistent global environment, returning everything
// written to stdout/stderr during this call (spec.md §6 External
// Interfaces). A lexical error aborts before any evaluation: the parser's
// output is discarded and the error is returned. A parse error is
// collected too, but per spec.md §7 ("Collected; partial AST still
// executes") it does not prevent evaluation — ParseProgram keeps going
// after an error and returns every statement it could build, before and
// after the error, and those still run. An uncaught runtime error at top level is
// written to the error buffer and evaluation proceeds to the next
// top-level statement (spec.md §7 "proceeds to the next top-level
// statement (REPL-friendly)"); it is not returned as a Go error at all,
// since from the caller's point of view the call still succeeded in the
// sense spec.md means it to.
func (in *Interpreter) Interpret(source string) (stdout, stderr string, err error) {
	in.Stdout.Reset()
	in.Stderr.Reset()

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := l.Errors(); len(errs) > 0 {
		return "", "", fmt.Errorf("%s: %s", LexicalError, errs[0].Message)
	}
	for _, perr := range p.Errors() {
		fmt.Fprintf(&in.Stderr, "%s: %s\n", ParseErrorKind, perr)
	}

	in.evalProgram(program)
	return in.Stdout.String(), in.Stderr.String(), nil
}

// evalProgram hoists function declarations, then runs each top-level
// statement in turn. A Thrown completion that escapes a statement is
// written to the error buffer rather than aborting the remaining
// statements (spec.md §7 Propagation); any other uncaught completion
// (Break/Continue/Return with nothing to catch them) likewise just stops
// that one statement's effect and moves on, since the grammar gives them
// nowhere meaningful to go at top level.
func (in *Interpreter) evalProgram(program *ast.Program) {
	in.hoistFunctionDecls(program.Statements, in.globalEnv)
	for _, stmt := range program.Statements {
		comp := in.evalStatement(stmt, in.globalEnv)
		if comp != nil && comp.Kind == Thrown {
			fmt.Fprintf(&in.Stderr, "%s at line %d: %s\n",
				comp.Err.Kind, comp.Err.Pos.Line, comp.Err.Msg)
		}
	}
}

// hoistFunctionDecls binds every top-level FunctionDeclStmt in a
// statement list before the list's statements run in order, so a
// function can be called from code that lexically precedes its
// declaration within the same block (spec.md §4.5.2 "FunctionDecl").
func (in *Interpreter) hoistFunctionDecls(stmts []ast.Statement, env EnvID) {
	for _, stmt := range stmts {
		if decl, ok := stmt.(*ast.FunctionDeclStmt); ok {
			fn := in.makeFunction(decl.Function, env)
			in.Heap.Env(env).Define(decl.Function.Name, ObjectValue(fn), true)
		}
	}
}
