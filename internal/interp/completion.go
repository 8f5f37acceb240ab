package interp

import "github.com/jsubset/jsubset/internal/lexer"

// CompletionKind tags the kind of non-local control flow a statement or
// expression evaluation produced. Expression evaluation returns a
// *Completion alongside its Value and statement evaluation returns the
// *Completion alone, so control flow is reported the same way whether it
// is normal or not (spec.md §4.5.5 "Completion").
type CompletionKind uint8

const (
	Normal CompletionKind = iota
	Break
	Continue
	Return
	Thrown
)

// Completion is the uniform non-local-control-flow carrier. A nil
// *Completion means "keep going"; normal() returns nil, and blocks, loops
// and the top level treat every non-nil *Completion as abrupt. A non-nil
// one propagates upward until a statement that handles it (a
// loop for Break/Continue, a function call for Return, the top level
// for Thrown) intercepts it.
type Completion struct {
	Kind  CompletionKind
	Value Value   // the operand of `return expr;`, when Kind == Return
	Err   *ScriptError // the raised error, when Kind == Thrown
}

func (c *Completion) Error() string {
	if c == nil || c.Err == nil {
		return ""
	}
	return c.Err.Error()
}

func normal() *Completion { return nil }

func returning(v Value) *Completion { return &Completion{Kind: Return, Value: v} }

func breaking() *Completion    { return &Completion{Kind: Break} }
func continuing() *Completion  { return &Completion{Kind: Continue} }

func thrown(err *ScriptError) *Completion { return &Completion{Kind: Thrown, Err: err} }

// ErrorKind enumerates the taxonomy spec.md §7 defines for user-facing
// script failures.
type ErrorKind string

const (
	LexicalError   ErrorKind = "LexicalError"
	ParseErrorKind ErrorKind = "ParseError"
	ReferenceError ErrorKind = "ReferenceError"
	TypeErrorKind  ErrorKind = "TypeError"
	SyntaxError    ErrorKind = "SyntaxError"
)

// ScriptError is a runtime failure raised by the evaluator itself, as
// opposed to a value thrown by user `throw` statements (out of scope,
// see spec.md Non-goals on exception handling).
type ScriptError struct {
	Kind ErrorKind
	Msg  string
	Pos  lexer.Position
}

func (e *ScriptError) Error() string { return string(e.Kind) + ": " + e.Msg }

func newError(kind ErrorKind, pos lexer.Position, msg string) *Completion {
	return thrown(&ScriptError{Kind: kind, Msg: msg, Pos: pos})
}
