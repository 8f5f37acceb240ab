package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// installGlobals populates the interpreter's global environment with
// the fixed set of bindings spec.md §4.5.1 calls "globalThis": the
// numeric sentinels, `undefined` as a regular (if unassignable in
// practice) identifier, and the `console`/`isFinite`/`isNaN` builtins
// scripts rely on for output and numeric introspection. Every one of
// these is bound twice — once as a name in the global Environment (so
// ordinary identifier lookups find it directly, the fast path) and once
// as an own property of the `globalThis` object itself (spec.md §4.6:
// "globalThis → an ordinary object with these properties"), so that
// code which reaches `globalThis.NaN` or similar explicitly, or an
// identifier lookup that otherwise misses the environment chain, both
// resolve the same way.
func (in *Interpreter) installGlobals() {
	env := in.Heap.Env(in.globalEnv)
	globalThisObj := NewOrdinaryObject()
	globalThisID := in.Heap.NewObject(globalThisObj)
	in.globalThisObj = globalThisID

	define := func(name string, v Value) {
		env.Define(name, v, false)
		globalThisObj.SetOwn(name, v)
	}

	define("undefined", Undefined())
	define("NaN", Number(math.NaN()))
	define("Infinity", Number(math.Inf(1)))

	define("isFinite", ObjectValue(in.nativeFunction("isFinite", 1, builtinIsFinite)))
	define("isNaN", ObjectValue(in.nativeFunction("isNaN", 1, builtinIsNaN)))
	define("parseInt", ObjectValue(in.nativeFunction("parseInt", 2, builtinParseInt)))
	define("parseFloat", ObjectValue(in.nativeFunction("parseFloat", 1, builtinParseFloat)))
	define("String", ObjectValue(in.nativeFunction("String", 1, builtinStringCtor)))
	define("Number", ObjectValue(in.nativeFunction("Number", 1, builtinNumberCtor)))
	define("Boolean", ObjectValue(in.nativeFunction("Boolean", 1, builtinBooleanCtor)))

	console := NewOrdinaryObject()
	console.SetOwn("log", ObjectValue(in.nativeFunction("log", 0, builtinConsoleLog(false))))
	console.SetOwn("error", ObjectValue(in.nativeFunction("error", 0, builtinConsoleLog(true))))
	consoleID := in.Heap.NewObject(console)
	define("console", ObjectValue(consoleID))

	// globalThis is reachable under its own name too, same as in a real
	// engine (`globalThis.globalThis === globalThis`).
	define("globalThis", ObjectValue(globalThisID))
}

// nativeFunction wraps a Go function as a callable FunctionObject and
// allocates it on the heap, mirroring the way user function literals
// become FunctionObjects in eval_expressions.go.
func (in *Interpreter) nativeFunction(name string, arity int, fn func(in *Interpreter, this Value, args []Value) (Value, *Completion)) ObjID {
	params := make([]string, arity)
	for i := range params {
		params[i] = fmt.Sprintf("arg%d", i)
	}
	obj := &FunctionObject{props: newProps(), Name: name, Params: params, Native: fn}
	return in.Heap.NewObject(obj)
}

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Undefined()
}

func builtinConsoleLog(toStderr bool) func(*Interpreter, Value, []Value) (Value, *Completion) {
	return func(in *Interpreter, this Value, args []Value) (Value, *Completion) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = in.displayString(a)
		}
		out := &in.Stdout
		if toStderr {
			out = &in.Stderr
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return Undefined(), nil
	}
}

// displayString renders a value the way console.log does. It returns
// exactly what ToString returns for every value; it is a separate
// function so console formatting can change without touching the `+`
// operator's semantics.
func (in *Interpreter) displayString(v Value) string {
	return in.ToString(v)
}

func builtinIsFinite(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	n := in.ToNumber(arg(args, 0))
	return Boolean(!math.IsNaN(n) && !math.IsInf(n, 0)), nil
}

func builtinIsNaN(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	return Boolean(math.IsNaN(in.ToNumber(arg(args, 0)))), nil
}

func builtinParseInt(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	s := strings.TrimSpace(in.ToString(arg(args, 0)))
	neg := false
	if strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return Number(math.NaN()), nil
	}
	n := stringToNumber(s[:end])
	if neg {
		n = -n
	}
	return Number(n), nil
}

func builtinParseFloat(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	s := strings.TrimSpace(in.ToString(arg(args, 0)))
	for end := len(s); end > 0; end-- {
		if n, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return Number(n), nil
		}
	}
	return Number(math.NaN()), nil
}

func builtinStringCtor(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	if len(args) == 0 {
		return String(""), nil
	}
	return String(in.ToString(args[0])), nil
}

func builtinNumberCtor(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	if len(args) == 0 {
		return Number(0), nil
	}
	return Number(in.ToNumber(args[0])), nil
}

func builtinBooleanCtor(in *Interpreter, this Value, args []Value) (Value, *Completion) {
	if len(args) == 0 {
		return Boolean(false), nil
	}
	return Boolean(in.ToBoolean(args[0])), nil
}
