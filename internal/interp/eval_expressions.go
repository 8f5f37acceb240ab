package interp

import (
	"strconv"

	"github.com/jsubset/jsubset/internal/ast"
	"github.com/jsubset/jsubset/internal/lexer"
)

func (in *Interpreter) evalExpression(expr ast.Expression, env EnvID) (Value, *Completion) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return Number(e.Value), nil
	case *ast.StringLiteral:
		return String(e.Value), nil
	case *ast.BooleanLiteral:
		return Boolean(e.Value), nil
	case *ast.NullLiteral:
		return Null(), nil
	case *ast.UndefinedLiteral:
		return Undefined(), nil
	case *ast.GroupingExpr:
		return in.evalExpression(e.Inner, env)
	case *ast.Identifier:
		return in.evalIdentifier(e, env)
	case *ast.ArrayLiteral:
		return in.evalArrayLiteral(e, env)
	case *ast.ObjectLiteral:
		return in.evalObjectLiteral(e, env)
	case *ast.UnaryExpr:
		return in.evalUnary(e, env)
	case *ast.PostfixExpr:
		return in.evalPostfix(e, env)
	case *ast.BinaryExpr:
		return in.evalBinary(e, env)
	case *ast.LogicalExpr:
		return in.evalLogical(e, env)
	case *ast.AssignmentExpr:
		return in.evalAssignment(e, env)
	case *ast.MemberExpr:
		return in.evalMember(e, env)
	case *ast.CallExpr:
		return in.evalCall(e, env)
	case *ast.FunctionLiteral:
		return ObjectValue(in.makeFunction(e, env)), nil
	case *ast.ArrowFunctionLiteral:
		return ObjectValue(in.makeArrowFunction(e, env)), nil
	default:
		return Undefined(), newError(TypeErrorKind, expr.Pos(), "unsupported expression type")
	}
}

// evalIdentifier resolves a name against the lexical scope chain, then
// falls through to the properties of globalThis (spec.md §4.6:
// "Identifier resolution falls through from an empty environment chain
// to the properties of globalThis") — in practice this only matters for
// a global bound after startup via `globalThis.foo = …;`, since every
// built-in is already bound directly in the global Environment too. Only
// when both miss is the result a ReferenceError (spec.md §7) rather than
// the dual-role sentinel string §9 flags as fragile — see SPEC_FULL.md's
// resolution of that design note.
func (in *Interpreter) evalIdentifier(id *ast.Identifier, env EnvID) (Value, *Completion) {
	if varID, ok := in.Heap.Env(env).Resolve(id.Value); ok {
		return in.Heap.VarValue(varID), nil
	}
	if v, ok := in.Heap.Object(in.globalThisObj).GetOwn(id.Value); ok {
		return v, nil
	}
	return Undefined(), newError(ReferenceError, id.Pos(), id.Value+" is not defined")
}

func (in *Interpreter) evalArrayLiteral(e *ast.ArrayLiteral, env EnvID) (Value, *Completion) {
	elems := make([]Value, len(e.Elements))
	for i, el := range e.Elements {
		v, comp := in.evalExpression(el, env)
		if comp != nil {
			return Undefined(), comp
		}
		elems[i] = v
	}
	return ObjectValue(in.Heap.NewObject(NewArrayObject(elems))), nil
}

func (in *Interpreter) evalObjectLiteral(e *ast.ObjectLiteral, env EnvID) (Value, *Completion) {
	obj := NewOrdinaryObject()
	for _, prop := range e.Properties {
		var key string
		switch k := prop.Key.(type) {
		case *ast.Identifier:
			key = k.Value
		case *ast.StringLiteral:
			key = k.Value
		}
		v, comp := in.evalExpression(prop.Value, env)
		if comp != nil {
			return Undefined(), comp
		}
		obj.SetOwn(key, v)
	}
	return ObjectValue(in.Heap.NewObject(obj)), nil
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr, env EnvID) (Value, *Completion) {
	if e.Operator == "typeof" {
		if id, ok := e.Operand.(*ast.Identifier); ok {
			_, resolved := in.Heap.Env(env).Resolve(id.Value)
			if !resolved {
				_, resolved = in.Heap.Object(in.globalThisObj).GetOwn(id.Value)
			}
			if !resolved {
				return String("undefined"), nil // typeof on an unbound name doesn't throw
			}
		}
		v, comp := in.evalExpression(e.Operand, env)
		if comp != nil {
			return Undefined(), comp
		}
		return String(v.TypeOf(in.Heap)), nil
	}

	v, comp := in.evalExpression(e.Operand, env)
	if comp != nil {
		return Undefined(), comp
	}
	switch e.Operator {
	case "!":
		return Boolean(!in.ToBoolean(v)), nil
	case "-":
		return Number(-in.ToNumber(v)), nil
	case "+":
		return Number(in.ToNumber(v)), nil
	case "void":
		return Undefined(), nil
	default:
		return Undefined(), newError(TypeErrorKind, e.Pos(), "unknown unary operator "+e.Operator)
	}
}

// evalPostfix evaluates `x++`/`x--`: reads the current value, writes
// back value±1 through the same assignment path AssignmentExpr uses,
// and yields the pre-increment value (SPEC_FULL.md's supplemented
// postfix feature).
func (in *Interpreter) evalPostfix(e *ast.PostfixExpr, env EnvID) (Value, *Completion) {
	old, comp := in.evalExpression(e.Operand, env)
	if comp != nil {
		return Undefined(), comp
	}
	n := in.ToNumber(old)
	var next float64
	if e.Operator == "++" {
		next = n + 1
	} else {
		next = n - 1
	}
	if comp := in.assignTo(e.Operand, Number(next), env, e.Pos()); comp != nil {
		return Undefined(), comp
	}
	return Number(n), nil
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr, env EnvID) (Value, *Completion) {
	l, comp := in.evalExpression(e.Left, env)
	if comp != nil {
		return Undefined(), comp
	}
	r, comp := in.evalExpression(e.Right, env)
	if comp != nil {
		return Undefined(), comp
	}

	switch e.Operator {
	case "+":
		return in.add(l, r), nil
	case "-", "*", "/", "%":
		return in.arithmetic(e.Operator, l, r), nil
	case "<", "<=", ">", ">=":
		return Boolean(in.compare(e.Operator, l, r)), nil
	case "==":
		return Boolean(in.looseEquals(l, r)), nil
	case "!=":
		return Boolean(!in.looseEquals(l, r)), nil
	case "===":
		return Boolean(in.strictEquals(l, r)), nil
	case "!==":
		return Boolean(!in.strictEquals(l, r)), nil
	default:
		return Undefined(), newError(TypeErrorKind, e.Pos(), "unknown binary operator "+e.Operator)
	}
}

// evalLogical short-circuits and returns whichever operand decided the
// result, not a boolean (spec.md §4.5.3).
func (in *Interpreter) evalLogical(e *ast.LogicalExpr, env EnvID) (Value, *Completion) {
	l, comp := in.evalExpression(e.Left, env)
	if comp != nil {
		return Undefined(), comp
	}
	truthy := in.ToBoolean(l)
	if (e.Operator == "&&" && !truthy) || (e.Operator == "||" && truthy) {
		return l, nil
	}
	return in.evalExpression(e.Right, env)
}

func (in *Interpreter) evalAssignment(e *ast.AssignmentExpr, env EnvID) (Value, *Completion) {
	v, comp := in.evalExpression(e.Value, env)
	if comp != nil {
		return Undefined(), comp
	}
	if comp := in.assignTo(e.Target, v, env, e.Pos()); comp != nil {
		return Undefined(), comp
	}
	return v, nil
}

// assignTo writes v through an lvalue expression: an Identifier resolves
// against the scope chain (a `const` target is a TypeError; an unbound
// name is a ReferenceError), a MemberExpr writes an own property or
// array element.
func (in *Interpreter) assignTo(target ast.Expression, v Value, env EnvID, pos lexer.Position) *Completion {
	switch t := target.(type) {
	case *ast.Identifier:
		varID, ok := in.Heap.Env(env).Resolve(t.Value)
		if !ok {
			return newError(ReferenceError, pos, t.Value+" is not defined")
		}
		if !in.Heap.VarMutable(varID) {
			return newError(TypeErrorKind, pos, "assignment to constant variable '"+t.Value+"'")
		}
		in.Heap.SetVar(varID, v)
		return nil
	case *ast.MemberExpr:
		objVal, comp := in.evalExpression(t.Object, env)
		if comp != nil {
			return comp
		}
		if objVal.Kind() != KindObject {
			return newError(TypeErrorKind, pos, "cannot set property of a non-object value")
		}
		key, comp := in.memberKey(t, env)
		if comp != nil {
			return comp
		}
		return in.setProperty(objVal.AsObjID(), key, v, pos)
	default:
		return newError(ReferenceError, pos, "invalid assignment target")
	}
}

func (in *Interpreter) memberKey(m *ast.MemberExpr, env EnvID) (string, *Completion) {
	if !m.Computed {
		return m.Property.(*ast.Identifier).Value, nil
	}
	keyVal, comp := in.evalExpression(m.Property, env)
	if comp != nil {
		return "", comp
	}
	return in.ToString(keyVal), nil
}

func (in *Interpreter) setProperty(id ObjID, key string, v Value, pos lexer.Position) *Completion {
	obj := in.Heap.Object(id)
	if arr, ok := obj.(*ArrayObject); ok {
		if key == "length" {
			n := int(in.ToNumber(v))
			if n < 0 {
				return newError(TypeErrorKind, pos, "invalid array length")
			}
			if n < len(arr.Elements) {
				arr.Elements = arr.Elements[:n]
			} else {
				for len(arr.Elements) < n {
					arr.Elements = append(arr.Elements, Undefined())
				}
			}
			return nil
		}
		if idx, ok := arrayIndex(key); ok {
			for len(arr.Elements) <= idx {
				arr.Elements = append(arr.Elements, Undefined())
			}
			arr.Elements[idx] = v
			return nil
		}
	}
	obj.SetOwn(key, v)
	return nil
}

func arrayIndex(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// evalMember reads obj.key / obj[expr]. Arrays special-case "length" and
// numeric indices; every other lookup walks the prototype chain, and a
// miss yields undefined rather than throwing (spec.md §4.5.3 "ObjectCall").
func (in *Interpreter) evalMember(m *ast.MemberExpr, env EnvID) (Value, *Completion) {
	objVal, comp := in.evalExpression(m.Object, env)
	if comp != nil {
		return Undefined(), comp
	}

	key, comp := in.memberKey(m, env)
	if comp != nil {
		return Undefined(), comp
	}

	switch objVal.Kind() {
	case KindString:
		if key == "length" {
			return Number(float64(len([]rune(objVal.AsString())))), nil
		}
		return Undefined(), nil
	case KindObject:
		return in.getProperty(objVal.AsObjID(), key), nil
	default:
		return Undefined(), newError(TypeErrorKind, m.Pos(),
			"cannot read property '"+key+"' of "+in.ToString(objVal))
	}
}

// evalArrayMutator handles the two array methods that mutate
// Elements in place (spec.md §3 push/pop). They are special-cased here
// rather than routed through getProperty/FunctionObject dispatch
// because they need direct access to the receiver's backing slice, not
// a bound callable value.
func (in *Interpreter) evalArrayMutator(arr *ArrayObject, key string, c *ast.CallExpr, env EnvID) (Value, *Completion) {
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, comp := in.evalExpression(a, env)
		if comp != nil {
			return Undefined(), comp
		}
		args[i] = v
	}
	switch key {
	case "push":
		return Number(float64(arr.Push(args...))), nil
	case "pop":
		v, _ := arr.Pop()
		return v, nil
	default:
		return Undefined(), newError(TypeErrorKind, c.Pos(), "unknown array method '"+key+"'")
	}
}

func (in *Interpreter) getProperty(id ObjID, key string) Value {
	obj := in.Heap.Object(id)

	if arr, ok := obj.(*ArrayObject); ok {
		if key == "length" {
			return Number(float64(len(arr.Elements)))
		}
		if idx, ok := arrayIndex(key); ok {
			if idx < len(arr.Elements) {
				return arr.Elements[idx]
			}
			return Undefined()
		}
	}

	if fn, ok := obj.(*FunctionObject); ok && key == "name" {
		return String(fn.Name)
	}
	if fn, ok := obj.(*FunctionObject); ok && key == "length" {
		return Number(float64(len(fn.Params)))
	}

	for {
		if v, ok := obj.GetOwn(key); ok {
			return v
		}
		protoID, has := obj.Prototype()
		if !has {
			return Undefined()
		}
		obj = in.Heap.Object(protoID)
	}
}

func (in *Interpreter) evalCall(c *ast.CallExpr, env EnvID) (Value, *Completion) {
	var this Value = Undefined()
	var calleeVal Value
	var comp *Completion

	if member, ok := c.Callee.(*ast.MemberExpr); ok {
		this, comp = in.evalExpression(member.Object, env)
		if comp != nil {
			return Undefined(), comp
		}
		key, comp := in.memberKey(member, env)
		if comp != nil {
			return Undefined(), comp
		}
		if this.Kind() != KindObject {
			return Undefined(), newError(TypeErrorKind, c.Pos(), "cannot call method '"+key+"' on a non-object value")
		}
		if arr, ok := in.Heap.Object(this.AsObjID()).(*ArrayObject); ok && (key == "push" || key == "pop") {
			return in.evalArrayMutator(arr, key, c, env)
		}
		calleeVal = in.getProperty(this.AsObjID(), key)
	} else {
		calleeVal, comp = in.evalExpression(c.Callee, env)
		if comp != nil {
			return Undefined(), comp
		}
	}

	if calleeVal.Kind() != KindObject {
		return Undefined(), newError(TypeErrorKind, c.Pos(), "value is not a function")
	}
	fn, ok := in.Heap.Object(calleeVal.AsObjID()).(*FunctionObject)
	if !ok {
		return Undefined(), newError(TypeErrorKind, c.Pos(), "value is not a function")
	}

	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, comp := in.evalExpression(a, env)
		if comp != nil {
			return Undefined(), comp
		}
		args[i] = v
	}

	return in.callFunction(fn, this, args)
}

// callFunction invokes fn, binding its parameters in a fresh
// environment whose parent is the function's captured closure (for
// user functions) or nothing (for natives, which receive Go arguments
// directly). A Return completion is absorbed here into its value; any
// other completion (Thrown) propagates to the caller (spec.md §4.5.5).
func (in *Interpreter) callFunction(fn *FunctionObject, this Value, args []Value) (Value, *Completion) {
	if fn.IsNative() {
		return fn.Native(in, this, args)
	}

	in.callDepth++
	defer func() { in.callDepth-- }()
	if in.callDepth > maxCallDepth {
		return Undefined(), newError(TypeErrorKind, lexer.Position{}, "maximum call stack size exceeded")
	}

	callEnv := in.Heap.NewEnv(fn.Closure, true)
	e := in.Heap.Env(callEnv)
	for i, name := range fn.Params {
		e.Define(name, arg(args, i), true)
	}

	switch body := fn.Body.(type) {
	case *ast.BlockStmt:
		comp := in.evalBlock(body, callEnv)
		if comp == nil {
			return Undefined(), nil
		}
		if comp.Kind == Return {
			return comp.Value, nil
		}
		return Undefined(), comp
	case ast.Expression:
		v, comp := in.evalExpression(body, callEnv)
		return v, comp
	default:
		return Undefined(), newError(TypeErrorKind, lexer.Position{}, "function has no body")
	}
}

func (in *Interpreter) makeFunction(lit *ast.FunctionLiteral, env EnvID) ObjID {
	params := make([]string, len(lit.Params))
	for i, p := range lit.Params {
		params[i] = p.Value
	}
	obj := &FunctionObject{
		props:   newProps(),
		Name:    lit.Name,
		Params:  params,
		Body:    lit.Body,
		Closure: env,
	}
	return in.Heap.NewObject(obj)
}

func (in *Interpreter) makeArrowFunction(lit *ast.ArrowFunctionLiteral, env EnvID) ObjID {
	params := make([]string, len(lit.Params))
	for i, p := range lit.Params {
		params[i] = p.Value
	}
	var body interface{}
	if lit.Body != nil {
		body = lit.Body
	} else {
		body = lit.ExprBody
	}
	obj := &FunctionObject{
		props:   newProps(),
		Name:    "",
		Params:  params,
		Body:    body,
		Closure: env,
	}
	return in.Heap.NewObject(obj)
}
