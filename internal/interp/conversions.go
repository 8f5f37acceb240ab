package interp

import (
	"math"
	"strconv"
	"strings"
)

// ToBoolean implements the abstract ToBoolean conversion (spec.md
// §4.5.6): undefined, null, false, 0, NaN, and "" are falsy; every
// other value (including empty objects and arrays) is truthy.
func (in *Interpreter) ToBoolean(v Value) bool {
	switch v.Kind() {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.AsBool()
	case KindNumber:
		n := v.AsNumber()
		return n != 0 && !math.IsNaN(n)
	case KindString:
		return v.AsString() != ""
	case KindObject:
		return true
	default:
		return false
	}
}

// Hint selects the method order ToPrimitive tries, mirroring
// ECMAScript's OrdinaryToPrimitive (spec.md §4.5.6): HintString tries
// "toString" before "valueOf"; HintNumber and HintDefault both try
// "valueOf" before "toString" (this subset has no Symbol.toPrimitive,
// so "default" and "number" collapse to the same order).
type Hint uint8

const (
	HintDefault Hint = iota
	HintNumber
	HintString
)

// ToPrimitive reduces an object to a primitive following hint's method
// order: the first of "valueOf"/"toString" (or the reverse, for
// HintString) that exists, is callable, and returns a non-object wins.
// If neither does, it falls back to a fixed rendering: an array joins
// its elements with commas, a function renders as
// "function name() { [native code] }", and any other object as
// "[object Object]" (spec.md §4.5.6). Non-objects are returned unchanged.
func (in *Interpreter) ToPrimitive(v Value, hint Hint) Value {
	if v.Kind() != KindObject {
		return v
	}
	obj := in.Heap.Object(v.AsObjID())

	methods := []string{"valueOf", "toString"}
	if hint == HintString {
		methods = []string{"toString", "valueOf"}
	}
	for _, name := range methods {
		if result, ok := in.tryConversionMethod(obj, v, name); ok {
			return result
		}
	}

	switch obj.(type) {
	case *ArrayObject:
		return String(in.arrayToString(v.AsObjID()))
	case *FunctionObject:
		fn := obj.(*FunctionObject)
		name := fn.Name
		if name == "" {
			name = "anonymous"
		}
		return String("function " + name + "() { [native code] }")
	default:
		return String("[object Object]")
	}
}

// tryConversionMethod calls obj's own method named name (if it is a
// callable own property) and reports success only when the call
// completed normally and returned a non-object value, per
// OrdinaryToPrimitive's "if result is not an Object, return result".
func (in *Interpreter) tryConversionMethod(obj Object, receiver Value, name string) (Value, bool) {
	prop, ok := obj.GetOwn(name)
	if !ok || prop.Kind() != KindObject {
		return Value{}, false
	}
	fn, ok := in.Heap.Object(prop.AsObjID()).(*FunctionObject)
	if !ok {
		return Value{}, false
	}
	result, comp := in.callFunction(fn, receiver, nil)
	if comp != nil || result.Kind() == KindObject {
		return Value{}, false
	}
	return result, true
}

func (in *Interpreter) arrayToString(id ObjID) string {
	arr := in.Heap.Object(id).(*ArrayObject)
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		if el.IsNullish() {
			parts[i] = ""
			continue
		}
		parts[i] = in.ToString(el)
	}
	return strings.Join(parts, ",")
}

// ToNumber implements the abstract ToNumber conversion (spec.md §4.5.6).
func (in *Interpreter) ToNumber(v Value) float64 {
	switch v.Kind() {
	case KindUndefined:
		return math.NaN()
	case KindNull:
		return 0
	case KindBoolean:
		if v.AsBool() {
			return 1
		}
		return 0
	case KindNumber:
		return v.AsNumber()
	case KindString:
		return stringToNumber(v.AsString())
	case KindObject:
		return in.ToNumber(in.ToPrimitive(v, HintNumber))
	default:
		return math.NaN()
	}
}

func stringToNumber(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// ToString implements the abstract ToString conversion (spec.md
// §4.5.6), used both for the `+` operator's string branch and for
// console.log argument formatting.
func (in *Interpreter) ToString(v Value) string {
	switch v.Kind() {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.AsNumber())
	case KindString:
		return v.AsString()
	case KindObject:
		return in.ToString(in.ToPrimitive(v, HintString))
	default:
		return ""
	}
}

// formatNumber renders a float64 the way the language's Number-to-string
// conversion must (spec.md §4.5.4): integral values print without a
// decimal point, NaN and the two infinities print as their keywords.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	if n == 0 {
		return "0" // -0 stringifies the same as 0 (spec.md §4.5.4)
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
