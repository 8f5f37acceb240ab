package interp

import "math"

// arithmetic applies a non-`+` binary numeric operator. Both operands
// go straight through ToNumber; unlike `+`, these operators never
// consult ToPrimitive's string branch (spec.md §4.5.4, and
// SPEC_FULL.md's resolution of the corresponding Open Question).
func (in *Interpreter) arithmetic(op string, l, r Value) Value {
	a, b := in.ToNumber(l), in.ToNumber(r)
	switch op {
	case "-":
		return Number(a - b)
	case "*":
		return Number(a * b)
	case "/":
		return Number(a / b) // IEEE 754 division: a/0 is +/-Inf, 0/0 is NaN
	case "%":
		return Number(math.Mod(a, b))
	default:
		return Number(math.NaN())
	}
}

// add implements `+`, which first tries ToPrimitive on both operands
// and concatenates when either side ends up a string; otherwise it
// falls through to numeric addition (spec.md §4.5.4).
func (in *Interpreter) add(l, r Value) Value {
	lp, rp := in.ToPrimitive(l, HintDefault), in.ToPrimitive(r, HintDefault)
	if lp.Kind() == KindString || rp.Kind() == KindString {
		return String(in.ToString(lp) + in.ToString(rp))
	}
	return Number(in.ToNumber(lp) + in.ToNumber(rp))
}

// compare implements `< <= > >=`. If ToPrimitive yields two strings,
// comparison is lexicographic; otherwise both sides go through
// ToNumber, and any NaN operand makes every relational comparison
// false (spec.md §4.5.4).
func (in *Interpreter) compare(op string, l, r Value) bool {
	lp, rp := in.ToPrimitive(l, HintNumber), in.ToPrimitive(r, HintNumber)

	if lp.Kind() == KindString && rp.Kind() == KindString {
		ls, rs := lp.AsString(), rp.AsString()
		switch op {
		case "<":
			return ls < rs
		case "<=":
			return ls <= rs
		case ">":
			return ls > rs
		case ">=":
			return ls >= rs
		}
		return false
	}

	a, b := in.ToNumber(lp), in.ToNumber(rp)
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}

// looseEquals implements `==`/`!=` per the ECMAScript Abstract Equality
// Comparison table (spec.md §4.5.4), restricted to the value kinds this
// subset has.
func (in *Interpreter) looseEquals(l, r Value) bool {
	if l.Kind() == r.Kind() {
		return in.strictEquals(l, r)
	}
	if l.IsNullish() && r.IsNullish() {
		return true
	}
	if l.IsNullish() || r.IsNullish() {
		return false
	}
	// number/string
	if l.Kind() == KindNumber && r.Kind() == KindString {
		return l.AsNumber() == stringToNumber(r.AsString())
	}
	if l.Kind() == KindString && r.Kind() == KindNumber {
		return stringToNumber(l.AsString()) == r.AsNumber()
	}
	// boolean coerces to number against anything else
	if l.Kind() == KindBoolean {
		return in.looseEquals(Number(in.ToNumber(l)), r)
	}
	if r.Kind() == KindBoolean {
		return in.looseEquals(l, Number(in.ToNumber(r)))
	}
	// object vs primitive: reduce the object side via ToPrimitive
	if l.Kind() == KindObject && (r.Kind() == KindNumber || r.Kind() == KindString) {
		return in.looseEquals(in.ToPrimitive(l, HintDefault), r)
	}
	if r.Kind() == KindObject && (l.Kind() == KindNumber || l.Kind() == KindString) {
		return in.looseEquals(l, in.ToPrimitive(r, HintDefault))
	}
	return false
}

// strictEquals implements `===`/`!==`: no coercion, and NaN never
// equals itself (spec.md §4.5.4).
func (in *Interpreter) strictEquals(l, r Value) bool {
	if l.Kind() != r.Kind() {
		return false
	}
	switch l.Kind() {
	case KindUndefined, KindNull:
		return true
	case KindBoolean:
		return l.AsBool() == r.AsBool()
	case KindNumber:
		return l.AsNumber() == r.AsNumber() // NaN == NaN is false, by IEEE 754
	case KindString:
		return l.AsStringSymbol() == r.AsStringSymbol()
	case KindObject:
		return l.AsObjID() == r.AsObjID()
	default:
		return false
	}
}
