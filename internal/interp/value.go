package interp

import "github.com/jsubset/jsubset/internal/strpool"

// Kind tags the variant a Value currently holds.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindObject
	// KindSymbol and KindBigInt complete spec.md §3's value-kind union.
	// Neither literal form is reachable from the grammar (§4.3's
	// punctuator/keyword list has no `Symbol(...)`, no `n`-suffixed
	// BigInt literal, and no production in §4.4 builds one), so no
	// constructor ever produces a Value of either kind; they exist so
	// typeof's "symbol"/"bigint" results (§4.5.3) are expressible in the
	// type system even though dead from any parseable program. ToNumber
	// has no error path for them: it returns NaN for either kind.
	KindSymbol
	KindBigInt
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindSymbol:
		return "symbol"
	case KindBigInt:
		return "bigint"
	default:
		return "unknown"
	}
}

// Value is a small, freely-copyable tagged union over the language's
// primitive types plus a handle into the object heap. It is deliberately
// a plain struct rather than an interface: unlike Object (three shapes
// behind one abstract interface, see object.go), spec.md requires Value
// itself to be cheap to copy and compare by field (spec.md §4.1).
type Value struct {
	kind Kind
	num  float64
	b    bool
	str  strpool.Symbol
	obj  ObjID
}

func (v Value) Kind() Kind { return v.kind }

func Undefined() Value { return Value{kind: KindUndefined} }
func Null() Value       { return Value{kind: KindNull} }

func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// String interns s in the default pool and returns a String value
// carrying its symbol (spec.md §4.1 "string values are interned").
func String(s string) Value {
	return Value{kind: KindString, str: strpool.Default.Intern(s)}
}

// StringFromSymbol wraps an already-interned symbol.
func StringFromSymbol(sym strpool.Symbol) Value {
	return Value{kind: KindString, str: sym}
}

func ObjectValue(id ObjID) Value { return Value{kind: KindObject, obj: id} }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) IsNullish() bool   { return v.kind == KindUndefined || v.kind == KindNull }

func (v Value) AsBool() bool { return v.b }
func (v Value) AsNumber() float64 { return v.num }
func (v Value) AsStringSymbol() strpool.Symbol { return v.str }
func (v Value) AsString() string               { return strpool.Default.Resolve(v.str) }
func (v Value) AsObjID() ObjID                  { return v.obj }

// TypeOf implements the `typeof` operator (spec.md §4.5.3). Functions
// report "function"; every other object reports "object".
func (v Value) TypeOf(h *Heap) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "object" // historical ECMAScript quirk, preserved deliberately
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		if _, ok := h.Object(v.obj).(*FunctionObject); ok {
			return "function"
		}
		return "object"
	case KindSymbol:
		return "symbol"
	case KindBigInt:
		return "bigint"
	default:
		return "undefined"
	}
}
