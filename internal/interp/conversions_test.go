package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBoolean(t *testing.T) {
	in := New()
	falsy := []Value{Undefined(), Null(), Boolean(false), Number(0), Number(math.NaN()), String("")}
	for _, v := range falsy {
		require.False(t, in.ToBoolean(v), "expected %v to be falsy", v)
	}
	truthy := []Value{Boolean(true), Number(1), Number(-1), String("0"), String("false")}
	for _, v := range truthy {
		require.True(t, in.ToBoolean(v), "expected %v to be truthy", v)
	}
}

func TestToNumber(t *testing.T) {
	in := New()
	require.Equal(t, float64(0), in.ToNumber(Null()))
	require.True(t, math.IsNaN(in.ToNumber(Undefined())))
	require.Equal(t, float64(1), in.ToNumber(Boolean(true)))
	require.Equal(t, float64(42), in.ToNumber(String("42")))
	require.True(t, math.IsNaN(in.ToNumber(String("not a number"))))
	require.Equal(t, float64(0), in.ToNumber(String("   ")))
}

func TestToStringFormatsNumbers(t *testing.T) {
	in := New()
	require.Equal(t, "0", in.ToString(Number(0)))
	require.Equal(t, "0", in.ToString(Number(math.Copysign(0, -1))))
	require.Equal(t, "3", in.ToString(Number(3)))
	require.Equal(t, "NaN", in.ToString(Number(math.NaN())))
	require.Equal(t, "Infinity", in.ToString(Number(math.Inf(1))))
	require.Equal(t, "-Infinity", in.ToString(Number(math.Inf(-1))))
}

func TestArrayToPrimitiveJoinsWithComma(t *testing.T) {
	in := New()
	arr := NewArrayObject([]Value{Number(1), Number(2), Number(3)})
	id := in.Heap.NewObject(arr)
	require.Equal(t, "1,2,3", in.ToPrimitive(ObjectValue(id), HintDefault).AsString())
}

func TestToPrimitivePrefersValueOfForNumberHint(t *testing.T) {
	in := New()
	obj := NewOrdinaryObject()
	obj.SetOwn("valueOf", ObjectValue(in.nativeFunction("valueOf", 0, func(in *Interpreter, this Value, args []Value) (Value, *Completion) {
		return Number(7), nil
	})))
	obj.SetOwn("toString", ObjectValue(in.nativeFunction("toString", 0, func(in *Interpreter, this Value, args []Value) (Value, *Completion) {
		return String("not this one"), nil
	})))
	id := in.Heap.NewObject(obj)
	require.Equal(t, float64(7), in.ToPrimitive(ObjectValue(id), HintNumber).AsNumber())
}

func TestToPrimitivePrefersToStringForStringHint(t *testing.T) {
	in := New()
	obj := NewOrdinaryObject()
	obj.SetOwn("valueOf", ObjectValue(in.nativeFunction("valueOf", 0, func(in *Interpreter, this Value, args []Value) (Value, *Completion) {
		return Number(7), nil
	})))
	obj.SetOwn("toString", ObjectValue(in.nativeFunction("toString", 0, func(in *Interpreter, this Value, args []Value) (Value, *Completion) {
		return String("custom"), nil
	})))
	id := in.Heap.NewObject(obj)
	require.Equal(t, "custom", in.ToPrimitive(ObjectValue(id), HintString).AsString())
}

func TestLooseVsStrictEquality(t *testing.T) {
	in := New()
	require.True(t, in.looseEquals(Number(1), String("1")))
	require.False(t, in.strictEquals(Number(1), String("1")))
	require.True(t, in.looseEquals(Null(), Undefined()))
	require.False(t, in.strictEquals(Null(), Undefined()))
	require.False(t, in.strictEquals(Number(math.NaN()), Number(math.NaN())))
}
