package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticEdgeCases(t *testing.T) {
	in := New()

	require.True(t, math.IsNaN(in.arithmetic("-", String("x"), Number(1)).AsNumber()))
	require.Equal(t, math.Inf(1), in.arithmetic("/", Number(1), Number(0)).AsNumber())
	require.Equal(t, math.Inf(-1), in.arithmetic("/", Number(-1), Number(0)).AsNumber())
	require.True(t, math.IsNaN(in.arithmetic("/", Number(0), Number(0)).AsNumber()))
	require.True(t, math.IsNaN(in.arithmetic("%", Number(1), Number(0)).AsNumber()))
	require.Equal(t, 6.0, in.arithmetic("*", Number(2), Number(3)).AsNumber())
}

func TestAddConcatenatesWhenEitherSideIsString(t *testing.T) {
	in := New()

	require.Equal(t, "3", in.ToString(in.add(Number(1), Number(2))))
	require.Equal(t, "1two", in.ToString(in.add(Number(1), String("two"))))
	require.Equal(t, "onetwo", in.ToString(in.add(String("one"), String("two"))))
}

func TestCompareStringsLexicographicallyNumbersNumerically(t *testing.T) {
	in := New()

	require.True(t, in.compare("<", String("a"), String("b")))
	require.False(t, in.compare(">", String("a"), String("b")))
	require.True(t, in.compare("<=", Number(1), Number(1)))
	require.False(t, in.compare("<", Number(math.NaN()), Number(1)))
	require.False(t, in.compare(">=", Number(math.NaN()), Number(1)))
}

func TestLooseEqualsCoercionTable(t *testing.T) {
	in := New()

	require.True(t, in.looseEquals(Null(), Undefined()))
	require.True(t, in.looseEquals(Number(1), String("1")))
	require.True(t, in.looseEquals(Boolean(true), Number(1)))
	require.False(t, in.looseEquals(Boolean(false), Null()))
	require.True(t, in.looseEquals(Number(0), Boolean(false)))
}

func TestStrictEqualsRequiresSameKindAndNaNIsNeverEqual(t *testing.T) {
	in := New()

	require.False(t, in.strictEquals(Number(1), String("1")))
	require.True(t, in.strictEquals(Number(1), Number(1)))
	require.False(t, in.strictEquals(Number(math.NaN()), Number(math.NaN())))
	require.True(t, in.strictEquals(Undefined(), Undefined()))
	require.True(t, in.strictEquals(Null(), Null()))
}
