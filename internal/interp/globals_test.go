package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleLogWritesSpaceJoinedArgsToStdout(t *testing.T) {
	out, _ := run(t, `console.log(1, "two", true);`)
	require.Equal(t, "1 two true\n", out)
}

func TestConsoleErrorWritesToStderr(t *testing.T) {
	_, stderr := run(t, `console.error("oops");`)
	require.Equal(t, "oops\n", stderr)
}

func TestParseIntStopsAtFirstNonDigit(t *testing.T) {
	out, _ := run(t, `console.log(parseInt("42abc"));`)
	require.Equal(t, "42\n", out)
}

func TestParseIntNegativeAndUnparseable(t *testing.T) {
	out, _ := run(t, `
		console.log(parseInt("-7"));
		console.log(parseInt("xyz"));
	`)
	require.Equal(t, "-7\nNaN\n", out)
}

func TestParseFloatFindsLongestValidPrefix(t *testing.T) {
	out, _ := run(t, `console.log(parseFloat("3.14abc"));`)
	require.Equal(t, "3.14\n", out)
}

func TestCoercionConstructors(t *testing.T) {
	out, _ := run(t, `
		console.log(String(42));
		console.log(Number("7"));
		console.log(Boolean(0));
		console.log(Boolean(1));
	`)
	require.Equal(t, "42\n7\nfalse\ntrue\n", out)
}

func TestGlobalThisExposesBuiltinsAsProperties(t *testing.T) {
	out, _ := run(t, `
		console.log(globalThis.NaN !== globalThis.NaN);
		console.log(globalThis.Infinity > 0);
		console.log(typeof globalThis.console);
	`)
	require.Equal(t, "true\ntrue\nobject\n", out)
}

func TestIdentifierResolutionFallsThroughToGlobalThisProperty(t *testing.T) {
	out, _ := run(t, `
		globalThis.answer = 42;
		console.log(answer);
	`)
	require.Equal(t, "42\n", out)
}

func TestIsFiniteAndIsNaN(t *testing.T) {
	out, _ := run(t, `
		console.log(isFinite(1), isFinite(Infinity), isFinite(NaN));
		console.log(isNaN(NaN), isNaN(1));
	`)
	require.Equal(t, "true false false\ntrue false\n", out)
}
