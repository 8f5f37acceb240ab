package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (stdout, stderr string) {
	t.Helper()
	in := New()
	stdout, stderr, err := in.Interpret(src)
	require.NoError(t, err)
	return stdout, stderr
}

func TestHelloWorld(t *testing.T) {
	out, _ := run(t, `console.log("hello, " + "world");`)
	require.Equal(t, "hello, world\n", out)
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, _ := run(t, `console.log(2 + 3 * 4);`)
	require.Equal(t, "14\n", out)
}

func TestVarAndConstScoping(t *testing.T) {
	out, _ := run(t, `
		let x = 1;
		{
			let x = 2;
			console.log(x);
		}
		console.log(x);
	`)
	require.Equal(t, "2\n1\n", out)
}

func TestConstWithoutInitializerIsRuntimeSyntaxError(t *testing.T) {
	in := New()
	_, stderr, err := in.Interpret(`const x; console.log("after");`)
	require.NoError(t, err)
	require.Contains(t, stderr, string(SyntaxError))
}

func TestConstReassignmentIsTypeError(t *testing.T) {
	in := New()
	_, stderr, err := in.Interpret(`const x = 1; x = 2; console.log("after");`)
	require.NoError(t, err)
	require.Contains(t, stderr, string(TypeErrorKind))
}

func TestUndeclaredIdentifierIsReferenceError(t *testing.T) {
	in := New()
	_, stderr, err := in.Interpret(`console.log(doesNotExist); console.log("after");`)
	require.NoError(t, err)
	require.Contains(t, stderr, string(ReferenceError))
}

func TestUncaughtErrorDoesNotAbortRemainingTopLevelStatements(t *testing.T) {
	out, stderr := run(t, `
		console.log(doesNotExist);
		console.log("still runs");
	`)
	require.Equal(t, "still runs\n", out)
	require.Contains(t, stderr, string(ReferenceError))
}

func TestWhileLoopWithBreakAndContinue(t *testing.T) {
	out, _ := run(t, `
		let i = 0;
		let sum = 0;
		while (i < 10) {
			i = i + 1;
			if (i % 2 === 0) {
				continue;
			}
			if (i > 7) {
				break;
			}
			sum = sum + i;
		}
		console.log(sum);
	`)
	require.Equal(t, "16\n", out) // 1+3+5+7
}

func TestForLoopAndPostfixIncrement(t *testing.T) {
	out, _ := run(t, `
		let total = 0;
		for (let i = 0; i < 5; i++) {
			total = total + i;
		}
		console.log(total);
	`)
	require.Equal(t, "10\n", out)
}

func TestClosureCapturesEnvironmentById(t *testing.T) {
	out, _ := run(t, `
		function makeCounter() {
			let count = 0;
			return function() {
				count = count + 1;
				return count;
			};
		}
		let counter = makeCounter();
		console.log(counter());
		console.log(counter());
		console.log(counter());
	`)
	require.Equal(t, "1\n2\n3\n", out)
}

func TestArrowFunctionExpressionBody(t *testing.T) {
	out, _ := run(t, `
		let double = x => x * 2;
		console.log(double(21));
	`)
	require.Equal(t, "42\n", out)
}

func TestFunctionHoisting(t *testing.T) {
	out, _ := run(t, `
		console.log(greet());
		function greet() { return "hi"; }
	`)
	require.Equal(t, "hi\n", out)
}

func TestObjectAndMemberAccess(t *testing.T) {
	out, _ := run(t, `
		let point = { x: 1, y: 2 };
		point.x = point.x + 10;
		console.log(point.x, point["y"]);
	`)
	require.Equal(t, "11 2\n", out)
}

func TestArrayIndexingAndLength(t *testing.T) {
	out, _ := run(t, `
		let arr = [1, 2, 3];
		arr[3] = 4;
		console.log(arr.length, arr[3]);
	`)
	require.Equal(t, "4 4\n", out)
}

func TestArrayPushAndPop(t *testing.T) {
	out, _ := run(t, `
		let arr = [1, 2];
		console.log(arr.push(3, 4));
		console.log(arr.length, arr[2], arr[3]);
		console.log(arr.pop());
		console.log(arr.length);
	`)
	require.Equal(t, "4\n4 3 4\n4\n3\n", out)
}

func TestArrayPopOnEmptyArrayYieldsUndefined(t *testing.T) {
	out, _ := run(t, `
		let arr = [];
		console.log(arr.pop());
		console.log(typeof arr.pop());
	`)
	require.Equal(t, "undefined\nundefined\n", out)
}

func TestLogicalShortCircuitReturnsOperand(t *testing.T) {
	out, _ := run(t, `
		console.log(0 || "fallback");
		console.log("present" && "used");
	`)
	require.Equal(t, "fallback\nused\n", out)
}

func TestEqualityOperators(t *testing.T) {
	out, _ := run(t, `
		console.log(1 == "1");
		console.log(1 === "1");
		console.log(null == undefined);
		console.log(null === undefined);
	`)
	require.Equal(t, "true\nfalse\ntrue\nfalse\n", out)
}

func TestTypeofOperator(t *testing.T) {
	out, _ := run(t, `
		console.log(typeof 1, typeof "s", typeof true, typeof undefined, typeof null, typeof {}, typeof function(){});
	`)
	require.Equal(t, "number string boolean undefined object object function\n", out)
}

func TestNaNAndInfinityArithmetic(t *testing.T) {
	out, _ := run(t, `
		console.log(1 / 0);
		console.log(-1 / 0);
		console.log(0 / 0);
		console.log(NaN === NaN);
	`)
	require.Equal(t, "Infinity\n-Infinity\nNaN\nfalse\n", out)
}

func TestReturnOutsideFunctionIsParseErrorButStillExecutes(t *testing.T) {
	in := New()
	stdout, stderr, err := in.Interpret(`console.log("before"); return 1; console.log("after");`)
	require.NoError(t, err)
	require.Contains(t, stderr, string(ParseErrorKind))
	require.Equal(t, "before\nafter\n", stdout)
}
