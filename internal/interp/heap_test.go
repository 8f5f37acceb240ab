package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapReservesSentinelZeroHandles(t *testing.T) {
	h := NewHeap()

	require.Equal(t, Value{}, h.VarValue(0))
	require.Nil(t, h.Object(0))
	require.Nil(t, h.Env(0))
}

func TestHeapHandleKindsAreIndependentCounters(t *testing.T) {
	h := NewHeap()

	env1 := h.NewEnv(0, false)
	v1 := h.NewVar(Number(1), true, true)
	o1 := h.NewObject(NewOrdinaryObject())
	env2 := h.NewEnv(env1, true)
	v2 := h.NewVar(Number(2), false, true)

	require.EqualValues(t, 1, env1)
	require.EqualValues(t, 1, v1)
	require.EqualValues(t, 1, o1)
	require.EqualValues(t, 2, env2)
	require.EqualValues(t, 2, v2)
}

func TestHeapSetVarMarksAssignedAndUpdatesValue(t *testing.T) {
	h := NewHeap()
	id := h.NewVar(Undefined(), true, false)

	require.False(t, h.VarAssigned(id))
	h.SetVar(id, Number(42))
	require.True(t, h.VarAssigned(id))
	require.Equal(t, 42.0, h.VarValue(id).AsNumber())
}

func TestHeapVarMutableReflectsConstVsLet(t *testing.T) {
	h := NewHeap()
	mutable := h.NewVar(Number(1), true, true)
	immutable := h.NewVar(Number(2), false, true)

	require.True(t, h.VarMutable(mutable))
	require.False(t, h.VarMutable(immutable))
}
