package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndHas(t *testing.T) {
	h := NewHeap()
	envID := h.NewEnv(0, false)
	env := h.Env(envID)

	require.False(t, env.Has("x"))
	env.Define("x", Number(1), true)
	require.True(t, env.Has("x"))
}

func TestEnvironmentResolveWalksParentChain(t *testing.T) {
	h := NewHeap()
	outerID := h.NewEnv(0, false)
	outer := h.Env(outerID)
	outer.Define("x", Number(1), true)

	innerID := h.NewEnv(outerID, true)
	inner := h.Env(innerID)

	id, ok := inner.Resolve("x")
	require.True(t, ok)
	require.Equal(t, 1.0, h.VarValue(id).AsNumber())
}

func TestEnvironmentResolveMissingReturnsFalse(t *testing.T) {
	h := NewHeap()
	envID := h.NewEnv(0, false)
	env := h.Env(envID)

	_, ok := env.Resolve("nope")
	require.False(t, ok)
}

func TestEnvironmentInnerShadowsOuter(t *testing.T) {
	h := NewHeap()
	outerID := h.NewEnv(0, false)
	h.Env(outerID).Define("x", Number(1), true)

	innerID := h.NewEnv(outerID, true)
	inner := h.Env(innerID)
	inner.Define("x", Number(2), true)

	id, ok := inner.Resolve("x")
	require.True(t, ok)
	require.Equal(t, 2.0, h.VarValue(id).AsNumber())

	outerID2, ok := h.Env(outerID).Resolve("x")
	require.True(t, ok)
	require.Equal(t, 1.0, h.VarValue(outerID2).AsNumber())
}
