package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSourceRequiresJsSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("console.log(1);"), 0o644))

	_, _, err := resolveSource([]string{path})
	require.Error(t, err)
	require.Contains(t, err.Error(), ".js suffix")
}

func TestResolveSourceReadsJsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	require.NoError(t, os.WriteFile(path, []byte("console.log(1);"), 0o644))

	src, filename, err := resolveSource([]string{path})
	require.NoError(t, err)
	require.Equal(t, "console.log(1);", src)
	require.Equal(t, path, filename)
}

func TestResolveSourcePrefersEval(t *testing.T) {
	evalExpr = "console.log(2);"
	defer func() { evalExpr = "" }()

	src, filename, err := resolveSource(nil)
	require.NoError(t, err)
	require.Equal(t, "console.log(2);", src)
	require.Equal(t, "<eval>", filename)
}

func TestResolveSourceRequiresArgOrEval(t *testing.T) {
	_, _, err := resolveSource(nil)
	require.Error(t, err)
}
