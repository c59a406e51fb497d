package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesMissingDirectories(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "state", "snapshots", "accounts.json")

	got, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "accounts.json")

	first, err := EnsureParentDir(target)
	require.NoError(t, err)

	second, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_ReturnsAbsolutePath(t *testing.T) {
	got, err := EnsureParentDir("accounts.json")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))
}
