package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"agekey/internal/domain"
	"agekey/internal/store"
)

const testIdentity = "AGE-SECRET-KEY-1QQRSU9GUYV4RZWPLGEX4GKMZD9C8WL593JFE4GDG47MTM3XT6FVSCDMZHA"

func TestIdentity_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "age-key.txt")
	var ids domain.IdentityStore = store.NewIdentityFileStore()

	require.NoError(t, ids.SaveIdentity(path, testIdentity))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, testIdentity+"\n", string(raw))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	got, err := ids.LoadIdentity(path)
	require.NoError(t, err)
	require.Equal(t, testIdentity, got)
}

func TestIdentity_Save_CreatesParents(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, ".claude-sync", "keys", "age-key.txt")

	require.NoError(t, store.NewIdentityFileStore().SaveIdentity(path, testIdentity))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
}

func TestIdentity_Save_OverwriteRestrictsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "age-key.txt")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer\n"), 0o644))

	require.NoError(t, store.NewIdentityFileStore().SaveIdentity(path, testIdentity))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, testIdentity+"\n", string(raw))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestIdentity_Save_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()

	// The target is an existing, non-empty directory: rename must fail.
	target := filepath.Join(dir, "age-key.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o700))

	err := store.NewIdentityFileStore().SaveIdentity(target, testIdentity)
	require.ErrorIs(t, err, domain.ErrFilesystem)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
	require.True(t, entries[0].IsDir())
}

func TestIdentity_Save_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := store.NewIdentityFileStore().SaveIdentity(filepath.Join(blocker, "age-key.txt"), testIdentity)
	require.ErrorIs(t, err, domain.ErrFilesystem)
}

func TestIdentity_Load_Missing(t *testing.T) {
	_, err := store.NewIdentityFileStore().LoadIdentity(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, domain.ErrFilesystem)
	require.ErrorIs(t, err, os.ErrNotExist)
}
