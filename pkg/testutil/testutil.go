// Package testutil provides test environment helpers: isolated temp
// roots, fixture units, and a fixed clock for deterministic backup roots.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/pkg/types"
)

// Environment holds isolated source/target/backup roots for one test
type Environment struct {
	T *testing.T

	SourceRoot string
	TargetRoot string
	BackupRoot string

	Clock types.FixedClock
}

// NewEnvironment creates the three roots under t.TempDir()
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	base := t.TempDir()
	env := &Environment{
		T:          t,
		SourceRoot: filepath.Join(base, "dotfiles"),
		TargetRoot: filepath.Join(base, "config"),
		BackupRoot: filepath.Join(base, "backups", "2024-01-02T15-04-05"),
		Clock:      types.FixedClock{Time: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)},
	}

	require.NoError(t, os.MkdirAll(env.SourceRoot, 0755))
	require.NoError(t, os.MkdirAll(env.TargetRoot, 0755))

	return env
}

// SetupUnit creates a unit directory under the source root with the
// given relative-path/content file map
func (e *Environment) SetupUnit(name string, files map[string]string) {
	e.T.Helper()
	writeTree(e.T, filepath.Join(e.SourceRoot, name), files)
}

// SetupTarget creates a pre-existing real directory at the target path
func (e *Environment) SetupTarget(name string, files map[string]string) {
	e.T.Helper()
	writeTree(e.T, filepath.Join(e.TargetRoot, name), files)
}

// TargetPath returns the target path for a unit name
func (e *Environment) TargetPath(name string) string {
	return filepath.Join(e.TargetRoot, name)
}

// SourcePath returns the source path for a unit name
func (e *Environment) SourcePath(name string) string {
	return filepath.Join(e.SourceRoot, name)
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// RequireSymlink asserts that path is a symlink resolving to want
func RequireSymlink(t *testing.T, path, want string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected a symlink at %s", path)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s is not a symlink", path)

	dest, err := os.Readlink(path)
	require.NoError(t, err)
	require.Equal(t, want, dest)
}
