package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/pkg/paths"
	"github.com/dotstrap/dotstrap/pkg/types"
)

func TestConfigFilePath_EnvOverride(t *testing.T) {
	t.Setenv(paths.EnvConfigFile, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", paths.ConfigFilePath())
}

func TestConfigFilePath_Default(t *testing.T) {
	t.Setenv(paths.EnvConfigFile, "")
	got := paths.ConfigFilePath()
	assert.True(t, strings.HasSuffix(got, filepath.Join(paths.AppDirName, paths.ConfigFileName)),
		"unexpected config path %s", got)
}

func TestBackupRoot_DerivedFromClock(t *testing.T) {
	t.Setenv(paths.EnvDataDir, "/tmp/dotstrap-data")

	clock := types.FixedClock{Time: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)}
	got := paths.BackupRoot(clock)

	assert.Equal(t, filepath.Join("/tmp/dotstrap-data", paths.BackupsDirName, "2024-06-01T10-30-00"), got)
}

func TestBackupRoot_UniquePerInstant(t *testing.T) {
	t.Setenv(paths.EnvDataDir, "/tmp/dotstrap-data")

	a := paths.BackupRoot(types.FixedClock{Time: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)})
	b := paths.BackupRoot(types.FixedClock{Time: time.Date(2024, 6, 1, 10, 30, 1, 0, time.UTC)})

	assert.NotEqual(t, a, b)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := paths.ExpandHome("~/dotfiles")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "dotfiles"), got)

	got, err = paths.ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = paths.ExpandHome("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)

	// A tilde that is not a home prefix stays as-is.
	got, err = paths.ExpandHome("./~file")
	require.NoError(t, err)
	assert.Equal(t, "./~file", got)
}
