package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/pkg/errors"
)

func TestNew_FormatsCode(t *testing.T) {
	err := errors.New(errors.ErrCloneFailed, "clone blew up")

	assert.Equal(t, "[CLONE_FAILED] clone blew up", err.Error())
	assert.Equal(t, errors.ErrCloneFailed, errors.CodeOf(err))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrapf(cause, errors.ErrBackupFailed, "failed to move %s", "/tmp/x")

	assert.Contains(t, err.Error(), "BACKUP_FAILED")
	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrLinkFailed, "nope"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrLinkFailed, "nope %d", 1))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrLinkFailed, "failed to link %s", "hypr")

	assert.ErrorIs(t, err, errors.New(errors.ErrLinkFailed, "anything"))
	assert.NotErrorIs(t, err, errors.New(errors.ErrBackupFailed, "anything"))
}

func TestIsCode_ThroughWrapping(t *testing.T) {
	inner := errors.New(errors.ErrCloneFailed, "git failed")
	outer := fmt.Errorf("bootstrap: %w", inner)

	assert.True(t, errors.IsCode(outer, errors.ErrCloneFailed))
	assert.False(t, errors.IsCode(outer, errors.ErrLinkFailed))
}

func TestCodeOf_ForeignError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.CodeOf(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrBackupFailed, "move failed").
		WithDetail("unit", "waybar").
		WithDetail("target", "/home/u/.config/waybar")

	require.Equal(t, "waybar", err.Details["unit"])
	require.Equal(t, "/home/u/.config/waybar", err.Details["target"])
}
