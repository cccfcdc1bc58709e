// Package linker implements the backup-and-relink core: each configured
// unit's target path is replaced by a symlink into the source root, with
// any pre-existing entry moved into a run-scoped backup root first.
package linker

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dotstrap/dotstrap/pkg/errors"
	"github.com/dotstrap/dotstrap/pkg/logging"
	"github.com/dotstrap/dotstrap/pkg/types"
)

// Linker links configuration units sequentially. Units are independent:
// one unit's failure never stops the remaining units.
type Linker struct {
	logger zerolog.Logger
	dryRun bool
}

// New creates a Linker. With dryRun set, Link reports what would happen
// without touching the filesystem.
func New(dryRun bool) *Linker {
	return &Linker{
		logger: logging.GetLogger("linker"),
		dryRun: dryRun,
	}
}

// Link processes units in order against the given roots and returns the
// run report. The backup root is created up front; the returned error is
// non-nil only when that creation fails, before any unit is touched.
func (l *Linker) Link(units []types.Unit, sourceRoot, targetRoot, backupRoot string) (*types.Report, error) {
	done := logging.LogOperationStart(l.logger, "link")
	defer done()

	report := &types.Report{
		BackupRoot: backupRoot,
		DryRun:     l.dryRun,
	}

	if !l.dryRun {
		if err := os.MkdirAll(backupRoot, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create backup root %s", backupRoot)
		}
	}

	for _, unit := range units {
		res := l.linkUnit(unit, sourceRoot, targetRoot, backupRoot)
		report.Results = append(report.Results, res)
	}

	l.logger.Info().
		Int("linked", report.Count(types.StatusLinked)).
		Int("skipped", report.Count(types.StatusSkipped)).
		Int("failed", report.Count(types.StatusFailed)).
		Str("backupRoot", backupRoot).
		Msg("Link run finished")

	return report, nil
}

func (l *Linker) linkUnit(unit types.Unit, sourceRoot, targetRoot, backupRoot string) types.Result {
	res := types.Result{
		Unit:   unit,
		Source: unit.SourcePath(sourceRoot),
		Target: unit.TargetPath(targetRoot),
	}
	logger := l.logger.With().Str("unit", unit.Name).Logger()

	info, err := os.Stat(res.Source)
	if err != nil || !info.IsDir() {
		logger.Debug().Str("source", res.Source).Msg("Source directory missing, skipping")
		res.Status = types.StatusSkipped
		res.Reason = types.ReasonSourceMissing
		return res
	}

	// Lexical existence check: a dangling symlink at the target still
	// counts as an existing entry and is backed up like anything else.
	if _, err := os.Lstat(res.Target); err == nil {
		backupPath := filepath.Join(backupRoot, unit.Name)
		if l.dryRun {
			res.Backup = &types.BackupEntry{OriginalPath: res.Target, BackupPath: backupPath}
		} else if mvErr := os.Rename(res.Target, backupPath); mvErr != nil {
			// Never link over an entry that could not be backed up.
			logger.Error().Err(mvErr).Str("target", res.Target).Msg("Backup move failed")
			res.Status = types.StatusFailed
			res.Reason = types.ReasonBackupFailed
			res.Err = errors.Wrapf(mvErr, errors.ErrBackupFailed,
				"failed to move %s to %s", res.Target, backupPath)
			return res
		} else {
			logger.Debug().Str("from", res.Target).Str("to", backupPath).Msg("Existing entry backed up")
			res.Backup = &types.BackupEntry{OriginalPath: res.Target, BackupPath: backupPath}
		}
	} else if !os.IsNotExist(err) {
		logger.Error().Err(err).Str("target", res.Target).Msg("Cannot inspect target")
		res.Status = types.StatusFailed
		res.Reason = types.ReasonBackupFailed
		res.Err = errors.Wrapf(err, errors.ErrBackupFailed,
			"cannot inspect existing entry at %s", res.Target)
		return res
	}

	if l.dryRun {
		res.Status = types.StatusLinked
		return res
	}

	if err := os.Symlink(res.Source, res.Target); err != nil {
		logger.Error().Err(err).Str("target", res.Target).Msg("Symlink creation failed")
		res.Status = types.StatusFailed
		res.Reason = types.ReasonLinkFailed
		res.Err = errors.Wrapf(err, errors.ErrLinkFailed,
			"failed to link %s to %s", res.Target, res.Source)
		return res
	}

	logger.Info().Str("target", res.Target).Str("source", res.Source).Msg("Unit linked")
	res.Status = types.StatusLinked
	return res
}
