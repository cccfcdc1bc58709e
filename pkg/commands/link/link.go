package link

import (
	"github.com/dotstrap/dotstrap/pkg/errors"
	"github.com/dotstrap/dotstrap/pkg/linker"
	"github.com/dotstrap/dotstrap/pkg/logging"
	"github.com/dotstrap/dotstrap/pkg/paths"
	"github.com/dotstrap/dotstrap/pkg/types"
)

// Options defines the options for the Link command.
type Options struct {
	// SourceRoot is the dotfiles directory holding per-unit subdirectories.
	SourceRoot string
	// TargetRoot is where the unit symlinks are placed.
	TargetRoot string
	// Units are processed in order.
	Units []string
	// BackupRoot overrides the clock-derived backup directory; used in tests.
	BackupRoot string
	// Clock names the backup root; nil means the system clock.
	Clock types.Clock
	// DryRun reports what would happen without making changes.
	DryRun bool
}

// Run links every configured unit and returns the run report.
// Per-unit failures are recorded on the report, not returned as errors.
func Run(opts Options) (*types.Report, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "Link").Msg("Executing command")

	if opts.SourceRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "source root must not be empty")
	}
	if opts.TargetRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "target root must not be empty")
	}

	clock := opts.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}

	backupRoot := opts.BackupRoot
	if backupRoot == "" {
		backupRoot = paths.BackupRoot(clock)
	}

	report, err := linker.New(opts.DryRun).Link(
		types.UnitsFromNames(opts.Units), opts.SourceRoot, opts.TargetRoot, backupRoot)
	if err != nil {
		log.Error().Err(err).Msg("Link failed")
		return nil, err
	}

	log.Info().Str("command", "Link").Msg("Command finished")
	return report, nil
}
