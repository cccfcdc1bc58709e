package up

import (
	"context"
	"os"

	"github.com/dotstrap/dotstrap/pkg/commands/link"
	"github.com/dotstrap/dotstrap/pkg/config"
	"github.com/dotstrap/dotstrap/pkg/errors"
	"github.com/dotstrap/dotstrap/pkg/gitrepo"
	"github.com/dotstrap/dotstrap/pkg/logging"
	"github.com/dotstrap/dotstrap/pkg/types"
)

// Options defines the options for the Up command.
type Options struct {
	// Config is the loaded dotstrap configuration.
	Config config.Config
	// Clock names the backup root; nil means the system clock.
	Clock types.Clock
	// DryRun skips the clone and reports link actions without making changes.
	DryRun bool
}

// Run bootstraps the machine: clone the dotfiles repository if needed,
// then link every configured unit. A failed required clone is fatal and
// returned as an error before any unit is touched; everything after that
// is reported per unit.
func Run(ctx context.Context, opts Options) (*types.Report, error) {
	log := logging.GetLogger("commands.up")
	log.Debug().Str("command", "Up").Msg("Executing command")

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := gitrepo.Ensure(ctx, cfg.Repo.URL, cfg.Repo.Branch, cfg.Repo.Path); err != nil {
			log.Error().Err(err).Msg("Clone failed, aborting")
			return nil, err
		}

		if err := os.MkdirAll(cfg.ConfigRoot, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create config root %s", cfg.ConfigRoot)
		}
	}

	report, err := link.Run(link.Options{
		SourceRoot: cfg.Repo.Path,
		TargetRoot: cfg.ConfigRoot,
		Units:      cfg.Units,
		Clock:      opts.Clock,
		DryRun:     opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Up").Msg("Command finished")
	return report, nil
}
