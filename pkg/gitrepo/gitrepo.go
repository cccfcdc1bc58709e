// Package gitrepo wraps the git binary for cloning the dotfiles
// repository. Only the success/failure outcome matters to callers;
// a failed required clone is the one fatal error in a bootstrap run.
package gitrepo

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dotstrap/dotstrap/pkg/errors"
	"github.com/dotstrap/dotstrap/pkg/logging"
)

var log = logging.GetLogger("gitrepo")

// IsRepository reports whether dest already contains a git work tree
func IsRepository(dest string) bool {
	info, err := os.Stat(filepath.Join(dest, ".git"))
	return err == nil && info.IsDir()
}

// Ensure makes sure a clone of url exists at dest. An existing
// repository is accepted as-is with no network access; an existing
// non-repository directory that is not empty is an error, never
// overwritten.
func Ensure(ctx context.Context, url, branch, dest string) error {
	if IsRepository(dest) {
		log.Debug().Str("dest", dest).Msg("Clone already present")
		return nil
	}

	if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
		return errors.Newf(errors.ErrCloneFailed,
			"%s exists and is not a git repository", dest)
	}

	if url == "" {
		return errors.New(errors.ErrCloneFailed, "no repository URL configured")
	}

	return Clone(ctx, url, branch, dest)
}

// Clone runs `git clone` into dest
func Clone(ctx context.Context, url, branch, dest string) error {
	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dest)

	log.Info().Str("url", url).Str("dest", dest).Msg("Cloning repository")

	stderr, err := runGit(ctx, args)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCloneFailed,
			"git clone %s failed: %s", url, stderr)
	}

	return nil
}

func runGit(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stderr bytes.Buffer
	cmd.Stdout = nil
	cmd.Stderr = &stderr

	log.Debug().Strs("args", args).Msg("Running git")

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}
