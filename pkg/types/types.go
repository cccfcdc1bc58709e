// Package types holds the shared data model for dotstrap: configuration
// units, per-unit link outcomes, and the run report.
package types

import (
	"path/filepath"
	"time"
)

// Unit represents one named configuration item. Its name maps
// deterministically to a source path under the clone and a target path
// under the config root; it has no identity beyond the name.
type Unit struct {
	// Name is the unit name (e.g. "hypr", "kitty")
	Name string
}

// SourcePath returns the unit's directory inside the source root
func (u Unit) SourcePath(sourceRoot string) string {
	return filepath.Join(sourceRoot, u.Name)
}

// TargetPath returns the path where the unit's symlink should live
func (u Unit) TargetPath(targetRoot string) string {
	return filepath.Join(targetRoot, u.Name)
}

// UnitsFromNames builds an ordered unit list from configured names
func UnitsFromNames(names []string) []Unit {
	units := make([]Unit, 0, len(names))
	for _, name := range names {
		units = append(units, Unit{Name: name})
	}
	return units
}

// LinkStatus is the outcome category for one processed unit
type LinkStatus string

const (
	// StatusLinked means the symlink was created (after any needed backup)
	StatusLinked LinkStatus = "linked"

	// StatusSkipped means the unit was not processed; not an error
	StatusSkipped LinkStatus = "skipped"

	// StatusFailed means the unit could not be linked
	StatusFailed LinkStatus = "failed"
)

// FailureReason qualifies skipped and failed outcomes
type FailureReason string

const (
	// ReasonNone is set on linked outcomes
	ReasonNone FailureReason = ""

	// ReasonSourceMissing: the unit has no directory under the source root
	ReasonSourceMissing FailureReason = "source-missing"

	// ReasonBackupFailed: the existing target could not be moved aside;
	// the target was left untouched and no link was created
	ReasonBackupFailed FailureReason = "backup-failed"

	// ReasonLinkFailed: the symlink itself could not be created
	ReasonLinkFailed FailureReason = "link-failed"
)

// BackupEntry records one displaced filesystem entry
type BackupEntry struct {
	// OriginalPath is where the entry lived before the run
	OriginalPath string

	// BackupPath is where the entry was moved, under the backup root
	BackupPath string
}

// Result is the outcome of processing a single unit
type Result struct {
	Unit   Unit
	Status LinkStatus
	Reason FailureReason

	// Source and Target are the resolved paths for this unit
	Source string
	Target string

	// Backup is set when a pre-existing target was moved aside
	Backup *BackupEntry

	// Err holds the underlying error for failed outcomes
	Err error
}

// Report collects the outcomes of one linking run, in unit order
type Report struct {
	// BackupRoot is the run-scoped directory holding displaced entries
	BackupRoot string

	// DryRun is true when no filesystem changes were made
	DryRun bool

	Results []Result
}

// Backups returns the ordered (original, backup) pairs recorded this run
func (r *Report) Backups() []BackupEntry {
	var entries []BackupEntry
	for _, res := range r.Results {
		if res.Backup != nil {
			entries = append(entries, *res.Backup)
		}
	}
	return entries
}

// Count returns how many results carry the given status
func (r *Report) Count(status LinkStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// HasFailures reports whether any unit failed
func (r *Report) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// Clock provides the current time. Injected so backup-root naming is
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	Time time.Time
}

// Now implements Clock
func (c FixedClock) Now() time.Time {
	return c.Time
}
