package style_test

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/dotstrap/dotstrap/pkg/style"
	"github.com/dotstrap/dotstrap/pkg/types"
)

func init() {
	// Assert on plain text, not ANSI sequences.
	pterm.DisableColor()
}

func TestRenderResult_Linked(t *testing.T) {
	out := style.RenderResult(types.Result{
		Unit:   types.Unit{Name: "hypr"},
		Status: types.StatusLinked,
		Source: "/dots/hypr",
		Target: "/cfg/hypr",
	})

	assert.Contains(t, out, "linked")
	assert.Contains(t, out, "hypr")
	assert.Contains(t, out, "/dots/hypr")
}

func TestRenderResult_LinkedWithBackup(t *testing.T) {
	out := style.RenderResult(types.Result{
		Unit:   types.Unit{Name: "hypr"},
		Status: types.StatusLinked,
		Source: "/dots/hypr",
		Target: "/cfg/hypr",
		Backup: &types.BackupEntry{OriginalPath: "/cfg/hypr", BackupPath: "/backups/run/hypr"},
	})

	assert.Contains(t, out, "/backups/run/hypr")
}

func TestRenderResult_Skipped(t *testing.T) {
	out := style.RenderResult(types.Result{
		Unit:   types.Unit{Name: "kitty"},
		Status: types.StatusSkipped,
		Reason: types.ReasonSourceMissing,
	})

	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "no such directory")
}

func TestRenderReport_SummaryAndBackupLocation(t *testing.T) {
	report := &types.Report{
		BackupRoot: "/backups/2024-01-02T15-04-05",
		Results: []types.Result{
			{
				Unit:   types.Unit{Name: "hypr"},
				Status: types.StatusLinked,
				Backup: &types.BackupEntry{OriginalPath: "/cfg/hypr", BackupPath: "/backups/2024-01-02T15-04-05/hypr"},
			},
			{Unit: types.Unit{Name: "kitty"}, Status: types.StatusSkipped, Reason: types.ReasonSourceMissing},
			{Unit: types.Unit{Name: "waybar"}, Status: types.StatusFailed, Reason: types.ReasonBackupFailed},
		},
	}

	out := style.RenderReport(report)

	assert.Contains(t, out, "1 linked, 1 skipped, 1 failed")
	assert.Contains(t, out, "/backups/2024-01-02T15-04-05")
}

func TestRenderReport_NoBackups_OmitsLocation(t *testing.T) {
	report := &types.Report{
		BackupRoot: "/backups/run",
		Results: []types.Result{
			{Unit: types.Unit{Name: "hypr"}, Status: types.StatusLinked},
		},
	}

	out := style.RenderReport(report)

	assert.NotContains(t, out, "backed up under")
}

func TestRenderReport_DryRunBanner(t *testing.T) {
	report := &types.Report{DryRun: true}

	out := style.RenderReport(report)

	assert.Contains(t, out, "dry run")
}
