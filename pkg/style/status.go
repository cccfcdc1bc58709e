package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/dotstrap/dotstrap/pkg/types"
)

// StatusStyle returns the pterm style for a link outcome
func StatusStyle(status types.LinkStatus) *pterm.Style {
	switch status {
	case types.StatusLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case types.StatusSkipped:
		return pterm.NewStyle(pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// reasonText maps failure reasons to operator-facing wording
var reasonText = map[types.FailureReason]string{
	types.ReasonSourceMissing: "no such directory in the dotfiles repo",
	types.ReasonBackupFailed:  "could not back up the existing entry",
	types.ReasonLinkFailed:    "could not create the symlink",
}

// RenderResult renders a single unit outcome line
func RenderResult(res types.Result) string {
	label := fmt.Sprintf("%-8s", string(res.Status))
	styled := StatusStyle(res.Status).Sprint(label)
	name := fmt.Sprintf("%-12s", res.Unit.Name)

	var msg string
	switch res.Status {
	case types.StatusLinked:
		msg = fmt.Sprintf("-> %s", res.Source)
		if res.Backup != nil {
			msg += fmt.Sprintf(" (previous entry moved to %s)", res.Backup.BackupPath)
		}
	case types.StatusSkipped:
		msg = reasonText[res.Reason]
	case types.StatusFailed:
		msg = reasonText[res.Reason]
		if res.Err != nil {
			msg += fmt.Sprintf(": %v", res.Err)
		}
	}

	return fmt.Sprintf("  %s %s %s", styled, name, msg)
}

// RenderReport renders every unit outcome plus the run summary
func RenderReport(report *types.Report) string {
	var out strings.Builder

	if report.DryRun {
		out.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("dry run - no changes were made") + "\n")
	}

	for _, res := range report.Results {
		out.WriteString(RenderResult(res) + "\n")
	}

	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("%d linked, %d skipped, %d failed\n",
		report.Count(types.StatusLinked),
		report.Count(types.StatusSkipped),
		report.Count(types.StatusFailed)))

	if len(report.Backups()) > 0 {
		out.WriteString(fmt.Sprintf("displaced entries were backed up under %s\n", report.BackupRoot))
	}

	return out.String()
}
