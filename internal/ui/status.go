package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	pkgtypes "github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// PrintOutcome prints the result of a restore submission run
func PrintOutcome(outcome *pkgtypes.SubmissionOutcome) {
	fmt.Printf("  %s, %s\n",
		CompletedStyle.Render(fmt.Sprintf("%d submitted", outcome.SuccessCount)),
		failureText(outcome.FailureCount))
	fmt.Printf("  %s attempted\n", humanize.Bytes(uint64(outcome.TotalBytesAttempted)))

	failures := outcome.Failures()
	if len(failures) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(HeaderStyle.Render("  Failed objects:"))
	for _, f := range failures {
		fmt.Printf("    %s %s\n",
			FailedStyle.Render("✗"),
			KeyStyle.Render(f.Key))
		if f.ErrorDetail != "" {
			fmt.Printf("      %s\n", MutedStyle.Render(f.ErrorDetail))
		}
	}
}

func failureText(count int) string {
	if count == 0 {
		return PendingStyle.Render("0 failed")
	}
	return FailedStyle.Render(fmt.Sprintf("%d failed", count))
}

// PrintStatusSummary prints the three restore-state buckets
func PrintStatusSummary(summary *pkgtypes.StatusSummary) {
	if summary.Total() == 0 {
		fmt.Println(HintStyle.Render("  no archival objects in bucket"))
		return
	}

	headers := []string{"Key", "Size", "State", "Expires"}

	var keys []string
	all := make([]pkgtypes.ObjectStatus, 0, summary.Total())
	all = append(all, summary.InProgress...)
	all = append(all, summary.Completed...)
	all = append(all, summary.NotRequested...)
	for _, st := range all {
		keys = append(keys, st.Object.Key)
	}
	widths := []int{keyColumnWidth(keys, len(headers[0]), 70), 11, 16, 20}

	var rows [][]cell
	for _, st := range all {
		rows = append(rows, []cell{
			{text: st.Object.Key, style: KeyStyle},
			{text: humanize.Bytes(uint64(st.Object.Size)), style: SizeStyle, padNum: true},
			stateCell(st.State),
			{text: expiryText(st), style: MutedStyle},
		})
	}

	fmt.Print(renderBoxTable(headers, widths, rows))
	fmt.Printf("  %s, %s, %s (%s archival total)\n",
		InProgressStyle.Render(fmt.Sprintf("%d in progress (%s)",
			len(summary.InProgress), humanize.Bytes(uint64(summary.BytesInProgress)))),
		CompletedStyle.Render(fmt.Sprintf("%d completed (%s)",
			len(summary.Completed), humanize.Bytes(uint64(summary.BytesCompleted)))),
		PendingStyle.Render(fmt.Sprintf("%d not requested (%s)",
			len(summary.NotRequested), humanize.Bytes(uint64(summary.BytesNotRequested)))),
		humanize.Bytes(uint64(summary.TotalArchivalBytes)))
}

func stateCell(state pkgtypes.RestoreState) cell {
	switch state {
	case pkgtypes.RestoreStateInProgress:
		return cell{text: "◐ in progress", style: InProgressStyle}
	case pkgtypes.RestoreStateCompleted:
		return cell{text: "● completed", style: CompletedStyle}
	default:
		return cell{text: "○ not requested", style: PendingStyle}
	}
}

func expiryText(st pkgtypes.ObjectStatus) string {
	if st.State != pkgtypes.RestoreStateCompleted {
		return ""
	}
	if st.RestoreExpiry.IsZero() {
		return "unknown"
	}
	return st.RestoreExpiry.Format("2006-01-02 15:04:05")
}
