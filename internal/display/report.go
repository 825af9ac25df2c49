// Package display renders the run summary for humans.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/goodnatureofminers/blocktimes/internal/stats"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Render writes the gap report as a metric/value table. Durations are shown
// in minutes; the average gap is colored against the target interval.
func Render(w io.Writer, r stats.Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, bold("Block Time Summary"))

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Metric", "Value")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	tbl.AddRow("Blocks", formatTotal(r))
	tbl.AddRow("Span", fmt.Sprintf("%.2f days", r.SpanDays))
	tbl.AddRow("Average gap", formatAverage(r))
	tbl.AddRow("Minimum gap", formatMinutes(r.MinGap))
	tbl.AddRow("Maximum gap", formatMinutes(r.MaxGap))
	tbl.AddRow("Target interval", formatMinutes(r.TargetGap))
	tbl.AddRow(fmt.Sprintf("Gaps >= %s", formatMinutes(r.Cutoff)), fmt.Sprintf("%d", r.CutoffGaps))
	tbl.AddRow("Mean overage above cutoff", formatOverage(r))
	tbl.Print()

	fmt.Fprintln(w)
}

func formatTotal(r stats.Report) string {
	if r.DuplicateTimes > 0 {
		return fmt.Sprintf("%d (%d shared a timestamp)", r.TotalBlocks, r.DuplicateTimes)
	}
	return fmt.Sprintf("%d", r.TotalBlocks)
}

func formatAverage(r stats.Report) string {
	s := formatMinutes(r.AvgGap)
	if r.AvgGap <= r.TargetGap {
		return green(s)
	}
	return yellow(s)
}

func formatOverage(r stats.Report) string {
	if r.CutoffGaps == 0 {
		return "none"
	}
	return formatMinutes(r.CutoffOverage)
}

func formatMinutes(d time.Duration) string {
	return fmt.Sprintf("%.2f min", d.Minutes())
}
