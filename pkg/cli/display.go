package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"github.com/mattn/go-runewidth"
)

// ConsoleDisplay prints progress line by line, one block per repository.
type ConsoleDisplay struct {
	w io.Writer
}

func NewConsoleDisplay(w io.Writer) interfaces.Display {
	return &ConsoleDisplay{w: w}
}

func (d *ConsoleDisplay) StartRepository(index, total int, id string) {
	color.New(color.Bold).Fprintf(d.w, "\n📦 [%d/%d] %s\n", index, total, id)
}

func (d *ConsoleDisplay) ShowOwned(repo model.Repository) {
	color.New(color.FgCyan).Fprintf(d.w, "  ⏭️  %s is your own repository, nothing to copy\n", repo.FullName())
}

func (d *ConsoleDisplay) ShowFork(fork model.Repository, created bool) {
	if created {
		color.New(color.FgGreen).Fprintf(d.w, "  🍴 Forked to %s\n", fork.FullName())
		return
	}
	fmt.Fprintf(d.w, "  🍴 Using existing fork %s\n", fork.FullName())
}

func (d *ConsoleDisplay) ShowIssuesFound(count int) {
	if count == 0 {
		fmt.Fprintf(d.w, "  📭 No open issues\n")
		return
	}
	fmt.Fprintf(d.w, "  📋 %d open issues\n", count)
}

func (d *ConsoleDisplay) ShowIssueCopied(src *model.Issue, number int) {
	color.New(color.FgGreen).Fprintf(d.w, "  ✅ #%d → #%d %s\n", src.Number, number, src.Title)
}

func (d *ConsoleDisplay) ShowIssueFailed(src *model.Issue, err error) {
	color.New(color.FgRed).Fprintf(d.w, "  ❌ #%d %s: %v\n", src.Number, src.Title, err)
}

func (d *ConsoleDisplay) ShowWarning(msg string, err error) {
	if err != nil {
		color.New(color.FgYellow).Fprintf(d.w, "  ⚠️  %s: %v\n", msg, err)
		return
	}
	color.New(color.FgYellow).Fprintf(d.w, "  ⚠️  %s\n", msg)
}

func (d *ConsoleDisplay) FinishRepository(result *model.RepositoryResult) {
	switch result.Status {
	case model.RepositoryStatusReplicated:
		fmt.Fprintf(d.w, "  Copied %d, failed %d\n", result.Copied, result.Failed)
	case model.RepositoryStatusFailed:
		color.New(color.FgRed).Fprintf(d.w, "  ❌ %s: %v\n", result.ID, result.Err)
	}
}

func (d *ConsoleDisplay) ShowSummary(summary *model.Summary) {
	header := []string{"REPOSITORY", "STATUS", "FORK", "COPIED", "FAILED"}
	rows := make([][]string, 0, len(summary.Results))
	for _, r := range summary.Results {
		fork := "-"
		if r.Fork.Owner != "" {
			fork = r.Fork.FullName()
		}
		rows = append(rows, []string{
			r.ID,
			statusLabel(r.Status),
			fork,
			strconv.Itoa(r.Copied),
			strconv.Itoa(r.Failed),
		})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	fmt.Fprintf(d.w, "\n📊 Summary\n")
	fmt.Fprintln(d.w, formatRow(header, widths))
	for _, row := range rows {
		fmt.Fprintln(d.w, formatRow(row, widths))
	}

	totals := fmt.Sprintf("\n%d succeeded, %d failed | issues: %d copied, %d failed | %s\n",
		summary.Succeeded, summary.Failed, summary.CopiedIssues, summary.FailedIssues, summary.Duration)
	if summary.Failed > 0 || summary.FailedIssues > 0 {
		color.New(color.FgYellow).Fprint(d.w, totals)
		return
	}
	color.New(color.FgGreen).Fprint(d.w, totals)
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func statusLabel(status model.RepositoryStatus) string {
	switch status {
	case model.RepositoryStatusReplicated:
		return "✅ replicated"
	case model.RepositoryStatusOwned:
		return "⏭️ owned"
	default:
		return "❌ failed"
	}
}
