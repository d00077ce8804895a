package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "aeronib.com/pkg/navhdr/internal/model"
)

// SimpleUI implements UI by printing plain lines to the command output.
// Reports may arrive from several workers at once.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait is a no-op: SimpleUI never blocks.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayMessage prints a single informational line.
func (s *SimpleUI) DisplayMessage(ctx context.Context, message string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayPages prints the page table.
func (s *SimpleUI) DisplayPages(ctx context.Context, pages []m.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPagesTable(pages))

	return nil
}

// DisplayUpcoming announces how many items will be processed.
func (s *SimpleUI) DisplayUpcoming(ctx context.Context, kind string, total int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Found %d %s to process\n", total, kind)
}

// DisplayPageReport prints the outcome for one page, and its diff on dry runs.
func (s *SimpleUI) DisplayPageReport(ctx context.Context, report m.PageReport) {
	if ctx.Err() != nil {
		return
	}

	switch report.Status {
	case m.Failed:
		s.printf("✗ %s: %s\n", report.Path, report.Err)
	case m.Injected:
		s.printf("✓ %s: %d header(s), base %q\n", report.Path, report.Headers, report.Base)
	default:
		s.printf("○ %s: %s\n", report.Path, report.Status)
	}

	if report.Diff != "" {
		s.printf("%s", report.Diff)
	}
}

// DisplayImageReport prints the outcome for one image.
func (s *SimpleUI) DisplayImageReport(ctx context.Context, report m.ImageReport) {
	if ctx.Err() != nil {
		return
	}

	switch report.Status {
	case m.Failed:
		s.printf("✗ Error processing %s: %s\n", report.Path, report.Err)
	case m.Skipped:
		s.printf("○ Skipped: %s (thumbnail exists)\n", report.Path)
	case m.Resized:
		s.printf("✓ Resized: %s\n  %dx%d → %dx%d\n", report.Path,
			report.FromWidth, report.FromHeight, report.ToWidth, report.ToHeight)
	case m.Optimized:
		s.printf("✓ Optimized quality: %s\n  Size: %dx%d (no resize needed)\n", report.Path,
			report.FromWidth, report.FromHeight)
	default:
		s.printf("✓ Generated: %s\n", report.Path)
	}
}

// DisplaySummary prints the counts per status.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\nDone! Processed %d %s (%s)\n", summary.Total, summary.Kind, formatCounts(summary))
}

func renderPagesTable(pages []m.Page) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Script", "Base", "Scripts", "Header"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	scripts := 0

	for _, page := range pages {
		path := ""
		if page.File != nil {
			path = string(page.File.ShortPath)
		}

		src, base := "-", "-"
		if len(page.Scripts) > 0 {
			last := page.Scripts[len(page.Scripts)-1]
			src = last.Src
			base = strconv.Quote(string(last.Base))
		}

		table.Append([]string{path, src, base, strconv.Itoa(len(page.Scripts)), yesNo(page.HasHeader)})

		scripts += len(page.Scripts)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Pages %d", len(pages)), "", "", strconv.Itoa(scripts), "",
	})

	table.Render()

	return tableBuffer.String()
}

func formatCounts(summary m.Summary) string {
	statuses := make([]m.Status, 0, len(summary.Counts))
	for status := range summary.Counts {
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })

	var buf bytes.Buffer

	for i, status := range statuses {
		if i > 0 {
			buf.WriteString(", ")
		}

		fmt.Fprintf(&buf, "%d %s", summary.Counts[status], status)
	}

	if buf.Len() == 0 {
		return "nothing to do"
	}

	return buf.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
