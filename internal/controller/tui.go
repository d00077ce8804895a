package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "aeronib.com/pkg/navhdr/internal/model"
)

const recentLines = 6

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

type upcomingMsg struct {
	kind  string
	total int
}

type itemMsg struct {
	status m.Status
	line   string
}

type summaryMsg struct {
	summary m.Summary
}

type messageMsg string

// Start launches the progress program for inject and images modes. List mode
// renders statically and needs no program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode == ModeList {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	model := newProgressModel(cfg.mode)
	if width := t.terminalWidth(); width > 0 {
		model.setWidth(width)
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(t.program, t.done)

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close(_ context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the program has rendered its final frame.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.current()
	if done == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-done:
	}
}

// DisplayMessage shows an informational line.
func (t *TUI) DisplayMessage(_ context.Context, message string) {
	if !t.send(messageMsg(message)) {
		_, _ = fmt.Fprintln(t.output, mutedStyle.Render(message))
	}
}

// DisplayPages renders the page list as a styled table.
func (t *TUI) DisplayPages(ctx context.Context, pages []m.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(t.output, renderPagesView(pages))

	return err
}

// DisplayUpcoming sets the progress total.
func (t *TUI) DisplayUpcoming(_ context.Context, kind string, total int) {
	t.send(upcomingMsg{kind: kind, total: total})
}

// DisplayPageReport advances the progress bar for a page.
func (t *TUI) DisplayPageReport(_ context.Context, report m.PageReport) {
	line := fmt.Sprintf("%s %s", report.Path, report.Status)

	switch report.Status {
	case m.Injected:
		line = fmt.Sprintf("%s: %d header(s), base %q", report.Path, report.Headers, report.Base)
	case m.Failed:
		line = fmt.Sprintf("%s: %s", report.Path, report.Err)
	}

	t.send(itemMsg{status: report.Status, line: line})
}

// DisplayImageReport advances the progress bar for an image.
func (t *TUI) DisplayImageReport(_ context.Context, report m.ImageReport) {
	line := fmt.Sprintf("%s %s", report.Path, report.Status)

	switch report.Status {
	case m.Resized:
		line = fmt.Sprintf("%s %dx%d → %dx%d", report.Path, report.FromWidth, report.FromHeight, report.ToWidth, report.ToHeight)
	case m.Failed:
		line = fmt.Sprintf("%s: %s", report.Path, report.Err)
	}

	t.send(itemMsg{status: report.Status, line: line})
}

// DisplaySummary shows the final counts and ends the program.
func (t *TUI) DisplaySummary(_ context.Context, summary m.Summary) {
	if !t.send(summaryMsg{summary: summary}) {
		_, _ = fmt.Fprintln(t.output, formatCounts(summary))
	}
}

func (t *TUI) send(msg tea.Msg) bool {
	program, _ := t.current()
	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) terminalWidth() int {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}

// progressModel is the Bubble Tea model tracking batch progress.
type progressModel struct {
	mode     StartMode
	kind     string
	total    int
	done     int
	counts   map[m.Status]int
	recent   []string
	messages []string
	bar      progress.Model
	spinner  spinner.Model
	summary  *m.Summary
}

func newProgressModel(mode StartMode) progressModel {
	kind := "pages"
	if mode == ModeImages {
		kind = "images"
	}

	return progressModel{
		mode:    mode,
		kind:    kind,
		counts:  make(map[m.Status]int),
		bar:     progress.New(progress.WithDefaultGradient()),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (pm *progressModel) setWidth(width int) {
	pm.bar.Width = max(10, width-4)
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.setWidth(msg.Width)
		return pm, nil

	case upcomingMsg:
		pm.kind = msg.kind
		pm.total = msg.total

		return pm, nil

	case itemMsg:
		pm.done++
		pm.counts[msg.status]++
		pm.recent = append(pm.recent, styleFor(msg.status).Render(msg.line))

		if len(pm.recent) > recentLines {
			pm.recent = pm.recent[len(pm.recent)-recentLines:]
		}

		return pm, nil

	case messageMsg:
		pm.messages = append(pm.messages, string(msg))
		return pm, nil

	case summaryMsg:
		summary := msg.summary
		pm.summary = &summary

		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	title := "navhdr - injecting headers"
	if pm.mode == ModeImages {
		title = "navhdr - processing gallery images"
	}

	b.WriteString(titleStyle.Render(title) + "\n\n")

	for _, message := range pm.messages {
		b.WriteString(mutedStyle.Render(message) + "\n")
	}

	if pm.summary == nil {
		fmt.Fprintf(&b, "%s %d/%d %s\n", pm.spinner.View(), pm.done, pm.total, pm.kind)
	}

	b.WriteString(pm.bar.ViewAs(pm.percent()) + "\n\n")

	for _, line := range pm.recent {
		b.WriteString("  " + line + "\n")
	}

	if pm.summary != nil {
		b.WriteString("\n" + boxStyle.Render(fmt.Sprintf("Done! Processed %d %s (%s)",
			pm.summary.Total, pm.summary.Kind, formatCounts(*pm.summary))) + "\n")
	}

	return b.String()
}

func (pm progressModel) percent() float64 {
	if pm.total == 0 {
		if pm.summary != nil {
			return 1
		}

		return 0
	}

	return min(1, float64(pm.done)/float64(pm.total))
}

func styleFor(status m.Status) lipgloss.Style {
	switch status {
	case m.Failed:
		return failedStyle
	case m.Skipped:
		return skippedStyle
	default:
		return okStyle
	}
}

func renderPagesView(pages []m.Page) string {
	sorted := make([]m.Page, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pagePath(sorted[i]) < pagePath(sorted[j])
	})

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%d page(s)", len(sorted))) + "\n")
	b.WriteString(renderPagesTable(sorted))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func pagePath(page m.Page) string {
	if page.File == nil {
		return ""
	}

	return string(page.File.ShortPath)
}
