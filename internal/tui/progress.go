package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tickInterval = 150 * time.Millisecond
	barWidth     = 24

	toolColWidth    = 12
	statusColWidth  = 12
	versionColWidth = 18
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tickMsg drives the footer spinner.
type tickMsg time.Time

type phase int

const (
	phaseIdle phase = iota
	phaseDownloading
	phaseExtracting
)

type row struct {
	tool      string
	status    string
	installed string
	latest    string

	phase        phase
	frac         float64
	received     int64
	total        int64
	entriesDone  int
	entriesTotal int
}

// Model is a bubbletea model that renders one row per managed tool with
// the current pipeline step, versions, and a byte or entry progress bar.
type Model struct {
	rows     []row
	rowIndex map[string]int
	bar      progress.Model
	done     bool
	err      error
	tick     int
}

// NewModel creates a progress model with one pending row per tool name.
func NewModel(tools []string) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = barWidth

	m := Model{
		rowIndex: make(map[string]int, len(tools)),
		bar:      bar,
	}
	for _, name := range tools {
		m.rowIndex[name] = len(m.rows)
		m.rows = append(m.rows, row{tool: name, status: "pending", installed: "-", latest: "-"})
	}
	return m
}

func scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init satisfies the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return scheduleTick()
}

// Update satisfies the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.tick++
		if m.done {
			return m, nil
		}
		return m, scheduleTick()

	case StepMsg:
		if r := m.row(msg.Tool); r != nil {
			r.status = msg.Step
			if msg.Step != "downloading" && msg.Step != "extracting" {
				r.phase = phaseIdle
			}
		}
		return m, nil

	case VersionMsg:
		if r := m.row(msg.Tool); r != nil {
			if msg.Installed != "" {
				r.installed = msg.Installed
			}
			if msg.Latest != "" {
				r.latest = msg.Latest
			}
		}
		return m, nil

	case DownloadMsg:
		if r := m.row(msg.Tool); r != nil {
			r.phase = phaseDownloading
			r.received = msg.Received
			r.total = msg.Total
			if msg.Total > 0 {
				r.frac = float64(msg.Received) / float64(msg.Total)
			}
		}
		return m, nil

	case ExtractMsg:
		if r := m.row(msg.Tool); r != nil {
			r.phase = phaseExtracting
			r.entriesDone = msg.Done
			r.entriesTotal = msg.Total
			if msg.Total > 0 {
				r.frac = float64(msg.Done) / float64(msg.Total)
			}
		}
		return m, nil

	case WorkDoneMsg:
		m.done = true
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) row(tool string) *row {
	idx, ok := m.rowIndex[tool]
	if !ok {
		return nil
	}
	return &m.rows[idx]
}

// View satisfies the tea.Model interface.
func (m Model) View() string {
	if m.done && m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	var b strings.Builder

	headers := []string{
		pad("TOOL", toolColWidth),
		pad("STATUS", statusColWidth),
		pad("VERSION", versionColWidth),
		"PROGRESS",
	}
	b.WriteString(HeaderStyle.Render(strings.Join(headers, "  ")))
	b.WriteByte('\n')

	for _, r := range m.rows {
		cells := []string{
			pad(r.tool, toolColWidth),
			StatusStyle(r.status).Render(pad(r.status, statusColWidth)),
			pad(r.versionCell(), versionColWidth),
			m.progressCell(r),
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}

	if !m.done {
		finished, total := m.progressCounts()
		spinner := spinnerFrames[m.tick%len(spinnerFrames)]
		fmt.Fprintf(&b, "\n%s Processing %d/%d...\n", spinner, finished, total)
	}

	return b.String()
}

func (r row) versionCell() string {
	if r.installed == "-" && r.latest == "-" {
		return "-"
	}
	if r.installed == r.latest {
		return r.installed
	}
	return r.installed + " -> " + r.latest
}

func (m Model) progressCell(r row) string {
	switch r.phase {
	case phaseDownloading:
		if r.total <= 0 {
			return FormatBytes(r.received)
		}
		return fmt.Sprintf("%s %s/%s", m.bar.ViewAs(r.frac), FormatBytes(r.received), FormatBytes(r.total))
	case phaseExtracting:
		if r.entriesTotal <= 0 {
			return ""
		}
		return fmt.Sprintf("%s %d/%d entries", m.bar.ViewAs(r.frac), r.entriesDone, r.entriesTotal)
	default:
		return ""
	}
}

// progressCounts returns (finished, total) based on rows that have reached a
// terminal status.
func (m Model) progressCounts() (int, int) {
	finished := 0
	for _, r := range m.rows {
		switch r.status {
		case "up-to-date", "updated", "installed", "skipped", "error":
			finished++
		}
	}
	return finished, len(m.rows)
}

// Done returns whether the model has finished (work done or error).
func (m Model) Done() bool {
	return m.done
}

// Err returns any fatal error that occurred.
func (m Model) Err() error {
	return m.err
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// FormatBytes renders a byte count in a compact human unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
