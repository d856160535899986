package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateReporter forwards pipeline progress into a running bubbletea program
// as row messages.
type UpdateReporter struct {
	send func(tea.Msg)
}

// NewUpdateReporter constructs a reporter around a program's send function.
func NewUpdateReporter(send func(tea.Msg)) *UpdateReporter {
	return &UpdateReporter{send: send}
}

func (r *UpdateReporter) Step(tool, step string) {
	r.send(StepMsg{Tool: tool, Step: step})
}

func (r *UpdateReporter) Downloading(tool string, received, total int64) {
	r.send(DownloadMsg{Tool: tool, Received: received, Total: total})
}

func (r *UpdateReporter) Extracting(tool string, done, total int) {
	r.send(ExtractMsg{Tool: tool, Done: done, Total: total})
}

// Versions reports resolved version strings for a tool's row.
func (r *UpdateReporter) Versions(tool, installed, latest string) {
	r.send(VersionMsg{Tool: tool, Installed: installed, Latest: latest})
}
