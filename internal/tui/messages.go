package tui

// StepMsg moves a tool's row into a new pipeline step.
type StepMsg struct {
	Tool string
	Step string
}

// VersionMsg fills in a tool's installed/latest versions once known.
type VersionMsg struct {
	Tool      string
	Installed string
	Latest    string
}

// DownloadMsg reports byte progress for a tool's asset download. Total is
// zero when the server did not announce a length.
type DownloadMsg struct {
	Tool     string
	Received int64
	Total    int64
}

// ExtractMsg reports archive entry progress for a tool's extraction.
type ExtractMsg struct {
	Tool  string
	Done  int
	Total int
}

// WorkDoneMsg signals that all background work has completed.
type WorkDoneMsg struct{}

// ErrorMsg signals a fatal error; the TUI should quit.
type ErrorMsg struct {
	Err error
}
