package tools

// Decision is the computed outcome of comparing installed vs latest version.
type Decision string

const (
	// DecisionInstall means no usable local install was found; the latest
	// release is fetched unconditionally.
	DecisionInstall Decision = "install"
	// DecisionUpdate means the remote version is strictly newer.
	DecisionUpdate Decision = "update"
	// DecisionUpToDate means installed >= latest; nothing is downloaded.
	DecisionUpToDate Decision = "up-to-date"
)

// Status captures the result of one tool's update run.
type Status struct {
	Tool      string   `json:"tool"`
	Installed string   `json:"installed,omitempty"`
	Latest    string   `json:"latest,omitempty"`
	Decision  Decision `json:"decision,omitempty"`
	Asset     string   `json:"asset,omitempty"`
	Path      string   `json:"path,omitempty"`
	Error     string   `json:"error,omitempty"`
}
