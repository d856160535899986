package tools

import (
	"regexp"
	"sort"
	"strings"
)

// Tool describes one managed executable: where its releases live, how the
// installed binary reports its version, and which release asset fits this
// platform. The table is fixed at startup and never mutated.
type Tool struct {
	Name           string
	Repo           string
	Exe            string
	Subdir         string
	VersionPattern *regexp.Regexp
	MatchesAsset   func(name string) bool
}

var toolTable = map[string]Tool{
	"powershell": {
		Name:           "PowerShell",
		Repo:           "PowerShell/PowerShell",
		Exe:            "pwsh.exe",
		Subdir:         "pwsh",
		VersionPattern: regexp.MustCompile(`PowerShell (\d[\d.]*)`),
		MatchesAsset:   matchPowerShellAsset,
	},
	"uv": {
		Name:           "UV",
		Repo:           "astral-sh/uv",
		Exe:            "uv.exe",
		Subdir:         "uv",
		VersionPattern: regexp.MustCompile(`uv (\d[\d.]*)`),
		MatchesAsset:   matchUVAsset,
	},
}

// matchPowerShellAsset accepts the Windows x64 zip while excluding
// debug-symbol bundles and ARM builds.
func matchPowerShellAsset(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "win") && strings.Contains(n, "x64") &&
		strings.HasSuffix(n, ".zip") && !strings.Contains(n, "symbols") &&
		!strings.Contains(n, "arm")
}

func matchUVAsset(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "windows") && strings.Contains(n, "x86_64") &&
		strings.HasSuffix(n, ".zip")
}

// Known returns the managed tool definitions in a stable order.
func Known() []Tool {
	names := make([]string, 0, len(toolTable))
	for name := range toolTable {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]Tool, 0, len(names))
	for _, name := range names {
		defs = append(defs, toolTable[name])
	}
	return defs
}

// Lookup returns the tool definition for the provided name.
func Lookup(name string) (Tool, bool) {
	def, ok := toolTable[strings.ToLower(name)]
	return def, ok
}
