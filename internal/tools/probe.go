package tools

import (
	"context"
	"os"
	"os/exec"
	"regexp"

	"toolup/internal/semver"
)

// VersionProbe reads the version an installed executable reports. The boolean
// is false when no version could be determined; absence of the executable is
// a normal state, never an error.
type VersionProbe interface {
	Probe(ctx context.Context, exePath string, pattern *regexp.Regexp) (semver.Version, bool)
}

// runVersionCommand invokes the binary with its version switch. Swapped out
// in tests.
var runVersionCommand = func(ctx context.Context, exePath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, exePath, "--version")
	return cmd.Output()
}

// ExecProbe determines the installed version by running the binary and
// applying the tool's version pattern to its standard output. Every failure
// mode (missing file, launch failure, non-zero exit, unmatched output,
// unparsable capture) degrades to "no version" rather than an error.
type ExecProbe struct{}

// Probe implements VersionProbe.
func (ExecProbe) Probe(ctx context.Context, exePath string, pattern *regexp.Regexp) (semver.Version, bool) {
	if _, err := os.Stat(exePath); err != nil {
		return semver.Version{}, false
	}

	output, err := runVersionCommand(ctx, exePath)
	if err != nil {
		return semver.Version{}, false
	}

	match := pattern.FindStringSubmatch(string(output))
	if len(match) < 2 {
		return semver.Version{}, false
	}

	version, err := semver.Parse(match[1])
	if err != nil {
		return semver.Version{}, false
	}
	return version, true
}
