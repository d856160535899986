package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var probePattern = regexp.MustCompile(`PowerShell (\d[\d.]*)`)

func TestProbeMissingExecutable(t *testing.T) {
	probe := ExecProbe{}
	missing := filepath.Join(t.TempDir(), "pwsh.exe")

	if _, ok := probe.Probe(context.Background(), missing, probePattern); ok {
		t.Fatal("expected no version for missing executable")
	}
}

func TestProbeCommandFailure(t *testing.T) {
	origRun := runVersionCommand
	defer func() { runVersionCommand = origRun }()
	runVersionCommand = func(_ context.Context, _ string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}

	exe := writeFakeExe(t)
	if _, ok := (ExecProbe{}).Probe(context.Background(), exe, probePattern); ok {
		t.Fatal("expected no version when command fails")
	}
}

func TestProbePatternMismatch(t *testing.T) {
	origRun := runVersionCommand
	defer func() { runVersionCommand = origRun }()
	runVersionCommand = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("something unexpected\n"), nil
	}

	exe := writeFakeExe(t)
	if _, ok := (ExecProbe{}).Probe(context.Background(), exe, probePattern); ok {
		t.Fatal("expected no version when output lacks the version substring")
	}
}

func TestProbeUnparsableCapture(t *testing.T) {
	origRun := runVersionCommand
	defer func() { runVersionCommand = origRun }()
	runVersionCommand = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("PowerShell 7\n"), nil
	}

	exe := writeFakeExe(t)
	if _, ok := (ExecProbe{}).Probe(context.Background(), exe, probePattern); ok {
		t.Fatal("expected no version when capture is not a semantic version")
	}
}

func TestProbeSuccess(t *testing.T) {
	origRun := runVersionCommand
	defer func() { runVersionCommand = origRun }()
	runVersionCommand = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("PowerShell 7.4.1\n"), nil
	}

	exe := writeFakeExe(t)
	version, ok := (ExecProbe{}).Probe(context.Background(), exe, probePattern)
	if !ok {
		t.Fatal("expected version to be read")
	}
	if version.String() != "7.4.1" {
		t.Errorf("probed version %s, want 7.4.1", version)
	}
}

func writeFakeExe(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pwsh.exe")
	if err := os.WriteFile(path, []byte("fake"), 0o755); err != nil {
		t.Fatalf("write fake exe: %v", err)
	}
	return path
}
