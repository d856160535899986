package tools

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"toolup/internal/registry"
	"toolup/internal/semver"
)

// Reporter receives progress for one tool's pipeline run.
type Reporter interface {
	Step(tool string, step string)
	Versions(tool string, installed, latest string)
	Downloading(tool string, received, total int64)
	Extracting(tool string, done, total int)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) Step(string, string)              {}
func (NopReporter) Versions(string, string, string)  {}
func (NopReporter) Downloading(string, int64, int64) {}
func (NopReporter) Extracting(string, int, int)      {}

// Updater runs the update-check-and-fetch pipeline for managed tools. Tools
// are processed one at a time; nothing here is safe for concurrent use.
type Updater struct {
	Source   registry.ReleaseSource
	Download registry.Downloader
	Probe    VersionProbe
	Reporter Reporter
	Log      *log.Logger
}

// NewUpdater wires an Updater to the real registry client and exec-based
// probe. Reporter defaults to NopReporter.
func NewUpdater(client *registry.Client) *Updater {
	return &Updater{
		Source:   client,
		Download: client,
		Probe:    ExecProbe{},
		Reporter: NopReporter{},
	}
}

func (u *Updater) reporter() Reporter {
	if u.Reporter == nil {
		return NopReporter{}
	}
	return u.Reporter
}

func (u *Updater) logf(format string, v ...any) {
	if u.Log != nil {
		u.Log.Printf(format, v...)
	}
}

// Check probes the installed binary and resolves the latest release, without
// downloading any asset body. The returned release backs a subsequent
// Update call.
func (u *Updater) Check(ctx context.Context, tool Tool, dir string) (Status, registry.Release, error) {
	st := Status{Tool: tool.Name}
	rep := u.reporter()

	rep.Step(tool.Name, "probing")
	exePath := filepath.Join(dir, tool.Exe)
	installed, haveInstalled := u.Probe.Probe(ctx, exePath, tool.VersionPattern)
	if haveInstalled {
		st.Installed = installed.String()
		u.logf("%s: installed version %s", tool.Name, st.Installed)
	} else {
		u.logf("%s: not installed or version check failed", tool.Name)
	}

	rep.Step(tool.Name, "resolving")
	release, err := u.Source.LatestRelease(ctx, tool.Repo)
	if err != nil {
		st.Error = err.Error()
		return st, registry.Release{}, fmt.Errorf("%s: resolve latest release: %w", tool.Name, err)
	}

	latest, err := semver.Parse(strings.TrimPrefix(release.TagName, "v"))
	if err != nil {
		st.Error = err.Error()
		return st, registry.Release{}, fmt.Errorf("%s: parse release tag %q: %w", tool.Name, release.TagName, err)
	}
	st.Latest = latest.String()
	u.logf("%s: latest version %s", tool.Name, st.Latest)
	rep.Versions(tool.Name, st.Installed, st.Latest)

	switch {
	case !haveInstalled:
		st.Decision = DecisionInstall
	case installed.Compare(latest) >= 0:
		st.Decision = DecisionUpToDate
	default:
		st.Decision = DecisionUpdate
	}
	return st, release, nil
}

// Update runs the full pipeline for one tool: probe, resolve, decide, select,
// download, extract, clean up. When the tool is already up to date the
// pipeline ends before any asset body is fetched.
//
// A failed extraction retains the downloaded archive in the tool dir for
// diagnosis and leaves already-extracted files in place; there is no
// rollback.
func (u *Updater) Update(ctx context.Context, tool Tool, dir string) (Status, error) {
	st, release, err := u.Check(ctx, tool, dir)
	if err != nil {
		return st, err
	}
	rep := u.reporter()

	if st.Decision == DecisionUpToDate {
		st.Path = filepath.Join(dir, tool.Exe)
		rep.Step(tool.Name, "up-to-date")
		u.logf("%s: up to date", tool.Name)
		return st, nil
	}

	asset, err := selectAsset(release.Assets, tool.MatchesAsset)
	if err != nil {
		st.Error = err.Error()
		return st, fmt.Errorf("%s: %w", tool.Name, err)
	}
	st.Asset = asset.Name
	u.logf("%s: selected asset %s", tool.Name, asset.Name)

	rep.Step(tool.Name, "downloading")
	archivePath, err := downloadAsset(ctx, u.Download, asset, dir, func(received, total int64) {
		rep.Downloading(tool.Name, received, total)
	})
	if err != nil {
		st.Error = err.Error()
		return st, fmt.Errorf("%s: download %s: %w", tool.Name, asset.Name, err)
	}

	rep.Step(tool.Name, "extracting")
	err = extractZip(archivePath, dir, func(done, total int) {
		rep.Extracting(tool.Name, done, total)
	})
	if err != nil {
		// Archive is kept on disk so a bad download can be inspected.
		st.Error = err.Error()
		u.logf("%s: extraction failed, archive retained at %s", tool.Name, archivePath)
		return st, fmt.Errorf("%s: extract %s: %w", tool.Name, asset.Name, err)
	}

	if err := os.Remove(archivePath); err != nil {
		st.Error = err.Error()
		return st, fmt.Errorf("%s: remove archive: %w", tool.Name, err)
	}

	st.Path = filepath.Join(dir, tool.Exe)
	step := "updated"
	if st.Decision == DecisionInstall {
		step = "installed"
	}
	rep.Step(tool.Name, step)
	u.logf("%s: %s to %s", tool.Name, step, st.Path)
	return st, nil
}
