// Package registry queries the release-hosting service for the latest
// published release of a managed tool and streams asset downloads.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIBase = "https://api.github.com"
	userAgent      = "toolup/1.0"
)

// Asset is a single downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Release holds the latest-release metadata returned by the registry.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// ReleaseSource resolves the newest published release for a repository.
type ReleaseSource interface {
	LatestRelease(ctx context.Context, repo string) (Release, error)
}

// Downloader streams an asset body to a writer, reporting byte progress.
// total is 0 when the transport does not supply a content length.
type Downloader interface {
	Download(ctx context.Context, url string, w io.Writer, onProgress func(received, total int64)) error
}

// APIBase returns the registry API base URL, honouring the TOOLUP_API_BASE
// override used by tests and mirror setups.
func APIBase() string {
	base := strings.TrimSpace(os.Getenv("TOOLUP_API_BASE"))
	if base == "" {
		return defaultAPIBase
	}
	return strings.TrimRight(base, "/")
}

// Client talks to the GitHub-style release API.
type Client struct {
	httpClient *http.Client
	apiBase    string
}

// NewClient creates a registry client. An empty apiBase falls back to
// APIBase().
func NewClient(apiBase string) *Client {
	if apiBase == "" {
		apiBase = APIBase()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiBase:    strings.TrimRight(apiBase, "/"),
	}
}

// LatestRelease issues a single GET to /repos/{repo}/releases/latest. The
// registry rejects anonymous clients, so every request carries a descriptive
// User-Agent. There are no retries; a failed call fails the lookup.
func (c *Client) LatestRelease(ctx context.Context, repo string) (Release, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiBase, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Release{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("query %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Release{}, fmt.Errorf("no release found for %s", repo)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Release{}, fmt.Errorf("release query for %s failed: %s", repo, resp.Status)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("decode release for %s: %w", repo, err)
	}
	if release.TagName == "" {
		return Release{}, fmt.Errorf("release for %s missing tag name", repo)
	}
	return release, nil
}

// Download streams the body at url into w. onProgress receives cumulative
// received bytes and the total reported by the transport (0 when unknown);
// it may be nil.
func (c *Client) Download(ctx context.Context, url string, w io.Writer, onProgress func(received, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	var received int64
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return fmt.Errorf("write download: %w", err)
			}
			received += int64(n)
			if onProgress != nil {
				onProgress(received, total)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read download: %w", readErr)
		}
	}
}
