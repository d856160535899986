package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"toolup/internal/registry"
)

// downloadAsset streams the asset body into a temp file inside destDir and
// renames it to the asset's own name once complete, so a crashed download
// never leaves a plausible-looking archive behind.
func downloadAsset(ctx context.Context, dl registry.Downloader, asset registry.Asset, destDir string, onProgress func(received, total int64)) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("prepare tool dir: %w", err)
	}

	tmp, err := os.CreateTemp(destDir, "download-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := dl.Download(ctx, asset.BrowserDownloadURL, tmp, onProgress); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	archivePath := filepath.Join(destDir, asset.Name)
	if err := os.Rename(tmpPath, archivePath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("finalize download: %w", err)
	}
	return archivePath, nil
}
