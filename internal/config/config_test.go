package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "toolup.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.OutputDir != "" || cfg.APIBase != "" || len(cfg.Disabled) != 0 {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolup.yaml")
	data := "output_dir: D:/tools\napi_base: https://github.internal/api/v3\ndisabled:\n  - uv\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "D:/tools" {
		t.Errorf("output_dir = %q", cfg.OutputDir)
	}
	if cfg.APIBase != "https://github.internal/api/v3" {
		t.Errorf("api_base = %q", cfg.APIBase)
	}
	if cfg.Version != 1 {
		t.Errorf("version defaulted to %d, want 1", cfg.Version)
	}
	if !cfg.IsDisabled("uv") {
		t.Error("expected uv to be disabled")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolup.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestIsDisabledCaseInsensitive(t *testing.T) {
	cfg := Config{Disabled: []string{" PowerShell "}}
	if !cfg.IsDisabled("powershell") {
		t.Error("expected case-insensitive disabled match")
	}
	if cfg.IsDisabled("uv") {
		t.Error("uv should not be disabled")
	}
}
