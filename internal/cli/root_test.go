package cli

import (
	"testing"

	"toolup/internal/config"
)

func TestSelectToolsAll(t *testing.T) {
	selected, err := selectTools(nil, config.Config{})
	if err != nil {
		t.Fatalf("selectTools: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(selected))
	}
	if selected[0].Name != "PowerShell" || selected[1].Name != "UV" {
		t.Errorf("unexpected order: %s, %s", selected[0].Name, selected[1].Name)
	}
}

func TestSelectToolsAllSkipsDisabled(t *testing.T) {
	cfg := config.Config{Disabled: []string{"uv"}}
	selected, err := selectTools([]string{"all"}, cfg)
	if err != nil {
		t.Fatalf("selectTools: %v", err)
	}
	if len(selected) != 1 || selected[0].Name != "PowerShell" {
		t.Fatalf("expected only PowerShell, got %v", selected)
	}
}

func TestSelectToolsAllDisabled(t *testing.T) {
	cfg := config.Config{Disabled: []string{"powershell", "uv"}}
	if _, err := selectTools(nil, cfg); err == nil {
		t.Fatal("expected error when every tool is disabled")
	}
}

func TestSelectToolsExplicitOverridesDisabled(t *testing.T) {
	cfg := config.Config{Disabled: []string{"uv"}}
	selected, err := selectTools([]string{"uv"}, cfg)
	if err != nil {
		t.Fatalf("selectTools: %v", err)
	}
	if len(selected) != 1 || selected[0].Name != "UV" {
		t.Fatalf("expected UV despite disable, got %v", selected)
	}
}

func TestSelectToolsUnknown(t *testing.T) {
	if _, err := selectTools([]string{"ripgrep"}, config.Config{}); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestDash(t *testing.T) {
	if dash("") != "-" || dash("  ") != "-" {
		t.Error("expected dash for empty values")
	}
	if dash("7.4.1") != "7.4.1" {
		t.Error("expected value passthrough")
	}
}
